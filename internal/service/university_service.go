package service

import (
	"context"
	"errors"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/Sai69186/ai-time-table-generator/internal/dto"
	"github.com/Sai69186/ai-time-table-generator/internal/models"
	"github.com/Sai69186/ai-time-table-generator/internal/repository"
	appErrors "github.com/Sai69186/ai-time-table-generator/pkg/errors"
)

// Placeholder values substituted for dangling or absent references when a
// course denormalises its display fields. Course creation never fails on a
// missing entity lookup.
const (
	placeholderName = "Unknown"
	placeholderRoom = "TBA"
)

type branchRepository interface {
	Create(ctx context.Context, branch *models.Branch) error
	List(ctx context.Context) ([]models.Branch, error)
	Delete(ctx context.Context, id int) error
}

type sectionRepository interface {
	Create(ctx context.Context, section *models.Section) error
	List(ctx context.Context) ([]models.Section, error)
	FindByID(ctx context.Context, id int) (*models.Section, error)
	Delete(ctx context.Context, id int) error
}

type teacherRepository interface {
	Create(ctx context.Context, teacher *models.Teacher) error
	List(ctx context.Context) ([]models.Teacher, error)
	FindByID(ctx context.Context, id int) (*models.Teacher, error)
	ExistsByEmployeeID(ctx context.Context, employeeID string) (bool, error)
	Delete(ctx context.Context, id int) error
}

type roomRepository interface {
	Create(ctx context.Context, room *models.Room) error
	List(ctx context.Context) ([]models.Room, error)
	FindByID(ctx context.Context, id int) (*models.Room, error)
	Delete(ctx context.Context, id int) error
}

type subjectRepository interface {
	Create(ctx context.Context, subject *models.Subject) error
	List(ctx context.Context) ([]models.Subject, error)
	FindByID(ctx context.Context, id int) (*models.Subject, error)
	Delete(ctx context.Context, id int) error
}

type courseRepository interface {
	Create(ctx context.Context, course *models.Course) error
	List(ctx context.Context) ([]models.Course, error)
	ListBySectionID(ctx context.Context, sectionID int) ([]models.Course, error)
	Delete(ctx context.Context, id int) error
}

// UniversityService handles branch, section, teacher, room, subject and
// course management.
type UniversityService struct {
	branches  branchRepository
	sections  sectionRepository
	teachers  teacherRepository
	rooms     roomRepository
	subjects  subjectRepository
	courses   courseRepository
	validator *validator.Validate
	logger    *zap.Logger
}

// NewUniversityService wires the entity repositories.
func NewUniversityService(
	branches branchRepository,
	sections sectionRepository,
	teachers teacherRepository,
	rooms roomRepository,
	subjects subjectRepository,
	courses courseRepository,
	validate *validator.Validate,
	logger *zap.Logger,
) *UniversityService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UniversityService{
		branches:  branches,
		sections:  sections,
		teachers:  teachers,
		rooms:     rooms,
		subjects:  subjects,
		courses:   courses,
		validator: validate,
		logger:    logger,
	}
}

// CreateBranch adds a branch.
func (s *UniversityService) CreateBranch(ctx context.Context, req dto.CreateBranchRequest) (*models.Branch, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "name and code are required")
	}
	branch := &models.Branch{Name: req.Name, Code: req.Code}
	if err := s.branches.Create(ctx, branch); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create branch")
	}
	return branch, nil
}

// ListBranches returns all branches.
func (s *UniversityService) ListBranches(ctx context.Context) ([]models.Branch, error) {
	branches, err := s.branches.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list branches")
	}
	return branches, nil
}

// DeleteBranch removes a branch.
func (s *UniversityService) DeleteBranch(ctx context.Context, id int) error {
	if err := s.branches.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrRecordNotFound) {
			return appErrors.Clone(appErrors.ErrNotFound, "branch not found")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete branch")
	}
	return nil
}

// CreateSection adds a section; strength defaults to 60.
func (s *UniversityService) CreateSection(ctx context.Context, req dto.CreateSectionRequest) (*models.Section, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "name, year and semester are required")
	}
	if req.Strength <= 0 {
		req.Strength = 60
	}
	section := &models.Section{
		Name:     req.Name,
		Year:     req.Year,
		Semester: req.Semester,
		BranchID: req.BranchID,
		Strength: req.Strength,
	}
	if err := s.sections.Create(ctx, section); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create section")
	}
	return section, nil
}

// ListSections returns all sections.
func (s *UniversityService) ListSections(ctx context.Context) ([]models.Section, error) {
	sections, err := s.sections.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list sections")
	}
	return sections, nil
}

// DeleteSection removes a section together with its stored timetable.
func (s *UniversityService) DeleteSection(ctx context.Context, id int) error {
	if err := s.sections.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrRecordNotFound) {
			return appErrors.Clone(appErrors.ErrNotFound, "section not found")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete section")
	}
	return nil
}

// CreateTeacher adds a teacher enforcing employee id uniqueness.
func (s *UniversityService) CreateTeacher(ctx context.Context, req dto.CreateTeacherRequest) (*models.Teacher, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "name and employee_id are required")
	}
	exists, err := s.teachers.ExistsByEmployeeID(ctx, req.EmployeeID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to check employee id")
	}
	if exists {
		return nil, appErrors.Clone(appErrors.ErrConflict, "teacher with this employee id already exists")
	}
	if req.Department == "" {
		req.Department = "General"
	}
	if req.MaxHoursPerDay <= 0 {
		req.MaxHoursPerDay = 6
	}
	teacher := &models.Teacher{
		Name:           req.Name,
		EmployeeID:     req.EmployeeID,
		Department:     req.Department,
		MaxHoursPerDay: req.MaxHoursPerDay,
	}
	if err := s.teachers.Create(ctx, teacher); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create teacher")
	}
	return teacher, nil
}

// ListTeachers returns all teachers.
func (s *UniversityService) ListTeachers(ctx context.Context) ([]models.Teacher, error) {
	teachers, err := s.teachers.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list teachers")
	}
	return teachers, nil
}

// DeleteTeacher removes a teacher. Courses referencing the teacher keep
// their denormalised display name.
func (s *UniversityService) DeleteTeacher(ctx context.Context, id int) error {
	if err := s.teachers.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrRecordNotFound) {
			return appErrors.Clone(appErrors.ErrNotFound, "teacher not found")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete teacher")
	}
	return nil
}

// CreateRoom adds a room; capacity defaults to 60 and type to classroom.
func (s *UniversityService) CreateRoom(ctx context.Context, req dto.CreateRoomRequest) (*models.Room, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "number and building are required")
	}
	if req.Capacity <= 0 {
		req.Capacity = 60
	}
	if req.RoomType == "" {
		req.RoomType = "classroom"
	}
	room := &models.Room{
		Number:   req.Number,
		Building: req.Building,
		Capacity: req.Capacity,
		RoomType: req.RoomType,
	}
	if err := s.rooms.Create(ctx, room); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create room")
	}
	return room, nil
}

// ListRooms returns all rooms.
func (s *UniversityService) ListRooms(ctx context.Context) ([]models.Room, error) {
	rooms, err := s.rooms.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list rooms")
	}
	return rooms, nil
}

// DeleteRoom removes a room.
func (s *UniversityService) DeleteRoom(ctx context.Context, id int) error {
	if err := s.rooms.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrRecordNotFound) {
			return appErrors.Clone(appErrors.ErrNotFound, "room not found")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete room")
	}
	return nil
}

// CreateSubject adds a subject with the catalogue defaults.
func (s *UniversityService) CreateSubject(ctx context.Context, req dto.CreateSubjectRequest) (*models.Subject, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "name and code are required")
	}
	if req.Credits <= 0 {
		req.Credits = 3
	}
	if req.SubjectType == "" {
		req.SubjectType = "theory"
	}
	if req.HoursPerWeek <= 0 {
		req.HoursPerWeek = 4
	}
	subject := &models.Subject{
		Name:         req.Name,
		Code:         req.Code,
		Credits:      req.Credits,
		SubjectType:  req.SubjectType,
		HoursPerWeek: req.HoursPerWeek,
	}
	if err := s.subjects.Create(ctx, subject); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create subject")
	}
	return subject, nil
}

// ListSubjects returns all subjects.
func (s *UniversityService) ListSubjects(ctx context.Context) ([]models.Subject, error) {
	subjects, err := s.subjects.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list subjects")
	}
	return subjects, nil
}

// DeleteSubject removes a subject.
func (s *UniversityService) DeleteSubject(ctx context.Context, id int) error {
	if err := s.subjects.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrRecordNotFound) {
			return appErrors.Clone(appErrors.ErrNotFound, "subject not found")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete subject")
	}
	return nil
}

// CreateCourse assigns a subject/teacher/room to a section, denormalising
// display names at creation time. Dangling references are tolerated and
// substituted with placeholders rather than rejected.
func (s *UniversityService) CreateCourse(ctx context.Context, req dto.CreateCourseRequest) (*models.Course, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "section_id, subject_id and teacher_id are required")
	}

	course := &models.Course{
		SectionID:   req.SectionID,
		SubjectID:   req.SubjectID,
		TeacherID:   req.TeacherID,
		RoomID:      req.RoomID,
		SectionName: placeholderName,
		SubjectName: placeholderName,
		SubjectCode: placeholderName,
		TeacherName: placeholderName,
		RoomNumber:  placeholderRoom,
		Building:    placeholderRoom,
	}

	if section, err := s.sections.FindByID(ctx, req.SectionID); err == nil {
		course.SectionName = section.Name
	}
	if subject, err := s.subjects.FindByID(ctx, req.SubjectID); err == nil {
		course.SubjectName = subject.Name
		course.SubjectCode = subject.Code
	}
	if teacher, err := s.teachers.FindByID(ctx, req.TeacherID); err == nil {
		course.TeacherName = teacher.Name
	}
	if req.RoomID != 0 {
		if room, err := s.rooms.FindByID(ctx, req.RoomID); err == nil {
			course.RoomNumber = room.Number
			course.Building = room.Building
		}
	}

	if err := s.courses.Create(ctx, course); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create course")
	}
	return course, nil
}

// ListCourses returns all courses.
func (s *UniversityService) ListCourses(ctx context.Context) ([]models.Course, error) {
	courses, err := s.courses.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list courses")
	}
	return courses, nil
}

// DeleteCourse removes a course. Stored timetables keep the assignments
// generated from it until the section regenerates.
func (s *UniversityService) DeleteCourse(ctx context.Context, id int) error {
	if err := s.courses.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrRecordNotFound) {
			return appErrors.Clone(appErrors.ErrNotFound, "course not found")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete course")
	}
	return nil
}

// ListSectionCourses returns the courses of one section in insertion order.
func (s *UniversityService) ListSectionCourses(ctx context.Context, sectionID int) ([]models.Course, error) {
	if _, err := s.sections.FindByID(ctx, sectionID); err != nil {
		if errors.Is(err, repository.ErrRecordNotFound) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "section not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load section")
	}
	courses, err := s.courses.ListBySectionID(ctx, sectionID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list courses")
	}
	return courses, nil
}

// Counts reports entity totals for the health endpoint.
func (s *UniversityService) Counts(ctx context.Context) (map[string]int, error) {
	branches, err := s.branches.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to count branches")
	}
	sections, err := s.sections.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to count sections")
	}
	teachers, err := s.teachers.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to count teachers")
	}
	rooms, err := s.rooms.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to count rooms")
	}
	subjects, err := s.subjects.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to count subjects")
	}
	courses, err := s.courses.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to count courses")
	}
	return map[string]int{
		"branches": len(branches),
		"sections": len(sections),
		"teachers": len(teachers),
		"rooms":    len(rooms),
		"subjects": len(subjects),
		"courses":  len(courses),
	}, nil
}
