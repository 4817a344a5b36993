package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sai69186/ai-time-table-generator/internal/dto"
	"github.com/Sai69186/ai-time-table-generator/internal/models"
	"github.com/Sai69186/ai-time-table-generator/internal/repository"
	appErrors "github.com/Sai69186/ai-time-table-generator/pkg/errors"
)

type universityFixture struct {
	store      *repository.Store
	timetables *repository.TimetableRepository
	service    *UniversityService
}

func newUniversityFixture(t *testing.T) *universityFixture {
	t.Helper()
	store := repository.NewStore()
	f := &universityFixture{
		store:      store,
		timetables: repository.NewTimetableRepository(store),
	}
	f.service = NewUniversityService(
		repository.NewBranchRepository(store),
		repository.NewSectionRepository(store),
		repository.NewTeacherRepository(store),
		repository.NewRoomRepository(store),
		repository.NewSubjectRepository(store),
		repository.NewCourseRepository(store),
		nil,
		nil,
	)
	return f
}

func TestCreateBranchValidation(t *testing.T) {
	f := newUniversityFixture(t)

	_, err := f.service.CreateBranch(context.Background(), dto.CreateBranchRequest{Name: "Computer Science"})

	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}

func TestCreateSectionDefaultsStrength(t *testing.T) {
	f := newUniversityFixture(t)

	section, err := f.service.CreateSection(context.Background(), dto.CreateSectionRequest{
		Name:     "CSE-A",
		Year:     2,
		Semester: 3,
	})
	require.NoError(t, err)

	assert.NotZero(t, section.ID)
	assert.Equal(t, 60, section.Strength)
}

func TestCreateTeacherDefaults(t *testing.T) {
	f := newUniversityFixture(t)

	teacher, err := f.service.CreateTeacher(context.Background(), dto.CreateTeacherRequest{
		Name:       "Dr. Rao",
		EmployeeID: "EMP-1",
	})
	require.NoError(t, err)

	assert.Equal(t, "General", teacher.Department)
	assert.Equal(t, 6, teacher.MaxHoursPerDay)
}

func TestCreateTeacherDuplicateEmployeeID(t *testing.T) {
	f := newUniversityFixture(t)

	_, err := f.service.CreateTeacher(context.Background(), dto.CreateTeacherRequest{Name: "Dr. Rao", EmployeeID: "EMP-1"})
	require.NoError(t, err)

	_, err = f.service.CreateTeacher(context.Background(), dto.CreateTeacherRequest{Name: "Dr. Iyer", EmployeeID: "EMP-1"})
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrConflict.Code, appErr.Code)
	assert.Equal(t, "teacher with this employee id already exists", appErr.Message)
}

func TestCreateRoomDefaults(t *testing.T) {
	f := newUniversityFixture(t)

	room, err := f.service.CreateRoom(context.Background(), dto.CreateRoomRequest{
		Number:   "101",
		Building: "Main Block",
	})
	require.NoError(t, err)

	assert.Equal(t, 60, room.Capacity)
	assert.Equal(t, "classroom", room.RoomType)
}

func TestCreateSubjectDefaults(t *testing.T) {
	f := newUniversityFixture(t)

	subject, err := f.service.CreateSubject(context.Background(), dto.CreateSubjectRequest{
		Name: "Mathematics",
		Code: "MA201",
	})
	require.NoError(t, err)

	assert.Equal(t, 3, subject.Credits)
	assert.Equal(t, "theory", subject.SubjectType)
	assert.Equal(t, 4, subject.HoursPerWeek)
}

func TestCreateCourseDenormalisesNames(t *testing.T) {
	f := newUniversityFixture(t)
	ctx := context.Background()

	section, err := f.service.CreateSection(ctx, dto.CreateSectionRequest{Name: "CSE-A", Year: 2, Semester: 3})
	require.NoError(t, err)
	subject, err := f.service.CreateSubject(ctx, dto.CreateSubjectRequest{Name: "Mathematics", Code: "MA201"})
	require.NoError(t, err)
	teacher, err := f.service.CreateTeacher(ctx, dto.CreateTeacherRequest{Name: "Dr. Rao", EmployeeID: "EMP-1"})
	require.NoError(t, err)
	room, err := f.service.CreateRoom(ctx, dto.CreateRoomRequest{Number: "101", Building: "Main Block"})
	require.NoError(t, err)

	course, err := f.service.CreateCourse(ctx, dto.CreateCourseRequest{
		SectionID: section.ID,
		SubjectID: subject.ID,
		TeacherID: teacher.ID,
		RoomID:    room.ID,
	})
	require.NoError(t, err)

	assert.Equal(t, "CSE-A", course.SectionName)
	assert.Equal(t, "Mathematics", course.SubjectName)
	assert.Equal(t, "MA201", course.SubjectCode)
	assert.Equal(t, "Dr. Rao", course.TeacherName)
	assert.Equal(t, "101", course.RoomNumber)
	assert.Equal(t, "Main Block", course.Building)
}

func TestCreateCourseToleratesDanglingReferences(t *testing.T) {
	f := newUniversityFixture(t)

	course, err := f.service.CreateCourse(context.Background(), dto.CreateCourseRequest{
		SectionID: 91,
		SubjectID: 92,
		TeacherID: 93,
	})
	require.NoError(t, err)

	assert.Equal(t, "Unknown", course.SectionName)
	assert.Equal(t, "Unknown", course.SubjectName)
	assert.Equal(t, "Unknown", course.TeacherName)
	assert.Equal(t, "TBA", course.RoomNumber)
	assert.Equal(t, "TBA", course.Building)
}

func TestListSectionCoursesKeepsInsertionOrder(t *testing.T) {
	f := newUniversityFixture(t)
	ctx := context.Background()

	section, err := f.service.CreateSection(ctx, dto.CreateSectionRequest{Name: "CSE-A", Year: 2, Semester: 3})
	require.NoError(t, err)
	other, err := f.service.CreateSection(ctx, dto.CreateSectionRequest{Name: "CSE-B", Year: 2, Semester: 3})
	require.NoError(t, err)

	for _, subjectID := range []int{11, 12, 13} {
		_, err := f.service.CreateCourse(ctx, dto.CreateCourseRequest{SectionID: section.ID, SubjectID: subjectID, TeacherID: 5})
		require.NoError(t, err)
	}
	_, err = f.service.CreateCourse(ctx, dto.CreateCourseRequest{SectionID: other.ID, SubjectID: 14, TeacherID: 5})
	require.NoError(t, err)

	courses, err := f.service.ListSectionCourses(ctx, section.ID)
	require.NoError(t, err)
	require.Len(t, courses, 3)
	assert.Equal(t, 11, courses[0].SubjectID)
	assert.Equal(t, 12, courses[1].SubjectID)
	assert.Equal(t, 13, courses[2].SubjectID)
}

func TestListSectionCoursesSectionNotFound(t *testing.T) {
	f := newUniversityFixture(t)

	_, err := f.service.ListSectionCourses(context.Background(), 7)

	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErr.Code)
	assert.Equal(t, "section not found", appErr.Message)
}

func TestDeleteSectionRemovesStoredTimetable(t *testing.T) {
	f := newUniversityFixture(t)
	ctx := context.Background()

	section, err := f.service.CreateSection(ctx, dto.CreateSectionRequest{Name: "CSE-A", Year: 2, Semester: 3})
	require.NoError(t, err)
	require.NoError(t, f.timetables.Save(ctx, models.Timetable{ID: "tt-1", SectionID: section.ID}))

	require.NoError(t, f.service.DeleteSection(ctx, section.ID))

	_, err = f.timetables.FindBySectionID(ctx, section.ID)
	assert.ErrorIs(t, err, repository.ErrRecordNotFound)

	err = f.service.DeleteSection(ctx, section.ID)
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErrors.FromError(err).Code)
}

func TestDeleteEntitiesRemoveRecords(t *testing.T) {
	f := newUniversityFixture(t)
	ctx := context.Background()

	branch, err := f.service.CreateBranch(ctx, dto.CreateBranchRequest{Name: "Computer Science", Code: "CSE"})
	require.NoError(t, err)
	teacher, err := f.service.CreateTeacher(ctx, dto.CreateTeacherRequest{Name: "Dr. Rao", EmployeeID: "EMP-1"})
	require.NoError(t, err)
	room, err := f.service.CreateRoom(ctx, dto.CreateRoomRequest{Number: "101", Building: "Main Block"})
	require.NoError(t, err)
	subject, err := f.service.CreateSubject(ctx, dto.CreateSubjectRequest{Name: "Mathematics", Code: "MA201"})
	require.NoError(t, err)
	course, err := f.service.CreateCourse(ctx, dto.CreateCourseRequest{SectionID: 1, SubjectID: subject.ID, TeacherID: teacher.ID})
	require.NoError(t, err)

	require.NoError(t, f.service.DeleteBranch(ctx, branch.ID))
	require.NoError(t, f.service.DeleteTeacher(ctx, teacher.ID))
	require.NoError(t, f.service.DeleteRoom(ctx, room.ID))
	require.NoError(t, f.service.DeleteSubject(ctx, subject.ID))
	require.NoError(t, f.service.DeleteCourse(ctx, course.ID))

	counts, err := f.service.Counts(ctx)
	require.NoError(t, err)
	for _, kind := range []string{"branches", "teachers", "rooms", "subjects", "courses"} {
		assert.Zero(t, counts[kind], kind)
	}
}

func TestDeleteEntitiesUnknownID(t *testing.T) {
	f := newUniversityFixture(t)
	ctx := context.Background()

	deletes := map[string]func(context.Context, int) error{
		"branch not found":  f.service.DeleteBranch,
		"teacher not found": f.service.DeleteTeacher,
		"room not found":    f.service.DeleteRoom,
		"subject not found": f.service.DeleteSubject,
		"course not found":  f.service.DeleteCourse,
	}
	for message, del := range deletes {
		err := del(ctx, 404)
		require.Error(t, err, message)
		appErr := appErrors.FromError(err)
		assert.Equal(t, appErrors.ErrNotFound.Code, appErr.Code)
		assert.Equal(t, message, appErr.Message)
	}
}

func TestCountsReflectsEntities(t *testing.T) {
	f := newUniversityFixture(t)
	ctx := context.Background()

	_, err := f.service.CreateBranch(ctx, dto.CreateBranchRequest{Name: "Computer Science", Code: "CSE"})
	require.NoError(t, err)
	_, err = f.service.CreateSection(ctx, dto.CreateSectionRequest{Name: "CSE-A", Year: 2, Semester: 3})
	require.NoError(t, err)
	_, err = f.service.CreateTeacher(ctx, dto.CreateTeacherRequest{Name: "Dr. Rao", EmployeeID: "EMP-1"})
	require.NoError(t, err)

	counts, err := f.service.Counts(ctx)
	require.NoError(t, err)

	assert.Equal(t, 1, counts["branches"])
	assert.Equal(t, 1, counts["sections"])
	assert.Equal(t, 1, counts["teachers"])
	assert.Equal(t, 0, counts["rooms"])
	assert.Equal(t, 0, counts["subjects"])
	assert.Equal(t, 0, counts["courses"])
}
