package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Sai69186/ai-time-table-generator/internal/dto"
	"github.com/Sai69186/ai-time-table-generator/internal/models"
	"github.com/Sai69186/ai-time-table-generator/internal/repository"
	appErrors "github.com/Sai69186/ai-time-table-generator/pkg/errors"
)

type timetableSectionReader interface {
	FindByID(ctx context.Context, id int) (*models.Section, error)
}

type timetableCourseReader interface {
	ListBySectionID(ctx context.Context, sectionID int) ([]models.Course, error)
}

type timetableStore interface {
	Save(ctx context.Context, timetable models.Timetable) error
	FindBySectionID(ctx context.Context, sectionID int) (*models.Timetable, error)
	List(ctx context.Context) ([]models.TimetableSummary, error)
}

// TimetableDefaults supplies generation parameters for fields a request omits.
type TimetableDefaults struct {
	StartTime    string
	EndTime      string
	SlotDuration int
	LunchStart   string
	LunchEnd     string
	WorkingDays  []string
}

var defaultWorkingDays = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday"}

// TimetableService generates, stores and retrieves section timetables. One
// record is kept per section; regeneration overwrites it wholesale. Two
// overlapping Generate calls for the same section race intentionally and the
// last Save wins — there is no section-level lock to add ordering.
type TimetableService struct {
	sections   timetableSectionReader
	courses    timetableCourseReader
	timetables timetableStore
	validator  *validator.Validate
	logger     *zap.Logger
	defaults   TimetableDefaults
}

// NewTimetableService wires the generation dependencies.
func NewTimetableService(
	sections timetableSectionReader,
	courses timetableCourseReader,
	timetables timetableStore,
	validate *validator.Validate,
	logger *zap.Logger,
	defaults TimetableDefaults,
) *TimetableService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if defaults.StartTime == "" {
		defaults.StartTime = "09:00"
	}
	if defaults.EndTime == "" {
		defaults.EndTime = "17:00"
	}
	if defaults.SlotDuration <= 0 {
		defaults.SlotDuration = 60
	}
	if defaults.LunchStart == "" {
		defaults.LunchStart = "12:00"
	}
	if defaults.LunchEnd == "" {
		defaults.LunchEnd = "13:00"
	}
	if len(defaults.WorkingDays) == 0 {
		defaults.WorkingDays = defaultWorkingDays
	}
	return &TimetableService{
		sections:   sections,
		courses:    courses,
		timetables: timetables,
		validator:  validate,
		logger:     logger,
		defaults:   defaults,
	}
}

// Generate builds a timetable with the conflict-tracking policy and stores
// it for the section, replacing any prior record. Detected collisions are
// reported alongside the result, never treated as failure.
func (s *TimetableService) Generate(ctx context.Context, req dto.GenerateTimetableRequest) (*dto.GenerateTimetableResponse, error) {
	section, courses, err := s.loadSectionCourses(ctx, req)
	if err != nil {
		return nil, err
	}
	window, err := s.resolveWindow(req)
	if err != nil {
		return nil, err
	}

	days := s.resolveDays(req.WorkingDays)
	slots := generateTimeSlots(window.start, window.end, window.slotDuration, window.lunchStart, window.lunchEnd)
	assignments, report := assignWithConflicts(days, slots, courses)
	insertLunchBreaks(assignments, days, window)

	record := s.buildRecord(section, days, assignments, report)
	if err := s.timetables.Save(ctx, record); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to store timetable")
	}

	s.logger.Info("timetable generated",
		zap.Int("section_id", section.ID),
		zap.Int("days", len(days)),
		zap.Int("slots_per_day", len(slots)),
		zap.Int("conflicts", report.TotalConflicts),
	)

	return &dto.GenerateTimetableResponse{Timetable: record, Conflicts: report}, nil
}

// GenerateSimple builds a timetable with the rotation policy: every working
// day repeats the identical course-to-slot mapping and no collision checks
// run. The conflict report is always empty.
func (s *TimetableService) GenerateSimple(ctx context.Context, req dto.GenerateTimetableRequest) (*dto.GenerateTimetableResponse, error) {
	section, courses, err := s.loadSectionCourses(ctx, req)
	if err != nil {
		return nil, err
	}
	window, err := s.resolveWindow(req)
	if err != nil {
		return nil, err
	}

	days := s.resolveDays(req.WorkingDays)
	slots := generateTimeSlots(window.start, window.end, window.slotDuration, window.lunchStart, window.lunchEnd)
	assignments := assignRotation(days, slots, courses)
	report := models.ConflictReport{TotalConflicts: 0, Conflicts: []models.Conflict{}}

	record := s.buildRecord(section, days, assignments, report)
	if err := s.timetables.Save(ctx, record); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to store timetable")
	}

	s.logger.Info("timetable generated",
		zap.Int("section_id", section.ID),
		zap.String("policy", "rotation"),
		zap.Int("days", len(days)),
		zap.Int("slots_per_day", len(slots)),
	)

	return &dto.GenerateTimetableResponse{Timetable: record, Conflicts: report}, nil
}

// Get returns the most recently generated timetable for a section.
func (s *TimetableService) Get(ctx context.Context, sectionID int) (*models.Timetable, error) {
	if _, err := s.sections.FindByID(ctx, sectionID); err != nil {
		if errors.Is(err, repository.ErrRecordNotFound) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "section not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load section")
	}
	timetable, err := s.timetables.FindBySectionID(ctx, sectionID)
	if err != nil {
		if errors.Is(err, repository.ErrRecordNotFound) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "no timetable found for this section")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load timetable")
	}
	return timetable, nil
}

// List returns summaries of all stored timetables ordered by section id.
func (s *TimetableService) List(ctx context.Context) ([]models.TimetableSummary, error) {
	summaries, err := s.timetables.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list timetables")
	}
	sortSummaries(summaries)
	return summaries, nil
}

func (s *TimetableService) loadSectionCourses(ctx context.Context, req dto.GenerateTimetableRequest) (*models.Section, []models.Course, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid timetable generation payload")
	}
	section, err := s.sections.FindByID(ctx, req.SectionID)
	if err != nil {
		if errors.Is(err, repository.ErrRecordNotFound) {
			return nil, nil, appErrors.Clone(appErrors.ErrNotFound, "section not found")
		}
		return nil, nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load section")
	}
	courses, err := s.courses.ListBySectionID(ctx, req.SectionID)
	if err != nil {
		return nil, nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load courses")
	}
	if len(courses) == 0 {
		return nil, nil, appErrors.Clone(appErrors.ErrNoCourses, "")
	}
	return section, courses, nil
}

func (s *TimetableService) buildRecord(section *models.Section, days []string, assignments map[string][]models.SlotAssignment, report models.ConflictReport) models.Timetable {
	return models.Timetable{
		ID:          uuid.NewString(),
		SectionID:   section.ID,
		Name:        fmt.Sprintf("%s Timetable", section.Name),
		SectionName: section.Name,
		WorkingDays: days,
		Slots:       assignments,
		Conflicts:   report,
		GeneratedAt: time.Now().UTC(),
	}
}

func (s *TimetableService) resolveDays(requested []string) []string {
	if len(requested) > 0 {
		return requested
	}
	return s.defaults.WorkingDays
}

// generationWindow holds the resolved bounds in minutes since midnight.
type generationWindow struct {
	start        int
	end          int
	slotDuration int
	lunchStart   int
	lunchEnd     int
}

func (s *TimetableService) resolveWindow(req dto.GenerateTimetableRequest) (generationWindow, error) {
	window := generationWindow{}

	var err error
	if window.start, err = parseClock(pickTime(req.StartTime, s.defaults.StartTime)); err != nil {
		return window, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("invalid start_time: %v", err))
	}
	if window.end, err = parseClock(pickTime(req.EndTime, s.defaults.EndTime)); err != nil {
		return window, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("invalid end_time: %v", err))
	}
	if window.lunchStart, err = parseClock(pickTime(req.LunchStart, s.defaults.LunchStart)); err != nil {
		return window, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("invalid lunch_start: %v", err))
	}

	switch {
	case req.LunchEnd != "":
		if window.lunchEnd, err = parseClock(req.LunchEnd); err != nil {
			return window, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("invalid lunch_end: %v", err))
		}
	case req.LunchDuration > 0:
		window.lunchEnd = window.lunchStart + req.LunchDuration
	default:
		if window.lunchEnd, err = parseClock(s.defaults.LunchEnd); err != nil {
			return window, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("invalid lunch_end: %v", err))
		}
	}

	switch {
	case req.SlotDuration > 0:
		window.slotDuration = req.SlotDuration
	case req.PeriodDuration > 0:
		window.slotDuration = req.PeriodDuration + req.BreakDuration
	default:
		window.slotDuration = s.defaults.SlotDuration
	}

	return window, nil
}

func pickTime(requested, fallback string) string {
	if requested != "" {
		return requested
	}
	return fallback
}

func parseClock(value string) (int, error) {
	t, err := time.Parse("15:04", value)
	if err != nil {
		return 0, fmt.Errorf("%q is not a HH:MM clock time", value)
	}
	return t.Hour()*60 + t.Minute(), nil
}

func formatClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// generateTimeSlots walks from start towards end in slotDuration increments,
// emitting every slot that fits before end and whose start is outside the
// lunch window. Landing exactly on the lunch start jumps straight to lunch
// end, so no partial lunch slot and no post-lunch gap is produced. Bounds
// that fit no slot yield an empty sequence, not an error. Pure function of
// its inputs.
func generateTimeSlots(start, end, slotDuration, lunchStart, lunchEnd int) []models.TimeSlot {
	var slots []models.TimeSlot
	if slotDuration <= 0 {
		return slots
	}
	current := start
	for current+slotDuration <= end {
		slotEnd := current + slotDuration
		if !(current >= lunchStart && current < lunchEnd) {
			slots = append(slots, models.TimeSlot{Start: formatClock(current), End: formatClock(slotEnd)})
		}
		current = slotEnd
		if current == lunchStart {
			current = lunchEnd
		}
	}
	return slots
}

// assignRotation fills each working day with the identical mapping of
// course[i] onto slot[i], bounded by min(#slots, #courses). No collision
// checks run in this policy.
func assignRotation(days []string, slots []models.TimeSlot, courses []models.Course) map[string][]models.SlotAssignment {
	limit := len(courses)
	if len(slots) < limit {
		limit = len(slots)
	}
	out := make(map[string][]models.SlotAssignment, len(days))
	for _, day := range days {
		assignments := make([]models.SlotAssignment, 0, limit)
		for i := 0; i < limit; i++ {
			assignments = append(assignments, newAssignment(day, slots[i], courses[i]))
		}
		out[day] = assignments
	}
	return out
}

// bookingKey identifies one resource booking in one timetable cell. Collision
// tracking is strictly cell-local: the same teacher in the same slot index on
// different days never collides.
type bookingKey struct {
	day      string
	slot     int
	resource int
}

// assignWithConflicts iterates days outer and slots inner, placing at each
// cell the first course not yet scheduled on that day. Teacher and room
// double-bookings are checked against seen-sets and reported, but the
// colliding course still fills the cell; conflicts are warnings, never
// resolved. When a day runs out of unscheduled courses its remaining cells
// stay empty — a course is never booked twice on one day.
func assignWithConflicts(days []string, slots []models.TimeSlot, courses []models.Course) (map[string][]models.SlotAssignment, models.ConflictReport) {
	out := make(map[string][]models.SlotAssignment, len(days))
	teacherSeen := make(map[bookingKey]bool)
	roomSeen := make(map[bookingKey]bool)
	conflicts := make([]models.Conflict, 0)

	for _, day := range days {
		placed := make(map[int]bool, len(courses))
		assignments := make([]models.SlotAssignment, 0, len(slots))
		for slotIndex, slot := range slots {
			course, ok := firstUnscheduled(courses, placed)
			if !ok {
				continue
			}
			window := slot.Start + "-" + slot.End

			teacherKey := bookingKey{day: day, slot: slotIndex, resource: course.TeacherID}
			if teacherSeen[teacherKey] {
				conflicts = append(conflicts, models.Conflict{
					Type:    models.ConflictTypeTeacher,
					Message: fmt.Sprintf("Teacher %s is already scheduled at %s %s", course.TeacherName, day, window),
					Details: models.ConflictDetails{
						Day:     day,
						Time:    window,
						Teacher: course.TeacherName,
						Course:  course.SubjectName,
					},
				})
			} else {
				teacherSeen[teacherKey] = true
			}

			// A course without a room carries the TBA placeholder; a shared
			// placeholder is not a booking, so only real rooms are tracked.
			if course.RoomID != 0 {
				roomKey := bookingKey{day: day, slot: slotIndex, resource: course.RoomID}
				if roomSeen[roomKey] {
					conflicts = append(conflicts, models.Conflict{
						Type:    models.ConflictTypeRoom,
						Message: fmt.Sprintf("Room %s is already booked at %s %s", course.RoomNumber, day, window),
						Details: models.ConflictDetails{
							Day:    day,
							Time:   window,
							Room:   course.RoomNumber,
							Course: course.SubjectName,
						},
					})
				} else {
					roomSeen[roomKey] = true
				}
			}

			placed[course.ID] = true
			assignments = append(assignments, newAssignment(day, slot, course))
		}
		out[day] = assignments
	}

	return out, models.ConflictReport{TotalConflicts: len(conflicts), Conflicts: conflicts}
}

const lunchBreakLabel = "Lunch Break"

// insertLunchBreaks adds a display-only lunch row to each working day when
// the lunch window falls inside the generation window. Break rows are
// inserted after assignment, so they never take part in placement or
// conflict tracking.
func insertLunchBreaks(assignments map[string][]models.SlotAssignment, days []string, window generationWindow) {
	if window.lunchEnd <= window.lunchStart {
		return
	}
	if window.lunchStart < window.start || window.lunchStart >= window.end {
		return
	}
	start := formatClock(window.lunchStart)
	end := formatClock(window.lunchEnd)
	for _, day := range days {
		row := models.SlotAssignment{
			Day:         day,
			StartTime:   start,
			EndTime:     end,
			SubjectName: lunchBreakLabel,
			IsBreak:     true,
		}
		assignments[day] = insertByTime(assignments[day], row)
	}
}

// insertByTime places the row before the first assignment starting at or
// after its end, keeping the day's slots in clock order. Zero-padded "HH:MM"
// strings compare correctly as text.
func insertByTime(day []models.SlotAssignment, row models.SlotAssignment) []models.SlotAssignment {
	pos := len(day)
	for i, slot := range day {
		if slot.StartTime >= row.EndTime {
			pos = i
			break
		}
	}
	day = append(day, models.SlotAssignment{})
	copy(day[pos+1:], day[pos:])
	day[pos] = row
	return day
}

// firstUnscheduled picks the earliest course not yet placed on the current
// day, in stable list order and without lookahead.
func firstUnscheduled(courses []models.Course, placed map[int]bool) (models.Course, bool) {
	for _, course := range courses {
		if !placed[course.ID] {
			return course, true
		}
	}
	return models.Course{}, false
}

func newAssignment(day string, slot models.TimeSlot, course models.Course) models.SlotAssignment {
	return models.SlotAssignment{
		Day:         day,
		StartTime:   slot.Start,
		EndTime:     slot.End,
		CourseID:    course.ID,
		SubjectCode: course.SubjectCode,
		SubjectName: course.SubjectName,
		TeacherID:   course.TeacherID,
		TeacherName: course.TeacherName,
		RoomID:      course.RoomID,
		RoomNumber:  course.RoomNumber,
		Building:    course.Building,
	}
}

func sortSummaries(summaries []models.TimetableSummary) {
	sort.Slice(summaries, func(i, j int) bool {
		return summaries[i].SectionID < summaries[j].SectionID
	})
}
