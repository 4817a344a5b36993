package models

import "time"

// TimeSlot is a bounded interval within a working day, expressed as "HH:MM"
// times. Slots are transient values produced fresh on every generation run.
type TimeSlot struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// SlotAssignment is one filled cell of a generated timetable. Immutable once
// placed into a Timetable.
type SlotAssignment struct {
	Day         string `json:"day"`
	StartTime   string `json:"start_time"`
	EndTime     string `json:"end_time"`
	CourseID    int    `json:"course_id,omitempty"`
	SubjectCode string `json:"subject_code,omitempty"`
	SubjectName string `json:"subject_name,omitempty"`
	TeacherID   int    `json:"teacher_id,omitempty"`
	TeacherName string `json:"teacher_name,omitempty"`
	RoomID      int    `json:"room_id,omitempty"`
	RoomNumber  string `json:"room_number,omitempty"`
	Building    string `json:"building,omitempty"`
	IsBreak     bool   `json:"is_break,omitempty"`
}

// ConflictDetails pinpoints the cell and resource of one detected collision.
type ConflictDetails struct {
	Day     string `json:"day"`
	Time    string `json:"time"`
	Teacher string `json:"teacher,omitempty"`
	Room    string `json:"room,omitempty"`
	Course  string `json:"course"`
}

// Conflict describes a teacher or room double-booking found during one
// generation pass. The list is append-only and never deduplicated.
type Conflict struct {
	Type    string          `json:"type"`
	Message string          `json:"message"`
	Details ConflictDetails `json:"details"`
}

// ConflictReport aggregates the conflicts of a single generation run.
type ConflictReport struct {
	TotalConflicts int        `json:"total_conflicts"`
	Conflicts      []Conflict `json:"conflicts"`
}

// Timetable is the stored output of one generation run for a section. Each
// run overwrites the previous record wholesale; only the latest is kept.
type Timetable struct {
	ID          string                      `json:"id"`
	SectionID   int                         `json:"section_id"`
	Name        string                      `json:"name"`
	SectionName string                      `json:"section_name"`
	WorkingDays []string                    `json:"working_days"`
	Slots       map[string][]SlotAssignment `json:"slots"`
	Conflicts   ConflictReport              `json:"conflicts"`
	GeneratedAt time.Time                   `json:"generated_at"`
}

// TimetableSummary is the listing projection of a stored timetable.
type TimetableSummary struct {
	ID          string    `json:"id"`
	SectionID   int       `json:"section_id"`
	SectionName string    `json:"section_name"`
	GeneratedAt time.Time `json:"generated_at"`
	TotalSlots  int       `json:"total_slots"`
	Conflicts   int       `json:"conflicts"`
}

// Conflict type discriminators.
const (
	ConflictTypeTeacher = "teacher"
	ConflictTypeRoom    = "room"
)
