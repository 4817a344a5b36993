package dto

import "github.com/Sai69186/ai-time-table-generator/internal/models"

// GenerateTimetableRequest configures one generation run for a section.
// Every field except section_id falls back to the configured defaults. The
// lunch window may be given either as lunch_end or as lunch_duration minutes
// past lunch_start; slot length is either slot_duration directly or derived
// from period_duration + break_duration.
type GenerateTimetableRequest struct {
	SectionID      int      `json:"section_id" validate:"required"`
	StartTime      string   `json:"start_time" validate:"omitempty,len=5"`
	EndTime        string   `json:"end_time" validate:"omitempty,len=5"`
	SlotDuration   int      `json:"slot_duration" validate:"omitempty,min=1"`
	PeriodDuration int      `json:"period_duration" validate:"omitempty,min=1"`
	BreakDuration  int      `json:"break_duration" validate:"omitempty,min=0"`
	LunchStart     string   `json:"lunch_start" validate:"omitempty,len=5"`
	LunchEnd       string   `json:"lunch_end" validate:"omitempty,len=5"`
	LunchDuration  int      `json:"lunch_duration" validate:"omitempty,min=1"`
	WorkingDays    []string `json:"working_days"`
}

// GenerateTimetableResponse returns the stored record plus its conflict
// report. Conflicts do not fail generation; they ride along as warnings.
type GenerateTimetableResponse struct {
	Timetable models.Timetable      `json:"timetable"`
	Conflicts models.ConflictReport `json:"conflicts"`
}
