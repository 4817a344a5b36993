package dto

// CreateBranchRequest captures fields for creating a branch.
type CreateBranchRequest struct {
	Name string `json:"name" validate:"required"`
	Code string `json:"code" validate:"required"`
}

// CreateSectionRequest captures fields for creating a section.
type CreateSectionRequest struct {
	Name     string `json:"name" validate:"required"`
	Year     int    `json:"year" validate:"required,min=1"`
	Semester int    `json:"semester" validate:"required,min=1"`
	BranchID int    `json:"branch_id"`
	Strength int    `json:"strength" validate:"omitempty,min=1"`
}

// CreateTeacherRequest captures fields for creating a teacher.
type CreateTeacherRequest struct {
	Name           string `json:"name" validate:"required"`
	EmployeeID     string `json:"employee_id" validate:"required"`
	Department     string `json:"department"`
	MaxHoursPerDay int    `json:"max_hours_per_day" validate:"omitempty,min=1"`
}

// CreateRoomRequest captures fields for creating a room.
type CreateRoomRequest struct {
	Number   string `json:"number" validate:"required"`
	Building string `json:"building" validate:"required"`
	Capacity int    `json:"capacity" validate:"omitempty,min=1"`
	RoomType string `json:"room_type"`
}

// CreateSubjectRequest captures fields for creating a subject.
type CreateSubjectRequest struct {
	Name         string `json:"name" validate:"required"`
	Code         string `json:"code" validate:"required"`
	Credits      int    `json:"credits" validate:"omitempty,min=1"`
	SubjectType  string `json:"subject_type"`
	HoursPerWeek int    `json:"hours_per_week" validate:"omitempty,min=1"`
}

// CreateCourseRequest assigns a subject/teacher/room to a section. The room
// is optional; a missing or dangling room renders as the "TBA" placeholder.
type CreateCourseRequest struct {
	SectionID int `json:"section_id" validate:"required"`
	SubjectID int `json:"subject_id" validate:"required"`
	TeacherID int `json:"teacher_id" validate:"required"`
	RoomID    int `json:"room_id"`
}
