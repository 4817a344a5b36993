package models

// Branch represents a department offering sections.
type Branch struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Code string `json:"code"`
}

// Section represents a student cohort timetables are generated for.
type Section struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Year     int    `json:"year"`
	Semester int    `json:"semester"`
	BranchID int    `json:"branch_id,omitempty"`
	Strength int    `json:"strength"`
}

// Teacher represents an instructor record.
type Teacher struct {
	ID             int    `json:"id"`
	Name           string `json:"name"`
	EmployeeID     string `json:"employee_id"`
	Department     string `json:"department"`
	MaxHoursPerDay int    `json:"max_hours_per_day"`
}

// Room represents a teaching venue.
type Room struct {
	ID       int    `json:"id"`
	Number   string `json:"number"`
	Building string `json:"building"`
	Capacity int    `json:"capacity"`
	RoomType string `json:"room_type"`
}

// Subject represents a taught discipline.
type Subject struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	Code         string `json:"code"`
	Credits      int    `json:"credits"`
	SubjectType  string `json:"subject_type"`
	HoursPerWeek int    `json:"hours_per_week"`
}

// Course assigns one subject to one section with one teacher and optionally
// one room. Display fields are denormalised at creation time; dangling
// references are substituted with placeholder strings rather than rejected.
type Course struct {
	ID        int `json:"id"`
	SectionID int `json:"section_id"`
	SubjectID int `json:"subject_id"`
	TeacherID int `json:"teacher_id"`
	RoomID    int `json:"room_id,omitempty"`

	SectionName string `json:"section_name"`
	SubjectName string `json:"subject_name"`
	SubjectCode string `json:"subject_code"`
	TeacherName string `json:"teacher_name"`
	RoomNumber  string `json:"room_number"`
	Building    string `json:"building"`
}
