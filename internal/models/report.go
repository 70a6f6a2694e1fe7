package models

// ScheduleEntry is one row of a student schedule. CourseName is blank and
// Credits zero when the referenced course no longer exists.
type ScheduleEntry struct {
	CourseCode string `json:"course_code"`
	CourseName string `json:"course_name"`
	Semester   string `json:"semester"`
	Grade      string `json:"grade"`
	Credits    int    `json:"credits"`
}

// StudentSchedule is the resolved view of one student's enrollments with
// aggregate totals. Credits of unresolved courses are excluded from the total.
type StudentSchedule struct {
	Student      *Student        `json:"student"`
	Entries      []ScheduleEntry `json:"entries"`
	TotalCourses int             `json:"total_courses"`
	TotalCredits int             `json:"total_credits"`
}

// RosterEntry is one row of a course roster. StudentName and Year are blank
// when the referenced student no longer exists.
type RosterEntry struct {
	StudentID   int64  `json:"student_id"`
	StudentName string `json:"student_name"`
	Year        string `json:"year"`
	Grade       string `json:"grade"`
}

// CourseRoster is the resolved view of one course's enrollments.
type CourseRoster struct {
	Course  *Course       `json:"course"`
	Entries []RosterEntry `json:"entries"`
}

// EnrollmentRow is one fully resolved enrollment for global reporting, with
// blank names where either side is missing.
type EnrollmentRow struct {
	StudentID   int64  `json:"student_id"`
	StudentName string `json:"student_name"`
	CourseCode  string `json:"course_code"`
	CourseName  string `json:"course_name"`
	Semester    string `json:"semester"`
	Grade       string `json:"grade"`
}

// Statistics aggregates system-wide counters for the reports menu.
type Statistics struct {
	TotalStudents     int     `json:"total_students"`
	TotalCourses      int     `json:"total_courses"`
	TotalEnrollments  int     `json:"total_enrollments"`
	AvgPerCourse      float64 `json:"avg_students_per_course"`
	TopCourse         *Course `json:"-"`
	TopCourseEnrolled int     `json:"top_course_enrolled"`
}
