package models

import "strings"

// GradePlaceholder is shown in schedules and rosters for ungraded enrollments.
const GradePlaceholder = "-"

// validGrades is the closed set of letter grades accepted by grade assignment.
var validGrades = []string{"A", "A-", "B+", "B", "B-", "C+", "C", "C-", "D", "F"}

// Enrollment is one fact linking a student to a course for a semester.
// Grade stays empty until assigned. The fact holds plain identifiers only;
// deleting the referenced student or course leaves the fact orphaned.
type Enrollment struct {
	StudentID  int64  `json:"student_id"`
	CourseCode string `json:"course_code"`
	Semester   string `json:"semester"`
	Grade      string `json:"grade"`
}

// DisplayGrade substitutes the placeholder for an empty grade.
func (e Enrollment) DisplayGrade() string {
	if e.Grade == "" {
		return GradePlaceholder
	}
	return e.Grade
}

// NormalizeGrade uppercases the input and reports whether it belongs to the
// closed grade set.
func NormalizeGrade(grade string) (string, bool) {
	g := strings.ToUpper(strings.TrimSpace(grade))
	for _, valid := range validGrades {
		if g == valid {
			return g, true
		}
	}
	return g, false
}

// ValidGrades returns the accepted letter grades in display order.
func ValidGrades() []string {
	out := make([]string, len(validGrades))
	copy(out, validGrades)
	return out
}
