package repository

import (
	"strconv"
	"strings"

	"github.com/noah-isme/course-registry/internal/models"
)

var enrollmentHeader = []string{"student_id", "course_code", "semester", "grade"}

// EnrollmentRepository holds the enrollment facts backed by a CSV file.
// Fact order is insertion order from load; it carries no meaning but is
// preserved across rewrites. Course codes are stored uppercase.
type EnrollmentRepository struct {
	path        string
	enrollments []models.Enrollment
}

// NewEnrollmentRepository loads the facts from the given CSV path. A missing
// file starts an empty set; malformed rows are skipped.
func NewEnrollmentRepository(path string) (*EnrollmentRepository, error) {
	r := &EnrollmentRepository{path: path}
	if err := r.load(); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *EnrollmentRepository) load() error {
	rows, err := readRows(r.path, len(enrollmentHeader))
	if err != nil {
		return err
	}
	r.enrollments = r.enrollments[:0]
	for _, row := range rows {
		id, err := strconv.ParseInt(strings.TrimSpace(row[0]), 10, 64)
		if err != nil {
			continue
		}
		r.enrollments = append(r.enrollments, models.Enrollment{
			StudentID:  id,
			CourseCode: strings.ToUpper(strings.TrimSpace(row[1])),
			Semester:   strings.TrimSpace(row[2]),
			Grade:      strings.TrimSpace(row[3]),
		})
	}
	return nil
}

// Save rewrites the backing file: header, then one line per fact in current
// in-memory order.
func (r *EnrollmentRepository) Save() error {
	rows := make([][]string, 0, len(r.enrollments))
	for _, e := range r.enrollments {
		rows = append(rows, []string{
			strconv.FormatInt(e.StudentID, 10),
			e.CourseCode,
			e.Semester,
			e.Grade,
		})
	}
	return writeRows(r.path, enrollmentHeader, rows)
}

// All returns a copy of the facts in order.
func (r *EnrollmentRepository) All() []models.Enrollment {
	out := make([]models.Enrollment, len(r.enrollments))
	copy(out, r.enrollments)
	return out
}

// Count returns the total number of facts.
func (r *EnrollmentRepository) Count() int {
	return len(r.enrollments)
}

// Exists reports whether a fact for (studentID, courseCode) is present.
func (r *EnrollmentRepository) Exists(studentID int64, courseCode string) bool {
	return r.indexOf(studentID, courseCode) >= 0
}

// ByStudent returns the student's facts in order.
func (r *EnrollmentRepository) ByStudent(studentID int64) []models.Enrollment {
	var matches []models.Enrollment
	for _, e := range r.enrollments {
		if e.StudentID == studentID {
			matches = append(matches, e)
		}
	}
	return matches
}

// ByCourse returns the course's facts in order, matching the code
// case-insensitively.
func (r *EnrollmentRepository) ByCourse(courseCode string) []models.Enrollment {
	needle := strings.ToUpper(strings.TrimSpace(courseCode))
	var matches []models.Enrollment
	for _, e := range r.enrollments {
		if e.CourseCode == needle {
			matches = append(matches, e)
		}
	}
	return matches
}

// CountForCourse returns the number of facts referencing the course.
func (r *EnrollmentRepository) CountForCourse(courseCode string) int {
	return len(r.ByCourse(courseCode))
}

// Append adds a fact and persists the set.
func (r *EnrollmentRepository) Append(e models.Enrollment) error {
	e.CourseCode = strings.ToUpper(strings.TrimSpace(e.CourseCode))
	r.enrollments = append(r.enrollments, e)
	return r.Save()
}

// Remove deletes the unique fact for (studentID, courseCode) and persists,
// or returns ErrNoRecord.
func (r *EnrollmentRepository) Remove(studentID int64, courseCode string) error {
	i := r.indexOf(studentID, courseCode)
	if i < 0 {
		return ErrNoRecord
	}
	r.enrollments = append(r.enrollments[:i], r.enrollments[i+1:]...)
	return r.Save()
}

// UpdateGrade overwrites the grade of the matching fact in place and
// persists, or returns ErrNoRecord.
func (r *EnrollmentRepository) UpdateGrade(studentID int64, courseCode, grade string) error {
	i := r.indexOf(studentID, courseCode)
	if i < 0 {
		return ErrNoRecord
	}
	r.enrollments[i].Grade = grade
	return r.Save()
}

func (r *EnrollmentRepository) indexOf(studentID int64, courseCode string) int {
	needle := strings.ToUpper(strings.TrimSpace(courseCode))
	for i, e := range r.enrollments {
		if e.StudentID == studentID && e.CourseCode == needle {
			return i
		}
	}
	return -1
}
