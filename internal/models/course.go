package models

import "strings"

// Course represents a single course offering. The enrolled count is a cache
// derived from the enrollment set; it is never persisted and only the
// count-synchronization pass may write it.
type Course struct {
	Code       string `json:"course_code"`
	Name       string `json:"course_name"`
	Instructor string `json:"instructor"`
	Credits    int    `json:"credits"`
	Capacity   int    `json:"capacity"`

	enrolled int
}

// NewCourse builds a course with a normalized (uppercase) code.
func NewCourse(code, name, instructor string, credits, capacity int) *Course {
	return &Course{
		Code:       strings.ToUpper(strings.TrimSpace(code)),
		Name:       name,
		Instructor: instructor,
		Credits:    credits,
		Capacity:   capacity,
	}
}

// EnrolledCount returns the cached number of active enrollments.
func (c *Course) EnrolledCount() int {
	return c.enrolled
}

// SetEnrolledCount overwrites the cached enrollment count. Called only by
// the enrollment count-synchronization pass.
func (c *Course) SetEnrolledCount(count int) {
	c.enrolled = count
}

// IsFull reports whether the course has no seats left. A capacity of zero
// means the course is always full.
func (c *Course) IsFull() bool {
	return c.enrolled >= c.Capacity
}

// AvailableSeats returns the number of seats remaining.
func (c *Course) AvailableSeats() int {
	return c.Capacity - c.enrolled
}
