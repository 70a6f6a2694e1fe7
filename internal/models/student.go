package models

import (
	"fmt"
	"math/rand"
)

// Student ID bounds. IDs are 10-digit numbers; auto-generated IDs fall in
// the institution's 2023 admission block.
const (
	StudentIDMin = 1000000000
	StudentIDMax = 9999999999

	generatedIDMin = 2023000000
	generatedIDMax = 2023999999
)

// Student represents a learner registered in the institution.
type Student struct {
	ID        int64  `json:"student_id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Program   string `json:"program"`
	Year      int    `json:"year"`
}

// FullName returns the display name used in schedules and rosters.
func (s *Student) FullName() string {
	return fmt.Sprintf("%s %s", s.FirstName, s.LastName)
}

// ValidStudentID reports whether id is a 10-digit identifier.
func ValidStudentID(id int64) bool {
	return id >= StudentIDMin && id <= StudentIDMax
}

// GenerateStudentID draws a random identifier from the generated block.
// There is no uniqueness check against existing students; a collision is
// astronomically unlikely but possible.
func GenerateStudentID() int64 {
	return generatedIDMin + rand.Int63n(generatedIDMax-generatedIDMin+1)
}
