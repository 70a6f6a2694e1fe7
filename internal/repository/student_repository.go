package repository

import (
	"strconv"
	"strings"

	"github.com/noah-isme/course-registry/internal/models"
)

var studentHeader = []string{"student_id", "first_name", "last_name", "email", "program", "year"}

// StudentRepository holds the student collection backed by a CSV file.
// Every mutation rewrites the file in full before returning.
type StudentRepository struct {
	path     string
	students []*models.Student
}

// NewStudentRepository loads the store from the given CSV path. A missing
// file starts an empty collection.
func NewStudentRepository(path string) (*StudentRepository, error) {
	r := &StudentRepository{path: path}
	if err := r.load(); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *StudentRepository) load() error {
	rows, err := readRows(r.path, len(studentHeader))
	if err != nil {
		return err
	}
	r.students = r.students[:0]
	for _, row := range rows {
		id, err := strconv.ParseInt(strings.TrimSpace(row[0]), 10, 64)
		if err != nil {
			continue
		}
		year, err := strconv.Atoi(strings.TrimSpace(row[5]))
		if err != nil {
			continue
		}
		r.students = append(r.students, &models.Student{
			ID:        id,
			FirstName: row[1],
			LastName:  row[2],
			Email:     row[3],
			Program:   row[4],
			Year:      year,
		})
	}
	return nil
}

// Save rewrites the backing file from the in-memory collection.
func (r *StudentRepository) Save() error {
	rows := make([][]string, 0, len(r.students))
	for _, s := range r.students {
		rows = append(rows, []string{
			strconv.FormatInt(s.ID, 10),
			s.FirstName,
			s.LastName,
			s.Email,
			s.Program,
			strconv.Itoa(s.Year),
		})
	}
	return writeRows(r.path, studentHeader, rows)
}

// All returns the students in storage order.
func (r *StudentRepository) All() []*models.Student {
	return r.students
}

// Count returns the number of students.
func (r *StudentRepository) Count() int {
	return len(r.students)
}

// FindByID returns the student with the given identifier or ErrNoRecord.
func (r *StudentRepository) FindByID(id int64) (*models.Student, error) {
	for _, s := range r.students {
		if s.ID == id {
			return s, nil
		}
	}
	return nil, ErrNoRecord
}

// SearchByName returns students whose first or last name contains the term,
// case-insensitively, in storage order.
func (r *StudentRepository) SearchByName(term string) []*models.Student {
	needle := strings.ToLower(strings.TrimSpace(term))
	if needle == "" {
		return nil
	}
	var matches []*models.Student
	for _, s := range r.students {
		if strings.Contains(strings.ToLower(s.FirstName), needle) ||
			strings.Contains(strings.ToLower(s.LastName), needle) {
			matches = append(matches, s)
		}
	}
	return matches
}

// Add appends a student and persists the collection.
func (r *StudentRepository) Add(s *models.Student) error {
	r.students = append(r.students, s)
	return r.Save()
}

// Remove deletes the student with the given identifier and persists.
// Dependent enrollment facts are untouched; orphans are tolerated.
func (r *StudentRepository) Remove(id int64) error {
	for i, s := range r.students {
		if s.ID == id {
			r.students = append(r.students[:i], r.students[i+1:]...)
			return r.Save()
		}
	}
	return ErrNoRecord
}
