package repository

import (
	"strconv"
	"strings"

	"github.com/noah-isme/course-registry/internal/models"
)

var courseHeader = []string{"course_code", "course_name", "instructor", "credits", "capacity"}

// CourseRepository holds the course catalog backed by a CSV file. Courses
// are held as pointers so the enrollment-count cache written during count
// synchronization is visible to every reader. The cache itself is never
// persisted.
type CourseRepository struct {
	path    string
	courses []*models.Course
}

// NewCourseRepository loads the catalog from the given CSV path.
func NewCourseRepository(path string) (*CourseRepository, error) {
	r := &CourseRepository{path: path}
	if err := r.load(); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *CourseRepository) load() error {
	rows, err := readRows(r.path, len(courseHeader))
	if err != nil {
		return err
	}
	r.courses = r.courses[:0]
	for _, row := range rows {
		credits, err := strconv.Atoi(strings.TrimSpace(row[3]))
		if err != nil {
			continue
		}
		capacity, err := strconv.Atoi(strings.TrimSpace(row[4]))
		if err != nil {
			continue
		}
		r.courses = append(r.courses, models.NewCourse(row[0], row[1], row[2], credits, capacity))
	}
	return nil
}

// Save rewrites the backing file from the in-memory catalog.
func (r *CourseRepository) Save() error {
	rows := make([][]string, 0, len(r.courses))
	for _, c := range r.courses {
		rows = append(rows, []string{
			c.Code,
			c.Name,
			c.Instructor,
			strconv.Itoa(c.Credits),
			strconv.Itoa(c.Capacity),
		})
	}
	return writeRows(r.path, courseHeader, rows)
}

// All returns the courses in storage order.
func (r *CourseRepository) All() []*models.Course {
	return r.courses
}

// Count returns the number of courses.
func (r *CourseRepository) Count() int {
	return len(r.courses)
}

// FindByCode returns the course matching code case-insensitively or
// ErrNoRecord.
func (r *CourseRepository) FindByCode(code string) (*models.Course, error) {
	needle := strings.ToUpper(strings.TrimSpace(code))
	for _, c := range r.courses {
		if c.Code == needle {
			return c, nil
		}
	}
	return nil, ErrNoRecord
}

// SearchByName returns courses whose name contains the term,
// case-insensitively, in storage order.
func (r *CourseRepository) SearchByName(term string) []*models.Course {
	needle := strings.ToLower(strings.TrimSpace(term))
	if needle == "" {
		return nil
	}
	var matches []*models.Course
	for _, c := range r.courses {
		if strings.Contains(strings.ToLower(c.Name), needle) {
			matches = append(matches, c)
		}
	}
	return matches
}

// Add appends a course and persists the catalog.
func (r *CourseRepository) Add(c *models.Course) error {
	r.courses = append(r.courses, c)
	return r.Save()
}

// Remove deletes the course with the given code and persists. Dependent
// enrollment facts are untouched; orphans are tolerated.
func (r *CourseRepository) Remove(code string) error {
	needle := strings.ToUpper(strings.TrimSpace(code))
	for i, c := range r.courses {
		if c.Code == needle {
			r.courses = append(r.courses[:i], r.courses[i+1:]...)
			return r.Save()
		}
	}
	return ErrNoRecord
}
