package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/course-registry/internal/models"
	"github.com/noah-isme/course-registry/internal/repository"
	appErrors "github.com/noah-isme/course-registry/pkg/errors"
)

type courseStore interface {
	All() []*models.Course
	Count() int
	FindByCode(code string) (*models.Course, error)
	SearchByName(term string) []*models.Course
	Add(c *models.Course) error
	Remove(code string) error
	Save() error
}

// CreateCourseRequest holds the fields for adding a course.
type CreateCourseRequest struct {
	Code       string `validate:"required"`
	Name       string `validate:"required"`
	Instructor string `validate:"required"`
	Credits    int    `validate:"required,min=1,max=4"`
	Capacity   int    `validate:"min=0"`
}

// UpdateCourseRequest holds partial updates; zero values keep the current
// field. The enrolled count is not editable through any request.
type UpdateCourseRequest struct {
	Name       string
	Instructor string
	Credits    int  `validate:"omitempty,min=1,max=4"`
	Capacity   *int `validate:"omitempty,min=0"`
}

// CourseService handles course catalog use-cases. Removing a course does
// not cascade to enrollment facts.
type CourseService struct {
	repo      courseStore
	validator *validator.Validate
	logger    *zap.Logger
}

// NewCourseService constructs the course service.
func NewCourseService(repo courseStore, validate *validator.Validate, logger *zap.Logger) *CourseService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CourseService{repo: repo, validator: validate, logger: logger}
}

// List returns all courses in storage order.
func (s *CourseService) List() []*models.Course {
	return s.repo.All()
}

// Count returns the number of courses.
func (s *CourseService) Count() int {
	return s.repo.Count()
}

// Get returns the course for a code, matched case-insensitively.
func (s *CourseService) Get(code string) (*models.Course, error) {
	course, err := s.repo.FindByCode(code)
	if err != nil {
		if errors.Is(err, repository.ErrNoRecord) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, fmt.Sprintf("no course found with code %s", strings.ToUpper(strings.TrimSpace(code))))
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, "failed to load course")
	}
	return course, nil
}

// SearchByName returns courses whose name contains the term.
func (s *CourseService) SearchByName(term string) []*models.Course {
	return s.repo.SearchByName(term)
}

// Create adds a new course and persists. Course codes are unique keys.
func (s *CourseService) Create(req CreateCourseRequest) (*models.Course, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, "invalid course data")
	}
	if _, err := s.repo.FindByCode(req.Code); err == nil {
		return nil, appErrors.Clone(appErrors.ErrConflict, "course code already exists")
	}
	course := models.NewCourse(req.Code, req.Name, req.Instructor, req.Credits, req.Capacity)
	if err := s.repo.Add(course); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, "failed to save course")
	}
	s.logger.Info("course added", zap.String("course_code", course.Code))
	return course, nil
}

// Update applies non-zero fields to an existing course and persists. The
// derived enrollment count is untouched.
func (s *CourseService) Update(code string, req UpdateCourseRequest) (*models.Course, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, "invalid course data")
	}
	course, err := s.Get(code)
	if err != nil {
		return nil, err
	}
	if req.Name != "" {
		course.Name = req.Name
	}
	if req.Instructor != "" {
		course.Instructor = req.Instructor
	}
	if req.Credits != 0 {
		course.Credits = req.Credits
	}
	if req.Capacity != nil {
		course.Capacity = *req.Capacity
	}
	if err := s.repo.Save(); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, "failed to save course")
	}
	s.logger.Info("course updated", zap.String("course_code", course.Code))
	return course, nil
}

// Delete removes a course record. Enrollment facts referencing the code
// remain; lookups against them fall back to the raw code.
func (s *CourseService) Delete(code string) (*models.Course, error) {
	course, err := s.Get(code)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Remove(course.Code); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, "failed to remove course")
	}
	s.logger.Info("course removed", zap.String("course_code", course.Code))
	return course, nil
}
