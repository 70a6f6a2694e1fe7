package service

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/course-registry/internal/models"
	"github.com/noah-isme/course-registry/internal/repository"
	appErrors "github.com/noah-isme/course-registry/pkg/errors"
)

type studentStore interface {
	All() []*models.Student
	Count() int
	FindByID(id int64) (*models.Student, error)
	SearchByName(term string) []*models.Student
	Add(s *models.Student) error
	Remove(id int64) error
	Save() error
}

// CreateStudentRequest holds the fields for adding a student. The identifier
// is always auto-generated.
type CreateStudentRequest struct {
	FirstName string `validate:"required"`
	LastName  string `validate:"required"`
	Email     string `validate:"required,email"`
	Program   string `validate:"required"`
	Year      int    `validate:"required,min=1,max=4"`
}

// UpdateStudentRequest holds partial updates; zero values keep the current
// field.
type UpdateStudentRequest struct {
	FirstName string
	LastName  string
	Email     string `validate:"omitempty,email"`
	Program   string
	Year      int `validate:"omitempty,min=1,max=4"`
}

// StudentService handles student record use-cases. Removing a student does
// not cascade to enrollment facts.
type StudentService struct {
	repo      studentStore
	validator *validator.Validate
	logger    *zap.Logger
}

// NewStudentService constructs the student service.
func NewStudentService(repo studentStore, validate *validator.Validate, logger *zap.Logger) *StudentService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &StudentService{repo: repo, validator: validate, logger: logger}
}

// List returns all students in storage order.
func (s *StudentService) List() []*models.Student {
	return s.repo.All()
}

// Count returns the number of students.
func (s *StudentService) Count() int {
	return s.repo.Count()
}

// Get returns the student for a raw identifier string.
func (s *StudentService) Get(studentID string) (*models.Student, error) {
	id, err := parseStudentID(studentID)
	if err != nil {
		return nil, err
	}
	student, err := s.repo.FindByID(id)
	if err != nil {
		if errors.Is(err, repository.ErrNoRecord) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, fmt.Sprintf("no student found with ID %d", id))
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, "failed to load student")
	}
	return student, nil
}

// SearchByName returns students whose first or last name contains the term.
func (s *StudentService) SearchByName(term string) []*models.Student {
	return s.repo.SearchByName(term)
}

// Create adds a new student with a generated identifier and persists.
func (s *StudentService) Create(req CreateStudentRequest) (*models.Student, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, "invalid student data")
	}
	student := &models.Student{
		ID:        models.GenerateStudentID(),
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Program:   req.Program,
		Year:      req.Year,
	}
	if err := s.repo.Add(student); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, "failed to save student")
	}
	s.logger.Info("student added", zap.Int64("student_id", student.ID))
	return student, nil
}

// Update applies non-zero fields to an existing student and persists.
func (s *StudentService) Update(studentID string, req UpdateStudentRequest) (*models.Student, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, "invalid student data")
	}
	student, err := s.Get(studentID)
	if err != nil {
		return nil, err
	}
	if req.FirstName != "" {
		student.FirstName = req.FirstName
	}
	if req.LastName != "" {
		student.LastName = req.LastName
	}
	if req.Email != "" {
		student.Email = req.Email
	}
	if req.Program != "" {
		student.Program = req.Program
	}
	if req.Year != 0 {
		student.Year = req.Year
	}
	if err := s.repo.Save(); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, "failed to save student")
	}
	s.logger.Info("student updated", zap.Int64("student_id", student.ID))
	return student, nil
}

// Delete removes a student record. Enrollment facts referencing the
// identifier remain; lookups against them fall back to the raw ID.
func (s *StudentService) Delete(studentID string) (*models.Student, error) {
	student, err := s.Get(studentID)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Remove(student.ID); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, "failed to remove student")
	}
	s.logger.Info("student removed", zap.Int64("student_id", student.ID))
	return student, nil
}
