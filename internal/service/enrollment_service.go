package service

import (
	"errors"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/noah-isme/course-registry/internal/models"
	"github.com/noah-isme/course-registry/internal/repository"
	appErrors "github.com/noah-isme/course-registry/pkg/errors"
)

type enrollmentStore interface {
	All() []models.Enrollment
	Count() int
	Exists(studentID int64, courseCode string) bool
	ByStudent(studentID int64) []models.Enrollment
	ByCourse(courseCode string) []models.Enrollment
	CountForCourse(courseCode string) int
	Append(e models.Enrollment) error
	Remove(studentID int64, courseCode string) error
	UpdateGrade(studentID int64, courseCode, grade string) error
}

type studentReader interface {
	FindByID(id int64) (*models.Student, error)
}

type courseCatalog interface {
	FindByCode(code string) (*models.Course, error)
	All() []*models.Course
}

// RegisterRequest describes a registration attempt with raw menu inputs.
// Validation happens inside Register, in a fixed order, so each failure maps
// to exactly one condition in the error taxonomy.
type RegisterRequest struct {
	StudentID  string
	CourseCode string
	Semester   string
}

// RegistrationResult reports a successful registration with resolved
// display names.
type RegistrationResult struct {
	StudentID   int64
	StudentName string
	CourseCode  string
	CourseName  string
	Semester    string
}

// DropResult reports a successful drop. Names fall back to the raw
// identifier or code when the referenced record has since been deleted.
type DropResult struct {
	StudentID   int64
	StudentName string
	CourseCode  string
	CourseName  string
}

// GradeResult reports a successful grade assignment.
type GradeResult struct {
	StudentID   int64
	StudentName string
	CourseCode  string
	CourseName  string
	Grade       string
}

// EnrollmentService owns the enrollment facts and the invariants connecting
// students, courses and enrollments: duplicate prevention, capacity limits
// and the derived enrollment-count cache on courses. It reads the student
// and course stores but never mutates their records beyond the controlled
// count-synchronization pass.
type EnrollmentService struct {
	repo     enrollmentStore
	students studentReader
	courses  courseCatalog
	logger   *zap.Logger
}

// NewEnrollmentService constructs the service and immediately recomputes
// every course's enrollment count from the loaded facts, so the cache is
// consistent with the data file regardless of prior state.
func NewEnrollmentService(repo enrollmentStore, students studentReader, courses courseCatalog, logger *zap.Logger) *EnrollmentService {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &EnrollmentService{repo: repo, students: students, courses: courses, logger: logger}
	s.syncEnrollmentCounts()
	return s
}

// Register creates a new enrollment fact with an empty grade. Validation
// short-circuits on the first failure: identifier parse, student existence,
// course existence, duplicate enrollment, capacity.
func (s *EnrollmentService) Register(req RegisterRequest) (*RegistrationResult, error) {
	studentID, err := parseStudentID(req.StudentID)
	if err != nil {
		return nil, err
	}
	student, err := s.students.FindByID(studentID)
	if err != nil {
		if errors.Is(err, repository.ErrNoRecord) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "student does not exist in system")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, "failed to load student")
	}
	code := strings.ToUpper(strings.TrimSpace(req.CourseCode))
	course, err := s.courses.FindByCode(code)
	if err != nil {
		if errors.Is(err, repository.ErrNoRecord) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "course does not exist in system")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, "failed to load course")
	}
	if s.repo.Exists(studentID, code) {
		return nil, appErrors.Clone(appErrors.ErrAlreadyEnrolled, "student is already enrolled in this course")
	}
	if course.IsFull() {
		return nil, appErrors.Clone(appErrors.ErrCourseFull, "course is full")
	}

	fact := models.Enrollment{
		StudentID:  studentID,
		CourseCode: code,
		Semester:   strings.TrimSpace(req.Semester),
	}
	if err := s.repo.Append(fact); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, "failed to save enrollment")
	}
	s.syncEnrollmentCounts()

	s.logger.Info("student registered",
		zap.Int64("student_id", studentID),
		zap.String("course_code", code),
		zap.String("semester", fact.Semester),
	)
	return &RegistrationResult{
		StudentID:   studentID,
		StudentName: student.FullName(),
		CourseCode:  code,
		CourseName:  course.Name,
		Semester:    fact.Semester,
	}, nil
}

// Drop removes the unique enrollment fact for (student, course). The success
// report resolves names best-effort: a deleted student or course record
// falls back to the raw identifier or code rather than failing the drop.
func (s *EnrollmentService) Drop(studentID, courseCode string) (*DropResult, error) {
	id, err := parseStudentID(studentID)
	if err != nil {
		return nil, err
	}
	code := strings.ToUpper(strings.TrimSpace(courseCode))
	if !s.repo.Exists(id, code) {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "student is not enrolled in this course")
	}

	studentName := strconv.FormatInt(id, 10)
	if student, err := s.students.FindByID(id); err == nil {
		studentName = student.FullName()
	}
	courseName := code
	if course, err := s.courses.FindByCode(code); err == nil {
		courseName = course.Name
	}

	if err := s.repo.Remove(id, code); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, "failed to remove enrollment")
	}
	s.syncEnrollmentCounts()

	s.logger.Info("student dropped",
		zap.Int64("student_id", id),
		zap.String("course_code", code),
	)
	return &DropResult{StudentID: id, StudentName: studentName, CourseCode: code, CourseName: courseName}, nil
}

// AssignGrade overwrites the grade of an existing enrollment fact. The grade
// must belong to the closed letter-grade set, matched case-insensitively.
func (s *EnrollmentService) AssignGrade(studentID, courseCode, grade string) (*GradeResult, error) {
	id, err := parseStudentID(studentID)
	if err != nil {
		return nil, err
	}
	normalized, ok := models.NormalizeGrade(grade)
	if !ok {
		return nil, appErrors.Clone(appErrors.ErrInvalidGrade, "invalid grade format")
	}
	code := strings.ToUpper(strings.TrimSpace(courseCode))
	if err := s.repo.UpdateGrade(id, code, normalized); err != nil {
		if errors.Is(err, repository.ErrNoRecord) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "enrollment does not exist")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, "failed to save grade")
	}

	studentName := strconv.FormatInt(id, 10)
	if student, err := s.students.FindByID(id); err == nil {
		studentName = student.FullName()
	}
	courseName := code
	if course, err := s.courses.FindByCode(code); err == nil {
		courseName = course.Name
	}

	s.logger.Info("grade assigned",
		zap.Int64("student_id", id),
		zap.String("course_code", code),
		zap.String("grade", normalized),
	)
	return &GradeResult{StudentID: id, StudentName: studentName, CourseCode: code, CourseName: courseName, Grade: normalized}, nil
}

// IsEnrolled reports whether an enrollment fact exists for the pair.
func (s *EnrollmentService) IsEnrolled(studentID int64, courseCode string) bool {
	return s.repo.Exists(studentID, courseCode)
}

// EnrollmentsForStudent returns the student's facts in storage order.
func (s *EnrollmentService) EnrollmentsForStudent(studentID int64) []models.Enrollment {
	return s.repo.ByStudent(studentID)
}

// EnrollmentsForCourse returns the course's facts in storage order.
func (s *EnrollmentService) EnrollmentsForCourse(courseCode string) []models.Enrollment {
	return s.repo.ByCourse(courseCode)
}

// CountForCourse returns the number of facts referencing the course.
func (s *EnrollmentService) CountForCourse(courseCode string) int {
	return s.repo.CountForCourse(courseCode)
}

// StudentSchedule resolves the student's enrollments into a schedule view.
// Unresolved courses leave the name blank and are excluded from the credit
// total.
func (s *EnrollmentService) StudentSchedule(studentID string) (*models.StudentSchedule, error) {
	id, err := parseStudentID(studentID)
	if err != nil {
		return nil, err
	}
	student, err := s.students.FindByID(id)
	if err != nil {
		if errors.Is(err, repository.ErrNoRecord) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "student does not exist in system")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, "failed to load student")
	}

	facts := s.repo.ByStudent(id)
	schedule := &models.StudentSchedule{Student: student, TotalCourses: len(facts)}
	for _, fact := range facts {
		entry := models.ScheduleEntry{
			CourseCode: fact.CourseCode,
			Semester:   fact.Semester,
			Grade:      fact.DisplayGrade(),
		}
		if course, err := s.courses.FindByCode(fact.CourseCode); err == nil {
			entry.CourseName = course.Name
			entry.Credits = course.Credits
			schedule.TotalCredits += course.Credits
		}
		schedule.Entries = append(schedule.Entries, entry)
	}
	return schedule, nil
}

// CourseRoster resolves the course's enrollments into a roster view.
// Unresolved students leave the name and year blank.
func (s *EnrollmentService) CourseRoster(courseCode string) (*models.CourseRoster, error) {
	code := strings.ToUpper(strings.TrimSpace(courseCode))
	course, err := s.courses.FindByCode(code)
	if err != nil {
		if errors.Is(err, repository.ErrNoRecord) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "course does not exist in system")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, "failed to load course")
	}

	roster := &models.CourseRoster{Course: course}
	for _, fact := range s.repo.ByCourse(code) {
		entry := models.RosterEntry{
			StudentID: fact.StudentID,
			Grade:     fact.DisplayGrade(),
		}
		if student, err := s.students.FindByID(fact.StudentID); err == nil {
			entry.StudentName = student.FullName()
			entry.Year = strconv.Itoa(student.Year)
		}
		roster.Entries = append(roster.Entries, entry)
	}
	return roster, nil
}

// AllEnrollments returns every fact with both sides resolved best-effort.
func (s *EnrollmentService) AllEnrollments() []models.EnrollmentRow {
	facts := s.repo.All()
	rows := make([]models.EnrollmentRow, 0, len(facts))
	for _, fact := range facts {
		row := models.EnrollmentRow{
			StudentID:  fact.StudentID,
			CourseCode: fact.CourseCode,
			Semester:   fact.Semester,
			Grade:      fact.DisplayGrade(),
		}
		if student, err := s.students.FindByID(fact.StudentID); err == nil {
			row.StudentName = student.FullName()
		}
		if course, err := s.courses.FindByCode(fact.CourseCode); err == nil {
			row.CourseName = course.Name
		}
		rows = append(rows, row)
	}
	return rows
}

// TotalEnrollments returns the size of the enrollment set.
func (s *EnrollmentService) TotalEnrollments() int {
	return s.repo.Count()
}

// syncEnrollmentCounts overwrites every course's cached enrollment count
// with the current fact count for its code. Full pass, not incremental;
// no other code path writes the count.
func (s *EnrollmentService) syncEnrollmentCounts() {
	for _, course := range s.courses.All() {
		course.SetEnrolledCount(s.repo.CountForCourse(course.Code))
	}
}

// parseStudentID converts a raw identifier field, mapping parse failures to
// the invalid-identifier condition.
func parseStudentID(raw string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return 0, appErrors.Clone(appErrors.ErrInvalidStudentID, "invalid student ID")
	}
	return id, nil
}
