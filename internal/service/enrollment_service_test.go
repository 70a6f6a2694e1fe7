package service

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/noah-isme/course-registry/internal/models"
	"github.com/noah-isme/course-registry/internal/repository"
	appErrors "github.com/noah-isme/course-registry/pkg/errors"
)

type fakeEnrollmentStore struct {
	facts []models.Enrollment
}

func (f *fakeEnrollmentStore) All() []models.Enrollment {
	out := make([]models.Enrollment, len(f.facts))
	copy(out, f.facts)
	return out
}

func (f *fakeEnrollmentStore) Count() int { return len(f.facts) }

func (f *fakeEnrollmentStore) Exists(studentID int64, courseCode string) bool {
	return f.indexOf(studentID, courseCode) >= 0
}

func (f *fakeEnrollmentStore) ByStudent(studentID int64) []models.Enrollment {
	var matches []models.Enrollment
	for _, e := range f.facts {
		if e.StudentID == studentID {
			matches = append(matches, e)
		}
	}
	return matches
}

func (f *fakeEnrollmentStore) ByCourse(courseCode string) []models.Enrollment {
	needle := strings.ToUpper(courseCode)
	var matches []models.Enrollment
	for _, e := range f.facts {
		if e.CourseCode == needle {
			matches = append(matches, e)
		}
	}
	return matches
}

func (f *fakeEnrollmentStore) CountForCourse(courseCode string) int {
	return len(f.ByCourse(courseCode))
}

func (f *fakeEnrollmentStore) Append(e models.Enrollment) error {
	e.CourseCode = strings.ToUpper(e.CourseCode)
	f.facts = append(f.facts, e)
	return nil
}

func (f *fakeEnrollmentStore) Remove(studentID int64, courseCode string) error {
	i := f.indexOf(studentID, courseCode)
	if i < 0 {
		return repository.ErrNoRecord
	}
	f.facts = append(f.facts[:i], f.facts[i+1:]...)
	return nil
}

func (f *fakeEnrollmentStore) UpdateGrade(studentID int64, courseCode, grade string) error {
	i := f.indexOf(studentID, courseCode)
	if i < 0 {
		return repository.ErrNoRecord
	}
	f.facts[i].Grade = grade
	return nil
}

func (f *fakeEnrollmentStore) indexOf(studentID int64, courseCode string) int {
	needle := strings.ToUpper(courseCode)
	for i, e := range f.facts {
		if e.StudentID == studentID && e.CourseCode == needle {
			return i
		}
	}
	return -1
}

type fakeStudentReader struct {
	students map[int64]*models.Student
}

func (f *fakeStudentReader) FindByID(id int64) (*models.Student, error) {
	if s, ok := f.students[id]; ok {
		return s, nil
	}
	return nil, repository.ErrNoRecord
}

type fakeCourseCatalog struct {
	courses []*models.Course
}

func (f *fakeCourseCatalog) FindByCode(code string) (*models.Course, error) {
	needle := strings.ToUpper(strings.TrimSpace(code))
	for _, c := range f.courses {
		if c.Code == needle {
			return c, nil
		}
	}
	return nil, repository.ErrNoRecord
}

func (f *fakeCourseCatalog) All() []*models.Course { return f.courses }

func newFixture() (*fakeEnrollmentStore, *fakeStudentReader, *fakeCourseCatalog) {
	repo := &fakeEnrollmentStore{}
	students := &fakeStudentReader{students: map[int64]*models.Student{
		1111111111: {ID: 1111111111, FirstName: "Sarah", LastName: "Johnson", Year: 1},
		2222222222: {ID: 2222222222, FirstName: "Michael", LastName: "Chen", Year: 2},
	}}
	courses := &fakeCourseCatalog{courses: []*models.Course{
		models.NewCourse("CS100", "Intro to Computing", "Dr. Anderson", 3, 2),
		models.NewCourse("CS200", "Data Structures", "Dr. Kim", 4, 30),
	}}
	return repo, students, courses
}

func TestEnrollmentServiceRegister(t *testing.T) {
	repo, students, courses := newFixture()
	svc := NewEnrollmentService(repo, students, courses, zap.NewNop())

	result, err := svc.Register(RegisterRequest{StudentID: "1111111111", CourseCode: "cs100", Semester: "Fall2024"})
	require.NoError(t, err)
	assert.Equal(t, "Sarah Johnson", result.StudentName)
	assert.Equal(t, "Intro to Computing", result.CourseName)
	assert.Equal(t, "CS100", result.CourseCode)

	require.Len(t, repo.facts, 1)
	assert.Equal(t, "CS100", repo.facts[0].CourseCode)
	assert.Equal(t, "", repo.facts[0].Grade)

	course, err := courses.FindByCode("CS100")
	require.NoError(t, err)
	assert.Equal(t, 1, course.EnrolledCount())
}

func TestEnrollmentServiceRegisterValidationOrder(t *testing.T) {
	cases := []struct {
		name    string
		req     RegisterRequest
		wantErr *appErrors.Error
	}{
		{"invalid student id", RegisterRequest{StudentID: "abc", CourseCode: "CS100", Semester: "Fall2024"}, appErrors.ErrInvalidStudentID},
		{"empty student id", RegisterRequest{StudentID: "", CourseCode: "CS100", Semester: "Fall2024"}, appErrors.ErrInvalidStudentID},
		{"unknown student", RegisterRequest{StudentID: "9999999999", CourseCode: "CS100", Semester: "Fall2024"}, appErrors.ErrNotFound},
		{"unknown course", RegisterRequest{StudentID: "1111111111", CourseCode: "CS999", Semester: "Fall2024"}, appErrors.ErrNotFound},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo, students, courses := newFixture()
			svc := NewEnrollmentService(repo, students, courses, zap.NewNop())

			_, err := svc.Register(tc.req)
			require.Error(t, err)
			assert.True(t, appErrors.Is(err, tc.wantErr), "got %v", err)
			assert.Empty(t, repo.facts)
		})
	}
}

func TestEnrollmentServiceRegisterDuplicate(t *testing.T) {
	repo, students, courses := newFixture()
	svc := NewEnrollmentService(repo, students, courses, zap.NewNop())

	_, err := svc.Register(RegisterRequest{StudentID: "1111111111", CourseCode: "CS100", Semester: "Fall2024"})
	require.NoError(t, err)

	_, err = svc.Register(RegisterRequest{StudentID: "1111111111", CourseCode: "cs100", Semester: "Winter2025"})
	require.Error(t, err)
	assert.True(t, appErrors.Is(err, appErrors.ErrAlreadyEnrolled), "got %v", err)
	assert.Len(t, repo.facts, 1)
}

func TestEnrollmentServiceRegisterFullCourse(t *testing.T) {
	repo, students, courses := newFixture()
	svc := NewEnrollmentService(repo, students, courses, zap.NewNop())

	_, err := svc.Register(RegisterRequest{StudentID: "1111111111", CourseCode: "CS100", Semester: "Fall2024"})
	require.NoError(t, err)
	_, err = svc.Register(RegisterRequest{StudentID: "2222222222", CourseCode: "CS100", Semester: "Fall2024"})
	require.NoError(t, err)

	students.students[3333333333] = &models.Student{ID: 3333333333, FirstName: "Priya", LastName: "Patel", Year: 3}
	_, err = svc.Register(RegisterRequest{StudentID: "3333333333", CourseCode: "CS100", Semester: "Fall2024"})
	require.Error(t, err)
	assert.True(t, appErrors.Is(err, appErrors.ErrCourseFull), "got %v", err)
	assert.Len(t, repo.facts, 2)

	course, err := courses.FindByCode("CS100")
	require.NoError(t, err)
	assert.Equal(t, 2, course.EnrolledCount())
	assert.True(t, course.IsFull())
}

func TestEnrollmentServiceRegisterZeroCapacity(t *testing.T) {
	repo, students, courses := newFixture()
	courses.courses = append(courses.courses, models.NewCourse("CS300", "Seminar", "Dr. Lee", 1, 0))
	svc := NewEnrollmentService(repo, students, courses, zap.NewNop())

	_, err := svc.Register(RegisterRequest{StudentID: "1111111111", CourseCode: "CS300", Semester: "Fall2024"})
	require.Error(t, err)
	assert.True(t, appErrors.Is(err, appErrors.ErrCourseFull), "got %v", err)
}

func TestEnrollmentServiceCountSyncOnConstruction(t *testing.T) {
	repo, students, courses := newFixture()
	repo.facts = []models.Enrollment{
		{StudentID: 1111111111, CourseCode: "CS100", Semester: "Fall2024"},
		{StudentID: 2222222222, CourseCode: "CS100", Semester: "Fall2024"},
		{StudentID: 1111111111, CourseCode: "CS200", Semester: "Fall2024"},
	}

	NewEnrollmentService(repo, students, courses, zap.NewNop())

	cs100, err := courses.FindByCode("CS100")
	require.NoError(t, err)
	cs200, err := courses.FindByCode("CS200")
	require.NoError(t, err)
	assert.Equal(t, 2, cs100.EnrolledCount())
	assert.Equal(t, 1, cs200.EnrolledCount())
}

func TestEnrollmentServiceDrop(t *testing.T) {
	repo, students, courses := newFixture()
	svc := NewEnrollmentService(repo, students, courses, zap.NewNop())

	_, err := svc.Register(RegisterRequest{StudentID: "1111111111", CourseCode: "CS100", Semester: "Fall2024"})
	require.NoError(t, err)

	result, err := svc.Drop("1111111111", "cs100")
	require.NoError(t, err)
	assert.Equal(t, "Sarah Johnson", result.StudentName)
	assert.Equal(t, "Intro to Computing", result.CourseName)
	assert.Empty(t, repo.facts)

	course, err := courses.FindByCode("CS100")
	require.NoError(t, err)
	assert.Equal(t, 0, course.EnrolledCount())
}

func TestEnrollmentServiceDropNotEnrolled(t *testing.T) {
	repo, students, courses := newFixture()
	svc := NewEnrollmentService(repo, students, courses, zap.NewNop())

	_, err := svc.Drop("1111111111", "CS100")
	require.Error(t, err)
	assert.True(t, appErrors.Is(err, appErrors.ErrNotFound), "got %v", err)
	assert.Contains(t, appErrors.FromError(err).Message, "not enrolled")
}

func TestEnrollmentServiceDropFallsBackToRawIdentifiers(t *testing.T) {
	repo, _, courses := newFixture()
	repo.facts = []models.Enrollment{{StudentID: 1234567890, CourseCode: "GONE101", Semester: "Fall2024"}}
	students := &fakeStudentReader{students: map[int64]*models.Student{}}
	svc := NewEnrollmentService(repo, students, courses, zap.NewNop())

	result, err := svc.Drop("1234567890", "gone101")
	require.NoError(t, err)
	assert.Equal(t, "1234567890", result.StudentName)
	assert.Equal(t, "GONE101", result.CourseName)
	assert.Empty(t, repo.facts)
}

func TestEnrollmentServiceAssignGrade(t *testing.T) {
	repo, students, courses := newFixture()
	svc := NewEnrollmentService(repo, students, courses, zap.NewNop())

	_, err := svc.Register(RegisterRequest{StudentID: "1111111111", CourseCode: "CS100", Semester: "Fall2024"})
	require.NoError(t, err)

	result, err := svc.AssignGrade("1111111111", "cs100", "b+")
	require.NoError(t, err)
	assert.Equal(t, "B+", result.Grade)
	assert.Equal(t, "B+", repo.facts[0].Grade)

	_, err = svc.AssignGrade("1111111111", "CS100", "Z")
	require.Error(t, err)
	assert.True(t, appErrors.Is(err, appErrors.ErrInvalidGrade), "got %v", err)
	assert.Equal(t, "B+", repo.facts[0].Grade)

	_, err = svc.AssignGrade("2222222222", "CS100", "A")
	require.Error(t, err)
	assert.True(t, appErrors.Is(err, appErrors.ErrNotFound), "got %v", err)
}

func TestEnrollmentServiceQueries(t *testing.T) {
	repo, students, courses := newFixture()
	svc := NewEnrollmentService(repo, students, courses, zap.NewNop())

	_, err := svc.Register(RegisterRequest{StudentID: "1111111111", CourseCode: "CS100", Semester: "Fall2024"})
	require.NoError(t, err)
	_, err = svc.Register(RegisterRequest{StudentID: "1111111111", CourseCode: "CS200", Semester: "Fall2024"})
	require.NoError(t, err)

	assert.True(t, svc.IsEnrolled(1111111111, "cs100"))
	assert.False(t, svc.IsEnrolled(2222222222, "CS100"))

	facts := svc.EnrollmentsForStudent(1111111111)
	require.Len(t, facts, 2)
	assert.Equal(t, "CS100", facts[0].CourseCode)
	assert.Equal(t, "CS200", facts[1].CourseCode)

	assert.Len(t, svc.EnrollmentsForCourse("cs100"), 1)
	assert.Equal(t, 1, svc.CountForCourse("CS200"))
	assert.Equal(t, 2, svc.TotalEnrollments())
}

func TestEnrollmentServiceStudentSchedule(t *testing.T) {
	repo, students, courses := newFixture()
	repo.facts = []models.Enrollment{
		{StudentID: 1111111111, CourseCode: "CS100", Semester: "Fall2024", Grade: "A"},
		{StudentID: 1111111111, CourseCode: "GONE101", Semester: "Fall2024"},
	}
	svc := NewEnrollmentService(repo, students, courses, zap.NewNop())

	schedule, err := svc.StudentSchedule("1111111111")
	require.NoError(t, err)
	assert.Equal(t, 2, schedule.TotalCourses)
	// Only the resolvable course contributes credits.
	assert.Equal(t, 3, schedule.TotalCredits)
	require.Len(t, schedule.Entries, 2)
	assert.Equal(t, "Intro to Computing", schedule.Entries[0].CourseName)
	assert.Equal(t, "A", schedule.Entries[0].Grade)
	assert.Equal(t, "", schedule.Entries[1].CourseName)
	assert.Equal(t, models.GradePlaceholder, schedule.Entries[1].Grade)

	_, err = svc.StudentSchedule("9999999999")
	require.Error(t, err)
	assert.True(t, appErrors.Is(err, appErrors.ErrNotFound), "got %v", err)
}

func TestEnrollmentServiceCourseRoster(t *testing.T) {
	repo, students, courses := newFixture()
	repo.facts = []models.Enrollment{
		{StudentID: 1111111111, CourseCode: "CS100", Semester: "Fall2024", Grade: "B"},
		{StudentID: 4040404040, CourseCode: "CS100", Semester: "Fall2024"},
	}
	svc := NewEnrollmentService(repo, students, courses, zap.NewNop())

	roster, err := svc.CourseRoster("cs100")
	require.NoError(t, err)
	require.Len(t, roster.Entries, 2)
	assert.Equal(t, "Sarah Johnson", roster.Entries[0].StudentName)
	assert.Equal(t, "1", roster.Entries[0].Year)
	assert.Equal(t, "B", roster.Entries[0].Grade)
	// Orphaned fact resolves to blanks.
	assert.Equal(t, "", roster.Entries[1].StudentName)
	assert.Equal(t, "", roster.Entries[1].Year)

	_, err = svc.CourseRoster("CS999")
	require.Error(t, err)
	assert.True(t, appErrors.Is(err, appErrors.ErrNotFound), "got %v", err)
}

func TestEnrollmentServiceAllEnrollments(t *testing.T) {
	repo, students, courses := newFixture()
	repo.facts = []models.Enrollment{
		{StudentID: 1111111111, CourseCode: "CS100", Semester: "Fall2024"},
		{StudentID: 5050505050, CourseCode: "GONE101", Semester: "Fall2024", Grade: "C"},
	}
	svc := NewEnrollmentService(repo, students, courses, zap.NewNop())

	rows := svc.AllEnrollments()
	require.Len(t, rows, 2)
	assert.Equal(t, "Sarah Johnson", rows[0].StudentName)
	assert.Equal(t, "Intro to Computing", rows[0].CourseName)
	assert.Equal(t, "", rows[1].StudentName)
	assert.Equal(t, "", rows[1].CourseName)
	assert.Equal(t, "C", rows[1].Grade)
}

// Lifecycle over real CSV-backed stores: fill a course, reject overflow,
// drop, then re-register.
func TestEnrollmentLifecycleWithRealStores(t *testing.T) {
	dir := t.TempDir()

	studentRepo, err := repository.NewStudentRepository(filepath.Join(dir, "students.csv"))
	require.NoError(t, err)
	require.NoError(t, studentRepo.Add(&models.Student{ID: 1111111111, FirstName: "Sarah", LastName: "Johnson", Year: 1}))
	require.NoError(t, studentRepo.Add(&models.Student{ID: 2222222222, FirstName: "Michael", LastName: "Chen", Year: 2}))

	courseRepo, err := repository.NewCourseRepository(filepath.Join(dir, "courses.csv"))
	require.NoError(t, err)
	require.NoError(t, courseRepo.Add(models.NewCourse("CS100", "Intro to Computing", "Dr. Anderson", 3, 1)))

	enrollmentPath := filepath.Join(dir, "enrollments.csv")
	enrollmentRepo, err := repository.NewEnrollmentRepository(enrollmentPath)
	require.NoError(t, err)

	svc := NewEnrollmentService(enrollmentRepo, studentRepo, courseRepo, zap.NewNop())
	course, err := courseRepo.FindByCode("CS100")
	require.NoError(t, err)

	_, err = svc.Register(RegisterRequest{StudentID: "1111111111", CourseCode: "CS100", Semester: "Fall2024"})
	require.NoError(t, err)
	assert.Equal(t, 1, course.EnrolledCount())
	assert.True(t, course.IsFull())

	_, err = svc.Register(RegisterRequest{StudentID: "2222222222", CourseCode: "CS100", Semester: "Fall2024"})
	require.Error(t, err)
	assert.True(t, appErrors.Is(err, appErrors.ErrCourseFull), "got %v", err)
	assert.Equal(t, 1, course.EnrolledCount())

	_, err = svc.Drop("1111111111", "CS100")
	require.NoError(t, err)
	assert.Equal(t, 0, course.EnrolledCount())

	_, err = svc.Register(RegisterRequest{StudentID: "2222222222", CourseCode: "CS100", Semester: "Fall2024"})
	require.NoError(t, err)
	assert.Equal(t, 1, course.EnrolledCount())

	// A fresh load of the enrollment file plus count sync reproduces the
	// same state.
	reloaded, err := repository.NewEnrollmentRepository(enrollmentPath)
	require.NoError(t, err)
	assert.Equal(t, enrollmentRepo.All(), reloaded.All())
	NewEnrollmentService(reloaded, studentRepo, courseRepo, zap.NewNop())
	assert.Equal(t, 1, course.EnrolledCount())
}
