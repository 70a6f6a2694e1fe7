package service

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/noah-isme/course-registry/internal/models"
	"github.com/noah-isme/course-registry/pkg/export"
	appErrors "github.com/noah-isme/course-registry/pkg/errors"
)

// Supported export formats.
const (
	FormatCSV = "csv"
	FormatPDF = "pdf"
)

type enrollmentViews interface {
	StudentSchedule(studentID string) (*models.StudentSchedule, error)
	CourseRoster(courseCode string) (*models.CourseRoster, error)
	AllEnrollments() []models.EnrollmentRow
	TotalEnrollments() int
}

type studentCounter interface {
	Count() int
}

type courseLister interface {
	All() []*models.Course
	Count() int
}

type csvRenderer interface {
	Render(data export.Dataset) ([]byte, error)
}

type pdfRenderer interface {
	Render(data export.Dataset, title string) ([]byte, error)
}

type fileStorage interface {
	Save(filename string, data []byte) (string, error)
	Path(filename string) string
}

// ReportService derives system-wide statistics and renders roster, schedule
// and enrollment reports to files.
type ReportService struct {
	enrollments enrollmentViews
	students    studentCounter
	courses     courseLister
	csv         csvRenderer
	pdf         pdfRenderer
	storage     fileStorage
	logger      *zap.Logger
}

// NewReportService constructs a ReportService.
func NewReportService(enrollments enrollmentViews, students studentCounter, courses courseLister, storage fileStorage, logger *zap.Logger, csv csvRenderer, pdf pdfRenderer) *ReportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if csv == nil {
		csv = export.NewCSVExporter()
	}
	if pdf == nil {
		pdf = export.NewPDFExporter()
	}
	return &ReportService{
		enrollments: enrollments,
		students:    students,
		courses:     courses,
		csv:         csv,
		pdf:         pdf,
		storage:     storage,
		logger:      logger,
	}
}

// Statistics aggregates system counters and the highest-enrollment course.
func (s *ReportService) Statistics() models.Statistics {
	stats := models.Statistics{
		TotalStudents:    s.students.Count(),
		TotalCourses:     s.courses.Count(),
		TotalEnrollments: s.enrollments.TotalEnrollments(),
	}
	if stats.TotalCourses > 0 {
		stats.AvgPerCourse = float64(stats.TotalEnrollments) / float64(stats.TotalCourses)
	}
	for _, course := range s.courses.All() {
		if stats.TopCourse == nil || course.EnrolledCount() > stats.TopCourse.EnrolledCount() {
			stats.TopCourse = course
		}
	}
	if stats.TopCourse != nil {
		stats.TopCourseEnrolled = stats.TopCourse.EnrolledCount()
	}
	return stats
}

// ExportRoster renders the roster for a course and stores it; it returns the
// stored file path.
func (s *ReportService) ExportRoster(courseCode, format string) (string, error) {
	roster, err := s.enrollments.CourseRoster(courseCode)
	if err != nil {
		return "", err
	}
	dataset := export.Dataset{
		Headers: []string{"Student ID", "Name", "Year", "Grade"},
		Footer: []string{
			fmt.Sprintf("Enrolled: %d / %d", roster.Course.EnrolledCount(), roster.Course.Capacity),
		},
	}
	for _, entry := range roster.Entries {
		dataset.Rows = append(dataset.Rows, map[string]string{
			"Student ID": strconv.FormatInt(entry.StudentID, 10),
			"Name":       entry.StudentName,
			"Year":       entry.Year,
			"Grade":      entry.Grade,
		})
	}
	title := fmt.Sprintf("Roster for %s - %s", roster.Course.Code, roster.Course.Name)
	return s.render("roster_"+strings.ToLower(roster.Course.Code), title, dataset, format)
}

// ExportSchedule renders a student's schedule and stores it; it returns the
// stored file path.
func (s *ReportService) ExportSchedule(studentID, format string) (string, error) {
	schedule, err := s.enrollments.StudentSchedule(studentID)
	if err != nil {
		return "", err
	}
	dataset := export.Dataset{
		Headers: []string{"Code", "Course Name", "Semester", "Grade", "Credits"},
		Footer: []string{
			fmt.Sprintf("Total Courses: %d", schedule.TotalCourses),
			fmt.Sprintf("Total Credits: %d", schedule.TotalCredits),
		},
	}
	for _, entry := range schedule.Entries {
		credits := ""
		if entry.CourseName != "" {
			credits = strconv.Itoa(entry.Credits)
		}
		dataset.Rows = append(dataset.Rows, map[string]string{
			"Code":        entry.CourseCode,
			"Course Name": entry.CourseName,
			"Semester":    entry.Semester,
			"Grade":       entry.Grade,
			"Credits":     credits,
		})
	}
	title := fmt.Sprintf("Schedule for %s", schedule.Student.FullName())
	return s.render(fmt.Sprintf("schedule_%d", schedule.Student.ID), title, dataset, format)
}

// ExportAllEnrollments renders the global enrollment report and stores it;
// it returns the stored file path.
func (s *ReportService) ExportAllEnrollments(format string) (string, error) {
	rows := s.enrollments.AllEnrollments()
	dataset := export.Dataset{
		Headers: []string{"Student ID", "Student Name", "Course Code", "Course Name", "Semester", "Grade"},
		Footer:  []string{fmt.Sprintf("Total Enrollments: %d", len(rows))},
	}
	for _, row := range rows {
		dataset.Rows = append(dataset.Rows, map[string]string{
			"Student ID":   strconv.FormatInt(row.StudentID, 10),
			"Student Name": row.StudentName,
			"Course Code":  row.CourseCode,
			"Course Name":  row.CourseName,
			"Semester":     row.Semester,
			"Grade":        row.Grade,
		})
	}
	return s.render("enrollments", "All Enrollments", dataset, format)
}

func (s *ReportService) render(prefix, title string, dataset export.Dataset, format string) (string, error) {
	var (
		payload []byte
		err     error
	)
	switch strings.ToLower(strings.TrimSpace(format)) {
	case FormatCSV:
		payload, err = s.csv.Render(dataset)
	case FormatPDF:
		payload, err = s.pdf.Render(dataset, title)
	default:
		return "", appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("unsupported format %q", format))
	}
	if err != nil {
		return "", appErrors.Wrap(err, appErrors.ErrInternal.Code, "failed to render report")
	}

	filename := fmt.Sprintf("%s_%s.%s", prefix, uuid.New().String()[:8], strings.ToLower(strings.TrimSpace(format)))
	if _, err := s.storage.Save(filename, payload); err != nil {
		return "", appErrors.Wrap(err, appErrors.ErrInternal.Code, "failed to store report")
	}
	path := s.storage.Path(filename)
	s.logger.Info("report exported", zap.String("file", path))
	return path, nil
}
