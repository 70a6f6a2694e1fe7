// Package menu implements the interactive text coordinator. It routes user
// intents to the services and renders their results; it never touches the
// repositories directly. The loop is single-threaded and blocking: every
// operation runs to completion before the next prompt.
package menu

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"

	"github.com/noah-isme/course-registry/internal/service"
	appErrors "github.com/noah-isme/course-registry/pkg/errors"
)

const bannerWidth = 70

// Menu drives the prompt loop over an injected reader and writer so tests
// can script a session.
type Menu struct {
	in  *bufio.Scanner
	out io.Writer

	students    *service.StudentService
	courses     *service.CourseService
	enrollments *service.EnrollmentService
	reports     *service.ReportService

	logger *zap.Logger
}

// New constructs the coordinator.
func New(in io.Reader, out io.Writer, students *service.StudentService, courses *service.CourseService, enrollments *service.EnrollmentService, reports *service.ReportService, logger *zap.Logger) *Menu {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Menu{
		in:          bufio.NewScanner(in),
		out:         out,
		students:    students,
		courses:     courses,
		enrollments: enrollments,
		reports:     reports,
		logger:      logger,
	}
}

// Run starts the main loop and returns when the user exits or input ends.
func (m *Menu) Run() {
	m.println("")
	m.banner()
	m.println("WELCOME TO THE COURSE REGISTRATION SYSTEM")
	m.banner()

	for {
		m.banner()
		m.println("MAIN MENU")
		m.banner()
		m.println("1 - Student Management")
		m.println("2 - Course Management")
		m.println("3 - Enrollment Management")
		m.println("4 - Reports")
		m.println("5 - Exit Program")
		m.banner()

		choice, ok := m.prompt("Enter your choice (1-5): ")
		if !ok {
			return
		}
		switch choice {
		case "1":
			if !m.studentMenu() {
				return
			}
		case "2":
			if !m.courseMenu() {
				return
			}
		case "3":
			if !m.enrollmentMenu() {
				return
			}
		case "4":
			if !m.reportsMenu() {
				return
			}
		case "5":
			m.println("Goodbye!")
			return
		default:
			m.println("Invalid choice. Please enter a number from 1 to 5.")
		}
	}
}

// prompt writes the label and reads one trimmed line. ok is false when the
// input stream has ended.
func (m *Menu) prompt(label string) (string, bool) {
	fmt.Fprint(m.out, label)
	if !m.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(m.in.Text()), true
}

// ask is prompt without the end-of-input flag, for handlers that run a
// fixed sequence of questions. On a closed stream it yields empty input and
// the enclosing submenu loop terminates at its next prompt.
func (m *Menu) ask(label string) string {
	value, _ := m.prompt(label)
	return value
}

func (m *Menu) println(line string) {
	fmt.Fprintln(m.out, line)
}

func (m *Menu) printf(format string, args ...interface{}) {
	fmt.Fprintf(m.out, format, args...)
}

func (m *Menu) banner() {
	m.println(strings.Repeat("=", bannerWidth))
}

func (m *Menu) rule(width int) {
	m.println(strings.Repeat("=", width))
}

func (m *Menu) dashes(width int) {
	m.println(strings.Repeat("-", width))
}

// printError renders a typed failure as a single user-facing line.
func (m *Menu) printError(err error) {
	appErr := appErrors.FromError(err)
	m.printf("Error: %s\n", appErr.Message)
	if appErr.Code == appErrors.ErrInternal.Code {
		m.logger.Error("operation failed", zap.Error(err))
	}
}
