package menu

import (
	"strings"

	"github.com/noah-isme/course-registry/internal/models"
	"github.com/noah-isme/course-registry/internal/service"
)

func (m *Menu) enrollmentMenu() bool {
	for {
		m.println("")
		m.banner()
		m.println("ENROLLMENT MANAGEMENT")
		m.banner()
		m.println("1 - Register student in course")
		m.println("2 - Drop student from course")
		m.println("3 - Display student schedule")
		m.println("4 - Display course roster")
		m.println("5 - Assign grade")
		m.println("6 - Return to main menu")
		m.banner()

		choice, ok := m.prompt("Enter your choice (1-6): ")
		if !ok {
			return false
		}
		switch choice {
		case "1":
			m.registerStudent()
		case "2":
			m.dropStudent()
		case "3":
			m.showStudentSchedule()
		case "4":
			m.showCourseRoster()
		case "5":
			m.assignGrade()
		case "6":
			return true
		default:
			m.println("Invalid choice. Please enter a number from 1 to 6.")
		}
	}
}

func (m *Menu) registerStudent() {
	studentID := m.ask("Enter student ID: ")
	courseCode := m.ask("Enter course code: ")
	semester := m.ask("Enter semester (e.g., Fall2024): ")

	result, err := m.enrollments.Register(service.RegisterRequest{
		StudentID:  studentID,
		CourseCode: courseCode,
		Semester:   semester,
	})
	if err != nil {
		m.printError(err)
		return
	}
	m.printf("Student %s successfully registered in %s\n", result.StudentName, result.CourseName)
}

func (m *Menu) dropStudent() {
	studentID := m.ask("Enter student ID: ")
	courseCode := m.ask("Enter course code: ")

	result, err := m.enrollments.Drop(studentID, courseCode)
	if err != nil {
		m.printError(err)
		return
	}
	m.printf("Student %s dropped from %s\n", result.StudentName, result.CourseName)
}

func (m *Menu) showStudentSchedule() {
	studentID := m.ask("Enter student ID: ")
	schedule, err := m.enrollments.StudentSchedule(studentID)
	if err != nil {
		m.printError(err)
		return
	}

	m.rule(42)
	m.printf("SCHEDULE FOR: %s\n", schedule.Student.FullName())
	m.rule(42)
	m.printf("%-10s%-25s%-12s%-5s\n", "Code", "Course Name", "Semester", "Grade")
	m.dashes(54)
	for _, entry := range schedule.Entries {
		m.printf("%-10s%-25s%-12s%-5s\n", entry.CourseCode, entry.CourseName, entry.Semester, entry.Grade)
	}
	m.rule(42)
	m.printf("Total Courses: %d\n", schedule.TotalCourses)
	m.printf("Total Credits: %d\n", schedule.TotalCredits)
}

func (m *Menu) showCourseRoster() {
	courseCode := m.ask("Enter course code: ")
	roster, err := m.enrollments.CourseRoster(courseCode)
	if err != nil {
		m.printError(err)
		return
	}

	m.rule(42)
	m.printf("ROSTER FOR: %s - %s\n", roster.Course.Code, roster.Course.Name)
	m.rule(42)
	m.printf("%-14s%-25s%-6s%-5s\n", "Student ID", "Name", "Year", "Grade")
	m.dashes(54)
	for _, entry := range roster.Entries {
		m.printf("%-14d%-25s%-6s%-5s\n", entry.StudentID, entry.StudentName, entry.Year, entry.Grade)
	}
	m.rule(42)
	m.printf("Enrolled: %d / %d\n", roster.Course.EnrolledCount(), roster.Course.Capacity)
}

func (m *Menu) assignGrade() {
	studentID := m.ask("Enter student ID: ")
	courseCode := m.ask("Enter course code: ")
	grade := m.ask("Enter grade (" + strings.Join(models.ValidGrades(), ", ") + "): ")

	result, err := m.enrollments.AssignGrade(studentID, courseCode, grade)
	if err != nil {
		m.printError(err)
		return
	}
	m.printf("Grade %s assigned to %s for %s\n", result.Grade, result.StudentName, result.CourseName)
}
