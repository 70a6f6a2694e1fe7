package menu

import "github.com/noah-isme/course-registry/internal/service"

func (m *Menu) reportsMenu() bool {
	for {
		m.println("")
		m.banner()
		m.println("REPORTS")
		m.banner()
		m.println("1 - All enrollments")
		m.println("2 - System statistics")
		m.println("3 - Export report to file")
		m.println("4 - Return to main menu")
		m.banner()

		choice, ok := m.prompt("Enter your choice (1-4): ")
		if !ok {
			return false
		}
		switch choice {
		case "1":
			m.showAllEnrollments()
		case "2":
			m.showStatistics()
		case "3":
			m.exportReport()
		case "4":
			return true
		default:
			m.println("Invalid choice. Please enter a number from 1 to 4.")
		}
	}
}

func (m *Menu) showAllEnrollments() {
	rows := m.enrollments.AllEnrollments()
	m.rule(89)
	m.println("ALL ENROLLMENTS")
	m.rule(89)
	m.printf("%-14s%-22s%-13s%-22s%-10s\n", "Student ID", "Student Name", "Course Code", "Course Name", "Semester")
	m.dashes(89)
	for _, row := range rows {
		m.printf("%-14d%-22s%-13s%-22s%-10s\n", row.StudentID, row.StudentName, row.CourseCode, row.CourseName, row.Semester)
	}
	m.rule(89)
	m.printf("Total Enrollments: %d\n", len(rows))
}

func (m *Menu) showStatistics() {
	stats := m.reports.Statistics()
	m.println("")
	m.banner()
	m.println("SYSTEM STATISTICS")
	m.banner()
	m.printf("Total Students: %d\n", stats.TotalStudents)
	m.printf("Total Courses: %d\n", stats.TotalCourses)
	m.printf("Total Enrollments: %d\n", stats.TotalEnrollments)
	m.printf("Average Students per Course: %.2f\n", stats.AvgPerCourse)
	if stats.TopCourse != nil {
		m.printf("Highest Enrollment Course: %s - %s (%d students)\n", stats.TopCourse.Code, stats.TopCourse.Name, stats.TopCourseEnrolled)
	} else {
		m.println("Highest Enrollment Course: N/A")
	}
	m.banner()
}

func (m *Menu) exportReport() {
	m.println("1 - Course roster")
	m.println("2 - Student schedule")
	m.println("3 - All enrollments")
	kind := m.ask("Select report (1-3): ")

	var (
		path string
		err  error
	)
	switch kind {
	case "1":
		code := m.ask("Enter course code: ")
		format := m.askFormat()
		path, err = m.reports.ExportRoster(code, format)
	case "2":
		id := m.ask("Enter student ID: ")
		format := m.askFormat()
		path, err = m.reports.ExportSchedule(id, format)
	case "3":
		format := m.askFormat()
		path, err = m.reports.ExportAllEnrollments(format)
	default:
		m.println("Invalid choice. Please enter a number from 1 to 3.")
		return
	}
	if err != nil {
		m.printError(err)
		return
	}
	m.printf("Report saved to %s\n", path)
}

func (m *Menu) askFormat() string {
	format := m.ask("Enter format (" + service.FormatCSV + "/" + service.FormatPDF + "): ")
	if format == "" {
		return service.FormatCSV
	}
	return format
}
