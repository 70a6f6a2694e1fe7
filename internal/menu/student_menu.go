package menu

import (
	"strconv"

	"github.com/noah-isme/course-registry/internal/models"
	"github.com/noah-isme/course-registry/internal/service"
)

func (m *Menu) studentMenu() bool {
	for {
		m.println("")
		m.banner()
		m.println("STUDENT MANAGEMENT")
		m.banner()
		m.println("1 - Display all students")
		m.println("2 - Search student by ID")
		m.println("3 - Search student by name")
		m.println("4 - Add new student")
		m.println("5 - Edit student information")
		m.println("6 - Remove student")
		m.println("7 - Return to main menu")
		m.banner()

		choice, ok := m.prompt("Enter your choice (1-7): ")
		if !ok {
			return false
		}
		switch choice {
		case "1":
			m.listStudents()
		case "2":
			m.searchStudentByID()
		case "3":
			m.searchStudentByName()
		case "4":
			m.addStudent()
		case "5":
			m.editStudent()
		case "6":
			m.removeStudent()
		case "7":
			return true
		default:
			m.println("Invalid choice. Please enter a number from 1 to 7.")
		}
	}
}

func (m *Menu) listStudents() {
	students := m.students.List()
	m.rule(84)
	m.println("STUDENT LIST")
	m.rule(84)
	m.printStudentTable(students)
	m.rule(84)
	m.printf("Total Students: %d\n", len(students))
}

func (m *Menu) searchStudentByID() {
	id := m.ask("Enter student ID to search: ")
	student, err := m.students.Get(id)
	if err != nil {
		m.printError(err)
		return
	}
	m.printStudentInfo(student)
}

func (m *Menu) searchStudentByName() {
	term := m.ask("Enter student name to search: ")
	matches := m.students.SearchByName(term)
	if len(matches) == 0 {
		m.printf("No students found matching '%s'\n", term)
		return
	}
	m.println("")
	m.rule(84)
	m.println("SEARCH RESULTS")
	m.rule(84)
	m.printStudentTable(matches)
	m.rule(84)
	m.printf("Matches: %d\n", len(matches))
}

func (m *Menu) printStudentTable(students []*models.Student) {
	m.printf("%-12s%-25s%-30s%-15s%-4s\n", "ID", "Name", "Email", "Program", "Year")
	m.dashes(84)
	for _, s := range students {
		program := s.Program
		if len(program) > 14 {
			program = program[:14]
		}
		m.printf("%-12d%-25s%-30s%-15s%-4d\n", s.ID, s.FullName(), s.Email, program, s.Year)
	}
}

func (m *Menu) printStudentInfo(s *models.Student) {
	m.rule(42)
	m.println("STUDENT INFORMATION")
	m.rule(42)
	m.printf("Student ID:   %d\n", s.ID)
	m.printf("Name:         %s\n", s.FullName())
	m.printf("Email:        %s\n", s.Email)
	m.printf("Program:      %s\n", s.Program)
	m.printf("Year:         %d\n", s.Year)
	m.rule(42)
}

func (m *Menu) addStudent() {
	firstName := m.ask("Enter student's first name: ")
	lastName := m.ask("Enter student's last name: ")
	email := m.ask("Enter student's email: ")
	program := m.ask("Enter student's program: ")
	yearText := m.ask("Enter student's year (1-4): ")

	year, err := strconv.Atoi(yearText)
	if err != nil {
		m.println("Error: Invalid year. Student not added.")
		return
	}
	student, err := m.students.Create(service.CreateStudentRequest{
		FirstName: firstName,
		LastName:  lastName,
		Email:     email,
		Program:   program,
		Year:      year,
	})
	if err != nil {
		m.printError(err)
		return
	}
	m.printf("Student %d added successfully!\n", student.ID)
}

func (m *Menu) editStudent() {
	id := m.ask("Enter student ID to edit: ")
	if _, err := m.students.Get(id); err != nil {
		m.printError(err)
		return
	}

	req := service.UpdateStudentRequest{
		FirstName: m.ask("Enter new first name (or press Enter to skip): "),
		LastName:  m.ask("Enter new last name (or press Enter to skip): "),
		Email:     m.ask("Enter new email (or press Enter to skip): "),
		Program:   m.ask("Enter new program (or press Enter to skip): "),
	}
	if yearText := m.ask("Enter new year 1-4 (or press Enter to skip): "); yearText != "" {
		year, err := strconv.Atoi(yearText)
		if err != nil {
			m.println("Error: Invalid year. Year not updated.")
		} else {
			req.Year = year
		}
	}

	student, err := m.students.Update(id, req)
	if err != nil {
		m.printError(err)
		return
	}
	m.printf("Student %d updated successfully!\n", student.ID)
}

func (m *Menu) removeStudent() {
	id := m.ask("Enter student ID to remove: ")
	student, err := m.students.Delete(id)
	if err != nil {
		m.printError(err)
		return
	}
	m.printf("Student %s (ID: %d) removed successfully.\n", student.FullName(), student.ID)
}
