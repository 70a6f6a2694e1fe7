package menu

import (
	"strconv"

	"github.com/noah-isme/course-registry/internal/models"
	"github.com/noah-isme/course-registry/internal/service"
)

func (m *Menu) courseMenu() bool {
	for {
		m.println("")
		m.banner()
		m.println("COURSE MANAGEMENT")
		m.banner()
		m.println("1 - Display all courses")
		m.println("2 - Search course by code")
		m.println("3 - Search courses by name")
		m.println("4 - Add new course")
		m.println("5 - Edit course information")
		m.println("6 - Remove course")
		m.println("7 - Return to main menu")
		m.banner()

		choice, ok := m.prompt("Enter your choice (1-7): ")
		if !ok {
			return false
		}
		switch choice {
		case "1":
			m.listCourses()
		case "2":
			m.searchCourseByCode()
		case "3":
			m.searchCoursesByName()
		case "4":
			m.addCourse()
		case "5":
			m.editCourse()
		case "6":
			m.removeCourse()
		case "7":
			return true
		default:
			m.println("Invalid choice. Please enter a number from 1 to 7.")
		}
	}
}

func (m *Menu) listCourses() {
	courses := m.courses.List()
	m.rule(92)
	m.println("COURSE LIST")
	m.rule(92)
	m.printf("%-10s%-30s%-18s%-9s%-9s%-9s%-8s\n", "Code", "Course Name", "Instructor", "Credits", "Enrolled", "Capacity", "Status")
	m.dashes(92)
	for _, c := range courses {
		status := "Open"
		if c.IsFull() {
			status = "Full"
		}
		m.printf("%-10s%-30s%-18s%-9d%-9d%-9d%-8s\n", c.Code, c.Name, c.Instructor, c.Credits, c.EnrolledCount(), c.Capacity, status)
	}
	m.rule(92)
	m.printf("Total Courses: %d\n", len(courses))
}

func (m *Menu) searchCourseByCode() {
	code := m.ask("Enter course code to search: ")
	course, err := m.courses.Get(code)
	if err != nil {
		m.printError(err)
		return
	}
	m.printCourseInfo(course)
}

func (m *Menu) searchCoursesByName() {
	term := m.ask("Enter course name to search: ")
	matches := m.courses.SearchByName(term)
	if len(matches) == 0 {
		m.printf("No courses found matching '%s'\n", term)
		return
	}
	for _, c := range matches {
		m.printCourseInfo(c)
	}
	m.printf("Matches: %d\n", len(matches))
}

func (m *Menu) printCourseInfo(c *models.Course) {
	status := "Available"
	if c.IsFull() {
		status = "Full"
	}
	m.rule(42)
	m.println("COURSE INFORMATION")
	m.rule(42)
	m.printf("Course Code:  %s\n", c.Code)
	m.printf("Course Name:  %s\n", c.Name)
	m.printf("Instructor:   %s\n", c.Instructor)
	m.printf("Credits:      %d\n", c.Credits)
	m.printf("Capacity:     %d\n", c.Capacity)
	m.printf("Enrolled:     %d\n", c.EnrolledCount())
	m.printf("Available:    %d\n", c.AvailableSeats())
	m.printf("Status:       %s\n", status)
	m.rule(42)
}

func (m *Menu) addCourse() {
	code := m.ask("Enter course code: ")
	name := m.ask("Enter course name: ")
	instructor := m.ask("Enter instructor name: ")
	creditsText := m.ask("Enter credits (1-4): ")
	capacityText := m.ask("Enter capacity: ")

	credits, err := strconv.Atoi(creditsText)
	if err != nil {
		m.println("Error: Invalid credits. Course not added.")
		return
	}
	capacity, err := strconv.Atoi(capacityText)
	if err != nil {
		m.println("Error: Invalid capacity. Course not added.")
		return
	}
	course, err := m.courses.Create(service.CreateCourseRequest{
		Code:       code,
		Name:       name,
		Instructor: instructor,
		Credits:    credits,
		Capacity:   capacity,
	})
	if err != nil {
		m.printError(err)
		return
	}
	m.printf("Course %s added successfully!\n", course.Code)
}

func (m *Menu) editCourse() {
	code := m.ask("Enter course code to edit: ")
	if _, err := m.courses.Get(code); err != nil {
		m.printError(err)
		return
	}

	req := service.UpdateCourseRequest{
		Name:       m.ask("Enter new course name (or press Enter to skip): "),
		Instructor: m.ask("Enter new instructor (or press Enter to skip): "),
	}
	if creditsText := m.ask("Enter new credits 1-4 (or press Enter to skip): "); creditsText != "" {
		credits, err := strconv.Atoi(creditsText)
		if err != nil {
			m.println("Error: Invalid credits. Credits not updated.")
		} else {
			req.Credits = credits
		}
	}
	if capacityText := m.ask("Enter new capacity (or press Enter to skip): "); capacityText != "" {
		capacity, err := strconv.Atoi(capacityText)
		if err != nil {
			m.println("Error: Invalid capacity. Capacity not updated.")
		} else {
			req.Capacity = &capacity
		}
	}

	course, err := m.courses.Update(code, req)
	if err != nil {
		m.printError(err)
		return
	}
	m.printf("Course %s updated successfully!\n", course.Code)
}

func (m *Menu) removeCourse() {
	code := m.ask("Enter course code to remove: ")
	course, err := m.courses.Delete(code)
	if err != nil {
		m.printError(err)
		return
	}
	m.printf("Course %s removed successfully.\n", course.Code)
}
