package engine

import "strings"

// ParseTaskCategory parses user input to a TaskCategory.
// Supported: lesson, homework, project, exam, activity (plus a few aliases).
// If input is empty or unrecognized, returns DefaultTaskCategory.
func ParseTaskCategory(input string) TaskCategory {
	s := strings.TrimSpace(strings.ToLower(input))
	switch s {
	case "":
		return DefaultTaskCategory
	case "lesson":
		return CategoryLesson
	case "homework", "hw":
		return CategoryHomework
	case "project":
		return CategoryProject
	case "exam", "test":
		return CategoryExam
	case "activity":
		return CategoryActivity
	default:
		return DefaultTaskCategory
	}
}

var monthNames = []string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// MonthName returns the English name for month 1-12, or "?" out of range.
func MonthName(month int) string {
	if month < 1 || month > 12 {
		return "?"
	}
	return monthNames[month-1]
}
