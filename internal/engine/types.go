package engine

type TaskCategory string

const (
	CategoryLesson   TaskCategory = "lesson"
	CategoryHomework TaskCategory = "homework"
	CategoryProject  TaskCategory = "project"
	CategoryExam     TaskCategory = "exam"
	CategoryActivity TaskCategory = "activity"
)

// DefaultTaskCategory is used when user input is missing/invalid.
const DefaultTaskCategory TaskCategory = CategoryLesson

func (c TaskCategory) IsValid() bool {
	switch c {
	case CategoryLesson, CategoryHomework, CategoryProject, CategoryExam, CategoryActivity:
		return true
	default:
		return false
	}
}

// Points is the category's base point value, snapshotted onto a task at
// creation time. Changing this table never alters already-created tasks.
func (c TaskCategory) Points() int {
	switch c {
	case CategoryLesson:
		return 10
	case CategoryHomework:
		return 15
	case CategoryProject:
		return 25
	case CategoryExam:
		return 30
	case CategoryActivity:
		return 12
	default:
		return DefaultTaskCategory.Points()
	}
}

func (c TaskCategory) Label() string {
	switch c {
	case CategoryLesson:
		return "Lesson"
	case CategoryHomework:
		return "Homework"
	case CategoryProject:
		return "Project"
	case CategoryExam:
		return "Exam"
	case CategoryActivity:
		return "Activity"
	default:
		return string(c)
	}
}

// AllTaskCategories lists the categories in display order.
func AllTaskCategories() []TaskCategory {
	return []TaskCategory{CategoryLesson, CategoryHomework, CategoryProject, CategoryExam, CategoryActivity}
}

type ShopCategory string

const (
	ShopTheme      ShopCategory = "theme"
	ShopAvatar     ShopCategory = "avatar"
	ShopTool       ShopCategory = "tool"
	ShopBadge      ShopCategory = "badge"
	ShopDecoration ShopCategory = "decoration"
)

func (c ShopCategory) IsValid() bool {
	switch c {
	case ShopTheme, ShopAvatar, ShopTool, ShopBadge, ShopDecoration:
		return true
	default:
		return false
	}
}
