package storage

import "time"

// DefaultUserData returns a zeroed profile with the join date stamped.
func DefaultUserData(now time.Time) UserData {
	return UserData{
		PurchasedItems: []string{},
		Achievements:   []Achievement{},
		JoinedDate:     now,
	}
}

// DefaultShopItems is the built-in reward catalog: 8 entries across the
// theme/avatar/tool/badge/decoration categories. Locked items are not
// purchasable regardless of points.
func DefaultShopItems() []ShopItem {
	return []ShopItem{
		{
			ID:          "theme-ocean",
			Name:        "Ocean Theme",
			Description: "Calming blue ocean theme for your calendar",
			Price:       50,
			Category:    "theme",
			ImageURL:    "assets/shop/theme-ocean.png",
			Unlocked:    true,
		},
		{
			ID:          "theme-forest",
			Name:        "Forest Theme",
			Description: "Nature-inspired green forest theme",
			Price:       50,
			Category:    "theme",
			ImageURL:    "assets/shop/theme-forest.png",
			Unlocked:    true,
		},
		{
			ID:          "avatar-student",
			Name:        "Student Avatar",
			Description: "Classic student character avatar",
			Price:       30,
			Category:    "avatar",
			ImageURL:    "assets/shop/avatar-student.png",
			Unlocked:    true,
		},
		{
			ID:          "avatar-scientist",
			Name:        "Scientist Avatar",
			Description: "Lab coat wearing scientist avatar",
			Price:       35,
			Category:    "avatar",
			ImageURL:    "assets/shop/avatar-scientist.png",
			Unlocked:    false,
		},
		{
			ID:          "tool-calculator",
			Name:        "Golden Calculator",
			Description: "Special calculator tool for math tasks",
			Price:       75,
			Category:    "tool",
			ImageURL:    "assets/shop/tool-calculator.png",
			Unlocked:    false,
		},
		{
			ID:          "badge-achiever",
			Name:        "High Achiever Badge",
			Description: "Badge for completing 50 tasks",
			Price:       100,
			Category:    "badge",
			ImageURL:    "assets/shop/badge-achiever.png",
			Unlocked:    false,
		},
		{
			ID:          "decoration-plant",
			Name:        "Study Plant",
			Description: "Virtual plant decoration for your desk",
			Price:       25,
			Category:    "decoration",
			ImageURL:    "assets/shop/decoration-plant.png",
			Unlocked:    true,
		},
		{
			ID:          "decoration-trophy",
			Name:        "Golden Trophy",
			Description: "Trophy decoration for your achievements",
			Price:       80,
			Category:    "decoration",
			ImageURL:    "assets/shop/decoration-trophy.png",
			Unlocked:    false,
		},
	}
}

// DefaultTasks returns the starter tasks seeded on first run, bucketed into
// the current month so a fresh install has something on the board.
func DefaultTasks(now time.Time) []Task {
	img1 := "assets/tasks/multiplication.png"
	img2 := "assets/tasks/ecosystems.png"
	due := now.Add(7 * 24 * time.Hour)
	return []Task{
		{
			ID:          "task-1",
			Title:       "Learn Multiplication Tables",
			Description: "Practice multiplication tables 1-12 and complete the worksheet",
			Month:       int(now.Month()),
			Year:        now.Year(),
			ImageURL:    &img1,
			Points:      15,
			Category:    "lesson",
			CreatedAt:   now,
		},
		{
			ID:          "task-2",
			Title:       "Read Chapter 5: Ecosystems",
			Description: "Read and summarize the ecosystems chapter in your science book",
			Month:       int(now.Month()),
			Year:        now.Year(),
			ImageURL:    &img2,
			Points:      20,
			Category:    "homework",
			DueDate:     &due,
			CreatedAt:   now,
		},
	}
}

// DefaultState assembles the seeded aggregate used on first run and as the
// fallback when a stored document cannot be decoded.
func DefaultState(now time.Time) *AppState {
	return &AppState{
		UserData:    DefaultUserData(now),
		Tasks:       DefaultTasks(now),
		ShopItems:   DefaultShopItems(),
		MonthlyData: []MonthData{},
	}
}
