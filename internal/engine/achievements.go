package engine

import (
	"context"

	"studyquest/internal/storage"
)

// Achievement represents a badge the user can earn.
type Achievement struct {
	ID          string
	Name        string
	Description string
	Icon        string
	Earned      bool
}

// AchievementChecker calculates which achievements the user has earned.
// Everything is derived from the current aggregate; nothing is persisted.
type AchievementChecker struct {
	user  storage.UserData
	tasks []storage.Task
	items []storage.ShopItem
}

func NewAchievementChecker(user storage.UserData, tasks []storage.Task, items []storage.ShopItem) *AchievementChecker {
	return &AchievementChecker{
		user:  user,
		tasks: tasks,
		items: items,
	}
}

// GetAchievements returns all achievements with their earned status.
func (c *AchievementChecker) GetAchievements() []Achievement {
	achievements := []Achievement{
		// Task completion milestones
		c.taskCountAchievement("first_step", "First Step", "Complete 1 task", "✓", 1),
		c.taskCountAchievement("productive", "Productive", "Complete 10 tasks", "📋", 10),
		c.taskCountAchievement("achiever", "High Achiever", "Complete 50 tasks", "🏅", 50),
		c.taskCountAchievement("scholar", "Scholar", "Complete 100 tasks", "🎓", 100),

		// Streak milestones
		c.streakAchievement("warmed_up", "Warmed Up", "Reach a streak of 3", "✨", 3),
		c.streakAchievement("on_fire", "On Fire", "Reach a streak of 7", "🔥", 7),
		c.streakAchievement("unstoppable", "Unstoppable", "Reach a streak of 30", "⚡", 30),

		// Lifetime point milestones
		c.pointsAchievement("century", "Century", "Earn 100 lifetime points", "💯", 100),
		c.pointsAchievement("point_hoarder", "Point Hoarder", "Earn 500 lifetime points", "💰", 500),

		// Category coverage
		c.categoryAchievement("exam_slayer", "Exam Slayer", "Complete an exam", "📝", CategoryExam),
		c.wellRoundedAchievement("well_rounded", "Well Rounded", "Complete a task in every category", "🌈"),

		// Shop milestones
		c.purchaseCountAchievement("first_reward", "First Reward", "Buy a shop item", "🎁", 1),
		c.purchaseCountAchievement("collector", "Collector", "Buy 5 shop items", "🏆", 5),
		c.catalogAchievement("big_spender", "Big Spender", "Own every unlocked shop item", "💎"),
	}

	return achievements
}

// CountEarned returns how many achievements have been earned.
func (c *AchievementChecker) CountEarned() int {
	count := 0
	for _, a := range c.GetAchievements() {
		if a.Earned {
			count++
		}
	}
	return count
}

// CountTotal returns total number of achievements.
func (c *AchievementChecker) CountTotal() int {
	return len(c.GetAchievements())
}

func (c *AchievementChecker) taskCountAchievement(id, name, desc, icon string, count int) Achievement {
	earned := c.user.CompletedTasks >= count
	return Achievement{ID: id, Name: name, Description: desc, Icon: icon, Earned: earned}
}

func (c *AchievementChecker) streakAchievement(id, name, desc, icon string, streak int) Achievement {
	earned := c.user.LongestStreak >= streak
	return Achievement{ID: id, Name: name, Description: desc, Icon: icon, Earned: earned}
}

func (c *AchievementChecker) pointsAchievement(id, name, desc, icon string, points int) Achievement {
	earned := c.user.TotalPoints >= points
	return Achievement{ID: id, Name: name, Description: desc, Icon: icon, Earned: earned}
}

func (c *AchievementChecker) categoryAchievement(id, name, desc, icon string, cat TaskCategory) Achievement {
	earned := false
	for _, t := range c.tasks {
		if t.Completed && t.Category == string(cat) {
			earned = true
			break
		}
	}
	return Achievement{ID: id, Name: name, Description: desc, Icon: icon, Earned: earned}
}

func (c *AchievementChecker) wellRoundedAchievement(id, name, desc, icon string) Achievement {
	done := map[string]bool{}
	for _, t := range c.tasks {
		if t.Completed {
			done[t.Category] = true
		}
	}
	earned := true
	for _, cat := range AllTaskCategories() {
		if !done[string(cat)] {
			earned = false
			break
		}
	}
	return Achievement{ID: id, Name: name, Description: desc, Icon: icon, Earned: earned}
}

func (c *AchievementChecker) purchaseCountAchievement(id, name, desc, icon string, count int) Achievement {
	earned := len(c.user.PurchasedItems) >= count
	return Achievement{ID: id, Name: name, Description: desc, Icon: icon, Earned: earned}
}

func (c *AchievementChecker) catalogAchievement(id, name, desc, icon string) Achievement {
	earned := len(c.items) > 0
	for _, item := range c.items {
		if item.Unlocked && !item.Purchased {
			earned = false
			break
		}
	}
	return Achievement{ID: id, Name: name, Description: desc, Icon: icon, Earned: earned}
}

// Achievements is a convenience read operation over the current state.
func (r *Repository) Achievements(ctx context.Context) []Achievement {
	state := r.store.Load(ctx)
	checker := NewAchievementChecker(state.UserData, state.Tasks, state.ShopItems)
	return checker.GetAchievements()
}
