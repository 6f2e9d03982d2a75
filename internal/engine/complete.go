package engine

import "context"

// CompleteResult describes a successful completion for presentation.
type CompleteResult struct {
	TaskID        string
	PointsAwarded int
	CurrentStreak int
	LongestStreak int
	StreakRecord  bool // true when this completion set a new longest streak
}

// CompleteTask marks a task completed and credits its points. Unknown ids
// and already-completed tasks are no-ops returning nil: re-completing must
// never double-credit, and callers get no signal distinguishing "not found"
// from "nothing to do".
//
// The streak increments on every completion and never resets; there is no
// day-boundary logic.
func (r *Repository) CompleteTask(ctx context.Context, id string) *CompleteResult {
	state := r.store.Load(ctx)

	task := state.FindTask(id)
	if task == nil || task.Completed {
		return nil
	}
	task.Completed = true

	u := &state.UserData
	u.CompletedTasks++
	u.TotalPoints += task.Points
	u.AvailablePoints += task.Points
	u.CurrentStreak++

	record := false
	if u.CurrentStreak > u.LongestStreak {
		u.LongestStreak = u.CurrentStreak
		record = true
	}

	r.store.Save(ctx, state)

	return &CompleteResult{
		TaskID:        id,
		PointsAwarded: task.Points,
		CurrentStreak: u.CurrentStreak,
		LongestStreak: u.LongestStreak,
		StreakRecord:  record,
	}
}
