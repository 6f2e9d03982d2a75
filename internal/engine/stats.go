package engine

import (
	"context"
	"math"
)

// MonthlyStats is a derived, read-only aggregate over one period.
type MonthlyStats struct {
	TotalTasks     int
	CompletedTasks int
	CompletionRate int // rounded percentage; 0 when there are no tasks
	PointsEarned   int
}

// MonthlyStatistics summarizes the tasks in the given month/year bucket.
func (r *Repository) MonthlyStatistics(ctx context.Context, month, year int) MonthlyStats {
	tasks := r.TasksForPeriod(ctx, month, year)

	stats := MonthlyStats{TotalTasks: len(tasks)}
	for _, t := range tasks {
		if t.Completed {
			stats.CompletedTasks++
			stats.PointsEarned += t.Points
		}
	}
	if stats.TotalTasks > 0 {
		stats.CompletionRate = int(math.Round(float64(stats.CompletedTasks) / float64(stats.TotalTasks) * 100))
	}
	return stats
}
