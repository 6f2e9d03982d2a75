package engine

import (
	"context"
	"path/filepath"
	"testing"

	"studyquest/internal/storage"
)

func newTestRepo(t *testing.T) (*Repository, func()) {
	t.Helper()
	ctx := context.Background()

	dir := t.TempDir()
	path := filepath.Join(dir, "test.db")
	db, err := storage.Open(ctx, path)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}

	repo := NewRepository(storage.NewSQLiteStore(db, nil))
	cleanup := func() {
		_ = db.Close()
	}
	return repo, cleanup
}

func intPtr(v int) *int { return &v }

func sameCounters(a, b storage.UserData) bool {
	return a.TotalPoints == b.TotalPoints &&
		a.AvailablePoints == b.AvailablePoints &&
		a.CompletedTasks == b.CompletedTasks &&
		a.CurrentStreak == b.CurrentStreak &&
		a.LongestStreak == b.LongestStreak &&
		len(a.PurchasedItems) == len(b.PurchasedItems)
}

func earnPoints(t *testing.T, repo *Repository, points int) {
	t.Helper()
	ctx := context.Background()
	task := repo.AddTask(ctx, TaskDraft{
		Title:    "Earn",
		Month:    1,
		Year:     2030,
		Category: CategoryLesson,
		Points:   intPtr(points),
	})
	if res := repo.CompleteTask(ctx, task.ID); res == nil {
		t.Fatalf("expected completion result for %s", task.ID)
	}
}

func TestFirstRunSeedsDefaults(t *testing.T) {
	repo, cleanup := newTestRepo(t)
	defer cleanup()
	ctx := context.Background()

	state := repo.Load(ctx)
	u := state.UserData
	if u.TotalPoints != 0 || u.AvailablePoints != 0 || u.CompletedTasks != 0 || u.CurrentStreak != 0 || u.LongestStreak != 0 {
		t.Fatalf("expected zeroed profile, got %+v", u)
	}
	if len(state.ShopItems) == 0 {
		t.Fatalf("expected seeded shop catalog")
	}
	if len(state.Tasks) == 0 {
		t.Fatalf("expected seeded starter tasks")
	}
	if len(state.MonthlyData) != 0 {
		t.Fatalf("monthlyData should be empty, got %d entries", len(state.MonthlyData))
	}
}

func TestAddTaskDefaultsAndPeriodQuery(t *testing.T) {
	repo, cleanup := newTestRepo(t)
	defer cleanup()
	ctx := context.Background()

	task := repo.AddTask(ctx, TaskDraft{
		Title:    "Learn Fractions",
		Month:    3,
		Year:     2024,
		Category: CategoryLesson,
	})
	if task.Points != 10 {
		t.Fatalf("lesson points=%d, want 10", task.Points)
	}
	if task.Completed {
		t.Fatalf("new task must not be completed")
	}
	if task.ID == "" {
		t.Fatalf("expected a minted id")
	}

	second := repo.AddTask(ctx, TaskDraft{
		Title:    "Fractions Quiz",
		Month:    3,
		Year:     2024,
		Category: CategoryExam,
	})
	if second.Points != 30 {
		t.Fatalf("exam points=%d, want 30", second.Points)
	}

	tasks := repo.TasksForPeriod(ctx, 3, 2024)
	if len(tasks) != 2 {
		t.Fatalf("period tasks=%d, want 2", len(tasks))
	}
	// Insertion order is the only defined ordering.
	if tasks[0].ID != task.ID || tasks[1].ID != second.ID {
		t.Fatalf("period order = [%s %s], want [%s %s]", tasks[0].ID, tasks[1].ID, task.ID, second.ID)
	}

	if got := repo.TasksForPeriod(ctx, 4, 2024); len(got) != 0 {
		t.Fatalf("expected no tasks in 4/2024, got %d", len(got))
	}
}

func TestAddTaskInvalidCategoryFallsBack(t *testing.T) {
	repo, cleanup := newTestRepo(t)
	defer cleanup()
	ctx := context.Background()

	task := repo.AddTask(ctx, TaskDraft{Title: "Mystery", Month: 5, Year: 2024, Category: "karaoke"})
	if task.Category != string(DefaultTaskCategory) {
		t.Fatalf("category=%q, want %q", task.Category, DefaultTaskCategory)
	}
	if task.Points != DefaultTaskCategory.Points() {
		t.Fatalf("points=%d, want %d", task.Points, DefaultTaskCategory.Points())
	}
}

func TestCompleteTaskCreditsOnce(t *testing.T) {
	repo, cleanup := newTestRepo(t)
	defer cleanup()
	ctx := context.Background()

	task := repo.AddTask(ctx, TaskDraft{Title: "Essay", Month: 2, Year: 2024, Category: CategoryHomework})
	before := repo.Load(ctx).UserData

	res := repo.CompleteTask(ctx, task.ID)
	if res == nil {
		t.Fatalf("expected completion result")
	}
	if res.PointsAwarded != task.Points {
		t.Fatalf("awarded=%d, want %d", res.PointsAwarded, task.Points)
	}

	after := repo.Load(ctx).UserData
	if after.TotalPoints != before.TotalPoints+task.Points {
		t.Fatalf("totalPoints=%d, want %d", after.TotalPoints, before.TotalPoints+task.Points)
	}
	if after.AvailablePoints != before.AvailablePoints+task.Points {
		t.Fatalf("availablePoints=%d, want %d", after.AvailablePoints, before.AvailablePoints+task.Points)
	}
	if after.CompletedTasks != before.CompletedTasks+1 {
		t.Fatalf("completedTasks=%d, want %d", after.CompletedTasks, before.CompletedTasks+1)
	}

	// Re-completing must be a silent no-op: no double credit.
	if res2 := repo.CompleteTask(ctx, task.ID); res2 != nil {
		t.Fatalf("expected nil result on second completion")
	}
	again := repo.Load(ctx).UserData
	if !sameCounters(again, after) {
		t.Fatalf("profile changed on repeated completion: %+v vs %+v", again, after)
	}
}

func TestCompleteTaskUnknownIDIsNoop(t *testing.T) {
	repo, cleanup := newTestRepo(t)
	defer cleanup()
	ctx := context.Background()

	before := repo.Load(ctx).UserData
	if res := repo.CompleteTask(ctx, "task-nope"); res != nil {
		t.Fatalf("expected nil result for unknown id")
	}
	after := repo.Load(ctx).UserData
	if !sameCounters(after, before) {
		t.Fatalf("profile changed on unknown id: %+v vs %+v", after, before)
	}
}

func TestStreakGrowsAndLongestTracks(t *testing.T) {
	repo, cleanup := newTestRepo(t)
	defer cleanup()
	ctx := context.Background()

	for i := 0; i < 4; i++ {
		task := repo.AddTask(ctx, TaskDraft{Title: "Drill", Month: 6, Year: 2024, Category: CategoryActivity})
		res := repo.CompleteTask(ctx, task.ID)
		if res == nil {
			t.Fatalf("completion #%d failed", i+1)
		}
		if res.CurrentStreak != i+1 {
			t.Fatalf("streak #%d=%d, want %d", i+1, res.CurrentStreak, i+1)
		}
		u := repo.Load(ctx).UserData
		if u.LongestStreak < u.CurrentStreak {
			t.Fatalf("longestStreak=%d < currentStreak=%d", u.LongestStreak, u.CurrentStreak)
		}
		if !res.StreakRecord {
			t.Fatalf("expected every completion in a fresh run to set a record")
		}
	}
}

func TestPurchaseInsufficientFunds(t *testing.T) {
	repo, cleanup := newTestRepo(t)
	defer cleanup()
	ctx := context.Background()

	earnPoints(t, repo, 30)

	// theme-ocean costs 50.
	if repo.PurchaseItem(ctx, "theme-ocean") {
		t.Fatalf("expected purchase to fail with 30 pts against price 50")
	}
	state := repo.Load(ctx)
	if state.UserData.AvailablePoints != 30 {
		t.Fatalf("availablePoints=%d, want 30 (unchanged)", state.UserData.AvailablePoints)
	}
	if state.FindShopItem("theme-ocean").Purchased {
		t.Fatalf("item must stay unpurchased")
	}
}

func TestPurchaseLockedItem(t *testing.T) {
	repo, cleanup := newTestRepo(t)
	defer cleanup()
	ctx := context.Background()

	earnPoints(t, repo, 500)

	// tool-calculator is seeded locked; funds are irrelevant.
	if repo.PurchaseItem(ctx, "tool-calculator") {
		t.Fatalf("expected purchase of a locked item to fail")
	}
	u := repo.Load(ctx).UserData
	if u.AvailablePoints != 500 {
		t.Fatalf("availablePoints=%d, want 500", u.AvailablePoints)
	}
}

func TestPurchaseSuccessAndTerminalState(t *testing.T) {
	repo, cleanup := newTestRepo(t)
	defer cleanup()
	ctx := context.Background()

	earnPoints(t, repo, 60)

	if !repo.PurchaseItem(ctx, "theme-ocean") {
		t.Fatalf("expected purchase to succeed")
	}
	state := repo.Load(ctx)
	u := state.UserData
	if u.AvailablePoints != 10 {
		t.Fatalf("availablePoints=%d, want 10", u.AvailablePoints)
	}
	if u.TotalPoints != 60 {
		t.Fatalf("totalPoints=%d, want 60 (purchases never touch lifetime earnings)", u.TotalPoints)
	}
	owned := false
	for _, id := range u.PurchasedItems {
		if id == "theme-ocean" {
			owned = true
		}
	}
	if !owned {
		t.Fatalf("purchasedItems missing theme-ocean: %v", u.PurchasedItems)
	}
	if !state.FindShopItem("theme-ocean").Purchased {
		t.Fatalf("item not marked purchased")
	}

	// Purchased is terminal.
	if repo.PurchaseItem(ctx, "theme-ocean") {
		t.Fatalf("expected repeat purchase to fail")
	}
	if got := repo.Load(ctx).UserData.AvailablePoints; got != 10 {
		t.Fatalf("availablePoints=%d after repeat purchase, want 10", got)
	}
}

func TestPurchaseUnknownItem(t *testing.T) {
	repo, cleanup := newTestRepo(t)
	defer cleanup()
	ctx := context.Background()

	if repo.PurchaseItem(ctx, "item-nope") {
		t.Fatalf("expected purchase of unknown item to fail")
	}
}

func TestMonthlyStatistics(t *testing.T) {
	repo, cleanup := newTestRepo(t)
	defer cleanup()
	ctx := context.Background()

	// Empty period: no division by zero.
	empty := repo.MonthlyStatistics(ctx, 9, 2031)
	if empty.TotalTasks != 0 || empty.CompletedTasks != 0 || empty.CompletionRate != 0 || empty.PointsEarned != 0 {
		t.Fatalf("empty stats=%+v, want all zero", empty)
	}

	hw := repo.AddTask(ctx, TaskDraft{Title: "Worksheet", Month: 9, Year: 2031, Category: CategoryHomework})
	repo.AddTask(ctx, TaskDraft{Title: "Reading", Month: 9, Year: 2031, Category: CategoryLesson})

	if res := repo.CompleteTask(ctx, hw.ID); res == nil {
		t.Fatalf("complete homework: no result")
	}

	stats := repo.MonthlyStatistics(ctx, 9, 2031)
	if stats.TotalTasks != 2 {
		t.Fatalf("totalTasks=%d, want 2", stats.TotalTasks)
	}
	if stats.CompletedTasks != 1 {
		t.Fatalf("completedTasks=%d, want 1", stats.CompletedTasks)
	}
	if stats.CompletionRate != 50 {
		t.Fatalf("completionRate=%d, want 50", stats.CompletionRate)
	}
	if stats.PointsEarned != 15 {
		t.Fatalf("pointsEarned=%d, want 15", stats.PointsEarned)
	}
}

func TestMonthlyStatisticsRounding(t *testing.T) {
	repo, cleanup := newTestRepo(t)
	defer cleanup()
	ctx := context.Background()

	var ids []string
	for i := 0; i < 3; i++ {
		task := repo.AddTask(ctx, TaskDraft{Title: "T", Month: 10, Year: 2031, Category: CategoryLesson})
		ids = append(ids, task.ID)
	}
	repo.CompleteTask(ctx, ids[0])

	// 1/3 -> 33.33 -> rounds to 33.
	if got := repo.MonthlyStatistics(ctx, 10, 2031).CompletionRate; got != 33 {
		t.Fatalf("completionRate=%d, want 33", got)
	}

	repo.CompleteTask(ctx, ids[1])
	// 2/3 -> 66.67 -> rounds to 67.
	if got := repo.MonthlyStatistics(ctx, 10, 2031).CompletionRate; got != 67 {
		t.Fatalf("completionRate=%d, want 67", got)
	}
}

func TestPointsSnapshotIndependentOfCategoryTable(t *testing.T) {
	repo, cleanup := newTestRepo(t)
	defer cleanup()
	ctx := context.Background()

	task := repo.AddTask(ctx, TaskDraft{
		Title:    "Custom",
		Month:    11,
		Year:     2031,
		Category: CategoryLesson,
		Points:   intPtr(42),
	})
	if task.Points != 42 {
		t.Fatalf("points=%d, want override 42", task.Points)
	}

	res := repo.CompleteTask(ctx, task.ID)
	if res == nil || res.PointsAwarded != 42 {
		t.Fatalf("awarded=%v, want 42", res)
	}
}
