package engine

import (
	"context"
	"time"

	"github.com/google/uuid"

	"studyquest/internal/storage"
)

// Repository owns the canonical application state and enforces the economy
// rules. Every mutation is a full load-mutate-save cycle over the whole
// aggregate; there is no partial update. One logical caller at a time is
// assumed (see the concurrency note on Store).
type Repository struct {
	store storage.Store
}

func NewRepository(store storage.Store) *Repository {
	return &Repository{store: store}
}

// Load returns the current aggregate, seeding defaults on first run.
func (r *Repository) Load(ctx context.Context) *storage.AppState {
	return r.store.Load(ctx)
}

// TaskDraft carries the caller-supplied fields of a new task. Identity,
// creation time and completion status are minted by AddTask.
type TaskDraft struct {
	Title       string
	Description string
	Month       int // 1-12
	Year        int
	Category    TaskCategory
	Points      *int // overrides the category base value when set
	DueDate     *time.Time
	ImageURL    *string
}

// AddTask appends a freshly minted task to the collection and persists.
// It is deliberately permissive: empty titles are a form-level concern,
// not a repository one. An invalid category falls back to the default.
func (r *Repository) AddTask(ctx context.Context, draft TaskDraft) storage.Task {
	state := r.store.Load(ctx)

	cat := draft.Category
	if !cat.IsValid() {
		cat = DefaultTaskCategory
	}
	points := cat.Points()
	if draft.Points != nil {
		points = *draft.Points
	}

	task := storage.Task{
		ID:          "task-" + uuid.NewString(),
		Title:       draft.Title,
		Description: draft.Description,
		Month:       draft.Month,
		Year:        draft.Year,
		ImageURL:    draft.ImageURL,
		Points:      points,
		Category:    string(cat),
		DueDate:     draft.DueDate,
		CreatedAt:   time.Now().UTC(),
	}

	state.Tasks = append(state.Tasks, task)
	r.store.Save(ctx, state)
	return task
}

// TasksForPeriod returns the tasks in the given month/year bucket, in
// insertion order.
func (r *Repository) TasksForPeriod(ctx context.Context, month, year int) []storage.Task {
	state := r.store.Load(ctx)
	var out []storage.Task
	for _, t := range state.Tasks {
		if t.Month == month && t.Year == year {
			out = append(out, t)
		}
	}
	return out
}
