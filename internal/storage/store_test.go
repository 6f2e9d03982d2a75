package storage

import (
	"context"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *SQLiteStore {
	t.Helper()
	ctx := context.Background()
	db, err := Open(ctx, filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewSQLiteStore(db, nil)
}

func TestSQLiteStore(t *testing.T) {
	ctx := context.Background()

	t.Run("first load seeds defaults and persists them", func(t *testing.T) {
		store := openTestDB(t)

		state := store.Load(ctx)
		require.NotNil(t, state)
		assert.Zero(t, state.UserData.TotalPoints)
		assert.Len(t, state.ShopItems, 8)
		assert.Len(t, state.Tasks, 2)
		assert.Empty(t, state.MonthlyData)
		assert.False(t, state.UserData.JoinedDate.IsZero())

		// The seed is the durable baseline: a slot row must exist now.
		var raw string
		err := store.db.QueryRowContext(ctx, `SELECT doc FROM app_state WHERE key = ?`, StateKey).Scan(&raw)
		require.NoError(t, err)

		again := store.Load(ctx)
		assert.Equal(t, state, again)
	})

	t.Run("save then load round-trips the aggregate", func(t *testing.T) {
		store := openTestDB(t)

		state := store.Load(ctx)
		state.UserData.TotalPoints = 120
		state.UserData.AvailablePoints = 70
		state.UserData.CurrentStreak = 4
		state.UserData.LongestStreak = 9
		state.UserData.PurchasedItems = append(state.UserData.PurchasedItems, "theme-ocean")
		state.Tasks[0].Completed = true
		state.ShopItems[0].Purchased = true

		store.Save(ctx, state)

		loaded := store.Load(ctx)
		assert.Equal(t, state, loaded)
	})

	t.Run("corrupt document falls back to defaults without overwriting", func(t *testing.T) {
		store := openTestDB(t)

		_, err := store.db.ExecContext(ctx, `
			INSERT INTO app_state (key, doc) VALUES (?, ?)
			ON CONFLICT(key) DO UPDATE SET doc = excluded.doc
		`, StateKey, `{not json!`)
		require.NoError(t, err)

		state := store.Load(ctx)
		require.NotNil(t, state)
		assert.Zero(t, state.UserData.TotalPoints)
		assert.Len(t, state.ShopItems, 8)

		// The broken blob stays in place until the next save.
		var raw string
		require.NoError(t, store.db.QueryRowContext(ctx, `SELECT doc FROM app_state WHERE key = ?`, StateKey).Scan(&raw))
		assert.Equal(t, `{not json!`, raw)

		store.Save(ctx, state)
		require.NoError(t, store.db.QueryRowContext(ctx, `SELECT doc FROM app_state WHERE key = ?`, StateKey).Scan(&raw))
		assert.True(t, json.Valid([]byte(raw)))
	})
}

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()

	t.Run("seeds defaults on first load", func(t *testing.T) {
		store := NewMemoryStore(nil)
		state := store.Load(ctx)
		require.NotNil(t, state)
		assert.Len(t, state.ShopItems, 8)
		assert.NotNil(t, store.Raw(), "seed must be persisted")
	})

	t.Run("missing fields backfill from defaults", func(t *testing.T) {
		store := NewMemoryStore(nil)
		// An older document: profile without longestStreak or achievements,
		// no shopItems or monthlyData at all.
		store.SetRaw([]byte(`{
			"userData": {"totalPoints": 40, "availablePoints": 25, "completedTasks": 3, "currentStreak": 2},
			"tasks": []
		}`))

		state := store.Load(ctx)
		assert.Equal(t, 40, state.UserData.TotalPoints)
		assert.Equal(t, 25, state.UserData.AvailablePoints)
		assert.Equal(t, 3, state.UserData.CompletedTasks)
		assert.Equal(t, 2, state.UserData.CurrentStreak)
		assert.Equal(t, 0, state.UserData.LongestStreak)
		assert.NotNil(t, state.UserData.PurchasedItems)
		assert.NotNil(t, state.UserData.Achievements)
		assert.Empty(t, state.Tasks, "an explicitly empty task list is preserved")
		assert.Len(t, state.ShopItems, 8, "missing catalog backfills the seed")
		assert.Empty(t, state.MonthlyData)
	})

	t.Run("null collections backfill the seed", func(t *testing.T) {
		store := NewMemoryStore(nil)
		store.SetRaw([]byte(`{"userData": {}, "tasks": null, "shopItems": null, "monthlyData": null}`))

		state := store.Load(ctx)
		assert.Len(t, state.Tasks, 2)
		assert.Len(t, state.ShopItems, 8)
		assert.NotNil(t, state.MonthlyData)
		assert.Empty(t, state.MonthlyData)
	})

	t.Run("write failure is swallowed and leaves the slot untouched", func(t *testing.T) {
		store := NewMemoryStore(nil)
		baseline := store.Load(ctx)
		rawBefore := store.Raw()

		store.FailSaves = true
		mutated := baseline.Clone()
		mutated.UserData.TotalPoints = 999
		store.Save(ctx, mutated)

		assert.Equal(t, rawBefore, store.Raw(), "failed save must not change the slot")

		store.FailSaves = false
		store.Save(ctx, mutated)
		assert.Equal(t, 999, store.Load(ctx).UserData.TotalPoints)
	})

	t.Run("corrupt document falls back to defaults", func(t *testing.T) {
		store := NewMemoryStore(nil)
		store.SetRaw([]byte(`garbage`))

		state := store.Load(ctx)
		require.NotNil(t, state)
		assert.Zero(t, state.UserData.TotalPoints)
		assert.Len(t, state.ShopItems, 8)
	})
}

func TestCloneIsDeep(t *testing.T) {
	store := NewMemoryStore(nil)
	state := store.Load(context.Background())

	clone := state.Clone()
	clone.Tasks[0].Completed = true
	clone.UserData.PurchasedItems = append(clone.UserData.PurchasedItems, "theme-ocean")

	assert.False(t, state.Tasks[0].Completed)
	assert.Empty(t, state.UserData.PurchasedItems)
}
