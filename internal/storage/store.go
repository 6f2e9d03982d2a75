package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"go.uber.org/zap"
)

// StateKey is the fixed slot the aggregate document lives under.
const StateKey = "school_calendar_data"

// Store persists the whole AppState as one document. The contract absorbs
// all failure: Load never errors (an unreadable or absent document falls
// back to seeded defaults) and Save swallows write failures after logging
// them, leaving the caller's in-memory state authoritative for the cycle.
type Store interface {
	Load(ctx context.Context) *AppState
	Save(ctx context.Context, state *AppState)
}

// decodeState unmarshals a stored document over a fully-defaulted value so
// fields missing from older documents are backfilled without an explicit
// migration step.
func decodeState(raw []byte, now time.Time) (*AppState, error) {
	doc := AppState{UserData: DefaultUserData(now)}
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, err
	}
	if doc.Tasks == nil {
		doc.Tasks = DefaultTasks(now)
	}
	if doc.ShopItems == nil {
		doc.ShopItems = DefaultShopItems()
	}
	if doc.MonthlyData == nil {
		doc.MonthlyData = []MonthData{}
	}
	if doc.UserData.PurchasedItems == nil {
		doc.UserData.PurchasedItems = []string{}
	}
	if doc.UserData.Achievements == nil {
		doc.UserData.Achievements = []Achievement{}
	}
	return &doc, nil
}

// SQLiteStore keeps the document in a single app_state row.
type SQLiteStore struct {
	db  *sql.DB
	log *zap.Logger
}

func NewSQLiteStore(db *sql.DB, log *zap.Logger) *SQLiteStore {
	if log == nil {
		log = zap.NewNop()
	}
	return &SQLiteStore{db: db, log: log}
}

func (s *SQLiteStore) Load(ctx context.Context) *AppState {
	now := time.Now().UTC()

	row := s.db.QueryRowContext(ctx, `SELECT doc FROM app_state WHERE key = ?`, StateKey)
	var raw string
	if err := row.Scan(&raw); err != nil {
		if err == sql.ErrNoRows {
			// First run: persist the seed so it becomes the durable baseline.
			state := DefaultState(now)
			s.Save(ctx, state)
			return state
		}
		s.log.Warn("state read failed, falling back to defaults", zap.Error(err))
		return DefaultState(now)
	}

	state, err := decodeState([]byte(raw), now)
	if err != nil {
		// The broken document stays in place; the next save overwrites it.
		s.log.Warn("state decode failed, falling back to defaults", zap.Error(err))
		return DefaultState(now)
	}
	return state
}

func (s *SQLiteStore) Save(ctx context.Context, state *AppState) {
	raw, err := json.Marshal(state)
	if err != nil {
		s.log.Error("state encode failed, save skipped", zap.Error(err))
		return
	}
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO app_state (key, doc, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET doc = excluded.doc, updated_at = CURRENT_TIMESTAMP
	`, StateKey, string(raw))
	if err != nil {
		s.log.Error("state save failed, in-memory state stands", zap.Error(err))
	}
}
