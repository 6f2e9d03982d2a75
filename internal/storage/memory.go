package storage

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"go.uber.org/zap"
)

// MemoryStore holds the serialized document in memory. It shares the
// encode/decode path with SQLiteStore so the fallback behavior is
// identical; used in tests and anywhere durability is not needed.
type MemoryStore struct {
	mu  sync.RWMutex
	raw []byte
	log *zap.Logger

	// FailSaves makes Save drop writes, simulating a full store.
	FailSaves bool
}

func NewMemoryStore(log *zap.Logger) *MemoryStore {
	if log == nil {
		log = zap.NewNop()
	}
	return &MemoryStore{log: log}
}

// SetRaw injects a serialized document directly, bypassing Save.
func (s *MemoryStore) SetRaw(raw []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.raw = append([]byte(nil), raw...)
}

// Raw returns the stored document bytes, or nil when nothing is stored.
func (s *MemoryStore) Raw() []byte {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]byte(nil), s.raw...)
}

func (s *MemoryStore) Load(ctx context.Context) *AppState {
	now := time.Now().UTC()

	s.mu.RLock()
	raw := s.raw
	s.mu.RUnlock()

	if raw == nil {
		state := DefaultState(now)
		s.Save(ctx, state)
		return state
	}

	state, err := decodeState(raw, now)
	if err != nil {
		s.log.Warn("state decode failed, falling back to defaults", zap.Error(err))
		return DefaultState(now)
	}
	return state
}

func (s *MemoryStore) Save(_ context.Context, state *AppState) {
	raw, err := json.Marshal(state)
	if err != nil {
		s.log.Error("state encode failed, save skipped", zap.Error(err))
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.FailSaves {
		s.log.Error("state save failed, in-memory state stands")
		return
	}
	s.raw = raw
}
