// Package memstore implements the entry store in process memory.
package memstore

import (
	"context"
	"sync"

	"github.com/journalkeep/diary-server/internal/model"
)

// Store keeps entries in an append-only slice guarded by a read-write lock so
// listing can proceed concurrently with other reads. Growth is unbounded;
// capping it here would silently drop entries, so it is left to the caller.
type Store struct {
	mu      sync.RWMutex
	entries []*model.DiaryEntry
}

// New returns an empty store.
func New() *Store {
	return &Store{}
}

// Append adds the entry to the end of the collection.
func (s *Store) Append(ctx context.Context, entry *model.DiaryEntry) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = append(s.entries, entry)
	return nil
}

// List returns entries in creation order. The returned slice is a copy, so
// later appends do not show up in a snapshot a caller is still iterating.
func (s *Store) List(ctx context.Context) ([]*model.DiaryEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*model.DiaryEntry, len(s.entries))
	copy(out, s.entries)
	return out, nil
}

// Len reports the current number of entries.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}
