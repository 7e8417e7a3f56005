// Package search implements case-insensitive substring search over entry
// text.
package search

import (
	"context"
	"strings"

	"github.com/journalkeep/diary-server/internal/model"
	"github.com/journalkeep/diary-server/internal/store"
)

// Engine reads the entry store and filters by query. It holds no state of its
// own; results always reflect the store at call time.
type Engine struct {
	store store.EntryStore
}

// NewEngine creates a query engine over the given store.
func NewEngine(st store.EntryStore) *Engine {
	return &Engine{store: st}
}

// Search returns entries whose text contains query, compared case-insensitively,
// preserving the store's creation order. An empty query matches every entry; no
// match yields an empty slice, not an error.
func (e *Engine) Search(ctx context.Context, query string) ([]*model.DiaryEntry, error) {
	entries, err := e.store.List(ctx)
	if err != nil {
		return nil, err
	}

	q := strings.ToLower(query)
	out := make([]*model.DiaryEntry, 0, len(entries))
	for _, entry := range entries {
		if strings.Contains(strings.ToLower(entry.Text), q) {
			out = append(out, entry)
		}
	}
	return out, nil
}
