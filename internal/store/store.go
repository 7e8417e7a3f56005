// Package store defines the append-only entry collection contract.
package store

import (
	"context"

	"github.com/journalkeep/diary-server/internal/model"
)

// EntryStore holds the growing collection of diary entries in creation order.
// Append must be atomic with respect to concurrent appends; List returns a
// snapshot that is safe to re-read and is never consumed by iteration.
//
// The default implementation is in-memory and process-lifetime only; callers
// needing durability swap in the sqlite-backed implementation.
type EntryStore interface {
	Append(ctx context.Context, entry *model.DiaryEntry) error
	List(ctx context.Context) ([]*model.DiaryEntry, error)
}
