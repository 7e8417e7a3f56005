// Package sqlitestore implements a durable entry store on SQLite. It is the
// swap-in for deployments that need entries to survive a process restart.
package sqlitestore

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/journalkeep/diary-server/internal/model"
)

// Store persists entries and their attachments in two tables. Creation order
// is the autoincrement sequence on Entries.
type Store struct {
	db *sql.DB
}

// New opens (or creates) the database file and applies the schema.
func New(path string) (*Store, error) {
	db, err := Open(path)
	if err != nil {
		return nil, err
	}
	return NewWithDB(db)
}

// NewWithDB allows wiring with an existing connection (used by tests and the
// factory).
func NewWithDB(db *sql.DB) (*Store, error) {
	if err := bootstrap(db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("sqlite store: bootstrap: %w", err)
	}
	return &Store{db: db}, nil
}

// DB exposes the underlying connection.
func (s *Store) DB() *sql.DB { return s.db }

// Close closes the underlying connection.
func (s *Store) Close() error { return s.db.Close() }

// Append inserts the entry and its attachments in one transaction, so an
// entry is never partially visible to a concurrent List.
func (s *Store) Append(ctx context.Context, entry *model.DiaryEntry) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("sqlite store: begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO Entries (EntryId, Text, CreatedAt) VALUES (?,?,?)`,
		entry.ID, entry.Text, entry.CreatedAt); err != nil {
		return fmt.Errorf("sqlite store: insert entry: %w", err)
	}
	for i, a := range entry.Attachments {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO Attachments (EntryId, Position, Kind, Locator) VALUES (?,?,?,?)`,
			entry.ID, i, string(a.Kind), a.Locator); err != nil {
			return fmt.Errorf("sqlite store: insert attachment: %w", err)
		}
	}
	return tx.Commit()
}

// List returns all entries in creation order with their attachments in upload
// order.
func (s *Store) List(ctx context.Context) ([]*model.DiaryEntry, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT EntryId, Text, CreatedAt FROM Entries ORDER BY Seq`)
	if err != nil {
		return nil, fmt.Errorf("sqlite store: list entries: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []*model.DiaryEntry
	byID := make(map[string]*model.DiaryEntry)
	for rows.Next() {
		var e model.DiaryEntry
		if err := rows.Scan(&e.ID, &e.Text, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("sqlite store: scan entry: %w", err)
		}
		out = append(out, &e)
		byID[e.ID] = &e
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	arows, err := s.db.QueryContext(ctx,
		`SELECT a.EntryId, a.Kind, a.Locator FROM Attachments a
		 JOIN Entries e ON e.EntryId = a.EntryId
		 ORDER BY e.Seq, a.Position`)
	if err != nil {
		return nil, fmt.Errorf("sqlite store: list attachments: %w", err)
	}
	defer func() { _ = arows.Close() }()

	for arows.Next() {
		var entryID, kind, locator string
		if err := arows.Scan(&entryID, &kind, &locator); err != nil {
			return nil, fmt.Errorf("sqlite store: scan attachment: %w", err)
		}
		if e, ok := byID[entryID]; ok {
			e.Attachments = append(e.Attachments, model.Attachment{
				Kind:    model.AttachmentKind(kind),
				Locator: locator,
			})
		}
	}
	return out, arows.Err()
}
