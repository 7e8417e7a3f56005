package sqlitestore

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// Open opens (or creates) a SQLite database at the given path and enables WAL
// journal mode for read-heavy workloads.
func Open(path string) (*sql.DB, error) {
	// ensure parent directory exists to avoid SQLITE_CANTOPEN errors
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}

	dsn := fmt.Sprintf("file:%s?_pragma=journal_mode(WAL)&_pragma=foreign_keys(ON)", path)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

const schema = `
CREATE TABLE IF NOT EXISTS Entries (
    Seq        INTEGER PRIMARY KEY AUTOINCREMENT,
    EntryId    TEXT NOT NULL UNIQUE,
    Text       TEXT NOT NULL,
    CreatedAt  TIMESTAMP NOT NULL
);
CREATE TABLE IF NOT EXISTS Attachments (
    EntryId  TEXT NOT NULL REFERENCES Entries(EntryId),
    Position INTEGER NOT NULL,
    Kind     TEXT NOT NULL,
    Locator  TEXT NOT NULL,
    PRIMARY KEY (EntryId, Position)
);
`

func bootstrap(db *sql.DB) error {
	_, err := db.Exec(schema)
	return err
}
