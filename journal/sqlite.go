package journal

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

// SQLiteStore is a durable Store backed by a SQLite database.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore opens (and if needed creates) a SQLite-backed store at the
// given path. Use ":memory:" for an ephemeral database.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	// SQLite serializes writers; a single connection avoids table locks.
	db.SetMaxOpenConns(1)

	store := &SQLiteStore{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return store, nil
}

func (s *SQLiteStore) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS events (
		stream    TEXT NOT NULL,
		version   INTEGER NOT NULL,
		id        TEXT NOT NULL,
		topic     TEXT NOT NULL,
		data      TEXT,
		timestamp TEXT NOT NULL,
		PRIMARY KEY (stream, version)
	);

	CREATE INDEX IF NOT EXISTS idx_events_stream_topic ON events(stream, topic);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Append implements Store.
func (s *SQLiteStore) Append(ctx context.Context, stream string, expectedVersion int, recs []*Record) (int, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	var current int
	row := tx.QueryRowContext(ctx,
		`SELECT COALESCE(MAX(version), -1) FROM events WHERE stream = ?`, stream)
	if err := row.Scan(&current); err != nil {
		return 0, fmt.Errorf("read stream version: %w", err)
	}
	if expectedVersion != current {
		return 0, fmt.Errorf("%w: stream %q at version %d, expected %d",
			ErrVersionConflict, stream, current, expectedVersion)
	}

	version := current
	for _, rec := range recs {
		version++
		rec.Stream = stream
		rec.Version = version
		_, err := tx.ExecContext(ctx,
			`INSERT INTO events (stream, version, id, topic, data, timestamp) VALUES (?, ?, ?, ?, ?, ?)`,
			rec.Stream, rec.Version, rec.ID, rec.Topic, string(rec.Data),
			rec.Timestamp.UTC().Format(time.RFC3339Nano))
		if err != nil {
			return 0, fmt.Errorf("insert record %d: %w", version, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit: %w", err)
	}
	return version, nil
}

// Read implements Store.
func (s *SQLiteStore) Read(ctx context.Context, stream string, from int) ([]*Record, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT version, id, topic, data, timestamp FROM events WHERE stream = ? AND version >= ? ORDER BY version`,
		stream, from)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	var recs []*Record
	for rows.Next() {
		rec := &Record{Stream: stream}
		var data, ts string
		if err := rows.Scan(&rec.Version, &rec.ID, &rec.Topic, &data, &ts); err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		if data != "" {
			rec.Data = []byte(data)
		}
		rec.Timestamp, err = time.Parse(time.RFC3339Nano, ts)
		if err != nil {
			return nil, fmt.Errorf("parse timestamp %q: %w", ts, err)
		}
		recs = append(recs, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate: %w", err)
	}
	return recs, nil
}

// Close implements Store.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

var _ Store = (*SQLiteStore)(nil)
