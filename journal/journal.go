// Package journal persists the structured events emitted by the ledger
// engine. A journal is an ordered, append-only stream of records with
// optimistic concurrency: appends name the version they expect the stream
// to be at and fail on a mismatch.
package journal

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ErrVersionConflict is returned when an append expects a stream version
// that no longer matches the stored one.
var ErrVersionConflict = errors.New("journal: version conflict")

// Record is a single journaled event.
type Record struct {
	// ID is a globally unique identifier for the record.
	ID string `json:"id"`

	// Stream names the ledger instance the event belongs to.
	Stream string `json:"stream"`

	// Version is the position of the record in its stream, starting at 0.
	Version int `json:"version"`

	// Topic is the ledger event topic.
	Topic string `json:"topic"`

	// Data is the JSON-encoded event payload.
	Data json.RawMessage `json:"data,omitempty"`

	// Timestamp is when the record was created, in UTC.
	Timestamp time.Time `json:"timestamp"`
}

// NewRecord creates a record for a topic and payload. Stream position is
// assigned by the store on append.
func NewRecord(stream, topic string, data any) (*Record, error) {
	var raw json.RawMessage
	if data != nil {
		b, err := json.Marshal(data)
		if err != nil {
			return nil, fmt.Errorf("marshal payload: %w", err)
		}
		raw = b
	}
	return &Record{
		ID:        uuid.New().String(),
		Stream:    stream,
		Version:   -1,
		Topic:     topic,
		Data:      raw,
		Timestamp: time.Now().UTC(),
	}, nil
}

// Decode unmarshals the record payload into v.
func (r *Record) Decode(v any) error {
	return json.Unmarshal(r.Data, v)
}

// Store is an append-only event store.
type Store interface {
	// Append adds records to a stream, assigning Stream and Version on
	// the given records in place. expectedVersion is the version of the
	// last record already in the stream, -1 for a new stream; the append
	// fails with ErrVersionConflict on a mismatch. Returns the version of
	// the last appended record.
	Append(ctx context.Context, stream string, expectedVersion int, recs []*Record) (int, error)

	// Read returns the records of a stream with version >= from, in
	// version order.
	Read(ctx context.Context, stream string, from int) ([]*Record, error)

	// Close releases store resources.
	Close() error
}
