package journal

import (
	"context"
	"fmt"
	"sync"
)

// MemoryStore is an in-memory Store for tests and ephemeral hosts.
type MemoryStore struct {
	mu      sync.RWMutex
	streams map[string][]*Record
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		streams: make(map[string][]*Record),
	}
}

// Append implements Store.
func (s *MemoryStore) Append(ctx context.Context, stream string, expectedVersion int, recs []*Record) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	current := len(s.streams[stream]) - 1
	if expectedVersion != current {
		return 0, fmt.Errorf("%w: stream %q at version %d, expected %d",
			ErrVersionConflict, stream, current, expectedVersion)
	}

	version := current
	for _, rec := range recs {
		version++
		rec.Stream = stream
		rec.Version = version
		// The store keeps its own copy; later caller mutations must not
		// reach into the stream.
		stored := *rec
		s.streams[stream] = append(s.streams[stream], &stored)
	}
	return version, nil
}

// Read implements Store.
func (s *MemoryStore) Read(ctx context.Context, stream string, from int) ([]*Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	recs := s.streams[stream]
	if from < 0 {
		from = 0
	}
	if from >= len(recs) {
		return nil, nil
	}
	out := make([]*Record, len(recs)-from)
	copy(out, recs[from:])
	return out, nil
}

// Close implements Store.
func (s *MemoryStore) Close() error {
	return nil
}

var _ Store = (*MemoryStore)(nil)
