// Package store holds computed reward scores keyed by opaque identifiers.
package store

import (
	"sync"

	"github.com/google/uuid"
)

// Store is an in-memory, process-lifetime map from identifier to score.
// It is safe for concurrent Insert and Lookup. Entries are never updated
// or deleted; growth is unbounded for the life of the process, so any
// production bound (cap, TTL, external store) has to be imposed outside.
type Store struct {
	mu      sync.RWMutex
	records map[string]int
}

// New returns an empty store.
func New() *Store {
	return &Store{records: make(map[string]int)}
}

// Insert associates points with a freshly generated identifier and
// returns it. Identifiers are random v4 UUIDs (crypto/rand backed,
// 128-bit), so collisions are negligible by construction; the existence
// check makes reuse impossible rather than merely improbable.
func (s *Store) Insert(points int) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := uuid.NewString()
	for {
		if _, taken := s.records[id]; !taken {
			break
		}
		id = uuid.NewString()
	}
	s.records[id] = points
	return id
}

// Lookup returns the score stored under id. The second return is false
// when the store never produced id.
func (s *Store) Lookup(id string) (int, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	points, ok := s.records[id]
	return points, ok
}

// Len reports how many scores the store currently holds.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}
