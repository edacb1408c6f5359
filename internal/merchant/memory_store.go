package merchant

import (
	"context"
	"sync"
	"time"
)

// MemoryStore is a thread-safe in-memory registry for demo/development and
// handler tests. Insertion order is tracked so ListRecent matches the
// Postgres newest-first semantics.
type MemoryStore struct {
	mu       sync.RWMutex
	records  map[string]*Merchant // canonical handle -> record
	inserted []string             // handles in insertion order
}

// NewMemoryStore creates a new in-memory registry.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		records: make(map[string]*Merchant),
	}
}

var _ Store = (*MemoryStore)(nil)

func (s *MemoryStore) Create(_ context.Context, m *Merchant) error {
	if err := m.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	handle := CanonicalHandle(m.Handle)
	if _, exists := s.records[handle]; exists {
		return ErrMerchantExists
	}

	cp := *m
	cp.Handle = handle
	if cp.CreatedAt.IsZero() {
		cp.CreatedAt = time.Now()
	}
	s.records[handle] = &cp
	s.inserted = append(s.inserted, handle)
	return nil
}

func (s *MemoryStore) Get(_ context.Context, handle string) (*Merchant, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	m, ok := s.records[CanonicalHandle(handle)]
	if !ok {
		return nil, ErrMerchantNotFound
	}
	cp := *m
	return &cp, nil
}

func (s *MemoryStore) ListRecent(_ context.Context, limit int) ([]*Merchant, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if limit <= 0 || limit > DefaultListLimit {
		limit = DefaultListLimit
	}

	results := make([]*Merchant, 0, limit)
	for i := len(s.inserted) - 1; i >= 0 && len(results) < limit; i-- {
		cp := *s.records[s.inserted[i]]
		results = append(results, &cp)
	}
	return results, nil
}

func (s *MemoryStore) Count(_ context.Context) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return int64(len(s.records)), nil
}
