// Package memory is the default ledger backend: a mutex-guarded slice.
package memory

import (
	"context"
	"sync"

	"grana/internal/core"
)

type Store struct {
	mu    sync.Mutex
	items []core.Transaction
}

func New() *Store {
	return &Store{}
}

// Append stores the transaction with a fresh id. Ids are regenerated on
// collision, bounded, so two stored records never share one.
func (s *Store) Append(_ context.Context, t core.Transaction) (core.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id, ok := s.freshIDLocked()
	if !ok {
		return core.Transaction{}, core.ErrIDExhausted
	}
	t.ID = id
	if err := t.Validate(); err != nil {
		return core.Transaction{}, err
	}
	s.items = append(s.items, t)
	return t, nil
}

const maxIDAttempts = 10

func (s *Store) freshIDLocked() (string, bool) {
	for i := 0; i < maxIDAttempts; i++ {
		id := core.NewID()
		if _, taken := s.indexLocked(id); !taken {
			return id, true
		}
	}
	return "", false
}

func (s *Store) indexLocked(id string) (int, bool) {
	id = core.NormalizeID(id)
	for i, t := range s.items {
		if t.ID == id {
			return i, true
		}
	}
	return 0, false
}

func (s *Store) Find(_ context.Context, id string) (core.Transaction, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i, ok := s.indexLocked(id); ok {
		return s.items[i], true, nil
	}
	return core.Transaction{}, false, nil
}

func (s *Store) Delete(_ context.Context, id string) (core.Transaction, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i, ok := s.indexLocked(id)
	if !ok {
		return core.Transaction{}, false, nil
	}
	removed := s.items[i]
	s.items = append(s.items[:i], s.items[i+1:]...)
	return removed, true, nil
}

func (s *Store) Recent(_ context.Context, n int) ([]core.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if n > len(s.items) {
		n = len(s.items)
	}
	out := make([]core.Transaction, 0, n)
	for i := len(s.items) - 1; i >= len(s.items)-n; i-- {
		out = append(out, s.items[i])
	}
	return out, nil
}

func (s *Store) Filter(_ context.Context, pred func(core.Transaction) bool) ([]core.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []core.Transaction
	for _, t := range s.items {
		if pred(t) {
			out = append(out, t)
		}
	}
	return out, nil
}

func (s *Store) Len(_ context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items), nil
}

func (s *Store) Close() error { return nil }
