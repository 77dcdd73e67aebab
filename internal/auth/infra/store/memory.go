package store

import (
	"context"
	"sync"

	"github.com/dwikikusuma/storefront/internal/auth/domain"
)

// MemoryStore keeps the session for the life of the process.
type MemoryStore struct {
	mu sync.Mutex
	s  domain.Session
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (m *MemoryStore) Load(ctx context.Context) (domain.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.s.Clone(), nil
}

func (m *MemoryStore) Save(ctx context.Context, s domain.Session) error {
	m.mu.Lock()
	m.s = s.Clone()
	m.mu.Unlock()
	return nil
}

func (m *MemoryStore) Clear(ctx context.Context) error {
	m.mu.Lock()
	m.s = domain.Session{}
	m.mu.Unlock()
	return nil
}
