package storage

import (
	"context"
	"sync"

	"github.com/mzmzeee/hashing-showcase/internal/accounts"
)

// MemoryManager serves a single accounts.MemoryRepository. WithinTx
// serializes callers but cannot roll back.
type MemoryManager struct {
	mu   sync.Mutex
	repo *accounts.MemoryRepository
}

func NewMemoryManager() *MemoryManager {
	return &MemoryManager{repo: accounts.NewMemoryRepository()}
}

func (m *MemoryManager) Accounts() accounts.Repository {
	return m.repo
}

func (m *MemoryManager) WithinTx(ctx context.Context, fn func(ctx context.Context, repo accounts.Repository) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return fn(ctx, m.repo)
}

func (m *MemoryManager) RunMigrations(context.Context) error {
	return nil
}

func (m *MemoryManager) Close() error {
	return nil
}
