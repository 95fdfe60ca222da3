// Package storage opens the account store: PostgreSQL when a DSN is
// configured, an in-process map otherwise.
package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/mzmzeee/hashing-showcase/internal/accounts"
)

// Manager is an accounts.Store with a lifecycle.
type Manager interface {
	accounts.Store
	RunMigrations(ctx context.Context) error
	Close() error
}

// Open returns a Postgres manager for a non-empty dsn with migrations
// applied, and a memory manager otherwise.
func Open(ctx context.Context, dsn string, timeout time.Duration) (Manager, error) {
	if dsn == "" {
		return NewMemoryManager(), nil
	}

	m, err := NewPostgresManager(ctx, dsn, timeout)
	if err != nil {
		return nil, err
	}
	if err := m.RunMigrations(ctx); err != nil {
		_ = m.Close()
		return nil, fmt.Errorf("migration error: %w", err)
	}
	return m, nil
}
