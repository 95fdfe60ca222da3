package accounts

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/mzmzeee/hashing-showcase/internal/common"
)

// MemoryRepository keeps accounts in a map. It is used when no database is
// configured, so everything is lost when the process exits.
type MemoryRepository struct {
	mu       sync.RWMutex
	accounts map[string]Account
	now      func() time.Time
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{accounts: make(map[string]Account), now: time.Now}
}

func (r *MemoryRepository) Create(_ context.Context, account *Account) (*Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.accounts[account.Username]; ok {
		return nil, common.ErrAlreadyExists
	}

	account.ID = uuid.NewString()
	account.CreatedAt = r.now().UTC()
	r.accounts[account.Username] = *account

	return account, nil
}

func (r *MemoryRepository) GetByUsername(_ context.Context, username string) (*Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.accounts[username]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return &a, nil
}

func (r *MemoryRepository) ListPublicKeys(_ context.Context) ([]KeyEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	keys := make([]KeyEntry, 0, len(r.accounts))
	for _, a := range r.accounts {
		keys = append(keys, KeyEntry{Username: a.Username, PublicKey: a.PublicKey})
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i].Username < keys[j].Username })

	return keys, nil
}

func (r *MemoryRepository) Delete(_ context.Context, username string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.accounts[username]; !ok {
		return common.ErrorNotFound
	}
	delete(r.accounts, username)
	return nil
}
