package accounts

import "context"

// Repository persists accounts. GetByUsername and Delete return
// common.ErrorNotFound for unknown usernames; Create returns
// common.ErrAlreadyExists for a taken one.
type Repository interface {
	Create(ctx context.Context, account *Account) (*Account, error)
	GetByUsername(ctx context.Context, username string) (*Account, error)
	ListPublicKeys(ctx context.Context) ([]KeyEntry, error)
	Delete(ctx context.Context, username string) error
}

// Store hands out repositories. WithinTx runs fn against a repository bound
// to a single transaction where the backend supports one.
type Store interface {
	Accounts() Repository
	WithinTx(ctx context.Context, fn func(ctx context.Context, repo Repository) error) error
}
