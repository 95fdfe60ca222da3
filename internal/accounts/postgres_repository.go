package accounts

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mzmzeee/hashing-showcase/internal/common"
	"github.com/mzmzeee/hashing-showcase/internal/dbx"
)

const uniqueViolation = "23505"

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, account *Account) (*Account, error) {

	query :=
		`INSERT INTO accounts (username, password_hash, salt, iterations,
		                       construction, memory_kib, lanes, key_len, public_key, private_key)
         VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		 RETURNING id, created_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		account.Username, account.PasswordHash, account.Salt, account.Iterations,
		account.Construction, int64(account.MemoryKiB), int16(account.Lanes), int64(account.KeyLen),
		account.PublicKey, account.PrivateKey).Scan(&account.ID, &account.CreatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return nil, common.ErrAlreadyExists
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return account, nil
}

func (r *PostgresRepository) GetByUsername(ctx context.Context, username string) (*Account, error) {
	query :=
		`SELECT id, username, password_hash, salt, iterations,
		        construction, memory_kib, lanes, key_len, public_key, private_key, created_at
		 FROM accounts
		 WHERE username = $1
		 `

	a := &Account{}
	var memoryKiB, keyLen int64
	var lanes int16
	err := r.db.QueryRowContext(ctx, query, username).Scan(
		&a.ID, &a.Username, &a.PasswordHash, &a.Salt, &a.Iterations,
		&a.Construction, &memoryKiB, &lanes, &keyLen,
		&a.PublicKey, &a.PrivateKey, &a.CreatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	a.MemoryKiB = uint32(memoryKiB)
	a.Lanes = uint8(lanes)
	a.KeyLen = uint32(keyLen)

	return a, nil
}

func (r *PostgresRepository) ListPublicKeys(ctx context.Context) ([]KeyEntry, error) {
	query :=
		`SELECT username, public_key FROM accounts
		 ORDER BY username
		 `

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	keys := make([]KeyEntry, 0)
	for rows.Next() {
		var k KeyEntry
		if err := rows.Scan(&k.Username, &k.PublicKey); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		keys = append(keys, k)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return keys, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, username string) error {
	query := `DELETE FROM accounts WHERE username = $1`

	res, err := r.db.ExecContext(ctx, query, username)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if n == 0 {
		return common.ErrorNotFound
	}

	return nil
}
