package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/mzmzeee/hashing-showcase/internal/accounts"
	"github.com/mzmzeee/hashing-showcase/internal/dbx"
	"github.com/mzmzeee/hashing-showcase/internal/migrations"
	"github.com/pressly/goose/v3"
)

// PostgresManager vends PostgreSQL-backed account repositories and applies
// the embedded schema migrations.
type PostgresManager struct {
	db *sql.DB
}

// sqlOpen is a seam for tests.
var sqlOpen = sql.Open

// gooseUpContext is a seam for testing goose.UpContext.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

// NewPostgresManager opens dsn with the pgx driver and pings it, giving up
// after timeout.
func NewPostgresManager(ctx context.Context, dsn string, timeout time.Duration) (*PostgresManager, error) {
	db, err := sqlOpen("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("db ping error: %w", err)
	}

	return newPostgresManager(db), nil
}

func newPostgresManager(db *sql.DB) *PostgresManager {
	return &PostgresManager{db: db}
}

// Accounts returns a repository bound to the connection pool.
func (m *PostgresManager) Accounts() accounts.Repository {
	return accounts.NewPostgresRepository(m.db)
}

// WithinTx runs fn with a repository bound to one transaction, committing
// when fn returns nil.
func (m *PostgresManager) WithinTx(ctx context.Context, fn func(ctx context.Context, repo accounts.Repository) error) error {
	return dbx.WithTx(ctx, m.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		return fn(ctx, accounts.NewPostgresRepository(tx))
	})
}

// RunMigrations sets up goose with the embedded migrations and runs them.
func (m *PostgresManager) RunMigrations(ctx context.Context) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("pgx"); err != nil {
		return err
	}
	if err := gooseUpContext(ctx, m.db, "."); err != nil {
		return err
	}
	return nil
}

func (m *PostgresManager) Close() error {
	return m.db.Close()
}
