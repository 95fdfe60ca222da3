// Package accounts registers users and checks their passwords with the
// credential stretching function. Each account also owns an RSA key pair
// used to sign messages for the visualizer.
package accounts

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/mzmzeee/hashing-showcase/internal/common"
	"github.com/mzmzeee/hashing-showcase/internal/config"
	"github.com/mzmzeee/hashing-showcase/internal/cryptox"
	"github.com/mzmzeee/hashing-showcase/internal/logging"
	"github.com/mzmzeee/hashing-showcase/internal/signing"
)

// Service implements registration, login and the key directory on top of a
// Store.
type Service struct {
	store      Store
	stretcher  *cryptox.Stretcher
	iterations int
	saltSize   int
	keyBits    int
	logger     logging.Logger

	generateKeyPair func(bits int) (*signing.KeyPair, error)
}

// NewService constructs a Service from the hashing and key settings of cfg.
func NewService(store Store, cfg *config.Config, logger logging.Logger) *Service {
	return &Service{
		store:           store,
		stretcher:       cryptox.NewStretcher(cfg.StretchParams()),
		iterations:      cfg.Iterations,
		saltSize:        cfg.SaltSize,
		keyBits:         cfg.KeyBits,
		logger:          logger,
		generateKeyPair: signing.GenerateKeyPair,
	}
}

// Register creates an account with a fresh salt, the stretched password hash
// and a new key pair.
func (s *Service) Register(ctx context.Context, username, password string) (*Account, error) {
	username, err := validate(username, password)
	if err != nil {
		return nil, err
	}

	repo := s.store.Accounts()

	_, err = repo.GetByUsername(ctx, username)
	switch {
	case err == nil:
		return nil, common.ErrAlreadyExists
	case !errors.Is(err, common.ErrorNotFound):
		s.logger.Error(ctx, "account lookup failed", "username", username, "error", err)
		return nil, common.ErrorInternal
	}

	account, err := s.newAccount(username, password)
	if err != nil {
		s.logger.Error(ctx, "account preparation failed", "username", username, "error", err)
		return nil, common.ErrorInternal
	}

	a, err := repo.Create(ctx, account)
	if err != nil {
		if errors.Is(err, common.ErrAlreadyExists) {
			return nil, err
		}
		s.logger.Error(ctx, "account creation failed", "username", username, "error", err)
		return nil, common.ErrorInternal
	}

	s.logger.Info(ctx, "account registered", "username", a.Username, "iterations", a.Iterations)
	return a, nil
}

// Login recomputes the credential hash with the stored salt and stretch
// parameters and compares it in constant time. Unknown users cost one dummy stretch so
// both failure paths take comparable time. Any failure is
// common.ErrorUnauthorized.
func (s *Service) Login(ctx context.Context, username, password string) (*Account, error) {
	username = strings.TrimSpace(username)

	a, err := s.store.Accounts().GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			s.stretcher.Stretch(password, common.GenerateRandByteArray(s.saltLen()), s.iterations)
			s.logger.Info(ctx, "login rejected", "username", username)
			return nil, common.ErrorUnauthorized
		}
		s.logger.Error(ctx, "account lookup failed", "username", username, "error", err)
		return nil, common.ErrorInternal
	}

	salt, err := cryptox.FromHex(a.Salt)
	if err != nil {
		s.logger.Error(ctx, "stored salt is corrupt", "username", username, "error", err)
		return nil, common.ErrorInternal
	}

	stretcher, err := s.stretcherFor(a)
	if err != nil {
		s.logger.Error(ctx, "stored stretch parameters are corrupt", "username", username, "error", err)
		return nil, common.ErrorInternal
	}

	candidate := stretcher.Stretch(password, salt, a.Iterations)
	s.logger.Debug(ctx, "login candidate computed", "username", username, "candidate", logging.Secret(candidate))

	if !cryptox.ConstantTimeEquals(candidate, a.PasswordHash) {
		s.logger.Info(ctx, "login rejected", "username", username)
		return nil, common.ErrorUnauthorized
	}

	s.logger.Info(ctx, "login accepted", "username", username)
	return a, nil
}

// PublicKeys lists every account's public key, ordered by username.
func (s *Service) PublicKeys(ctx context.Context) ([]KeyEntry, error) {
	keys, err := s.store.Accounts().ListPublicKeys(ctx)
	if err != nil {
		s.logger.Error(ctx, "listing public keys failed", "error", err)
		return nil, common.ErrorInternal
	}
	return keys, nil
}

// Delete removes the account together with its salt, hash and key pair.
func (s *Service) Delete(ctx context.Context, username string) error {
	username = strings.TrimSpace(username)

	if err := s.store.Accounts().Delete(ctx, username); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return err
		}
		s.logger.Error(ctx, "account deletion failed", "username", username, "error", err)
		return common.ErrorInternal
	}

	s.logger.Info(ctx, "account deleted", "username", username)
	return nil
}

// SeedDemoUsers creates the given accounts with a shared password unless they
// already exist, and returns the usernames it created. On a transactional
// store either all missing accounts are created or none are.
func (s *Service) SeedDemoUsers(ctx context.Context, usernames []string, password string) ([]string, error) {
	created := make([]string, 0, len(usernames))

	err := s.store.WithinTx(ctx, func(ctx context.Context, repo Repository) error {
		created = created[:0]
		for _, name := range usernames {
			username, err := validate(name, password)
			if err != nil {
				return fmt.Errorf("demo user %q: %w", name, err)
			}

			_, err = repo.GetByUsername(ctx, username)
			if err == nil {
				continue
			}
			if !errors.Is(err, common.ErrorNotFound) {
				return fmt.Errorf("demo user %q: %w", username, err)
			}

			account, err := s.newAccount(username, password)
			if err != nil {
				return fmt.Errorf("demo user %q: %w", username, err)
			}
			if _, err := repo.Create(ctx, account); err != nil {
				return fmt.Errorf("demo user %q: %w", username, err)
			}
			created = append(created, username)
		}
		return nil
	})
	if err != nil {
		s.logger.Error(ctx, "seeding demo users failed", "error", err)
		return nil, err
	}

	if len(created) > 0 {
		s.logger.Info(ctx, "demo users seeded", "usernames", created)
	}
	return created, nil
}

func (s *Service) newAccount(username, password string) (*Account, error) {
	salt, err := cryptox.GenerateSalt(s.saltSize)
	if err != nil {
		return nil, err
	}

	iterations := s.stretcher.EffectiveIterations(s.iterations)
	hash := s.stretcher.Stretch(password, salt, iterations)

	kp, err := s.generateKeyPair(s.keyBits)
	if err != nil {
		return nil, err
	}

	a := &Account{
		Username:     username,
		PasswordHash: hash,
		Salt:         cryptox.ToHex(salt),
		Iterations:   iterations,
		PublicKey:    kp.PublicKey,
		PrivateKey:   kp.PrivateKey,
	}
	p := s.stretcher.Params()
	a.Construction = string(p.Construction)
	if p.Construction == cryptox.ConstructionArgon2id {
		a.MemoryKiB = p.MemoryKiB
		a.Lanes = p.Lanes
		a.KeyLen = p.KeyLen
	}
	return a, nil
}

// stretcherFor rebuilds the stretcher a was registered with. Accounts with
// no recorded construction fall back to the configured one.
func (s *Service) stretcherFor(a *Account) (*cryptox.Stretcher, error) {
	if a.Construction == "" {
		return s.stretcher, nil
	}
	c, err := cryptox.ParseConstruction(a.Construction)
	if err != nil {
		return nil, err
	}
	return cryptox.NewStretcher(cryptox.StretchParams{
		Construction:  c,
		MaxIterations: a.Iterations,
		MemoryKiB:     a.MemoryKiB,
		Lanes:         a.Lanes,
		KeyLen:        a.KeyLen,
	}), nil
}

func (s *Service) saltLen() int {
	if s.saltSize <= 0 {
		return cryptox.DefaultSaltSize
	}
	return s.saltSize
}

func validate(username, password string) (string, error) {
	username = strings.TrimSpace(username)
	if len(username) < common.MinUsernameLength {
		return "", common.ErrInvalidUsername
	}
	if len(password) < common.MinPasswordLength {
		return "", common.ErrInvalidPassword
	}
	return username, nil
}
