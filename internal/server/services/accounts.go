// Package services contains server-side business logic. This file implements
// AccountService, which handles registration and login plus access token
// issuance.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/taskkeeper/internal/common"
	"github.com/dmitrijs2005/taskkeeper/internal/dbx"
	"github.com/dmitrijs2005/taskkeeper/internal/server/auth"
	"github.com/dmitrijs2005/taskkeeper/internal/server/config"
	"github.com/dmitrijs2005/taskkeeper/internal/server/models"
	"github.com/dmitrijs2005/taskkeeper/internal/server/repositories/repomanager"
)

// dummyDigest is a valid bcrypt digest of a random password. Login verifies
// against it when no account matches the email, so both miss paths cost a
// comparable amount of work.
const dummyDigest = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// AccountService provides authentication-related operations:
// - Register: create accounts
// - Login: verify credentials and mint an access token
type AccountService struct {
	db            *sql.DB
	repomanager   repomanager.RepositoryManager
	jwtSecret     []byte
	tokenIssuer   string
	tokenAudience string
	tokenValidity time.Duration
}

// NewAccountService constructs an AccountService using repositories and
// server config.
func NewAccountService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *AccountService {
	return &AccountService{
		db:            db,
		repomanager:   m,
		jwtSecret:     []byte(cfg.SecretKey),
		tokenIssuer:   cfg.TokenIssuer,
		tokenAudience: cfg.TokenAudience,
		tokenValidity: cfg.TokenValidityDuration,
	}
}

// Register creates a new account. The email pre-check runs before hashing to
// avoid wasted bcrypt work; the unique constraint on the email column is the
// authoritative guard, so a concurrent duplicate still surfaces as
// ErrorAlreadyExists from the insert. No token is issued; login is separate.
func (s *AccountService) Register(ctx context.Context, name, email, password string) (*models.Account, error) {
	if name == "" || email == "" {
		return nil, common.ErrorValidation
	}

	repo := s.repomanager.Accounts(s.db)
	exists, err := repo.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("error checking email: %w", err)
	}
	if exists {
		return nil, common.ErrorAlreadyExists
	}

	digest, err := auth.HashPassword(password)
	if err != nil {
		return nil, err
	}

	account := &models.Account{Name: name, Email: email, PasswordHash: digest}
	var created *models.Account
	if err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		var txErr error
		created, txErr = s.repomanager.Accounts(tx).Create(ctx, account)
		return txErr
	}); err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			return nil, common.ErrorAlreadyExists
		}
		return nil, fmt.Errorf("error creating account: %w", err)
	}

	return created, nil
}

// Login verifies the credentials and, on success, returns a signed access
// token. An unknown email and a wrong password both return the same
// ErrorUnauthorized.
func (s *AccountService) Login(ctx context.Context, email, password string) (string, error) {
	repo := s.repomanager.Accounts(s.db)
	account, err := repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			auth.CheckPassword(password, dummyDigest)
			return "", common.ErrorUnauthorized
		}
		return "", common.ErrorInternal
	}

	if !auth.CheckPassword(password, account.PasswordHash) {
		return "", common.ErrorUnauthorized
	}

	token, err := auth.IssueToken(account, s.jwtSecret, s.tokenIssuer, s.tokenAudience, s.tokenValidity)
	if err != nil {
		return "", common.ErrorInternal
	}

	return token, nil
}
