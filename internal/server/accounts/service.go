// Package accounts owns the account-credential lifecycle: registration,
// authentication, and the supporting password hashing and default-avatar
// assignment. Session cookies are a transport concern and live in httpapi.
package accounts

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/streamify-app/auth-server/internal/common"
	"github.com/streamify-app/auth-server/internal/server/auth"
	"github.com/streamify-app/auth-server/internal/server/config"
)

const minPasswordLength = 6

var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Service implements the credential operations. It depends on a Repository
// for persistence and signs session tokens with the configured secret.
type Service struct {
	repo                         Repository
	jwtSecret                    []byte
	sessionTokenValidityDuration time.Duration
	bcryptCost                   int
}

func NewService(repo Repository, cfg *config.Config) *Service {
	return &Service{
		repo:                         repo,
		jwtSecret:                    []byte(cfg.SecretKey),
		sessionTokenValidityDuration: cfg.SessionTokenValidityDuration,
		bcryptCost:                   cfg.BcryptCost,
	}
}

// SessionTokenValidity returns the configured token lifetime. The transport
// layer uses it to align the cookie max age with the token expiry.
func (s *Service) SessionTokenValidity() time.Duration {
	return s.sessionTokenValidityDuration
}

// Register validates the input, creates the account with a freshly hashed
// password and a default avatar, and issues a session token for it.
//
// The duplicate check is advisory: the repository's uniqueness constraint is
// the final authority, so a concurrent register for the same email surfaces
// as common.ErrorAlreadyExists from Create even when the pre-check passed.
func (s *Service) Register(ctx context.Context, email, password, fullName string) (*Account, string, error) {

	if email == "" || password == "" || fullName == "" {
		return nil, "", ErrFieldsRequired
	}

	if utf8.RuneCountInString(password) < minPasswordLength {
		return nil, "", ErrPasswordTooShort
	}

	if !emailRegex.MatchString(email) {
		return nil, "", ErrInvalidEmailFormat
	}

	_, err := s.repo.GetByEmail(ctx, email)
	if err == nil {
		return nil, "", common.ErrorAlreadyExists
	}
	if !errors.Is(err, common.ErrorNotFound) {
		return nil, "", common.ErrorInternal
	}

	avatarURL, err := defaultAvatarURL()
	if err != nil {
		return nil, "", common.ErrorInternal
	}

	hash, err := HashPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return nil, "", common.ErrorInternal
	}

	account := &Account{
		Email:        email,
		PasswordHash: hash,
		FullName:     fullName,
		AvatarURL:    avatarURL,
	}

	account, err = s.repo.Create(ctx, account)
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			return nil, "", common.ErrorAlreadyExists
		}
		return nil, "", common.ErrorInternal
	}

	token, err := s.issueSessionToken(account.ID)
	if err != nil {
		return nil, "", common.ErrorInternal
	}

	return account, token, nil
}

// Authenticate verifies the credentials and issues a fresh session token.
// An unknown email and a wrong password both return common.ErrorUnauthorized
// so callers cannot distinguish which check failed.
func (s *Service) Authenticate(ctx context.Context, email, password string) (*Account, string, error) {

	email = strings.TrimSpace(email)

	if email == "" || password == "" {
		return nil, "", ErrFieldsRequired
	}

	account, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, "", common.ErrorUnauthorized
		}
		return nil, "", common.ErrorInternal
	}

	if !CheckPassword(account.PasswordHash, []byte(password)) {
		return nil, "", common.ErrorUnauthorized
	}

	token, err := s.issueSessionToken(account.ID)
	if err != nil {
		return nil, "", common.ErrorInternal
	}

	return account, token, nil
}

// GetAccount loads an account by id. Used by the transport layer to resolve
// the account behind a verified session token.
func (s *Service) GetAccount(ctx context.Context, id string) (*Account, error) {
	account, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		return nil, common.ErrorInternal
	}
	return account, nil
}

func (s *Service) issueSessionToken(accountID string) (string, error) {
	return auth.GenerateToken(accountID, s.jwtSecret, s.sessionTokenValidityDuration)
}
