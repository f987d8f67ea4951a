package accounts

import (
	"context"
)

// Repository is the persistence contract for accounts (the "user store").
//
// Create must fail with common.ErrorAlreadyExists when the email is already
// taken; the store-level uniqueness constraint is the final authority for the
// duplicate race, not the caller's pre-check. Lookups fail with
// common.ErrorNotFound when no account matches.
type Repository interface {
	Create(ctx context.Context, account *Account) (*Account, error)
	GetByEmail(ctx context.Context, email string) (*Account, error)
	GetByID(ctx context.Context, id string) (*Account, error)
}
