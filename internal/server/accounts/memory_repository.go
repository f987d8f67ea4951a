package accounts

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/streamify-app/auth-server/internal/common"
)

// MemoryRepository is an in-memory Repository used by tests and local
// development. It enforces the same email-uniqueness contract as the
// PostgreSQL repository, including under concurrent Create calls.
type MemoryRepository struct {
	mu      sync.RWMutex
	byEmail map[string]*Account
	byID    map[string]*Account
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		byEmail: make(map[string]*Account),
		byID:    make(map[string]*Account),
	}
}

func (r *MemoryRepository) Create(ctx context.Context, account *Account) (*Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byEmail[account.Email]; ok {
		return nil, common.ErrorAlreadyExists
	}

	stored := *account
	stored.ID = uuid.NewString()
	stored.CreatedAt = time.Now()

	r.byEmail[stored.Email] = &stored
	r.byID[stored.ID] = &stored

	out := stored
	return &out, nil
}

func (r *MemoryRepository) GetByEmail(ctx context.Context, email string) (*Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	account, ok := r.byEmail[email]
	if !ok {
		return nil, common.ErrorNotFound
	}
	out := *account
	return &out, nil
}

func (r *MemoryRepository) GetByID(ctx context.Context, id string) (*Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	account, ok := r.byID[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	out := *account
	return &out, nil
}
