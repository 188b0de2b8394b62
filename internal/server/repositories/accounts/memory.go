package accounts

import (
	"context"
	"sync"
	"time"

	"github.com/dmitrijs2005/mailpassd/internal/common"
	"github.com/dmitrijs2005/mailpassd/internal/server/models"
	"github.com/google/uuid"
)

// InMemoryRepository keeps accounts in a map. It is used when no database
// is configured and in tests. Callers always receive copies.
type InMemoryRepository struct {
	mu       sync.RWMutex
	accounts map[string]*models.Account
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{accounts: make(map[string]*models.Account)}
}

// Put stores a copy of account, assigning a new id when it has none, and
// returns the stored id.
func (r *InMemoryRepository) Put(account *models.Account) string {
	a := clone(account)
	if a.ID == "" {
		a.ID = uuid.NewString()
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.accounts[a.ID] = a
	return a.ID
}

func (r *InMemoryRepository) GetByID(ctx context.Context, id string) (*models.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.accounts[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return clone(a), nil
}

func (r *InMemoryRepository) GetByIDForUpdate(ctx context.Context, id string) (*models.Account, error) {
	return r.GetByID(ctx, id)
}

func (r *InMemoryRepository) UpdatePassword(ctx context.Context, id string, password string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.accounts[id]
	if !ok {
		return common.ErrorNotFound
	}
	now := time.Now()
	a.Password = password
	a.PasswordChangedAt = &now
	return nil
}

func clone(a *models.Account) *models.Account {
	c := *a
	if a.Server != nil {
		s := *a.Server
		c.Server = &s
	}
	if a.PasswordChangedAt != nil {
		t := *a.PasswordChangedAt
		c.PasswordChangedAt = &t
	}
	return &c
}
