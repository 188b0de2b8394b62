package settings

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/mailpassd/internal/common"
	"github.com/dmitrijs2005/mailpassd/internal/server/models"
)

type InMemoryRepository struct {
	mu sync.Mutex
	s  *models.Settings
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{}
}

func (r *InMemoryRepository) Load(ctx context.Context) (*models.Settings, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.s == nil {
		return nil, common.ErrorNotFound
	}
	return r.s.Clone(), nil
}

func (r *InMemoryRepository) Save(ctx context.Context, s *models.Settings) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.s = s.Clone()
	return nil
}
