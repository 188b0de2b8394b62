package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/mailpassd/internal/dbx"
	"github.com/dmitrijs2005/mailpassd/internal/server/repositories/accounts"
	"github.com/dmitrijs2005/mailpassd/internal/server/repositories/settings"
)

// InMemoryRepositoryManager hands out the same in-memory repositories
// whatever handle it is given.
type InMemoryRepositoryManager struct {
	accounts *accounts.InMemoryRepository
	settings *settings.InMemoryRepository
}

func NewInMemoryRepositoryManager() *InMemoryRepositoryManager {
	return &InMemoryRepositoryManager{
		accounts: accounts.NewInMemoryRepository(),
		settings: settings.NewInMemoryRepository(),
	}
}

func (m *InMemoryRepositoryManager) RunMigrations(context.Context, *sql.DB) error {
	return nil
}

func (m *InMemoryRepositoryManager) Accounts(dbx.DBTX) accounts.Repository {
	return m.accounts
}

func (m *InMemoryRepositoryManager) Settings(dbx.DBTX) settings.Repository {
	return m.settings
}

// AccountStore exposes the concrete store for seeding.
func (m *InMemoryRepositoryManager) AccountStore() *accounts.InMemoryRepository {
	return m.accounts
}
