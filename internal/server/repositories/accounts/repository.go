// Package accounts stores the platform's mail accounts and their servers.
package accounts

import (
	"context"

	"github.com/dmitrijs2005/mailpassd/internal/server/models"
)

type Repository interface {
	GetByID(ctx context.Context, id string) (*models.Account, error)
	// GetByIDForUpdate is GetByID that also locks the row until the
	// surrounding transaction ends.
	GetByIDForUpdate(ctx context.Context, id string) (*models.Account, error)
	UpdatePassword(ctx context.Context, id string, password string) error
}
