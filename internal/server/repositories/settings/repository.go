// Package settings persists the admin-editable POPPASSD settings.
package settings

import (
	"context"

	"github.com/dmitrijs2005/mailpassd/internal/server/models"
)

type Repository interface {
	// Load returns the stored settings or common.ErrorNotFound when none
	// have been saved yet.
	Load(ctx context.Context) (*models.Settings, error)
	Save(ctx context.Context, s *models.Settings) error
}
