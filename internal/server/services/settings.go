package services

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"sync/atomic"
	"time"

	"github.com/dmitrijs2005/mailpassd/internal/common"
	"github.com/dmitrijs2005/mailpassd/internal/logging"
	"github.com/dmitrijs2005/mailpassd/internal/server/models"
	"github.com/dmitrijs2005/mailpassd/internal/server/repositories/repomanager"
)

// SettingsView is the admin form representation of the settings.
type SettingsView struct {
	SupportedServers string
	Host             string
	Port             int
}

// SettingsService owns the current settings snapshot. Readers get an
// immutable snapshot; updates replace it as a whole.
type SettingsService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	current     atomic.Pointer[models.Settings]
	log         logging.Logger
}

// NewSettingsService starts from defaults until Load finds stored settings.
func NewSettingsService(db *sql.DB, m repomanager.RepositoryManager, defaults *models.Settings, log logging.Logger) *SettingsService {
	if log == nil {
		log = logging.Nop{}
	}
	s := &SettingsService{
		db:          db,
		repomanager: m,
		log:         log.With("module", "settings"),
	}
	s.current.Store(defaults.Clone())
	return s
}

// Load replaces the snapshot with the stored settings, keeping the
// defaults when nothing has been stored yet.
func (s *SettingsService) Load(ctx context.Context) error {
	stored, err := s.repomanager.Settings(s.db).Load(ctx)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			s.log.Info(ctx, "no stored settings, using defaults")
			return nil
		}
		return err
	}
	s.current.Store(stored)
	return nil
}

// Current returns the snapshot in effect. Callers must not modify it.
func (s *SettingsService) Current() *models.Settings {
	return s.current.Load()
}

func (s *SettingsService) GetSettings(ctx context.Context) *SettingsView {
	c := s.Current()
	return &SettingsView{
		SupportedServers: common.JoinServers(c.SupportedServers),
		Host:             c.Host,
		Port:             c.Port,
	}
}

// UpdateSettings validates, stores and publishes new settings. The
// supported servers come one per line.
func (s *SettingsService) UpdateSettings(ctx context.Context, supportedServers, host string, port int) (bool, error) {
	next := &models.Settings{
		SupportedServers: common.SplitServers(supportedServers),
		Host:             strings.TrimSpace(host),
		Port:             port,
		UpdatedAt:        time.Now().UTC(),
	}
	if err := next.Validate(); err != nil {
		return false, err
	}

	if err := s.repomanager.Settings(s.db).Save(ctx, next); err != nil {
		return false, err
	}

	s.current.Store(next)
	s.log.Info(ctx, "settings updated", "host", next.Host, "port", next.Port, "servers", len(next.SupportedServers))
	return true, nil
}
