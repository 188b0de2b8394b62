package settings

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/mailpassd/internal/common"
	"github.com/dmitrijs2005/mailpassd/internal/dbx"
	"github.com/dmitrijs2005/mailpassd/internal/server/models"
)

// PostgresRepository stores settings in the single-row module_settings
// table; supported servers are kept newline-joined.
type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Load(ctx context.Context) (*models.Settings, error) {
	query :=
		`SELECT supported_servers, host, port, updated_at FROM module_settings
		 WHERE id = 1
		 `

	var (
		servers string
		s       models.Settings
	)
	err := r.db.QueryRowContext(ctx, query).Scan(&servers, &s.Host, &s.Port, &s.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	s.SupportedServers = common.SplitServers(servers)
	return &s, nil
}

func (r *PostgresRepository) Save(ctx context.Context, s *models.Settings) error {
	query :=
		`INSERT INTO module_settings (id, supported_servers, host, port, updated_at)
		 VALUES (1, $1, $2, $3, $4)
		 ON CONFLICT (id) DO UPDATE
		 SET supported_servers = EXCLUDED.supported_servers, host = EXCLUDED.host,
		     port = EXCLUDED.port, updated_at = EXCLUDED.updated_at
		 `

	_, err := r.db.ExecContext(ctx, query, common.JoinServers(s.SupportedServers), s.Host, s.Port, s.UpdatedAt)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}
