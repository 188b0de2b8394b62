package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/mailpassd/internal/dbx"
	"github.com/dmitrijs2005/mailpassd/internal/server/repositories/accounts"
	"github.com/dmitrijs2005/mailpassd/internal/server/repositories/settings"
)

// RepositoryManager vends repositories bound to a database handle, which
// may be a *sql.DB or a *sql.Tx.
type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Accounts(db dbx.DBTX) accounts.Repository
	Settings(db dbx.DBTX) settings.Repository
}
