package accounts

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/mailpassd/internal/common"
	"github.com/dmitrijs2005/mailpassd/internal/cryptox"
	"github.com/dmitrijs2005/mailpassd/internal/dbx"
	"github.com/dmitrijs2005/mailpassd/internal/server/models"
)

const selectAccount = `SELECT a.id, a.email, a.incoming_login, a.password_ciphertext, a.password_nonce,
       a.password_changed_at, s.id, s.name, s.incoming_server
  FROM accounts a
  LEFT JOIN servers s ON s.id = a.server_id
 WHERE a.id = $1`

// PostgresRepository keeps passwords AES-GCM encrypted under key.
type PostgresRepository struct {
	db  dbx.DBTX
	key []byte
}

func NewPostgresRepository(db dbx.DBTX, key []byte) *PostgresRepository {
	return &PostgresRepository{db: db, key: key}
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.Account, error) {
	return r.get(ctx, selectAccount, id)
}

func (r *PostgresRepository) GetByIDForUpdate(ctx context.Context, id string) (*models.Account, error) {
	return r.get(ctx, selectAccount+"\n   FOR UPDATE OF a", id)
}

func (r *PostgresRepository) get(ctx context.Context, query string, id string) (*models.Account, error) {
	var (
		account    models.Account
		ciphertext []byte
		nonce      []byte
		changedAt  sql.NullTime
		serverID   sql.NullString
		serverName sql.NullString
		incoming   sql.NullString
	)

	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&account.ID, &account.Email, &account.IncomingLogin, &ciphertext, &nonce,
		&changedAt, &serverID, &serverName, &incoming,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	password, err := cryptox.DecryptPassword(ciphertext, nonce, r.key)
	if err != nil {
		return nil, fmt.Errorf("decrypt password of account %s: %w", account.ID, err)
	}
	account.Password = password

	if changedAt.Valid {
		t := changedAt.Time
		account.PasswordChangedAt = &t
	}
	if serverID.Valid {
		account.Server = &models.Server{
			ID:             serverID.String,
			Name:           serverName.String,
			IncomingServer: incoming.String,
		}
	}

	return &account, nil
}

func (r *PostgresRepository) UpdatePassword(ctx context.Context, id string, password string) error {
	ciphertext, nonce, err := cryptox.EncryptPassword(password, r.key)
	if err != nil {
		return fmt.Errorf("encrypt password: %w", err)
	}

	query :=
		`UPDATE accounts SET password_ciphertext = $1, password_nonce = $2, password_changed_at = now()
		 WHERE id = $3
		 `

	res, err := r.db.ExecContext(ctx, query, ciphertext, nonce, id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if n == 0 {
		return common.ErrorNotFound
	}

	return nil
}
