package services

import (
	"context"
	"crypto/subtle"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/mailpassd/internal/common"
	"github.com/dmitrijs2005/mailpassd/internal/dbx"
	"github.com/dmitrijs2005/mailpassd/internal/logging"
	"github.com/dmitrijs2005/mailpassd/internal/poppassd"
	"github.com/dmitrijs2005/mailpassd/internal/server/policy"
	"github.com/dmitrijs2005/mailpassd/internal/server/repositories/repomanager"
)

// ExtendAllowChangePassword is set in AccountView.Extend for accounts whose
// mail server accepts password changes through POPPASSD.
const ExtendAllowChangePassword = "AllowChangePasswordOnMailServer"

// AccountView is the account as shown to its owner. Passwords never leave
// the service.
type AccountView struct {
	ID                string
	Email             string
	IncomingLogin     string
	ServerName        string
	IncomingServer    string
	PasswordChangedAt *time.Time
	Extend            map[string]any
}

// AccountService reads accounts and runs password changes through the
// handler pipeline, persisting the result in the platform's own store.
type AccountService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	policy      *policy.Policy
	pipeline    *Pipeline
	log         logging.Logger
}

func NewAccountService(db *sql.DB, m repomanager.RepositoryManager, settings policy.SettingsSource,
	pipeline *Pipeline, log logging.Logger) *AccountService {
	if log == nil {
		log = logging.Nop{}
	}
	return &AccountService{
		db:          db,
		repomanager: m,
		policy:      policy.New(settings),
		pipeline:    pipeline,
		log:         log.With("module", "accounts"),
	}
}

// GetAccount returns the account view, flagging eligible accounts.
func (s *AccountService) GetAccount(ctx context.Context, accountID string) (*AccountView, error) {
	a, err := s.repomanager.Accounts(s.db).GetByID(ctx, accountID)
	if err != nil {
		return nil, err
	}

	v := &AccountView{
		ID:                a.ID,
		Email:             a.Email,
		IncomingLogin:     a.IncomingLogin,
		PasswordChangedAt: a.PasswordChangedAt,
		Extend:            map[string]any{},
	}
	if a.Server != nil {
		v.ServerName = a.Server.Name
		v.IncomingServer = a.Server.IncomingServer
	}
	if s.policy.IsEligible(a) {
		v.Extend[ExtendAllowChangePassword] = true
	}
	return v, nil
}

// ChangePassword changes the account password. Handlers get the first say;
// when none of them changed it, the platform-only change requires the
// current password to match the stored one. The returned flag reports
// whether a handler changed the password on the mail server.
func (s *AccountService) ChangePassword(ctx context.Context, accountID, currentPassword, newPassword string) (bool, error) {
	if newPassword == "" {
		return false, fmt.Errorf("%w: new password is required", common.ErrorValidation)
	}
	if !poppassd.ValidArgument(newPassword) {
		return false, fmt.Errorf("%w: new password contains control characters", common.ErrorValidation)
	}

	account, err := s.repomanager.Accounts(s.db).GetByID(ctx, accountID)
	if err != nil {
		return false, err
	}

	res, err := s.pipeline.Run(ctx, &PasswordChangeRequest{
		Account:         account,
		CurrentPassword: currentPassword,
		NewPassword:     newPassword,
	})
	if err != nil {
		return false, err
	}

	if !res.AccountPasswordChanged &&
		subtle.ConstantTimeCompare([]byte(currentPassword), []byte(account.Password)) != 1 {
		return false, common.ErrOldPasswordIncorrect
	}

	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Accounts(tx)
		if _, err := repo.GetByIDForUpdate(ctx, accountID); err != nil {
			return err
		}
		return repo.UpdatePassword(ctx, accountID, newPassword)
	})
	if err != nil {
		if res.AccountPasswordChanged {
			// the mail server already has the new password
			s.log.Error(ctx, "stored password out of sync with mail server", "account_id", accountID, "error", err)
		}
		if errors.Is(err, common.ErrorNotFound) {
			return false, err
		}
		return false, fmt.Errorf("error updating password: %w", err)
	}

	s.log.Info(ctx, "password updated", "account_id", accountID, "mail_server", res.AccountPasswordChanged)
	return res.AccountPasswordChanged, nil
}
