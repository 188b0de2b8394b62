package services

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"net"
	"strconv"
	"time"

	"github.com/dmitrijs2005/mailpassd/internal/common"
	"github.com/dmitrijs2005/mailpassd/internal/logging"
	"github.com/dmitrijs2005/mailpassd/internal/poppassd"
	"github.com/dmitrijs2005/mailpassd/internal/server/models"
	"github.com/dmitrijs2005/mailpassd/internal/server/policy"
)

// PoppassdSession is the part of *poppassd.Client the orchestrator drives.
type PoppassdSession interface {
	Connect(ctx context.Context, addr string) error
	Login(ctx context.Context, user, password string) error
	NewPass(ctx context.Context, password string) (bool, string, error)
	Disconnect() error
}

// SessionFactory returns a new, unconnected session for every call.
type SessionFactory func() PoppassdSession

// NewClientFactory builds sessions backed by poppassd.Client.
func NewClientFactory(dialTimeout, ioTimeout time.Duration) SessionFactory {
	return func() PoppassdSession {
		return poppassd.NewClient(
			poppassd.WithDialTimeout(dialTimeout),
			poppassd.WithIOTimeout(ioTimeout),
		)
	}
}

type Outcome int

const (
	OutcomeNotApplicable Outcome = iota
	OutcomeChanged
	OutcomeRejectedOldPassword
	OutcomeRejectedByServer
	OutcomeTransportFailure
)

func (o Outcome) String() string {
	switch o {
	case OutcomeNotApplicable:
		return "not_applicable"
	case OutcomeChanged:
		return "changed"
	case OutcomeRejectedOldPassword:
		return "rejected_old_password"
	case OutcomeRejectedByServer:
		return "rejected_by_server"
	case OutcomeTransportFailure:
		return "transport_failure"
	default:
		return "unknown"
	}
}

// ChangeResult describes how one change attempt ended. Reason is the
// server's text for RejectedByServer and Cause the I/O error for
// TransportFailure.
type ChangeResult struct {
	Outcome Outcome
	Reason  string
	Cause   error
}

// Halt reports whether the attempt definitively resolved the change, in
// which case no other backend should try it.
func (r *ChangeResult) Halt() bool {
	switch r.Outcome {
	case OutcomeChanged, OutcomeRejectedOldPassword, OutcomeRejectedByServer:
		return true
	default:
		return false
	}
}

// ServerRejectedError carries the mail server's reason for refusing the
// new password. It matches common.ErrCannotChangePassword.
type ServerRejectedError struct {
	Reason string
}

func (e *ServerRejectedError) Error() string {
	if e.Reason == "" {
		return common.ErrCannotChangePassword.Error()
	}
	return fmt.Sprintf("%s: %s", common.ErrCannotChangePassword, e.Reason)
}

func (e *ServerRejectedError) Unwrap() error {
	return common.ErrCannotChangePassword
}

// PasswordService changes account passwords on the mail server through
// POPPASSD. Each attempt opens its own session, so the service is safe for
// concurrent use.
type PasswordService struct {
	settings   policy.SettingsSource
	policy     *policy.Policy
	newSession SessionFactory
	log        logging.Logger
}

func NewPasswordService(settings policy.SettingsSource, newSession SessionFactory, log logging.Logger) *PasswordService {
	if log == nil {
		log = logging.Nop{}
	}
	return &PasswordService{
		settings:   settings,
		policy:     policy.New(settings),
		newSession: newSession,
		log:        log.With("module", "poppassd"),
	}
}

// ChangePassword tries to change the account's password on its mail
// server. Requests that do not apply (claimed password differs from the
// known one, nothing to change, ineligible server) return NotApplicable
// without touching the network.
func (s *PasswordService) ChangePassword(ctx context.Context, account *models.Account, oldPassword, newPassword string) (*ChangeResult, error) {
	if account == nil {
		return nil, fmt.Errorf("%w: account is required", common.ErrorValidation)
	}
	if !poppassd.ValidArgument(newPassword) {
		return nil, fmt.Errorf("%w: new password contains control characters", common.ErrorValidation)
	}

	if account.Password == "" ||
		subtle.ConstantTimeCompare([]byte(oldPassword), []byte(account.Password)) != 1 ||
		oldPassword == newPassword {
		return &ChangeResult{Outcome: OutcomeNotApplicable}, nil
	}

	if !s.policy.IsEligible(account) {
		return &ChangeResult{Outcome: OutcomeNotApplicable}, nil
	}

	cfg := s.settings.Current()
	addr := net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port))
	log := s.log.With("account_id", account.ID, "addr", addr)

	session := s.newSession()
	defer func() {
		if err := session.Disconnect(); err != nil {
			log.Debug(ctx, "disconnect failed", "error", err)
		}
	}()

	if err := session.Connect(ctx, addr); err != nil {
		log.Error(ctx, "poppassd connect failed", "error", err)
		return &ChangeResult{Outcome: OutcomeTransportFailure, Cause: err}, nil
	}

	if err := session.Login(ctx, account.IncomingLogin, account.Password); err != nil {
		if errors.Is(err, poppassd.ErrRejected) {
			log.Info(ctx, "poppassd rejected current password")
			return &ChangeResult{Outcome: OutcomeRejectedOldPassword}, nil
		}
		log.Error(ctx, "poppassd login failed", "error", err)
		return &ChangeResult{Outcome: OutcomeTransportFailure, Cause: err}, nil
	}

	ok, msg, err := session.NewPass(ctx, newPassword)
	if err != nil {
		log.Error(ctx, "poppassd newpass failed", "error", err)
		return &ChangeResult{Outcome: OutcomeTransportFailure, Cause: err}, nil
	}
	if !ok {
		log.Info(ctx, "poppassd rejected new password", "reason", msg)
		return &ChangeResult{Outcome: OutcomeRejectedByServer, Reason: msg}, nil
	}

	log.Info(ctx, "password changed on mail server")
	return &ChangeResult{Outcome: OutcomeChanged}, nil
}

// HandlePasswordChange runs ChangePassword as a pipeline handler and turns
// the outcomes the end user must see into errors.
func (s *PasswordService) HandlePasswordChange(ctx context.Context, req *PasswordChangeRequest) (*HandlerResult, error) {
	res, err := s.ChangePassword(ctx, req.Account, req.CurrentPassword, req.NewPassword)
	if err != nil {
		return nil, err
	}

	hr := &HandlerResult{
		PasswordChanged: res.Outcome == OutcomeChanged,
		Halt:            res.Halt(),
	}

	switch res.Outcome {
	case OutcomeRejectedOldPassword:
		return hr, common.ErrOldPasswordIncorrect
	case OutcomeRejectedByServer:
		return hr, &ServerRejectedError{Reason: res.Reason}
	case OutcomeTransportFailure:
		return hr, fmt.Errorf("%w: %v", common.ErrCannotChangePassword, res.Cause)
	}
	return hr, nil
}
