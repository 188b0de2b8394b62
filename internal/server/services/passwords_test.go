package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/dmitrijs2005/mailpassd/internal/common"
	"github.com/dmitrijs2005/mailpassd/internal/poppassd"
	"github.com/dmitrijs2005/mailpassd/internal/poppassd/poppassdtest"
	"github.com/dmitrijs2005/mailpassd/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticSettings struct {
	s *models.Settings
}

func (f staticSettings) Current() *models.Settings { return f.s }

type fakeSession struct {
	connectErr error
	loginErr   error
	newPassOK  bool
	newPassMsg string
	newPassErr error

	addr        string
	user, pass  string
	calls       []string
	disconnects int
}

func (f *fakeSession) Connect(ctx context.Context, addr string) error {
	f.calls = append(f.calls, "connect")
	f.addr = addr
	return f.connectErr
}

func (f *fakeSession) Login(ctx context.Context, user, password string) error {
	f.calls = append(f.calls, "login")
	f.user, f.pass = user, password
	return f.loginErr
}

func (f *fakeSession) NewPass(ctx context.Context, password string) (bool, string, error) {
	f.calls = append(f.calls, "newpass")
	return f.newPassOK, f.newPassMsg, f.newPassErr
}

func (f *fakeSession) Disconnect() error {
	f.disconnects++
	return nil
}

type sessionRecorder struct {
	template fakeSession
	created  []*fakeSession
}

func (r *sessionRecorder) factory() SessionFactory {
	return func() PoppassdSession {
		s := r.template
		r.created = append(r.created, &s)
		return &s
	}
}

func exampleSettings() *models.Settings {
	return &models.Settings{SupportedServers: []string{"mail.example.com"}, Host: "127.0.0.1", Port: 106}
}

func exampleAccount() *models.Account {
	return &models.Account{
		ID:            "acc-1",
		IncomingLogin: "alice",
		Password:      "oldpw",
		Server:        &models.Server{ID: "srv-1", IncomingServer: "mail.example.com"},
	}
}

func TestChangePassword_NotApplicable_NoIO(t *testing.T) {
	onOther := exampleAccount()
	onOther.Server.IncomingServer = "other.example.com"

	noServer := exampleAccount()
	noServer.Server = nil

	emptyKnown := exampleAccount()
	emptyKnown.Password = ""

	tests := []struct {
		name    string
		account *models.Account
		oldPw   string
		newPw   string
	}{
		{"claimed password mismatch", exampleAccount(), "wrong", "newpw"},
		{"old equals new", exampleAccount(), "oldpw", "oldpw"},
		{"empty known password", emptyKnown, "", "newpw"},
		{"server not supported", onOther, "oldpw", "newpw"},
		{"no server", noServer, "oldpw", "newpw"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := &sessionRecorder{}
			svc := NewPasswordService(staticSettings{exampleSettings()}, rec.factory(), nil)

			res, err := svc.ChangePassword(context.Background(), tt.account, tt.oldPw, tt.newPw)
			require.NoError(t, err)
			assert.Equal(t, OutcomeNotApplicable, res.Outcome)
			assert.False(t, res.Halt())
			assert.Empty(t, rec.created, "no session may be opened")
		})
	}
}

func TestChangePassword_Changed(t *testing.T) {
	rec := &sessionRecorder{template: fakeSession{newPassOK: true, newPassMsg: "ok"}}
	svc := NewPasswordService(staticSettings{exampleSettings()}, rec.factory(), nil)

	res, err := svc.ChangePassword(context.Background(), exampleAccount(), "oldpw", "newpw")
	require.NoError(t, err)
	assert.Equal(t, OutcomeChanged, res.Outcome)
	assert.True(t, res.Halt())

	require.Len(t, rec.created, 1)
	s := rec.created[0]
	assert.Equal(t, "127.0.0.1:106", s.addr)
	assert.Equal(t, "alice", s.user)
	assert.Equal(t, "oldpw", s.pass)
	assert.Equal(t, []string{"connect", "login", "newpass"}, s.calls)
	assert.Equal(t, 1, s.disconnects)
}

func TestChangePassword_FailureBranches(t *testing.T) {
	ioErr := errors.New("connection reset")

	tests := []struct {
		name       string
		session    fakeSession
		outcome    Outcome
		halt       bool
		reason     string
		wantCalls  []string
		wantCauses bool
	}{
		{
			name:       "connect fails",
			session:    fakeSession{connectErr: ioErr},
			outcome:    OutcomeTransportFailure,
			wantCalls:  []string{"connect"},
			wantCauses: true,
		},
		{
			name:      "login rejected",
			session:   fakeSession{loginErr: &poppassd.ReplyError{Command: "pass", Code: 500, Message: "bad"}},
			outcome:   OutcomeRejectedOldPassword,
			halt:      true,
			wantCalls: []string{"connect", "login"},
		},
		{
			name:       "login transport error",
			session:    fakeSession{loginErr: ioErr},
			outcome:    OutcomeTransportFailure,
			wantCalls:  []string{"connect", "login"},
			wantCauses: true,
		},
		{
			name:      "newpass rejected",
			session:   fakeSession{newPassOK: false, newPassMsg: "Password too short."},
			outcome:   OutcomeRejectedByServer,
			halt:      true,
			reason:    "Password too short.",
			wantCalls: []string{"connect", "login", "newpass"},
		},
		{
			name:       "newpass transport error",
			session:    fakeSession{newPassErr: ioErr},
			outcome:    OutcomeTransportFailure,
			wantCalls:  []string{"connect", "login", "newpass"},
			wantCauses: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := &sessionRecorder{template: tt.session}
			svc := NewPasswordService(staticSettings{exampleSettings()}, rec.factory(), nil)

			res, err := svc.ChangePassword(context.Background(), exampleAccount(), "oldpw", "newpw")
			require.NoError(t, err)
			assert.Equal(t, tt.outcome, res.Outcome)
			assert.Equal(t, tt.halt, res.Halt())
			assert.Equal(t, tt.reason, res.Reason)
			if tt.wantCauses {
				assert.ErrorIs(t, res.Cause, ioErr)
			}

			require.Len(t, rec.created, 1)
			assert.Equal(t, tt.wantCalls, rec.created[0].calls)
			assert.Equal(t, 1, rec.created[0].disconnects, "disconnect runs on every path")
		})
	}
}

func TestChangePassword_FreshSessionPerRequest(t *testing.T) {
	rec := &sessionRecorder{template: fakeSession{newPassOK: true}}
	svc := NewPasswordService(staticSettings{exampleSettings()}, rec.factory(), nil)

	for i := 0; i < 3; i++ {
		_, err := svc.ChangePassword(context.Background(), exampleAccount(), "oldpw", "newpw")
		require.NoError(t, err)
	}
	assert.Len(t, rec.created, 3)
}

func TestChangePassword_WildcardMakesEveryAccountEligible(t *testing.T) {
	rec := &sessionRecorder{template: fakeSession{newPassOK: true}}
	cfg := exampleSettings()
	cfg.SupportedServers = []string{"*"}
	svc := NewPasswordService(staticSettings{cfg}, rec.factory(), nil)

	a := exampleAccount()
	a.Server = nil
	res, err := svc.ChangePassword(context.Background(), a, "oldpw", "newpw")
	require.NoError(t, err)
	assert.Equal(t, OutcomeChanged, res.Outcome)
}

func TestChangePassword_NilAccount(t *testing.T) {
	svc := NewPasswordService(staticSettings{exampleSettings()}, (&sessionRecorder{}).factory(), nil)
	_, err := svc.ChangePassword(context.Background(), nil, "a", "b")
	assert.ErrorIs(t, err, common.ErrorValidation)
}

func TestChangePassword_ControlCharactersInNewPassword(t *testing.T) {
	rec := &sessionRecorder{template: fakeSession{newPassOK: true}}
	svc := NewPasswordService(staticSettings{exampleSettings()}, rec.factory(), nil)

	res, err := svc.ChangePassword(context.Background(), exampleAccount(), "oldpw", "new\r\nnewpass x")
	assert.ErrorIs(t, err, common.ErrorValidation)
	assert.Nil(t, res)
	assert.Empty(t, rec.created)
}

func TestHandlePasswordChange_Errors(t *testing.T) {
	tests := []struct {
		name    string
		session fakeSession
		oldPw   string
		changed bool
		halt    bool
		check   func(t *testing.T, err error)
	}{
		{
			name:    "changed",
			session: fakeSession{newPassOK: true},
			oldPw:   "oldpw",
			changed: true,
			halt:    true,
			check:   func(t *testing.T, err error) { assert.NoError(t, err) },
		},
		{
			name:  "not applicable",
			oldPw: "wrong",
			check: func(t *testing.T, err error) { assert.NoError(t, err) },
		},
		{
			name:    "old password incorrect",
			session: fakeSession{loginErr: &poppassd.ReplyError{Command: "pass", Code: 500}},
			oldPw:   "oldpw",
			halt:    true,
			check: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, common.ErrOldPasswordIncorrect)
			},
		},
		{
			name:    "server rejected",
			session: fakeSession{newPassMsg: "Too weak."},
			oldPw:   "oldpw",
			halt:    true,
			check: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, common.ErrCannotChangePassword)
				var sre *ServerRejectedError
				require.ErrorAs(t, err, &sre)
				assert.Equal(t, "Too weak.", sre.Reason)
				assert.Contains(t, err.Error(), "Too weak.")
			},
		},
		{
			name:    "transport failure",
			session: fakeSession{connectErr: errors.New("refused")},
			oldPw:   "oldpw",
			check: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, common.ErrCannotChangePassword)
				var sre *ServerRejectedError
				assert.False(t, errors.As(err, &sre))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := &sessionRecorder{template: tt.session}
			svc := NewPasswordService(staticSettings{exampleSettings()}, rec.factory(), nil)

			hr, err := svc.HandlePasswordChange(context.Background(), &PasswordChangeRequest{
				Account:         exampleAccount(),
				CurrentPassword: tt.oldPw,
				NewPassword:     "newpw",
			})
			tt.check(t, err)
			require.NotNil(t, hr)
			assert.Equal(t, tt.changed, hr.PasswordChanged)
			assert.Equal(t, tt.halt, hr.Halt)
		})
	}
}

func TestOutcome_String(t *testing.T) {
	assert.Equal(t, "changed", OutcomeChanged.String())
	assert.Equal(t, "rejected_by_server", OutcomeRejectedByServer.String())
	assert.Equal(t, "unknown", Outcome(99).String())
}

func liveSettings(srv *poppassdtest.Server, servers ...string) *models.Settings {
	return &models.Settings{SupportedServers: servers, Host: srv.Host(), Port: srv.Port()}
}

func TestChangePassword_AgainstServer(t *testing.T) {
	srv := poppassdtest.NewServer(t, map[string]string{"alice": "oldpw"})
	svc := NewPasswordService(staticSettings{liveSettings(srv, "mail.example.com")},
		NewClientFactory(time.Second, time.Second), nil)

	res, err := svc.ChangePassword(context.Background(), exampleAccount(), "oldpw", "newpw")
	require.NoError(t, err)
	assert.Equal(t, OutcomeChanged, res.Outcome)
	assert.True(t, res.Halt())
	assert.Equal(t, "newpw", srv.Password("alice"))
	assert.Equal(t, []string{"user", "pass", "newpass", "quit"}, srv.Commands())
	require.Eventually(t, func() bool { return srv.Open() == 0 }, time.Second, 10*time.Millisecond)
}

func TestChangePassword_AgainstServer_LoginRejectedClosesConnection(t *testing.T) {
	// the mail server knows a different password than the platform
	srv := poppassdtest.NewServer(t, map[string]string{"alice": "serverpw"})
	svc := NewPasswordService(staticSettings{liveSettings(srv, "*")},
		NewClientFactory(time.Second, time.Second), nil)

	res, err := svc.ChangePassword(context.Background(), exampleAccount(), "oldpw", "newpw")
	require.NoError(t, err)
	assert.Equal(t, OutcomeRejectedOldPassword, res.Outcome)
	assert.Equal(t, "serverpw", srv.Password("alice"))
	require.Eventually(t, func() bool { return srv.Open() == 0 }, time.Second, 10*time.Millisecond)
}

func TestChangePassword_AgainstServer_RejectedByServer(t *testing.T) {
	srv := poppassdtest.NewServer(t, map[string]string{"alice": "oldpw"})
	srv.RejectNewPass = "Password must contain a digit."
	svc := NewPasswordService(staticSettings{liveSettings(srv, "*")},
		NewClientFactory(time.Second, time.Second), nil)

	res, err := svc.ChangePassword(context.Background(), exampleAccount(), "oldpw", "newpw")
	require.NoError(t, err)
	assert.Equal(t, OutcomeRejectedByServer, res.Outcome)
	assert.Equal(t, "Password must contain a digit.", res.Reason)
	require.Eventually(t, func() bool { return srv.Open() == 0 }, time.Second, 10*time.Millisecond)
}

func TestChangePassword_AgainstServer_HangUp(t *testing.T) {
	srv := poppassdtest.NewServer(t, map[string]string{"alice": "oldpw"})
	srv.HangUpOn = "newpass"
	svc := NewPasswordService(staticSettings{liveSettings(srv, "*")},
		NewClientFactory(time.Second, time.Second), nil)

	res, err := svc.ChangePassword(context.Background(), exampleAccount(), "oldpw", "newpw")
	require.NoError(t, err)
	assert.Equal(t, OutcomeTransportFailure, res.Outcome)
	assert.False(t, res.Halt())
	assert.Error(t, res.Cause)
}

func TestChangePassword_IneligibleDoesNotConnect(t *testing.T) {
	srv := poppassdtest.NewServer(t, map[string]string{"alice": "oldpw"})
	svc := NewPasswordService(staticSettings{liveSettings(srv, "other.example.com")},
		NewClientFactory(time.Second, time.Second), nil)

	res, err := svc.ChangePassword(context.Background(), exampleAccount(), "oldpw", "newpw")
	require.NoError(t, err)
	assert.Equal(t, OutcomeNotApplicable, res.Outcome)
	assert.Zero(t, srv.Accepted())
}
