package poppassd_test

import (
	"context"
	"errors"
	"net"
	"testing"
	"time"

	"github.com/dmitrijs2005/mailpassd/internal/poppassd"
	"github.com/dmitrijs2005/mailpassd/internal/poppassd/poppassdtest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newClient() *poppassd.Client {
	return poppassd.NewClient(
		poppassd.WithDialTimeout(time.Second),
		poppassd.WithIOTimeout(time.Second),
	)
}

func TestClient_FullSession(t *testing.T) {
	srv := poppassdtest.NewServer(t, map[string]string{"alice": "oldpw"})
	ctx := context.Background()
	c := newClient()

	require.NoError(t, c.Connect(ctx, srv.Addr()))
	assert.Equal(t, poppassd.StateConnected, c.State())
	assert.Contains(t, c.Greeting(), "poppassd")

	require.NoError(t, c.Login(ctx, "alice", "oldpw"))
	assert.Equal(t, poppassd.StateAuthenticated, c.State())

	ok, msg, err := c.NewPass(ctx, "newpw")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "Password changed, thank-you.", msg)
	assert.Equal(t, poppassd.StateDone, c.State())

	require.NoError(t, c.Disconnect())
	assert.Equal(t, poppassd.StateClosed, c.State())

	assert.Equal(t, "newpw", srv.Password("alice"))
	assert.Equal(t, []string{"user", "pass", "newpass", "quit"}, srv.Commands())
	require.Eventually(t, func() bool { return srv.Open() == 0 }, time.Second, 10*time.Millisecond)
}

func TestClient_LoginRejected_StaysConnected(t *testing.T) {
	srv := poppassdtest.NewServer(t, map[string]string{"alice": "oldpw"})
	ctx := context.Background()
	c := newClient()

	require.NoError(t, c.Connect(ctx, srv.Addr()))

	err := c.Login(ctx, "alice", "wrong")
	require.Error(t, err)
	assert.ErrorIs(t, err, poppassd.ErrRejected)

	var re *poppassd.ReplyError
	require.ErrorAs(t, err, &re)
	assert.Equal(t, "pass", re.Command)
	assert.Equal(t, 500, re.Code)
	assert.Equal(t, "Old password is incorrect.", re.Message)
	assert.NotContains(t, err.Error(), "wrong")

	assert.Equal(t, poppassd.StateConnected, c.State())
	require.NoError(t, c.Disconnect())
}

func TestClient_NewPassRejected_CarriesReason(t *testing.T) {
	srv := poppassdtest.NewServer(t, map[string]string{"alice": "oldpw"})
	srv.RejectNewPass = "Password too short."
	ctx := context.Background()
	c := newClient()

	require.NoError(t, c.Connect(ctx, srv.Addr()))
	require.NoError(t, c.Login(ctx, "alice", "oldpw"))

	ok, msg, err := c.NewPass(ctx, "x")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, "Password too short.", msg)
	assert.Equal(t, poppassd.StateDone, c.State())
	assert.Equal(t, "oldpw", srv.Password("alice"))

	require.NoError(t, c.Disconnect())
}

func TestClient_ConnectRefused_StaysIdle(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := ln.Addr().String()
	require.NoError(t, ln.Close())

	c := newClient()
	err = c.Connect(context.Background(), addr)
	require.Error(t, err)
	assert.NotErrorIs(t, err, poppassd.ErrRejected)
	assert.Equal(t, poppassd.StateIdle, c.State())

	assert.NoError(t, c.Disconnect())
	assert.NoError(t, c.Disconnect())
}

func TestClient_BadGreeting(t *testing.T) {
	srv := poppassdtest.NewServer(t, nil)
	srv.Greeting = "421 service not available"

	c := newClient()
	err := c.Connect(context.Background(), srv.Addr())
	require.Error(t, err)
	assert.Equal(t, poppassd.StateIdle, c.State())
	require.Eventually(t, func() bool { return srv.Open() == 0 }, time.Second, 10*time.Millisecond)
}

func TestClient_HangUp_IsTransportError(t *testing.T) {
	srv := poppassdtest.NewServer(t, map[string]string{"alice": "oldpw"})
	srv.HangUpOn = "pass"
	ctx := context.Background()
	c := newClient()

	require.NoError(t, c.Connect(ctx, srv.Addr()))
	err := c.Login(ctx, "alice", "oldpw")
	require.Error(t, err)
	assert.NotErrorIs(t, err, poppassd.ErrRejected)
	assert.Equal(t, poppassd.StateError, c.State())

	require.NoError(t, c.Disconnect())
	assert.Equal(t, poppassd.StateClosed, c.State())
	assert.Equal(t, []string{"user", "pass"}, srv.Commands(), "no quit is sent on a broken session")
}

func TestClient_MalformedReply_IsTransportError(t *testing.T) {
	srv := poppassdtest.NewServer(t, map[string]string{"alice": "oldpw"})
	srv.GarbleOn = "newpass"
	ctx := context.Background()
	c := newClient()

	require.NoError(t, c.Connect(ctx, srv.Addr()))
	require.NoError(t, c.Login(ctx, "alice", "oldpw"))

	ok, _, err := c.NewPass(ctx, "newpw")
	require.Error(t, err)
	assert.False(t, ok)
	assert.NotErrorIs(t, err, poppassd.ErrRejected)
	assert.Equal(t, poppassd.StateError, c.State())
	require.NoError(t, c.Disconnect())
}

func TestClient_Timeout(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer ln.Close()

	// accepts but never greets
	go func() {
		conn, err := ln.Accept()
		if err != nil {
			return
		}
		defer conn.Close()
		buf := make([]byte, 1)
		_, _ = conn.Read(buf)
	}()

	c := poppassd.NewClient(poppassd.WithIOTimeout(50 * time.Millisecond))
	start := time.Now()
	err = c.Connect(context.Background(), ln.Addr().String())
	require.Error(t, err)
	assert.Less(t, time.Since(start), 2*time.Second)

	var ne net.Error
	if errors.As(err, &ne) {
		assert.True(t, ne.Timeout())
	}
	assert.Equal(t, poppassd.StateIdle, c.State())
}

func TestClient_InvalidState(t *testing.T) {
	ctx := context.Background()
	c := newClient()

	err := c.Login(ctx, "alice", "pw")
	assert.ErrorIs(t, err, poppassd.ErrInvalidState)

	_, _, err = c.NewPass(ctx, "pw")
	assert.ErrorIs(t, err, poppassd.ErrInvalidState)

	srv := poppassdtest.NewServer(t, map[string]string{"alice": "pw"})
	require.NoError(t, c.Connect(ctx, srv.Addr()))

	_, _, err = c.NewPass(ctx, "pw")
	assert.ErrorIs(t, err, poppassd.ErrInvalidState)
	assert.ErrorIs(t, c.Connect(ctx, srv.Addr()), poppassd.ErrInvalidState)

	require.NoError(t, c.Disconnect())
	assert.ErrorIs(t, c.Connect(ctx, srv.Addr()), poppassd.ErrInvalidState, "closed clients are not reused")
	assert.Equal(t, []string{"quit"}, srv.Commands())
}

func TestClient_NewPass_LineBreakRefusedBeforeWrite(t *testing.T) {
	srv := poppassdtest.NewServer(t, map[string]string{"alice": "oldpw"})
	ctx := context.Background()
	c := newClient()

	require.NoError(t, c.Connect(ctx, srv.Addr()))
	require.NoError(t, c.Login(ctx, "alice", "oldpw"))

	ok, _, err := c.NewPass(ctx, "pw\r\nnewpass injected")
	require.Error(t, err)
	assert.False(t, ok)
	assert.ErrorIs(t, err, poppassd.ErrInvalidArgument)
	assert.NotErrorIs(t, err, poppassd.ErrRejected)
	assert.NotContains(t, err.Error(), "injected")
	assert.Equal(t, poppassd.StateAuthenticated, c.State())

	require.NoError(t, c.Disconnect())
	assert.Equal(t, "oldpw", srv.Password("alice"))
	assert.Equal(t, []string{"user", "pass", "quit"}, srv.Commands())
}

func TestClient_Login_ControlCharactersRefused(t *testing.T) {
	tests := []struct {
		name     string
		user     string
		password string
		command  string
	}{
		{name: "lf in user", user: "alice\nquit", password: "oldpw", command: "user"},
		{name: "crlf in password", user: "alice", password: "oldpw\r\nnewpass x", command: "pass"},
		{name: "nul in password", user: "alice", password: "old\x00pw", command: "pass"},
		{name: "bare cr in password", user: "alice", password: "old\rpw", command: "pass"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := poppassdtest.NewServer(t, map[string]string{"alice": "oldpw"})
			ctx := context.Background()
			c := newClient()
			require.NoError(t, c.Connect(ctx, srv.Addr()))

			err := c.Login(ctx, tt.user, tt.password)
			var ae *poppassd.ArgumentError
			require.ErrorAs(t, err, &ae)
			assert.Equal(t, tt.command, ae.Command)
			assert.Equal(t, poppassd.StateConnected, c.State())

			require.NoError(t, c.Disconnect())
			assert.Equal(t, []string{"quit"}, srv.Commands(), "nothing but quit reaches the server")
		})
	}
}

func TestValidArgument(t *testing.T) {
	assert.True(t, poppassd.ValidArgument("pa ss wörd!"))
	assert.True(t, poppassd.ValidArgument(""))
	assert.False(t, poppassd.ValidArgument("a\rb"))
	assert.False(t, poppassd.ValidArgument("a\nb"))
	assert.False(t, poppassd.ValidArgument("a\x00b"))
}

func TestClient_DialerOption(t *testing.T) {
	dialErr := errors.New("no route")
	c := poppassd.NewClient(poppassd.WithDialer(func(ctx context.Context, network, addr string) (net.Conn, error) {
		return nil, dialErr
	}))

	err := c.Connect(context.Background(), "mail.example.com:106")
	assert.ErrorIs(t, err, dialErr)
	assert.Equal(t, poppassd.StateIdle, c.State())
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "idle", poppassd.StateIdle.String())
	assert.Equal(t, "authenticated", poppassd.StateAuthenticated.String())
	assert.Equal(t, "closed", poppassd.StateClosed.String())
	assert.Equal(t, "unknown", poppassd.State(42).String())
}
