// Package poppassd implements a client for the POPPASSD password-change
// protocol.
//
// A session is a short sequential exchange over one TCP connection:
//
//	S: 200 poppassd hello, who are you?
//	C: user alice
//	S: 200 your password please.
//	C: pass oldpw
//	S: 200 your new password please.
//	C: newpass newpw
//	S: 200 Password changed, thank-you.
//	C: quit
//	S: 200 Bye.
//
// Every reply is a single "NNN text" line. A 2xx code accepts the command;
// any other code rejects it and the text is the server's reason.
package poppassd

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/textproto"
	"strings"
	"time"
)

// DefaultPort is the registered POPPASSD port.
const DefaultPort = 106

const (
	DefaultDialTimeout = 5 * time.Second
	DefaultIOTimeout   = 10 * time.Second

	quitTimeout = time.Second
)

var (
	// ErrInvalidState is returned when an operation is called in a state
	// that does not allow it. No I/O happens in that case.
	ErrInvalidState = errors.New("poppassd: operation not valid in current state")

	// ErrRejected matches every well-formed non-2xx reply from the server.
	ErrRejected = errors.New("poppassd: rejected by server")

	// ErrInvalidArgument matches every *ArgumentError.
	ErrInvalidArgument = errors.New("poppassd: invalid argument")
)

// ArgumentError reports a command argument that cannot be sent on a
// single protocol line. The argument itself is never included.
type ArgumentError struct {
	Command string
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("poppassd: %s argument contains CR, LF or NUL", e.Command)
}

func (e *ArgumentError) Is(target error) bool {
	return target == ErrInvalidArgument
}

// ValidArgument reports whether s can be sent as a command argument.
func ValidArgument(s string) bool {
	return !strings.ContainsAny(s, "\r\n\x00")
}

func checkArg(cmd, arg string) error {
	if !ValidArgument(arg) {
		return &ArgumentError{Command: cmd}
	}
	return nil
}

// ReplyError is a well-formed reply whose code is not 2xx.
type ReplyError struct {
	Command string
	Code    int
	Message string
}

func (e *ReplyError) Error() string {
	return fmt.Sprintf("poppassd: %s rejected: %d %s", e.Command, e.Code, e.Message)
}

func (e *ReplyError) Is(target error) bool {
	return target == ErrRejected
}

// DialFunc opens the underlying connection. net.Dialer.DialContext fits.
type DialFunc func(ctx context.Context, network, addr string) (net.Conn, error)

// Option configures a Client.
type Option func(*Client)

// WithDialTimeout bounds the TCP connect.
func WithDialTimeout(d time.Duration) Option {
	return func(c *Client) { c.dialTimeout = d }
}

// WithIOTimeout bounds every read and write after the connect.
func WithIOTimeout(d time.Duration) Option {
	return func(c *Client) { c.ioTimeout = d }
}

// WithDialer replaces the default net.Dialer.
func WithDialer(fn DialFunc) Option {
	return func(c *Client) { c.dial = fn }
}

// Client drives a single POPPASSD session. It is not safe for concurrent
// use; each password change gets its own Client.
type Client struct {
	dialTimeout time.Duration
	ioTimeout   time.Duration
	dial        DialFunc

	conn     net.Conn
	text     *textproto.Conn
	state    State
	greeting string
}

// NewClient returns an Idle client with the default timeouts.
func NewClient(opts ...Option) *Client {
	c := &Client{
		dialTimeout: DefaultDialTimeout,
		ioTimeout:   DefaultIOTimeout,
		state:       StateIdle,
	}
	for _, o := range opts {
		o(c)
	}
	if c.dial == nil {
		d := &net.Dialer{}
		c.dial = d.DialContext
	}
	return c
}

func (c *Client) State() State { return c.state }

// Greeting returns the text of the server's greeting line once connected.
func (c *Client) Greeting() string { return c.greeting }

// Connect dials addr and validates the greeting. On any failure the
// connection is closed and the client stays Idle.
func (c *Client) Connect(ctx context.Context, addr string) error {
	if c.state != StateIdle {
		return fmt.Errorf("%w: connect in state %s", ErrInvalidState, c.state)
	}

	dialCtx, cancel := context.WithTimeout(ctx, c.dialTimeout)
	defer cancel()

	conn, err := c.dial(dialCtx, "tcp", addr)
	if err != nil {
		return fmt.Errorf("poppassd: dial %s: %w", addr, err)
	}
	c.conn = conn
	c.text = textproto.NewConn(conn)

	if err := c.setDeadline(ctx); err != nil {
		c.close()
		return fmt.Errorf("poppassd: greeting: %w", err)
	}
	_, msg, err := c.text.ReadCodeLine(2)
	if err != nil {
		c.close()
		return fmt.Errorf("poppassd: greeting: %w", err)
	}

	c.greeting = msg
	c.state = StateConnected
	return nil
}

// Login sends the login identifier and the current password as two
// exchanges. A rejection of either leaves the client Connected and
// returns a *ReplyError; transport failures move it to Error. Arguments
// containing CR, LF or NUL are refused with an *ArgumentError before
// anything is written.
func (c *Client) Login(ctx context.Context, user, password string) error {
	if c.state != StateConnected {
		return fmt.Errorf("%w: login in state %s", ErrInvalidState, c.state)
	}
	if err := checkArg("user", user); err != nil {
		return err
	}
	if err := checkArg("pass", password); err != nil {
		return err
	}
	if _, err := c.exchange(ctx, "user", user); err != nil {
		return err
	}
	if _, err := c.exchange(ctx, "pass", password); err != nil {
		return err
	}
	c.state = StateAuthenticated
	return nil
}

// NewPass submits the new password. ok reports whether the server accepted
// it and message carries the server's text either way. The client ends in
// Done unless the exchange itself failed.
func (c *Client) NewPass(ctx context.Context, password string) (ok bool, message string, err error) {
	if c.state != StateAuthenticated {
		return false, "", fmt.Errorf("%w: newpass in state %s", ErrInvalidState, c.state)
	}
	if err := checkArg("newpass", password); err != nil {
		return false, "", err
	}

	msg, err := c.exchange(ctx, "newpass", password)
	if err != nil {
		var re *ReplyError
		if errors.As(err, &re) {
			c.state = StateDone
			return false, re.Message, nil
		}
		return false, "", err
	}

	c.state = StateDone
	return true, msg, nil
}

// Disconnect ends the session. A healthy session is sent "quit" first;
// the socket is closed unconditionally. Calling it again is a no-op.
func (c *Client) Disconnect() error {
	if c.conn == nil {
		if c.state != StateIdle {
			c.state = StateClosed
		}
		return nil
	}

	if c.state != StateError {
		_ = c.conn.SetDeadline(time.Now().Add(quitTimeout))
		if err := c.text.PrintfLine("quit"); err == nil {
			_, _, _ = c.text.ReadCodeLine(2)
		}
	}

	err := c.text.Close()
	c.conn = nil
	c.text = nil
	c.state = StateClosed
	return err
}

// exchange writes one command and reads its reply line.
func (c *Client) exchange(ctx context.Context, cmd, arg string) (string, error) {
	if err := checkArg(cmd, arg); err != nil {
		return "", err
	}
	if err := c.setDeadline(ctx); err != nil {
		c.state = StateError
		return "", fmt.Errorf("poppassd: %s: %w", cmd, err)
	}
	if err := c.text.PrintfLine("%s %s", cmd, arg); err != nil {
		c.state = StateError
		return "", fmt.Errorf("poppassd: %s: %w", cmd, err)
	}

	_, msg, err := c.text.ReadCodeLine(2)
	if err != nil {
		var te *textproto.Error
		if errors.As(err, &te) {
			return "", &ReplyError{Command: cmd, Code: te.Code, Message: te.Msg}
		}
		c.state = StateError
		return "", fmt.Errorf("poppassd: %s: %w", cmd, err)
	}
	return msg, nil
}

// setDeadline bounds the next network step by the I/O timeout or the
// context deadline, whichever is sooner.
func (c *Client) setDeadline(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	deadline := time.Now().Add(c.ioTimeout)
	if d, ok := ctx.Deadline(); ok && d.Before(deadline) {
		deadline = d
	}
	return c.conn.SetDeadline(deadline)
}

func (c *Client) close() {
	if c.text != nil {
		_ = c.text.Close()
	}
	c.conn = nil
	c.text = nil
}
