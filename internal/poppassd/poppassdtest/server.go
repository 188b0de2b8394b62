// Package poppassdtest provides an in-process POPPASSD server for tests.
package poppassdtest

import (
	"bufio"
	"fmt"
	"net"
	"strings"
	"sync"
	"testing"
)

// Server is a scripted POPPASSD server listening on 127.0.0.1.
// Configure the exported fields before the first client connects.
type Server struct {
	// Users maps login identifiers to their current passwords.
	Users map[string]string

	// Greeting is the first line sent on every connection.
	Greeting string

	// RejectNewPass, when set, is the reason every newpass is refused with.
	RejectNewPass string

	// HangUpOn names a command after which the server drops the connection
	// without replying.
	HangUpOn string

	// GarbleOn names a command answered with a malformed reply line.
	GarbleOn string

	ln net.Listener
	wg sync.WaitGroup

	mu       sync.Mutex
	conns    map[net.Conn]struct{}
	commands []string
	accepted int
	open     int
}

// NewServer starts a server and registers its shutdown with t.Cleanup.
func NewServer(t testing.TB, users map[string]string) *Server {
	t.Helper()

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}

	s := &Server{
		Users:    users,
		Greeting: "200 poppassd v1.8 hello, who are you?",
		ln:       ln,
		conns:    make(map[net.Conn]struct{}),
	}

	s.wg.Add(1)
	go s.serve()

	t.Cleanup(s.Close)
	return s
}

func (s *Server) Addr() string { return s.ln.Addr().String() }

// Host and Port split Addr for settings-driven callers.
func (s *Server) Host() string { return s.ln.Addr().(*net.TCPAddr).IP.String() }
func (s *Server) Port() int    { return s.ln.Addr().(*net.TCPAddr).Port }

// Commands returns the command keywords received so far, in order,
// without their arguments.
func (s *Server) Commands() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.commands))
	copy(out, s.commands)
	return out
}

// Accepted is the number of connections accepted so far.
func (s *Server) Accepted() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.accepted
}

// Open is the number of connections the client has not closed yet.
func (s *Server) Open() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.open
}

// Password returns the stored password of user.
func (s *Server) Password(user string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.Users[user]
}

// Close stops accepting, drops connections still open and waits for
// their handlers to return.
func (s *Server) Close() {
	_ = s.ln.Close()
	s.mu.Lock()
	for c := range s.conns {
		_ = c.Close()
	}
	s.mu.Unlock()
	s.wg.Wait()
}

func (s *Server) serve() {
	defer s.wg.Done()
	for {
		conn, err := s.ln.Accept()
		if err != nil {
			return
		}
		s.mu.Lock()
		s.accepted++
		s.open++
		s.conns[conn] = struct{}{}
		s.mu.Unlock()

		s.wg.Add(1)
		go func() {
			defer s.wg.Done()
			s.handle(conn)
		}()
	}
}

func (s *Server) handle(conn net.Conn) {
	r := bufio.NewReader(conn)
	hungUp := false

	defer func() {
		if !hungUp {
			// wait for the client to close its side
			_, _ = r.ReadString(0)
		}
		_ = conn.Close()
		s.mu.Lock()
		s.open--
		delete(s.conns, conn)
		s.mu.Unlock()
	}()

	reply := func(format string, args ...any) {
		fmt.Fprintf(conn, format+"\r\n", args...)
	}

	reply("%s", s.Greeting)

	var user string
	authenticated := false

	for {
		line, err := r.ReadString('\n')
		if err != nil {
			return
		}
		line = strings.TrimRight(line, "\r\n")
		cmd, arg, _ := strings.Cut(line, " ")
		cmd = strings.ToLower(cmd)

		s.mu.Lock()
		s.commands = append(s.commands, cmd)
		s.mu.Unlock()

		if cmd == s.HangUpOn {
			hungUp = true
			return
		}
		if cmd == s.GarbleOn {
			reply("what?")
			continue
		}

		switch cmd {
		case "user":
			user = arg
			reply("200 your password please.")
		case "pass":
			s.mu.Lock()
			current, ok := s.Users[user]
			s.mu.Unlock()
			if !ok || current != arg {
				reply("500 Old password is incorrect.")
				continue
			}
			authenticated = true
			reply("200 your new password please.")
		case "newpass":
			if !authenticated {
				reply("500 Not authenticated.")
				continue
			}
			if s.RejectNewPass != "" {
				reply("500 %s", s.RejectNewPass)
				continue
			}
			s.mu.Lock()
			s.Users[user] = arg
			s.mu.Unlock()
			reply("200 Password changed, thank-you.")
		case "quit":
			reply("200 Bye.")
			return
		default:
			reply("500 Unknown command.")
		}
	}
}
