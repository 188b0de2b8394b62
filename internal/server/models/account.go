package models

import "time"

// Server is the mail server record an account belongs to. IncomingServer
// is the identifier matched against the supported-servers setting.
type Server struct {
	ID             string
	Name           string
	IncomingServer string
}

// Account is a mailbox known to the platform. Password is the currently
// known plaintext password; it is encrypted at rest by the repositories.
type Account struct {
	ID                string
	Email             string
	IncomingLogin     string
	Password          string
	Server            *Server
	PasswordChangedAt *time.Time
}

// ServerIdentifier returns the incoming server of the account's server,
// or "" when the account has none.
func (a *Account) ServerIdentifier() string {
	if a == nil || a.Server == nil {
		return ""
	}
	return a.Server.IncomingServer
}
