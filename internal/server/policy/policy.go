// Package policy decides which accounts may have their password changed
// on the mail server through POPPASSD.
package policy

import (
	"slices"

	"github.com/dmitrijs2005/mailpassd/internal/server/models"
)

// SettingsSource yields the settings snapshot current at call time.
type SettingsSource interface {
	Current() *models.Settings
}

type Policy struct {
	settings SettingsSource
}

func New(s SettingsSource) *Policy {
	return &Policy{settings: s}
}

// IsEligible reports whether the account's incoming server is listed in the
// supported servers, or the list holds the wildcard. Accounts without a
// server are only eligible through the wildcard.
func (p *Policy) IsEligible(account *models.Account) bool {
	supported := p.settings.Current().SupportedServers

	if slices.Contains(supported, models.WildcardServer) {
		return true
	}

	server := account.ServerIdentifier()
	if server == "" {
		return false
	}
	return slices.Contains(supported, server)
}
