package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/mailpassd/internal/common"
)

// WildcardServer in SupportedServers makes every account eligible.
const WildcardServer = "*"

// Settings is the admin-editable POPPASSD configuration.
type Settings struct {
	SupportedServers []string
	Host             string
	Port             int
	UpdatedAt        time.Time
}

// Clone returns a deep copy, so a published snapshot is never shared
// with a caller that might modify it.
func (s *Settings) Clone() *Settings {
	c := *s
	c.SupportedServers = append([]string(nil), s.SupportedServers...)
	return &c
}

// Validate checks the fields the update path accepts.
func (s *Settings) Validate() error {
	if strings.TrimSpace(s.Host) == "" {
		return fmt.Errorf("%w: host is required", common.ErrorValidation)
	}
	if s.Port < 1 || s.Port > 65535 {
		return fmt.Errorf("%w: port %d out of range", common.ErrorValidation, s.Port)
	}
	return nil
}
