package common

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var lineBreaks = regexp.MustCompile(`\r\n|[\r\n]`)

// SplitServers turns the newline-separated supported-servers value into a
// list. CRLF, CR and LF all separate entries; blank lines are dropped.
func SplitServers(s string) []string {
	var out []string
	for _, line := range lineBreaks.Split(s, -1) {
		if line = strings.TrimSpace(line); line != "" {
			out = append(out, line)
		}
	}
	return out
}

// JoinServers is the inverse of SplitServers.
func JoinServers(servers []string) string {
	return strings.Join(servers, "\n")
}

// ParsePort parses a port typed by an operator, rejecting anything that is
// not a number in 1..65535.
func ParsePort(s string) (int, error) {
	port, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w: port %q is not a number", ErrorValidation, s)
	}
	if port < 1 || port > 65535 {
		return 0, fmt.Errorf("%w: port %d out of range", ErrorValidation, port)
	}
	return port, nil
}
