package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/dmitrijs2005/mailpassd/internal/common"
	"github.com/dmitrijs2005/mailpassd/internal/flagx"
)

var (
	ErrPasswordMismatch = errors.New("passwords do not match")
	ErrAborted          = errors.New("aborted")
)

func (a *App) newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(a.out)
	return fs
}

func (a *App) ping(ctx context.Context) error {
	if err := a.client.Ping(ctx); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "OK")
	return nil
}

func (a *App) account(ctx context.Context, args []string) error {
	fs := a.newFlagSet("account")
	id := fs.String("id", "", "account id (admin only)")
	if err := fs.Parse(args); err != nil {
		return ErrUsage
	}

	acc, err := a.client.GetAccount(ctx, *id)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "ID:              %s\n", acc.GetId())
	fmt.Fprintf(a.out, "Email:           %s\n", acc.GetEmail())
	fmt.Fprintf(a.out, "Login:           %s\n", acc.GetIncomingLogin())
	if acc.GetIncomingServer() != "" {
		fmt.Fprintf(a.out, "Server:          %s (%s)\n", acc.GetServerName(), acc.GetIncomingServer())
	}
	if ts := acc.GetPasswordChangedAt(); ts != nil {
		fmt.Fprintf(a.out, "Password changed: %s\n", ts.AsTime().Format("2006-01-02 15:04:05"))
	}
	fmt.Fprintf(a.out, "Mail server change: %s\n", yesNo(acc.GetAllowChangePasswordOnMailServer()))
	return nil
}

func yesNo(b bool) string {
	if b {
		return "allowed"
	}
	return "not available"
}

func (a *App) passwd(ctx context.Context, args []string) error {
	fs := a.newFlagSet("passwd")
	id := fs.String("id", "", "account id (admin only)")
	if err := fs.Parse(args); err != nil {
		return ErrUsage
	}

	if *id != "" {
		answer, err := GetSimpleText(a.reader, fmt.Sprintf("Change the password of account %s? [y/N]", *id), a.out)
		if err != nil {
			return err
		}
		if answer != "y" && answer != "yes" {
			return ErrAborted
		}
	}

	current, err := GetPassword("Current password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(current)

	next, err := GetPassword("New password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(next)

	repeat, err := GetPassword("Repeat new password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(repeat)

	if string(next) != string(repeat) {
		return ErrPasswordMismatch
	}

	changed, err := a.client.ChangePassword(ctx, *id, string(current), string(next))
	if err != nil {
		return err
	}

	if changed {
		fmt.Fprintln(a.out, "Password changed on the mail server.")
	} else {
		fmt.Fprintln(a.out, "Password changed.")
	}
	return nil
}

func (a *App) settings(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return ErrUsage
	}
	switch args[0] {
	case "get":
		return a.settingsGet(ctx)
	case "set":
		return a.settingsSet(ctx, args[1:])
	default:
		return ErrUsage
	}
}

func (a *App) settingsGet(ctx context.Context) error {
	s, err := a.client.GetSettings(ctx)
	if err != nil {
		return err
	}
	printSettings(a.out, s.GetSupportedServers(), s.GetHost(), int(s.GetPort()))
	return nil
}

// settingsSet updates only the fields given; the rest are kept from the
// current settings.
func (a *App) settingsSet(ctx context.Context, args []string) error {
	fs := a.newFlagSet("settings set")
	servers := fs.String("servers", "", "comma-separated supported servers, * for all")
	host := fs.String("host", "", "POPPASSD host")
	port := fs.String("port", "", "POPPASSD port")
	if err := fs.Parse(args); err != nil {
		return ErrUsage
	}

	cur, err := a.client.GetSettings(ctx)
	if err != nil {
		return err
	}

	nextServers, nextHost, nextPort := cur.GetSupportedServers(), cur.GetHost(), int(cur.GetPort())
	if *servers != "" {
		nextServers = common.JoinServers(flagx.SplitList(*servers))
	}
	if *host != "" {
		nextHost = *host
	}
	if *port != "" {
		p, err := common.ParsePort(*port)
		if err != nil {
			return err
		}
		nextPort = p
	}

	if err := a.client.UpdateSettings(ctx, nextServers, nextHost, nextPort); err != nil {
		return err
	}

	fmt.Fprintln(a.out, "Settings updated.")
	printSettings(a.out, nextServers, nextHost, nextPort)
	return nil
}

func printSettings(w io.Writer, servers, host string, port int) {
	fmt.Fprintf(w, "Host: %s\n", host)
	fmt.Fprintf(w, "Port: %d\n", port)
	fmt.Fprintln(w, "Supported servers:")
	for _, s := range common.SplitServers(servers) {
		fmt.Fprintf(w, "  %s\n", s)
	}
}
