// Package cli implements the mailpass command line: changing the caller's
// mail password and administering the POPPASSD settings.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/mailpassd/internal/client/client"
	"github.com/dmitrijs2005/mailpassd/internal/client/config"
)

var ErrUsage = errors.New("usage error")

type App struct {
	config *config.Config
	client client.Client
	reader *bufio.Reader
	out    io.Writer
}

func NewApp(c *config.Config) (*App, error) {
	apiClient, err := client.NewMailPassClient(c.ServerEndpointAddr, c.AccessToken)
	if err != nil {
		return nil, err
	}
	return newApp(c, apiClient, os.Stdin, os.Stdout), nil
}

func newApp(c *config.Config, cl client.Client, in io.Reader, out io.Writer) *App {
	return &App{config: c, client: cl, reader: bufio.NewReader(in), out: out}
}

func (a *App) Close() error {
	return a.client.Close()
}

const usage = `Usage: mailpass [-a addr] [-t token] [-w seconds] <command>

Commands:
  ping                                    check the server
  account [-id ID]                        show the account
  passwd [-id ID]                         change the mail password
  settings get                            show POPPASSD settings (admin)
  settings set -servers LIST -host HOST -port PORT
                                          update POPPASSD settings (admin)`

// Run executes one command. args are the command word and its arguments.
func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		fmt.Fprintln(a.out, usage)
		return ErrUsage
	}

	ctx, cancel := context.WithTimeout(ctx, a.config.RequestTimeout)
	defer cancel()

	cmd, rest := args[0], args[1:]
	switch cmd {
	case "help", "-h", "--help":
		fmt.Fprintln(a.out, usage)
		return nil
	case "ping":
		return a.ping(ctx)
	case "account":
		return a.account(ctx, rest)
	case "passwd":
		return a.passwd(ctx, rest)
	case "settings":
		return a.settings(ctx, rest)
	default:
		fmt.Fprintln(a.out, "Unknown command:", cmd)
		fmt.Fprintln(a.out, usage)
		return ErrUsage
	}
}
