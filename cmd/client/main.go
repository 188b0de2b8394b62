package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/dmitrijs2005/mailpassd/internal/client/cli"
	"github.com/dmitrijs2005/mailpassd/internal/client/config"
	"github.com/dmitrijs2005/mailpassd/internal/flagx"
)

func main() {

	cfg := config.LoadConfig()
	app, err := cli.NewApp(cfg)

	if err != nil {
		log.Fatalf("%v", err)
	}

	args := flagx.StripArgs(os.Args[1:], config.GlobalFlags)
	err = app.Run(context.Background(), args)
	_ = app.Close()

	switch {
	case err == nil:
	case errors.Is(err, cli.ErrUsage):
		os.Exit(2)
	default:
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}

}
