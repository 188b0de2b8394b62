package config

import (
	"flag"
	"os"
	"strings"
	"time"

	"github.com/dmitrijs2005/mailpassd/internal/flagx"
)

// parseFlags populates server Config fields from command-line flags.
//
// Supported flags:
//
//	-a string   gRPC bind address (e.g., ":50051")
//	-d string   PostgreSQL DSN (empty for in-memory storage)
//	-s string   JWT HMAC secret key
//	-l string   log level (debug, info, warn, error)
//	-H string   POPPASSD host
//	-P int      POPPASSD port
//	-S string   comma-separated supported incoming servers ("*" for all)
//	-T int      POPPASSD connect timeout, seconds
//	-I int      POPPASSD per-step I/O timeout, seconds
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-d", "-s", "-l", "-H", "-P", "-S", "-T", "-I"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddrGRPC, "a", config.EndpointAddrGRPC, "address and port to run server")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.SecretKey, "s", config.SecretKey, "secret key")
	fs.StringVar(&config.LogLevel, "l", config.LogLevel, "log level")
	fs.StringVar(&config.PoppassdHost, "H", config.PoppassdHost, "POPPASSD host")
	fs.IntVar(&config.PoppassdPort, "P", config.PoppassdPort, "POPPASSD port")

	supported := fs.String("S", strings.Join(config.SupportedServers, ","), "supported incoming servers, comma-separated")
	dialTimeout := fs.Int("T", int(config.PoppassdDialTimeout.Seconds()), "POPPASSD connect timeout (in seconds)")
	ioTimeout := fs.Int("I", int(config.PoppassdIOTimeout.Seconds()), "POPPASSD I/O timeout (in seconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	// only flags actually given override, so sub-second JSON durations survive
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "S":
			config.SupportedServers = flagx.SplitList(*supported)
		case "T":
			config.PoppassdDialTimeout = time.Duration(*dialTimeout) * time.Second
		case "I":
			config.PoppassdIOTimeout = time.Duration(*ioTimeout) * time.Second
		}
	})
}
