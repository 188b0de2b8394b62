package config

import (
	"os"
	"strconv"
	"time"

	"github.com/dmitrijs2005/mailpassd/internal/flagx"
	"github.com/joho/godotenv"
)

// Environment variables read by parseEnv.
const (
	envEndpointAddrGRPC    = "MAILPASSD_GRPC_ADDR"
	envDatabaseDSN         = "MAILPASSD_DATABASE_DSN"
	envSecretKey           = "MAILPASSD_SECRET_KEY"
	envLogLevel            = "MAILPASSD_LOG_LEVEL"
	envPoppassdHost        = "MAILPASSD_POPPASSD_HOST"
	envPoppassdPort        = "MAILPASSD_POPPASSD_PORT"
	envPoppassdDialTimeout = "MAILPASSD_POPPASSD_DIAL_TIMEOUT"
	envPoppassdIOTimeout   = "MAILPASSD_POPPASSD_IO_TIMEOUT"
	envSupportedServers    = "MAILPASSD_SUPPORTED_SERVERS"
)

// parseEnv overlays values from the process environment. A dotenv file
// (-e/-env, default ".env") is loaded first if it exists; variables already
// set in the environment win over the file. Malformed numbers and durations
// panic, like the other config sources.
func parseEnv(config *Config) {
	if path := flagx.EnvFileFlags(); path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := godotenv.Load(path); err != nil {
				panic(err)
			}
		}
	}

	setString(&config.EndpointAddrGRPC, envEndpointAddrGRPC)
	setString(&config.DatabaseDSN, envDatabaseDSN)
	setString(&config.SecretKey, envSecretKey)
	setString(&config.LogLevel, envLogLevel)
	setString(&config.PoppassdHost, envPoppassdHost)

	if v, ok := os.LookupEnv(envPoppassdPort); ok {
		port, err := strconv.Atoi(v)
		if err != nil {
			panic(err)
		}
		config.PoppassdPort = port
	}
	setDuration(&config.PoppassdDialTimeout, envPoppassdDialTimeout)
	setDuration(&config.PoppassdIOTimeout, envPoppassdIOTimeout)

	if v, ok := os.LookupEnv(envSupportedServers); ok {
		config.SupportedServers = flagx.SplitList(v)
	}
}

func setString(dst *string, key string) {
	if v, ok := os.LookupEnv(key); ok {
		*dst = v
	}
}

func setDuration(dst *time.Duration, key string) {
	v, ok := os.LookupEnv(key)
	if !ok {
		return
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		panic(err)
	}
	*dst = d
}
