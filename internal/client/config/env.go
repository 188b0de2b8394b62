package config

import (
	"os"
	"time"

	"github.com/dmitrijs2005/mailpassd/internal/flagx"
	"github.com/joho/godotenv"
)

// parseEnv overlays MAILPASS_* variables. A dotenv file, when present,
// fills variables that are not already set.
func parseEnv(cfg *Config) {
	if path := flagx.EnvFileFlags(); path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := godotenv.Load(path); err != nil {
				panic(err)
			}
		}
	}

	if v, ok := os.LookupEnv("MAILPASS_ADDR"); ok && v != "" {
		cfg.ServerEndpointAddr = v
	}
	if v, ok := os.LookupEnv("MAILPASS_TOKEN"); ok && v != "" {
		cfg.AccessToken = v
	}
	if v, ok := os.LookupEnv("MAILPASS_TIMEOUT"); ok && v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			panic(err)
		}
		cfg.RequestTimeout = d
	}
}
