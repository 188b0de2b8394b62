package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/mailpassd/internal/flagx"
	"github.com/dmitrijs2005/mailpassd/internal/timex"
)

// JsonConfig is the on-disk shape of the server configuration file.
// Durations use timex.Duration so both "5s" and integer nanoseconds
// are accepted. Only fields present in the file override earlier values.
type JsonConfig struct {
	EndpointAddrGRPC    string          `json:"endpoint_addr_grpc"`
	DatabaseDSN         *string         `json:"database_dsn"`
	SecretKey           string          `json:"secret_key"`
	LogLevel            string          `json:"log_level"`
	PoppassdHost        string          `json:"poppassd_host"`
	PoppassdPort        int             `json:"poppassd_port"`
	PoppassdDialTimeout *timex.Duration `json:"poppassd_dial_timeout"`
	PoppassdIOTimeout   *timex.Duration `json:"poppassd_io_timeout"`
	SupportedServers    []string        `json:"supported_servers"`
}

// parseJson loads configuration values from the JSON file named by the
// -c or -config flag. Without the flag nothing is loaded. An unreadable
// file or invalid JSON panics.
//
// database_dsn is a pointer so an explicit "" can switch the server to
// in-memory repositories.
func parseJson(config *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	c := &JsonConfig{}
	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	if c.EndpointAddrGRPC != "" {
		config.EndpointAddrGRPC = c.EndpointAddrGRPC
	}
	if c.DatabaseDSN != nil {
		config.DatabaseDSN = *c.DatabaseDSN
	}
	if c.SecretKey != "" {
		config.SecretKey = c.SecretKey
	}
	if c.LogLevel != "" {
		config.LogLevel = c.LogLevel
	}
	if c.PoppassdHost != "" {
		config.PoppassdHost = c.PoppassdHost
	}
	if c.PoppassdPort != 0 {
		config.PoppassdPort = c.PoppassdPort
	}
	if c.PoppassdDialTimeout != nil {
		config.PoppassdDialTimeout = c.PoppassdDialTimeout.Duration
	}
	if c.PoppassdIOTimeout != nil {
		config.PoppassdIOTimeout = c.PoppassdIOTimeout.Duration
	}
	if c.SupportedServers != nil {
		config.SupportedServers = c.SupportedServers
	}
}
