// Package config loads runtime configuration for the mailpass CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Environment, optionally seeded from a dotenv file (-e or -env).
//  3. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  4. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   address:port of the mailpassd gRPC endpoint
//	-t string   access token
//	-w int      request timeout (seconds)
//
// Environment
//
//	MAILPASS_ADDR, MAILPASS_TOKEN, MAILPASS_TIMEOUT (duration, e.g. "10s")
//
// # JSON schema
//
//	{
//	  "server_endpoint_addr": "127.0.0.1:50051",
//	  "access_token": "eyJ...",
//	  "request_timeout": "10s"
//	}
package config
