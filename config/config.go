// Package config derives runtime configuration from a documented,
// closed set of environment variables. Every variable has a default
// used when unset; malformed values are startup errors.
package config

import (
	"fmt"
	"os"
	"strconv"
)

// Recognized environment variables.
const (
	EnvTestEnv   = "TEST_ENV"
	EnvDebug     = "MCP_DEBUG"
	EnvLogLevel  = "MCP_LOG_LEVEL"
	EnvTransport = "MCP_TRANSPORT"
	EnvAddr      = "MCP_ADDR"
)

// Defaults applied when a variable is unset.
const (
	DefaultTestEnv  = "Default MCP App"
	DefaultDebug    = "false"
	DefaultLogLevel = "info"
	DefaultAddr     = ":8080"
)

// Transport selects the serving surface.
type Transport string

// Supported transports.
const (
	TransportStdio     Transport = "stdio"
	TransportHTTP      Transport = "http"
	TransportWebSocket Transport = "websocket"
)

// DefaultTransport is used when MCP_TRANSPORT is unset.
const DefaultTransport = TransportStdio

// Config holds the resolved runtime configuration.
type Config struct {
	Transport Transport
	Addr      string
	Debug     bool
	LogLevel  string
	TestEnv   string
}

// Getenv returns the value of key, or def when the variable is unset.
// The empty string counts as set.
func Getenv(key, def string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return def
}

// FromEnv resolves the configuration from the environment. An
// unrecognized transport or a malformed debug flag is an error; the
// caller is expected to abort startup.
func FromEnv() (*Config, error) {
	transport := Transport(Getenv(EnvTransport, string(DefaultTransport)))
	switch transport {
	case TransportStdio, TransportHTTP, TransportWebSocket:
	default:
		return nil, fmt.Errorf("config: unsupported transport %q", transport)
	}

	debug, err := strconv.ParseBool(Getenv(EnvDebug, DefaultDebug))
	if err != nil {
		return nil, fmt.Errorf("config: malformed %s: %w", EnvDebug, err)
	}

	return &Config{
		Transport: transport,
		Addr:      Getenv(EnvAddr, DefaultAddr),
		Debug:     debug,
		LogLevel:  Getenv(EnvLogLevel, DefaultLogLevel),
		TestEnv:   Getenv(EnvTestEnv, DefaultTestEnv),
	}, nil
}
