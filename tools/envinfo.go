package tools

import (
	"context"

	"github.com/mcpdev/hello-mcp/config"
)

// EnvInfo reports the closed set of recognized environment variables.
// Unset variables resolve to their documented defaults, so the tool
// never fails.
func EnvInfo(_ context.Context, _ map[string]any) (map[string]any, error) {
	return map[string]any{
		"test_env":  config.Getenv(config.EnvTestEnv, config.DefaultTestEnv),
		"debug":     config.Getenv(config.EnvDebug, config.DefaultDebug),
		"log_level": config.Getenv(config.EnvLogLevel, config.DefaultLogLevel),
	}, nil
}
