// Package tools contains the reference tool handlers and their
// registration. All handlers are pure request/response: no shared
// state, no side effects beyond reading the environment.
package tools

import (
	"github.com/mcpdev/hello-mcp/registry"
	"github.com/mcpdev/hello-mcp/schema"
)

// Register adds the reference tools to reg. It fails on the first
// registration error; callers treat that as a fatal startup error.
func Register(reg *registry.Registry) error {
	if err := reg.Tool("hello").
		Description("Returns a hello message, optionally personalized.").
		Optional("name", schema.TypeString, nil, "Name to greet").
		Handler(Hello); err != nil {
		return err
	}

	if err := reg.Tool("get_env_info").
		Description("Reports the recognized environment variables and their effective values.").
		Handler(EnvInfo); err != nil {
		return err
	}

	return reg.Tool("get_server_info").
		Description("Returns server metadata and the list of registered tools.").
		Handler(ServerInfo(reg))
}
