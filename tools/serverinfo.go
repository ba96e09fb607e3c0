package tools

import (
	"context"

	"github.com/mcpdev/hello-mcp/registry"
)

// ServerInfo returns a handler reporting static server metadata and
// the sorted list of registered tool names. Read-only, no side
// effects.
func ServerInfo(reg *registry.Registry) registry.Handler {
	return func(_ context.Context, _ map[string]any) (map[string]any, error) {
		info := reg.Info()
		return map[string]any{
			"name":    info.Name,
			"version": info.Version,
			"tools":   reg.Names(),
		}, nil
	}
}
