package tools

import (
	"context"
	"fmt"
	"time"
)

// Hello returns a greeting. When the optional name argument is absent
// or empty, the greeting addresses the world.
func Hello(_ context.Context, args map[string]any) (map[string]any, error) {
	name := "World"
	if v, ok := args["name"].(string); ok && v != "" {
		name = v
	}

	return map[string]any{
		"message":   fmt.Sprintf("Hello, %s!", name),
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	}, nil
}
