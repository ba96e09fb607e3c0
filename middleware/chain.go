// Package middleware provides composable wrappers around invocation
// handling: panic recovery, request IDs, logging, timeouts, rate
// limiting, and OpenTelemetry instrumentation.
package middleware

import (
	"context"

	"github.com/mcpdev/hello-mcp/protocol"
)

// HandlerFunc is the signature for invocation handlers.
type HandlerFunc func(ctx context.Context, req *protocol.Request) (*protocol.Response, error)

// Middleware wraps a handler with additional behavior.
type Middleware func(next HandlerFunc) HandlerFunc

// Chain composes multiple middleware into a single middleware.
// Middleware are applied in order, so Chain(m1, m2, m3) results in
// m1 wrapping m2 wrapping m3 wrapping the final handler.
func Chain(middlewares ...Middleware) Middleware {
	return func(final HandlerFunc) HandlerFunc {
		for i := len(middlewares) - 1; i >= 0; i-- {
			final = middlewares[i](final)
		}
		return final
	}
}
