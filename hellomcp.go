// Package hellomcp provides a framework for building tool servers that
// speak a uniform response envelope: every invocation returns either
// {"success": true, ...payload} or {"success": false, "error": "..."}.
//
// It provides:
//   - A tool registry with declared parameters, validation, coercion,
//     and defaults
//   - Gin-style middleware chains
//   - Pluggable hosts (stdio, HTTP, WebSocket)
//   - Production-ready defaults
//
// Basic usage:
//
//	reg := hellomcp.New(hellomcp.Info{
//	    Name:    "my-server",
//	    Version: "1.0.0",
//	})
//
//	_ = reg.Tool("greet").
//	    Description("Return a greeting").
//	    Optional("name", hellomcp.TypeString, "World", "Name to greet").
//	    Handler(func(ctx context.Context, args map[string]any) (map[string]any, error) {
//	        return map[string]any{"message": "Hello, " + args["name"].(string)}, nil
//	    })
//
//	hellomcp.ServeStdio(ctx, reg)
package hellomcp

import (
	"context"
	"time"

	"github.com/mcpdev/hello-mcp/host"
	"github.com/mcpdev/hello-mcp/middleware"
	"github.com/mcpdev/hello-mcp/protocol"
	"github.com/mcpdev/hello-mcp/registry"
	"github.com/mcpdev/hello-mcp/schema"
)

// Re-export core types for convenience

// Info contains server metadata exposed to clients.
type Info = registry.Info

// Registry holds the registered tools and dispatches invocations.
type Registry = registry.Registry

// Handler is the signature for tool handler functions.
type Handler = registry.Handler

// Request is a tool invocation request.
type Request = protocol.Request

// Response is a response envelope.
type Response = protocol.Response

// Parameter types for tool declarations.
const (
	TypeString  = schema.TypeString
	TypeInteger = schema.TypeInteger
	TypeNumber  = schema.TypeNumber
	TypeBoolean = schema.TypeBoolean
)

// Middleware types
type Middleware = middleware.Middleware
type MiddlewareHandlerFunc = middleware.HandlerFunc
type Logger = middleware.Logger
type LogField = middleware.Field
type RateLimitOption = middleware.RateLimitOption

// RateLimit re-exports for convenience.
var (
	RateLimit            = middleware.RateLimit
	RateLimitByTool      = middleware.RateLimitByTool
	WithRateLimitKeyFunc = middleware.WithRateLimitKeyFunc
	WithRateLimitLogger  = middleware.WithRateLimitLogger
)

// HTTPOption configures the HTTP host.
type HTTPOption = host.HTTPOption

// ServeOption configures how the server is run.
type ServeOption func(*serveOptions)

type serveOptions struct {
	middleware []Middleware
}

// WithMiddleware adds middleware to the invocation handling chain.
func WithMiddleware(m ...Middleware) ServeOption {
	return func(o *serveOptions) {
		o.middleware = append(o.middleware, m...)
	}
}

// New creates a new tool registry with the given server info.
func New(info Info) *Registry {
	return registry.New(info)
}

// newRequestHandler builds the host handler: registry dispatch wrapped
// in the configured middleware chain.
func newRequestHandler(reg *Registry, opts ...ServeOption) host.Handler {
	var o serveOptions
	for _, opt := range opts {
		opt(&o)
	}

	base := middleware.HandlerFunc(func(ctx context.Context, req *protocol.Request) (*protocol.Response, error) {
		return reg.Invoke(ctx, req.Tool, req.Arguments), nil
	})

	return host.HandlerFunc(middleware.Chain(o.middleware...)(base))
}

// ServeStdio runs the server over newline-delimited JSON on stdio.
// This blocks until the context is canceled or input is exhausted.
func ServeStdio(ctx context.Context, reg *Registry, opts ...ServeOption) error {
	h := host.NewStdio()
	return h.Serve(ctx, newRequestHandler(reg, opts...))
}

// ServeHTTP runs the server over HTTP.
// This blocks until the context is canceled or an error occurs.
func ServeHTTP(ctx context.Context, reg *Registry, addr string, opts ...ServeOption) error {
	h := host.NewHTTP(addr)
	return h.Serve(ctx, newRequestHandler(reg, opts...))
}

// ServeWebSocket runs the server over WebSocket connections.
// This blocks until the context is canceled or an error occurs.
func ServeWebSocket(ctx context.Context, reg *Registry, addr string, opts ...ServeOption) error {
	h := host.NewWebSocket(addr)
	return h.Serve(ctx, newRequestHandler(reg, opts...))
}

// Middleware re-exports

// Chain composes multiple middleware into a single middleware.
func Chain(middlewares ...Middleware) Middleware {
	return middleware.Chain(middlewares...)
}

// Recover returns middleware that catches panics and converts them to
// failure envelopes.
func Recover() Middleware {
	return middleware.Recover()
}

// Timeout returns middleware that enforces an invocation deadline.
func Timeout(d time.Duration) Middleware {
	return middleware.Timeout(d)
}

// RequestID returns middleware that injects a unique request ID into
// the context.
func RequestID() Middleware {
	return middleware.RequestID()
}

// RequestIDFromContext returns the request ID from the context, or
// empty string if not set.
func RequestIDFromContext(ctx context.Context) string {
	return middleware.RequestIDFromContext(ctx)
}

// Logging returns middleware that logs invocation details.
func Logging(logger Logger) Middleware {
	return middleware.Logging(logger)
}

// DefaultMiddleware returns the recommended production middleware stack.
func DefaultMiddleware(logger Logger) []Middleware {
	return middleware.DefaultStack(logger)
}

// DefaultMiddlewareWithTimeout returns the default stack with a timeout
// middleware.
func DefaultMiddlewareWithTimeout(logger Logger, timeout time.Duration) []Middleware {
	return middleware.DefaultStackWithTimeout(logger, timeout)
}

// LogF creates a new log field with the given key and value.
func LogF(key string, value any) LogField {
	return middleware.F(key, value)
}
