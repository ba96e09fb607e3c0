// Package host provides serving surfaces for the tool-invocation
// contract: stdio, HTTP, and WebSocket. Hosts carry one request in and
// one envelope out; any error escaping the handler chain is converted
// into a failure envelope at the host boundary so callers always
// receive a well-formed response.
package host

import (
	"context"

	"github.com/mcpdev/hello-mcp/protocol"
)

// Handler processes incoming invocation requests.
type Handler interface {
	HandleRequest(ctx context.Context, req *protocol.Request) (*protocol.Response, error)
}

// HandlerFunc is an adapter to allow ordinary functions as handlers.
type HandlerFunc func(ctx context.Context, req *protocol.Request) (*protocol.Response, error)

// HandleRequest calls f(ctx, req).
func (f HandlerFunc) HandleRequest(ctx context.Context, req *protocol.Request) (*protocol.Response, error) {
	return f(ctx, req)
}

// Host defines the serving surface interface.
type Host interface {
	// Serve starts the host, blocking until ctx is canceled or an
	// error occurs.
	Serve(ctx context.Context, handler Handler) error

	// Addr returns the host's address description.
	Addr() string
}

// envelopeFor normalizes a handler result into a response envelope.
func envelopeFor(resp *protocol.Response, err error) *protocol.Response {
	if err != nil {
		return protocol.FailErr(err)
	}
	if resp == nil {
		return protocol.Fail("empty response")
	}
	return resp
}
