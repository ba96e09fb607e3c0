// Package testutil provides testing utilities for tool servers.
//
// It offers an in-memory client that drives a registry through the same
// handler interface the hosts use, plus assertion helpers, so tool
// behavior can be tested without binding a transport.
//
// Example usage:
//
//	func TestMyTools(t *testing.T) {
//	    reg := registry.New(registry.Info{Name: "test", Version: "1.0.0"})
//	    _ = reg.Tool("greet").
//	        Optional("name", schema.TypeString, "World", "Name to greet").
//	        Handler(func(ctx context.Context, args map[string]any) (map[string]any, error) {
//	            return map[string]any{"message": "Hello, " + args["name"].(string)}, nil
//	        })
//
//	    tc := testutil.NewClient(t, reg)
//	    resp := tc.Invoke("greet", map[string]any{"name": "World"})
//	    if !resp.Success {
//	        t.Fatalf("greet failed: %s", resp.Err)
//	    }
//	}
package testutil

import (
	"context"
	"testing"

	"github.com/mcpdev/hello-mcp/host"
	"github.com/mcpdev/hello-mcp/protocol"
	"github.com/mcpdev/hello-mcp/registry"
)

// Client is an in-memory client for a tool registry. It sends requests
// through a host.Handler, so middleware chains can be tested the same
// way as bare registries.
type Client struct {
	t       testing.TB
	reg     *registry.Registry
	handler host.Handler
}

// NewClient creates a client that invokes tools directly on reg.
func NewClient(t testing.TB, reg *registry.Registry) *Client {
	t.Helper()

	return &Client{
		t:   t,
		reg: reg,
		handler: host.HandlerFunc(func(ctx context.Context, req *protocol.Request) (*protocol.Response, error) {
			return reg.Invoke(ctx, req.Tool, req.Arguments), nil
		}),
	}
}

// NewClientWithHandler creates a client that sends requests through a
// custom handler. Useful for testing middleware.
func NewClientWithHandler(t testing.TB, handler host.Handler) *Client {
	t.Helper()
	return &Client{t: t, handler: handler}
}

// Invoke sends an invocation request and returns the response envelope.
// Transport-level handler errors are normalized into failure envelopes,
// so the result is always well formed.
func (c *Client) Invoke(tool string, args map[string]any) *protocol.Response {
	c.t.Helper()
	return c.InvokeContext(context.Background(), tool, args)
}

// InvokeContext is Invoke with a caller-supplied context.
func (c *Client) InvokeContext(ctx context.Context, tool string, args map[string]any) *protocol.Response {
	c.t.Helper()

	resp, err := c.handler.HandleRequest(ctx, &protocol.Request{Tool: tool, Arguments: args})
	if err != nil {
		return protocol.FailErr(protocol.NewHandlerError(tool, err.Error()))
	}
	if resp == nil {
		c.t.Fatalf("handler returned nil response for tool %q", tool)
	}
	return resp
}

// InvokeOK invokes a tool and fails the test unless the envelope
// reports success. It returns the payload.
func (c *Client) InvokeOK(tool string, args map[string]any) map[string]any {
	c.t.Helper()

	resp := c.Invoke(tool, args)
	if !resp.Success {
		c.t.Fatalf("tool %q failed: %s", tool, resp.Err)
	}
	return resp.Payload
}

// InvokeFail invokes a tool and fails the test unless the envelope
// reports failure. It returns the error message.
func (c *Client) InvokeFail(tool string, args map[string]any) string {
	c.t.Helper()

	resp := c.Invoke(tool, args)
	if resp.Success {
		c.t.Fatalf("tool %q succeeded, expected failure (payload: %v)", tool, resp.Payload)
	}
	return resp.Err
}

// Tools returns the registered tool names in sorted order.
func (c *Client) Tools() []string {
	c.t.Helper()

	if c.reg == nil {
		c.t.Fatal("client has no registry; use NewClient")
	}
	return c.reg.Names()
}

// AssertToolExists asserts that a tool with the given name is
// registered.
func (c *Client) AssertToolExists(name string) {
	c.t.Helper()

	for _, tool := range c.Tools() {
		if tool == name {
			return
		}
	}
	c.t.Errorf("tool %q not found", name)
}

// AssertPayloadField asserts that the payload carries key with the
// expected value.
func (c *Client) AssertPayloadField(resp *protocol.Response, key string, want any) {
	c.t.Helper()

	got, ok := resp.Payload[key]
	if !ok {
		c.t.Errorf("payload has no key %q", key)
		return
	}
	if got != want {
		c.t.Errorf("payload[%q] = %v, want %v", key, got, want)
	}
}
