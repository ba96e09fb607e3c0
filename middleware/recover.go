package middleware

import (
	"context"
	"fmt"

	"github.com/mcpdev/hello-mcp/protocol"
)

// PanicHandler is called when a panic is recovered.
type PanicHandler func(ctx context.Context, req *protocol.Request, panicVal any) (*protocol.Response, error)

// Recover returns middleware that catches panics anywhere below it in
// the chain and converts them to handler_error failure envelopes.
func Recover() Middleware {
	return RecoverWithHandler(defaultPanicHandler)
}

// RecoverWithHandler returns middleware that catches panics and calls
// the provided handler, allowing custom handling such as alerting.
func RecoverWithHandler(handler PanicHandler) Middleware {
	return func(next HandlerFunc) HandlerFunc {
		return func(ctx context.Context, req *protocol.Request) (resp *protocol.Response, err error) {
			defer func() {
				if r := recover(); r != nil {
					resp, err = handler(ctx, req, r)
				}
			}()
			return next(ctx, req)
		}
	}
}

func defaultPanicHandler(_ context.Context, req *protocol.Request, panicVal any) (*protocol.Response, error) {
	return protocol.FailErr(protocol.NewHandlerError(req.Tool, fmt.Sprintf("panic: %v", panicVal))), nil
}
