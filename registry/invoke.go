package registry

import (
	"context"
	"errors"
	"fmt"

	"github.com/mcpdev/hello-mcp/protocol"
	"github.com/mcpdev/hello-mcp/schema"
)

// Invoke dispatches a single tool call. It always returns a well-formed
// envelope: lookup failures, argument validation failures, handler
// errors, and handler panics are all converted into failure envelopes
// and never propagate to the caller.
func (r *Registry) Invoke(ctx context.Context, tool string, args map[string]any) *protocol.Response {
	d, ok := r.Get(tool)
	if !ok {
		return protocol.FailErr(protocol.NewUnknownTool(tool))
	}

	bound, err := d.bind(args)
	if err != nil {
		return protocol.FailErr(err)
	}

	payload, err := d.call(ctx, bound)
	if err != nil {
		var perr *protocol.Error
		if errors.As(err, &perr) {
			return protocol.FailErr(perr)
		}
		return protocol.FailErr(protocol.NewHandlerError(d.Name, err.Error()))
	}

	return protocol.OK(payload)
}

// bind validates arguments against the declared parameters: required
// checks, type coercion, default substitution, and rejection of
// undeclared arguments.
func (d *Descriptor) bind(args map[string]any) (map[string]any, error) {
	bound := make(map[string]any, len(d.Params))
	declared := make(map[string]bool, len(d.Params))

	for _, p := range d.Params {
		declared[p.Name] = true

		value, present := args[p.Name]
		if !present {
			if p.Required {
				return nil, protocol.NewMissingParameter(d.Name, p.Name)
			}
			if p.Default != nil {
				bound[p.Name] = p.Default
			}
			continue
		}

		coerced, err := schema.Coerce(p.Type, value)
		if err != nil {
			return nil, protocol.NewInvalidParameter(d.Name, p.Name, err.Error())
		}
		bound[p.Name] = coerced
	}

	for name := range args {
		if !declared[name] {
			return nil, protocol.NewInvalidParameter(d.Name, name, "unknown parameter")
		}
	}

	return bound, nil
}

// call runs the handler, converting panics into handler errors so no
// invocation can crash the registry.
func (d *Descriptor) call(ctx context.Context, args map[string]any) (payload map[string]any, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			payload = nil
			err = protocol.NewHandlerError(d.Name, fmt.Sprintf("panic: %v", rec))
		}
	}()
	return d.Handler(ctx, args)
}
