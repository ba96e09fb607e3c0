package registry

import (
	"context"
	"fmt"

	"github.com/mcpdev/hello-mcp/schema"
)

// Handler implements a tool's business logic. The argument map has
// already passed required-parameter checks, type coercion, and default
// substitution when the handler runs.
type Handler func(ctx context.Context, args map[string]any) (map[string]any, error)

// Param declares a single tool parameter.
type Param struct {
	Name        string
	Type        schema.Type
	Required    bool
	Default     any
	Description string
}

// Descriptor describes a registered tool: its name, its declared
// parameters in order, and the handler invoked after validation.
type Descriptor struct {
	Name        string
	Description string
	Params      []Param
	Handler     Handler
}

// InputSchema emits the JSON Schema object for the declared
// parameters.
func (d *Descriptor) InputSchema() *schema.Schema {
	s := schema.Object()
	for _, p := range d.Params {
		prop := &schema.Schema{
			Type:        string(p.Type),
			Description: p.Description,
			Default:     p.Default,
		}
		s.Properties[p.Name] = prop
		if p.Required {
			s.Required = append(s.Required, p.Name)
		}
	}
	return s
}

// Builder provides a fluent API for declaring and registering tools.
type Builder struct {
	desc Descriptor
	reg  *Registry
	err  error
}

// Description sets the tool description.
func (b *Builder) Description(desc string) *Builder {
	if b.err != nil {
		return b
	}
	b.desc.Description = desc
	return b
}

// Required declares a required parameter.
func (b *Builder) Required(name string, typ schema.Type, desc string) *Builder {
	return b.param(Param{Name: name, Type: typ, Required: true, Description: desc})
}

// Optional declares an optional parameter. The default is substituted
// when the argument is absent; a nil default leaves the argument unset.
func (b *Builder) Optional(name string, typ schema.Type, def any, desc string) *Builder {
	return b.param(Param{Name: name, Type: typ, Default: def, Description: desc})
}

func (b *Builder) param(p Param) *Builder {
	if b.err != nil {
		return b
	}
	if !schema.Valid(p.Type) {
		b.err = fmt.Errorf("tool %q parameter %q: unsupported type %q", b.desc.Name, p.Name, p.Type)
		return b
	}
	for _, existing := range b.desc.Params {
		if existing.Name == p.Name {
			b.err = fmt.Errorf("tool %q declares parameter %q twice", b.desc.Name, p.Name)
			return b
		}
	}
	b.desc.Params = append(b.desc.Params, p)
	return b
}

// Handler sets the handler and registers the tool. It returns the
// first builder error, or the registration error.
func (b *Builder) Handler(fn Handler) error {
	if b.err != nil {
		return b.err
	}
	if fn == nil {
		return fmt.Errorf("tool %q: handler must not be nil", b.desc.Name)
	}
	b.desc.Handler = fn
	return b.reg.Register(b.desc)
}
