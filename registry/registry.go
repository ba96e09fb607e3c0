// Package registry provides the tool registry: tool descriptors with
// declared parameter metadata, static registration at startup, and
// centralized dispatch that validates arguments and shields the caller
// from handler failures.
package registry

import (
	"sort"
	"sync"

	"github.com/mcpdev/hello-mcp/protocol"
)

// Info contains server metadata exposed through get_server_info.
type Info struct {
	Name    string
	Version string
}

// Registry maps tool names to descriptors. Registration happens during
// startup; after that the registry is read-only and every invocation
// is independently safe to run in parallel.
type Registry struct {
	mu sync.RWMutex

	info  Info
	tools map[string]*Descriptor
}

// New creates an empty registry with the given info.
func New(info Info) *Registry {
	return &Registry{
		info:  info,
		tools: make(map[string]*Descriptor),
	}
}

// Info returns the server info.
func (r *Registry) Info() Info {
	return r.info
}

// Tool starts building a new tool with the given name.
func (r *Registry) Tool(name string) *Builder {
	return &Builder{
		desc: Descriptor{Name: name},
		reg:  r,
	}
}

// Register adds a descriptor. Registering a name twice fails with a
// duplicate_tool error and leaves the first registration in place.
func (r *Registry) Register(d Descriptor) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.tools[d.Name]; exists {
		return protocol.NewDuplicateTool(d.Name)
	}
	r.tools[d.Name] = &d
	return nil
}

// Get retrieves a descriptor by name. Lookup is case-sensitive.
func (r *Registry) Get(name string) (*Descriptor, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	d, ok := r.tools[name]
	return d, ok
}

// Names returns the registered tool names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.tools))
	for name := range r.tools {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Descriptors returns the registered descriptors sorted by name.
func (r *Registry) Descriptors() []Descriptor {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]Descriptor, 0, len(r.tools))
	for _, d := range r.tools {
		result = append(result, *d)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result
}
