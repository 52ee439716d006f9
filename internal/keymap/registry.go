// Package keymap resolves key presses to commands per UI context, with
// user overrides from config.
package keymap

import "slices"

// Binding maps a key to a command within a context.
type Binding struct {
	Key     string
	Command string
	Context string
	Help    string // footer label; empty hides the binding
}

// Registry holds bindings and user overrides.
type Registry struct {
	bindings  map[string][]Binding
	overrides map[string]string // key -> command
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		bindings:  make(map[string][]Binding),
		overrides: make(map[string]string),
	}
}

// NewDefaultRegistry creates a registry with the default bindings and the
// given key -> command overrides.
func NewDefaultRegistry(overrides map[string]string) *Registry {
	r := NewRegistry()
	RegisterDefaults(r)
	for key, cmd := range overrides {
		r.SetUserOverride(key, cmd)
	}
	return r
}

// RegisterBinding adds a binding. Earlier bindings win on conflicts.
func (r *Registry) RegisterBinding(b Binding) {
	r.bindings[b.Context] = append(r.bindings[b.Context], b)
}

// SetUserOverride binds key to command in every context where the command
// is bound. Overrides take precedence over default bindings.
func (r *Registry) SetUserOverride(key, command string) {
	r.overrides[key] = command
}

// Lookup resolves key against contexts in order, then the global context.
func (r *Registry) Lookup(key string, contexts ...string) (string, bool) {
	if !slices.Contains(contexts, ContextGlobal) {
		contexts = append(slices.Clone(contexts), ContextGlobal)
	}
	for _, ctx := range contexts {
		if cmd, ok := r.overrides[key]; ok && r.boundIn(ctx, cmd) {
			return cmd, true
		}
		for _, b := range r.bindings[ctx] {
			if b.Key == key {
				return b.Command, true
			}
		}
	}
	return "", false
}

func (r *Registry) boundIn(ctx, command string) bool {
	for _, b := range r.bindings[ctx] {
		if b.Command == command {
			return true
		}
	}
	return false
}

// BindingsForContext returns the bindings of ctx, overrides first.
func (r *Registry) BindingsForContext(ctx string) []Binding {
	var out []Binding
	keys := make([]string, 0, len(r.overrides))
	for k := range r.overrides {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	for _, key := range keys {
		cmd := r.overrides[key]
		if !r.boundIn(ctx, cmd) {
			continue
		}
		out = append(out, Binding{Key: key, Command: cmd, Context: ctx, Help: r.help(ctx, cmd)})
	}
	return append(out, r.bindings[ctx]...)
}

func (r *Registry) help(ctx, command string) string {
	for _, b := range r.bindings[ctx] {
		if b.Command == command && b.Help != "" {
			return b.Help
		}
	}
	return ""
}
