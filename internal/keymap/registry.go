// Package keymap maps key presses to named commands per focus context.
package keymap

// Binding binds a key to a command within a context.
type Binding struct {
	Key     string
	Command string
	Context string
}

// Registry resolves keys to commands. Lookups check user overrides, then
// the given context, then the global context.
type Registry struct {
	bindings      []Binding
	byContext     map[string]map[string]string // context -> key -> command
	userOverrides map[string]string            // key -> command
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		byContext:     make(map[string]map[string]string),
		userOverrides: make(map[string]string),
	}
}

// RegisterDefaults adds DefaultBindings to r.
func RegisterDefaults(r *Registry) {
	for _, b := range DefaultBindings() {
		r.Register(b)
	}
}

// Register adds a binding. A later binding for the same key and context
// replaces the earlier one.
func (r *Registry) Register(b Binding) {
	keys, ok := r.byContext[b.Context]
	if !ok {
		keys = make(map[string]string)
		r.byContext[b.Context] = keys
	}
	if _, exists := keys[b.Key]; exists {
		for i := range r.bindings {
			if r.bindings[i].Key == b.Key && r.bindings[i].Context == b.Context {
				r.bindings[i].Command = b.Command
			}
		}
	} else {
		r.bindings = append(r.bindings, b)
	}
	keys[b.Key] = b.Command
}

// SetUserOverride binds key to cmd in every context, ahead of the defaults.
func (r *Registry) SetUserOverride(key, cmd string) {
	r.userOverrides[key] = cmd
}

// Lookup returns the command bound to key in context, or "" if none.
func (r *Registry) Lookup(key, context string) string {
	if cmd, ok := r.userOverrides[key]; ok {
		return cmd
	}
	if cmd, ok := r.byContext[context][key]; ok {
		return cmd
	}
	return r.byContext[ContextGlobal][key]
}

// BindingsForContext returns the bindings of a context in registration
// order, followed by user overrides.
func (r *Registry) BindingsForContext(context string) []Binding {
	var out []Binding
	for _, b := range r.bindings {
		if b.Context == context {
			out = append(out, b)
		}
	}
	for key, cmd := range r.userOverrides {
		out = append(out, Binding{Key: key, Command: cmd, Context: context})
	}
	return out
}

// KeysFor returns the keys that trigger cmd in context (including global
// bindings), first registered first.
func (r *Registry) KeysFor(cmd, context string) []string {
	var keys []string
	for _, b := range r.bindings {
		if b.Command != cmd || (b.Context != context && b.Context != ContextGlobal) {
			continue
		}
		if r.Lookup(b.Key, context) == cmd {
			keys = append(keys, b.Key)
		}
	}
	for key, c := range r.userOverrides {
		if c == cmd {
			keys = append(keys, key)
		}
	}
	return keys
}
