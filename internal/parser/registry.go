package parser

import "fmt"

// registry is a process-local — in practice, call-local — mapping from
// unescaped top-level definition name to its variant tag, used to
// detect duplicate non-partial definitions. It is scoped to a single
// Parse call and carries no state across calls (spec.md §3, "Name
// registry").
type registry struct {
	names map[string]string
}

func newRegistry() *registry {
	return &registry{names: make(map[string]string)}
}

// register records name as belonging to the given variant kind, failing
// if name is already registered under any kind. Partial definitions must
// never call register (spec.md: "Partial definitions are deliberately
// NOT registered").
func (r *registry) register(name, kind string) error {
	if existing, ok := r.names[name]; ok {
		return fmt.Errorf("name %q of type %q was already seen", name, existing)
	}
	r.names[name] = kind
	return nil
}
