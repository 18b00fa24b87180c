// This file implements the generator registry: the ownership table mapping an
// allocated type name to the generator that produces that type's declaration.

package generator

// TypeGenerator produces the declaration text for one named type. Member
// resolution happens inside Render, never at registration time, so that every
// sibling reservation of the current resolution step completes before any
// body is generated.
type TypeGenerator interface {
	// Render produces the C# declaration for the type under the given name.
	Render(name string) (string, error)
}

// TypeRegistry maps allocated names to type generators, preserving insertion
// order. A name is reserved before its generator resolves member types, so a
// self-reference resolves to the already-reserved name instead of recursing.
//
// Each generation run owns its own registry; instances are not safe for
// concurrent use.
type TypeRegistry struct {
	names      []string
	generators map[string]TypeGenerator
}

// NewTypeRegistry creates an empty registry for one generation run.
func NewTypeRegistry() *TypeRegistry {
	return &TypeRegistry{generators: make(map[string]TypeGenerator)}
}

// AddOrReplace binds a generator to a name. Rebinding an existing name keeps
// its insertion position, so references issued to earlier callers stay valid
// when a later visit upgrades the generator with better information.
func (r *TypeRegistry) AddOrReplace(name string, gen TypeGenerator) {
	if _, exists := r.generators[name]; !exists {
		r.names = append(r.names, name)
	}
	r.generators[name] = gen
}

// Get returns the generator bound to a name.
func (r *TypeRegistry) Get(name string) (TypeGenerator, bool) {
	gen, ok := r.generators[name]
	return gen, ok
}

// Len returns the number of registered names.
func (r *TypeRegistry) Len() int {
	return len(r.names)
}

// At returns the name and generator at insertion position i. Positions are
// stable: rendering may register further types, which only appends.
func (r *TypeRegistry) At(i int) (string, TypeGenerator) {
	name := r.names[i]
	return name, r.generators[name]
}

// Names returns a snapshot of the registered names in insertion order.
func (r *TypeRegistry) Names() []string {
	out := make([]string, len(r.names))
	copy(out, r.names)
	return out
}
