package host

import (
	"zimvm/diag"
	"zimvm/value"
)

// Registry is the name→function table IMPORT and package-level lookups
// resolve against, plus the import cache the supplemented "import at most
// once per logical name" behavior (see the interpreter's Importer field)
// relies on.
type Registry struct {
	funcs    map[string]value.HostFn
	imported map[string]value.Value
	loader   func(name string) (*value.Object, error)
}

// NewRegistry returns a registry preloaded with the crypto/hash host
// functions.
func NewRegistry() *Registry {
	r := &Registry{
		funcs:    make(map[string]value.HostFn),
		imported: make(map[string]value.Value),
	}
	registerCrypto(r)
	return r
}

// Register adds or replaces a host function under name.
func (r *Registry) Register(name string, fn value.HostFn) {
	r.funcs[name] = fn
}

// Get looks up a registered host function by name.
func (r *Registry) Get(name string) (value.HostFn, bool) {
	fn, ok := r.funcs[name]
	return fn, ok
}

// SetLoader wires the package loader (conventionally image.Load) that
// Import falls back to when name is not a registered host function.
func (r *Registry) SetLoader(loader func(name string) (*value.Object, error)) {
	r.loader = loader
}

// Import backs the IMPORT opcode: a host function registered under name
// is returned directly; otherwise name is treated as a package path and
// loaded at most once per process, mirroring the original's import
// cache (grounded on opcode.Decoder's identical write-once-per-key
// shape).
func (r *Registry) Import(name string) (value.Value, error) {
	if fn, ok := r.funcs[name]; ok {
		return fn, nil
	}
	if v, ok := r.imported[name]; ok {
		return v, nil
	}
	if r.loader == nil {
		return nil, diag.Errorf("import: unknown name %q", name)
	}
	pkg, err := r.loader(name)
	if err != nil {
		return nil, err
	}
	r.imported[name] = pkg
	return pkg, nil
}
