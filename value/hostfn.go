package value

// HostCallable is implemented by the host package's function wrapper. It
// lives here, rather than in host, so that Value itself can carry a
// callable without value importing host (host already imports value).
type HostCallable interface {
	NumParams() int
	Call0() (Value, error)
	Call1(a Value) (Value, error)
	Call2(a, b Value) (Value, error)
	Call3(a, b, c Value) (Value, error)
}

// HostFn is the Value form of a host function, pushed by IMPORT or stored
// as a package export and invoked by CALL exactly like a function object.
type HostFn struct {
	Name string
	Impl HostCallable
}

func (h HostFn) Tag() Tag       { return HOSTFN }
func (h HostFn) String() string { return "<hostfn " + h.Name + ">" }

func (h HostFn) Equal(o Value) bool {
	oh, ok := o.(HostFn)
	return ok && h.Impl == oh.Impl
}

// NumParams reports how many arguments the wrapped function expects.
func (h HostFn) NumParams() int { return h.Impl.NumParams() }
