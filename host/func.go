// Package host implements the call protocol's host-function side: the
// fixed-arity call0..call3 wrapper §4.3 requires, a name→function
// registry, the import cache, and the concrete crypto/hash host
// functions exposed to programs as HOSTFN values. Grounded on
// barn/builtins.Registry's name→function table, generalized from barn's
// single variadic signature to the arity-dispatched shape the core's
// call protocol requires.
package host

import (
	"zimvm/diag"
	"zimvm/value"
)

// Func wraps a Go closure of fixed arity behind value.HostCallable.
// Params is the function's declared arity (0..3); Impl is always called
// with exactly that many arguments, because callHost only reaches the
// matching Call<N> method.
type Func struct {
	Params int
	Impl   func(args []value.Value) (value.Value, error)
}

func (f *Func) NumParams() int { return f.Params }

func (f *Func) Call0() (value.Value, error) { return f.Impl(nil) }

func (f *Func) Call1(a value.Value) (value.Value, error) {
	return f.Impl([]value.Value{a})
}

func (f *Func) Call2(a, b value.Value) (value.Value, error) {
	return f.Impl([]value.Value{a, b})
}

func (f *Func) Call3(a, b, c value.Value) (value.Value, error) {
	return f.Impl([]value.Value{a, b, c})
}

// New wraps fn as a named value.HostFn with the given declared arity.
func New(name string, params int, fn func(args []value.Value) (value.Value, error)) value.HostFn {
	return value.HostFn{Name: name, Impl: &Func{Params: params, Impl: fn}}
}

func argStr(args []value.Value, i int, op string) (*value.String, error) {
	s, ok := args[i].(*value.String)
	if !ok {
		return nil, diag.Errorf("%s expects string value", op)
	}
	return s, nil
}

func argInt(args []value.Value, i int, op string) (value.Int64, error) {
	n, ok := args[i].(value.Int64)
	if !ok {
		return 0, diag.Errorf("%s expects int64 value", op)
	}
	return n, nil
}
