// Package value implements the tagged dynamic value model the interpreter
// and code-heap executor run against: undef, bool, int64, string, array,
// object, host-fn and return-address words, plus the two mutable heap
// containers (Object, Array) that carry program state and the program
// graph itself (instructions, blocks, functions and packages are all
// *Object values distinguished only by field convention).
package value

import "fmt"

// Value is the interface every runtime word implements. Equality is
// tag-sensitive: two values of different tags are never equal.
type Value interface {
	Tag() Tag
	String() string
	Equal(other Value) bool
}

// Undef is the single undef value. The zero value is ready to use.
type Undef struct{}

func (Undef) Tag() Tag         { return UNDEF }
func (Undef) String() string   { return "undef" }
func (Undef) Equal(o Value) bool {
	_, ok := o.(Undef)
	return ok
}

// Bool is a boolean value.
type Bool bool

const (
	True  Bool = true
	False Bool = false
)

func (b Bool) Tag() Tag       { return BOOL }
func (b Bool) String() string { return fmt.Sprintf("%t", bool(b)) }
func (b Bool) Equal(o Value) bool {
	ob, ok := o.(Bool)
	return ok && b == ob
}

// Int64 is a 64-bit two's-complement integer value.
type Int64 int64

func (i Int64) Tag() Tag       { return INT64 }
func (i Int64) String() string { return fmt.Sprintf("%d", int64(i)) }
func (i Int64) Equal(o Value) bool {
	oi, ok := o.(Int64)
	return ok && i == oi
}

// RetAddr is the code-heap path's return-address word. It carries no
// payload at this stage of the executor — see codeheap.Executor.
type RetAddr struct{}

func (RetAddr) Tag() Tag       { return RETADDR }
func (RetAddr) String() string { return "<retaddr>" }
func (RetAddr) Equal(o Value) bool {
	_, ok := o.(RetAddr)
	return ok
}
