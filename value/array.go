package value

// Array is a growable, 0-based, mutated-in-place sequence of Value.
type Array struct {
	elems []Value
}

// NewArray returns an array of the given length, every slot initialized
// to Undef{}.
func NewArray(length int64) *Array {
	elems := make([]Value, length)
	for i := range elems {
		elems[i] = Undef{}
	}
	return &Array{elems: elems}
}

// NewArrayCap returns a zero-length array with room for capacity elements
// before the backing slice needs to grow.
func NewArrayCap(capacity int64) *Array {
	return &Array{elems: make([]Value, 0, capacity)}
}

func (a *Array) Tag() Tag { return ARRAY }

func (a *Array) String() string {
	s := "["
	for i, v := range a.elems {
		if i > 0 {
			s += ", "
		}
		s += v.String()
	}
	return s + "]"
}

// Equal is identity equality, like Object — two distinct arrays with equal
// contents are not equal.
func (a *Array) Equal(o Value) bool {
	oa, ok := o.(*Array)
	return ok && a == oa
}

// Length returns the number of elements.
func (a *Array) Length() int64 {
	return int64(len(a.elems))
}

// GetElem returns the element at i and whether i was in range.
func (a *Array) GetElem(i int64) (Value, bool) {
	if i < 0 || i >= int64(len(a.elems)) {
		return nil, false
	}
	return a.elems[i], true
}

// SetElem mutates the element at i in place, returning false if i is out
// of range.
func (a *Array) SetElem(i int64, v Value) bool {
	if i < 0 || i >= int64(len(a.elems)) {
		return false
	}
	a.elems[i] = v
	return true
}

// Push appends v, growing the backing slice as needed.
func (a *Array) Push(v Value) {
	a.elems = append(a.elems, v)
}
