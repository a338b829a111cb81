package value

// Object is a mapping from field-name to Value with stable slot indices
// that are discoverable once and reused by callers holding a hint — this
// is what lets cache.FieldSite skip the name lookup on a hit.
//
// Instruction, block, function and package values in a loaded program are
// all plain *Object instances; the interpreter and loader distinguish them
// only by which field names they expect to find ("op", "instrs", "entry",
// and so on — see image/fields.go).
type Object struct {
	names  []string
	values []Value
	index  map[string]int
}

// NewObject returns an empty object with room for capacity fields before
// its backing slices need to grow. capacity is a hint, not a limit.
func NewObject(capacity int64) *Object {
	if capacity < 0 {
		capacity = 0
	}
	return &Object{
		names:  make([]string, 0, capacity),
		values: make([]Value, 0, capacity),
		index:  make(map[string]int, capacity),
	}
}

func (o *Object) Tag() Tag       { return OBJECT }
func (o *Object) String() string { return "<object>" }

// Equal is identity equality.
func (o *Object) Equal(other Value) bool {
	oo, ok := other.(*Object)
	return ok && o == oo
}

// HasField reports whether name is defined on o.
func (o *Object) HasField(name string) bool {
	_, ok := o.index[name]
	return ok
}

// GetField resolves name using slotHint as a fast-path guess: if *slotHint
// is a valid index whose stored name matches, the value is returned
// without touching the name index. On a miss (stale or zero-value hint) it
// resolves by name and writes the resolved slot back into *slotHint, so a
// cache shared across differently-shaped objects self-corrects instead of
// returning the wrong field.
func (o *Object) GetField(name string, slotHint *int) (Value, bool) {
	if slotHint != nil {
		if idx := *slotHint; idx >= 0 && idx < len(o.names) && o.names[idx] == name {
			return o.values[idx], true
		}
	}
	idx, ok := o.index[name]
	if !ok {
		return nil, false
	}
	if slotHint != nil {
		*slotHint = idx
	}
	return o.values[idx], true
}

// SetField assigns name to val, creating a new field (and a new slot) if
// name was not already defined.
func (o *Object) SetField(name string, val Value) {
	if idx, ok := o.index[name]; ok {
		o.values[idx] = val
		return
	}
	idx := len(o.names)
	o.names = append(o.names, name)
	o.values = append(o.values, val)
	o.index[name] = idx
}
