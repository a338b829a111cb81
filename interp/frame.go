package interp

import (
	"zimvm/diag"
	"zimvm/value"
)

// frame owns the state of one call: its locals vector, its operand stack,
// and the current block's instruction array together with the
// next-instruction index. Frames live exactly for the duration of their
// call — recursive calls each get their own, via the Go call stack.
type frame struct {
	locals []value.Value
	stack  []value.Value
	instrs *value.Array
	ip     int
}

func newFrame(locals []value.Value, entryInstrs *value.Array) *frame {
	return &frame{locals: locals, instrs: entryInstrs}
}

func (f *frame) push(v value.Value) {
	f.stack = append(f.stack, v)
}

func (f *frame) pop(op string) (value.Value, error) {
	if len(f.stack) == 0 {
		return nil, diag.Errorf("%s cannot pop value, stack empty", op)
	}
	v := f.stack[len(f.stack)-1]
	f.stack = f.stack[:len(f.stack)-1]
	return v, nil
}

func (f *frame) peek(idx int) (value.Value, error) {
	i := len(f.stack) - 1 - idx
	if i < 0 {
		return nil, diag.Errorf("stack underflow, invalid index for dup")
	}
	return f.stack[i], nil
}

func (f *frame) popInt(op string) (value.Int64, error) {
	v, err := f.pop(op)
	if err != nil {
		return 0, err
	}
	i, ok := v.(value.Int64)
	if !ok {
		return 0, diag.Errorf("%s expects int64 value", op)
	}
	return i, nil
}

func (f *frame) popStr(op string) (*value.String, error) {
	v, err := f.pop(op)
	if err != nil {
		return nil, err
	}
	s, ok := v.(*value.String)
	if !ok {
		return nil, diag.Errorf("%s expects string value", op)
	}
	return s, nil
}

func (f *frame) popObj(op string) (*value.Object, error) {
	v, err := f.pop(op)
	if err != nil {
		return nil, err
	}
	o, ok := v.(*value.Object)
	if !ok {
		return nil, diag.Errorf("%s expects object value", op)
	}
	return o, nil
}

func (f *frame) popArr(op string) (*value.Array, error) {
	v, err := f.pop(op)
	if err != nil {
		return nil, err
	}
	a, ok := v.(*value.Array)
	if !ok {
		return nil, diag.Errorf("%s expects array value", op)
	}
	return a, nil
}

func (f *frame) popBool(op string) (value.Bool, error) {
	v, err := f.pop(op)
	if err != nil {
		return false, err
	}
	b, ok := v.(value.Bool)
	if !ok {
		return false, diag.Errorf("%s expects bool value", op)
	}
	return b, nil
}
