package codeheap

import (
	"zimvm/diag"
	"zimvm/opcode"
	"zimvm/value"
)

var errStackLimit = diag.Errorf("code heap value stack limit exceeded")

// Executor owns the process-wide code heap, value stack and block
// version table for the secondary execution path. It is non-reentrant:
// a second top-level Call before the first returns is undefined, per
// §5.
type Executor struct {
	Heap     *Heap
	Stack    *ValueStack
	Versions *VersionTable
}

// NewExecutor returns an executor with a freshly allocated heap and
// stack.
func NewExecutor() *Executor {
	return &Executor{
		Heap:     NewHeap(),
		Stack:    NewValueStack(),
		Versions: NewVersionTable(),
	}
}

// getBlockVersion returns block's compiled version, compiling it on
// first reference.
func (e *Executor) getBlockVersion(block *value.Object) (*BlockVersion, error) {
	if v, ok := e.Versions.Get(block); ok {
		return v, nil
	}
	instrsV, ok := block.GetField("instrs", nil)
	if !ok {
		return nil, diag.Errorf("missing field instrs")
	}
	instrs, ok := instrsV.(*value.Array)
	if !ok {
		return nil, diag.Errorf("field instrs expects array value")
	}
	start, end, err := Compile(e.Heap, instrs)
	if err != nil {
		return nil, err
	}
	v := &BlockVersion{StartPtr: start, EndPtr: end, Source: block}
	e.Versions.Set(block, v)
	return v, nil
}

// Call implements the top-level call entry protocol of §4.4: the caller
// must be at the bottom of the stack; a placeholder caller word and a
// RETADDR return-address word are pushed; basePtr anchors the new
// frame; num_locals slots are reserved; args are copied into the
// reserved locals, argument i into local i; the entry block is compiled (or fetched) and
// run. On return the frame is torn down and the bottom-of-stack
// invariant is re-asserted.
func (e *Executor) Call(fn *value.Object, args []value.Value) (value.Value, error) {
	if !e.Stack.AtBottom() {
		return nil, diag.Errorf("code heap executor is not reentrant, stack not at bottom")
	}

	numParamsV, ok := fn.GetField("num_params", nil)
	if !ok {
		return nil, diag.Errorf("missing field num_params")
	}
	numParams, ok := numParamsV.(value.Int64)
	if !ok {
		return nil, diag.Errorf("field num_params expects int64 value")
	}
	if int64(len(args)) != int64(numParams) {
		return nil, diag.Errorf("incorrect argument count in call, received %d, expected %d", len(args), numParams)
	}
	numLocalsV, ok := fn.GetField("num_locals", nil)
	if !ok {
		return nil, diag.Errorf("missing field num_locals")
	}
	numLocals, ok := numLocalsV.(value.Int64)
	if !ok {
		return nil, diag.Errorf("field num_locals expects int64 value")
	}
	entryV, ok := fn.GetField("entry", nil)
	if !ok {
		return nil, diag.Errorf("missing field entry")
	}
	entry, ok := entryV.(*value.Object)
	if !ok {
		return nil, diag.Errorf("field entry expects object value")
	}

	e.Stack.Push(value.Int64(0))   // placeholder caller
	e.Stack.Push(value.RetAddr{})  // return address
	e.Stack.SetBasePtr(e.Stack.StackPtr() - 1)

	if err := e.Stack.Reserve(int(numLocals)); err != nil {
		e.Stack.Pop() // return address
		e.Stack.Pop() // caller placeholder
		return nil, err
	}
	// Locals occupy the numLocals slots just reserved, in ascending
	// index order (local 0 is the slot furthest from basePtr).
	baseLocal := e.Stack.BasePtr() - int(numLocals) + 1
	for i, a := range args {
		e.Stack.SetAt(baseLocal+i, a)
	}

	var result value.Value
	version, err := e.getBlockVersion(entry)
	if err == nil {
		result, err = e.execute(version)
	}

	// tear down: pop locals, caller placeholder, and return address
	for i := 0; i < int(numLocals)+2; i++ {
		e.Stack.Pop()
	}
	if !e.Stack.AtBottom() {
		panic("code heap executor: stack not at bottom after call")
	}
	return result, err
}

// execute runs the compiled bytes of version starting at StartPtr until
// a RET word is reached.
func (e *Executor) execute(version *BlockVersion) (value.Value, error) {
	ip := version.StartPtr
	for {
		if ip >= version.EndPtr {
			return nil, diag.Errorf("ran off the end of a compiled basic block")
		}
		op := opcode.Op(e.Heap.ReadByte(ip))
		ip++
		switch op {
		case opcode.PUSH:
			tag := e.Heap.ReadByte(ip)
			payload := e.Heap.ReadInt64(ip + 1)
			ip += 9
			switch tag {
			case tagUndef:
				e.Stack.Push(value.Undef{})
			case tagBool:
				e.Stack.Push(value.Bool(payload != 0))
			case tagInt64:
				e.Stack.Push(value.Int64(payload))
			default:
				panic("code heap executor: unknown push tag")
			}
		case opcode.RET:
			return e.Stack.Pop(), nil
		default:
			panic("code heap executor: unhandled opcode in compiled block")
		}
	}
}
