package interp

import (
	"fmt"

	"zimvm/diag"
	"zimvm/value"
)

// execCall implements the CALL instruction: pop the callee, then pop
// num_args arguments (each popped value lands at argVector[numArgs-1-i],
// undoing the stack's reversal so locals[0..N-1] end up equal to the
// args in left-to-right push order), dispatch to a function or a host
// function, push the result, then branch to ret_to.
func (it *Interpreter) execCall(f *frame, instr *value.Object) (value.Value, bool, error) {
	numArgsV, err := it.numArgsField.GetInt64(instr)
	if err != nil {
		return nil, false, err
	}
	numArgs := int64(numArgsV)
	srcPos, _ := it.srcPosField.GetObj(instr)

	callee, err := f.pop("call")
	if err != nil {
		return nil, false, err
	}

	args := make([]value.Value, numArgs)
	for i := int64(0); i < numArgs; i++ {
		v, err := f.pop("call")
		if err != nil {
			return nil, false, err
		}
		args[numArgs-1-i] = v
	}

	var result value.Value
	switch c := callee.(type) {
	case *value.Object:
		result, err = it.callFunction(c, args, srcPos)
	case value.HostFn:
		result, err = it.callHost(c, args, srcPos)
	default:
		return nil, false, diag.Errorf("invalid callee in call")
	}
	if err != nil {
		return nil, false, err
	}
	f.push(result)

	retTo, err := it.retToField.GetObj(instr)
	if err != nil {
		return nil, false, err
	}
	if err := it.branchTo(f, retTo); err != nil {
		return nil, false, err
	}
	return nil, false, nil
}

// callFunction re-enters the interpreter for a function object, sizing a
// fresh frame's locals to num_locals and seating args in slots
// 0..num_params-1.
func (it *Interpreter) callFunction(fn *value.Object, args []value.Value, srcPos *value.Object) (value.Value, error) {
	numParams, err := it.numParams.GetInt64(fn)
	if err != nil {
		return nil, err
	}
	numLocals, err := it.numLocals.GetInt64(fn)
	if err != nil {
		return nil, err
	}
	if int64(len(args)) != int64(numParams) {
		return nil, diag.Errorf("%s", diag.WithSrcPos(srcPos,
			errArgCount(len(args), int64(numParams))))
	}
	name := it.describeFunction(fn)
	it.Tracer.Call(name, len(args))
	entry, err := it.entry.GetObj(fn)
	if err != nil {
		return nil, err
	}
	entryInstrs, err := it.instrs.GetArr(entry)
	if err != nil {
		return nil, err
	}
	if entryInstrs.Length() == 0 {
		return nil, diag.Errorf("target basic block is empty")
	}

	locals := make([]value.Value, numLocals)
	for i := range locals {
		locals[i] = value.Undef{}
	}
	copy(locals, args)

	result, err := it.runFrame(newFrame(locals, entryInstrs))
	if err == nil {
		it.Tracer.Return(name, result.String())
	}
	return result, err
}

// callHost dispatches to a host function's fixed-arity call0..call3,
// picked by the number of arguments actually supplied. Arities of four or
// more are a protocol violation the call0..call3 dispatch cannot express;
// that is an assertion-class failure, not a recoverable one.
func (it *Interpreter) callHost(fn value.HostFn, args []value.Value, srcPos *value.Object) (value.Value, error) {
	numParams := fn.NumParams()
	if len(args) != numParams {
		return nil, diag.Errorf("%s", diag.WithSrcPos(srcPos,
			errArgCount(len(args), int64(numParams))))
	}
	it.Tracer.Call(fn.Name, len(args))
	switch len(args) {
	case 0:
		return fn.Impl.Call0()
	case 1:
		return fn.Impl.Call1(args[0])
	case 2:
		return fn.Impl.Call2(args[0], args[1])
	case 3:
		return fn.Impl.Call3(args[0], args[1], args[2])
	default:
		panic("host call arity >= 4 is not representable by call0..call3")
	}
}

func errArgCount(got int, want int64) string {
	return fmt.Sprintf("incorrect argument count in call, received %d, expected %d", got, want)
}
