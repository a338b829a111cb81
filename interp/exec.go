package interp

import (
	"os"

	"zimvm/diag"
	"zimvm/image"
	"zimvm/opcode"
	"zimvm/value"
)

// abortWriter is where ABORT prints its diagnostic before exiting.
var abortWriter = os.Stdout

// branchTo switches f onto target's instruction array, provided the
// just-executed instruction was the last one in the current block. This
// single check, performed before every block switch, is what surfaces
// "only the last instruction in a block can be a branch" for any
// JUMP/IF_TRUE/CALL that is not actually last: once such an instruction
// has executed, f.ip no longer equals len(f.instrs), and this call fails
// before the interpreter ever gets to interpret an instruction past it.
func (it *Interpreter) branchTo(f *frame, target *value.Object) error {
	if int64(f.ip) != f.instrs.Length() {
		return diag.Errorf("only the last instruction in a block can be a branch")
	}
	instrsV, err := it.instrs.GetArr(target)
	if err != nil {
		return err
	}
	if instrsV.Length() == 0 {
		return diag.Errorf("target basic block is empty")
	}
	f.instrs = instrsV
	f.ip = 0
	return nil
}

// runFrame executes f's current block and every block reached by
// branching, until a RET instruction returns a value out of the call.
func (it *Interpreter) runFrame(f *frame) (value.Value, error) {
	for {
		if int64(f.ip) >= f.instrs.Length() {
			return nil, diag.Errorf("ran off the end of a basic block")
		}
		instrV, _ := f.instrs.GetElem(int64(f.ip))
		instr, ok := instrV.(*value.Object)
		if !ok {
			return nil, diag.Errorf("instruction slot expects object value")
		}
		op, err := it.decoder.Decode(instr)
		if err != nil {
			return nil, err
		}
		f.ip++

		ret, done, err := it.step(f, instr, op)
		if err != nil {
			return nil, err
		}
		if done {
			return ret, nil
		}
	}
}

// step executes one decoded instruction against f. done is true only for
// RET, at which point ret is the function's return value.
func (it *Interpreter) step(f *frame, instr *value.Object, op opcode.Op) (ret value.Value, done bool, err error) {
	switch op {
	case opcode.GET_LOCAL:
		idx, err := it.idxField.GetInt64(instr)
		if err != nil {
			return nil, false, err
		}
		if int(idx) < 0 || int(idx) >= len(f.locals) {
			return nil, false, diag.Errorf("get_local index out of range")
		}
		f.push(f.locals[idx])

	case opcode.SET_LOCAL:
		idx, err := it.idxField.GetInt64(instr)
		if err != nil {
			return nil, false, err
		}
		v, err := f.pop("set_local")
		if err != nil {
			return nil, false, err
		}
		if int(idx) < 0 || int(idx) >= len(f.locals) {
			return nil, false, diag.Errorf("set_local index out of range")
		}
		f.locals[idx] = v

	case opcode.PUSH:
		v, ok := it.valField.Get(instr)
		if !ok {
			v = value.Undef{}
		}
		f.push(v)

	case opcode.POP:
		if _, err := f.pop("pop"); err != nil {
			return nil, false, err
		}

	case opcode.DUP:
		idx, err := it.idxField.GetInt64(instr)
		if err != nil {
			return nil, false, err
		}
		v, err := f.peek(int(idx))
		if err != nil {
			return nil, false, err
		}
		f.push(v)

	case opcode.SWAP:
		a, err := f.pop("swap")
		if err != nil {
			return nil, false, err
		}
		b, err := f.pop("swap")
		if err != nil {
			return nil, false, err
		}
		f.push(a)
		f.push(b)

	case opcode.ADD_I64:
		b, a, err := f.popTwoInt("add_i64")
		if err != nil {
			return nil, false, err
		}
		f.push(a + b)

	case opcode.SUB_I64:
		b, a, err := f.popTwoInt("sub_i64")
		if err != nil {
			return nil, false, err
		}
		f.push(a - b)

	case opcode.MUL_I64:
		b, a, err := f.popTwoInt("mul_i64")
		if err != nil {
			return nil, false, err
		}
		f.push(a * b)

	case opcode.LT_I64:
		b, a, err := f.popTwoInt("lt_i64")
		if err != nil {
			return nil, false, err
		}
		f.push(value.Bool(a < b))

	case opcode.LE_I64:
		b, a, err := f.popTwoInt("le_i64")
		if err != nil {
			return nil, false, err
		}
		f.push(value.Bool(a <= b))

	case opcode.GT_I64:
		b, a, err := f.popTwoInt("gt_i64")
		if err != nil {
			return nil, false, err
		}
		f.push(value.Bool(a > b))

	case opcode.GE_I64:
		b, a, err := f.popTwoInt("ge_i64")
		if err != nil {
			return nil, false, err
		}
		f.push(value.Bool(a >= b))

	case opcode.EQ_I64:
		b, a, err := f.popTwoInt("eq_i64")
		if err != nil {
			return nil, false, err
		}
		f.push(value.Bool(a == b))

	case opcode.STR_LEN:
		s, err := f.popStr("str_len")
		if err != nil {
			return nil, false, err
		}
		f.push(value.Int64(s.Length()))

	case opcode.GET_CHAR:
		i, err := f.popInt("get_char")
		if err != nil {
			return nil, false, err
		}
		s, err := f.popStr("get_char")
		if err != nil {
			return nil, false, err
		}
		b, ok := s.ByteAt(int64(i))
		if !ok {
			return nil, false, diag.Errorf("get_char index out of bounds")
		}
		f.push(it.chars.Get(b))

	case opcode.GET_CHAR_CODE:
		i, err := f.popInt("get_char_code")
		if err != nil {
			return nil, false, err
		}
		s, err := f.popStr("get_char_code")
		if err != nil {
			return nil, false, err
		}
		b, ok := s.ByteAt(int64(i))
		if !ok {
			return nil, false, diag.Errorf("get_char_code index out of bounds")
		}
		f.push(value.Int64(b))

	case opcode.STR_CAT:
		rhs, err := f.popStr("str_cat")
		if err != nil {
			return nil, false, err
		}
		lhs, err := f.popStr("str_cat")
		if err != nil {
			return nil, false, err
		}
		f.push(value.Concat(lhs, rhs))

	case opcode.EQ_STR:
		b, err := f.popStr("eq_str")
		if err != nil {
			return nil, false, err
		}
		a, err := f.popStr("eq_str")
		if err != nil {
			return nil, false, err
		}
		f.push(value.Bool(a.Equal(b)))

	case opcode.NEW_OBJECT:
		cap, err := f.popInt("new_object")
		if err != nil {
			return nil, false, err
		}
		f.push(value.NewObject(int64(cap)))

	case opcode.HAS_FIELD:
		name, err := f.popStr("has_field")
		if err != nil {
			return nil, false, err
		}
		obj, err := f.popObj("has_field")
		if err != nil {
			return nil, false, err
		}
		f.push(value.Bool(obj.HasField(name.String())))

	case opcode.SET_FIELD:
		val, err := f.pop("set_field")
		if err != nil {
			return nil, false, err
		}
		name, err := f.popStr("set_field")
		if err != nil {
			return nil, false, err
		}
		obj, err := f.popObj("set_field")
		if err != nil {
			return nil, false, err
		}
		if !image.IsValidIdent(name.String()) {
			return nil, false, diag.Errorf("set_field: invalid identifier %q", name.String())
		}
		obj.SetField(name.String(), val)

	case opcode.GET_FIELD:
		name, err := f.popStr("get_field")
		if err != nil {
			return nil, false, err
		}
		obj, err := f.popObj("get_field")
		if err != nil {
			return nil, false, err
		}
		site := it.dynSite(instr, name.String())
		v, ok := site.Get(obj)
		if !ok {
			return nil, false, diag.Errorf("get_field failed, missing field %s", name.String())
		}
		f.push(v)

	case opcode.EQ_OBJ:
		b, err := f.pop("eq_obj")
		if err != nil {
			return nil, false, err
		}
		a, err := f.pop("eq_obj")
		if err != nil {
			return nil, false, err
		}
		f.push(value.Bool(a.Equal(b)))

	case opcode.EQ_BOOL:
		b, err := f.popBool("eq_bool")
		if err != nil {
			return nil, false, err
		}
		a, err := f.popBool("eq_bool")
		if err != nil {
			return nil, false, err
		}
		f.push(value.Bool(a == b))

	case opcode.HAS_TAG:
		tagName, err := it.tagField.GetStr(instr)
		if err != nil {
			return nil, false, err
		}
		tag, ok := value.TagFromName(tagName.String())
		if !ok {
			return nil, false, diag.Errorf("unknown tag %q in has_tag", tagName.String())
		}
		v, err := f.pop("has_tag")
		if err != nil {
			return nil, false, err
		}
		f.push(value.Bool(v.Tag() == tag))

	case opcode.NEW_ARRAY:
		n, err := f.popInt("new_array")
		if err != nil {
			return nil, false, err
		}
		f.push(value.NewArray(int64(n)))

	case opcode.ARRAY_LEN:
		a, err := f.popArr("array_len")
		if err != nil {
			return nil, false, err
		}
		f.push(value.Int64(a.Length()))

	case opcode.ARRAY_PUSH:
		v, err := f.pop("array_push")
		if err != nil {
			return nil, false, err
		}
		a, err := f.popArr("array_push")
		if err != nil {
			return nil, false, err
		}
		a.Push(v)

	case opcode.GET_ELEM:
		i, err := f.popInt("get_elem")
		if err != nil {
			return nil, false, err
		}
		a, err := f.popArr("get_elem")
		if err != nil {
			return nil, false, err
		}
		v, ok := a.GetElem(int64(i))
		if !ok {
			return nil, false, diag.Errorf("get_elem index out of bounds")
		}
		f.push(v)

	case opcode.SET_ELEM:
		v, err := f.pop("set_elem")
		if err != nil {
			return nil, false, err
		}
		i, err := f.popInt("set_elem")
		if err != nil {
			return nil, false, err
		}
		a, err := f.popArr("set_elem")
		if err != nil {
			return nil, false, err
		}
		if !a.SetElem(int64(i), v) {
			return nil, false, diag.Errorf("set_elem index out of bounds")
		}

	case opcode.JUMP:
		to, err := it.toField.GetObj(instr)
		if err != nil {
			return nil, false, err
		}
		if err := it.branchTo(f, to); err != nil {
			return nil, false, err
		}

	case opcode.IF_TRUE:
		v, err := f.pop("if_true")
		if err != nil {
			return nil, false, err
		}
		then, err := it.thenField.GetObj(instr)
		if err != nil {
			return nil, false, err
		}
		els, err := it.elseField.GetObj(instr)
		if err != nil {
			return nil, false, err
		}
		target := els
		if b, ok := v.(value.Bool); ok && bool(b) {
			target = then
		}
		if err := it.branchTo(f, target); err != nil {
			return nil, false, err
		}

	case opcode.CALL:
		return it.execCall(f, instr)

	case opcode.RET:
		v, err := f.pop("ret")
		if err != nil {
			return nil, false, err
		}
		if int64(f.ip) != f.instrs.Length() {
			return nil, false, diag.Errorf("only the last instruction in a block can be a branch")
		}
		return v, true, nil

	case opcode.IMPORT:
		name, err := f.popStr("import")
		if err != nil {
			return nil, false, err
		}
		if it.Importer == nil {
			return nil, false, diag.Errorf("import: no importer configured")
		}
		it.Tracer.Import(name.String())
		v, err := it.Importer(name.String())
		if err != nil {
			return nil, false, err
		}
		f.push(v)

	case opcode.ABORT:
		msg, err := f.popStr("abort")
		if err != nil {
			return nil, false, err
		}
		srcPos, _ := it.srcPosField.GetObj(instr)
		diag.Abort(abortWriter, srcPos, msg.String())

	default:
		return nil, false, diag.Errorf("unhandled opcode %s in interpreter", op)
	}

	return nil, false, nil
}

// popTwoInt pops the right-hand (last pushed) operand first, then the
// left-hand one, matching the universal "last pushed is popped first /
// is the right-hand operand" convention.
func (f *frame) popTwoInt(op string) (rhs, lhs value.Int64, err error) {
	rhs, err = f.popInt(op)
	if err != nil {
		return 0, 0, err
	}
	lhs, err = f.popInt(op)
	if err != nil {
		return 0, 0, err
	}
	return rhs, lhs, nil
}
