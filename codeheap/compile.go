package codeheap

import (
	"zimvm/diag"
	"zimvm/opcode"
	"zimvm/value"
)

// word layout: one opcode byte, followed by any inline operands. PUSH's
// inline operand is a one-byte tag followed by an 8-byte little-endian
// payload (enough to carry UNDEF, BOOL, and INT64 literals — the only
// PUSH literals this path compiles; see Compile's Status note).
const (
	tagUndef byte = 0
	tagBool  byte = 1
	tagInt64 byte = 2
)

var decoder = opcode.NewDecoder()

// Compile translates block's instructions into the heap and returns the
// start and end offsets of the emitted bytes, or an error naming the first
// unhandled opcode encountered.
// Coverage is PUSH/RET only — every other opcode fails with "unhandled
// opcode in basic block <op>", which is the status this path is
// specified to legitimately ship in (§4.4 Status): the tree-walking
// interp package is what runs every program to completion.
func Compile(heap *Heap, instrs *value.Array) (startPtr, endPtr int, err error) {
	start, err := heap.Alloc(0)
	if err != nil {
		return 0, 0, err
	}

	for i := int64(0); i < instrs.Length(); i++ {
		v, _ := instrs.GetElem(i)
		instr, ok := v.(*value.Object)
		if !ok {
			return 0, 0, diag.Errorf("instruction slot expects object value")
		}
		op, err := decoder.Decode(instr)
		if err != nil {
			return 0, 0, err
		}

		switch op {
		case opcode.PUSH:
			if err := compilePush(heap, instr); err != nil {
				return 0, 0, err
			}
		case opcode.RET:
			off, err := heap.Alloc(1)
			if err != nil {
				return 0, 0, err
			}
			heap.WriteByte(off, byte(opcode.RET))
		default:
			return 0, 0, diag.Errorf("unhandled opcode in basic block %s", op)
		}
	}

	return start, heap.AllocPtr(), nil
}

func compilePush(heap *Heap, instr *value.Object) error {
	val, ok := instr.GetField("val", nil)
	if !ok {
		val = value.Undef{}
	}

	off, err := heap.Alloc(1 + 1 + 8)
	if err != nil {
		return err
	}
	heap.WriteByte(off, byte(opcode.PUSH))

	switch v := val.(type) {
	case value.Undef:
		heap.WriteByte(off+1, tagUndef)
		heap.WriteInt64(off+2, 0)
	case value.Bool:
		heap.WriteByte(off+1, tagBool)
		if v {
			heap.WriteInt64(off+2, 1)
		} else {
			heap.WriteInt64(off+2, 0)
		}
	case value.Int64:
		heap.WriteByte(off+1, tagInt64)
		heap.WriteInt64(off+2, int64(v))
	default:
		return diag.Errorf("unhandled opcode in basic block push")
	}
	return nil
}
