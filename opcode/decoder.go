package opcode

import (
	"zimvm/diag"
	"zimvm/value"
)

// opField is the instruction field the decoder reads the opcode string
// from.
const opField = "op"

// Decoder memoizes instruction-object identity to a decoded Op. Decoding
// is pure over immutable instructions, so the cache is safe without
// invalidation for the lifetime of the process that built it.
type Decoder struct {
	cache map[*value.Object]Op
}

// NewDecoder returns an empty decoder.
func NewDecoder() *Decoder {
	return &Decoder{cache: make(map[*value.Object]Op)}
}

// Decode returns instr's opcode, resolving and caching it on first use.
func (d *Decoder) Decode(instr *value.Object) (Op, error) {
	if op, ok := d.cache[instr]; ok {
		return op, nil
	}

	opV, ok := instr.GetField(opField, nil)
	if !ok {
		return 0, diag.Errorf("missing field %s", opField)
	}
	opStr, ok := opV.(*value.String)
	if !ok {
		return 0, diag.Errorf("field %s expects string value", opField)
	}

	op, ok := fromString[opStr.String()]
	if !ok {
		return 0, diag.Errorf("unknown op in decode %s", opStr.String())
	}

	d.cache[instr] = op
	return op, nil
}
