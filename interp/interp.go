// Package interp implements the tree-walking interpreter of §4.3: a
// stack-based evaluator over instruction-object arrays, recursive on
// calls.
package interp

import (
	"zimvm/cache"
	"zimvm/diag"
	"zimvm/image"
	"zimvm/opcode"
	"zimvm/value"
)

// Interpreter is process-lived state: the opcode decoder, the
// single-character string cache, and the field inline caches the engine
// uses to read its own well-known conventions (a function's num_params,
// num_locals and entry; a block's instrs) plus one inline cache per
// GET_FIELD instruction for user-level field reads. HAS_FIELD and
// SET_FIELD go straight to Object.HasField/SetField without a cache.
// None of these are ever invalidated: the program graph is immutable
// after load.
type Interpreter struct {
	decoder *opcode.Decoder
	chars   cache.CharCache

	numParams *cache.FieldSite
	numLocals *cache.FieldSite
	entry     *cache.FieldSite
	instrs    *cache.FieldSite

	opField      *cache.FieldSite
	valField     *cache.FieldSite
	idxField     *cache.FieldSite
	toField      *cache.FieldSite
	thenField    *cache.FieldSite
	elseField    *cache.FieldSite
	retToField   *cache.FieldSite
	numArgsField *cache.FieldSite
	tagField     *cache.FieldSite
	srcPosField  *cache.FieldSite
	nameField    *cache.FieldSite

	dynSites map[*value.Object]*cache.FieldSite

	// Importer backs the IMPORT opcode. It is nil until a host wires one
	// in (see host.Registry.Import); calling IMPORT before that is a
	// structural error, not a panic.
	Importer func(name string) (value.Value, error)

	// Tracer is optional; a nil Tracer records nothing.
	Tracer *diag.Tracer
}

// New returns an Interpreter with all of its caches freshly initialized.
func New() *Interpreter {
	return &Interpreter{
		decoder:      opcode.NewDecoder(),
		numParams:    cache.NewFieldSite(image.FieldNumParams),
		numLocals:    cache.NewFieldSite(image.FieldNumLocals),
		entry:        cache.NewFieldSite(image.FieldEntry),
		instrs:       cache.NewFieldSite(image.FieldInstrs),
		opField:      cache.NewFieldSite(image.FieldOp),
		valField:     cache.NewFieldSite(image.FieldVal),
		idxField:     cache.NewFieldSite(image.FieldIdx),
		toField:      cache.NewFieldSite(image.FieldTo),
		thenField:    cache.NewFieldSite(image.FieldThen),
		elseField:    cache.NewFieldSite(image.FieldElse),
		retToField:   cache.NewFieldSite(image.FieldRetTo),
		numArgsField: cache.NewFieldSite(image.FieldNumArgs),
		tagField:     cache.NewFieldSite(image.FieldTagName),
		srcPosField:  cache.NewFieldSite(image.FieldSrcPos),
		nameField:    cache.NewFieldSite(image.FieldName),
		dynSites:     make(map[*value.Object]*cache.FieldSite),
	}
}

// dynSite returns the field-access inline cache for a GET_FIELD
// instruction, keyed by that instruction's identity. The field
// name is observed at runtime (it is popped off the stack, not stored on
// the instruction); if a call site is ever seen with a different name than
// last time, its cache is simply replaced — the correctness invariant only
// requires GetField's own slot-hint protocol to tolerate staleness, not
// that the name itself never changes.
func (it *Interpreter) dynSite(instr *value.Object, name string) *cache.FieldSite {
	if s, ok := it.dynSites[instr]; ok && s.Name() == name {
		return s
	}
	s := cache.NewFieldSite(name)
	it.dynSites[instr] = s
	return s
}

// describeFunction returns the entry block's name field for tracing, or
// "<fn>" if the block carries none.
func (it *Interpreter) describeFunction(fn *value.Object) string {
	entry, err := it.entry.GetObj(fn)
	if err != nil {
		return "<fn>"
	}
	name, err := it.nameField.GetStr(entry)
	if err != nil {
		return "<fn>"
	}
	return name.String()
}

// CallExportFn looks up name among pkg's exported fields and calls it with
// args, matching §8's callExportFn(pkg, "main") entry point.
func CallExportFn(it *Interpreter, pkg *value.Object, name string, args []value.Value) (value.Value, error) {
	fnV, ok := pkg.GetField(name, nil)
	if !ok {
		return nil, diag.Errorf("missing field %s", name)
	}
	fn, ok := fnV.(*value.Object)
	if !ok {
		return nil, diag.Errorf("field %s expects object value", name)
	}
	return it.callFunction(fn, args, nil)
}
