package image

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"zimvm/value"
)

// A .zim file is a YAML document naming a package's blocks and its
// exported functions. Blocks are named so functions and branch
// instructions can refer to them before the whole file has been read;
// Load resolves every reference into a real *value.Object pointer before
// returning, so the interpreter only ever sees the object graph, never a
// block name. Grounded on barn/conformance/loader.go's use of
// gopkg.in/yaml.v3 to decode structured test fixtures.
type rawImage struct {
	Package   string               `yaml:"package"`
	Blocks    map[string]rawBlock  `yaml:"blocks"`
	Functions map[string]rawFunc   `yaml:"functions"`
}

type rawBlock struct {
	Name   string     `yaml:"name"`
	Instrs []rawInstr `yaml:"instrs"`
}

type rawFunc struct {
	NumParams int64  `yaml:"num_params"`
	NumLocals int64  `yaml:"num_locals"`
	Entry     string `yaml:"entry"`
}

type rawInstr struct {
	Op       string   `yaml:"op"`
	Val      any      `yaml:"val,omitempty"`
	Idx      *int64   `yaml:"idx,omitempty"`
	To       string   `yaml:"to,omitempty"`
	Then     string   `yaml:"then,omitempty"`
	Else     string   `yaml:"else,omitempty"`
	RetTo    string   `yaml:"ret_to,omitempty"`
	NumArgs  *int64   `yaml:"num_args,omitempty"`
	Tag      string   `yaml:"tag,omitempty"`
	SrcPos   *rawPos  `yaml:"src_pos,omitempty"`
}

type rawPos struct {
	SrcName string `yaml:"src_name"`
	LineNo  int64  `yaml:"line_no"`
	ColNo   int64  `yaml:"col_no"`
}

// Load reads path and returns the package object it describes.
func Load(path string) (*value.Object, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("image: %w", err)
	}
	return LoadBytes(data)
}

// LoadBytes parses a .zim document already read into memory.
func LoadBytes(data []byte) (*value.Object, error) {
	var raw rawImage
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("image: parse: %w", err)
	}

	blocks := make(map[string]*value.Object, len(raw.Blocks))
	for name := range raw.Blocks {
		blocks[name] = value.NewObject(2)
	}
	for name, rb := range raw.Blocks {
		instrs := value.NewArrayCap(int64(len(rb.Instrs)))
		for _, ri := range rb.Instrs {
			instr, err := buildInstr(ri, blocks)
			if err != nil {
				return nil, fmt.Errorf("image: block %s: %w", name, err)
			}
			instrs.Push(instr)
		}
		blk := blocks[name]
		blk.SetField(FieldInstrs, instrs)
		blk.SetField(FieldName, value.NewString(rb.Name))
	}

	pkg := value.NewObject(int64(len(raw.Functions)))
	for name, rf := range raw.Functions {
		entry, ok := blocks[rf.Entry]
		if !ok {
			return nil, fmt.Errorf("image: function %s: unknown entry block %q", name, rf.Entry)
		}
		fn := value.NewObject(3)
		fn.SetField(FieldNumParams, value.Int64(rf.NumParams))
		fn.SetField(FieldNumLocals, value.Int64(rf.NumLocals))
		fn.SetField(FieldEntry, entry)
		pkg.SetField(name, fn)
	}

	return pkg, nil
}

func buildInstr(ri rawInstr, blocks map[string]*value.Object) (*value.Object, error) {
	instr := value.NewObject(4)
	instr.SetField(FieldOp, value.NewString(ri.Op))

	if ri.Val != nil {
		v, err := literalValue(ri.Val)
		if err != nil {
			return nil, err
		}
		instr.SetField(FieldVal, v)
	}
	if ri.Idx != nil {
		instr.SetField(FieldIdx, value.Int64(*ri.Idx))
	}
	if ri.NumArgs != nil {
		instr.SetField(FieldNumArgs, value.Int64(*ri.NumArgs))
	}
	if ri.Tag != "" {
		instr.SetField(FieldTagName, value.NewString(ri.Tag))
	}
	if ri.To != "" {
		blk, ok := blocks[ri.To]
		if !ok {
			return nil, fmt.Errorf("unknown block %q in to", ri.To)
		}
		instr.SetField(FieldTo, blk)
	}
	if ri.Then != "" {
		blk, ok := blocks[ri.Then]
		if !ok {
			return nil, fmt.Errorf("unknown block %q in then", ri.Then)
		}
		instr.SetField(FieldThen, blk)
	}
	if ri.Else != "" {
		blk, ok := blocks[ri.Else]
		if !ok {
			return nil, fmt.Errorf("unknown block %q in else", ri.Else)
		}
		instr.SetField(FieldElse, blk)
	}
	if ri.RetTo != "" {
		blk, ok := blocks[ri.RetTo]
		if !ok {
			return nil, fmt.Errorf("unknown block %q in ret_to", ri.RetTo)
		}
		instr.SetField(FieldRetTo, blk)
	}
	if ri.SrcPos != nil {
		pos := value.NewObject(3)
		pos.SetField("src_name", value.NewString(ri.SrcPos.SrcName))
		pos.SetField("line_no", value.Int64(ri.SrcPos.LineNo))
		pos.SetField("col_no", value.Int64(ri.SrcPos.ColNo))
		instr.SetField(FieldSrcPos, pos)
	}

	return instr, nil
}

// literalValue converts a YAML-decoded scalar (bool, int, string, or nil)
// into the Value it represents as a PUSH operand.
func literalValue(v any) (value.Value, error) {
	switch t := v.(type) {
	case bool:
		return value.Bool(t), nil
	case int:
		return value.Int64(t), nil
	case int64:
		return value.Int64(t), nil
	case string:
		return value.NewString(t), nil
	case nil:
		return value.Undef{}, nil
	default:
		return nil, fmt.Errorf("unsupported literal %v (%T)", v, v)
	}
}
