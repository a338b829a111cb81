package diag

import (
	"fmt"

	"zimvm/value"
)

// src_pos field names, by convention of the instruction object format.
const (
	FieldSrcName = "src_name"
	FieldLineNo  = "line_no"
	FieldColNo   = "col_no"
)

// FormatSrcPos renders an instruction's optional src_pos field as
// "<src_name>@<line_no>:<col_no>", per §6. ok is false if srcPos is nil or
// missing any of its three fields.
func FormatSrcPos(srcPos *value.Object) (string, bool) {
	if srcPos == nil {
		return "", false
	}
	nameV, ok := srcPos.GetField(FieldSrcName, nil)
	if !ok {
		return "", false
	}
	name, ok := nameV.(*value.String)
	if !ok {
		return "", false
	}
	lineV, ok := srcPos.GetField(FieldLineNo, nil)
	if !ok {
		return "", false
	}
	line, ok := lineV.(value.Int64)
	if !ok {
		return "", false
	}
	colV, ok := srcPos.GetField(FieldColNo, nil)
	if !ok {
		return "", false
	}
	col, ok := colV.(value.Int64)
	if !ok {
		return "", false
	}
	return fmt.Sprintf("%s@%d:%d", name.String(), int64(line), int64(col)), true
}

// WithSrcPos prepends a formatted src_pos (when present) to msg, separated
// by " - ", for messages that must carry call-site information (e.g.
// argument-count mismatches at a CALL instruction).
func WithSrcPos(srcPos *value.Object, msg string) string {
	if pos, ok := FormatSrcPos(srcPos); ok {
		return pos + " - " + msg
	}
	return msg
}
