package diag

import (
	"fmt"
	"io"
	"os"

	"zimvm/value"
)

// Abort implements the ABORT opcode's termination behavior: print a
// single line to w, "<src_pos> - " prefixed when the instruction
// carries a source position, followed by "aborting execution due to
// error: <msg>" (or just "aborting execution due to error" when msg is
// empty), then exit the process with status -1. It never returns.
func Abort(w io.Writer, srcPos *value.Object, msg string) {
	line := ""
	if pos, ok := FormatSrcPos(srcPos); ok {
		line += pos + " - "
	}
	if msg != "" {
		line += "aborting execution due to error: " + msg
	} else {
		line += "aborting execution due to error"
	}
	fmt.Fprintln(w, line)
	os.Exit(-1)
}
