package syntax

import "fmt"

// Pos is a location in the source text.
// The zero value is an invalid position.
type Pos struct {
	filename string
	offset   int    // 0-based byte offset from the start of the input
	line     uint32 // 1-based
	col      uint32 // 1-based, counted in characters
}

// NewPos returns a position for the given file, byte offset, line and column.
func NewPos(filename string, offset int, line, col uint32) Pos {
	return Pos{filename: filename, offset: offset, line: line, col: col}
}

// String formats the position as "file:line:col", or "line:col" when the
// position carries no file name.
func (p Pos) String() string {
	if !p.IsValid() {
		return "-"
	}
	if p.filename != "" {
		return fmt.Sprintf("%s:%d:%d", p.filename, p.line, p.col)
	}
	return fmt.Sprintf("%d:%d", p.line, p.col)
}

// IsValid reports whether p refers to an actual source location.
func (p Pos) IsValid() bool { return p.line > 0 }

func (p Pos) Filename() string { return p.filename }
func (p Pos) Offset() int      { return p.offset }
func (p Pos) Line() uint32     { return p.line }
func (p Pos) Col() uint32      { return p.col }
