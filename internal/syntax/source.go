package syntax

import (
	"fmt"
	"io"
	"unicode/utf8"
)

// source hands out the input one character at a time and keeps track of
// where that character sits in the file.
//
// After nextch returns, (line, col, offs) describe s.ch. s.ch is -1 once the
// input is exhausted.
type source struct {
	filename string
	buf      []byte

	ch    rune
	width int // byte width of ch
	offs  int // byte offset of ch
	line  uint32
	col   uint32
}

// readSource reads src to completion. A read failure is returned before any
// character is handed out.
func readSource(filename string, src io.Reader) (*source, error) {
	buf, err := io.ReadAll(src)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", displayName(filename), err)
	}
	return newSource(filename, buf), nil
}

// newSource positions a source on the first character of buf.
func newSource(filename string, buf []byte) *source {
	s := &source{
		filename: filename,
		buf:      buf,
		ch:       -1,
		line:     1,
	}
	s.load()
	return s
}

// nextch moves to the character after s.ch.
func (s *source) nextch() {
	if s.ch < 0 {
		return
	}
	if s.ch == '\n' {
		s.line++
		s.col = 1
	} else {
		s.col++
	}
	s.offs += s.width
	s.load()
}

// load decodes the character at s.offs. Invalid UTF-8 comes back as
// utf8.RuneError with width 1; the scanner treats it as an invalid character.
func (s *source) load() {
	if s.col == 0 {
		s.col = 1
	}
	if s.offs >= len(s.buf) {
		s.ch = -1
		s.width = 0
		return
	}
	if b := s.buf[s.offs]; b < utf8.RuneSelf {
		s.ch, s.width = rune(b), 1
		return
	}
	s.ch, s.width = utf8.DecodeRune(s.buf[s.offs:])
}

func (s *source) pos() Pos {
	return NewPos(s.filename, s.offs, s.line, s.col)
}

func displayName(filename string) string {
	if filename == "" {
		return "<input>"
	}
	return filename
}

// Character classes

func isLetter(r rune) bool {
	return 'a' <= r && r <= 'z' || 'A' <= r && r <= 'Z' || r == '_'
}

func isDigit(r rune) bool {
	return '0' <= r && r <= '9'
}

// isSpace reports whether r separates tokens. Line breaks are ordinary
// whitespace in this language.
func isSpace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\r' || r == '\n'
}

// isSymbol reports whether r is one of the single-character symbols.
func isSymbol(r rune) bool {
	_, ok := symbols[r]
	return ok
}
