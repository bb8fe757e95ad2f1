package syntax

import (
	"fmt"
	"io"
	"strings"
)

// LexError reports a character the scanner has no transition for.
type LexError struct {
	Pos  Pos
	Char rune
}

func (e *LexError) Error() string {
	return fmt.Sprintf("%s: lexical error: unexpected character %s", e.Pos, quoteChar(e.Char))
}

func quoteChar(r rune) string {
	if r < 0 {
		return "end of input"
	}
	return fmt.Sprintf("%q", r)
}

// state is a state of the scanner's finite state machine.
type state uint8

const (
	stStart  state = iota // between tokens
	stIdent               // inside an identifier or keyword
	stInt                 // inside an integer literal
	stFloat               // inside a literal after its decimal point
	stError               // no transition: fatal
	stAccept              // token complete: emit it and return to stStart

	numStates
)

var stateNames = [...]string{
	stStart:  "Start",
	stIdent:  "ScanningIdentifierOrKeyword",
	stInt:    "ScanningInteger",
	stFloat:  "ScanningFloat",
	stError:  "Error",
	stAccept: "Accepting",
}

func (s state) String() string {
	if s < numStates {
		return stateNames[s]
	}
	return fmt.Sprintf("state(%d)", s)
}

// class is the character class that drives a transition.
type class uint8

const (
	clLetter class = iota // [A-Za-z_]
	clDigit               // [0-9]
	clDot                 // .
	clSpace               // space, tab, \r, \n
	clSymbol              // ( ) { } , ; = + - * /
	clEOF
	clOther

	numClasses
)

func classify(r rune) class {
	switch {
	case r < 0:
		return clEOF
	case isLetter(r):
		return clLetter
	case isDigit(r):
		return clDigit
	case r == '.':
		return clDot
	case isSpace(r):
		return clSpace
	case isSymbol(r):
		return clSymbol
	}
	return clOther
}

// transitions is the scanner's transition table. stStart -> stStart on a
// space skips the character; stStart -> stAccept consumes a symbol (or
// reaches EOF); every other move into stAccept leaves the terminating
// character for the next token.
var transitions = [numStates - 2][numClasses]state{
	stStart: {
		clLetter: stIdent,
		clDigit:  stInt,
		clDot:    stError,
		clSpace:  stStart,
		clSymbol: stAccept,
		clEOF:    stAccept,
		clOther:  stError,
	},
	stIdent: {
		clLetter: stIdent,
		clDigit:  stIdent,
		clDot:    stError,
		clSpace:  stAccept,
		clSymbol: stAccept,
		clEOF:    stAccept,
		clOther:  stError,
	},
	stInt: {
		clLetter: stError,
		clDigit:  stInt,
		clDot:    stFloat,
		clSpace:  stAccept,
		clSymbol: stAccept,
		clEOF:    stAccept,
		clOther:  stError,
	},
	stFloat: {
		clLetter: stError,
		clDigit:  stFloat,
		clDot:    stError,
		clSpace:  stAccept,
		clSymbol: stAccept,
		clEOF:    stAccept,
		clOther:  stError,
	},
}

// Scanner turns source text into items, one per call to Next.
type Scanner struct {
	source

	item Item
	err  error
	lit  strings.Builder
}

// NewScanner returns a scanner over src. The whole of src is read up front;
// a read failure is returned here rather than from Next.
func NewScanner(filename string, src io.Reader) (*Scanner, error) {
	s, err := readSource(filename, src)
	if err != nil {
		return nil, err
	}
	return &Scanner{source: *s}, nil
}

// newScannerBytes returns a scanner over an in-memory buffer.
func newScannerBytes(filename string, buf []byte) *Scanner {
	return &Scanner{source: *newSource(filename, buf)}
}

// Next scans the next item. After an error, or once the _EOF item has been
// produced, Next keeps returning the same result.
func (s *Scanner) Next() (Item, error) {
	if s.err != nil || (s.item.Tok == _EOF && s.item.Pos.IsValid()) {
		return s.item, s.err
	}

	st := stStart
	var start Pos
	for {
		cl := classify(s.ch)
		next := transitions[st][cl]

		switch next {
		case stError:
			s.err = &LexError{Pos: s.pos(), Char: s.ch}
			s.item = Item{}
			return s.item, s.err

		case stAccept:
			s.item = s.accept(st, cl, start)
			return s.item, nil
		}

		if next == stStart {
			s.nextch() // whitespace between tokens
			continue
		}
		if st == stStart {
			start = s.pos()
			s.lit.Reset()
		}
		s.lit.WriteRune(s.ch)
		s.nextch()
		st = next
	}
}

// accept builds the item for a token completed in state st on a character of
// class cl.
func (s *Scanner) accept(st state, cl class, start Pos) Item {
	switch st {
	case stIdent:
		lit := s.lit.String()
		return Item{Tok: LookupKeyword(lit), Lit: lit, Pos: start}
	case stInt:
		return Item{Tok: _IntLit, Lit: s.lit.String(), Pos: start}
	case stFloat:
		return Item{Tok: _FloatLit, Lit: s.lit.String(), Pos: start}
	}

	// stStart: a symbol or the end of input.
	pos := s.pos()
	if cl == clEOF {
		return Item{Tok: _EOF, Pos: pos}
	}
	ch := s.ch
	s.nextch()
	return Item{Tok: symbols[ch], Lit: string(ch), Pos: pos}
}

// Lex runs the scanner over src to completion. The returned items always
// end with an _EOF item. On error no items are returned.
func Lex(filename string, src io.Reader) ([]Item, error) {
	s, err := NewScanner(filename, src)
	if err != nil {
		return nil, err
	}
	return s.all()
}

// LexBytes is like Lex for an in-memory buffer.
func LexBytes(filename string, buf []byte) ([]Item, error) {
	return newScannerBytes(filename, buf).all()
}

func (s *Scanner) all() ([]Item, error) {
	var items []Item
	for {
		it, err := s.Next()
		if err != nil {
			return nil, err
		}
		items = append(items, it)
		if it.Tok == _EOF {
			return items, nil
		}
	}
}
