// Package syntax implements the lexical and syntactic analysis of cfront
// source: a finite-state-machine scanner, a recursive descent parser and the
// parse tree printers.
package syntax

import "fmt"

// Token is the category of a lexeme.
type Token uint

const (
	_EOF Token = iota // end of input

	// Names and literals
	_Name     // identifier: foo, x1, _tmp
	_IntLit   // 10
	_FloatLit // 2.0

	// Keywords
	_Return    // return
	_IntType   // int
	_FloatType // float

	// Symbols
	_Lparen // (
	_Rparen // )
	_Lbrace // {
	_Rbrace // }
	_Comma  // ,
	_Semi   // ;
	_Assign // =
	_Add    // +
	_Sub    // -
	_Mul    // *
	_Div    // /

	tokenCount
)

// tokenNames holds the source spelling of each token, used in diagnostics.
var tokenNames = [...]string{
	_EOF: "end of input",

	_Name:     "identifier",
	_IntLit:   "integer literal",
	_FloatLit: "float literal",

	_Return:    "return",
	_IntType:   "int",
	_FloatType: "float",

	_Lparen: "(",
	_Rparen: ")",
	_Lbrace: "{",
	_Rbrace: "}",
	_Comma:  ",",
	_Semi:   ";",
	_Assign: "=",
	_Add:    "+",
	_Sub:    "-",
	_Mul:    "*",
	_Div:    "/",
}

// tokenDebug holds the form printed in the TOKEN column of the token table.
var tokenDebug = [...]string{
	_EOF: "EndOfInput",

	_Name:     "Identifier",
	_IntLit:   "LiteralInt",
	_FloatLit: "LiteralFloat",

	_Return:    "Return",
	_IntType:   "Type(Int)",
	_FloatType: "Type(Float)",

	_Lparen: "Symbol(LeftParen)",
	_Rparen: "Symbol(RightParen)",
	_Lbrace: "Symbol(LeftCurly)",
	_Rbrace: "Symbol(RightCurly)",
	_Comma:  "Symbol(Comma)",
	_Semi:   "Symbol(Semicolon)",
	_Assign: "Symbol(Equal)",
	_Add:    "Symbol(Plus)",
	_Sub:    "Symbol(Minus)",
	_Mul:    "Symbol(Multiply)",
	_Div:    "Symbol(Divide)",
}

func (t Token) String() string {
	if t < tokenCount {
		return tokenNames[t]
	}
	return fmt.Sprintf("token(%d)", t)
}

// Debug returns the token's tagged form, e.g. "Type(Int)" or "Symbol(Plus)".
func (t Token) Debug() string {
	if t < tokenCount {
		return tokenDebug[t]
	}
	return fmt.Sprintf("Token(%d)", t)
}

// IsType reports whether t is a type keyword.
func (t Token) IsType() bool {
	return t == _IntType || t == _FloatType
}

// IsLiteral reports whether t is a numeric literal.
func (t Token) IsLiteral() bool {
	return t == _IntLit || t == _FloatLit
}

// IsSymbol reports whether t is a single-character symbol.
func (t Token) IsSymbol() bool {
	return t >= _Lparen && t <= _Div
}

// IsEOF reports whether t marks the end of input.
func (t Token) IsEOF() bool {
	return t == _EOF
}

// keywords are the reserved words. They never scan as identifiers.
var keywords = map[string]Token{
	"int":    _IntType,
	"float":  _FloatType,
	"return": _Return,
}

// LookupKeyword returns the keyword token for ident, or _Name.
func LookupKeyword(ident string) Token {
	if tok, ok := keywords[ident]; ok {
		return tok
	}
	return _Name
}

// symbols maps each symbol character to its token.
var symbols = map[rune]Token{
	'(': _Lparen,
	')': _Rparen,
	'{': _Lbrace,
	'}': _Rbrace,
	',': _Comma,
	';': _Semi,
	'=': _Assign,
	'+': _Add,
	'-': _Sub,
	'*': _Mul,
	'/': _Div,
}

// Item is a token together with the lexeme it was scanned from.
type Item struct {
	Tok Token
	Lit string
	Pos Pos
}

func (it Item) String() string {
	if it.Tok == _EOF {
		return it.Tok.String()
	}
	return fmt.Sprintf("%s %q", it.Tok.Debug(), it.Lit)
}
