package syntax

import (
	"fmt"
	"io"
	"strings"
)

// Production names. They double as the labels the tree printer uses.
const (
	prodFuncDef = "Function Definition"
	prodParams  = "Function Parameters"
	prodParam   = "Function Parameter"
	prodStmts   = "Compound Statements"
	prodStmt    = "Statement"
	prodAssign  = "Assignment Statement"
	prodReturn  = "Return Statement"
	prodExpr    = "Expression"
	prodCast    = "Typecast Expression"
	prodArith   = "Arithmetic Expression"
	prodTerm    = "Term"
	prodFactor  = "Factor"
)

// ParseError reports a token the current production has no use for.
type ParseError struct {
	Pos        Pos
	Production string  // nonterminal being parsed
	Expected   []Token // tokens that would have been accepted
	Found      Item
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: parse error in %s: expected %s, found %s",
		e.Pos, e.Production, expectedString(e.Expected), foundString(e.Found))
}

func expectedString(toks []Token) string {
	quoted := make([]string, len(toks))
	for i, t := range toks {
		quoted[i] = tokenString(t)
	}
	switch len(quoted) {
	case 0:
		return "nothing"
	case 1:
		return quoted[0]
	case 2:
		return quoted[0] + " or " + quoted[1]
	}
	return "one of " + strings.Join(quoted, ", ")
}

// tokenString quotes fixed spellings and leaves categories bare:
// `;` but identifier.
func tokenString(t Token) string {
	switch t {
	case _EOF, _Name, _IntLit, _FloatLit:
		return t.String()
	}
	return "`" + t.String() + "`"
}

func foundString(it Item) string {
	switch it.Tok {
	case _EOF:
		return it.Tok.String()
	case _Name, _IntLit, _FloatLit:
		return fmt.Sprintf("%s `%s`", it.Tok, it.Lit)
	}
	return "`" + it.Lit + "`"
}

// Parser builds a parse tree from a scanned item sequence by recursive
// descent, one method per nonterminal. Every choice is made by looking at the
// current item (and, for expressions, the one after it) before anything is
// consumed, so a failed parse never has to undo work.
type Parser struct {
	c   *Cursor
	cur Item // c.Peek(), cached
}

// NewParser returns a parser positioned at the first of items.
func NewParser(items []Item) *Parser {
	p := &Parser{c: NewCursor(items)}
	p.cur = p.c.Peek()
	return p
}

// Parse parses a complete function definition. The first error aborts the
// parse; no partial tree is returned.
func (p *Parser) Parse() (*FuncDef, error) {
	f, err := p.funcDef()
	if err != nil {
		return nil, err
	}
	if p.cur.Tok != _EOF {
		return nil, p.unexpected(prodFuncDef, _EOF)
	}
	return f, nil
}

// Parse parses items, which must hold exactly one function definition.
func Parse(items []Item) (*FuncDef, error) {
	return NewParser(items).Parse()
}

// ParseFile reads and scans src to completion, then parses the items.
func ParseFile(filename string, src io.Reader) (*FuncDef, error) {
	items, err := Lex(filename, src)
	if err != nil {
		return nil, err
	}
	return Parse(items)
}

// ParseBytes is like ParseFile for an in-memory buffer.
func ParseBytes(filename string, buf []byte) (*FuncDef, error) {
	items, err := LexBytes(filename, buf)
	if err != nil {
		return nil, err
	}
	return Parse(items)
}

// ----------------------------------------------------------------------------
// Token navigation

// take consumes the current item and returns it as a leaf.
func (p *Parser) take() *Terminal {
	t := newTerminal(p.c.Advance())
	p.cur = p.c.Peek()
	return t
}

// want consumes the current item if it is tok.
func (p *Parser) want(prod string, tok Token) (*Terminal, error) {
	if p.cur.Tok != tok {
		return nil, p.unexpected(prod, tok)
	}
	return p.take(), nil
}

// wantType consumes a type keyword.
func (p *Parser) wantType(prod string) (*Terminal, error) {
	if !p.cur.Tok.IsType() {
		return nil, p.unexpected(prod, _IntType, _FloatType)
	}
	return p.take(), nil
}

func (p *Parser) unexpected(prod string, expected ...Token) *ParseError {
	return &ParseError{
		Pos:        p.cur.Pos,
		Production: prod,
		Expected:   expected,
		Found:      p.cur,
	}
}

// ----------------------------------------------------------------------------
// Function

// funcDef parses: type identifier ( params ) { statements }
func (p *Parser) funcDef() (*FuncDef, error) {
	f := new(FuncDef)
	f.pos = p.cur.Pos

	var err error
	if f.Type, err = p.wantType(prodFuncDef); err != nil {
		return nil, err
	}
	if f.Name, err = p.want(prodFuncDef, _Name); err != nil {
		return nil, err
	}
	if f.Lparen, err = p.want(prodFuncDef, _Lparen); err != nil {
		return nil, err
	}
	if f.Params, err = p.paramList(); err != nil {
		return nil, err
	}
	if f.Rparen, err = p.want(prodFuncDef, _Rparen); err != nil {
		return nil, err
	}
	if f.Lbrace, err = p.want(prodFuncDef, _Lbrace); err != nil {
		return nil, err
	}
	if f.Body, err = p.stmtList(); err != nil {
		return nil, err
	}
	if f.Rbrace, err = p.want(prodFuncDef, _Rbrace); err != nil {
		return nil, err
	}
	return f, nil
}

// paramList parses a possibly empty, comma-delimited parameter list. It
// stops in front of the closing parenthesis.
func (p *Parser) paramList() (*ParamList, error) {
	l := new(ParamList)
	l.pos = p.cur.Pos

	if p.cur.Tok == _Rparen {
		return l, nil
	}
	if !p.cur.Tok.IsType() {
		return nil, p.unexpected(prodParams, _IntType, _FloatType, _Rparen)
	}

	for {
		prm, err := p.param()
		if err != nil {
			return nil, err
		}
		l.Params = append(l.Params, prm)
		if p.cur.Tok != _Comma {
			break
		}
		l.Commas = append(l.Commas, p.take())
	}

	if p.cur.Tok != _Rparen {
		return nil, p.unexpected(prodParams, _Comma, _Rparen)
	}
	return l, nil
}

// param parses: type identifier
func (p *Parser) param() (*Param, error) {
	prm := new(Param)
	prm.pos = p.cur.Pos

	var err error
	if prm.Type, err = p.wantType(prodParam); err != nil {
		return nil, err
	}
	if prm.Name, err = p.want(prodParam, _Name); err != nil {
		return nil, err
	}
	return prm, nil
}

// stmtList parses zero or more ;-terminated statements. It stops in front
// of the closing brace.
func (p *Parser) stmtList() (*StmtList, error) {
	l := new(StmtList)
	l.pos = p.cur.Pos

	for p.cur.Tok == _Name || p.cur.Tok == _Return {
		s, err := p.stmt()
		if err != nil {
			return nil, err
		}
		semi, err := p.want(prodStmt, _Semi)
		if err != nil {
			return nil, err
		}
		l.Stmts = append(l.Stmts, s)
		l.Semis = append(l.Semis, semi)
	}

	if p.cur.Tok != _Rbrace {
		return nil, p.unexpected(prodStmts, _Name, _Return, _Rbrace)
	}
	return l, nil
}

// ----------------------------------------------------------------------------
// Statements

func (p *Parser) stmt() (Stmt, error) {
	switch p.cur.Tok {
	case _Name:
		return p.assignStmt()
	case _Return:
		return p.returnStmt()
	}
	return nil, p.unexpected(prodStmt, _Name, _Return)
}

// assignStmt parses: identifier = expression
func (p *Parser) assignStmt() (*AssignStmt, error) {
	s := new(AssignStmt)
	s.pos = p.cur.Pos

	var err error
	if s.Name, err = p.want(prodAssign, _Name); err != nil {
		return nil, err
	}
	if s.Assign, err = p.want(prodAssign, _Assign); err != nil {
		return nil, err
	}
	if s.Value, err = p.expr(); err != nil {
		return nil, err
	}
	return s, nil
}

// returnStmt parses: return expression
func (p *Parser) returnStmt() (*ReturnStmt, error) {
	s := new(ReturnStmt)
	s.pos = p.cur.Pos

	var err error
	if s.Return, err = p.want(prodReturn, _Return); err != nil {
		return nil, err
	}
	if s.Value, err = p.expr(); err != nil {
		return nil, err
	}
	return s, nil
}

// ----------------------------------------------------------------------------
// Expressions

// expr chooses between a typecast and an arithmetic expression. Only "(" is
// followed by a type keyword in a typecast; a factor never starts with "(".
func (p *Parser) expr() (Expr, error) {
	if p.cur.Tok == _Lparen && p.c.PeekAt(1).Tok.IsType() {
		return p.castExpr()
	}
	return p.arithExpr()
}

// castExpr parses: ( type ) identifier
func (p *Parser) castExpr() (*CastExpr, error) {
	x := new(CastExpr)
	x.pos = p.cur.Pos

	var err error
	if x.Lparen, err = p.want(prodCast, _Lparen); err != nil {
		return nil, err
	}
	if x.Type, err = p.wantType(prodCast); err != nil {
		return nil, err
	}
	if x.Rparen, err = p.want(prodCast, _Rparen); err != nil {
		return nil, err
	}
	if x.Name, err = p.want(prodCast, _Name); err != nil {
		return nil, err
	}
	return x, nil
}

// arithExpr parses: term [ (+|-) term ]
func (p *Parser) arithExpr() (*ArithExpr, error) {
	x := new(ArithExpr)
	x.pos = p.cur.Pos

	var err error
	if x.X, err = p.term(); err != nil {
		return nil, err
	}
	if p.cur.Tok == _Add || p.cur.Tok == _Sub {
		tail := new(TermTail)
		tail.pos = p.cur.Pos
		tail.Op = p.take()
		if tail.Y, err = p.term(); err != nil {
			return nil, err
		}
		x.Tail = tail
	}
	return x, nil
}

// term parses: factor [ (*|/) factor ]
func (p *Parser) term() (*Term, error) {
	t := new(Term)
	t.pos = p.cur.Pos

	var err error
	if t.X, err = p.factor(); err != nil {
		return nil, err
	}
	if p.cur.Tok == _Mul || p.cur.Tok == _Div {
		tail := new(FactorTail)
		tail.pos = p.cur.Pos
		tail.Op = p.take()
		if tail.Y, err = p.factor(); err != nil {
			return nil, err
		}
		t.Tail = tail
	}
	return t, nil
}

// factor parses: identifier | literal
func (p *Parser) factor() (*Factor, error) {
	switch p.cur.Tok {
	case _Name, _IntLit, _FloatLit:
		f := new(Factor)
		f.pos = p.cur.Pos
		f.Value = p.take()
		return f, nil
	}
	return nil, p.unexpected(prodFactor, _Name, _IntLit, _FloatLit)
}
