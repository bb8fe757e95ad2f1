package syntax

import (
	"fmt"
	"io"
	"strings"
)

// indentUnit is one level of tree depth.
const indentUnit = "    "

// Leaf labels. The exact text, spelling included, is the established output
// format and golden files depend on it.
const (
	labelReturnType = "Funtion Return Type"
	labelFuncName   = "Function Identifier"
	labelLparen     = "Left Paren"
	labelRparen     = "Right Paren"
	labelLbrace     = "Left Curly"
	labelRbrace     = "Right Curly"
	labelParamType  = "Parameter Type"
	labelParamName  = "Parameter Identifier"
	labelIdent      = "Identifier"
	labelEquals     = "Equals"
	labelReturn     = "Return"
	labelCastType   = "Cast Type"
	labelCastName   = "Cast Indentifier"
	labelOperator   = "Operator"
	labelVariable   = "Variable"
	labelLiteral    = "Literal"
)

// Fprint writes the indented text rendering of the tree rooted at node to w.
// Each node prints its label and the source text it spans, then its children
// one level deeper.
func Fprint(w io.Writer, node Node) error {
	p := &printer{w: w}
	p.print(node)
	return p.err
}

type printer struct {
	w     io.Writer
	depth int
	err   error
}

func (p *printer) printf(format string, args ...interface{}) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, "%s%s\n", strings.Repeat(indentUnit, p.depth), fmt.Sprintf(format, args...))
}

// line prints "label: text".
func (p *printer) line(label string, n Node) {
	p.printf("%s: %s", label, Lexemes(n))
}

// heading prints a bare "label:" for nonterminals that only select an
// alternative (Statement, Expression).
func (p *printer) heading(label string) {
	p.printf("%s:", label)
}

func (p *printer) print(node Node) {
	switch n := node.(type) {
	case nil:
		return

	case *FuncDef:
		p.line(prodFuncDef, n)
		p.depth++
		p.line(labelReturnType, n.Type)
		p.line(labelFuncName, n.Name)
		p.line(labelLparen, n.Lparen)
		p.print(n.Params)
		p.line(labelRparen, n.Rparen)
		p.line(labelLbrace, n.Lbrace)
		p.print(n.Body)
		p.line(labelRbrace, n.Rbrace)
		p.depth--

	case *ParamList:
		p.line(prodParams, n)
		p.depth++
		for _, prm := range n.Params {
			p.print(prm)
		}
		p.depth--

	case *Param:
		p.line(prodParam, n)
		p.depth++
		p.line(labelParamType, n.Type)
		p.line(labelParamName, n.Name)
		p.depth--

	case *StmtList:
		p.line(prodStmts, n)
		p.depth++
		for _, s := range n.Stmts {
			p.heading(prodStmt)
			p.depth++
			p.print(s)
			p.depth--
		}
		p.depth--

	case *AssignStmt:
		p.line(prodAssign, n)
		p.depth++
		p.line(labelIdent, n.Name)
		p.line(labelEquals, n.Assign)
		p.printExpr(n.Value)
		p.depth--

	case *ReturnStmt:
		p.line(prodReturn, n)
		p.depth++
		p.line(labelReturn, n.Return)
		p.printExpr(n.Value)
		p.depth--

	case *CastExpr:
		p.line(prodCast, n)
		p.depth++
		p.line(labelLparen, n.Lparen)
		p.line(labelCastType, n.Type)
		p.line(labelRparen, n.Rparen)
		p.line(labelCastName, n.Name)
		p.depth--

	case *ArithExpr:
		p.line(prodArith, n)
		p.depth++
		p.print(n.X)
		if n.Tail != nil {
			p.print(n.Tail)
		}
		p.depth--

	// Tails stay at the depth of the term or factor they extend.
	case *TermTail:
		p.line(labelOperator, n.Op)
		p.print(n.Y)

	case *Term:
		p.line(prodTerm, n)
		p.depth++
		p.print(n.X)
		if n.Tail != nil {
			p.print(n.Tail)
		}
		p.depth--

	case *FactorTail:
		p.line(labelOperator, n.Op)
		p.print(n.Y)

	case *Factor:
		p.line(prodFactor, n)
		p.depth++
		if n.IsVariable() {
			p.line(labelVariable, n.Value)
		} else {
			p.line(labelLiteral, n.Value)
		}
		p.depth--

	case *Terminal:
		p.line(n.Tok.Debug(), n)

	default:
		panic(fmt.Sprintf("syntax: unexpected node %T", node))
	}
}

func (p *printer) printExpr(x Expr) {
	p.heading(prodExpr)
	p.depth++
	p.print(x)
	p.depth--
}

// ----------------------------------------------------------------------------
// Source signatures

// Lexemes returns the source text spanned by n as the tree printer shows it:
// lexemes joined by single spaces where the source allows them, with the
// function body abbreviated to "{....}".
func Lexemes(n Node) string {
	var b strings.Builder
	writeLexemes(&b, n)
	return b.String()
}

func writeLexemes(b *strings.Builder, node Node) {
	switch n := node.(type) {
	case nil:

	case *Terminal:
		b.WriteString(n.Lit)

	case *FuncDef:
		writeLexemes(b, n.Type)
		b.WriteByte(' ')
		writeLexemes(b, n.Name)
		b.WriteByte(' ')
		writeLexemes(b, n.Lparen)
		writeLexemes(b, n.Params)
		writeLexemes(b, n.Rparen)
		b.WriteByte(' ')
		writeLexemes(b, n.Lbrace)
		b.WriteString("....")
		writeLexemes(b, n.Rbrace)

	case *ParamList:
		for i, prm := range n.Params {
			writeLexemes(b, prm)
			if i < len(n.Commas) {
				writeLexemes(b, n.Commas[i])
				b.WriteByte(' ')
			}
		}

	case *Param:
		writeLexemes(b, n.Type)
		b.WriteByte(' ')
		writeLexemes(b, n.Name)

	case *StmtList:
		for i, s := range n.Stmts {
			writeLexemes(b, s)
			writeLexemes(b, n.Semis[i])
			b.WriteByte(' ')
		}

	case *AssignStmt:
		writeLexemes(b, n.Name)
		b.WriteByte(' ')
		writeLexemes(b, n.Assign)
		b.WriteByte(' ')
		writeLexemes(b, n.Value)

	case *ReturnStmt:
		writeLexemes(b, n.Return)
		b.WriteByte(' ')
		writeLexemes(b, n.Value)

	case *CastExpr:
		writeLexemes(b, n.Lparen)
		writeLexemes(b, n.Type)
		writeLexemes(b, n.Rparen)
		writeLexemes(b, n.Name)

	case *ArithExpr:
		writeLexemes(b, n.X)
		if n.Tail != nil {
			b.WriteByte(' ')
			writeLexemes(b, n.Tail)
		}

	case *TermTail:
		writeLexemes(b, n.Op)
		b.WriteByte(' ')
		writeLexemes(b, n.Y)

	case *Term:
		writeLexemes(b, n.X)
		if n.Tail != nil {
			b.WriteByte(' ')
			writeLexemes(b, n.Tail)
		}

	case *FactorTail:
		writeLexemes(b, n.Op)
		b.WriteByte(' ')
		writeLexemes(b, n.Y)

	case *Factor:
		writeLexemes(b, n.Value)

	default:
		panic(fmt.Sprintf("syntax: unexpected node %T", node))
	}
}
