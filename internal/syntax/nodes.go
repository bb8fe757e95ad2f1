package syntax

// ----------------------------------------------------------------------------
// Interfaces
//
// The parse tree has one node type per nonterminal of the grammar plus
// Terminal for leaves. The set is closed: the marker methods are unexported,
// and every consumer switches over the concrete types.

// Node is implemented by every parse tree node.
type Node interface {
	Pos() Pos // position of the first token belonging to the node
	aNode()
}

// Stmt is a <STATEMENT>: *AssignStmt or *ReturnStmt.
type Stmt interface {
	Node
	aStmt()
}

// Expr is an <EXPRESSION>: *ArithExpr or *CastExpr.
type Expr interface {
	Node
	aExpr()
}

type node struct {
	pos Pos
}

func (n *node) Pos() Pos { return n.pos }
func (n *node) aNode()   {}

type stmt struct{ node }

func (*stmt) aStmt() {}

type expr struct{ node }

func (*expr) aExpr() {}

// ----------------------------------------------------------------------------
// Leaves

// Terminal is a leaf holding one scanned token.
type Terminal struct {
	node
	Tok Token
	Lit string
}

func newTerminal(it Item) *Terminal {
	t := &Terminal{Tok: it.Tok, Lit: it.Lit}
	t.pos = it.Pos
	return t
}

// ----------------------------------------------------------------------------
// Function

// FuncDef is the root: type identifier ( params ) { statements }
type FuncDef struct {
	node
	Type   *Terminal
	Name   *Terminal
	Lparen *Terminal
	Params *ParamList
	Rparen *Terminal
	Lbrace *Terminal
	Body   *StmtList
	Rbrace *Terminal
}

// ParamList is a comma-delimited, possibly empty, parameter list.
// Commas[i] separates Params[i] and Params[i+1].
type ParamList struct {
	node
	Params []*Param
	Commas []*Terminal
}

// Param is a single "type identifier" parameter.
type Param struct {
	node
	Type *Terminal
	Name *Terminal
}

// StmtList is the function body. Semis[i] terminates Stmts[i].
type StmtList struct {
	node
	Stmts []Stmt
	Semis []*Terminal
}

// ----------------------------------------------------------------------------
// Statements

// AssignStmt is: identifier = expression
type AssignStmt struct {
	stmt
	Name   *Terminal
	Assign *Terminal
	Value  Expr
}

// ReturnStmt is: return expression
type ReturnStmt struct {
	stmt
	Return *Terminal
	Value  Expr
}

// ----------------------------------------------------------------------------
// Expressions

// CastExpr is: ( type ) identifier
type CastExpr struct {
	expr
	Lparen *Terminal
	Type   *Terminal
	Rparen *Terminal
	Name   *Terminal
}

// ArithExpr is: term [ (+|-) term ]
type ArithExpr struct {
	expr
	X    *Term
	Tail *TermTail // nil for a single term
}

// TermTail is the <TERM'> production: (+|-) term
type TermTail struct {
	node
	Op *Terminal
	Y  *Term
}

// Term is: factor [ (*|/) factor ]
type Term struct {
	node
	X    *Factor
	Tail *FactorTail // nil for a single factor
}

// FactorTail is the <FACTOR'> production: (*|/) factor
type FactorTail struct {
	node
	Op *Terminal
	Y  *Factor
}

// Factor is an identifier or a literal.
type Factor struct {
	node
	Value *Terminal
}

// IsVariable reports whether the factor names a variable rather than a literal.
func (f *Factor) IsVariable() bool {
	return f.Value.Tok == _Name
}
