package syntax

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// FprintJSON writes a JSON representation of the tree to w.
func FprintJSON(w io.Writer, node Node) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(toTree(node))
}

// FprintYAML writes a YAML representation of the tree to w. It carries the
// same fields as FprintJSON.
func FprintYAML(w io.Writer, node Node) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(toTree(node)); err != nil {
		return err
	}
	return enc.Close()
}

// toTree converts a node to nested maps: nonterminals carry their production
// name, position, source text and children in production order; leaves carry
// their token and lexeme.
func toTree(node Node) interface{} {
	if node == nil {
		return nil
	}

	switch n := node.(type) {
	case *Terminal:
		return map[string]interface{}{
			"token":  n.Tok.Debug(),
			"lexeme": n.Lit,
			"pos":    n.pos.String(),
		}

	case *FuncDef:
		return nonterminal(prodFuncDef, n,
			n.Type, n.Name, n.Lparen, n.Params, n.Rparen, n.Lbrace, n.Body, n.Rbrace)

	case *ParamList:
		var kids []Node
		for i, prm := range n.Params {
			kids = append(kids, prm)
			if i < len(n.Commas) {
				kids = append(kids, n.Commas[i])
			}
		}
		return nonterminal(prodParams, n, kids...)

	case *Param:
		return nonterminal(prodParam, n, n.Type, n.Name)

	case *StmtList:
		var kids []Node
		for i, s := range n.Stmts {
			kids = append(kids, s, n.Semis[i])
		}
		return nonterminal(prodStmts, n, kids...)

	case *AssignStmt:
		return nonterminal(prodAssign, n, n.Name, n.Assign, n.Value)

	case *ReturnStmt:
		return nonterminal(prodReturn, n, n.Return, n.Value)

	case *CastExpr:
		return nonterminal(prodCast, n, n.Lparen, n.Type, n.Rparen, n.Name)

	case *ArithExpr:
		if n.Tail == nil {
			return nonterminal(prodArith, n, n.X)
		}
		return nonterminal(prodArith, n, n.X, n.Tail)

	case *TermTail:
		return nonterminal(prodTerm+"'", n, n.Op, n.Y)

	case *Term:
		if n.Tail == nil {
			return nonterminal(prodTerm, n, n.X)
		}
		return nonterminal(prodTerm, n, n.X, n.Tail)

	case *FactorTail:
		return nonterminal(prodFactor+"'", n, n.Op, n.Y)

	case *Factor:
		return nonterminal(prodFactor, n, n.Value)
	}

	panic(fmt.Sprintf("syntax: unexpected node %T", node))
}

func nonterminal(name string, n Node, kids ...Node) map[string]interface{} {
	children := make([]interface{}, len(kids))
	for i, k := range kids {
		children[i] = toTree(k)
	}
	return map[string]interface{}{
		"node":     name,
		"pos":      n.Pos().String(),
		"text":     Lexemes(n),
		"children": children,
	}
}
