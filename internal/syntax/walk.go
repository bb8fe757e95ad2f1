package syntax

// Visitor is called for each node during Walk.
// If it returns false, the children of the node are not visited.
type Visitor func(node Node) bool

// Walk traverses a parse tree depth-first, visiting children in production
// order.
func Walk(node Node, v Visitor) {
	if node == nil || !v(node) {
		return
	}

	switch n := node.(type) {
	case *FuncDef:
		Walk(n.Type, v)
		Walk(n.Name, v)
		Walk(n.Lparen, v)
		Walk(n.Params, v)
		Walk(n.Rparen, v)
		Walk(n.Lbrace, v)
		Walk(n.Body, v)
		Walk(n.Rbrace, v)

	case *ParamList:
		for i, prm := range n.Params {
			Walk(prm, v)
			if i < len(n.Commas) {
				Walk(n.Commas[i], v)
			}
		}

	case *Param:
		Walk(n.Type, v)
		Walk(n.Name, v)

	case *StmtList:
		for i, s := range n.Stmts {
			Walk(s, v)
			Walk(n.Semis[i], v)
		}

	case *AssignStmt:
		Walk(n.Name, v)
		Walk(n.Assign, v)
		Walk(n.Value, v)

	case *ReturnStmt:
		Walk(n.Return, v)
		Walk(n.Value, v)

	case *CastExpr:
		Walk(n.Lparen, v)
		Walk(n.Type, v)
		Walk(n.Rparen, v)
		Walk(n.Name, v)

	case *ArithExpr:
		Walk(n.X, v)
		if n.Tail != nil {
			Walk(n.Tail, v)
		}

	case *TermTail:
		Walk(n.Op, v)
		Walk(n.Y, v)

	case *Term:
		Walk(n.X, v)
		if n.Tail != nil {
			Walk(n.Tail, v)
		}

	case *FactorTail:
		Walk(n.Op, v)
		Walk(n.Y, v)

	case *Factor:
		Walk(n.Value, v)

	case *Terminal:
		// leaf
	}
}

// Terminals returns the leaves of the tree in source order.
func Terminals(node Node) []*Terminal {
	var leaves []*Terminal
	Walk(node, func(n Node) bool {
		if t, ok := n.(*Terminal); ok {
			leaves = append(leaves, t)
		}
		return true
	})
	return leaves
}

// Count returns the number of nodes in the tree, leaves included.
func Count(node Node) int {
	n := 0
	Walk(node, func(Node) bool {
		n++
		return true
	})
	return n
}
