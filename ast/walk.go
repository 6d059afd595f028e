package ast

// A Visitor's Visit method is invoked for each node encountered by Walk.
// If the result visitor w is not nil, Walk visits each of the children
// of node with the visitor w, followed by a call of w.Visit(nil).
type Visitor interface {
	Visit(node Expr) (w Visitor)
}

// Walk traverses an expression tree in depth-first order, left to right.
func Walk(v Visitor, node Expr) {
	if v = v.Visit(node); v == nil {
		return
	}

	switch n := node.(type) {
	case *Literal:
		// leaf
	case *Variable:
		if n.Index != nil {
			Walk(v, n.Index)
		}
	case *BinaryExpr:
		Walk(v, n.Left)
		Walk(v, n.Right)
	case *UnaryExpr:
		Walk(v, n.Operand)
	}

	v.Visit(nil)
}

type inspector func(Expr) bool

func (f inspector) Visit(node Expr) Visitor {
	if f(node) {
		return f
	}
	return nil
}

// Inspect traverses node in depth-first order, calling f for each node.
// If f returns true, Inspect continues with the children of the node;
// the closing call is made with nil.
func Inspect(node Expr, f func(Expr) bool) {
	Walk(inspector(f), node)
}

// Contains reports whether any node in the tree satisfies pred.
func Contains(node Expr, pred func(Expr) bool) bool {
	found := false
	Inspect(node, func(n Expr) bool {
		if found || n == nil {
			return false
		}
		if pred(n) {
			found = true
			return false
		}
		return true
	})
	return found
}

// UsesRandom reports whether the tree contains a random(...) call.
func UsesRandom(node Expr) bool {
	return Contains(node, func(n Expr) bool {
		u, ok := n.(*UnaryExpr)
		return ok && u.Op == Random
	})
}

// References returns the names of variables referenced by the tree, in
// visiting order, without duplicates.
func References(node Expr) []string {
	var names []string
	seen := map[string]bool{}
	Inspect(node, func(n Expr) bool {
		if v, ok := n.(*Variable); ok && !seen[v.Name] {
			seen[v.Name] = true
			names = append(names, v.Name)
		}
		return true
	})
	return names
}
