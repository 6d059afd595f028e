// Package ast declares the expression trees evaluated by the evaluator.
//
// The set of node kinds is closed: Literal, Variable, BinaryExpr and UnaryExpr.
// A node owns its children and trees are never shared or cyclic.
package ast

import (
	"fmt"
	"strings"

	"github.com/gamelang/gamelang/object"
)

// Expr is implemented by every expression node.
type Expr interface {
	String() string
	exprNode()
}

// Literal is a constant value.
type Literal struct {
	Value object.Value
}

// Variable references a declared symbol, optionally indexed.
type Variable struct {
	Name  string
	Index Expr // nil for a whole-symbol reference
}

// BinaryExpr applies Op to Left and Right.
type BinaryExpr struct {
	Op    BinaryOp
	Left  Expr
	Right Expr
}

// UnaryExpr applies Op to Operand. Builtin functions such as sin and
// random are unary operators.
type UnaryExpr struct {
	Op      UnaryOp
	Operand Expr
}

func (*Literal) exprNode()    {}
func (*Variable) exprNode()   {}
func (*BinaryExpr) exprNode() {}
func (*UnaryExpr) exprNode()  {}

// IsWholeArrayReference reports whether the variable has no index expression.
func (v *Variable) IsWholeArrayReference() bool { return v.Index == nil }

// DisplayName is the name used in diagnostics: "a[]" when indexed.
func (v *Variable) DisplayName() string {
	if v.Index != nil {
		return v.Name + "[]"
	}
	return v.Name
}

func (l *Literal) String() string {
	if l.Value == nil {
		return "<nil>"
	}
	return l.Value.Inspect()
}

func (v *Variable) String() string {
	if v.Index == nil {
		return v.Name
	}
	return fmt.Sprintf("%s[%s]", v.Name, v.Index)
}

func (b *BinaryExpr) String() string {
	return fmt.Sprintf("(%s %s %s)", b.Left, b.Op, b.Right)
}

func (u *UnaryExpr) String() string {
	if u.Op.IsFunc() {
		return fmt.Sprintf("%s(%s)", u.Op, u.Operand)
	}
	return fmt.Sprintf("(%s%s)", u.Op, u.Operand)
}

// BinaryOp enumerates binary operators.
type BinaryOp int

const (
	Add BinaryOp = iota
	Subtract
	Multiply
	Divide
	Mod
	Or
	And
	LessThan
	LessThanOrEqual
	GreaterThan
	GreaterThanOrEqual
	Equal
	NotEqual
)

var binaryOpSymbols = [...]string{
	Add:                "+",
	Subtract:           "-",
	Multiply:           "*",
	Divide:             "/",
	Mod:                "%",
	Or:                 "||",
	And:                "&&",
	LessThan:           "<",
	LessThanOrEqual:    "<=",
	GreaterThan:        ">",
	GreaterThanOrEqual: ">=",
	Equal:              "==",
	NotEqual:           "!=",
}

// String returns the operator's source symbol.
func (op BinaryOp) String() string {
	if op < 0 || int(op) >= len(binaryOpSymbols) {
		return fmt.Sprintf("BinaryOp(%d)", int(op))
	}
	return binaryOpSymbols[op]
}

// IsComparison reports whether op yields an Int 0/1 from an ordered comparison.
func (op BinaryOp) IsComparison() bool {
	return op >= LessThan && op <= NotEqual
}

// IsLogical reports whether op is || or &&.
func (op BinaryOp) IsLogical() bool { return op == Or || op == And }

// UnaryOp enumerates unary operators and builtin functions.
type UnaryOp int

const (
	Negation UnaryOp = iota
	Not
	Sin
	Cos
	Tan
	Asin
	Acos
	Atan
	Sqrt
	Abs
	Floor
	Random
)

var unaryOpSymbols = [...]string{
	Negation: "-",
	Not:      "!",
	Sin:      "sin",
	Cos:      "cos",
	Tan:      "tan",
	Asin:     "asin",
	Acos:     "acos",
	Atan:     "atan",
	Sqrt:     "sqrt",
	Abs:      "abs",
	Floor:    "floor",
	Random:   "random",
}

// String returns the operator's source symbol or function name.
func (op UnaryOp) String() string {
	if op < 0 || int(op) >= len(unaryOpSymbols) {
		return fmt.Sprintf("UnaryOp(%d)", int(op))
	}
	return unaryOpSymbols[op]
}

// IsFunc reports whether op is written as a function call.
func (op UnaryOp) IsFunc() bool { return op >= Sin }

// IsTrig reports whether op is one of the six trigonometric functions.
func (op UnaryOp) IsTrig() bool { return op >= Sin && op <= Atan }

// LookupUnaryOp finds a unary operator by its symbol or function name.
func LookupUnaryOp(name string) (UnaryOp, bool) {
	name = strings.ToLower(name)
	for op := Negation; op <= Random; op++ {
		if unaryOpSymbols[op] == name {
			return op, true
		}
	}
	return 0, false
}

// LookupBinaryOp finds a binary operator by its source symbol.
func LookupBinaryOp(symbol string) (BinaryOp, bool) {
	for op, s := range binaryOpSymbols {
		if s == symbol {
			return BinaryOp(op), true
		}
	}
	return 0, false
}
