package ast

import "github.com/gamelang/gamelang/object"

// Constructors used by drivers and tests to assemble trees.

func Lit(v object.Value) *Literal   { return &Literal{Value: v} }
func Int(v int64) *Literal          { return Lit(object.NewInteger(v)) }
func Double(v float64) *Literal     { return Lit(object.NewDouble(v)) }
func Str(v string) *Literal         { return Lit(object.NewString(v)) }
func Var(name string) *Variable     { return &Variable{Name: name} }
func Index(name string, index Expr) *Variable {
	return &Variable{Name: name, Index: index}
}

func Binary(op BinaryOp, left, right Expr) *BinaryExpr {
	return &BinaryExpr{Op: op, Left: left, Right: right}
}

func Unary(op UnaryOp, operand Expr) *UnaryExpr {
	return &UnaryExpr{Op: op, Operand: operand}
}

func AddOf(l, r Expr) *BinaryExpr { return Binary(Add, l, r) }
func SubOf(l, r Expr) *BinaryExpr { return Binary(Subtract, l, r) }
func MulOf(l, r Expr) *BinaryExpr { return Binary(Multiply, l, r) }
func DivOf(l, r Expr) *BinaryExpr { return Binary(Divide, l, r) }
func ModOf(l, r Expr) *BinaryExpr { return Binary(Mod, l, r) }
func OrOf(l, r Expr) *BinaryExpr  { return Binary(Or, l, r) }
func AndOf(l, r Expr) *BinaryExpr { return Binary(And, l, r) }
