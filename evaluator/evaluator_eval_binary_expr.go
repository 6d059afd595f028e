package evaluator

import (
	"context"
	"log/slog"

	"github.com/gamelang/gamelang/ast"
	"github.com/gamelang/gamelang/diag"
	"github.com/gamelang/gamelang/object"
)

func (e *Evaluator) evalBinaryExpr(ctx context.Context, node *ast.BinaryExpr) object.Value {
	switch node.Op {
	case ast.Add, ast.Subtract, ast.Multiply:
		return e.evalArithmeticExpr(ctx, node)
	case ast.Divide:
		return e.evalDivideExpr(ctx, node)
	case ast.Mod:
		return e.evalModExpr(ctx, node)
	case ast.Or, ast.And:
		return e.evalLogicalExpr(ctx, node)
	case ast.LessThan, ast.LessThanOrEqual, ast.GreaterThan, ast.GreaterThanOrEqual, ast.Equal, ast.NotEqual:
		return e.evalComparisonExpr(ctx, node)
	}
	e.logc(ctx, slog.LevelError, "unknown binary operator", "op", node.Op.String())
	return nil
}

// operands evaluates both sides, left first. ok is false when either side
// has no value, in which case the absence propagates to the caller.
func (e *Evaluator) operands(ctx context.Context, node *ast.BinaryExpr) (left, right object.Value, ok bool) {
	left = e.Eval(ctx, node.Left)
	right = e.Eval(ctx, node.Right)
	if left == nil || right == nil {
		e.logc(ctx, slog.LevelDebug, "operand has no value", "op", node.Op.String(), "left", object.Describe(left), "right", object.Describe(right))
		return left, right, false
	}
	return left, right, true
}

// evalArithmeticExpr handles +, - and *. Only + treats strings specially:
// the other operators coerce string operands numerically.
func (e *Evaluator) evalArithmeticExpr(ctx context.Context, node *ast.BinaryExpr) object.Value {
	lType := e.TypeOf(ctx, node.Left)
	rType := e.TypeOf(ctx, node.Right)
	left, right, ok := e.operands(ctx, node)
	if !ok {
		return nil
	}

	if node.Op == ast.Add && (lType == object.STRING_OBJ || rType == object.STRING_OBJ) {
		return object.NewString(left.AsString() + right.AsString())
	}

	if promoteNumeric(lType, rType) == object.DOUBLE_OBJ {
		l, r := left.AsDouble(), right.AsDouble()
		switch node.Op {
		case ast.Add:
			return object.NewDouble(l + r)
		case ast.Subtract:
			return object.NewDouble(l - r)
		default:
			return object.NewDouble(l * r)
		}
	}

	l, r := left.AsInt(), right.AsInt()
	switch node.Op {
	case ast.Add:
		return object.NewInteger(l + r)
	case ast.Subtract:
		return object.NewInteger(l - r)
	default:
		return object.NewInteger(l * r)
	}
}

// evalDivideExpr checks for a zero divisor only while folding constants.
// During execution the host's arithmetic applies: a double divisor of zero
// yields an infinity or NaN, and an integer divisor of zero panics with a
// runtime error that the driver is expected to recover.
func (e *Evaluator) evalDivideExpr(ctx context.Context, node *ast.BinaryExpr) object.Value {
	lType := e.TypeOf(ctx, node.Left)
	rType := e.TypeOf(ctx, node.Right)
	left, right, ok := e.operands(ctx, node)
	if !ok {
		return nil
	}

	if promoteNumeric(lType, rType) == object.DOUBLE_OBJ {
		divisor := right.AsDouble()
		if !e.executing() && divisor == 0 {
			e.report(ctx, diag.New(diag.DivideByZeroAtParseTime))
			return neutral()
		}
		return object.NewDouble(left.AsDouble() / divisor)
	}

	divisor := right.AsInt()
	if !e.executing() && divisor == 0 {
		e.report(ctx, diag.New(diag.DivideByZeroAtParseTime))
		return neutral()
	}
	return object.NewInteger(left.AsInt() / divisor)
}

// evalModExpr requires both operands to be statically int. A mistyped
// operand is reported per side and neither side is evaluated.
func (e *Evaluator) evalModExpr(ctx context.Context, node *ast.BinaryExpr) object.Value {
	leftInvalid := e.TypeOf(ctx, node.Left) != object.INTEGER_OBJ
	rightInvalid := e.TypeOf(ctx, node.Right) != object.INTEGER_OBJ
	if leftInvalid || rightInvalid {
		if leftInvalid {
			e.report(ctx, diag.InvalidOperand(diag.Left, node.Op.String()))
		}
		if rightInvalid {
			e.report(ctx, diag.InvalidOperand(diag.Right, node.Op.String()))
		}
		return neutral()
	}

	left, right, ok := e.operands(ctx, node)
	if !ok {
		return nil
	}
	divisor := right.AsInt()
	if !e.executing() && divisor == 0 {
		e.report(ctx, diag.New(diag.ModByZeroAtParseTime))
		return neutral()
	}
	return object.NewInteger(left.AsInt() % divisor)
}
