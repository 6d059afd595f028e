package evaluator

import (
	"context"
	"log/slog"

	"github.com/gamelang/gamelang/ast"
	"github.com/gamelang/gamelang/diag"
	"github.com/gamelang/gamelang/object"
)

func (e *Evaluator) evalUnaryExpr(ctx context.Context, node *ast.UnaryExpr) object.Value {
	operand := e.Eval(ctx, node.Operand)
	operandType := e.TypeOf(ctx, node.Operand)

	switch node.Op {
	case ast.Negation:
		return e.evalNegation(ctx, node, operandType, operand)
	case ast.Not:
		return e.evalBangOperatorExpression(ctx, node, operandType, operand)
	case ast.Sin, ast.Cos, ast.Tan, ast.Asin, ast.Acos, ast.Atan:
		return e.evalTrigFunc(ctx, node, operandType, operand)
	case ast.Sqrt:
		return e.evalSqrt(ctx, node, operandType, operand)
	case ast.Abs:
		return e.evalAbs(ctx, node, operandType, operand)
	case ast.Floor:
		return e.evalFloor(ctx, node, operandType, operand)
	case ast.Random:
		return e.evalRandom(ctx, node, operandType, operand)
	}
	e.logc(ctx, slog.LevelError, "unknown unary operator", "op", node.Op.String())
	return nil
}

// invalidOperand reports a unary operand of the wrong type. Unary operators
// report their operand as the right-hand side.
func (e *Evaluator) invalidOperand(ctx context.Context, node *ast.UnaryExpr, args ...string) {
	e.report(ctx, diag.InvalidOperand(diag.Right, node.Op.String(), args...))
}

func (e *Evaluator) evalNegation(ctx context.Context, node *ast.UnaryExpr, t object.ObjectType, v object.Value) object.Value {
	switch t {
	case object.INTEGER_OBJ:
		if v == nil {
			return nil
		}
		return object.NewInteger(-v.AsInt())
	case object.DOUBLE_OBJ:
		if v == nil {
			return nil
		}
		return object.NewDouble(-v.AsDouble())
	default:
		e.invalidOperand(ctx, node)
		return neutral()
	}
}

func (e *Evaluator) evalBangOperatorExpression(ctx context.Context, node *ast.UnaryExpr, t object.ObjectType, v object.Value) object.Value {
	switch t {
	case object.INTEGER_OBJ, object.DOUBLE_OBJ:
		if v == nil {
			return nil
		}
		return boolValue(!truthy(t, v))
	case object.STRING_OBJ:
		e.invalidOperand(ctx, node, t.Name())
		return neutral()
	default:
		return neutral()
	}
}
