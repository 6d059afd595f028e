package evaluator

import (
	"context"

	"github.com/gamelang/gamelang/ast"
	"github.com/gamelang/gamelang/diag"
	"github.com/gamelang/gamelang/object"
)

// evalLogicalExpr handles || and &&. String operands are rejected for both
// sides before anything is evaluated; after that the right side is only
// evaluated when the left side does not decide the result.
func (e *Evaluator) evalLogicalExpr(ctx context.Context, node *ast.BinaryExpr) object.Value {
	lType := e.TypeOf(ctx, node.Left)
	rType := e.TypeOf(ctx, node.Right)
	leftInvalid := lType == object.STRING_OBJ
	rightInvalid := rType == object.STRING_OBJ
	if leftInvalid || rightInvalid {
		if leftInvalid {
			e.report(ctx, diag.InvalidOperand(diag.Left, node.Op.String()))
		}
		if rightInvalid {
			e.report(ctx, diag.InvalidOperand(diag.Right, node.Op.String()))
		}
		return neutral()
	}

	leftTrue := truthy(lType, e.Eval(ctx, node.Left))
	switch node.Op {
	case ast.Or:
		if leftTrue {
			return boolValue(true)
		}
	case ast.And:
		if !leftTrue {
			return boolValue(false)
		}
	}
	return boolValue(truthy(rType, e.Eval(ctx, node.Right)))
}

// truthy tests v according to its static type: numbers are true when
// nonzero, and anything else (including no value) is false.
func truthy(t object.ObjectType, v object.Value) bool {
	if v == nil {
		return false
	}
	switch t {
	case object.INTEGER_OBJ:
		return v.AsInt() != 0
	case object.DOUBLE_OBJ:
		return v.AsDouble() != 0
	default:
		return false
	}
}
