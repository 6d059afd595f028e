package evaluator

import (
	"cmp"
	"context"

	"github.com/gamelang/gamelang/ast"
	"github.com/gamelang/gamelang/object"
)

// evalComparisonExpr compares as strings when either side is statically a
// string, as doubles when either is a double, and as ints otherwise.
func (e *Evaluator) evalComparisonExpr(ctx context.Context, node *ast.BinaryExpr) object.Value {
	left, right, ok := e.operands(ctx, node)
	if !ok {
		return nil
	}
	lType := e.TypeOf(ctx, node.Left)
	rType := e.TypeOf(ctx, node.Right)

	switch promote(lType, rType) {
	case object.STRING_OBJ:
		return boolValue(compare(node.Op, left.AsString(), right.AsString()))
	case object.DOUBLE_OBJ:
		return boolValue(compare(node.Op, left.AsDouble(), right.AsDouble()))
	default:
		return boolValue(compare(node.Op, left.AsInt(), right.AsInt()))
	}
}

func compare[T cmp.Ordered](op ast.BinaryOp, l, r T) bool {
	switch op {
	case ast.LessThan:
		return l < r
	case ast.LessThanOrEqual:
		return l <= r
	case ast.GreaterThan:
		return l > r
	case ast.GreaterThanOrEqual:
		return l >= r
	case ast.Equal:
		return l == r
	case ast.NotEqual:
		return l != r
	}
	return false
}
