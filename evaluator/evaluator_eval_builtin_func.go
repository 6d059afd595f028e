package evaluator

import (
	"context"
	"fmt"
	"math"
	"strconv"

	"github.com/gamelang/gamelang/ast"
	"github.com/gamelang/gamelang/diag"
	"github.com/gamelang/gamelang/object"
)

const (
	degToRad = math.Pi / 180.0
	radToDeg = 180.0 / math.Pi

	// minRandomBound is the smallest accepted exclusive bound for random().
	minRandomBound = 2
)

// evalTrigFunc takes sin, cos and tan arguments in degrees and returns
// asin, acos and atan results in degrees. Out-of-domain inverse arguments
// give NaN. A string operand is reported and the call has no value.
func (e *Evaluator) evalTrigFunc(ctx context.Context, node *ast.UnaryExpr, t object.ObjectType, v object.Value) object.Value {
	if t != object.INTEGER_OBJ && t != object.DOUBLE_OBJ {
		e.invalidOperand(ctx, node)
		return nil
	}
	if v == nil {
		return nil
	}

	x := v.AsDouble()
	switch node.Op {
	case ast.Sin:
		return object.NewDouble(math.Sin(x * degToRad))
	case ast.Cos:
		return object.NewDouble(math.Cos(x * degToRad))
	case ast.Tan:
		return object.NewDouble(math.Tan(x * degToRad))
	case ast.Asin:
		return object.NewDouble(math.Asin(x) * radToDeg)
	case ast.Acos:
		return object.NewDouble(math.Acos(x) * radToDeg)
	default:
		return object.NewDouble(math.Atan(x) * radToDeg)
	}
}

// evalSqrt reports a negative operand but still answers NaN.
func (e *Evaluator) evalSqrt(ctx context.Context, node *ast.UnaryExpr, t object.ObjectType, v object.Value) object.Value {
	if t != object.INTEGER_OBJ && t != object.DOUBLE_OBJ {
		e.invalidOperand(ctx, node)
		return nil
	}
	if v == nil {
		return nil
	}

	x := v.AsDouble()
	if x < 0 {
		e.invalidOperand(ctx, node)
		return object.NewDouble(math.NaN())
	}
	return object.NewDouble(math.Sqrt(x))
}

func (e *Evaluator) evalAbs(ctx context.Context, node *ast.UnaryExpr, t object.ObjectType, v object.Value) object.Value {
	switch t {
	case object.INTEGER_OBJ:
		if v == nil {
			return nil
		}
		i := v.AsInt()
		if i < 0 {
			i = -i
		}
		return object.NewInteger(i)
	case object.DOUBLE_OBJ:
		if v == nil {
			return nil
		}
		return object.NewDouble(math.Abs(v.AsDouble()))
	default:
		e.invalidOperand(ctx, node)
		return nil
	}
}

// evalFloor keeps ints as they are and narrows a floored double to an int
// whenever the result is integral and representable.
func (e *Evaluator) evalFloor(ctx context.Context, node *ast.UnaryExpr, t object.ObjectType, v object.Value) object.Value {
	switch t {
	case object.INTEGER_OBJ:
		if v == nil {
			return nil
		}
		return object.NewInteger(v.AsInt())
	case object.DOUBLE_OBJ:
		if v == nil {
			return nil
		}
		f := math.Floor(v.AsDouble())
		if i, ok := narrowFloor(f); ok {
			return object.NewInteger(i)
		}
		return object.NewDouble(f)
	default:
		e.invalidOperand(ctx, node)
		return neutral()
	}
}

// evalRandom draws an int in [0, bound). A bound below 2 (or NaN) is
// reported and replaced by 2 so evaluation can continue.
func (e *Evaluator) evalRandom(ctx context.Context, node *ast.UnaryExpr, t object.ObjectType, v object.Value) object.Value {
	var bound float64
	var text string
	switch t {
	case object.INTEGER_OBJ:
		if v == nil {
			return nil
		}
		bound = float64(v.AsInt())
		text = strconv.FormatInt(v.AsInt(), 10)
	case object.DOUBLE_OBJ:
		if v == nil {
			return nil
		}
		bound = v.AsDouble()
		text = fmt.Sprintf("%f", bound)
	default:
		e.invalidOperand(ctx, node)
		return neutral()
	}

	if bound < minRandomBound || math.IsNaN(bound) {
		e.report(ctx, diag.New(diag.InvalidArgumentForRandom, text))
		bound = minRandomBound
	}

	n := math.MaxInt
	if bound < math.MaxInt {
		n = int(math.Floor(bound))
	}
	return object.NewInteger(int64(e.rand.IntN(n)))
}
