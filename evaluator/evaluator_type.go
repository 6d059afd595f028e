package evaluator

import (
	"context"
	"log/slog"
	"math"

	"github.com/gamelang/gamelang/ast"
	"github.com/gamelang/gamelang/object"
)

// TypeOf returns the static type of node. It reports no diagnostics and
// leaves the random generator untouched.
//
// Every node kind except Variable and floor(...) is typed from the shape of
// the tree alone. A Variable takes the declared type of the symbol it
// currently resolves to, or int when it resolves to nothing.
func (e *Evaluator) TypeOf(ctx context.Context, node ast.Expr) object.ObjectType {
	switch n := node.(type) {
	case *ast.Literal:
		if n.Value == nil {
			return object.INTEGER_OBJ
		}
		return n.Value.Type()
	case *ast.Variable:
		if n.Name == "" {
			return object.INTEGER_OBJ
		}
		sym, ok := e.scope.Lookup(n.Name)
		if !ok {
			return object.INTEGER_OBJ
		}
		return sym.Type()
	case *ast.BinaryExpr:
		return e.binaryType(ctx, n)
	case *ast.UnaryExpr:
		return e.unaryType(ctx, n)
	}
	return object.INTEGER_OBJ
}

func (e *Evaluator) binaryType(ctx context.Context, n *ast.BinaryExpr) object.ObjectType {
	switch n.Op {
	case ast.Add:
		return promote(e.TypeOf(ctx, n.Left), e.TypeOf(ctx, n.Right))
	case ast.Subtract, ast.Multiply, ast.Divide:
		return promoteNumeric(e.TypeOf(ctx, n.Left), e.TypeOf(ctx, n.Right))
	default:
		// %, ||, && and the comparisons all produce an int.
		return object.INTEGER_OBJ
	}
}

func (e *Evaluator) unaryType(ctx context.Context, n *ast.UnaryExpr) object.ObjectType {
	switch n.Op {
	case ast.Negation, ast.Abs:
		return e.TypeOf(ctx, n.Operand)
	case ast.Not, ast.Random:
		return object.INTEGER_OBJ
	case ast.Floor:
		return e.floorType(ctx, n)
	default:
		// trigonometric functions and sqrt
		return object.DOUBLE_OBJ
	}
}

// floorType repeats the narrowing decision of floor(...), which depends on
// the operand's value. The operand is evaluated by a silent probe so the
// query reports nothing and consumes no randomness; an operand containing
// random(...) may still narrow differently from a later evaluation.
func (e *Evaluator) floorType(ctx context.Context, n *ast.UnaryExpr) object.ObjectType {
	operandType := e.TypeOf(ctx, n.Operand)
	if operandType == object.INTEGER_OBJ {
		return object.INTEGER_OBJ
	}
	if !e.probing && ast.UsesRandom(n.Operand) {
		e.logc(ctx, slog.LevelDebug, "static type of floor depends on a random draw", "expr", n.String())
	}
	v := e.probe().Eval(ctx, n.Operand)
	if v == nil {
		return operandType
	}
	if _, ok := narrowFloor(math.Floor(v.AsDouble())); ok {
		return object.INTEGER_OBJ
	}
	return object.DOUBLE_OBJ
}

// promote applies the lattice string > double > int.
func promote(l, r object.ObjectType) object.ObjectType {
	if l == object.STRING_OBJ || r == object.STRING_OBJ {
		return object.STRING_OBJ
	}
	return promoteNumeric(l, r)
}

// promoteNumeric applies double > int and ignores strings.
func promoteNumeric(l, r object.ObjectType) object.ObjectType {
	if l == object.DOUBLE_OBJ || r == object.DOUBLE_OBJ {
		return object.DOUBLE_OBJ
	}
	return object.INTEGER_OBJ
}

// narrowFloor converts an already floored double to an int when it is
// integral and representable.
func narrowFloor(f float64) (int64, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f >= math.MaxInt64 || f < math.MinInt64 {
		return 0, false
	}
	return int64(f), float64(int64(f)) == f
}
