package evaluator

import (
	"math"
	"testing"

	"github.com/gamelang/gamelang/ast"
	"github.com/gamelang/gamelang/diag"
	"github.com/gamelang/gamelang/object"
	"github.com/gamelang/gamelang/scope"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvalArithmeticExpr(t *testing.T) {
	tests := []struct {
		name string
		node ast.Expr
		want object.Value
	}{
		{"int + int", ast.AddOf(ast.Int(2), ast.Int(3)), object.NewInteger(5)},
		{"int + double", ast.AddOf(ast.Int(2), ast.Double(0.5)), object.NewDouble(2.5)},
		{"double - int", ast.SubOf(ast.Double(2.5), ast.Int(1)), object.NewDouble(1.5)},
		{"int * int", ast.MulOf(ast.Int(6), ast.Int(7)), object.NewInteger(42)},
		{"string + int", ast.AddOf(ast.Str("n="), ast.Int(3)), object.NewString("n=3")},
		{"double + string", ast.AddOf(ast.Double(0.5), ast.Str("!")), object.NewString("0.5!")},
		{"string + string", ast.AddOf(ast.Str("ab"), ast.Str("cd")), object.NewString("abcd")},
		{"string - int coerces", ast.SubOf(ast.Str("x"), ast.Int(3)), object.NewInteger(-3)},
		{"string * double coerces", ast.MulOf(ast.Str("x"), ast.Double(2)), object.NewDouble(0)},
		{"int / int truncates", ast.DivOf(ast.Int(7), ast.Int(2)), object.NewInteger(3)},
		{"int / double", ast.DivOf(ast.Int(7), ast.Double(2)), object.NewDouble(3.5)},
		{"mod", ast.ModOf(ast.Int(7), ast.Int(3)), object.NewInteger(1)},
		{"nested", ast.AddOf(ast.MulOf(ast.Int(2), ast.Double(1.25)), ast.Int(1)), object.NewDouble(3.5)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)
			got := env.fold(tt.node)
			if !object.Equal(tt.want, got) {
				t.Errorf("Eval(%s) = %s, want %s", tt.node, object.Describe(got), object.Describe(tt.want))
			}
			assertKinds(t, env)
		})
	}
}

func TestEvalDivideExpr_ZeroDivisor(t *testing.T) {
	t.Run("parse time int", func(t *testing.T) {
		env := newTestEnv(t)
		assertInteger(t, env.fold(ast.DivOf(ast.Int(5), ast.Int(0))), 0)
		assertKinds(t, env, diag.DivideByZeroAtParseTime)
	})

	t.Run("parse time double", func(t *testing.T) {
		env := newTestEnv(t)
		assertInteger(t, env.fold(ast.DivOf(ast.Double(5), ast.Double(0))), 0)
		assertKinds(t, env, diag.DivideByZeroAtParseTime)
	})

	t.Run("parse time through a variable", func(t *testing.T) {
		env := newTestEnv(t, scope.NewInt("z", 0))
		assertInteger(t, env.fold(ast.DivOf(ast.Int(5), ast.Var("z"))), 0)
		assertKinds(t, env, diag.DivideByZeroAtParseTime)
	})

	t.Run("execution double gives infinity", func(t *testing.T) {
		env := newTestEnv(t)
		got := env.exec(ast.DivOf(ast.Double(5), ast.Int(0)))
		d, ok := got.(*object.Double)
		require.True(t, ok, "got %s", object.Describe(got))
		assert.True(t, math.IsInf(d.Value, 1))
		assertKinds(t, env)
	})

	t.Run("execution int panics", func(t *testing.T) {
		env := newTestEnv(t)
		assert.Panics(t, func() { env.exec(ast.DivOf(ast.Int(5), ast.Int(0))) })
		assertKinds(t, env)
	})
}

func TestEvalModExpr(t *testing.T) {
	t.Run("zero divisor at parse time", func(t *testing.T) {
		env := newTestEnv(t)
		assertInteger(t, env.fold(ast.ModOf(ast.Int(5), ast.Int(0))), 0)
		assertKinds(t, env, diag.ModByZeroAtParseTime)
	})

	t.Run("zero divisor at execution panics", func(t *testing.T) {
		env := newTestEnv(t)
		assert.Panics(t, func() { env.exec(ast.ModOf(ast.Int(5), ast.Int(0))) })
	})

	t.Run("both sides mistyped", func(t *testing.T) {
		env := newTestEnv(t)
		assertInteger(t, env.fold(ast.ModOf(ast.Double(1.5), ast.Str("x"))), 0)
		want := []diag.Diagnostic{
			diag.InvalidOperand(diag.Left, "%"),
			diag.InvalidOperand(diag.Right, "%"),
		}
		if diff := cmp.Diff(want, env.collector.Diagnostics()); diff != "" {
			t.Errorf("diagnostics mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("mistyped operand skips evaluation", func(t *testing.T) {
		env := newTestEnv(t, scope.NewDouble("d", 2))
		assertInteger(t, env.fold(ast.ModOf(ast.Var("missing"), ast.Var("d"))), 0)
		// missing is never evaluated, so only the type fault is reported
		assertKinds(t, env, diag.InvalidOperandType)
		assert.Equal(t, diag.Right, env.collector.Diagnostics()[0].Side)
	})
}

func TestEvalLogicalExpr(t *testing.T) {
	tests := []struct {
		name string
		node ast.Expr
		want int64
		diag []diag.Kind
	}{
		{"or short circuits", ast.OrOf(ast.Int(1), ast.Var("missing")), 1, nil},
		{"and short circuits", ast.AndOf(ast.Int(0), ast.Var("missing")), 0, nil},
		{"or evaluates right", ast.OrOf(ast.Int(0), ast.Var("missing")), 0, []diag.Kind{diag.UndeclaredVariable}},
		{"and evaluates right", ast.AndOf(ast.Double(0.5), ast.Int(2)), 1, nil},
		{"double zero is false", ast.OrOf(ast.Double(0), ast.Int(0)), 0, nil},
		{"string left", ast.OrOf(ast.Str("s"), ast.Int(1)), 0, []diag.Kind{diag.InvalidOperandType}},
		{"string both", ast.AndOf(ast.Str("s"), ast.Str("t")), 0, []diag.Kind{diag.InvalidOperandType, diag.InvalidOperandType}},
		{"no value is false", ast.OrOf(ast.Unary(ast.Sin, ast.Str("s")), ast.Int(0)), 0, []diag.Kind{diag.InvalidOperandType}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)
			assertInteger(t, env.fold(tt.node), tt.want)
			assertKinds(t, env, tt.diag...)
		})
	}

	t.Run("string right is reported before the left side runs", func(t *testing.T) {
		env := newTestEnv(t)
		env.fold(ast.AndOf(ast.Var("missing"), ast.Str("t")))
		want := []diag.Diagnostic{diag.InvalidOperand(diag.Right, "&&")}
		if diff := cmp.Diff(want, env.collector.Diagnostics()); diff != "" {
			t.Errorf("diagnostics mismatch (-want +got):\n%s", diff)
		}
	})
}

func TestEvalComparisonExpr(t *testing.T) {
	tests := []struct {
		name string
		node ast.Expr
		want int64
	}{
		{"int < double", ast.Binary(ast.LessThan, ast.Int(1), ast.Double(1.5)), 1},
		{"int == double", ast.Binary(ast.Equal, ast.Int(3), ast.Double(3)), 1},
		{"double >= int", ast.Binary(ast.GreaterThanOrEqual, ast.Double(2.5), ast.Int(3)), 0},
		{"int != int", ast.Binary(ast.NotEqual, ast.Int(3), ast.Int(4)), 1},
		{"int <= int", ast.Binary(ast.LessThanOrEqual, ast.Int(4), ast.Int(4)), 1},
		{"int > int", ast.Binary(ast.GreaterThan, ast.Int(4), ast.Int(4)), 0},
		{"string == string", ast.Binary(ast.Equal, ast.Str("a"), ast.Str("a")), 1},
		{"string compares lexically", ast.Binary(ast.LessThan, ast.Str("10"), ast.Int(9)), 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)
			assertInteger(t, env.fold(tt.node), tt.want)
			assertKinds(t, env)
		})
	}
}

func TestEvalBinaryExpr_AbsentOperandPropagates(t *testing.T) {
	env := newTestEnv(t)
	got := env.fold(ast.AddOf(ast.Unary(ast.Cos, ast.Str("s")), ast.Int(1)))
	assert.Nil(t, got)
	assertKinds(t, env, diag.InvalidOperandType)
}
