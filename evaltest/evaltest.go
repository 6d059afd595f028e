// Package evaltest provides helpers for testing expression evaluation:
// a Runner that owns a scope stack and a diagnostic collector, assertion
// helpers, and a runner for YAML fixture files.
package evaltest

import (
	"context"
	"log/slog"
	"math/rand/v2"
	"testing"

	"github.com/gamelang/gamelang/ast"
	"github.com/gamelang/gamelang/diag"
	"github.com/gamelang/gamelang/evaluator"
	"github.com/gamelang/gamelang/object"
	"github.com/gamelang/gamelang/scope"
)

// Runner is a test utility that bundles everything an evaluation needs.
type Runner struct {
	t *testing.T

	Scope     *scope.Manager
	Collector *diag.Collector
	Mode      *evaluator.ModeFlag
	Eval      *evaluator.Evaluator
}

// NewRunner creates a runner in parse-time mode with a seeded generator.
// Log output goes through t.Log.
func NewRunner(t *testing.T, opts ...evaluator.Option) *Runner {
	t.Helper()
	r := &Runner{
		t:         t,
		Scope:     scope.NewManager(),
		Collector: diag.NewCollector(),
		Mode:      &evaluator.ModeFlag{},
	}
	base := []evaluator.Option{
		evaluator.WithReporter(r.Collector),
		evaluator.WithMode(r.Mode),
		evaluator.WithRand(rand.New(rand.NewPCG(1, 2))),
		evaluator.WithLogger(slog.New(slog.NewTextHandler(testWriter{t}, &slog.HandlerOptions{Level: slog.LevelWarn}))),
	}
	r.Eval = evaluator.New(r.Scope, append(base, opts...)...)
	return r
}

// Declare adds symbols to the innermost scope, failing the test on a duplicate.
func (r *Runner) Declare(syms ...*scope.Symbol) *Runner {
	r.t.Helper()
	for _, sym := range syms {
		if !r.Scope.AddToCurrentScope(sym) {
			r.t.Fatalf("could not declare %q", sym.Name())
		}
	}
	return r
}

// Fold evaluates node in parse-time mode.
func (r *Runner) Fold(node ast.Expr) object.Value {
	r.t.Helper()
	r.Mode.SetExecuting(false)
	return r.Eval.Eval(context.Background(), node)
}

// Exec evaluates node in execution mode.
func (r *Runner) Exec(node ast.Expr) object.Value {
	r.t.Helper()
	r.Mode.SetExecuting(true)
	defer r.Mode.SetExecuting(false)
	return r.Eval.Eval(context.Background(), node)
}

// TypeOf returns the static type of node.
func (r *Runner) TypeOf(node ast.Expr) object.ObjectType {
	r.t.Helper()
	return r.Eval.TypeOf(context.Background(), node)
}

// Kinds returns the kinds reported so far.
func (r *Runner) Kinds() []diag.Kind { return r.Collector.Kinds() }

type testWriter struct{ t *testing.T }

func (w testWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(string(p))
	return len(p), nil
}
