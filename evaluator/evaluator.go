package evaluator

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"os"

	"github.com/gamelang/gamelang/ast"
	"github.com/gamelang/gamelang/diag"
	"github.com/gamelang/gamelang/object"
	"github.com/gamelang/gamelang/scope"
)

// Mode tells the evaluator whether the program is really executing or
// whether expressions are being folded at parse time.
type Mode interface {
	Executing() bool
}

// ModeFlag is a settable Mode. The zero value is parse-time mode.
type ModeFlag struct {
	executing bool
}

// Executing reports whether true program execution is in progress.
func (m *ModeFlag) Executing() bool { return m.executing }

// SetExecuting switches between execution and parse-time mode.
func (m *ModeFlag) SetExecuting(executing bool) { m.executing = executing }

// RandSource supplies non-negative pseudo-random integers in [0, n).
// *rand.Rand from math/rand/v2 satisfies it.
type RandSource interface {
	IntN(n int) int
}

type globalRand struct{}

func (globalRand) IntN(n int) int { return rand.IntN(n) }

// Evaluator evaluates expression trees against a scope manager.
// It is not safe for concurrent use.
type Evaluator struct {
	scope    *scope.Manager
	reporter diag.Reporter
	mode     Mode
	rand     RandSource
	logger   *slog.Logger

	// stack holds the nodes currently being evaluated, outermost first.
	stack []ast.Expr
	// probing is set on the silent copy used to compute static types.
	probing bool
}

// Option configures an Evaluator.
type Option func(*Evaluator)

// WithReporter sets the sink that receives diagnostics.
func WithReporter(r diag.Reporter) Option {
	return func(e *Evaluator) {
		e.reporter = r
	}
}

// WithMode sets the execution-mode oracle consulted by / and %.
func WithMode(m Mode) Option {
	return func(e *Evaluator) {
		e.mode = m
	}
}

// WithRand sets the generator used by random().
func WithRand(r RandSource) Option {
	return func(e *Evaluator) {
		e.rand = r
	}
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Evaluator) {
		e.logger = logger
	}
}

// New creates a new Evaluator resolving variables through sm.
// Without options, diagnostics are discarded, the mode is parse-time,
// and random() draws from the math/rand/v2 global generator.
func New(sm *scope.Manager, opts ...Option) *Evaluator {
	e := &Evaluator{
		scope:    sm,
		reporter: diag.Discard,
		mode:     &ModeFlag{},
		rand:     globalRand{},
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.logger == nil {
		e.logger = slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
	}
	if e.scope == nil {
		e.scope = scope.NewManager()
	}
	return e
}

// Scope returns the scope manager used to resolve variables.
func (e *Evaluator) Scope() *scope.Manager { return e.scope }

// Eval evaluates node and returns its value. Faults are reported and
// replaced by a substitute value; a nil result means the node had no value
// to offer (see the trigonometric functions).
func (e *Evaluator) Eval(ctx context.Context, node ast.Expr) object.Value {
	if node == nil {
		return nil
	}
	e.stack = append(e.stack, node)
	defer func() { e.stack = e.stack[:len(e.stack)-1] }()

	switch n := node.(type) {
	case *ast.Literal:
		return e.evalLiteral(n)
	case *ast.Variable:
		return e.evalVariable(ctx, n)
	case *ast.BinaryExpr:
		return e.evalBinaryExpr(ctx, n)
	case *ast.UnaryExpr:
		return e.evalUnaryExpr(ctx, n)
	}
	e.logc(ctx, slog.LevelError, "evaluation not implemented", "node", fmt.Sprintf("%T", node))
	return nil
}

// executing consults the mode oracle.
func (e *Evaluator) executing() bool {
	return e.mode != nil && e.mode.Executing()
}

// probe returns a copy that shares the scope but reports nothing and draws
// from its own generator, so static type queries leave no trace.
func (e *Evaluator) probe() *Evaluator {
	p := *e
	p.reporter = diag.Discard
	p.rand = rand.New(rand.NewPCG(0, 0))
	p.stack = e.stack[:len(e.stack):len(e.stack)]
	p.probing = true
	return &p
}
