// Package gamelang is the entry point for evaluating expression trees.
//
// An Interpreter bundles a scope stack, an evaluator and a diagnostic
// collector. Fold evaluates in parse-time mode, where constant divisions by
// zero are reported; Exec evaluates during program execution.
package gamelang

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime"

	"github.com/gamelang/gamelang/ast"
	"github.com/gamelang/gamelang/diag"
	"github.com/gamelang/gamelang/evaluator"
	"github.com/gamelang/gamelang/object"
	"github.com/gamelang/gamelang/scope"
)

// Re-export core types for convenience.
type (
	Value      = object.Value
	ObjectType = object.ObjectType
	Expr       = ast.Expr
	Symbol     = scope.Symbol
	Diagnostic = diag.Diagnostic
)

// ErrAlreadyDeclared is returned by Declare when the innermost scope
// already holds a symbol with the same name.
var ErrAlreadyDeclared = errors.New("symbol already declared in the current scope")

// Interpreter is the main public entry point. It is not safe for concurrent use.
type Interpreter struct {
	scope     *scope.Manager
	collector *diag.Collector
	mode      *evaluator.ModeFlag
	eval      *evaluator.Evaluator

	logger    *slog.Logger
	rand      evaluator.RandSource
	reporters []diag.Reporter
}

// Option is a functional option for configuring the Interpreter.
type Option func(*Interpreter)

// WithLogger sets the logger used by the evaluator.
func WithLogger(logger *slog.Logger) Option {
	return func(i *Interpreter) {
		i.logger = logger
	}
}

// WithRand sets the generator used by random().
func WithRand(r evaluator.RandSource) Option {
	return func(i *Interpreter) {
		i.rand = r
	}
}

// WithScope evaluates against an existing scope manager instead of a fresh one.
func WithScope(sm *scope.Manager) Option {
	return func(i *Interpreter) {
		i.scope = sm
	}
}

// WithReporter forwards every diagnostic to r in addition to the
// interpreter's own collector.
func WithReporter(r diag.Reporter) Option {
	return func(i *Interpreter) {
		i.reporters = append(i.reporters, r)
	}
}

// New creates a new interpreter configured with options.
func New(options ...Option) *Interpreter {
	i := &Interpreter{
		collector: diag.NewCollector(),
		mode:      &evaluator.ModeFlag{},
	}
	for _, opt := range options {
		opt(i)
	}
	if i.scope == nil {
		i.scope = scope.NewManager()
	}

	reporters := append([]diag.Reporter{i.collector}, i.reporters...)
	evalOptions := []evaluator.Option{
		evaluator.WithMode(i.mode),
		evaluator.WithReporter(diag.ReporterFunc(func(d diag.Diagnostic) {
			for _, r := range reporters {
				r.Report(d)
			}
		})),
	}
	if i.logger != nil {
		evalOptions = append(evalOptions, evaluator.WithLogger(i.logger))
	}
	if i.rand != nil {
		evalOptions = append(evalOptions, evaluator.WithRand(i.rand))
	}
	i.eval = evaluator.New(i.scope, evalOptions...)
	return i
}

// NewFromConfig creates an interpreter whose logger and generator follow cfg.
// Options are applied after the configured ones and may override them.
func NewFromConfig(cfg *Config, options ...Option) (*Interpreter, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	logger, err := cfg.Logger()
	if err != nil {
		return nil, fmt.Errorf("configuring logger: %w", err)
	}
	base := []Option{WithLogger(logger)}
	if r := cfg.Rand(); r != nil {
		base = append(base, WithRand(r))
	}
	return New(append(base, options...)...), nil
}

// Scope returns the scope manager variables are resolved through.
func (i *Interpreter) Scope() *scope.Manager { return i.scope }

// Declare adds symbols to the innermost scope.
func (i *Interpreter) Declare(syms ...*scope.Symbol) error {
	for _, sym := range syms {
		if sym == nil {
			return fmt.Errorf("declare: nil symbol")
		}
		if !i.scope.AddToCurrentScope(sym) {
			return fmt.Errorf("declare %q: %w", sym.Name(), ErrAlreadyDeclared)
		}
	}
	return nil
}

// Fold evaluates expr in parse-time mode.
func (i *Interpreter) Fold(ctx context.Context, expr ast.Expr) object.Value {
	i.mode.SetExecuting(false)
	return i.eval.Eval(ctx, expr)
}

// Exec evaluates expr in execution mode. An integer division or modulus by
// zero is returned as an error instead of crashing the caller.
func (i *Interpreter) Exec(ctx context.Context, expr ast.Expr) (result object.Value, err error) {
	i.mode.SetExecuting(true)
	defer i.mode.SetExecuting(false)
	defer func() {
		if r := recover(); r != nil {
			rerr, ok := r.(runtime.Error)
			if !ok {
				panic(r)
			}
			result, err = nil, fmt.Errorf("executing %s: %w", expr, rerr)
		}
	}()
	return i.eval.Eval(ctx, expr), nil
}

// TypeOf returns the static type of expr without reporting anything.
func (i *Interpreter) TypeOf(ctx context.Context, expr ast.Expr) object.ObjectType {
	return i.eval.TypeOf(ctx, expr)
}

// Unresolved returns the variables referenced by expr that no visible
// scope declares, in first-use order.
func (i *Interpreter) Unresolved(expr ast.Expr) []string {
	var names []string
	for _, name := range ast.References(expr) {
		if name == "" {
			continue
		}
		if _, ok := i.scope.Lookup(name); !ok {
			names = append(names, name)
		}
	}
	return names
}

// Diagnostics returns everything reported since the last reset, in order.
func (i *Interpreter) Diagnostics() []diag.Diagnostic {
	return i.collector.Diagnostics()
}

// ResetDiagnostics clears the collected diagnostics.
func (i *Interpreter) ResetDiagnostics() {
	i.collector.Reset()
}
