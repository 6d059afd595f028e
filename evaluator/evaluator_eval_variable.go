package evaluator

import (
	"context"
	"log/slog"
	"strconv"

	"github.com/gamelang/gamelang/ast"
	"github.com/gamelang/gamelang/diag"
	"github.com/gamelang/gamelang/object"
)

// absentTypeName is shown when an index expression produced no value.
const absentTypeName = "none"

func (e *Evaluator) evalVariable(ctx context.Context, n *ast.Variable) object.Value {
	if n.Name == "" {
		return neutral()
	}

	sym, ok := e.scope.Lookup(n.Name)
	if !ok {
		e.report(ctx, diag.New(diag.UndeclaredVariable, n.DisplayName()))
		return neutral()
	}

	if n.Index == nil {
		// A whole-array reference is not checked here; reading it as a
		// scalar fails and the node has no value.
		v, err := sym.Constant()
		if err != nil {
			e.logc(ctx, slog.LevelDebug, "whole symbol read has no value", "name", n.Name, "error", err)
			return nil
		}
		return v
	}

	if sym.Count() == 1 {
		e.report(ctx, diag.New(diag.VariableNotAnArray, n.Name))
		return neutral()
	}

	index := e.Eval(ctx, n.Index)
	if index == nil {
		e.report(ctx, diag.New(diag.ArrayIndexMustBeAnInteger, n.Name, absentTypeName))
		return neutral()
	}
	if index.Type() != object.INTEGER_OBJ {
		e.report(ctx, diag.New(diag.ArrayIndexMustBeAnInteger, n.Name, index.Type().Name()))
		return neutral()
	}

	i := index.AsInt()
	if i < 0 || i >= int64(sym.Count()) {
		e.report(ctx, diag.New(diag.ArrayIndexOutOfBounds, n.Name, strconv.FormatInt(i, 10)))
		return neutral()
	}

	v, err := sym.ConstantAt(int(i))
	if err != nil {
		e.logc(ctx, slog.LevelError, "bounds-checked read failed", "name", n.Name, "index", i, "error", err)
		return neutral()
	}
	return v
}
