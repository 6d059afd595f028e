package evaluator

import (
	"context"
	"log/slog"

	"github.com/gamelang/gamelang/diag"
	"github.com/gamelang/gamelang/object"
)

// report logs d and hands it to the reporter.
func (e *Evaluator) report(ctx context.Context, d diag.Diagnostic) {
	if !e.probing {
		e.logcWithCallerDepth(ctx, slog.LevelWarn, 2, d.Message(), "kind", d.Kind.String(), "side", d.Side.String(), "args", d.Args)
	}
	e.reporter.Report(d)
}

// neutral is the substitute returned by a node after reporting a fault.
func neutral() object.Value { return object.NewInteger(0) }

func boolValue(b bool) object.Value {
	if b {
		return object.NewInteger(1)
	}
	return object.NewInteger(0)
}
