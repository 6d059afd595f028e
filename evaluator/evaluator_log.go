package evaluator

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"
)

// logc logs a message with the expression currently being evaluated.
func (e *Evaluator) logc(ctx context.Context, level slog.Level, msg string, args ...any) {
	// usually depth is 2, because logc is called from other functions
	e.logcWithCallerDepth(ctx, level, 2, msg, args...)
}

// for user, use logc instead of this function
func (e *Evaluator) logcWithCallerDepth(ctx context.Context, level slog.Level, depth int, msg string, args ...any) {
	if !e.logger.Enabled(ctx, level) {
		return
	}

	// Get execution position (the caller of this function)
	_, file, line, ok := runtime.Caller(depth)
	if ok {
		args = append([]any{slog.String("exec_pos", fmt.Sprintf("%s:%d", file, line))}, args...)
	}

	if len(e.stack) > 0 {
		args = append([]any{
			slog.String("in_expr", e.stack[len(e.stack)-1].String()),
			slog.Int("depth", len(e.stack)),
		}, args...)
	}

	e.logger.Log(ctx, level, msg, args...)

	if dumpStackEnabled && level >= slog.LevelWarn {
		dumpStack(e, os.Stderr)
	}
}

// dumpStackEnabled controls whether to dump the expression stack on diagnostics.
var dumpStackEnabled = os.Getenv("GAMELANG_DUMP_STACK") != ""

func dumpStack(e *Evaluator, w io.Writer) {
	fmt.Fprintln(w, "----------------------------------------")
	fmt.Fprintln(w, "evaluation stack:")
	for i := len(e.stack) - 1; i >= 0; i-- {
		fmt.Fprintf(w, "  at %s\n", e.stack[i])
	}
	fmt.Fprintln(w, "----------------------------------------")
}
