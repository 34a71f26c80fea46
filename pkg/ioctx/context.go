package ioctx

import (
	"context"
	"fmt"
	"io"
)

type stdoutKey struct{}
type stderrKey struct{}

// StderrFromContext returns the diagnostics sink, or io.Discard when none was
// installed.
func StderrFromContext(ctx context.Context) io.Writer {
	w := ctx.Value(stderrKey{})
	if w == nil {
		w = io.Discard
	}

	return w.(io.Writer)
}

func StderrToContext(ctx context.Context, w io.Writer) context.Context {
	return context.WithValue(ctx, stderrKey{}, w)
}

// StdoutFromContext returns the program output sink, or io.Discard when none
// was installed.
func StdoutFromContext(ctx context.Context) io.Writer {
	w := ctx.Value(stdoutKey{})
	if w == nil {
		w = io.Discard
	}

	return w.(io.Writer)
}

func StdoutToContext(ctx context.Context, w io.Writer) context.Context {
	return context.WithValue(ctx, stdoutKey{}, w)
}

// WithWriter routes both program output and diagnostics to w, so that the two
// streams interleave in the order they were produced.
func WithWriter(ctx context.Context, w io.Writer) context.Context {
	return StderrToContext(StdoutToContext(ctx, w), w)
}

// Println writes one line of program output.
func Println(ctx context.Context, a ...any) {
	_, _ = fmt.Fprintln(StdoutFromContext(ctx), a...)
}

// Diagnosef writes one line to the diagnostics sink.
func Diagnosef(ctx context.Context, format string, a ...any) {
	_, _ = fmt.Fprintf(StderrFromContext(ctx), format+"\n", a...)
}
