package imp

import (
	"bytes"
	"context"
	"log/slog"
	"strconv"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/vito/imp/pkg/ioctx"
)

// DefaultBanner separates consecutive runs in a transcript.
const DefaultBanner = "*******"

// RunOptions controls how the driver reports a run.
type RunOptions struct {
	// Banner is written before each run. Empty means DefaultBanner.
	Banner string

	// ShowTypes additionally reports the type environment after a statement
	// has been checked.
	ShowTypes bool

	// Parallel makes RunAll run samples concurrently. Each run still gets
	// its own environments, and output is flushed in sample order.
	Parallel bool
}

func (opts RunOptions) banner() string {
	if opts.Banner == "" {
		return DefaultBanner
	}
	return opts.Banner
}

// Report is what a single run observed.
type Report struct {
	// Value and Type are set for expression runs.
	Value Value
	Type  Type

	// Values, Types and WellTyped are set for statement runs.
	Values    *EvalEnv
	Types     *TypeEnv
	WellTyped bool
}

// Run dispatches to RunExpr or RunStmt.
func Run(ctx context.Context, node Node, opts RunOptions) (*Report, error) {
	switch n := node.(type) {
	case Expr:
		return RunExpr(ctx, n, opts)
	case Stmt:
		return RunStmt(ctx, n, opts)
	default:
		return nil, errors.Errorf("node of type %T is unhandled", node)
	}
}

// RunExpr prints the expression, its value and its inferred type, using
// fresh environments.
func RunExpr(ctx context.Context, expr Expr, opts RunOptions) (*Report, error) {
	ioctx.Println(ctx, opts.banner())
	ioctx.Println(ctx, expr.Pretty())

	val, err := expr.Eval(ctx, NewEvalEnv())
	if err != nil {
		return nil, errors.Wrapf(err, "evaluating %s", expr.Pretty())
	}
	ioctx.Println(ctx, val.String())

	t := expr.Infer(ctx, NewTypeEnv())
	ioctx.Println(ctx, t.String())

	slog.DebugContext(ctx, "expression run completed", "value", val.String(), "type", t)

	return &Report{Value: val, Type: t}, nil
}

// RunStmt prints the statement, executes it, prints the final state, and then
// type checks it against a fresh type environment.
func RunStmt(ctx context.Context, stmt Stmt, opts RunOptions) (*Report, error) {
	ioctx.Println(ctx, opts.banner())
	ioctx.Println(ctx, stmt.Pretty())

	values := NewEvalEnv()
	if err := stmt.Exec(ctx, values); err != nil {
		return nil, errors.Wrapf(err, "executing %s", stmt.Pretty())
	}
	ioctx.Println(ctx, "state: "+values.String())

	types := NewTypeEnv()
	ok, err := stmt.Check(ctx, types)
	if err != nil {
		return nil, errors.Wrapf(err, "checking %s", stmt.Pretty())
	}
	if opts.ShowTypes {
		ioctx.Println(ctx, "types: "+types.String())
	}
	ioctx.Println(ctx, "type checker: "+strconv.FormatBool(ok))

	slog.DebugContext(ctx, "statement run completed",
		"nodes", CountNodes(stmt),
		"bindings", values.Len(),
		"well_typed", ok)

	return &Report{Values: values, Types: types, WellTyped: ok}, nil
}

// RunAll runs every sample. A sample that fails with a contract violation
// has its error reported on the diagnostics sink and does not stop the
// others; the error of the earliest failing sample in the given order is
// returned, in parallel mode too.
//
// In parallel mode each run's output and diagnostics are buffered together
// and written to the stdout sink in sample order once all runs are done.
func RunAll(ctx context.Context, samples []Sample, opts RunOptions) error {
	if !opts.Parallel {
		var firstErr error
		for _, sample := range samples {
			if err := runSample(ctx, sample, opts); err != nil && firstErr == nil {
				firstErr = err
			}
		}
		return firstErr
	}

	outputs := make([]bytes.Buffer, len(samples))
	errs := make([]error, len(samples))

	var eg errgroup.Group
	for i, sample := range samples {
		eg.Go(func() error {
			errs[i] = runSample(ioctx.WithWriter(ctx, &outputs[i]), sample, opts)
			return nil
		})
	}
	_ = eg.Wait()

	var firstErr error
	stdout := ioctx.StdoutFromContext(ctx)
	for i := range outputs {
		if _, err := outputs[i].WriteTo(stdout); err != nil && firstErr == nil {
			firstErr = err
		}
		if errs[i] != nil && firstErr == nil {
			firstErr = errs[i]
		}
	}
	return firstErr
}

func runSample(ctx context.Context, sample Sample, opts RunOptions) error {
	slog.DebugContext(ctx, "running sample", "sample", sample.Name)
	if _, err := Run(ctx, sample.Node, opts); err != nil {
		ioctx.Diagnosef(ctx, "%s: %s", sample.Name, err)
		return errors.Wrapf(err, "sample %s", sample.Name)
	}
	return nil
}
