package imp

import (
	"context"
	"log/slog"

	"github.com/pkg/errors"

	"github.com/vito/imp/pkg/ioctx"
)

// Sequence runs First to completion, then Second.
type Sequence struct {
	First  Stmt
	Second Stmt
}

var _ Stmt = (*Sequence)(nil)

func (s *Sequence) Pretty() string { return s.First.Pretty() + ";" + s.Second.Pretty() }

func (s *Sequence) Walk(fn func(Node) bool) {
	if fn(s) {
		s.First.Walk(fn)
		s.Second.Walk(fn)
	}
}

func (s *Sequence) DeclaredSymbols() []string {
	return append(s.First.DeclaredSymbols(), s.Second.DeclaredSymbols()...)
}

func (s *Sequence) ReferencedSymbols() []string {
	return append(s.First.ReferencedSymbols(), s.Second.ReferencedSymbols()...)
}

func (s *Sequence) Exec(ctx context.Context, env *EvalEnv) error {
	if err := s.First.Exec(ctx, env); err != nil {
		return err
	}
	return s.Second.Exec(ctx, env)
}

// Check stops at the first ill-typed statement; Second is not checked at all
// when First fails.
func (s *Sequence) Check(ctx context.Context, env *TypeEnv) (bool, error) {
	ok, err := s.First.Check(ctx, env)
	if err != nil || !ok {
		return false, err
	}
	return s.Second.Check(ctx, env)
}

// Let declares Name with the value of Value. Redeclaring a name silently
// replaces it.
type Let struct {
	Name  string
	Value Expr
}

var _ Stmt = (*Let)(nil)

func (l *Let) Pretty() string { return l.Name + ":= " + l.Value.Pretty() }

func (l *Let) Walk(fn func(Node) bool) {
	if fn(l) {
		l.Value.Walk(fn)
	}
}

func (l *Let) DeclaredSymbols() []string { return []string{l.Name} }

func (l *Let) ReferencedSymbols() []string { return l.Value.ReferencedSymbols() }

func (l *Let) Exec(ctx context.Context, env *EvalEnv) error {
	val, err := l.Value.Eval(ctx, env)
	if err != nil {
		return errors.Wrapf(err, "declaring %s", l.Name)
	}
	env.Declare(l.Name, val)
	slog.DebugContext(ctx, "declared", "name", l.Name, "value", val.String())
	return nil
}

func (l *Let) Check(ctx context.Context, env *TypeEnv) (bool, error) {
	t := l.Value.Infer(ctx, env)
	if t == IllTyped {
		return false, nil
	}
	env.Declare(l.Name, t)
	return true, nil
}

// Reassignment stores a new value into an already declared variable, provided
// both the old and the new value are defined and of the same kind.
type Reassignment struct {
	Name  string
	Value Expr
}

var _ Stmt = (*Reassignment)(nil)

func (r *Reassignment) Pretty() string { return r.Name + " = " + r.Value.Pretty() }

func (r *Reassignment) Walk(fn func(Node) bool) {
	if fn(r) {
		r.Value.Walk(fn)
	}
}

func (r *Reassignment) DeclaredSymbols() []string { return nil }

func (r *Reassignment) ReferencedSymbols() []string {
	return append([]string{r.Name}, r.Value.ReferencedSymbols()...)
}

func (r *Reassignment) Exec(ctx context.Context, env *EvalEnv) error {
	cur, err := env.Get(r.Name)
	if err != nil {
		return errors.Wrap(err, "reassigning")
	}
	val, err := r.Value.Eval(ctx, env)
	if err != nil {
		return errors.Wrapf(err, "reassigning %s", r.Name)
	}

	switch {
	case IsUndefined(val):
		ioctx.Diagnosef(ctx, diagUndefinedValue, r.Name, r.Value.Pretty())
		return nil
	case IsUndefined(cur):
		ioctx.Diagnosef(ctx, diagUndefinedVar, r.Name)
		return nil
	case !sameKind(cur, val):
		ioctx.Diagnosef(ctx, diagKindMismatch, r.Name, val.Type(), cur.Type())
		return nil
	}

	slog.DebugContext(ctx, "reassigned", "name", r.Name, "from", cur.String(), "to", val.String())
	return env.Reassign(r.Name, val)
}

// Check compares the value's type against the existing binding. The name
// must already be bound; an unbound name is an error, not a failed check.
func (r *Reassignment) Check(ctx context.Context, env *TypeEnv) (bool, error) {
	t := r.Value.Infer(ctx, env)
	bound, err := env.Get(r.Name)
	if err != nil {
		return false, errors.Wrap(err, "checking reassignment")
	}
	return bound == t, nil
}

// Conditional runs Then when Cond is true and Else when it is false.
type Conditional struct {
	Cond Expr
	Then Stmt
	Else Stmt
}

var _ Stmt = (*Conditional)(nil)

func (c *Conditional) Pretty() string {
	return "if " + c.Cond.Pretty() + " then " + c.Then.Pretty() + " else " + c.Else.Pretty()
}

func (c *Conditional) Walk(fn func(Node) bool) {
	if fn(c) {
		c.Cond.Walk(fn)
		c.Then.Walk(fn)
		c.Else.Walk(fn)
	}
}

func (c *Conditional) DeclaredSymbols() []string {
	return append(c.Then.DeclaredSymbols(), c.Else.DeclaredSymbols()...)
}

func (c *Conditional) ReferencedSymbols() []string {
	symbols := c.Cond.ReferencedSymbols()
	symbols = append(symbols, c.Then.ReferencedSymbols()...)
	return append(symbols, c.Else.ReferencedSymbols()...)
}

func (c *Conditional) Exec(ctx context.Context, env *EvalEnv) error {
	cond, err := c.Cond.Eval(ctx, env)
	if err != nil {
		return errors.Wrap(err, "evaluating if condition")
	}
	b, ok := cond.(BoolValue)
	if !ok {
		ioctx.Diagnosef(ctx, diagIfCondition, c.Cond.Pretty(), cond)
		return nil
	}
	if b.Val {
		return c.Then.Exec(ctx, env)
	}
	return c.Else.Exec(ctx, env)
}

// Check checks both branches, whichever one would run.
func (c *Conditional) Check(ctx context.Context, env *TypeEnv) (bool, error) {
	if c.Cond.Infer(ctx, env) == IllTyped {
		return false, nil
	}
	thenOK, err := c.Then.Check(ctx, env)
	if err != nil {
		return false, err
	}
	elseOK, err := c.Else.Check(ctx, env)
	if err != nil {
		return false, err
	}
	return thenOK && elseOK, nil
}

// WhileLoop runs Body for as long as Cond evaluates to true. There is no
// iteration bound.
type WhileLoop struct {
	Cond Expr
	Body Stmt
}

var _ Stmt = (*WhileLoop)(nil)

func (w *WhileLoop) Pretty() string { return "while " + w.Cond.Pretty() + " " + w.Body.Pretty() }

func (w *WhileLoop) Walk(fn func(Node) bool) {
	if fn(w) {
		w.Cond.Walk(fn)
		w.Body.Walk(fn)
	}
}

func (w *WhileLoop) DeclaredSymbols() []string { return w.Body.DeclaredSymbols() }

func (w *WhileLoop) ReferencedSymbols() []string {
	return append(w.Cond.ReferencedSymbols(), w.Body.ReferencedSymbols()...)
}

func (w *WhileLoop) Exec(ctx context.Context, env *EvalEnv) error {
	iterations := 0
	for {
		cond, err := w.Cond.Eval(ctx, env)
		if err != nil {
			return errors.Wrap(err, "evaluating while condition")
		}
		b, ok := cond.(BoolValue)
		if !ok {
			ioctx.Diagnosef(ctx, diagWhileCondition, w.Cond.Pretty(), cond)
			break
		}
		if !b.Val {
			break
		}
		if err := w.Body.Exec(ctx, env); err != nil {
			return err
		}
		iterations++
	}
	slog.DebugContext(ctx, "loop finished", "cond", w.Cond.Pretty(), "iterations", iterations)
	return nil
}

func (w *WhileLoop) Check(ctx context.Context, env *TypeEnv) (bool, error) {
	if w.Cond.Infer(ctx, env) == IllTyped {
		return false, nil
	}
	return w.Body.Check(ctx, env)
}

// PrintStmt writes the value of Value to the output sink, one line per
// statement. UndefinedValue is printed as "undefined".
type PrintStmt struct {
	Value Expr
}

var _ Stmt = (*PrintStmt)(nil)

func (p *PrintStmt) Pretty() string { return "print " + p.Value.Pretty() }

func (p *PrintStmt) Walk(fn func(Node) bool) {
	if fn(p) {
		p.Value.Walk(fn)
	}
}

func (p *PrintStmt) DeclaredSymbols() []string { return nil }

func (p *PrintStmt) ReferencedSymbols() []string { return p.Value.ReferencedSymbols() }

func (p *PrintStmt) Exec(ctx context.Context, env *EvalEnv) error {
	val, err := p.Value.Eval(ctx, env)
	if err != nil {
		return errors.Wrap(err, "evaluating print")
	}
	ioctx.Println(ctx, val.String())
	return nil
}

func (p *PrintStmt) Check(ctx context.Context, env *TypeEnv) (bool, error) {
	return p.Value.Infer(ctx, env) != IllTyped, nil
}
