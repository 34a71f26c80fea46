package imp

import (
	"context"
	"strconv"
)

// Int represents an integer literal
type Int struct {
	Value int32
}

var _ Expr = (*Int)(nil)

func (i *Int) Pretty() string { return strconv.FormatInt(int64(i.Value), 10) }

func (i *Int) Walk(fn func(Node) bool) { fn(i) }

func (i *Int) DeclaredSymbols() []string { return nil }

func (i *Int) ReferencedSymbols() []string { return nil }

func (i *Int) Eval(ctx context.Context, env *EvalEnv) (Value, error) {
	return IntValue{Val: i.Value}, nil
}

func (i *Int) Infer(ctx context.Context, env *TypeEnv) Type { return IntType }

// Boolean represents a boolean literal
type Boolean struct {
	Value bool
}

var _ Expr = (*Boolean)(nil)

func (b *Boolean) Pretty() string { return strconv.FormatBool(b.Value) }

func (b *Boolean) Walk(fn func(Node) bool) { fn(b) }

func (b *Boolean) DeclaredSymbols() []string { return nil }

func (b *Boolean) ReferencedSymbols() []string { return nil }

func (b *Boolean) Eval(ctx context.Context, env *EvalEnv) (Value, error) {
	return BoolValue{Val: b.Value}, nil
}

func (b *Boolean) Infer(ctx context.Context, env *TypeEnv) Type { return BoolType }

// Symbol is a reference to a variable by name.
type Symbol struct {
	Name string
}

var _ Expr = (*Symbol)(nil)

func (s *Symbol) Pretty() string { return s.Name }

func (s *Symbol) Walk(fn func(Node) bool) { fn(s) }

func (s *Symbol) DeclaredSymbols() []string { return nil }

func (s *Symbol) ReferencedSymbols() []string { return []string{s.Name} }

// Eval returns the stored value unchanged, including a stored
// UndefinedValue. Reading a name that was never declared is an error.
func (s *Symbol) Eval(ctx context.Context, env *EvalEnv) (Value, error) {
	return env.Get(s.Name)
}

// Infer yields IllTyped for a name with no binding.
func (s *Symbol) Infer(ctx context.Context, env *TypeEnv) Type {
	t, found := env.Lookup(s.Name)
	if !found {
		return IllTyped
	}
	return t
}
