package imp

import (
	"context"
)

// Grouped represents a parenthesized expression. It evaluates and infers
// exactly as its inner expression; only its rendering differs.
type Grouped struct {
	Expr Expr
}

var _ Expr = (*Grouped)(nil)

func (g *Grouped) Pretty() string { return "(" + g.Expr.Pretty() + ")" }

func (g *Grouped) Walk(fn func(Node) bool) {
	if fn(g) {
		g.Expr.Walk(fn)
	}
}

func (g *Grouped) DeclaredSymbols() []string { return g.Expr.DeclaredSymbols() }

func (g *Grouped) ReferencedSymbols() []string { return g.Expr.ReferencedSymbols() }

func (g *Grouped) Eval(ctx context.Context, env *EvalEnv) (Value, error) {
	return g.Expr.Eval(ctx, env)
}

func (g *Grouped) Infer(ctx context.Context, env *TypeEnv) Type {
	return g.Expr.Infer(ctx, env)
}
