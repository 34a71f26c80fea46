package imp

import (
	"context"
)

// Node is any element of a program tree. Trees are built once by the builder
// functions and never mutated afterwards; each composite node owns its
// children outright.
type Node interface {
	// Pretty renders the node as source-like text. It has no side effects.
	Pretty() string

	// Walk recursively visits this node and all its children, calling fn for
	// each node. The callback returns true to continue walking into children,
	// false to skip children.
	Walk(fn func(Node) bool)

	// DeclaredSymbols returns the names this node introduces.
	DeclaredSymbols() []string

	// ReferencedSymbols returns the names this node reads or writes.
	ReferencedSymbols() []string
}

// Expr is an expression node.
type Expr interface {
	Node

	// Eval computes the expression's value. Operand mismatches yield
	// UndefinedValue; the only error is reading an undeclared variable.
	Eval(ctx context.Context, env *EvalEnv) (Value, error)

	// Infer computes the expression's static type, IllTyped if none.
	Infer(ctx context.Context, env *TypeEnv) Type
}

// Stmt is a statement node.
type Stmt interface {
	Node

	// Exec runs the statement for effect against env. Soft failures are
	// reported as diagnostics; the returned error is only ever a contract
	// violation that aborts the run.
	Exec(ctx context.Context, env *EvalEnv) error

	// Check reports whether the statement is well typed, binding declared
	// names in env as it goes. Bindings made before a failure are kept.
	Check(ctx context.Context, env *TypeEnv) (bool, error)
}

// Symbols returns the distinct names declared and referenced anywhere in
// the tree rooted at n, each in first-seen order.
func Symbols(n Node) (declared, referenced []string) {
	return dedupe(n.DeclaredSymbols()), dedupe(n.ReferencedSymbols())
}

// CountNodes returns the number of nodes in the tree rooted at n.
func CountNodes(n Node) int {
	count := 0
	n.Walk(func(Node) bool {
		count++
		return true
	})
	return count
}

func dedupe(names []string) []string {
	var out []string
	seen := map[string]bool{}
	for _, name := range names {
		if !seen[name] {
			seen[name] = true
			out = append(out, name)
		}
	}
	return out
}
