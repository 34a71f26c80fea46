package imp

import (
	"iter"
	"maps"
	"slices"
	"strings"
)

// EvalEnv maps variable names to their current runtime values. A fresh one is
// created for every top-level run and threaded by pointer through Eval and
// Exec.
type EvalEnv struct {
	vals map[string]Value
}

func NewEvalEnv() *EvalEnv {
	return &EvalEnv{vals: make(map[string]Value)}
}

// Get returns the value bound to name, or an *UndeclaredVariableError.
func (env *EvalEnv) Get(name string) (Value, error) {
	v, ok := env.vals[name]
	if !ok {
		return nil, &UndeclaredVariableError{Name: name}
	}
	return v, nil
}

// Declare binds name, replacing any previous binding.
func (env *EvalEnv) Declare(name string, v Value) {
	env.vals[name] = v
}

// Reassign replaces the value of an already declared name. The key set never
// grows through Reassign.
func (env *EvalEnv) Reassign(name string, v Value) error {
	if _, ok := env.vals[name]; !ok {
		return &UndeclaredVariableError{Name: name}
	}
	env.vals[name] = v
	return nil
}

func (env *EvalEnv) Len() int { return len(env.vals) }

// Bindings yields every binding in name order.
func (env *EvalEnv) Bindings() iter.Seq2[string, Value] {
	return sortedBindings(env.vals)
}

// String renders the environment as {a: 1, b: true}.
func (env *EvalEnv) String() string {
	return renderBindings(env.Bindings())
}

// TypeEnv maps variable names to their inferred static types. It is populated
// by Check and is independent of any EvalEnv.
type TypeEnv struct {
	types map[string]Type
}

func NewTypeEnv() *TypeEnv {
	return &TypeEnv{types: make(map[string]Type)}
}

// Get returns the type bound to name, or an *UndeclaredVariableError.
func (env *TypeEnv) Get(name string) (Type, error) {
	t, ok := env.types[name]
	if !ok {
		return IllTyped, &UndeclaredVariableError{Name: name}
	}
	return t, nil
}

func (env *TypeEnv) Lookup(name string) (Type, bool) {
	t, ok := env.types[name]
	return t, ok
}

// Declare binds name, replacing any previous binding.
func (env *TypeEnv) Declare(name string, t Type) {
	env.types[name] = t
}

func (env *TypeEnv) Len() int { return len(env.types) }

func (env *TypeEnv) Bindings() iter.Seq2[string, Type] {
	return sortedBindings(env.types)
}

// String renders the environment as {a: int, b: bool}.
func (env *TypeEnv) String() string {
	return renderBindings(env.Bindings())
}

func sortedBindings[V any](m map[string]V) iter.Seq2[string, V] {
	return func(yield func(string, V) bool) {
		for _, name := range slices.Sorted(maps.Keys(m)) {
			if !yield(name, m[name]) {
				return
			}
		}
	}
}

func renderBindings[V interface{ String() string }](bindings iter.Seq2[string, V]) string {
	var b strings.Builder
	b.WriteString("{")
	first := true
	for name, v := range bindings {
		if !first {
			b.WriteString(", ")
		}
		first = false
		b.WriteString(name)
		b.WriteString(": ")
		b.WriteString(v.String())
	}
	b.WriteString("}")
	return b.String()
}
