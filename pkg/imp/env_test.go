package imp

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEvalEnv(t *testing.T) {
	env := NewEvalEnv()

	_, err := env.Get("x")
	require.ErrorIs(t, err, ErrUndeclaredVariable)
	require.EqualError(t, err, `undeclared variable "x"`)

	require.ErrorIs(t, env.Reassign("x", IntValue{Val: 1}), ErrUndeclaredVariable)
	require.Zero(t, env.Len(), "reassignment must not declare")

	env.Declare("x", IntValue{Val: 1})
	require.NoError(t, env.Reassign("x", IntValue{Val: 2}))

	v, err := env.Get("x")
	require.NoError(t, err)
	require.Equal(t, IntValue{Val: 2}, v)

	env.Declare("b", BoolValue{Val: true})
	env.Declare("u", UndefinedValue{})
	require.Equal(t, "{b: true, u: undefined, x: 2}", env.String())
}

func TestTypeEnv(t *testing.T) {
	env := NewTypeEnv()
	require.Equal(t, "{}", env.String())

	_, err := env.Get("x")
	require.ErrorIs(t, err, ErrUndeclaredVariable)

	env.Declare("y", BoolType)
	env.Declare("x", IntType)

	typ, found := env.Lookup("x")
	require.True(t, found)
	require.Equal(t, IntType, typ)
	require.Equal(t, "{x: int, y: bool}", env.String())

	var names []string
	for name := range env.Bindings() {
		names = append(names, name)
		break
	}
	require.Equal(t, []string{"x"}, names)
}

func TestValuesAndTypes(t *testing.T) {
	require.Equal(t, "7", IntValue{Val: 7}.String())
	require.Equal(t, "true", BoolValue{Val: true}.String())
	require.Equal(t, "undefined", UndefinedValue{}.String())

	require.Equal(t, IntType, IntValue{}.Type())
	require.Equal(t, BoolType, BoolValue{}.Type())
	require.Equal(t, IllTyped, UndefinedValue{}.Type())

	require.Equal(t, "int", IntType.String())
	require.Equal(t, "bool", BoolType.String())
	require.Equal(t, "illtyped", IllTyped.String())
	require.False(t, IllTyped.WellTyped())

	require.True(t, sameKind(IntValue{Val: 1}, IntValue{Val: 2}))
	require.False(t, sameKind(IntValue{Val: 1}, BoolValue{Val: true}))
}
