package imp

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vito/imp/pkg/ioctx"
)

// sinks returns a context whose program output and diagnostics are captured
// separately.
func sinks() (context.Context, *bytes.Buffer, *bytes.Buffer) {
	var stdout, stderr bytes.Buffer
	ctx := ioctx.StdoutToContext(context.Background(), &stdout)
	ctx = ioctx.StderrToContext(ctx, &stderr)
	return ctx, &stdout, &stderr
}

func bindings(env *EvalEnv) map[string]Value {
	m := map[string]Value{}
	for name, v := range env.Bindings() {
		m[name] = v
	}
	return m
}

func typeBindings(env *TypeEnv) map[string]Type {
	m := map[string]Type{}
	for name, t := range env.Bindings() {
		m[name] = t
	}
	return m
}

func TestDeclarationsInSequence(t *testing.T) {
	ctx, _, _ := sinks()
	prog := Seq(
		Decl("x", Num(1)),
		Decl("y", Plus(Num(6), Var("x"))),
	)

	env := NewEvalEnv()
	require.NoError(t, prog.Exec(ctx, env))
	require.Equal(t, map[string]Value{
		"x": IntValue{Val: 1},
		"y": IntValue{Val: 7},
	}, bindings(env))

	types := NewTypeEnv()
	ok, err := prog.Check(ctx, types)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, map[string]Type{"x": IntType, "y": IntType}, typeBindings(types))
}

func TestRedeclarationReplaces(t *testing.T) {
	ctx, _, _ := sinks()
	prog := Seq(Decl("x", Num(1)), Decl("x", Bool(true)))

	env := NewEvalEnv()
	require.NoError(t, prog.Exec(ctx, env))
	require.Equal(t, map[string]Value{"x": BoolValue{Val: true}}, bindings(env))

	types := NewTypeEnv()
	ok, err := prog.Check(ctx, types)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, map[string]Type{"x": BoolType}, typeBindings(types))
}

func TestAssignment(t *testing.T) {
	ctx, stdout, stderr := sinks()
	prog := Seq(Decl("x", Num(1)), Assign("x", Plus(Var("x"), Num(41))))

	env := NewEvalEnv()
	require.NoError(t, prog.Exec(ctx, env))
	require.Equal(t, map[string]Value{"x": IntValue{Val: 42}}, bindings(env))
	require.Empty(t, stdout.String())
	require.Empty(t, stderr.String())

	ok, err := prog.Check(ctx, NewTypeEnv())
	require.NoError(t, err)
	require.True(t, ok)
}

func TestAssignmentKindMismatch(t *testing.T) {
	ctx, stdout, stderr := sinks()
	prog := Seq(Decl("x", Num(1)), Assign("x", Bool(true)))

	env := NewEvalEnv()
	require.NoError(t, prog.Exec(ctx, env))
	require.Equal(t, map[string]Value{"x": IntValue{Val: 1}}, bindings(env))
	require.Empty(t, stdout.String())
	require.Equal(t, "assignment to x rejected: cannot assign bool value to int variable\n", stderr.String())

	ok, err := prog.Check(ctx, NewTypeEnv())
	require.NoError(t, err)
	require.False(t, ok)
}

func TestAssignmentUndefined(t *testing.T) {
	t.Run("undefined value", func(t *testing.T) {
		ctx, _, stderr := sinks()
		prog := Seq(Decl("x", Num(1)), Assign("x", Plus(Num(1), Bool(true))))

		env := NewEvalEnv()
		require.NoError(t, prog.Exec(ctx, env))
		require.Equal(t, map[string]Value{"x": IntValue{Val: 1}}, bindings(env))
		require.Equal(t, "assignment to x rejected: value (1+true) is undefined\n", stderr.String())
	})

	t.Run("undefined variable", func(t *testing.T) {
		ctx, _, stderr := sinks()
		prog := Seq(Decl("x", Not(Num(1))), Assign("x", Num(2)))

		env := NewEvalEnv()
		require.NoError(t, prog.Exec(ctx, env))
		require.Equal(t, map[string]Value{"x": UndefinedValue{}}, bindings(env))
		require.Equal(t, "assignment to x rejected: variable is undefined\n", stderr.String())
	})
}

func TestAssignmentUndeclared(t *testing.T) {
	ctx, _, _ := sinks()
	prog := Assign("x", Num(1))

	env := NewEvalEnv()
	err := prog.Exec(ctx, env)
	require.ErrorIs(t, err, ErrUndeclaredVariable)
	require.Zero(t, env.Len())

	_, err = prog.Check(ctx, NewTypeEnv())
	require.ErrorIs(t, err, ErrUndeclaredVariable)
}

func TestWhileFalseNeverRuns(t *testing.T) {
	ctx, stdout, stderr := sinks()
	prog := While(Bool(false), Print(Num(1)))

	require.NoError(t, prog.Exec(ctx, NewEvalEnv()))
	require.Empty(t, stdout.String())
	require.Empty(t, stderr.String())

	ok, err := prog.Check(ctx, NewTypeEnv())
	require.NoError(t, err)
	require.True(t, ok)
}

func TestWhileLoop(t *testing.T) {
	ctx, stdout, _ := sinks()
	prog := Seq(
		Decl("i", Num(0)),
		While(Less(Var("i"), Num(3)), Seq(
			Print(Var("i")),
			Assign("i", Plus(Var("i"), Num(1))),
		)),
	)

	env := NewEvalEnv()
	require.NoError(t, prog.Exec(ctx, env))
	require.Equal(t, "0\n1\n2\n", stdout.String())
	require.Equal(t, map[string]Value{"i": IntValue{Val: 3}}, bindings(env))
}

func TestWhileConditionNotBoolean(t *testing.T) {
	t.Run("initially", func(t *testing.T) {
		ctx, stdout, stderr := sinks()
		prog := While(Num(1), Print(Num(1)))

		require.NoError(t, prog.Exec(ctx, NewEvalEnv()))
		require.Empty(t, stdout.String())
		require.Equal(t, "while condition 1 is not a boolean: got 1\n", stderr.String())
	})

	t.Run("after an iteration", func(t *testing.T) {
		ctx, stdout, stderr := sinks()
		prog := Seq(
			Decl("go", Bool(true)),
			While(Var("go"), Seq(
				Print(Num(1)),
				Decl("go", Num(0)),
			)),
		)

		require.NoError(t, prog.Exec(ctx, NewEvalEnv()))
		require.Equal(t, "1\n", stdout.String())
		require.Equal(t, "while condition go is not a boolean: got 0\n", stderr.String())
	})
}

func TestIfThenElseRunsOneBranch(t *testing.T) {
	ctx, stdout, stderr := sinks()
	prog := IfThenElse(Less(Num(0), Num(1)), Print(Bool(true)), Print(Bool(false)))

	require.NoError(t, prog.Exec(ctx, NewEvalEnv()))
	require.Equal(t, "true\n", stdout.String())
	require.Empty(t, stderr.String())

	ctx, stdout, _ = sinks()
	require.NoError(t, IfThenElse(Bool(false), Print(Num(1)), Print(Num(2))).Exec(ctx, NewEvalEnv()))
	require.Equal(t, "2\n", stdout.String())
}

func TestIfThenElseChecksBothBranches(t *testing.T) {
	ctx, _, _ := sinks()

	ok, err := IfThenElse(Bool(true), Print(Num(1)), Print(Plus(Num(1), Bool(true)))).Check(ctx, NewTypeEnv())
	require.NoError(t, err)
	require.False(t, ok, "the ill-typed else branch must fail the check")

	// both branches bind, even though only one would run
	types := NewTypeEnv()
	ok, err = IfThenElse(Bool(true), Print(Plus(Num(1), Bool(true))), Decl("y", Num(1))).Check(ctx, types)
	require.NoError(t, err)
	require.False(t, ok)
	require.Equal(t, map[string]Type{"y": IntType}, typeBindings(types))
}

func TestIfConditionNotBoolean(t *testing.T) {
	ctx, stdout, stderr := sinks()
	prog := IfThenElse(Plus(Num(1), Bool(false)), Print(Num(1)), Print(Num(2)))

	require.NoError(t, prog.Exec(ctx, NewEvalEnv()))
	require.Empty(t, stdout.String())
	require.Equal(t, "if condition (1+false) is not a boolean: got undefined\n", stderr.String())

	ok, err := prog.Check(ctx, NewTypeEnv())
	require.NoError(t, err)
	require.False(t, ok)
}

// Conditions are only rejected when ill typed, so an int condition checks.
func TestConditionOnlyRejectsIllTyped(t *testing.T) {
	ctx, _, _ := sinks()

	ok, err := IfThenElse(Num(1), Print(Num(1)), Print(Num(2))).Check(ctx, NewTypeEnv())
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = While(Num(0), Print(Num(1))).Check(ctx, NewTypeEnv())
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestPrint(t *testing.T) {
	ctx, stdout, _ := sinks()
	prog := Seq(
		Print(Num(-3)),
		Print(Bool(false)),
		Print(And(Bool(true), Num(1))),
	)

	require.NoError(t, prog.Exec(ctx, NewEvalEnv()))
	require.Equal(t, "-3\nfalse\nundefined\n", stdout.String())

	ok, err := prog.Check(ctx, NewTypeEnv())
	require.NoError(t, err)
	require.False(t, ok)
}

func TestCheckShortCircuitsSequence(t *testing.T) {
	ctx, _, _ := sinks()
	types := NewTypeEnv()

	prog := Seq(
		Decl("a", Num(1)),
		Decl("b", Not(Num(1))),
		Decl("c", Num(2)),
		// never reached, so the unbound name is not reported
		Assign("missing", Num(3)),
	)

	ok, err := prog.Check(ctx, types)
	require.NoError(t, err)
	require.False(t, ok)
	require.Equal(t, map[string]Type{"a": IntType}, typeBindings(types))
}

func TestExecAbortsOnUndeclared(t *testing.T) {
	ctx, stdout, _ := sinks()
	prog := Seq(
		Print(Num(1)),
		Decl("y", Var("nope")),
		Print(Num(2)),
	)

	env := NewEvalEnv()
	err := prog.Exec(ctx, env)
	require.ErrorIs(t, err, ErrUndeclaredVariable)
	require.Contains(t, err.Error(), "declaring y")
	require.Equal(t, "1\n", stdout.String())
	require.Zero(t, env.Len())
}

func TestTypeAndValueEnvsAreIndependent(t *testing.T) {
	ctx, _, _ := sinks()
	prog := Seq(Decl("x", Num(1)), Print(Var("x")))

	values := NewEvalEnv()
	require.NoError(t, prog.Exec(ctx, values))

	types := NewTypeEnv()
	_, found := types.Lookup("x")
	require.False(t, found)

	ok, err := prog.Check(ctx, types)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, 1, values.Len())
	require.Equal(t, 1, types.Len())
}
