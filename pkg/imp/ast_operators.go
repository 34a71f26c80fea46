package imp

import (
	"context"

	"github.com/pkg/errors"
)

// BinaryOperatorEvaluator combines two already evaluated operands. It returns
// UndefinedValue when the operands do not fit the operator.
type BinaryOperatorEvaluator func(leftVal, rightVal Value) Value

// BinaryOperatorTyper is the static counterpart of BinaryOperatorEvaluator.
type BinaryOperatorTyper func(leftType, rightType Type) Type

// BinaryOperator provides common functionality for binary operators
type BinaryOperator struct {
	Left      Expr
	Right     Expr
	OpToken   string
	OpName    string
	EvalFunc  BinaryOperatorEvaluator
	InferFunc BinaryOperatorTyper
}

func (b *BinaryOperator) Pretty() string {
	return "(" + b.Left.Pretty() + b.OpToken + b.Right.Pretty() + ")"
}

func (b *BinaryOperator) DeclaredSymbols() []string { return nil }

func (b *BinaryOperator) ReferencedSymbols() []string {
	var symbols []string
	symbols = append(symbols, b.Left.ReferencedSymbols()...)
	symbols = append(symbols, b.Right.ReferencedSymbols()...)
	return symbols
}

// Eval evaluates the left operand, then the right, then combines them. There
// is no short-circuiting, even for && and ||.
func (b *BinaryOperator) Eval(ctx context.Context, env *EvalEnv) (Value, error) {
	leftVal, err := b.Left.Eval(ctx, env)
	if err != nil {
		return nil, errors.Wrapf(err, "evaluating left side of %s", b.OpName)
	}
	rightVal, err := b.Right.Eval(ctx, env)
	if err != nil {
		return nil, errors.Wrapf(err, "evaluating right side of %s", b.OpName)
	}
	return b.EvalFunc(leftVal, rightVal), nil
}

func (b *BinaryOperator) Infer(ctx context.Context, env *TypeEnv) Type {
	lt := b.Left.Infer(ctx, env)
	rt := b.Right.Infer(ctx, env)
	return b.InferFunc(lt, rt)
}

func (b *BinaryOperator) walk(self Node, fn func(Node) bool) {
	if fn(self) {
		b.Left.Walk(fn)
		b.Right.Walk(fn)
	}
}

func intOperands(leftVal, rightVal Value) (int32, int32, bool) {
	l, ok := leftVal.(IntValue)
	if !ok {
		return 0, 0, false
	}
	r, ok := rightVal.(IntValue)
	if !ok {
		return 0, 0, false
	}
	return l.Val, r.Val, true
}

func boolOperands(leftVal, rightVal Value) (bool, bool, bool) {
	l, ok := leftVal.(BoolValue)
	if !ok {
		return false, false, false
	}
	r, ok := rightVal.(BoolValue)
	if !ok {
		return false, false, false
	}
	return l.Val, r.Val, true
}

// int32 arithmetic wraps on overflow.
func additionEval(leftVal, rightVal Value) Value {
	if l, r, ok := intOperands(leftVal, rightVal); ok {
		return IntValue{Val: l + r}
	}
	return UndefinedValue{}
}

func multiplicationEval(leftVal, rightVal Value) Value {
	if l, r, ok := intOperands(leftVal, rightVal); ok {
		return IntValue{Val: l * r}
	}
	return UndefinedValue{}
}

func lessThanEval(leftVal, rightVal Value) Value {
	if l, r, ok := intOperands(leftVal, rightVal); ok {
		return BoolValue{Val: l < r}
	}
	return UndefinedValue{}
}

func conjunctionEval(leftVal, rightVal Value) Value {
	if l, r, ok := boolOperands(leftVal, rightVal); ok {
		return BoolValue{Val: l && r}
	}
	return UndefinedValue{}
}

func disjunctionEval(leftVal, rightVal Value) Value {
	if l, r, ok := boolOperands(leftVal, rightVal); ok {
		return BoolValue{Val: l || r}
	}
	return UndefinedValue{}
}

// equalityEval compares two ints or two bools. Mixed or undefined operands
// are undefined rather than unequal.
func equalityEval(leftVal, rightVal Value) Value {
	if l, r, ok := intOperands(leftVal, rightVal); ok {
		return BoolValue{Val: l == r}
	}
	if l, r, ok := boolOperands(leftVal, rightVal); ok {
		return BoolValue{Val: l == r}
	}
	return UndefinedValue{}
}

func arithmeticType(lt, rt Type) Type {
	if lt == IntType && rt == IntType {
		return IntType
	}
	return IllTyped
}

func logicalType(lt, rt Type) Type {
	if lt == BoolType && rt == BoolType {
		return BoolType
	}
	return IllTyped
}

func comparisonType(lt, rt Type) Type {
	if lt == IntType && rt == IntType {
		return BoolType
	}
	return IllTyped
}

// equalityType yields the operand type, not BoolType: 1 == 1 infers as int
// even though it evaluates to a bool.
func equalityType(lt, rt Type) Type {
	if lt == rt && lt.WellTyped() {
		return lt
	}
	return IllTyped
}

type Addition struct {
	BinaryOperator
}

var _ Expr = (*Addition)(nil)

func NewAddition(left, right Expr) *Addition {
	return &Addition{
		BinaryOperator: BinaryOperator{
			Left:      left,
			Right:     right,
			OpToken:   "+",
			OpName:    "addition",
			EvalFunc:  additionEval,
			InferFunc: arithmeticType,
		},
	}
}

func (a *Addition) Walk(fn func(Node) bool) { a.walk(a, fn) }

type Multiplication struct {
	BinaryOperator
}

var _ Expr = (*Multiplication)(nil)

func NewMultiplication(left, right Expr) *Multiplication {
	return &Multiplication{
		BinaryOperator: BinaryOperator{
			Left:      left,
			Right:     right,
			OpToken:   "*",
			OpName:    "multiplication",
			EvalFunc:  multiplicationEval,
			InferFunc: arithmeticType,
		},
	}
}

func (m *Multiplication) Walk(fn func(Node) bool) { m.walk(m, fn) }

type Conjunction struct {
	BinaryOperator
}

var _ Expr = (*Conjunction)(nil)

func NewConjunction(left, right Expr) *Conjunction {
	return &Conjunction{
		BinaryOperator: BinaryOperator{
			Left:      left,
			Right:     right,
			OpToken:   "&&",
			OpName:    "conjunction",
			EvalFunc:  conjunctionEval,
			InferFunc: logicalType,
		},
	}
}

func (c *Conjunction) Walk(fn func(Node) bool) { c.walk(c, fn) }

type Disjunction struct {
	BinaryOperator
}

var _ Expr = (*Disjunction)(nil)

func NewDisjunction(left, right Expr) *Disjunction {
	return &Disjunction{
		BinaryOperator: BinaryOperator{
			Left:      left,
			Right:     right,
			OpToken:   "||",
			OpName:    "disjunction",
			EvalFunc:  disjunctionEval,
			InferFunc: logicalType,
		},
	}
}

func (d *Disjunction) Walk(fn func(Node) bool) { d.walk(d, fn) }

type Equality struct {
	BinaryOperator
}

var _ Expr = (*Equality)(nil)

func NewEquality(left, right Expr) *Equality {
	return &Equality{
		BinaryOperator: BinaryOperator{
			Left:      left,
			Right:     right,
			OpToken:   "==",
			OpName:    "equality",
			EvalFunc:  equalityEval,
			InferFunc: equalityType,
		},
	}
}

func (e *Equality) Walk(fn func(Node) bool) { e.walk(e, fn) }

type LessThan struct {
	BinaryOperator
}

var _ Expr = (*LessThan)(nil)

func NewLessThan(left, right Expr) *LessThan {
	return &LessThan{
		BinaryOperator: BinaryOperator{
			Left:      left,
			Right:     right,
			OpToken:   "<",
			OpName:    "less_than",
			EvalFunc:  lessThanEval,
			InferFunc: comparisonType,
		},
	}
}

func (l *LessThan) Walk(fn func(Node) bool) { l.walk(l, fn) }

type UnaryNegation struct {
	Expr Expr
}

var _ Expr = (*UnaryNegation)(nil)

func (u *UnaryNegation) Pretty() string { return "(!" + u.Expr.Pretty() + ")" }

func (u *UnaryNegation) Walk(fn func(Node) bool) {
	if fn(u) {
		u.Expr.Walk(fn)
	}
}

func (u *UnaryNegation) DeclaredSymbols() []string { return nil }

func (u *UnaryNegation) ReferencedSymbols() []string { return u.Expr.ReferencedSymbols() }

func (u *UnaryNegation) Eval(ctx context.Context, env *EvalEnv) (Value, error) {
	val, err := u.Expr.Eval(ctx, env)
	if err != nil {
		return nil, errors.Wrap(err, "evaluating negation")
	}
	if boolVal, ok := val.(BoolValue); ok {
		return BoolValue{Val: !boolVal.Val}, nil
	}
	return UndefinedValue{}, nil
}

func (u *UnaryNegation) Infer(ctx context.Context, env *TypeEnv) Type {
	if u.Expr.Infer(ctx, env) == BoolType {
		return BoolType
	}
	return IllTyped
}
