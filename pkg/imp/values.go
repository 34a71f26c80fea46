package imp

import (
	"strconv"
)

// Value represents a runtime value. The concrete type is the tag, so a
// payload can never disagree with it.
type Value interface {
	// Type reports the static type matching this value's tag. UndefinedValue
	// reports IllTyped.
	Type() Type
	String() string
}

type IntValue struct {
	Val int32
}

var _ Value = IntValue{}

func (i IntValue) Type() Type { return IntType }

func (i IntValue) String() string {
	return strconv.FormatInt(int64(i.Val), 10)
}

type BoolValue struct {
	Val bool
}

var _ Value = BoolValue{}

func (b BoolValue) Type() Type { return BoolType }

func (b BoolValue) String() string {
	return strconv.FormatBool(b.Val)
}

// UndefinedValue is produced when an operator's operands do not match its
// rule. Any operator consuming it yields UndefinedValue in turn.
type UndefinedValue struct{}

var _ Value = UndefinedValue{}

func (UndefinedValue) Type() Type { return IllTyped }

func (UndefinedValue) String() string { return "undefined" }

// IsUndefined reports whether v is the undefined sentinel.
func IsUndefined(v Value) bool {
	_, ok := v.(UndefinedValue)
	return ok
}

// sameKind reports whether both values carry the same tag.
func sameKind(a, b Value) bool {
	switch a.(type) {
	case IntValue:
		_, ok := b.(IntValue)
		return ok
	case BoolValue:
		_, ok := b.(BoolValue)
		return ok
	case UndefinedValue:
		_, ok := b.(UndefinedValue)
		return ok
	}
	return false
}
