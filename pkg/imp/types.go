package imp

// Type is the static type assigned to an expression by Infer.
type Type int

const (
	// IllTyped means no type could be derived. It poisons every rule that
	// consumes it and is never the type of a runtime Value.
	IllTyped Type = iota
	IntType
	BoolType
)

func (t Type) String() string {
	switch t {
	case IntType:
		return "int"
	case BoolType:
		return "bool"
	default:
		return "illtyped"
	}
}

// WellTyped reports whether t is anything other than IllTyped.
func (t Type) WellTyped() bool {
	return t == IntType || t == BoolType
}
