package imp

import (
	"github.com/pkg/errors"
)

// Sample is a named, prebuilt program.
type Sample struct {
	Name        string
	Description string
	Node        Node
}

// Samples are the built-in programs, in the order they are run by default.
var Samples = []Sample{
	{
		Name:        "number",
		Description: "an integer literal",
		Node:        Num(5),
	},
	{
		Name:        "arithmetic",
		Description: "nested addition and multiplication",
		Node:        Plus(Mult(Num(1), Num(2)), Num(0)),
	},
	{
		Name:        "and-mismatch",
		Description: "conjunction with an integer operand is undefined",
		Node:        And(Bool(false), Num(0)),
	},
	{
		Name:        "or-mismatch",
		Description: "disjunction with an integer operand is undefined",
		Node:        Or(Bool(false), Num(0)),
	},
	{
		Name:        "less",
		Description: "integer comparison",
		Node:        Less(Num(0), Num(1)),
	},
	{
		Name:        "equality",
		Description: "equality infers the operand type, not bool",
		Node:        Equal(Num(1), Num(1)),
	},
	{
		Name:        "grouping",
		Description: "grouping is transparent",
		Node:        Group(And(Bool(true), Not(Bool(false)))),
	},
	{
		Name:        "declarations",
		Description: "declarations referring to earlier declarations",
		Node: Seq(
			Decl("x", Num(1)),
			Decl("y", Plus(Num(6), Var("x"))),
		),
	},
	{
		Name:        "assign-mismatch",
		Description: "assigning a bool to an int variable is rejected",
		Node: Seq(
			Decl("x", Num(1)),
			Assign("x", Bool(true)),
		),
	},
	{
		Name:        "while-false",
		Description: "a loop whose condition starts false never runs",
		Node:        While(Bool(false), Print(Num(1))),
	},
	{
		Name:        "if-then",
		Description: "only the taken branch runs",
		Node:        IfThenElse(Less(Num(0), Num(1)), Print(Bool(true)), Print(Bool(false))),
	},
	{
		Name:        "sum",
		Description: "sum the integers below 5 in a loop",
		Node: Seq(
			Decl("i", Num(0)),
			Decl("sum", Num(0)),
			While(Less(Var("i"), Num(5)), Seq(
				Assign("sum", Plus(Var("sum"), Var("i"))),
				Assign("i", Plus(Var("i"), Num(1))),
			)),
			Print(Var("sum")),
		),
	},
	{
		Name:        "undefined",
		Description: "an undefined value can be stored and printed",
		Node: Seq(
			Decl("u", Plus(Bool(true), Num(1))),
			Print(Var("u")),
		),
	},
	{
		Name:        "bad-condition",
		Description: "a non-boolean condition runs neither branch",
		Node:        IfThenElse(Num(1), Print(Num(1)), Print(Num(2))),
	},
}

// LookupSample finds a built-in sample by name.
func LookupSample(name string) (Sample, bool) {
	for _, s := range Samples {
		if s.Name == name {
			return s, true
		}
	}
	return Sample{}, false
}

// SelectSamples resolves names to samples, preserving the given order. No
// names selects every sample.
func SelectSamples(names []string) ([]Sample, error) {
	if len(names) == 0 {
		return Samples, nil
	}
	selected := make([]Sample, 0, len(names))
	for _, name := range names {
		s, ok := LookupSample(name)
		if !ok {
			return nil, errors.Errorf("unknown sample %q", name)
		}
		selected = append(selected, s)
	}
	return selected, nil
}
