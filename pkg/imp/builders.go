package imp

// Builder functions for constructing program trees directly. There is no
// textual parser; these are the only way to produce a program.

func Num(val int32) Expr { return &Int{Value: val} }

func Bool(val bool) Expr { return &Boolean{Value: val} }

func Var(name string) Expr { return &Symbol{Name: name} }

func Plus(left, right Expr) Expr { return NewAddition(left, right) }

func Mult(left, right Expr) Expr { return NewMultiplication(left, right) }

func And(left, right Expr) Expr { return NewConjunction(left, right) }

func Or(left, right Expr) Expr { return NewDisjunction(left, right) }

func Equal(left, right Expr) Expr { return NewEquality(left, right) }

func Less(left, right Expr) Expr { return NewLessThan(left, right) }

func Not(expr Expr) Expr { return &UnaryNegation{Expr: expr} }

func Group(expr Expr) Expr { return &Grouped{Expr: expr} }

// Seq chains statements into right-nested Sequence nodes:
// Seq(a, b, c) is Seq(a, Seq(b, c)).
func Seq(first Stmt, rest ...Stmt) Stmt {
	if len(rest) == 0 {
		return first
	}
	return &Sequence{First: first, Second: Seq(rest[0], rest[1:]...)}
}

func Decl(name string, value Expr) Stmt { return &Let{Name: name, Value: value} }

func Assign(name string, value Expr) Stmt { return &Reassignment{Name: name, Value: value} }

func IfThenElse(cond Expr, then, els Stmt) Stmt {
	return &Conditional{Cond: cond, Then: then, Else: els}
}

func While(cond Expr, body Stmt) Stmt { return &WhileLoop{Cond: cond, Body: body} }

func Print(value Expr) Stmt { return &PrintStmt{Value: value} }
