package logic

import (
	"fmt"
	"hash/fnv"
	"sort"

	"github.com/samber/lo"
)

// Expr is a propositional formula. The six concrete node types (Var, Not,
// And, Or, Imply, Iff) form a closed set: formulas are immutable trees and
// every operation builds fresh nodes instead of mutating.
//
// Equality between formulas is structural but order-insensitive for the
// commutative connectives (And, Or, Iff): A & B equals B & A. Key returns a
// canonical encoding consistent with that equality, so formulas can be used
// as set members by keying on it.
type Expr interface {
	fmt.Stringer
	// Key returns a canonical encoding of the formula. Two formulas are
	// logically identical under commutative equality iff their keys match.
	Key() string

	expr() // closed sum
}

// Var is a propositional variable, e.g. P, Q, Premise1.
type Var struct {
	Name string
}

// Not is the negation of a formula.
type Not struct {
	Operand Expr
}

// And is a conjunction. Commutative: And{A, B} equals And{B, A}.
type And struct {
	Left, Right Expr
}

// Or is a disjunction. Commutative: Or{A, B} equals Or{B, A}.
type Or struct {
	Left, Right Expr
}

// Imply is an implication with antecedent Left and consequent Right.
// Not commutative.
type Imply struct {
	Left, Right Expr
}

// Iff is a biconditional. Commutative: Iff{A, B} equals Iff{B, A}.
type Iff struct {
	Left, Right Expr
}

func (Var) expr()   {}
func (Not) expr()   {}
func (And) expr()   {}
func (Or) expr()    {}
func (Imply) expr() {}
func (Iff) expr()   {}

func (v Var) String() string {
	return v.Name
}

func (n Not) String() string {
	if _, ok := n.Operand.(Var); ok {
		return "~" + n.Operand.String()
	}
	return "~(" + n.Operand.String() + ")"
}

// wrap parenthesizes the operand unless it is atomic (a variable or a
// negation), so that String output reparses to the same structure.
func wrap(e Expr) string {
	switch e.(type) {
	case Var, Not:
		return e.String()
	}
	return "(" + e.String() + ")"
}

// wrapInOr additionally leaves conjunctions bare: & binds tighter than |.
func wrapInOr(e Expr) string {
	if _, ok := e.(And); ok {
		return e.String()
	}
	return wrap(e)
}

func (a And) String() string {
	return wrap(a.Left) + " & " + wrap(a.Right)
}

func (o Or) String() string {
	return wrapInOr(o.Left) + " | " + wrapInOr(o.Right)
}

func (i Imply) String() string {
	return wrap(i.Left) + " -> " + wrap(i.Right)
}

func (i Iff) String() string {
	return wrap(i.Left) + " <-> " + wrap(i.Right)
}

func (v Var) Key() string {
	return v.Name
}

func (n Not) Key() string {
	return "~(" + n.Operand.Key() + ")"
}

// commutativeKey orders the child keys so that swapping operands of a
// commutative connective yields the same encoding.
func commutativeKey(op string, left, right Expr) string {
	l, r := left.Key(), right.Key()
	if l > r {
		l, r = r, l
	}
	return op + "(" + l + "," + r + ")"
}

func (a And) Key() string {
	return commutativeKey("&", a.Left, a.Right)
}

func (o Or) Key() string {
	return commutativeKey("|", o.Left, o.Right)
}

func (i Imply) Key() string {
	return "->(" + i.Left.Key() + "," + i.Right.Key() + ")"
}

func (i Iff) Key() string {
	return commutativeKey("<->", i.Left, i.Right)
}

// Equal reports whether two formulas are identical up to commutativity of
// And, Or and Iff.
func Equal(a, b Expr) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Key() == b.Key()
}

// Hash returns a hash consistent with Equal: commuted operands of And, Or
// and Iff hash identically.
func Hash(e Expr) uint64 {
	h := fnv.New64a()
	h.Write([]byte(e.Key()))
	return h.Sum64()
}

// Vars returns the sorted set of variable names occurring in the formula.
func Vars(e Expr) []string {
	names := collectVars(e, nil)
	names = lo.Uniq(names)
	sort.Strings(names)
	return names
}

// VarsAll returns the sorted union of variable names over several formulas.
func VarsAll(exprs ...Expr) []string {
	var names []string
	for _, e := range exprs {
		names = collectVars(e, names)
	}
	names = lo.Uniq(names)
	sort.Strings(names)
	return names
}

func collectVars(e Expr, acc []string) []string {
	switch node := e.(type) {
	case Var:
		return append(acc, node.Name)
	case Not:
		return collectVars(node.Operand, acc)
	case And:
		return collectVars(node.Right, collectVars(node.Left, acc))
	case Or:
		return collectVars(node.Right, collectVars(node.Left, acc))
	case Imply:
		return collectVars(node.Right, collectVars(node.Left, acc))
	case Iff:
		return collectVars(node.Right, collectVars(node.Left, acc))
	}
	return acc
}

// Depth returns the nesting depth of the formula; a bare variable has depth 0.
func Depth(e Expr) int {
	switch node := e.(type) {
	case Var:
		return 0
	case Not:
		return 1 + Depth(node.Operand)
	case And:
		return 1 + max(Depth(node.Left), Depth(node.Right))
	case Or:
		return 1 + max(Depth(node.Left), Depth(node.Right))
	case Imply:
		return 1 + max(Depth(node.Left), Depth(node.Right))
	case Iff:
		return 1 + max(Depth(node.Left), Depth(node.Right))
	}
	return 0
}

// Size returns the number of AST nodes in the formula.
func Size(e Expr) int {
	switch node := e.(type) {
	case Var:
		return 1
	case Not:
		return 1 + Size(node.Operand)
	case And:
		return 1 + Size(node.Left) + Size(node.Right)
	case Or:
		return 1 + Size(node.Left) + Size(node.Right)
	case Imply:
		return 1 + Size(node.Left) + Size(node.Right)
	case Iff:
		return 1 + Size(node.Left) + Size(node.Right)
	}
	return 0
}

// Negate returns the negation of the formula, collapsing a double negation
// instead of stacking a second Not.
func Negate(e Expr) Expr {
	if n, ok := e.(Not); ok {
		return n.Operand
	}
	return Not{Operand: e}
}

// IsLiteral reports whether the formula is a variable or a negated variable.
func IsLiteral(e Expr) bool {
	switch node := e.(type) {
	case Var:
		return true
	case Not:
		_, ok := node.Operand.(Var)
		return ok
	}
	return false
}

// LiteralVar returns the variable name of a literal formula, or false when
// the formula is not a literal.
func LiteralVar(e Expr) (string, bool) {
	switch node := e.(type) {
	case Var:
		return node.Name, true
	case Not:
		if v, ok := node.Operand.(Var); ok {
			return v.Name, true
		}
	}
	return "", false
}

// Conjoin folds the formulas into a left-nested conjunction.
// It panics on an empty argument list.
func Conjoin(exprs ...Expr) Expr {
	if len(exprs) == 0 {
		panic("logic: Conjoin requires at least one formula")
	}
	result := exprs[0]
	for _, e := range exprs[1:] {
		result = And{Left: result, Right: e}
	}
	return result
}

// Disjoin folds the formulas into a left-nested disjunction.
// It panics on an empty argument list.
func Disjoin(exprs ...Expr) Expr {
	if len(exprs) == 0 {
		panic("logic: Disjoin requires at least one formula")
	}
	result := exprs[0]
	for _, e := range exprs[1:] {
		result = Or{Left: result, Right: e}
	}
	return result
}
