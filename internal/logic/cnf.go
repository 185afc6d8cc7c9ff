package logic

import (
	"sort"
	"strings"

	"github.com/samber/lo"
)

// Sentinel variables used when an empty clause (⊥) or empty CNF (⊤) must
// be rendered back as a formula, since the AST has no boolean constants.
const (
	falseVar = "_FALSE_"
	trueVar  = "_TRUE_"
)

// Literal is a variable or its negation.
type Literal struct {
	Var      string
	Positive bool
}

// Negate flips the polarity of the literal.
func (l Literal) Negate() Literal {
	return Literal{Var: l.Var, Positive: !l.Positive}
}

// Complements reports whether the two literals are the same variable with
// opposite polarity.
func (l Literal) Complements(other Literal) bool {
	return l.Var == other.Var && l.Positive != other.Positive
}

func (l Literal) String() string {
	if l.Positive {
		return l.Var
	}
	return "~" + l.Var
}

// ToExpr converts the literal back to a formula.
func (l Literal) ToExpr() Expr {
	if l.Positive {
		return Var{Name: l.Var}
	}
	return Not{Operand: Var{Name: l.Var}}
}

// Clause is a set of literals read as their disjunction. The empty clause
// is the contradiction ⊥. Clauses are treated as immutable: set operations
// return new clauses.
type Clause map[Literal]struct{}

// NewClause builds a clause from literals, deduplicating as a set does.
func NewClause(literals ...Literal) Clause {
	clause := make(Clause, len(literals))
	for _, l := range literals {
		clause[l] = struct{}{}
	}
	return clause
}

// ParseClause builds a clause from literal strings such as "P" and "~Q".
func ParseClause(specs ...string) Clause {
	clause := make(Clause, len(specs))
	for _, spec := range specs {
		spec = strings.TrimSpace(spec)
		if negated, ok := strings.CutPrefix(spec, "~"); ok {
			clause[Literal{Var: negated, Positive: false}] = struct{}{}
		} else {
			clause[Literal{Var: spec, Positive: true}] = struct{}{}
		}
	}
	return clause
}

// Has reports whether the clause contains the literal.
func (c Clause) Has(l Literal) bool {
	_, ok := c[l]
	return ok
}

// HasVar reports whether the clause mentions the variable at either polarity.
func (c Clause) HasVar(name string) bool {
	return c.Has(Literal{Var: name, Positive: true}) || c.Has(Literal{Var: name, Positive: false})
}

// IsEmpty reports whether the clause is the contradiction ⊥.
func (c Clause) IsEmpty() bool {
	return len(c) == 0
}

// IsUnit reports whether the clause holds exactly one literal.
func (c Clause) IsUnit() bool {
	return len(c) == 1
}

// UnitLiteral returns the sole literal of a unit clause.
func (c Clause) UnitLiteral() (Literal, bool) {
	if !c.IsUnit() {
		return Literal{}, false
	}
	for l := range c {
		return l, true
	}
	return Literal{}, false
}

// IsTautology reports whether the clause holds both polarities of some
// variable. Tautological clauses carry no information and every consumer
// discards them.
func (c Clause) IsTautology() bool {
	for l := range c {
		if c.Has(l.Negate()) {
			return true
		}
	}
	return false
}

// Literals returns the clause's literals sorted by variable name, negative
// polarity last.
func (c Clause) Literals() []Literal {
	literals := lo.Keys(c)
	sort.Slice(literals, func(i, j int) bool {
		if literals[i].Var != literals[j].Var {
			return literals[i].Var < literals[j].Var
		}
		return literals[i].Positive && !literals[j].Positive
	})
	return literals
}

// Vars returns the sorted variable names mentioned by the clause.
func (c Clause) Vars() []string {
	names := lo.Uniq(lo.Map(lo.Keys(c), func(l Literal, _ int) string { return l.Var }))
	sort.Strings(names)
	return names
}

// Union returns the clause holding the literals of both clauses.
func (c Clause) Union(other Clause) Clause {
	merged := make(Clause, len(c)+len(other))
	for l := range c {
		merged[l] = struct{}{}
	}
	for l := range other {
		merged[l] = struct{}{}
	}
	return merged
}

// Remove returns the clause without the given literal.
func (c Clause) Remove(l Literal) Clause {
	trimmed := make(Clause, len(c))
	for existing := range c {
		if existing != l {
			trimmed[existing] = struct{}{}
		}
	}
	return trimmed
}

// Key returns a canonical encoding of the clause for set membership.
func (c Clause) Key() string {
	return strings.Join(lo.Map(c.Literals(), func(l Literal, _ int) string { return l.String() }), "|")
}

func (c Clause) String() string {
	if c.IsEmpty() {
		return "⊥"
	}
	return strings.Join(lo.Map(c.Literals(), func(l Literal, _ int) string { return l.String() }), " | ")
}

// ToExpr renders the clause as a disjunction formula. The empty clause
// becomes the canonical contradiction over a sentinel variable.
func (c Clause) ToExpr() Expr {
	if c.IsEmpty() {
		return And{Left: Var{Name: falseVar}, Right: Not{Operand: Var{Name: falseVar}}}
	}
	exprs := lo.Map(c.Literals(), func(l Literal, _ int) Expr { return l.ToExpr() })
	return Disjoin(exprs...)
}

// CNF is a set of clauses read as their conjunction, keyed by the clause's
// canonical encoding. The empty CNF is the tautology ⊤.
type CNF map[string]Clause

// NewCNF builds a CNF from clauses, silently dropping tautological ones.
func NewCNF(clauses ...Clause) CNF {
	cnf := make(CNF, len(clauses))
	for _, clause := range clauses {
		cnf.Add(clause)
	}
	return cnf
}

// Add inserts the clause unless it is tautological.
func (f CNF) Add(clause Clause) {
	if clause.IsTautology() {
		return
	}
	f[clause.Key()] = clause
}

// Contains reports whether an identical clause is already present.
func (f CNF) Contains(clause Clause) bool {
	_, ok := f[clause.Key()]
	return ok
}

// Union returns a new CNF holding the clauses of both operands.
func (f CNF) Union(other CNF) CNF {
	merged := make(CNF, len(f)+len(other))
	for key, clause := range f {
		merged[key] = clause
	}
	for key, clause := range other {
		merged[key] = clause
	}
	return merged
}

// IsEmpty reports whether the CNF is the tautology ⊤.
func (f CNF) IsEmpty() bool {
	return len(f) == 0
}

// HasEmptyClause reports whether the CNF contains ⊥, i.e. is trivially
// unsatisfiable.
func (f CNF) HasEmptyClause() bool {
	for _, clause := range f {
		if clause.IsEmpty() {
			return true
		}
	}
	return false
}

// Clauses returns the clauses in canonical order.
func (f CNF) Clauses() []Clause {
	keys := lo.Keys(f)
	sort.Strings(keys)
	return lo.Map(keys, func(key string, _ int) Clause { return f[key] })
}

// UnitClauses returns the single-literal clauses in canonical order.
func (f CNF) UnitClauses() []Clause {
	return lo.Filter(f.Clauses(), func(clause Clause, _ int) bool { return clause.IsUnit() })
}

// Vars returns the sorted variable names mentioned across all clauses.
func (f CNF) Vars() []string {
	var names []string
	for _, clause := range f {
		names = append(names, clause.Vars()...)
	}
	names = lo.Uniq(names)
	sort.Strings(names)
	return names
}

func (f CNF) String() string {
	if f.IsEmpty() {
		return "⊤"
	}
	return strings.Join(lo.Map(f.Clauses(), func(clause Clause, _ int) string {
		return "(" + clause.String() + ")"
	}), " & ")
}

// ToExpr renders the CNF as a conjunction formula. The empty CNF becomes
// the canonical tautology over a sentinel variable.
func (f CNF) ToExpr() Expr {
	if f.IsEmpty() {
		return Or{Left: Var{Name: trueVar}, Right: Not{Operand: Var{Name: trueVar}}}
	}
	exprs := lo.Map(f.Clauses(), func(clause Clause, _ int) Expr { return clause.ToExpr() })
	return Conjoin(exprs...)
}

// ToNNF rewrites the formula into negation normal form: biconditionals and
// implications are eliminated, then negations are pushed inward by De
// Morgan until they apply only to variables; double negations cancel.
func ToNNF(e Expr) Expr {
	return pushNegation(eliminateIffImply(e))
}

func eliminateIffImply(e Expr) Expr {
	switch node := e.(type) {
	case Var:
		return node
	case Not:
		return Not{Operand: eliminateIffImply(node.Operand)}
	case And:
		return And{Left: eliminateIffImply(node.Left), Right: eliminateIffImply(node.Right)}
	case Or:
		return Or{Left: eliminateIffImply(node.Left), Right: eliminateIffImply(node.Right)}
	case Imply:
		left := eliminateIffImply(node.Left)
		right := eliminateIffImply(node.Right)
		return Or{Left: Not{Operand: left}, Right: right}
	case Iff:
		left := eliminateIffImply(node.Left)
		right := eliminateIffImply(node.Right)
		return And{
			Left:  Or{Left: Not{Operand: left}, Right: right},
			Right: Or{Left: Not{Operand: right}, Right: left},
		}
	}
	return e
}

func pushNegation(e Expr) Expr {
	switch node := e.(type) {
	case Var:
		return node
	case Not:
		return negatePush(node.Operand)
	case And:
		return And{Left: pushNegation(node.Left), Right: pushNegation(node.Right)}
	case Or:
		return Or{Left: pushNegation(node.Left), Right: pushNegation(node.Right)}
	}
	// Imply and Iff were eliminated before this point.
	return e
}

func negatePush(e Expr) Expr {
	switch node := e.(type) {
	case Var:
		return Not{Operand: node}
	case Not:
		return pushNegation(node.Operand)
	case And:
		return Or{Left: negatePush(node.Left), Right: negatePush(node.Right)}
	case Or:
		return And{Left: negatePush(node.Left), Right: negatePush(node.Right)}
	}
	return Not{Operand: e}
}

// ToCNF converts the formula to conjunctive normal form via NNF and
// distribution of | over &. Distribution is the textbook cross product of
// clause sets, so the clause count can blow up exponentially; at the tens
// of variables this engine targets that is acceptable and a Tseitin
// transformation is deliberately not attempted.
func ToCNF(e Expr) CNF {
	return nnfToCNF(ToNNF(e))
}

// ToCNFAll converts several formulas and conjoins their clause sets.
func ToCNFAll(exprs ...Expr) CNF {
	cnf := NewCNF()
	for _, e := range exprs {
		cnf = cnf.Union(ToCNF(e))
	}
	return cnf
}

func nnfToCNF(e Expr) CNF {
	switch node := e.(type) {
	case Var:
		return NewCNF(NewClause(Literal{Var: node.Name, Positive: true}))
	case Not:
		// In NNF a negation sits directly on a variable.
		if v, ok := node.Operand.(Var); ok {
			return NewCNF(NewClause(Literal{Var: v.Name, Positive: false}))
		}
	case And:
		return nnfToCNF(node.Left).Union(nnfToCNF(node.Right))
	case Or:
		return distributeOr(nnfToCNF(node.Left), nnfToCNF(node.Right))
	}
	return NewCNF()
}

// distributeOr applies (A & B) | C = (A | C) & (B | C) as a pairwise cross
// product of the two clause sets, discarding tautological unions.
func distributeOr(left, right CNF) CNF {
	if left.IsEmpty() {
		return right
	}
	if right.IsEmpty() {
		return left
	}
	result := NewCNF()
	for _, c1 := range left {
		for _, c2 := range right {
			result.Add(c1.Union(c2))
		}
	}
	return result
}

// ExprToLiteral converts a literal-shaped formula, reporting failure for
// anything else.
func ExprToLiteral(e Expr) (Literal, bool) {
	switch node := e.(type) {
	case Var:
		return Literal{Var: node.Name, Positive: true}, true
	case Not:
		if v, ok := node.Operand.(Var); ok {
			return Literal{Var: v.Name, Positive: false}, true
		}
	}
	return Literal{}, false
}

// ExprToClause converts a clause-shaped formula (a disjunction of
// literals, or a single literal), reporting failure for anything else.
func ExprToClause(e Expr) (Clause, bool) {
	clause := NewClause()
	if !collectClauseLiterals(e, clause) {
		return nil, false
	}
	return clause, true
}

func collectClauseLiterals(e Expr, clause Clause) bool {
	if l, ok := ExprToLiteral(e); ok {
		clause[l] = struct{}{}
		return true
	}
	if o, ok := e.(Or); ok {
		return collectClauseLiterals(o.Left, clause) && collectClauseLiterals(o.Right, clause)
	}
	return false
}
