package logic

import "github.com/samber/lo"

// Resolve resolves two clauses on a variable that appears positively in
// one and negatively in the other. The resolvent is the union of both
// clauses minus the complementary pair. It reports failure when the
// variable does not appear with opposite polarities.
func Resolve(c1, c2 Clause, variable string) (Clause, bool) {
	positive := Literal{Var: variable, Positive: true}
	negative := Literal{Var: variable, Positive: false}

	switch {
	case c1.Has(positive) && c2.Has(negative):
		return c1.Remove(positive).Union(c2.Remove(negative)), true
	case c1.Has(negative) && c2.Has(positive):
		return c1.Remove(negative).Union(c2.Remove(positive)), true
	}
	return nil, false
}

// FindResolvableVar returns a variable shared by the two clauses with
// opposite polarities, preferring the lexicographically smallest so the
// choice is deterministic.
func FindResolvableVar(c1, c2 Clause) (string, bool) {
	candidates := lo.Filter(c1.Vars(), func(name string, _ int) bool {
		positive := Literal{Var: name, Positive: true}
		negative := Literal{Var: name, Positive: false}
		return (c1.Has(positive) && c2.Has(negative)) || (c1.Has(negative) && c2.Has(positive))
	})
	if len(candidates) == 0 {
		return "", false
	}
	return candidates[0], true
}

// ResolutionStep records a single resolution: the two parent clauses and
// their resolvent.
type ResolutionStep struct {
	Left      Clause
	Right     Clause
	Resolvent Clause
}

// DefaultRefutationIterations bounds the saturation loop when callers do
// not impose their own budget.
const DefaultRefutationIterations = 1000

// ResolutionRefutation saturates the clause set, resolving every unordered
// clause pair and adding novel non-tautological resolvents, until the
// empty clause is derived (the set is unsatisfiable), no new clauses
// appear (the set is saturated), or maxIterations rounds pass. Refuted
// reports whether ⊥ was derived; a false result after hitting the
// iteration cap proves nothing.
//
// Resolution is refutation-complete for propositional logic: an
// unsatisfiable input always yields ⊥ given enough iterations, and a
// satisfiable input always saturates.
func ResolutionRefutation(cnf CNF, maxIterations int) (refuted bool, steps []ResolutionStep) {
	if maxIterations <= 0 {
		maxIterations = DefaultRefutationIterations
	}

	clauses := NewCNF(cnf.Clauses()...)
	if clauses.HasEmptyClause() {
		return true, nil
	}

	// Each unordered pair is resolved at most once across rounds; the pool
	// only grows, so revisiting a pair can only repeat a known resolvent
	// and pad the step trace.
	resolved := make(map[string]struct{})

	for range maxIterations {
		fresh := NewCNF()
		pool := clauses.Clauses()

		for i, c1 := range pool {
			for _, c2 := range pool[i+1:] {
				pairKey := c1.Key() + "\n" + c2.Key()
				if _, done := resolved[pairKey]; done {
					continue
				}
				resolved[pairKey] = struct{}{}

				variable, ok := FindResolvableVar(c1, c2)
				if !ok {
					continue
				}
				resolvent, ok := Resolve(c1, c2, variable)
				if !ok {
					continue
				}
				steps = append(steps, ResolutionStep{Left: c1, Right: c2, Resolvent: resolvent})

				if resolvent.IsEmpty() {
					return true, steps
				}
				if !resolvent.IsTautology() && !clauses.Contains(resolvent) {
					fresh.Add(resolvent)
				}
			}
		}

		if fresh.IsEmpty() {
			break // saturated
		}
		clauses = clauses.Union(fresh)
	}

	return false, steps
}

// RefutesEntailment checks premises ⊢ conclusion by refutation: the
// entailment holds iff premises ∧ ¬conclusion is unsatisfiable.
func RefutesEntailment(premises []Expr, conclusion Expr, maxIterations int) (bool, []ResolutionStep) {
	cnf := ToCNFAll(append(premises, Negate(conclusion))...)
	return ResolutionRefutation(cnf, maxIterations)
}
