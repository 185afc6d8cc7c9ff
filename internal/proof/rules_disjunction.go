package proof

import (
	"fmt"

	"github.com/limaJavier/prover/internal/logic"
)

type orIntroLeft struct{}

// NewOrIntroLeft builds the rule A ⊢ A ∨ B. It only fires toward a
// disjunctive goal: with no goal the right disjunct could be any formula
// at all, so enumerating firings would be unbounded.
func NewOrIntroLeft() Rule {
	return orIntroLeft{}
}

func (orIntroLeft) Name() string        { return "or_intro_left" }
func (orIntroLeft) Description() string { return "A ⊢ A ∨ B" }

func (r orIntroLeft) Apply(kb KnowledgeSet, goal logic.Expr) []RuleResult {
	disj, ok := goal.(logic.Or)
	if !ok || !kb.Contains(disj.Left) {
		return nil
	}
	return []RuleResult{{
		RuleName:    r.Name(),
		Conclusion:  disj,
		Premises:    []logic.Expr{disj.Left},
		Description: fmt.Sprintf("from %v, %v", disj.Left, disj),
	}}
}

type orIntroRight struct{}

// NewOrIntroRight builds the rule B ⊢ A ∨ B, goal-directed like its left
// counterpart.
func NewOrIntroRight() Rule {
	return orIntroRight{}
}

func (orIntroRight) Name() string        { return "or_intro_right" }
func (orIntroRight) Description() string { return "B ⊢ A ∨ B" }

func (r orIntroRight) Apply(kb KnowledgeSet, goal logic.Expr) []RuleResult {
	disj, ok := goal.(logic.Or)
	if !ok || !kb.Contains(disj.Right) {
		return nil
	}
	return []RuleResult{{
		RuleName:    r.Name(),
		Conclusion:  disj,
		Premises:    []logic.Expr{disj.Right},
		Description: fmt.Sprintf("from %v, %v", disj.Right, disj),
	}}
}

type orElim struct{}

// NewOrElim builds the disjunctive syllogism A ∨ B, ~A ⊢ B (and its
// mirror A ∨ B, ~B ⊢ A).
func NewOrElim() Rule {
	return orElim{}
}

func (orElim) Name() string        { return "or_elim" }
func (orElim) Description() string { return "A ∨ B, ~A ⊢ B" }

func (r orElim) Apply(kb KnowledgeSet, goal logic.Expr) []RuleResult {
	var results []RuleResult
	for _, formula := range kb.Formulas() {
		disj, ok := formula.(logic.Or)
		if !ok {
			continue
		}
		results = append(results, r.eliminate(kb, goal, formula, disj.Left, disj.Right)...)
		results = append(results, r.eliminate(kb, goal, formula, disj.Right, disj.Left)...)
	}
	return results
}

// eliminate yields the surviving disjunct when the negation of the other
// one is known.
func (r orElim) eliminate(kb KnowledgeSet, goal logic.Expr, disjunction, refuted, survivor logic.Expr) []RuleResult {
	negation := logic.Negate(refuted)
	if !kb.Contains(negation) || !matchesGoal(survivor, goal) {
		return nil
	}
	return []RuleResult{{
		RuleName:    r.Name(),
		Conclusion:  survivor,
		Premises:    []logic.Expr{disjunction, negation},
		Description: fmt.Sprintf("from %v and %v, %v", disjunction, negation, survivor),
	}}
}
