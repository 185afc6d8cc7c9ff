package proof

import (
	"fmt"

	"github.com/samber/lo"

	"github.com/limaJavier/prover/internal/logic"
)

type andIntro struct{}

// NewAndIntro builds the rule A, B ⊢ A ∧ B.
func NewAndIntro() Rule {
	return andIntro{}
}

func (andIntro) Name() string        { return "and_intro" }
func (andIntro) Description() string { return "A, B ⊢ A ∧ B" }

func (r andIntro) Apply(kb KnowledgeSet, goal logic.Expr) []RuleResult {
	// Goal-directed: when the goal is a conjunction, only the one pairing
	// that produces it is interesting.
	if conj, ok := goal.(logic.And); ok {
		if kb.Contains(conj.Left) && kb.Contains(conj.Right) {
			return []RuleResult{{
				RuleName:    r.Name(),
				Conclusion:  conj,
				Premises:    []logic.Expr{conj.Left, conj.Right},
				Description: fmt.Sprintf("from %v and %v, %v", conj.Left, conj.Right, conj),
			}}
		}
		return nil
	}

	// Unconstrained, pairing only non-conjunctions: re-pairing conjunctions
	// nests formulas without bound, and any conjunctive target is reachable
	// through the goal-directed path above.
	var results []RuleResult
	formulas := lo.Filter(kb.Formulas(), func(e logic.Expr, _ int) bool {
		_, isAnd := e.(logic.And)
		return !isAnd
	})
	for i, left := range formulas {
		for _, right := range formulas[i+1:] {
			conclusion := logic.And{Left: left, Right: right}
			if !matchesGoal(conclusion, goal) {
				continue
			}
			results = append(results, RuleResult{
				RuleName:    r.Name(),
				Conclusion:  conclusion,
				Premises:    []logic.Expr{left, right},
				Description: fmt.Sprintf("from %v and %v, %v", left, right, conclusion),
			})
		}
	}
	return results
}

type andElimLeft struct{}

// NewAndElimLeft builds the rule A ∧ B ⊢ A.
func NewAndElimLeft() Rule {
	return andElimLeft{}
}

func (andElimLeft) Name() string        { return "and_elim_left" }
func (andElimLeft) Description() string { return "A ∧ B ⊢ A" }

func (r andElimLeft) Apply(kb KnowledgeSet, goal logic.Expr) []RuleResult {
	var results []RuleResult
	for _, formula := range kb.Formulas() {
		conj, ok := formula.(logic.And)
		if !ok || !matchesGoal(conj.Left, goal) {
			continue
		}
		results = append(results, RuleResult{
			RuleName:    r.Name(),
			Conclusion:  conj.Left,
			Premises:    []logic.Expr{formula},
			Description: fmt.Sprintf("from %v, %v", formula, conj.Left),
		})
	}
	return results
}

type andElimRight struct{}

// NewAndElimRight builds the rule A ∧ B ⊢ B.
func NewAndElimRight() Rule {
	return andElimRight{}
}

func (andElimRight) Name() string        { return "and_elim_right" }
func (andElimRight) Description() string { return "A ∧ B ⊢ B" }

func (r andElimRight) Apply(kb KnowledgeSet, goal logic.Expr) []RuleResult {
	var results []RuleResult
	for _, formula := range kb.Formulas() {
		conj, ok := formula.(logic.And)
		if !ok || !matchesGoal(conj.Right, goal) {
			continue
		}
		results = append(results, RuleResult{
			RuleName:    r.Name(),
			Conclusion:  conj.Right,
			Premises:    []logic.Expr{formula},
			Description: fmt.Sprintf("from %v, %v", formula, conj.Right),
		})
	}
	return results
}
