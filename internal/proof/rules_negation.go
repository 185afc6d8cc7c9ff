package proof

import (
	"fmt"

	"github.com/limaJavier/prover/internal/logic"
)

type doubleNegElim struct{}

// NewDoubleNegElim builds the rule ~~A ⊢ A.
func NewDoubleNegElim() Rule {
	return doubleNegElim{}
}

func (doubleNegElim) Name() string        { return "double_neg_elim" }
func (doubleNegElim) Description() string { return "~~A ⊢ A" }

func (r doubleNegElim) Apply(kb KnowledgeSet, goal logic.Expr) []RuleResult {
	var results []RuleResult
	for _, formula := range kb.Formulas() {
		outer, ok := formula.(logic.Not)
		if !ok {
			continue
		}
		inner, ok := outer.Operand.(logic.Not)
		if !ok || !matchesGoal(inner.Operand, goal) {
			continue
		}
		results = append(results, RuleResult{
			RuleName:    r.Name(),
			Conclusion:  inner.Operand,
			Premises:    []logic.Expr{formula},
			Description: fmt.Sprintf("from %v, %v", formula, inner.Operand),
		})
	}
	return results
}

type excludedMiddle struct{}

// NewExcludedMiddle builds the axiom schema ⊢ A ∨ ¬A. It needs no
// premises, so it is the only rule that can fire on an empty knowledge
// set; tautological goals like P ∨ ¬P are unreachable without it.
func NewExcludedMiddle() Rule {
	return excludedMiddle{}
}

func (excludedMiddle) Name() string        { return "excluded_middle" }
func (excludedMiddle) Description() string { return "⊢ A ∨ ¬A" }

func (r excludedMiddle) Apply(kb KnowledgeSet, goal logic.Expr) []RuleResult {
	// Goal-directed only: without a target the schema has an instance for
	// every formula in the language.
	disj, ok := goal.(logic.Or)
	if !ok {
		return nil
	}
	if !logic.Equal(disj.Right, logic.Negate(disj.Left)) && !logic.Equal(disj.Left, logic.Negate(disj.Right)) {
		return nil
	}
	return []RuleResult{{
		RuleName:    r.Name(),
		Conclusion:  goal,
		Description: fmt.Sprintf("%v holds by excluded middle", goal),
	}}
}
