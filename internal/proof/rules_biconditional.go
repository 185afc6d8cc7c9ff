package proof

import (
	"fmt"

	"github.com/limaJavier/prover/internal/logic"
)

type iffElim struct{}

// NewIffElim builds the rule A ↔ B ⊢ A → B (and its converse B → A).
// Splitting a biconditional into its implications is what lets the
// implicational rules reach into it.
func NewIffElim() Rule {
	return iffElim{}
}

func (iffElim) Name() string        { return "iff_elim" }
func (iffElim) Description() string { return "A ↔ B ⊢ A → B, B → A" }

func (r iffElim) Apply(kb KnowledgeSet, goal logic.Expr) []RuleResult {
	var results []RuleResult
	for _, formula := range kb.Formulas() {
		iff, ok := formula.(logic.Iff)
		if !ok {
			continue
		}
		for _, conclusion := range []logic.Expr{
			logic.Imply{Left: iff.Left, Right: iff.Right},
			logic.Imply{Left: iff.Right, Right: iff.Left},
		} {
			if !matchesGoal(conclusion, goal) {
				continue
			}
			results = append(results, RuleResult{
				RuleName:    r.Name(),
				Conclusion:  conclusion,
				Premises:    []logic.Expr{formula},
				Description: fmt.Sprintf("from %v, %v", formula, conclusion),
			})
		}
	}
	return results
}
