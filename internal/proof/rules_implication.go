package proof

import (
	"fmt"

	"github.com/limaJavier/prover/internal/logic"
)

type modusPonens struct{}

// NewModusPonens builds the rule A, A → B ⊢ B.
func NewModusPonens() Rule {
	return modusPonens{}
}

func (modusPonens) Name() string        { return "modus_ponens" }
func (modusPonens) Description() string { return "A, A → B ⊢ B" }

func (r modusPonens) Apply(kb KnowledgeSet, goal logic.Expr) []RuleResult {
	var results []RuleResult
	for _, formula := range kb.Formulas() {
		imply, ok := formula.(logic.Imply)
		if !ok || !kb.Contains(imply.Left) {
			continue
		}
		if !matchesGoal(imply.Right, goal) {
			continue
		}
		results = append(results, RuleResult{
			RuleName:    r.Name(),
			Conclusion:  imply.Right,
			Premises:    []logic.Expr{imply.Left, formula},
			Description: fmt.Sprintf("from %v and %v, by MP, %v", imply.Left, formula, imply.Right),
		})
	}
	return results
}

type modusTollens struct{}

// NewModusTollens builds the rule A → B, ~B ⊢ ~A.
func NewModusTollens() Rule {
	return modusTollens{}
}

func (modusTollens) Name() string        { return "modus_tollens" }
func (modusTollens) Description() string { return "A → B, ~B ⊢ ~A" }

func (r modusTollens) Apply(kb KnowledgeSet, goal logic.Expr) []RuleResult {
	var results []RuleResult
	for _, formula := range kb.Formulas() {
		imply, ok := formula.(logic.Imply)
		if !ok {
			continue
		}
		// The required second premise is the negation of the consequent;
		// Negate collapses ~~B back to B when the consequent is itself
		// negated.
		negConsequent := logic.Negate(imply.Right)
		if !kb.Contains(negConsequent) {
			continue
		}
		conclusion := logic.Negate(imply.Left)
		if !matchesGoal(conclusion, goal) {
			continue
		}
		results = append(results, RuleResult{
			RuleName:    r.Name(),
			Conclusion:  conclusion,
			Premises:    []logic.Expr{formula, negConsequent},
			Description: fmt.Sprintf("from %v and %v, by MT, %v", formula, negConsequent, conclusion),
		})
	}
	return results
}
