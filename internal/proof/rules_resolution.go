package proof

import (
	"fmt"

	"github.com/limaJavier/prover/internal/logic"
)

type resolutionRule struct{}

// NewResolutionRule builds the rule form of resolution: two clause-shaped
// members of the knowledge set sharing a resolvable variable yield their
// resolvent as a disjunction formula. Carrying resolution alongside the
// natural-deduction rules is what makes the forward search a completeness
// backstop rather than a heuristic.
func NewResolutionRule() Rule {
	return resolutionRule{}
}

func (resolutionRule) Name() string        { return "resolution" }
func (resolutionRule) Description() string { return "A ∨ P, B ∨ ~P ⊢ A ∨ B" }

func (r resolutionRule) Apply(kb KnowledgeSet, goal logic.Expr) []RuleResult {
	type clausal struct {
		formula logic.Expr
		clause  logic.Clause
	}

	var members []clausal
	for _, formula := range kb.Formulas() {
		if clause, ok := logic.ExprToClause(formula); ok {
			members = append(members, clausal{formula: formula, clause: clause})
		}
	}

	var results []RuleResult
	for i, left := range members {
		for _, right := range members[i+1:] {
			for _, variable := range left.clause.Vars() {
				resolvent, ok := logic.Resolve(left.clause, right.clause, variable)
				if !ok || resolvent.IsTautology() {
					continue
				}
				conclusion := resolvent.ToExpr()
				if !matchesGoal(conclusion, goal) {
					continue
				}
				results = append(results, RuleResult{
					RuleName:    r.Name(),
					Conclusion:  conclusion,
					Premises:    []logic.Expr{left.formula, right.formula},
					Description: fmt.Sprintf("resolving %v and %v on %s, %v", left.formula, right.formula, variable, conclusion),
				})
			}
		}
	}
	return results
}
