package proof

import (
	"fmt"
	"strings"

	"github.com/samber/lo"

	"github.com/limaJavier/prover/internal/logic"
)

// RuleResult is one way a rule can fire against a knowledge set: the
// conclusion it would derive and the premises it consumed.
type RuleResult struct {
	RuleName    string
	Conclusion  logic.Expr
	Premises    []logic.Expr
	Description string
}

func (r RuleResult) String() string {
	premises := strings.Join(lo.Map(r.Premises, func(p logic.Expr, _ int) string { return p.String() }), ", ")
	return fmt.Sprintf("%s: %s ⊢ %s", r.RuleName, premises, r.Conclusion)
}

// Rule is a natural-deduction inference rule. Apply enumerates every way
// the rule can fire against the knowledge set without mutating it. A
// non-nil goal acts as a search heuristic: rules that could yield many
// conclusions only report the ones matching the goal. With a nil goal all
// valid firings are returned.
type Rule interface {
	Name() string
	Description() string
	Apply(kb KnowledgeSet, goal logic.Expr) []RuleResult
}

// NewRegistry builds the rule set in a fixed application order. The
// registry is a plain value: callers own it and there is no ambient
// global to mutate.
func NewRegistry() []Rule {
	return []Rule{
		NewModusPonens(),
		NewModusTollens(),
		NewAndIntro(),
		NewAndElimLeft(),
		NewAndElimRight(),
		NewOrIntroLeft(),
		NewOrIntroRight(),
		NewOrElim(),
		NewDoubleNegElim(),
		NewExcludedMiddle(),
		NewIffElim(),
		NewResolutionRule(),
	}
}

// ApplyAll fires every non-excluded rule of the registry against the
// knowledge set and concatenates the results in registry order.
func ApplyAll(registry []Rule, kb KnowledgeSet, goal logic.Expr, excluded map[string]struct{}) []RuleResult {
	var results []RuleResult
	for _, rule := range registry {
		if _, skip := excluded[rule.Name()]; skip {
			continue
		}
		results = append(results, rule.Apply(kb, goal)...)
	}
	return results
}

// matchesGoal implements the goal hint: with no goal everything matches.
func matchesGoal(conclusion, goal logic.Expr) bool {
	return goal == nil || logic.Equal(conclusion, goal)
}
