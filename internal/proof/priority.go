package proof

import (
	"gonum.org/v1/gonum/mat"

	"github.com/limaJavier/prover/internal/logic"
)

// The predictor maps a problem's connective profile to per-rule priority
// weights for the search ranking. It is a fixed linear model: a feature
// vector over the connective mix of axioms and goal, multiplied by a
// hand-set weight matrix with one row per rule. Rules keyed to the
// connectives a problem actually contains outrank the rest, so the
// branching cutoff spends its slots where the problem lives.

// Feature layout: bias, then the share of each connective among all
// connectives of the problem, then two goal-shape indicators.
const (
	featBias = iota
	featImply
	featIff
	featAnd
	featOr
	featNot
	featGoalOr
	featGoalAnd
	numFeatures
)

// predictorWeights holds one row per rule. All weights are non-negative,
// so predicted priorities never fall below the 1.0 baseline of unlisted
// rules.
var predictorWeights = map[string][numFeatures]float64{
	"modus_ponens":    {0, 4, 1, 0, 0, 0, 0, 0},
	"modus_tollens":   {0, 2, 0, 0, 0, 2, 0, 0},
	"and_intro":       {0, 0, 0, 1, 0, 0, 0, 3},
	"and_elim_left":   {0, 0, 0, 3, 0, 0, 0, 0},
	"and_elim_right":  {0, 0, 0, 3, 0, 0, 0, 0},
	"or_intro_left":   {0, 0, 0, 0, 1, 0, 3, 0},
	"or_intro_right":  {0, 0, 0, 0, 1, 0, 3, 0},
	"or_elim":         {0, 0, 0, 0, 3, 1, 0, 0},
	"double_neg_elim": {0, 0, 0, 0, 0, 3, 0, 0},
	"excluded_middle": {0, 0, 0, 0, 1, 1, 1, 0},
	"iff_elim":        {0, 1, 4, 0, 0, 0, 0, 0},
	"resolution":      {0, 0, 0, 0, 2, 2, 0, 0},
}

// PredictRulePriority scores every registry rule for the given problem.
// The result plugs straight into SearchConfig.RulePriority.
func PredictRulePriority(axioms []logic.Expr, goal logic.Expr) map[string]float64 {
	features := extractFeatures(axioms, goal)

	names := make([]string, 0, len(predictorWeights))
	for name := range predictorWeights {
		names = append(names, name)
	}

	weights := mat.NewDense(len(names), numFeatures, nil)
	for i, name := range names {
		row := predictorWeights[name]
		weights.SetRow(i, row[:])
	}

	var scores mat.VecDense
	scores.MulVec(weights, features)

	priorities := make(map[string]float64, len(names))
	for i, name := range names {
		priorities[name] = 1 + scores.AtVec(i)
	}
	return priorities
}

func extractFeatures(axioms []logic.Expr, goal logic.Expr) *mat.VecDense {
	var counts connectiveCounts
	for _, axiom := range axioms {
		counts.walk(axiom)
	}
	counts.walk(goal)

	total := float64(counts.imply + counts.iff + counts.and + counts.or + counts.not)
	share := func(n int) float64 {
		if total == 0 {
			return 0
		}
		return float64(n) / total
	}

	features := mat.NewVecDense(numFeatures, nil)
	features.SetVec(featBias, 1)
	features.SetVec(featImply, share(counts.imply))
	features.SetVec(featIff, share(counts.iff))
	features.SetVec(featAnd, share(counts.and))
	features.SetVec(featOr, share(counts.or))
	features.SetVec(featNot, share(counts.not))
	if _, ok := goal.(logic.Or); ok {
		features.SetVec(featGoalOr, 1)
	}
	if _, ok := goal.(logic.And); ok {
		features.SetVec(featGoalAnd, 1)
	}
	return features
}

type connectiveCounts struct {
	imply, iff, and, or, not int
}

func (c *connectiveCounts) walk(e logic.Expr) {
	switch node := e.(type) {
	case logic.Not:
		c.not++
		c.walk(node.Operand)
	case logic.And:
		c.and++
		c.walk(node.Left)
		c.walk(node.Right)
	case logic.Or:
		c.or++
		c.walk(node.Left)
		c.walk(node.Right)
	case logic.Imply:
		c.imply++
		c.walk(node.Left)
		c.walk(node.Right)
	case logic.Iff:
		c.iff++
		c.walk(node.Left)
		c.walk(node.Right)
	}
}
