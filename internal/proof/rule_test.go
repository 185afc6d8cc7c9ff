package proof

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/limaJavier/prover/internal/logic"
)

func knowledgeOf(t *testing.T, texts ...string) KnowledgeSet {
	t.Helper()
	exprs, err := logic.ParseMany(texts)
	assert.Nil(t, err)
	return NewKnowledgeSet(exprs...)
}

func parse(t *testing.T, text string) logic.Expr {
	t.Helper()
	expr, err := logic.Parse(text)
	assert.Nil(t, err)
	return expr
}

// conclusionsOf projects the firings onto their conclusion keys.
func conclusionsOf(results []RuleResult) map[string]struct{} {
	keys := make(map[string]struct{}, len(results))
	for _, result := range results {
		keys[result.Conclusion.Key()] = struct{}{}
	}
	return keys
}

func assertConcludes(t *testing.T, results []RuleResult, expected string) {
	t.Helper()
	target := parse(t, expected)
	_, ok := conclusionsOf(results)[target.Key()]
	assert.True(t, ok, "no firing concludes %v among %v", target, results)
}

func TestModusPonens(t *testing.T) {
	rule := NewModusPonens()

	t.Run("fires on matching antecedent", func(t *testing.T) {
		// Act
		results := rule.Apply(knowledgeOf(t, "P", "P -> Q"), nil)

		// Assert
		assert.Len(t, results, 1)
		assertConcludes(t, results, "Q")
		assert.Len(t, results[0].Premises, 2)
	})

	t.Run("antecedent matches up to commutativity", func(t *testing.T) {
		results := rule.Apply(knowledgeOf(t, "P & Q", "(Q & P) -> R"), nil)
		assert.Len(t, results, 1)
		assertConcludes(t, results, "R")
	})

	t.Run("does not fire without the antecedent", func(t *testing.T) {
		results := rule.Apply(knowledgeOf(t, "P -> Q"), nil)
		assert.Empty(t, results)
	})

	t.Run("goal filters firings", func(t *testing.T) {
		kb := knowledgeOf(t, "P", "P -> Q", "P -> R")
		results := rule.Apply(kb, parse(t, "R"))
		assert.Len(t, results, 1)
		assertConcludes(t, results, "R")
	})
}

func TestModusTollens(t *testing.T) {
	rule := NewModusTollens()

	t.Run("fires on negated consequent", func(t *testing.T) {
		results := rule.Apply(knowledgeOf(t, "P -> Q", "~Q"), nil)
		assert.Len(t, results, 1)
		assertConcludes(t, results, "~P")
	})

	t.Run("negated consequent collapses double negation", func(t *testing.T) {
		// P -> ~Q with Q known: the required premise is ~~Q, held as Q.
		results := rule.Apply(knowledgeOf(t, "P -> ~Q", "Q"), nil)
		assert.Len(t, results, 1)
		assertConcludes(t, results, "~P")
	})

	t.Run("negated antecedent collapses too", func(t *testing.T) {
		// ~P -> Q with ~Q known concludes P, not ~~P.
		results := rule.Apply(knowledgeOf(t, "~P -> Q", "~Q"), nil)
		assert.Len(t, results, 1)
		assertConcludes(t, results, "P")
	})

	t.Run("does not fire without the negation", func(t *testing.T) {
		results := rule.Apply(knowledgeOf(t, "P -> Q", "Q"), nil)
		assert.Empty(t, results)
	})
}

func TestAndIntro(t *testing.T) {
	rule := NewAndIntro()

	t.Run("goal-directed pairing", func(t *testing.T) {
		results := rule.Apply(knowledgeOf(t, "P", "Q", "R"), parse(t, "P & Q"))
		assert.Len(t, results, 1)
		assertConcludes(t, results, "P & Q")
	})

	t.Run("goal-directed pairing missing a conjunct", func(t *testing.T) {
		results := rule.Apply(knowledgeOf(t, "P"), parse(t, "P & Q"))
		assert.Empty(t, results)
	})

	t.Run("unconstrained enumerates pairs once", func(t *testing.T) {
		// Three formulas make three unordered pairs; commutativity keeps
		// P & Q and Q & P from both appearing.
		results := rule.Apply(knowledgeOf(t, "P", "Q", "R"), nil)
		assert.Len(t, results, 3)
		assert.Len(t, conclusionsOf(results), 3)
	})

	t.Run("unconstrained never re-pairs conjunctions", func(t *testing.T) {
		results := rule.Apply(knowledgeOf(t, "P & Q", "R"), nil)
		assert.Empty(t, results)
	})
}

func TestAndElim(t *testing.T) {
	t.Run("left", func(t *testing.T) {
		results := NewAndElimLeft().Apply(knowledgeOf(t, "P & Q"), nil)
		assert.Len(t, results, 1)
		assertConcludes(t, results, "P")
	})

	t.Run("right", func(t *testing.T) {
		results := NewAndElimRight().Apply(knowledgeOf(t, "P & Q"), nil)
		assert.Len(t, results, 1)
		assertConcludes(t, results, "Q")
	})

	t.Run("nothing conjunctive", func(t *testing.T) {
		assert.Empty(t, NewAndElimLeft().Apply(knowledgeOf(t, "P | Q"), nil))
	})
}

func TestOrIntro(t *testing.T) {
	t.Run("left fires toward a disjunctive goal", func(t *testing.T) {
		results := NewOrIntroLeft().Apply(knowledgeOf(t, "P"), parse(t, "P | Q"))
		assert.Len(t, results, 1)
		assertConcludes(t, results, "P | Q")
	})

	t.Run("right fires toward a disjunctive goal", func(t *testing.T) {
		results := NewOrIntroRight().Apply(knowledgeOf(t, "Q"), parse(t, "P | Q"))
		assert.Len(t, results, 1)
		assertConcludes(t, results, "P | Q")
	})

	t.Run("silent without a disjunctive goal", func(t *testing.T) {
		// Unbounded otherwise: the other disjunct could be anything.
		assert.Empty(t, NewOrIntroLeft().Apply(knowledgeOf(t, "P"), nil))
		assert.Empty(t, NewOrIntroRight().Apply(knowledgeOf(t, "P"), nil))
	})

	t.Run("silent when the disjunct is unknown", func(t *testing.T) {
		assert.Empty(t, NewOrIntroLeft().Apply(knowledgeOf(t, "R"), parse(t, "P | Q")))
	})
}

func TestOrElim(t *testing.T) {
	rule := NewOrElim()

	t.Run("left disjunct refuted", func(t *testing.T) {
		results := rule.Apply(knowledgeOf(t, "P | Q", "~P"), nil)
		assert.Len(t, results, 1)
		assertConcludes(t, results, "Q")
	})

	t.Run("right disjunct refuted", func(t *testing.T) {
		results := rule.Apply(knowledgeOf(t, "P | Q", "~Q"), nil)
		assert.Len(t, results, 1)
		assertConcludes(t, results, "P")
	})

	t.Run("negated disjunct refuted by its operand", func(t *testing.T) {
		// ~P | Q with P known: the negation of ~P is P, not ~~P.
		results := rule.Apply(knowledgeOf(t, "~P | Q", "P"), nil)
		assert.Len(t, results, 1)
		assertConcludes(t, results, "Q")
	})

	t.Run("no refuting negation", func(t *testing.T) {
		assert.Empty(t, rule.Apply(knowledgeOf(t, "P | Q"), nil))
	})
}

func TestDoubleNegElim(t *testing.T) {
	rule := NewDoubleNegElim()

	t.Run("strips a double negation", func(t *testing.T) {
		results := rule.Apply(knowledgeOf(t, "~~P"), nil)
		assert.Len(t, results, 1)
		assertConcludes(t, results, "P")
	})

	t.Run("leaves single negations alone", func(t *testing.T) {
		assert.Empty(t, rule.Apply(knowledgeOf(t, "~P"), nil))
	})

	t.Run("strips one layer at a time", func(t *testing.T) {
		results := rule.Apply(knowledgeOf(t, "~~~~P"), nil)
		assert.Len(t, results, 1)
		assertConcludes(t, results, "~~P")
	})
}

func TestIffElim(t *testing.T) {
	rule := NewIffElim()

	t.Run("splits into both implications", func(t *testing.T) {
		results := rule.Apply(knowledgeOf(t, "P <-> Q"), nil)
		assert.Len(t, results, 2)
		assertConcludes(t, results, "P -> Q")
		assertConcludes(t, results, "Q -> P")
	})

	t.Run("goal filters to one direction", func(t *testing.T) {
		results := rule.Apply(knowledgeOf(t, "P <-> Q"), parse(t, "Q -> P"))
		assert.Len(t, results, 1)
		assertConcludes(t, results, "Q -> P")
	})

	t.Run("ignores plain implications", func(t *testing.T) {
		assert.Empty(t, rule.Apply(knowledgeOf(t, "P -> Q"), nil))
	})
}

func TestExcludedMiddle(t *testing.T) {
	rule := NewExcludedMiddle()

	t.Run("fires on a tautological disjunction with no premises", func(t *testing.T) {
		// Act: the knowledge set is empty on purpose.
		results := rule.Apply(NewKnowledgeSet(), parse(t, "P | ~P"))

		// Assert
		assert.Len(t, results, 1)
		assertConcludes(t, results, "P | ~P")
		assert.Empty(t, results[0].Premises)
	})

	t.Run("either orientation matches", func(t *testing.T) {
		results := rule.Apply(NewKnowledgeSet(), parse(t, "~P | P"))
		assert.Len(t, results, 1)
	})

	t.Run("composite operands match", func(t *testing.T) {
		results := rule.Apply(NewKnowledgeSet(), parse(t, "(P & Q) | ~(P & Q)"))
		assert.Len(t, results, 1)
	})

	t.Run("silent without a goal", func(t *testing.T) {
		// An instance exists for every formula in the language.
		assert.Empty(t, rule.Apply(knowledgeOf(t, "P"), nil))
	})

	t.Run("silent on ordinary disjunctions", func(t *testing.T) {
		assert.Empty(t, rule.Apply(NewKnowledgeSet(), parse(t, "P | ~Q")))
		assert.Empty(t, rule.Apply(NewKnowledgeSet(), parse(t, "P | Q")))
	})
}

func TestResolutionRule(t *testing.T) {
	rule := NewResolutionRule()

	t.Run("resolves clause-shaped members", func(t *testing.T) {
		results := rule.Apply(knowledgeOf(t, "P | Q", "~P | R"), nil)
		assert.Len(t, results, 1)
		assertConcludes(t, results, "Q | R")
	})

	t.Run("unit clauses resolve", func(t *testing.T) {
		results := rule.Apply(knowledgeOf(t, "P", "~P | Q"), nil)
		assert.Len(t, results, 1)
		assertConcludes(t, results, "Q")
	})

	t.Run("tautological resolvents are discarded", func(t *testing.T) {
		// Resolving P | Q and ~P | ~Q on either variable yields a tautology.
		assert.Empty(t, rule.Apply(knowledgeOf(t, "P | Q", "~P | ~Q"), nil))
	})

	t.Run("ignores non-clausal formulas", func(t *testing.T) {
		assert.Empty(t, rule.Apply(knowledgeOf(t, "P -> Q", "~P"), nil))
	})
}

func TestRegistryAndApplyAll(t *testing.T) {
	// Arrange
	registry := NewRegistry()
	assert.Len(t, registry, 12)

	kb := knowledgeOf(t, "P", "P -> Q", "~~R")

	t.Run("fires every applicable rule", func(t *testing.T) {
		// Act
		results := ApplyAll(registry, kb, nil, nil)

		// Assert
		conclusions := conclusionsOf(results)
		_, hasQ := conclusions[parse(t, "Q").Key()]
		_, hasR := conclusions[parse(t, "R").Key()]
		assert.True(t, hasQ)
		assert.True(t, hasR)
	})

	t.Run("exclusion silences a rule", func(t *testing.T) {
		// Act
		results := ApplyAll(registry, kb, nil, map[string]struct{}{"modus_ponens": {}})

		// Assert
		conclusions := conclusionsOf(results)
		_, hasQ := conclusions[parse(t, "Q").Key()]
		assert.False(t, hasQ)
	})
}
