package logic

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// nnfShaped reports whether Imply and Iff are gone and every negation sits
// directly on a variable.
func nnfShaped(e Expr) bool {
	switch node := e.(type) {
	case Var:
		return true
	case Not:
		_, ok := node.Operand.(Var)
		return ok
	case And:
		return nnfShaped(node.Left) && nnfShaped(node.Right)
	case Or:
		return nnfShaped(node.Left) && nnfShaped(node.Right)
	}
	return false
}

func TestToNNF(t *testing.T) {
	// Arrange
	inputs := []string{
		"P",
		"~P",
		"~~P",
		"~~~P",
		"P -> Q",
		"P <-> Q",
		"~(P & Q)",
		"~(P | Q)",
		"~(P -> Q)",
		"~(P <-> Q)",
		"~((P | Q) & ~(R -> S))",
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			// Arrange
			formula := mustParse(t, input)

			// Act
			nnf := ToNNF(formula)

			// Assert: the result is in NNF and preserves the semantics.
			assert.True(t, nnfShaped(nnf), "not in NNF: %v", nnf)
			equivalent, err := IsEquivalent(formula, nnf)
			assert.Nil(t, err)
			assert.True(t, equivalent)

			// NNF is a fixed point.
			assert.True(t, Equal(nnf, ToNNF(nnf)))
		})
	}
}

func TestToNNFDeMorgan(t *testing.T) {
	// Act and Assert
	assert.True(t, Equal(mustParse(t, "~P | ~Q"), ToNNF(mustParse(t, "~(P & Q)"))))
	assert.True(t, Equal(mustParse(t, "~P & ~Q"), ToNNF(mustParse(t, "~(P | Q)"))))
	assert.True(t, Equal(mustParse(t, "P"), ToNNF(mustParse(t, "~~P"))))
}

func TestToCNF(t *testing.T) {
	// Arrange
	inputs := []string{
		"P",
		"~P",
		"P & Q",
		"P | Q",
		"P -> Q",
		"P <-> Q",
		"(P & Q) | R",
		"(P & Q) | (R & S)",
		"~(P -> (Q & R))",
		"(P | Q) -> (R & S)",
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			// Arrange
			formula := mustParse(t, input)

			// Act
			cnf := ToCNF(formula)

			// Assert: the clause set is equisatisfiable in the strong sense,
			// i.e. logically equivalent to the source formula.
			equivalent, err := IsEquivalent(formula, cnf.ToExpr())
			assert.Nil(t, err)
			assert.True(t, equivalent, "CNF %v is not equivalent to %v", cnf, formula)
		})
	}
}

func TestToCNFDistribution(t *testing.T) {
	// Act
	cnf := ToCNF(mustParse(t, "(P & Q) | R"))

	// Assert
	assert.Len(t, cnf, 2)
	assert.True(t, cnf.Contains(ParseClause("P", "R")))
	assert.True(t, cnf.Contains(ParseClause("Q", "R")))
}

func TestCNFDropsTautologicalClauses(t *testing.T) {
	// Act: P | ~P distributes into a single tautological clause.
	cnf := ToCNF(mustParse(t, "P | ~P"))

	// Assert
	assert.True(t, cnf.IsEmpty())
	assert.Equal(t, "⊤", cnf.String())

	// Adding a tautology directly is also a no-op.
	cnf.Add(ParseClause("Q", "~Q"))
	assert.True(t, cnf.IsEmpty())
}

func TestClauseOperations(t *testing.T) {
	t.Run("deduplicates literals", func(t *testing.T) {
		clause := ParseClause("P", "P", "~Q")
		assert.Len(t, clause, 2)
	})

	t.Run("unit clause", func(t *testing.T) {
		clause := ParseClause("~P")
		assert.True(t, clause.IsUnit())
		literal, ok := clause.UnitLiteral()
		assert.True(t, ok)
		assert.Equal(t, Literal{Var: "P", Positive: false}, literal)
	})

	t.Run("tautology detection", func(t *testing.T) {
		assert.True(t, ParseClause("P", "~P", "Q").IsTautology())
		assert.False(t, ParseClause("P", "Q").IsTautology())
	})

	t.Run("union and remove", func(t *testing.T) {
		merged := ParseClause("P").Union(ParseClause("~Q"))
		assert.Len(t, merged, 2)
		trimmed := merged.Remove(Literal{Var: "P", Positive: true})
		assert.Len(t, trimmed, 1)
		// The receiver is untouched.
		assert.Len(t, merged, 2)
	})

	t.Run("canonical rendering", func(t *testing.T) {
		assert.Equal(t, "P | ~Q | R", ParseClause("R", "~Q", "P").String())
		assert.Equal(t, "⊥", NewClause().String())
	})

	t.Run("key is order-insensitive", func(t *testing.T) {
		assert.Equal(t, ParseClause("P", "~Q").Key(), ParseClause("~Q", "P").Key())
	})
}

func TestClauseToExpr(t *testing.T) {
	t.Run("regular clause", func(t *testing.T) {
		expr := ParseClause("P", "~Q").ToExpr()
		equivalent, err := IsEquivalent(mustParse(t, "P | ~Q"), expr)
		assert.Nil(t, err)
		assert.True(t, equivalent)
	})

	t.Run("empty clause is a contradiction", func(t *testing.T) {
		contradiction, err := IsContradiction(NewClause().ToExpr())
		assert.Nil(t, err)
		assert.True(t, contradiction)
	})

	t.Run("empty CNF is a tautology", func(t *testing.T) {
		tautology, err := IsTautology(NewCNF().ToExpr())
		assert.Nil(t, err)
		assert.True(t, tautology)
	})
}

func TestCNFSetOperations(t *testing.T) {
	// Arrange
	left := NewCNF(ParseClause("P"), ParseClause("~Q", "R"))
	right := NewCNF(ParseClause("P"), ParseClause("S"))

	// Act
	merged := left.Union(right)

	// Assert: the shared clause is deduplicated through its key.
	assert.Len(t, merged, 3)
	assert.True(t, merged.Contains(ParseClause("P")))
	assert.True(t, merged.Contains(ParseClause("R", "~Q")))
	assert.True(t, merged.Contains(ParseClause("S")))

	assert.Equal(t, []string{"P", "Q", "R", "S"}, merged.Vars())
	assert.Len(t, merged.UnitClauses(), 2)
}

func TestExprToClause(t *testing.T) {
	t.Run("disjunction of literals", func(t *testing.T) {
		clause, ok := ExprToClause(mustParse(t, "P | ~Q | R"))
		assert.True(t, ok)
		assert.Equal(t, ParseClause("P", "~Q", "R").Key(), clause.Key())
	})

	t.Run("single literal", func(t *testing.T) {
		clause, ok := ExprToClause(mustParse(t, "~P"))
		assert.True(t, ok)
		assert.True(t, clause.IsUnit())
	})

	t.Run("not clause shaped", func(t *testing.T) {
		_, ok := ExprToClause(mustParse(t, "P & Q"))
		assert.False(t, ok)
		_, ok = ExprToClause(mustParse(t, "P | (Q & R)"))
		assert.False(t, ok)
		_, ok = ExprToClause(mustParse(t, "P -> Q"))
		assert.False(t, ok)
	})
}
