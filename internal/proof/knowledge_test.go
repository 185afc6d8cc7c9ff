package proof

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/limaJavier/prover/internal/logic"
)

func TestKnowledgeSetCommutedMembership(t *testing.T) {
	// Arrange
	p := logic.Var{Name: "P"}
	q := logic.Var{Name: "Q"}
	ks := NewKnowledgeSet(logic.And{Left: p, Right: q})

	// Act and Assert: the commuted conjunction is the same member.
	assert.True(t, ks.Contains(logic.And{Left: q, Right: p}))
	assert.Len(t, ks, 1)

	ks.Add(logic.And{Left: q, Right: p})
	assert.Len(t, ks, 1)
}

func TestKnowledgeSetRemove(t *testing.T) {
	// Arrange
	p := logic.Var{Name: "P"}
	ks := NewKnowledgeSet(p, logic.Not{Operand: p})

	// Act
	ks.Remove(p)

	// Assert
	assert.False(t, ks.Contains(p))
	assert.True(t, ks.Contains(logic.Not{Operand: p}))
}

func TestKnowledgeSetFormulasDeterministic(t *testing.T) {
	// Arrange
	exprs, err := logic.ParseMany([]string{"R", "P", "Q & S", "~P"})
	assert.Nil(t, err)
	ks := NewKnowledgeSet(exprs...)

	// Act
	first := ks.Formulas()

	// Assert: repeated enumeration yields the same order.
	for range 5 {
		again := ks.Formulas()
		assert.Equal(t, len(first), len(again))
		for i := range first {
			assert.True(t, logic.Equal(first[i], again[i]))
		}
	}
}

func TestKnowledgeSetClone(t *testing.T) {
	// Arrange
	p := logic.Var{Name: "P"}
	q := logic.Var{Name: "Q"}
	original := NewKnowledgeSet(p)

	// Act
	clone := original.Clone()
	clone.Add(q)

	// Assert
	assert.True(t, clone.Contains(q))
	assert.False(t, original.Contains(q))
}
