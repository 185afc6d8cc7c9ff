package qubo

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/limaJavier/prover/internal/logic"
)

func TestExhaustiveSampler(t *testing.T) {
	sampler := NewExhaustiveSampler()
	assert.Equal(t, "exhaustive", sampler.Name())

	t.Run("best sample is the ground state", func(t *testing.T) {
		// Arrange
		problem := encodeStrings(t, []string{"P"}, "Q")

		// Act
		samples, err := sampler.Sample(problem, 3)

		// Assert
		assert.Nil(t, err)
		assert.Len(t, samples, 3)
		assert.InDelta(t, 0, samples[0].Energy, 1e-9)
		for i := 1; i < len(samples); i++ {
			assert.GreaterOrEqual(t, samples[i].Energy, samples[i-1].Energy)
		}
	})

	t.Run("rejects oversized problems", func(t *testing.T) {
		// Arrange: enough distinct variables that bits exceed the cap.
		variables := make([]logic.Expr, MaxExhaustiveBits+1)
		for i := range variables {
			variables[i] = logic.Var{Name: fmt.Sprintf("V%d", i)}
		}
		problem, err := NewEncoder().EncodeRefutation([]logic.Expr{logic.Conjoin(variables...)}, logic.Var{Name: "Goal"})
		assert.Nil(t, err)
		assert.Greater(t, problem.NumVars(), MaxExhaustiveBits)

		// Act
		_, err = sampler.Sample(problem, 1)

		// Assert
		var limit *logic.ResourceLimitError
		assert.ErrorAs(t, err, &limit)
	})
}

func TestAnnealingSampler(t *testing.T) {
	sampler := NewAnnealingSampler(200, 42)
	assert.Equal(t, "annealing", sampler.Name())

	t.Run("returns the requested reads sorted by energy", func(t *testing.T) {
		// Arrange
		problem := encodeStrings(t, []string{"P | Q"}, "P")

		// Act
		samples, err := sampler.Sample(problem, 8)

		// Assert
		assert.Nil(t, err)
		assert.Len(t, samples, 8)
		for i := 1; i < len(samples); i++ {
			assert.GreaterOrEqual(t, samples[i].Energy, samples[i-1].Energy)
		}
		// Recorded energies match a fresh evaluation.
		for _, sample := range samples {
			assert.InDelta(t, problem.Energy(sample.Bits), sample.Energy, 1e-6)
		}
	})

	t.Run("finds the ground state of an easy landscape", func(t *testing.T) {
		// {P} against goal Q has the unique proposition ground state
		// P=1, Q=0; plenty of sweeps and reads make missing it absurd.
		problem := encodeStrings(t, []string{"P"}, "Q")

		samples, err := NewAnnealingSampler(500, 1).Sample(problem, 20)
		assert.Nil(t, err)
		assert.InDelta(t, 0, samples[0].Energy, 1e-9)
	})

	t.Run("same seed reproduces the run", func(t *testing.T) {
		problem := encodeStrings(t, []string{"P -> Q"}, "Q")

		first, err := NewAnnealingSampler(100, 9).Sample(problem, 5)
		assert.Nil(t, err)
		second, err := NewAnnealingSampler(100, 9).Sample(problem, 5)
		assert.Nil(t, err)
		assert.Equal(t, first, second)
	})
}

func TestNewSampler(t *testing.T) {
	assert.Equal(t, "annealing", NewSampler("annealing", 100, 0).Name())
	assert.Equal(t, "exhaustive", NewSampler("exhaustive", 100, 0).Name())
	assert.Equal(t, "exhaustive", NewSampler("anything-else", 100, 0).Name())
	assert.ElementsMatch(t, []string{"exhaustive", "annealing"}, Samplers)
}
