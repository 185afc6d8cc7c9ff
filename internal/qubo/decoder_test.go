package qubo

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/limaJavier/prover/internal/logic"
)

func TestDecodeDropsAuxiliaries(t *testing.T) {
	// Arrange: the gadget auxiliaries outnumber the propositions.
	problem := encodeStrings(t, []string{"P & Q"}, "R")
	bits := make([]bool, problem.NumVars())
	bits[problem.VarIndex["P"]] = true

	// Act
	assignment := Decode(problem, Sample{Bits: bits})

	// Assert
	assert.Len(t, assignment, 3)
	assert.True(t, assignment["P"])
	assert.False(t, assignment["Q"])
	assert.False(t, assignment["R"])
}

func TestVerifyCounterModel(t *testing.T) {
	// Arrange
	problem := encodeStrings(t, []string{"P | Q"}, "P")

	set := func(names ...string) Sample {
		bits := make([]bool, problem.NumVars())
		for _, name := range names {
			bits[problem.VarIndex[name]] = true
		}
		return Sample{Bits: bits}
	}

	t.Run("accepts a genuine counter-model", func(t *testing.T) {
		// Q=1, P=0 satisfies P | Q and falsifies P.
		assignment, ok := VerifyCounterModel(problem, set("Q"))
		assert.True(t, ok)
		assert.True(t, assignment["Q"])
		assert.False(t, assignment["P"])
	})

	t.Run("rejects an axiom violation", func(t *testing.T) {
		_, ok := VerifyCounterModel(problem, set())
		assert.False(t, ok)
	})

	t.Run("rejects a satisfied goal", func(t *testing.T) {
		_, ok := VerifyCounterModel(problem, set("P"))
		assert.False(t, ok)
	})
}

func checkStrings(t *testing.T, axioms []string, goal string, sampler Sampler, reads int) EntailmentCheck {
	t.Helper()
	parsedAxioms, err := logic.ParseMany(axioms)
	assert.Nil(t, err)
	parsedGoal, err := logic.Parse(goal)
	assert.Nil(t, err)
	check, err := CheckEntailment(parsedAxioms, parsedGoal, sampler, reads)
	assert.Nil(t, err)
	return check
}

func TestCheckEntailment(t *testing.T) {
	// Arrange: the sampling route must agree with the truth-table oracle
	// on every case, and produce verified counter-models for refutations.
	scenarios := []struct {
		name     string
		axioms   []string
		goal     string
		entailed bool
	}{
		{"modus ponens", []string{"P", "P -> Q"}, "Q", true},
		{"modus tollens", []string{"P -> Q", "~Q"}, "~P", true},
		{"chain", []string{"P", "P -> Q", "Q -> R"}, "R", true},
		{"tautology", nil, "P | ~P", true},
		{"atomic gap", []string{"P"}, "Q", false},
		{"converse error", []string{"P -> Q", "Q"}, "P", false},
	}

	samplers := []Sampler{
		NewExhaustiveSampler(),
		NewAnnealingSampler(300, 5),
	}

	for _, sampler := range samplers {
		for _, scenario := range scenarios {
			t.Run(sampler.Name()+"/"+scenario.name, func(t *testing.T) {
				// Act
				check := checkStrings(t, scenario.axioms, scenario.goal, sampler, 10)

				// Assert
				assert.Equal(t, scenario.entailed, check.Entailed)
				if scenario.entailed {
					assert.Nil(t, check.CounterModel)
				} else {
					// The counter-model is always semantically verified.
					assert.NotNil(t, check.CounterModel)
					axioms, err := logic.ParseMany(scenario.axioms)
					assert.Nil(t, err)
					for _, axiom := range axioms {
						holds, err := logic.Evaluate(axiom, check.CounterModel)
						assert.Nil(t, err)
						assert.True(t, holds)
					}
					goal, err := logic.Parse(scenario.goal)
					assert.Nil(t, err)
					holds, err := logic.Evaluate(goal, check.CounterModel)
					assert.Nil(t, err)
					assert.False(t, holds)
				}
			})
		}
	}
}

// A goal that is merely consistent with the axioms is not thereby
// entailed: {P} and Q are jointly satisfiable, yet P ⊬ Q. The sampling
// route must refute it instead of mistaking satisfiability for
// derivability.
func TestSatisfiableGoalIsNotEntailed(t *testing.T) {
	check := checkStrings(t, []string{"P"}, "Q", NewExhaustiveSampler(), 10)

	assert.False(t, check.Entailed)
	assert.NotNil(t, check.CounterModel)
	assert.True(t, check.CounterModel["P"])
	assert.False(t, check.CounterModel["Q"])
	assert.InDelta(t, 0, check.BestEnergy, 1e-9)
}

func TestCheckEntailmentReportsSampling(t *testing.T) {
	// Act
	check := checkStrings(t, []string{"P", "P -> Q"}, "Q", NewExhaustiveSampler(), 4)

	// Assert: reads are reported and the best energy of an entailed
	// refutation stays strictly positive.
	assert.Equal(t, 4, check.SampledReads)
	assert.Greater(t, check.BestEnergy, 0.0)
}
