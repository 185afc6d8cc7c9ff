package qubo

import (
	"github.com/limaJavier/prover/internal/logic"
)

// Decode projects a sample onto the proposition variables, dropping the
// auxiliary gadget bits.
func Decode(problem *Problem, sample Sample) logic.Assignment {
	assignment := make(logic.Assignment, len(problem.VarIndex))
	for name, i := range problem.VarIndex {
		assignment[name] = sample.Bits[i]
	}
	return assignment
}

// VerifyCounterModel checks semantically that the decoded assignment
// satisfies every axiom and falsifies the goal. Raw energies are never
// trusted: a low-energy sample that fails this check is discarded.
func VerifyCounterModel(problem *Problem, sample Sample) (logic.Assignment, bool) {
	assignment := Decode(problem, sample)
	for _, axiom := range problem.Axioms {
		holds, err := logic.Evaluate(axiom, assignment)
		if err != nil || !holds {
			return nil, false
		}
	}
	holds, err := logic.Evaluate(problem.Goal, assignment)
	if err != nil || holds {
		return nil, false
	}
	return assignment, true
}

// EntailmentCheck is the outcome of the sampling route. Entailed is only
// ever asserted after the semantic oracle confirms it; a verified
// counter-model alone is enough to refute.
type EntailmentCheck struct {
	Entailed     bool
	CounterModel logic.Assignment
	BestEnergy   float64
	SampledReads int
}

// CheckEntailment encodes axioms ∧ ¬goal, samples the energy, and decides
// the entailment. A verified counter-model among the samples settles the
// question negatively. Otherwise sampling found nothing, which proves
// nothing, so the decision falls through to the truth-table oracle.
func CheckEntailment(axioms []logic.Expr, goal logic.Expr, sampler Sampler, reads int) (EntailmentCheck, error) {
	problem, err := NewEncoder().EncodeRefutation(axioms, goal)
	if err != nil {
		return EntailmentCheck{}, err
	}

	samples, err := sampler.Sample(problem, reads)
	if err != nil {
		return EntailmentCheck{}, err
	}

	check := EntailmentCheck{Entailed: true, SampledReads: len(samples)}
	if len(samples) > 0 {
		check.BestEnergy = samples[0].Energy
	}
	for _, sample := range samples {
		if assignment, ok := VerifyCounterModel(problem, sample); ok {
			check.Entailed = false
			check.CounterModel = assignment
			return check, nil
		}
	}

	// No sampled state survived verification. Absence of evidence is not
	// a proof of entailment, so defer to the exhaustive oracle.
	entailed, err := logic.Entails(axioms, goal)
	if err != nil {
		return EntailmentCheck{}, err
	}
	check.Entailed = entailed
	if !entailed {
		counter, err := logic.FindEntailmentCounterModel(axioms, goal)
		if err == nil {
			check.CounterModel = counter
		}
	}
	return check, nil
}
