package qubo

import (
	"math"
	"math/rand/v2"
	"sort"

	"github.com/samber/lo"

	"github.com/limaJavier/prover/internal/logic"
)

// Sample is one candidate bit vector with its energy.
type Sample struct {
	Bits   []bool
	Energy float64
}

// Sampler draws low-energy candidate states from a QUBO problem. A
// sampler is a heuristic: its lowest sample bounds the ground energy from
// above but proves nothing on its own, which is why the decoder always
// verifies samples semantically.
type Sampler interface {
	Name() string
	Sample(problem *Problem, reads int) ([]Sample, error)
}

// MaxExhaustiveBits caps the brute-force backend the same way the
// evaluator caps truth-table enumeration.
const MaxExhaustiveBits = logic.MaxEnumVars

type exhaustiveSampler struct{}

// NewExhaustiveSampler enumerates every bit vector, so its best sample is
// the true ground state. Only viable while the bit count stays under
// MaxExhaustiveBits.
func NewExhaustiveSampler() Sampler {
	return exhaustiveSampler{}
}

func (exhaustiveSampler) Name() string { return "exhaustive" }

func (exhaustiveSampler) Sample(problem *Problem, reads int) ([]Sample, error) {
	n := problem.NumVars()
	if n > MaxExhaustiveBits {
		return nil, &logic.ResourceLimitError{
			What:  "exhaustive sampling over bits",
			Limit: MaxExhaustiveBits,
			Got:   n,
		}
	}
	if reads <= 0 {
		reads = 1
	}

	samples := make([]Sample, 0, 1<<n)
	for mask := 0; mask < 1<<n; mask++ {
		bits := make([]bool, n)
		for i := range n {
			bits[i] = mask&(1<<i) != 0
		}
		samples = append(samples, Sample{Bits: bits, Energy: problem.Energy(bits)})
	}
	sort.SliceStable(samples, func(i, j int) bool { return samples[i].Energy < samples[j].Energy })
	return lo.Subset(samples, 0, uint(reads)), nil
}

type annealingSampler struct {
	sweeps int
	seed   uint64
}

// NewAnnealingSampler runs single-bit-flip simulated annealing with a
// geometric temperature schedule; sweeps is the number of full passes per
// read. The seed makes runs reproducible.
func NewAnnealingSampler(sweeps int, seed uint64) Sampler {
	if sweeps <= 0 {
		sweeps = 1000
	}
	return &annealingSampler{sweeps: sweeps, seed: seed}
}

func (*annealingSampler) Name() string { return "annealing" }

func (s *annealingSampler) Sample(problem *Problem, reads int) ([]Sample, error) {
	if reads <= 0 {
		reads = 10
	}
	n := problem.NumVars()
	rng := rand.New(rand.NewPCG(s.seed, uint64(n)))

	samples := make([]Sample, 0, reads)
	for range reads {
		bits := make([]bool, n)
		for i := range bits {
			bits[i] = rng.IntN(2) == 1
		}
		energy := problem.Energy(bits)

		const betaStart, betaEnd = 0.1, 10.0
		for sweep := range s.sweeps {
			// Geometric interpolation of the inverse temperature.
			progress := float64(sweep) / float64(s.sweeps)
			beta := betaStart * math.Pow(betaEnd/betaStart, progress)

			for range n {
				i := rng.IntN(n)
				delta := problem.energyDelta(bits, i)
				if delta <= 0 || rng.Float64() < math.Exp(-beta*delta) {
					bits[i] = !bits[i]
					energy += delta
				}
			}
		}
		samples = append(samples, Sample{Bits: append([]bool(nil), bits...), Energy: energy})
	}

	sort.SliceStable(samples, func(i, j int) bool { return samples[i].Energy < samples[j].Energy })
	return samples, nil
}

// Samplers lists the accepted backend names for CLI validation.
var Samplers = []string{"exhaustive", "annealing"}

// NewSampler builds a backend by name, defaulting to exhaustive for
// anything unrecognized.
func NewSampler(name string, sweeps int, seed uint64) Sampler {
	if name == "annealing" {
		return NewAnnealingSampler(sweeps, seed)
	}
	return NewExhaustiveSampler()
}
