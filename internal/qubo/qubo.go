// Package qubo maps proof problems onto quadratic unconstrained binary
// optimization energies and samples them, as a black-box alternative route
// to the symbolic engine. The encoding is a refutation encoding: the
// ground states of the energy for axioms ∧ ¬goal are exactly the
// countermodels of the entailment, so a verified ground state at energy
// zero disproves the entailment. Entailment claims are never made from
// sampling alone; they always defer to the semantic evaluator.
package qubo

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/mat"

	"github.com/limaJavier/prover/internal/logic"
)

// Problem is a compiled QUBO instance: minimize x^T Q x + Offset over
// binary vectors x. Proposition variables occupy the first indices,
// auxiliary gadget variables the rest.
type Problem struct {
	Q      *mat.SymDense
	Offset float64

	// VarIndex maps proposition variable names to their bit position.
	VarIndex map[string]int
	// Names holds every bit's name, auxiliaries included.
	Names []string

	Axioms []logic.Expr
	Goal   logic.Expr
}

// NumVars returns the total bit count, auxiliaries included.
func (p *Problem) NumVars() int {
	return len(p.Names)
}

// Energy evaluates x^T Q x + Offset for a candidate bit vector.
func (p *Problem) Energy(bits []bool) float64 {
	x := mat.NewVecDense(len(bits), nil)
	for i, bit := range bits {
		if bit {
			x.SetVec(i, 1)
		}
	}
	return mat.Inner(x, p.Q, x) + p.Offset
}

// energyDelta returns the energy change from flipping bit i. The energy
// is affine in any single bit, so the delta is the bit's diagonal weight
// plus twice its row inner product with the other set bits.
func (p *Problem) energyDelta(bits []bool, i int) float64 {
	coefficient := p.Q.At(i, i)
	for j, bit := range bits {
		if bit && j != i {
			coefficient += 2 * p.Q.At(i, j)
		}
	}
	if bits[i] {
		return -coefficient
	}
	return coefficient
}

// polynomial accumulates a quadratic pseudo-boolean expression while the
// encoder walks formulas, before compilation into the symmetric matrix.
type polynomial struct {
	constant float64
	linear   map[int]float64
	quad     map[[2]int]float64
}

func newPolynomial() *polynomial {
	return &polynomial{
		linear: map[int]float64{},
		quad:   map[[2]int]float64{},
	}
}

func (p *polynomial) addConstant(c float64) {
	p.constant += c
}

func (p *polynomial) addLinear(i int, c float64) {
	p.linear[i] += c
}

func (p *polynomial) addQuad(i, j int, c float64) {
	if i == j {
		// x² = x on binary variables.
		p.addLinear(i, c)
		return
	}
	if i > j {
		i, j = j, i
	}
	p.quad[[2]int{i, j}] += c
}

// affine is a degree-one expression c0 + c1·x over a single bit; the
// gadget algebra never needs more. index < 0 marks a pure constant.
type affine struct {
	constant    float64
	coefficient float64
	index       int
}

func affineVar(i int) affine {
	return affine{coefficient: 1, index: i}
}

func affineNegVar(i int) affine {
	return affine{constant: 1, coefficient: -1, index: i}
}

// addProduct accumulates weight·a·b into the polynomial.
func (p *polynomial) addProduct(a, b affine, weight float64) {
	p.addConstant(weight * a.constant * b.constant)
	if a.index >= 0 {
		p.addLinear(a.index, weight*a.coefficient*b.constant)
	}
	if b.index >= 0 {
		p.addLinear(b.index, weight*b.coefficient*a.constant)
	}
	if a.index >= 0 && b.index >= 0 {
		p.addQuad(a.index, b.index, weight*a.coefficient*b.coefficient)
	}
}

// addAffine accumulates weight·a into the polynomial.
func (p *polynomial) addAffine(a affine, weight float64) {
	p.addConstant(weight * a.constant)
	if a.index >= 0 {
		p.addLinear(a.index, weight*a.coefficient)
	}
}

// compile freezes the polynomial into a symmetric matrix, splitting each
// cross term evenly across the two mirrored entries.
func (p *polynomial) compile(n int) (*mat.SymDense, float64) {
	q := mat.NewSymDense(n, nil)
	for i, c := range p.linear {
		q.SetSym(i, i, q.At(i, i)+c)
	}
	for pair, c := range p.quad {
		q.SetSym(pair[0], pair[1], q.At(pair[0], pair[1])+c/2)
	}
	return q, p.constant
}

// String renders the problem compactly for logs.
func (p *Problem) String() string {
	names := make([]string, 0, len(p.VarIndex))
	for name := range p.VarIndex {
		names = append(names, name)
	}
	sort.Strings(names)
	return fmt.Sprintf("qubo{vars: %v, bits: %d, offset: %g}", names, p.NumVars(), p.Offset)
}
