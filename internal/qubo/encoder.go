package qubo

import (
	"fmt"

	"github.com/limaJavier/prover/internal/logic"
)

// Penalty weights. The gadget constraints are exact, so any positive
// weights separate satisfying states at energy zero from everything else;
// the asserted roots get the heavier weight so a violated axiom always
// costs more than a violated structural constraint.
const (
	RootPenalty      = 100.0
	StructurePenalty = 20.0
)

// Encoder compiles formulas into a QUBO energy. One encoder builds one
// Problem; it is not reused.
type Encoder struct {
	poly     *polynomial
	varIndex map[string]int
	names    []string
}

func NewEncoder() *Encoder {
	return &Encoder{
		poly:     newPolynomial(),
		varIndex: map[string]int{},
	}
}

// EncodeRefutation compiles axioms ∧ ¬goal. The resulting energy is zero
// exactly on bit vectors whose proposition part is a countermodel of the
// entailment axioms ⊢ goal.
func (enc *Encoder) EncodeRefutation(axioms []logic.Expr, goal logic.Expr) (*Problem, error) {
	asserted := append(append([]logic.Expr{}, axioms...), logic.Negate(goal))
	for _, formula := range asserted {
		// Gadgets cover conjunction, disjunction and variable-level
		// negation, so every formula is normalized first.
		root, err := enc.encodeNode(logic.ToNNF(formula))
		if err != nil {
			return nil, err
		}
		enc.assertTrue(root)
	}

	q, offset := enc.poly.compile(len(enc.names))
	return &Problem{
		Q:        q,
		Offset:   offset,
		VarIndex: enc.varIndex,
		Names:    enc.names,
		Axioms:   axioms,
		Goal:     goal,
	}, nil
}

// assertTrue pins an affine node value to 1 with the penalty (1 - r)².
func (enc *Encoder) assertTrue(root affine) {
	complement := affine{
		constant:    1 - root.constant,
		coefficient: -root.coefficient,
		index:       root.index,
	}
	enc.poly.addProduct(complement, complement, RootPenalty)
}

func (enc *Encoder) encodeNode(e logic.Expr) (affine, error) {
	switch node := e.(type) {
	case logic.Var:
		return affineVar(enc.bit(node.Name)), nil
	case logic.Not:
		// NNF guarantees the operand is a variable.
		if v, ok := node.Operand.(logic.Var); ok {
			return affineNegVar(enc.bit(v.Name)), nil
		}
		return affine{}, fmt.Errorf("negation of a non-variable survived NNF: %v", e)
	case logic.And:
		return enc.encodeAnd(node)
	case logic.Or:
		return enc.encodeOr(node)
	}
	return affine{}, fmt.Errorf("connective survived NNF: %v", e)
}

// encodeAnd introduces an auxiliary bit a with the exact AND gadget
// penalty  L·R - 2a(L + R) + 3a,  which is zero iff a = L·R.
func (enc *Encoder) encodeAnd(node logic.And) (affine, error) {
	left, err := enc.encodeNode(node.Left)
	if err != nil {
		return affine{}, err
	}
	right, err := enc.encodeNode(node.Right)
	if err != nil {
		return affine{}, err
	}

	aux := affineVar(enc.auxBit("and"))
	enc.poly.addProduct(left, right, StructurePenalty)
	enc.poly.addProduct(aux, left, -2*StructurePenalty)
	enc.poly.addProduct(aux, right, -2*StructurePenalty)
	enc.poly.addAffine(aux, 3*StructurePenalty)
	return aux, nil
}

// encodeOr introduces an auxiliary bit a with the exact OR gadget penalty
// L·R + (L + R)(1 - 2a) + a,  which is zero iff a = L ∨ R.
func (enc *Encoder) encodeOr(node logic.Or) (affine, error) {
	left, err := enc.encodeNode(node.Left)
	if err != nil {
		return affine{}, err
	}
	right, err := enc.encodeNode(node.Right)
	if err != nil {
		return affine{}, err
	}

	aux := affineVar(enc.auxBit("or"))
	enc.poly.addProduct(left, right, StructurePenalty)
	enc.poly.addAffine(left, StructurePenalty)
	enc.poly.addAffine(right, StructurePenalty)
	enc.poly.addProduct(left, aux, -2*StructurePenalty)
	enc.poly.addProduct(right, aux, -2*StructurePenalty)
	enc.poly.addAffine(aux, StructurePenalty)
	return aux, nil
}

// bit returns the bit index of a proposition variable, allocating on
// first sight.
func (enc *Encoder) bit(name string) int {
	if i, ok := enc.varIndex[name]; ok {
		return i
	}
	i := len(enc.names)
	enc.varIndex[name] = i
	enc.names = append(enc.names, name)
	return i
}

// auxBit allocates a fresh auxiliary bit.
func (enc *Encoder) auxBit(kind string) int {
	i := len(enc.names)
	enc.names = append(enc.names, fmt.Sprintf("_%s%d", kind, i))
	return i
}
