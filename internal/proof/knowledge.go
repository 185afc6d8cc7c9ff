package proof

import (
	"sort"

	"github.com/samber/lo"

	"github.com/limaJavier/prover/internal/logic"
)

// KnowledgeSet is the set of formulas currently known true, keyed by the
// formula's canonical encoding so commuted conjunctions and disjunctions
// collapse to one member.
type KnowledgeSet map[string]logic.Expr

func NewKnowledgeSet(exprs ...logic.Expr) KnowledgeSet {
	ks := make(KnowledgeSet, len(exprs))
	for _, e := range exprs {
		ks.Add(e)
	}
	return ks
}

func (ks KnowledgeSet) Add(e logic.Expr) {
	ks[e.Key()] = e
}

func (ks KnowledgeSet) Remove(e logic.Expr) {
	delete(ks, e.Key())
}

func (ks KnowledgeSet) Contains(e logic.Expr) bool {
	_, ok := ks[e.Key()]
	return ok
}

// Formulas returns the members in canonical order, so rule firing and
// search are deterministic across runs.
func (ks KnowledgeSet) Formulas() []logic.Expr {
	keys := lo.Keys(ks)
	sort.Strings(keys)
	return lo.Map(keys, func(key string, _ int) logic.Expr { return ks[key] })
}

func (ks KnowledgeSet) Clone() KnowledgeSet {
	clone := make(KnowledgeSet, len(ks))
	for key, e := range ks {
		clone[key] = e
	}
	return clone
}
