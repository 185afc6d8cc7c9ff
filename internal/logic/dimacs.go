package logic

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
)

// ToDIMACS renders the CNF in the DIMACS-CNF format consumed by external
// SAT solvers such as kissat or cadical. Variables are numbered 1..n in
// sorted name order; the returned slice maps DIMACS variable i back to
// name slice[i-1]. The mapping is also emitted as comment lines so the
// file stays self-describing.
func (f CNF) ToDIMACS() (string, []string) {
	names := f.Vars()
	index := lo.SliceToMap(lo.Range(len(names)), func(i int) (string, int) { return names[i], i + 1 })

	var builder strings.Builder
	for _, name := range names {
		fmt.Fprintf(&builder, "c %d %s\n", index[name], name)
	}
	fmt.Fprintf(&builder, "p cnf %d %d\n", len(names), len(f))

	for _, clause := range f.Clauses() {
		for _, literal := range clause.Literals() {
			variable := index[literal.Var]
			if !literal.Positive {
				variable = -variable
			}
			fmt.Fprintf(&builder, "%d ", variable)
		}
		builder.WriteString("0\n")
	}
	return builder.String(), names
}

// RefutationDIMACS renders premises ∧ ¬conclusion as a DIMACS-CNF
// problem: an external solver answering unsatisfiable (conventionally
// exit code 20) confirms the entailment, and a satisfying assignment is
// a counter-model.
func RefutationDIMACS(premises []Expr, conclusion Expr) (string, []string) {
	cnf := ToCNFAll(append(premises, Negate(conclusion))...)
	return cnf.ToDIMACS()
}
