package logic

import (
	"sort"
	"strings"
)

// MaxEnumVars caps the number of distinct variables the exhaustive checks
// accept. Enumeration is 2^n, so anything past this bound would hang the
// caller rather than answer; such calls fail fast with ResourceLimitError.
const MaxEnumVars = 20

// Assignment maps variable names to truth values. The evaluator treats it
// as read-only.
type Assignment map[string]bool

func (a Assignment) String() string {
	names := make([]string, 0, len(a))
	for name := range a {
		names = append(names, name)
	}
	// Deterministic order for logs and test failures.
	sort.Strings(names)
	var builder strings.Builder
	builder.WriteByte('{')
	for i, name := range names {
		if i > 0 {
			builder.WriteString(", ")
		}
		builder.WriteString(name)
		builder.WriteByte('=')
		if a[name] {
			builder.WriteByte('1')
		} else {
			builder.WriteByte('0')
		}
	}
	builder.WriteByte('}')
	return builder.String()
}

// Evaluate computes the truth value of the formula under the assignment.
// Every variable of the formula must be bound or the call fails with
// UndefinedVariableError.
func Evaluate(e Expr, assignment Assignment) (bool, error) {
	switch node := e.(type) {
	case Var:
		value, ok := assignment[node.Name]
		if !ok {
			return false, &UndefinedVariableError{Name: node.Name}
		}
		return value, nil
	case Not:
		value, err := Evaluate(node.Operand, assignment)
		return !value, err
	case And:
		left, err := Evaluate(node.Left, assignment)
		if err != nil {
			return false, err
		}
		right, err := Evaluate(node.Right, assignment)
		return left && right, err
	case Or:
		left, err := Evaluate(node.Left, assignment)
		if err != nil {
			return false, err
		}
		right, err := Evaluate(node.Right, assignment)
		return left || right, err
	case Imply:
		left, err := Evaluate(node.Left, assignment)
		if err != nil {
			return false, err
		}
		right, err := Evaluate(node.Right, assignment)
		return !left || right, err
	case Iff:
		left, err := Evaluate(node.Left, assignment)
		if err != nil {
			return false, err
		}
		right, err := Evaluate(node.Right, assignment)
		return left == right, err
	}
	return false, &ParseError{Msg: "unknown expression type"}
}

// forEachAssignment enumerates every assignment over the variables and
// calls visit until it returns false. Variables beyond MaxEnumVars are
// rejected up front.
func forEachAssignment(variables []string, visit func(Assignment) bool) error {
	if len(variables) > MaxEnumVars {
		return &ResourceLimitError{
			What:  "truth-table enumeration over variables",
			Limit: MaxEnumVars,
			Got:   len(variables),
		}
	}
	total := 1 << len(variables)
	for mask := 0; mask < total; mask++ {
		assignment := make(Assignment, len(variables))
		for i, name := range variables {
			assignment[name] = mask&(1<<i) != 0
		}
		if !visit(assignment) {
			return nil
		}
	}
	return nil
}

// IsTautology reports whether the formula is true under every assignment.
func IsTautology(e Expr) (bool, error) {
	tautology := true
	err := forEachAssignment(Vars(e), func(assignment Assignment) bool {
		value, _ := Evaluate(e, assignment)
		tautology = value
		return tautology
	})
	return tautology && err == nil, err
}

// IsSatisfiable reports whether some assignment makes the formula true.
func IsSatisfiable(e Expr) (bool, error) {
	model, err := FindModel(e)
	return model != nil, err
}

// IsContradiction reports whether the formula is false under every assignment.
func IsContradiction(e Expr) (bool, error) {
	satisfiable, err := IsSatisfiable(e)
	return !satisfiable && err == nil, err
}

// FindModel returns an assignment satisfying the formula, or nil when the
// formula is unsatisfiable.
func FindModel(e Expr) (Assignment, error) {
	var model Assignment
	err := forEachAssignment(Vars(e), func(assignment Assignment) bool {
		value, _ := Evaluate(e, assignment)
		if value {
			model = assignment
			return false
		}
		return true
	})
	if err != nil {
		return nil, err
	}
	return model, nil
}

// FindCounterModel returns an assignment falsifying the formula, or nil
// when the formula is a tautology.
func FindCounterModel(e Expr) (Assignment, error) {
	var counter Assignment
	err := forEachAssignment(Vars(e), func(assignment Assignment) bool {
		value, _ := Evaluate(e, assignment)
		if !value {
			counter = assignment
			return false
		}
		return true
	})
	if err != nil {
		return nil, err
	}
	return counter, nil
}

// IsEquivalent reports whether the two formulas agree under every
// assignment over the union of their variables.
func IsEquivalent(a, b Expr) (bool, error) {
	equivalent := true
	err := forEachAssignment(VarsAll(a, b), func(assignment Assignment) bool {
		left, _ := Evaluate(a, assignment)
		right, _ := Evaluate(b, assignment)
		equivalent = left == right
		return equivalent
	})
	return equivalent && err == nil, err
}

// Entails reports whether the premises semantically entail the conclusion:
// every assignment satisfying all premises also satisfies the conclusion.
// With no premises this degenerates to IsTautology of the conclusion.
func Entails(premises []Expr, conclusion Expr) (bool, error) {
	counter, err := FindEntailmentCounterModel(premises, conclusion)
	if err != nil {
		return false, err
	}
	return counter == nil, nil
}

// FindEntailmentCounterModel returns an assignment under which all
// premises hold but the conclusion fails, or nil when the entailment holds.
func FindEntailmentCounterModel(premises []Expr, conclusion Expr) (Assignment, error) {
	variables := VarsAll(append(premises, conclusion)...)
	var counter Assignment
	err := forEachAssignment(variables, func(assignment Assignment) bool {
		for _, premise := range premises {
			holds, _ := Evaluate(premise, assignment)
			if !holds {
				return true
			}
		}
		holds, _ := Evaluate(conclusion, assignment)
		if !holds {
			counter = assignment
			return false
		}
		return true
	})
	if err != nil {
		return nil, err
	}
	return counter, nil
}

// TruthTableRow pairs an assignment with the truth value of a formula.
type TruthTableRow struct {
	Assignment Assignment
	Value      bool
}

// TruthTable enumerates every assignment over the formula's variables with
// the resulting truth value, in ascending binary order.
func TruthTable(e Expr) ([]TruthTableRow, error) {
	var rows []TruthTableRow
	err := forEachAssignment(Vars(e), func(assignment Assignment) bool {
		value, _ := Evaluate(e, assignment)
		rows = append(rows, TruthTableRow{Assignment: assignment, Value: value})
		return true
	})
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// FormatTruthTable renders the truth table of a formula with one column
// per variable plus a result column.
func FormatTruthTable(e Expr) (string, error) {
	rows, err := TruthTable(e)
	if err != nil {
		return "", err
	}
	variables := Vars(e)

	var builder strings.Builder
	header := strings.Join(variables, " | ") + " | " + e.String()
	builder.WriteString(header)
	builder.WriteByte('\n')
	builder.WriteString(strings.Repeat("-", len(header)))
	for _, row := range rows {
		builder.WriteByte('\n')
		for _, name := range variables {
			if row.Assignment[name] {
				builder.WriteString("1 | ")
			} else {
				builder.WriteString("0 | ")
			}
		}
		if row.Value {
			builder.WriteByte('1')
		} else {
			builder.WriteByte('0')
		}
	}
	return builder.String(), nil
}
