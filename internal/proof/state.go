package proof

import (
	"fmt"
	"strings"

	"github.com/samber/lo"

	"github.com/limaJavier/prover/internal/logic"
)

// Status is the lifecycle tag of a proof attempt.
type Status int

const (
	StatusInProgress Status = iota
	StatusSuccess
	StatusFailed
	// StatusTimeout is reserved for callers that impose wall-clock bounds
	// around the engine; the engine itself only spends step budgets.
	StatusTimeout
)

func (s Status) String() string {
	switch s {
	case StatusInProgress:
		return "in_progress"
	case StatusSuccess:
		return "success"
	case StatusFailed:
		return "failed"
	case StatusTimeout:
		return "timeout"
	}
	return "unknown"
}

// ProofStep is one justified line of the proof. Steps are append-only:
// once recorded they are never rewritten, even when the assumption they
// belong to is later discharged.
type ProofStep struct {
	Number          int
	Formula         logic.Expr
	RuleName        string
	PremiseSteps    []int
	Justification   string
	AssumptionLevel int
}

func (s ProofStep) String() string {
	premises := "-"
	if len(s.PremiseSteps) > 0 {
		premises = strings.Join(lo.Map(s.PremiseSteps, func(n int, _ int) string { return fmt.Sprint(n) }), ", ")
	}
	indent := strings.Repeat("  ", s.AssumptionLevel)
	return fmt.Sprintf("%s%d. %v  [%s, %s]", indent, s.Number, s.Formula, s.RuleName, premises)
}

// Assumption is a formula held hypothetically for a conditional proof or
// reductio, tracked on a stack until discharged.
type Assumption struct {
	Formula    logic.Expr
	StepNumber int
	Level      int
	Target     logic.Expr
}

// ProofState owns one proof attempt: the frozen axioms, the goal, the
// ordered step list, the live knowledge set and the assumption stack. A
// state belongs to exactly one search invocation and is never shared.
//
// The knowledge set is a derived view: axioms plus derived conclusions
// minus discharged assumptions. Step records are the authoritative audit
// trail.
type ProofState struct {
	Axioms      []logic.Expr
	Goal        logic.Expr
	Steps       []ProofStep
	Knowledge   KnowledgeSet
	Assumptions []Assumption
	Status      Status
}

// NewProofState builds the initial state for (axioms, goal): every axiom
// becomes a numbered step with rule "axiom" and seeds the knowledge set.
// A goal already among the axioms makes the state successful immediately.
func NewProofState(axioms []logic.Expr, goal logic.Expr) *ProofState {
	state := &ProofState{
		Axioms:    axioms,
		Goal:      goal,
		Knowledge: NewKnowledgeSet(),
		Status:    StatusInProgress,
	}
	for i, axiom := range axioms {
		state.Steps = append(state.Steps, ProofStep{
			Number:        i + 1,
			Formula:       axiom,
			RuleName:      "axiom",
			Justification: fmt.Sprintf("axiom %d", i+1),
		})
		state.Knowledge.Add(axiom)
	}
	if state.Knowledge.Contains(goal) {
		state.Status = StatusSuccess
	}
	return state
}

// CurrentStepNumber returns the number of the latest step.
func (s *ProofState) CurrentStepNumber() int {
	return len(s.Steps)
}

// AssumptionLevel returns the current nesting depth of open assumptions.
func (s *ProofState) AssumptionLevel() int {
	return len(s.Assumptions)
}

// IsComplete reports whether the goal has been derived.
func (s *ProofState) IsComplete() bool {
	return s.Knowledge.Contains(s.Goal)
}

// HasContradiction reports whether the knowledge set holds both a formula
// and its negation.
func (s *ProofState) HasContradiction() bool {
	for _, formula := range s.Knowledge.Formulas() {
		if negation, ok := formula.(logic.Not); ok && s.Knowledge.Contains(negation.Operand) {
			return true
		}
	}
	return false
}

// AddStep appends a derived formula to the proof and the knowledge set.
// Deriving the goal flips the state to success.
func (s *ProofState) AddStep(formula logic.Expr, ruleName string, premiseSteps []int, justification string) ProofStep {
	step := ProofStep{
		Number:          s.CurrentStepNumber() + 1,
		Formula:         formula,
		RuleName:        ruleName,
		PremiseSteps:    premiseSteps,
		Justification:   justification,
		AssumptionLevel: s.AssumptionLevel(),
	}
	s.Steps = append(s.Steps, step)
	s.Knowledge.Add(formula)

	if s.Knowledge.Contains(s.Goal) {
		s.Status = StatusSuccess
	}
	return step
}

// IntroduceAssumption opens a hypothetical scope holding the formula,
// optionally aimed at a conditional-proof target.
func (s *ProofState) IntroduceAssumption(formula logic.Expr, target logic.Expr) ProofStep {
	s.Assumptions = append(s.Assumptions, Assumption{
		Formula:    formula,
		StepNumber: s.CurrentStepNumber() + 1,
		Level:      s.AssumptionLevel() + 1,
		Target:     target,
	})
	step := ProofStep{
		Number:          s.CurrentStepNumber() + 1,
		Formula:         formula,
		RuleName:        "assumption",
		Justification:   "assumption",
		AssumptionLevel: s.AssumptionLevel(),
	}
	s.Steps = append(s.Steps, step)
	s.Knowledge.Add(formula)
	return step
}

// DischargeAssumption closes the innermost assumption scope. The
// assumption's formula is retracted from the live knowledge set but its
// step record stays for audit.
func (s *ProofState) DischargeAssumption() (Assumption, bool) {
	if len(s.Assumptions) == 0 {
		return Assumption{}, false
	}
	last := s.Assumptions[len(s.Assumptions)-1]
	s.Assumptions = s.Assumptions[:len(s.Assumptions)-1]
	s.Knowledge.Remove(last.Formula)
	return last, true
}

// ConditionalProof closes a conditional argument: having assumed the
// antecedent and derived the conclusion under it, discharge the assumption
// and record antecedent → conclusion.
func (s *ProofState) ConditionalProof(assumption, conclusion logic.Expr) (ProofStep, bool) {
	if !s.Knowledge.Contains(conclusion) {
		return ProofStep{}, false
	}

	assumptionStep, conclusionStep := 0, 0
	for _, step := range s.Steps {
		if step.RuleName == "assumption" && logic.Equal(step.Formula, assumption) {
			assumptionStep = step.Number
		}
		if logic.Equal(step.Formula, conclusion) {
			conclusionStep = step.Number
		}
	}
	if assumptionStep == 0 || conclusionStep == 0 {
		return ProofStep{}, false
	}

	s.DischargeAssumption()
	implication := logic.Imply{Left: assumption, Right: conclusion}
	step := s.AddStep(
		implication,
		"imply_intro",
		[]int{assumptionStep, conclusionStep},
		fmt.Sprintf("conditional proof: assuming %v yields %v, hence %v", assumption, conclusion, implication),
	)
	return step, true
}

// StepByFormula returns the most recent step deriving the formula.
func (s *ProofState) StepByFormula(formula logic.Expr) (ProofStep, bool) {
	for i := len(s.Steps) - 1; i >= 0; i-- {
		if logic.Equal(s.Steps[i].Formula, formula) {
			return s.Steps[i], true
		}
	}
	return ProofStep{}, false
}

// Clone copies the state so a speculative branch cannot disturb the
// original.
func (s *ProofState) Clone() *ProofState {
	return &ProofState{
		Axioms:      s.Axioms,
		Goal:        s.Goal,
		Steps:       append([]ProofStep(nil), s.Steps...),
		Knowledge:   s.Knowledge.Clone(),
		Assumptions: append([]Assumption(nil), s.Assumptions...),
		Status:      s.Status,
	}
}

// FormatProof renders the proof: axioms first, every step with its rule
// and premise references, and a final status line. This layout is the
// contract the CLI and the tests consume; a failed proof still renders a
// coherent trace of what was tried.
func (s *ProofState) FormatProof() string {
	divider := strings.Repeat("=", 60)
	lines := []string{divider, "Proof", divider, "", "Axioms:"}
	for _, axiom := range s.Axioms {
		lines = append(lines, "  "+axiom.String())
	}
	lines = append(lines, "", "Goal: "+s.Goal.String(), "", "Steps:", strings.Repeat("-", 60))
	for _, step := range s.Steps {
		lines = append(lines, step.String())
	}
	lines = append(lines, strings.Repeat("-", 60), "", "Status: "+s.Status.String())
	switch s.Status {
	case StatusSuccess:
		lines = append(lines, "proof complete")
	case StatusFailed:
		lines = append(lines, "proof failed")
	}
	lines = append(lines, divider)
	return strings.Join(lines, "\n")
}

// Summary condenses the attempt for logs and benchmark output.
type Summary struct {
	AxiomCount int
	StepCount  int
	Goal       string
	Status     string
	RulesUsed  []string
	Complete   bool
}

func (s *ProofState) Summarize() Summary {
	return Summary{
		AxiomCount: len(s.Axioms),
		StepCount:  len(s.Steps),
		Goal:       s.Goal.String(),
		Status:     s.Status.String(),
		RulesUsed:  lo.Uniq(lo.Map(s.Steps, func(step ProofStep, _ int) string { return step.RuleName })),
		Complete:   s.IsComplete(),
	}
}
