package proof

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/samber/lo"

	"github.com/limaJavier/prover/internal/logic"
)

// Strategy selects how the searcher hunts for a proof.
type Strategy string

const (
	StrategyForward       Strategy = "forward"
	StrategyBackward      Strategy = "backward"
	StrategyBidirectional Strategy = "bidirectional"
)

// Strategies lists the accepted strategy names for CLI validation.
var Strategies = []Strategy{StrategyForward, StrategyBackward, StrategyBidirectional}

// noProgressThreshold stops forward chaining after this many consecutive
// iterations that add nothing, instead of spinning until the step budget.
const noProgressThreshold = 3

// SearchConfig bounds and tunes a proof search. The zero value is not
// usable; start from DefaultSearchConfig.
type SearchConfig struct {
	Strategy     Strategy
	MaxSteps     int
	MaxDepth     int
	MaxBranching int
	// UseSemanticCheck short-circuits the search with a truth-table
	// entailment check first: when the axioms do not entail the goal no
	// amount of searching will succeed. Purely an optimization; the
	// search reports the same failure without it.
	UseSemanticCheck bool
	// RulePriority scores rules for forward-chaining candidate ranking;
	// unlisted rules weigh 1.0.
	RulePriority  map[string]float64
	ExcludedRules map[string]struct{}
}

func DefaultSearchConfig() SearchConfig {
	return SearchConfig{
		Strategy:         StrategyForward,
		MaxSteps:         100,
		MaxDepth:         20,
		MaxBranching:     10,
		UseSemanticCheck: true,
	}
}

func (c SearchConfig) rulePriority(name string) float64 {
	if priority, ok := c.RulePriority[name]; ok {
		return priority
	}
	return 1.0
}

// SearchResult is the outcome of one proof attempt. Success false is a
// normal answer, not an error: the state still carries the trace of what
// was tried.
type SearchResult struct {
	Success       bool
	State         *ProofState
	StepsExplored int
	Elapsed       time.Duration
	Notes         []string
}

func (r SearchResult) FormatResult() string {
	lines := []string{
		strings.Repeat("=", 60),
		"Search result",
		strings.Repeat("=", 60),
		fmt.Sprintf("success: %v", r.Success),
		fmt.Sprintf("steps explored: %d", r.StepsExplored),
		fmt.Sprintf("elapsed: %v", r.Elapsed),
	}
	lines = append(lines, r.Notes...)
	lines = append(lines, "", r.State.FormatProof())
	return strings.Join(lines, "\n")
}

// Prover searches for a natural-deduction proof of a goal from axioms.
// Implementations are single-threaded; each Prove call owns a fresh
// ProofState and may be invoked sequentially any number of times.
type Prover interface {
	Prove(axioms []logic.Expr, goal logic.Expr) SearchResult
}

func NewProver(config SearchConfig) Prover {
	return &searcher{
		config:   config,
		registry: NewRegistry(),
	}
}

type searcher struct {
	config        SearchConfig
	registry      []Rule
	stepsExplored int
}

func (s *searcher) Prove(axioms []logic.Expr, goal logic.Expr) SearchResult {
	start := time.Now()
	s.stepsExplored = 0

	state := NewProofState(axioms, goal)

	// The goal may already be an axiom.
	if state.Status == StatusSuccess {
		return SearchResult{Success: true, State: state, Elapsed: time.Since(start)}
	}

	if s.config.UseSemanticCheck {
		entailed, err := logic.Entails(axioms, goal)
		// A resource-limit error just disables the shortcut; the search
		// itself does not enumerate assignments.
		if err == nil && !entailed {
			state.Status = StatusFailed
			return SearchResult{
				Success: false,
				State:   state,
				Elapsed: time.Since(start),
				Notes:   []string{"semantic check: axioms do not entail the goal"},
			}
		}
	}

	var success bool
	switch s.config.Strategy {
	case StrategyBackward:
		success = s.backwardSearch(state, goal)
	case StrategyBidirectional:
		success = s.bidirectionalSearch(state, goal)
	default:
		success = s.forwardSearch(state, goal)
	}

	if success {
		state.Status = StatusSuccess
	} else if state.Status == StatusInProgress {
		state.Status = StatusFailed
	}

	return SearchResult{
		Success:       success,
		State:         state,
		StepsExplored: s.stepsExplored,
		Elapsed:       time.Since(start),
	}
}

// forwardSearch grows the knowledge set from the axioms until the goal
// appears or the budget runs out. Knowledge only ever grows, so the loop
// is bounded by MaxSteps and the no-progress cutoff.
func (s *searcher) forwardSearch(state *ProofState, goal logic.Expr) bool {
	noProgress := 0

	for range s.config.MaxSteps {
		s.stepsExplored++

		if state.Knowledge.Contains(goal) {
			return true
		}

		// Two passes: goal unconstrained to collect every derivable fact,
		// then goal-directed so the introduction rules that stay silent
		// without a target (or-intro, and-intro toward a conjunction) get
		// their shot. Duplicates fall out through the knowledge set below.
		// and_intro sits the first pass out: conjunctions nobody asked for
		// only pad the trace, and the goal-directed pass reaches any
		// conjunctive goal.
		results := ApplyAll(s.registry, state.Knowledge, nil, excludeAlso(s.config.ExcludedRules, "and_intro"))
		results = append(results, ApplyAll(s.registry, state.Knowledge, goal, s.config.ExcludedRules)...)
		if len(results) == 0 {
			noProgress++
			if noProgress > noProgressThreshold {
				break
			}
			continue
		}

		sort.SliceStable(results, func(i, j int) bool {
			return s.score(results[i], goal) > s.score(results[j], goal)
		})
		if len(results) > s.config.MaxBranching {
			results = results[:s.config.MaxBranching]
		}

		applied := false
		for _, result := range results {
			if state.Knowledge.Contains(result.Conclusion) {
				continue
			}
			state.AddStep(result.Conclusion, result.RuleName, s.premiseSteps(state, result), result.Description)
			applied = true

			if logic.Equal(result.Conclusion, goal) {
				return true
			}
		}

		if applied {
			noProgress = 0
		} else {
			noProgress++
			if noProgress > noProgressThreshold {
				break
			}
		}
	}
	return false
}

// excludeAlso extends the caller's exclusion set with further rule names
// without mutating it.
func excludeAlso(excluded map[string]struct{}, names ...string) map[string]struct{} {
	merged := make(map[string]struct{}, len(excluded)+len(names))
	for name := range excluded {
		merged[name] = struct{}{}
	}
	for _, name := range names {
		merged[name] = struct{}{}
	}
	return merged
}

func (s *searcher) score(result RuleResult, goal logic.Expr) float64 {
	score := s.config.rulePriority(result.RuleName)
	if logic.Equal(result.Conclusion, goal) {
		score += 10
	}
	return score
}

func (s *searcher) premiseSteps(state *ProofState, result RuleResult) []int {
	return lo.FilterMap(result.Premises, func(premise logic.Expr, _ int) (int, bool) {
		step, ok := state.StepByFormula(premise)
		return step.Number, ok
	})
}

// backwardSearch reduces the goal to sub-goals: close the goal in one step
// when some rule already fires, otherwise regress it through a rule shape
// and prove the missing premises recursively. The visited set breaks
// cycles and MaxDepth bounds the recursion.
func (s *searcher) backwardSearch(state *ProofState, goal logic.Expr) bool {
	return s.backwardStep(state, goal, NewKnowledgeSet(), 0)
}

func (s *searcher) backwardStep(state *ProofState, goal logic.Expr, visited KnowledgeSet, depth int) bool {
	s.stepsExplored++

	if depth > s.config.MaxDepth || visited.Contains(goal) {
		return false
	}
	visited.Add(goal)

	if state.Knowledge.Contains(goal) {
		return true
	}

	// A rule whose premises are all known closes the goal immediately.
	for _, rule := range s.registry {
		if _, skip := s.config.ExcludedRules[rule.Name()]; skip {
			continue
		}
		for _, result := range rule.Apply(state.Knowledge, goal) {
			if logic.Equal(result.Conclusion, goal) {
				state.AddStep(goal, result.RuleName, s.premiseSteps(state, result), result.Description)
				return true
			}
		}
	}

	for _, candidate := range s.regressions(state.Knowledge, goal) {
		proven := true
		for _, subGoal := range candidate.SubGoals {
			if !s.backwardStep(state, subGoal, visited, depth+1) {
				proven = false
				break
			}
		}
		if !proven {
			continue
		}
		steps := lo.FilterMap(candidate.Premises, func(premise logic.Expr, _ int) (int, bool) {
			step, ok := state.StepByFormula(premise)
			return step.Number, ok
		})
		state.AddStep(goal, candidate.RuleName, steps, candidate.Description)
		return true
	}
	return false
}

// regression is one backward-chaining candidate: proving every sub-goal
// licenses concluding the goal by the named rule. Premises is the full
// premise list for the step record, sub-goals the part still to prove.
type regression struct {
	RuleName    string
	SubGoals    []logic.Expr
	Premises    []logic.Expr
	Description string
}

// regressions enumerates the ways the goal could be concluded once some
// missing premise is derived: the antecedent of a known implication ending
// in the goal, the refuting negation for a known disjunction holding the
// goal, the other side of a known biconditional, or the parts the goal
// decomposes into. Resolution is not regressed; its intermediate clauses
// rarely match a goal shape, and the forward strategies carry it.
func (s *searcher) regressions(kb KnowledgeSet, goal logic.Expr) []regression {
	excluded := func(name string) bool {
		_, skip := s.config.ExcludedRules[name]
		return skip
	}

	var candidates []regression
	for _, formula := range kb.Formulas() {
		switch known := formula.(type) {
		case logic.Imply:
			if !excluded("modus_ponens") && logic.Equal(known.Right, goal) {
				candidates = append(candidates, regression{
					RuleName:    "modus_ponens",
					SubGoals:    []logic.Expr{known.Left},
					Premises:    []logic.Expr{known.Left, formula},
					Description: fmt.Sprintf("from %v and %v, by MP, %v", known.Left, formula, goal),
				})
			}
			if !excluded("modus_tollens") && logic.Equal(logic.Negate(known.Left), goal) {
				negConsequent := logic.Negate(known.Right)
				candidates = append(candidates, regression{
					RuleName:    "modus_tollens",
					SubGoals:    []logic.Expr{negConsequent},
					Premises:    []logic.Expr{formula, negConsequent},
					Description: fmt.Sprintf("from %v and %v, by MT, %v", formula, negConsequent, goal),
				})
			}
		case logic.Or:
			if excluded("or_elim") {
				continue
			}
			if logic.Equal(known.Left, goal) {
				negation := logic.Negate(known.Right)
				candidates = append(candidates, regression{
					RuleName:    "or_elim",
					SubGoals:    []logic.Expr{negation},
					Premises:    []logic.Expr{formula, negation},
					Description: fmt.Sprintf("from %v and %v, %v", formula, negation, goal),
				})
			}
			if logic.Equal(known.Right, goal) {
				negation := logic.Negate(known.Left)
				candidates = append(candidates, regression{
					RuleName:    "or_elim",
					SubGoals:    []logic.Expr{negation},
					Premises:    []logic.Expr{formula, negation},
					Description: fmt.Sprintf("from %v and %v, %v", formula, negation, goal),
				})
			}
		case logic.Iff:
			if excluded("iff_elim") {
				continue
			}
			if logic.Equal(known.Right, goal) {
				candidates = append(candidates, regression{
					RuleName:    "iff_elim",
					SubGoals:    []logic.Expr{known.Left},
					Premises:    []logic.Expr{formula, known.Left},
					Description: fmt.Sprintf("from %v and %v, %v", formula, known.Left, goal),
				})
			}
			if logic.Equal(known.Left, goal) {
				candidates = append(candidates, regression{
					RuleName:    "iff_elim",
					SubGoals:    []logic.Expr{known.Right},
					Premises:    []logic.Expr{formula, known.Right},
					Description: fmt.Sprintf("from %v and %v, %v", formula, known.Right, goal),
				})
			}
		}
	}

	switch node := goal.(type) {
	case logic.And:
		if !excluded("and_intro") {
			candidates = append(candidates, regression{
				RuleName:    "and_intro",
				SubGoals:    []logic.Expr{node.Left, node.Right},
				Premises:    []logic.Expr{node.Left, node.Right},
				Description: fmt.Sprintf("from %v and %v, %v", node.Left, node.Right, goal),
			})
		}
	case logic.Or:
		if !excluded("or_intro_left") {
			candidates = append(candidates, regression{
				RuleName:    "or_intro_left",
				SubGoals:    []logic.Expr{node.Left},
				Premises:    []logic.Expr{node.Left},
				Description: fmt.Sprintf("from %v, %v", node.Left, goal),
			})
		}
		if !excluded("or_intro_right") {
			candidates = append(candidates, regression{
				RuleName:    "or_intro_right",
				SubGoals:    []logic.Expr{node.Right},
				Premises:    []logic.Expr{node.Right},
				Description: fmt.Sprintf("from %v, %v", node.Right, goal),
			})
		}
	}
	return candidates
}

// bidirectionalSearch expands a forward frontier from the axioms while
// decomposing the goal into sub-goals, and falls back to plain forward
// chaining to materialize the proof once the frontiers look connected.
// This is a heuristic accelerator; forward chaining alone is the source
// of truth.
func (s *searcher) bidirectionalSearch(state *ProofState, goal logic.Expr) bool {
	frontier := state.Knowledge.Clone()
	targets := NewKnowledgeSet(goal)

	for range s.config.MaxSteps / 2 {
		s.stepsExplored++

		results := ApplyAll(s.registry, frontier, nil, excludeAlso(s.config.ExcludedRules, "and_intro"))
		sort.SliceStable(results, func(i, j int) bool {
			return s.score(results[i], goal) > s.score(results[j], goal)
		})
		if len(results) > s.config.MaxBranching {
			results = results[:s.config.MaxBranching]
		}
		progressed := false
		for _, result := range results {
			if frontier.Contains(result.Conclusion) {
				continue
			}
			frontier.Add(result.Conclusion)
			progressed = true
			if targets.Contains(result.Conclusion) || logic.Equal(result.Conclusion, goal) {
				return s.forwardSearch(state, goal)
			}
		}

		fresh := NewKnowledgeSet()
		for _, target := range targets.Formulas() {
			subGoals := decomposeGoal(target)
			for _, sub := range subGoals {
				fresh.Add(sub)
			}
			if len(subGoals) > 0 && lo.EveryBy(subGoals, frontier.Contains) {
				return s.forwardSearch(state, goal)
			}
		}
		for _, sub := range fresh.Formulas() {
			if !targets.Contains(sub) {
				progressed = true
			}
			targets.Add(sub)
		}

		// Both frontiers stalled; more iterations change nothing.
		if !progressed {
			break
		}
	}
	return s.forwardSearch(state, goal)
}

// decomposeGoal splits a composite goal into the sub-goals that would
// suffice to rebuild it: both conjuncts of A ∧ B, or the consequent of an
// implication.
func decomposeGoal(goal logic.Expr) []logic.Expr {
	switch node := goal.(type) {
	case logic.And:
		return []logic.Expr{node.Left, node.Right}
	case logic.Imply:
		return []logic.Expr{node.Right}
	}
	return nil
}

// Prove runs a single proof attempt with a fresh Prover.
func Prove(axioms []logic.Expr, goal logic.Expr, config SearchConfig) SearchResult {
	return NewProver(config).Prove(axioms, goal)
}

// ProveStrings parses the axioms and goal before proving.
func ProveStrings(axioms []string, goal string, config SearchConfig) (SearchResult, error) {
	parsedAxioms, err := logic.ParseMany(axioms)
	if err != nil {
		return SearchResult{}, err
	}
	parsedGoal, err := logic.Parse(goal)
	if err != nil {
		return SearchResult{}, err
	}
	return Prove(parsedAxioms, parsedGoal, config), nil
}

// EntailsStrings answers the semantic question only, for callers that do
// not need a proof object.
func EntailsStrings(axioms []string, goal string) (bool, error) {
	parsedAxioms, err := logic.ParseMany(axioms)
	if err != nil {
		return false, err
	}
	parsedGoal, err := logic.Parse(goal)
	if err != nil {
		return false, err
	}
	return logic.Entails(parsedAxioms, parsedGoal)
}
