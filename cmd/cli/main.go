package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"slices"
	"strings"

	"github.com/samber/lo"

	"github.com/limaJavier/prover/internal/logic"
	"github.com/limaJavier/prover/internal/proof"
	"github.com/limaJavier/prover/internal/qubo"
)

var (
	validModes      = []string{"prove", "entails", "sample", "dimacs"}
	validStrategies = lo.Map(proof.Strategies, func(s proof.Strategy, _ int) string { return string(s) })
	validSamplers   = qubo.Samplers
)

func main() {
	// Define arguments
	axiomsPtr := flag.String("axioms", "", `Semicolon-separated axiom formulas, e.g. "P; P -> Q"`)
	goalPtr := flag.String("goal", "", "Goal formula to derive from the axioms")
	filePtr := flag.String("file", "", "Path to a JSON problem file (overrides -axioms/-goal)")
	modePtr := flag.String("mode", "prove", `Operation mode. Allowed values are:
- "prove" (search for a natural-deduction proof, the default),
- "entails" (answer the semantic question only) and
- "sample" (decide the entailment through the QUBO sampling route) and
- "dimacs" (print the refutation problem in DIMACS-CNF for an external SAT solver)`)
	strategyPtr := flag.String("strategy", "forward", "Proof-search strategy. Allowed values are: \"forward\", \"backward\", \"bidirectional\", where \"forward\" is the default")
	samplerPtr := flag.String("sampler", "exhaustive", "Sampling backend for -mode sample. Allowed values are: \"exhaustive\", \"annealing\", where \"exhaustive\" is the default")
	maxStepsPtr := flag.Int("steps", 100, "Maximum forward-chaining iterations")
	maxDepthPtr := flag.Int("depth", 20, "Maximum backward-chaining recursion depth")
	maxBranchingPtr := flag.Int("branching", 10, "Maximum rule firings applied per iteration")
	noSemanticPtr := flag.Bool("no-semantic-check", false, "Disable the truth-table pre-check before searching")
	autoPriorityPtr := flag.Bool("auto-priority", false, "Derive rule priorities from the problem's connective profile")
	readsPtr := flag.Int("reads", 10, "Sample reads for -mode sample")
	sweepsPtr := flag.Int("sweeps", 1000, "Annealing sweeps per read")
	seedPtr := flag.Uint64("seed", 0, "Random seed for the annealing sampler")
	flag.Parse()

	mode := strings.ToLower(*modePtr)
	strategy := strings.ToLower(*strategyPtr)
	samplerName := strings.ToLower(*samplerPtr)

	// Validate arguments
	if !slices.Contains(validModes, mode) {
		log.Fatalf("%v is not a valid mode", mode)
	} else if !slices.Contains(validStrategies, strategy) {
		log.Fatalf("%v is not a valid strategy", strategy)
	} else if !slices.Contains(validSamplers, samplerName) {
		log.Fatalf("%v is not a valid sampler", samplerName)
	}

	axioms, goal, config := loadProblem(*filePtr, *axiomsPtr, *goalPtr)
	config.Strategy = proof.Strategy(strategy)
	config.MaxSteps = *maxStepsPtr
	config.MaxDepth = *maxDepthPtr
	config.MaxBranching = *maxBranchingPtr
	config.UseSemanticCheck = !*noSemanticPtr
	if *autoPriorityPtr {
		config.RulePriority = proof.PredictRulePriority(axioms, goal)
	}

	switch mode {
	case "entails":
		entailed, err := logic.Entails(axioms, goal)
		if err != nil {
			log.Fatalf("entailment check failed: %v", err)
		}
		fmt.Printf("entails: %v\n", entailed)
		if !entailed {
			counter, _ := logic.FindEntailmentCounterModel(axioms, goal)
			fmt.Printf("counter-model: %v\n", counter)
			os.Exit(20)
		}

	case "sample":
		sampler := qubo.NewSampler(samplerName, *sweepsPtr, *seedPtr)
		check, err := qubo.CheckEntailment(axioms, goal, sampler, *readsPtr)
		if err != nil {
			log.Fatalf("sampling route failed: %v", err)
		}
		fmt.Printf("entails: %v (best energy %g over %d reads)\n", check.Entailed, check.BestEnergy, check.SampledReads)
		if !check.Entailed {
			fmt.Printf("counter-model: %v\n", check.CounterModel)
			os.Exit(20)
		}

	case "dimacs":
		dimacs, _ := logic.RefutationDIMACS(axioms, goal)
		fmt.Print(dimacs)

	default:
		result := proof.Prove(axioms, goal, config)
		fmt.Println(result.FormatResult())
		if !result.Success {
			os.Exit(20)
		}
	}
}

// loadProblem reads the problem either from a JSON file or from the
// -axioms/-goal flags; the file also carries its own config overrides.
func loadProblem(file, axiomsFlag, goalFlag string) ([]logic.Expr, logic.Expr, proof.SearchConfig) {
	config := proof.DefaultSearchConfig()

	if file == "" {
		if goalFlag == "" {
			log.Fatal("a goal must be specified")
		}
		axioms, err := logic.ParseAxioms(axiomsFlag, ";")
		if err != nil {
			log.Fatalf("cannot parse axioms: %v", err)
		}
		goal, err := logic.Parse(goalFlag)
		if err != nil {
			log.Fatalf("cannot parse goal: %v", err)
		}
		return axioms, goal, config
	}

	input, err := proof.InputFromJson(file)
	if err != nil {
		log.Fatalf("cannot parse problem file: %v", err)
	}
	axioms, err := logic.ParseMany(input.Axioms)
	if err != nil {
		log.Fatalf("cannot parse axioms: %v", err)
	}
	goal, err := logic.Parse(input.Goal)
	if err != nil {
		log.Fatalf("cannot parse goal: %v", err)
	}
	return axioms, goal, input.Config()
}
