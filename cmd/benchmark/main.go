package main

import (
	"encoding/csv"
	"fmt"
	"log"
	"os"

	"github.com/limaJavier/prover/internal/logic"
	"github.com/limaJavier/prover/internal/proof"
)

type benchmarkCase struct {
	Name     string
	Axioms   []string
	Goal     string
	Entailed bool
}

// The battery covers every rule at least once, plus entailments that only
// resolution reaches and problems that must fail.
var cases = []benchmarkCase{
	{Name: "modus_ponens", Axioms: []string{"P", "P -> Q"}, Goal: "Q", Entailed: true},
	{Name: "modus_tollens", Axioms: []string{"P -> Q", "~Q"}, Goal: "~P", Entailed: true},
	{Name: "and_elim", Axioms: []string{"P & Q"}, Goal: "P", Entailed: true},
	{Name: "and_intro", Axioms: []string{"P", "Q"}, Goal: "P & Q", Entailed: true},
	{Name: "or_intro", Axioms: []string{"P"}, Goal: "P | Q", Entailed: true},
	{Name: "or_elim", Axioms: []string{"P | Q", "~P"}, Goal: "Q", Entailed: true},
	{Name: "double_negation", Axioms: []string{"~~P"}, Goal: "P", Entailed: true},
	{Name: "chained_mp", Axioms: []string{"P", "P -> Q", "Q -> R"}, Goal: "R", Entailed: true},
	{Name: "hypothetical_syllogism", Axioms: []string{"P -> Q", "Q -> R", "P"}, Goal: "R", Entailed: true},
	{Name: "resolution_chain", Axioms: []string{"P | Q", "~P | R", "~Q | R"}, Goal: "R", Entailed: true},
	{Name: "biconditional", Axioms: []string{"P <-> Q", "P"}, Goal: "Q", Entailed: true},
	{Name: "excluded_middle", Axioms: nil, Goal: "P | ~P", Entailed: true},
	{Name: "unprovable", Axioms: []string{"P"}, Goal: "Q", Entailed: false},
	{Name: "satisfiable_not_entailed", Axioms: []string{"P | Q"}, Goal: "P", Entailed: false},
	{Name: "contrapositive", Axioms: []string{"~Q -> ~P", "P"}, Goal: "Q", Entailed: true},
}

func main() {
	writer := csv.NewWriter(os.Stdout)
	defer writer.Flush()

	if err := writer.Write([]string{"case", "strategy", "entailed", "success", "agrees", "steps_explored", "proof_steps", "elapsed_ms"}); err != nil {
		log.Fatalf("cannot write csv header: %v", err)
	}

	disagreements := 0
	for _, c := range cases {
		axioms, err := logic.ParseMany(c.Axioms)
		if err != nil {
			log.Fatalf("case %v: cannot parse axioms: %v", c.Name, err)
		}
		goal, err := logic.Parse(c.Goal)
		if err != nil {
			log.Fatalf("case %v: cannot parse goal: %v", c.Name, err)
		}

		entailed, err := logic.Entails(axioms, goal)
		if err != nil {
			log.Fatalf("case %v: entailment oracle failed: %v", c.Name, err)
		}
		if entailed != c.Entailed {
			log.Fatalf("case %v: expected entailed=%v, oracle says %v", c.Name, c.Entailed, entailed)
		}

		for _, strategy := range proof.Strategies {
			config := proof.DefaultSearchConfig()
			config.Strategy = strategy
			result := proof.Prove(axioms, goal, config)

			agrees := result.Success == entailed
			if !agrees {
				disagreements++
			}
			record := []string{
				c.Name,
				string(strategy),
				fmt.Sprint(entailed),
				fmt.Sprint(result.Success),
				fmt.Sprint(agrees),
				fmt.Sprint(result.StepsExplored),
				fmt.Sprint(len(result.State.Steps)),
				fmt.Sprintf("%.3f", float64(result.Elapsed.Microseconds())/1000),
			}
			if err := writer.Write(record); err != nil {
				log.Fatalf("cannot write csv record: %v", err)
			}
		}
	}

	writer.Flush()
	if disagreements > 0 {
		// Expected for strategies that are incomplete on some shapes, e.g.
		// backward chaining on pure resolution problems; the agrees column
		// locates them.
		log.Printf("%d strategy results disagree with the semantic oracle", disagreements)
	}
}
