package proof

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/mitchellh/mapstructure"
)

// ProblemInput is a proof problem as read from a JSON file: axiom and goal
// formulas in the engine's infix syntax plus optional search overrides.
type ProblemInput struct {
	Axioms       []string
	Goal         string
	Strategy     string
	MaxSteps     int                `mapstructure:"maxSteps"`
	MaxDepth     int                `mapstructure:"maxDepth"`
	MaxBranching int                `mapstructure:"maxBranching"`
	RulePriority map[string]float64 `mapstructure:"rulePriority"`
	Excluded     []string           `mapstructure:"excludedRules"`
}

// Config folds the input's overrides over the default search
// configuration; absent fields keep their defaults.
func (input ProblemInput) Config() SearchConfig {
	config := DefaultSearchConfig()
	if input.Strategy != "" {
		config.Strategy = Strategy(input.Strategy)
	}
	if input.MaxSteps > 0 {
		config.MaxSteps = input.MaxSteps
	}
	if input.MaxDepth > 0 {
		config.MaxDepth = input.MaxDepth
	}
	if input.MaxBranching > 0 {
		config.MaxBranching = input.MaxBranching
	}
	if len(input.RulePriority) > 0 {
		config.RulePriority = input.RulePriority
	}
	if len(input.Excluded) > 0 {
		config.ExcludedRules = make(map[string]struct{}, len(input.Excluded))
		for _, name := range input.Excluded {
			config.ExcludedRules[name] = struct{}{}
		}
	}
	return config
}

// InputFromJson reads and decodes a problem file.
func InputFromJson(file string) (ProblemInput, error) {
	bytes, err := os.ReadFile(file)
	if err != nil {
		return ProblemInput{}, err
	}
	var inputJson map[string]any
	if err := json.Unmarshal(bytes, &inputJson); err != nil {
		return ProblemInput{}, err
	}

	var input ProblemInput
	if err := mapstructure.Decode(inputJson, &input); err != nil {
		return ProblemInput{}, err
	}
	if input.Goal == "" {
		return ProblemInput{}, fmt.Errorf("problem file %v carries no goal", file)
	}
	return input, nil
}
