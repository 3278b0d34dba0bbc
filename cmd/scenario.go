package cmd

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/prodline-sim/prodline-sim/sim"
)

// LoadScenario reads a full parameter set from a YAML file. Fields absent
// from the file keep their defaults, so a scenario only needs to name what it
// changes.
func LoadScenario(path string) (sim.Config, error) {
	scenario := sim.DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return scenario, fmt.Errorf("read scenario: %w", err)
	}
	if err := yaml.Unmarshal(data, &scenario); err != nil {
		return scenario, fmt.Errorf("parse scenario %s: %w", path, err)
	}
	return scenario, nil
}
