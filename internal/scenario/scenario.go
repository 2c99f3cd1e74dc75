package scenario

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"
)

// Scenario is a declarative sequence of vector operations with
// expectations, loaded from YAML.
type Scenario struct {
	// Name uniquely identifies the scenario; golden files derive
	// their filename from it.
	Name string `yaml:"name"`

	// Description explains what the scenario demonstrates.
	Description string `yaml:"description,omitempty"`

	// Token optionally fixes the run token for deterministic traces.
	// When empty, the runner's TokenGenerator supplies one.
	Token string `yaml:"token,omitempty"`

	// Vectors maps names to float literals available to the steps.
	Vectors map[string][]float64 `yaml:"vectors"`

	// Steps execute in order.
	Steps []Step `yaml:"steps"`
}

// Step is one operation in a scenario.
type Step struct {
	// Op is one of "add", "hadamard", "format".
	Op string `yaml:"op"`

	// A and B name the operand vectors. Format uses only A.
	A string `yaml:"a"`
	B string `yaml:"b,omitempty"`

	// Store optionally binds a successful result for later steps.
	Store string `yaml:"store,omitempty"`

	// Expect is the expected result vector, compared within tolerance.
	Expect []float64 `yaml:"expect,omitempty"`

	// ExpectText is the expected rendering for format steps.
	ExpectText string `yaml:"expect_text,omitempty"`

	// ExpectError is the expected error code (e.g. SIZE_MISMATCH).
	ExpectError string `yaml:"expect_error,omitempty"`
}

// Load reads and validates a single scenario file.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scenario file: %w", err)
	}

	var sc Scenario
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, fmt.Errorf("parsing scenario %s: %w", path, err)
	}
	if err := sc.Validate(); err != nil {
		return nil, fmt.Errorf("invalid scenario %s: %w", path, err)
	}
	return &sc, nil
}

// LoadDir loads every *.yaml scenario in dir, sorted by filename so
// runs are reproducible.
func LoadDir(dir string) ([]*Scenario, error) {
	paths, err := filepath.Glob(filepath.Join(dir, "*.yaml"))
	if err != nil {
		return nil, err
	}
	sort.Strings(paths)

	if len(paths) == 0 {
		return nil, fmt.Errorf("no scenario files in %s", dir)
	}

	scenarios := make([]*Scenario, 0, len(paths))
	for _, p := range paths {
		sc, err := Load(p)
		if err != nil {
			return nil, err
		}
		scenarios = append(scenarios, sc)
	}
	return scenarios, nil
}

// Validate checks structural requirements before execution.
func (s *Scenario) Validate() error {
	if s.Name == "" {
		return fmt.Errorf("scenario name is required")
	}
	if len(s.Steps) == 0 {
		return fmt.Errorf("scenario %q has no steps", s.Name)
	}
	for i, st := range s.Steps {
		switch st.Op {
		case "add", "hadamard":
			if st.A == "" || st.B == "" {
				return fmt.Errorf("step %d: op %q needs operands a and b", i+1, st.Op)
			}
		case "format":
			if st.A == "" {
				return fmt.Errorf("step %d: op %q needs operand a", i+1, st.Op)
			}
			if st.B != "" {
				return fmt.Errorf("step %d: op %q takes no operand b", i+1, st.Op)
			}
			// Format never fails and never yields a vector, so only
			// expect_text is meaningful; anything else would pass
			// without being checked.
			if len(st.Expect) > 0 || st.ExpectError != "" {
				return fmt.Errorf("step %d: op %q supports only expect_text", i+1, st.Op)
			}
		case "":
			return fmt.Errorf("step %d: op is required", i+1)
		default:
			return fmt.Errorf("step %d: unknown op %q", i+1, st.Op)
		}
		if st.ExpectError != "" && (len(st.Expect) > 0 || st.ExpectText != "") {
			return fmt.Errorf("step %d: expect_error excludes other expectations", i+1)
		}
	}
	return nil
}
