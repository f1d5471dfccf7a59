package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ExperimentFile is the on-disk description of one calibration experiment:
// shared context plus one or more measured series to seed fits for.
type ExperimentFile struct {
	Name              string         `yaml:"name"`
	PulseScheduleName string         `yaml:"pulse_schedule_name"`
	ExpID             string         `yaml:"exp_id,omitempty"` // Generated when omitted
	Qubits            []int          `yaml:"qubits"`
	RegisterMap       map[string]any `yaml:"register_map"`
	Series            []SeriesConfig `yaml:"series"`
}

// SeriesConfig holds one measured sweep. Label distinguishes experiment
// variants (e.g. measurement basis) and may be a string or a number.
type SeriesConfig struct {
	Label   any                `yaml:"label"`
	XValues map[string]float64 `yaml:"x_values,omitempty"`
	X       []float64          `yaml:"x"`
	Y       []float64          `yaml:"y"`
}

// LoadExperimentFile reads and validates an experiment description
func LoadExperimentFile(path string) (*ExperimentFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading experiment file: %w", err)
	}

	var exp ExperimentFile
	if err := yaml.Unmarshal(data, &exp); err != nil {
		return nil, fmt.Errorf("parsing experiment file: %w", err)
	}

	if err := exp.Validate(); err != nil {
		return nil, err
	}
	return &exp, nil
}

// Validate checks the sample-array invariants before any analysis runs
func (e *ExperimentFile) Validate() error {
	if len(e.Series) == 0 {
		return fmt.Errorf("experiment %q has no series", e.Name)
	}
	for i, s := range e.Series {
		if len(s.X) != len(s.Y) {
			return fmt.Errorf("series %d: x has %d samples but y has %d", i, len(s.X), len(s.Y))
		}
		if len(s.X) < 2 {
			return fmt.Errorf("series %d: need at least 2 samples, got %d", i, len(s.X))
		}
		for j := 1; j < len(s.X); j++ {
			if s.X[j] <= s.X[j-1] {
				return fmt.Errorf("series %d: x values must be strictly increasing (sample %d)", i, j)
			}
		}
	}
	return nil
}
