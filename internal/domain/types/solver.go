package types

import "fmt"

// Case identifies one solver input within a cycle calculation.
type Case struct {
	Name      string `yaml:"name" json:"name"`
	Step      int    `yaml:"step" json:"step"`
	Iteration int    `yaml:"iteration" json:"iteration"`
}

// Description is the second line of the case card.
func (c Case) Description() string {
	return fmt.Sprintf("CASE %s, STEP %d, ITERATION %d", c.Name, c.Step, c.Iteration)
}

// FileName is the input file name for this case.
func (c Case) FileName() string {
	return fmt.Sprintf("komodo_%s_%d_%d.inp", c.Name, c.Step, c.Iteration)
}

// IterationControl holds the values of the iteration control card.
type IterationControl struct {
	Outer                 int     `yaml:"outer" json:"outer" mapstructure:"outer"`
	Inner                 int     `yaml:"inner" json:"inner" mapstructure:"inner"`
	FissionTolerance      float64 `yaml:"fission_tolerance" json:"fission_tolerance" mapstructure:"fission_tolerance"`
	FluxTolerance         float64 `yaml:"flux_tolerance" json:"flux_tolerance" mapstructure:"flux_tolerance"`
	ExtrapolationInterval int     `yaml:"extrapolation_interval" json:"extrapolation_interval" mapstructure:"extrapolation_interval"`
	OuterUpdate           int     `yaml:"outer_update" json:"outer_update" mapstructure:"outer_update"`
	THIterations          int     `yaml:"th_iterations" json:"th_iterations" mapstructure:"th_iterations"`
	OuterPerTH            int     `yaml:"outer_per_th" json:"outer_per_th" mapstructure:"outer_per_th"`
}

// DefaultIterationControl is the iteration control used for BWR cycle runs.
func DefaultIterationControl() IterationControl {
	return IterationControl{
		Outer:                 1200,
		Inner:                 5,
		FissionTolerance:      1e-5,
		FluxTolerance:         1e-5,
		ExtrapolationInterval: 15,
		OuterUpdate:           40,
		THIterations:          20,
		OuterPerTH:            80,
	}
}

// RawOutput is what a solver run produced.
type RawOutput struct {
	InputPath  string `json:"input_path"`
	OutputPath string `json:"output_path"`
	Stdout     string `json:"stdout"`
	Stderr     string `json:"stderr"`
}
