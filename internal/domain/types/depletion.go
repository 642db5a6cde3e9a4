package types

// GroupConstants are the homogenised cross sections of one energy group.
// Scatter[g] is the scattering cross section from this group into group g.
type GroupConstants struct {
	Transport  float64   `yaml:"transport" json:"transport"`
	Absorption float64   `yaml:"absorption" json:"absorption"`
	NuFission  float64   `yaml:"nu_fission" json:"nu_fission"`
	Fission    float64   `yaml:"fission" json:"fission"`
	Chi        float64   `yaml:"chi" json:"chi"`
	Scatter    []float64 `yaml:"scatter" json:"scatter"`
}

// CrossSectionSet holds the group constants at one depletion step.
type CrossSectionSet struct {
	Groups []GroupConstants `yaml:"groups" json:"groups"`
}

// DepletionRun is the persisted result of depleting one fuel segment at a
// fixed coolant void fraction and power.
//
// Steps has one entry per exposure point, i.e. len(TimeSteps)+1 entries:
// the fresh fuel followed by the state after each time step.
type DepletionRun struct {
	Name         string            `yaml:"name" json:"name"`
	VoidFraction float64           `yaml:"alpha" json:"alpha"`
	Power        float64           `yaml:"power" json:"power"`
	TimeSteps    []float64         `yaml:"dt" json:"dt"`
	TimeUnit     string            `yaml:"dt_unit" json:"dt_unit"`
	NGroups      int               `yaml:"n_groups" json:"n_groups"`
	Steps        []CrossSectionSet `yaml:"steps" json:"steps"`
}

// Exposures returns the cumulative exposure at each step, starting at 0.
func (r DepletionRun) Exposures() []float64 {
	out := make([]float64, len(r.TimeSteps)+1)
	for i, dt := range r.TimeSteps {
		out[i+1] = out[i] + dt
	}
	return out
}
