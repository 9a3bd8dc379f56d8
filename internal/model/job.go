package model

// Job ties a named cut list together with its stock options and settings for
// a single planning run. Jobs are what the CLI loads from YAML files and
// what callers build from quotation line items.
type Job struct {
	Name     string             `json:"name" yaml:"name"`
	Profile  string             `json:"profile,omitempty" yaml:"profile,omitempty"` // optional catalog profile name
	Pieces   []PieceRequirement `json:"pieces" yaml:"pieces"`
	Stock    []float64          `json:"stock,omitempty" yaml:"stock,omitempty"` // available bar lengths, mm
	Settings PlanSettings       `json:"settings" yaml:"settings"`
}

// NewJob returns an empty job with default settings.
func NewJob(name string) Job {
	return Job{
		Name:     name,
		Pieces:   []PieceRequirement{},
		Settings: DefaultSettings(),
	}
}

// StockOptions returns the job's stock lengths as planner stock options.
// An empty list is valid; the planner falls back to DefaultStockLength.
func (j Job) StockOptions() []StockOption {
	opts := make([]StockOption, len(j.Stock))
	for i, l := range j.Stock {
		opts[i] = StockOption(l)
	}
	return opts
}
