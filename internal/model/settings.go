package model

// Policy controls which stock option a new bar is opened at when several
// lengths are available.
type Policy string

const (
	// PolicyLargestStock always opens new bars at the largest stock option.
	// Favors fewer, longer bars over tightly matched bar sizes. Default.
	PolicyLargestStock Policy = "largest"
	// PolicySmallestFit opens new bars at the smallest stock option that
	// still holds the largest remaining piece. Usually less trailing waste
	// when many short pieces remain at the end of a job.
	PolicySmallestFit Policy = "smallest-fit"
)

// DefaultKerf is the blade width lost per cut in mm.
const DefaultKerf = 5.0

// PlanSettings holds planner configuration.
type PlanSettings struct {
	Kerf   float64 `json:"kerf" yaml:"kerf"`     // Blade width lost per cut (mm), >= 0
	Policy Policy  `json:"policy" yaml:"policy"` // Bar opening policy
}

func DefaultSettings() PlanSettings {
	return PlanSettings{
		Kerf:   DefaultKerf,
		Policy: PolicyLargestStock,
	}
}
