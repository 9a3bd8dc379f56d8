package engine

import (
	"fmt"

	"github.com/fabkit/barcut/internal/model"
)

// Scenario defines a named set of settings to compare.
type Scenario struct {
	Name     string
	Settings model.PlanSettings
}

// ScenarioResult holds the plan and computed statistics for one scenario.
type ScenarioResult struct {
	Scenario     Scenario
	Plan         model.CutPlan
	BarsUsed     int
	TotalCuts    int
	WastePercent float64
	Unplaced     int
}

// CompareScenarios plans the same job under each scenario and returns the
// results in scenario order. This gives a side-by-side view of different
// planner parameters, most usefully the two bar-opening policies.
func CompareScenarios(scenarios []Scenario, reqs []model.PieceRequirement, stocks []model.StockOption) ([]ScenarioResult, error) {
	results := make([]ScenarioResult, 0, len(scenarios))

	for _, sc := range scenarios {
		plan, err := New(sc.Settings).Plan(reqs, stocks)
		if err != nil {
			return nil, fmt.Errorf("scenario %q: %w", sc.Name, err)
		}

		results = append(results, ScenarioResult{
			Scenario:     sc,
			Plan:         plan,
			BarsUsed:     plan.TotalBars(),
			TotalCuts:    plan.TotalPieces(),
			WastePercent: plan.WastePercent(),
			Unplaced:     len(plan.Unplaceable),
		})
	}

	return results, nil
}

// BuildDefaultScenarios generates comparison scenarios from the current
// settings, varying the parameters worth second-guessing on a real job.
func BuildDefaultScenarios(base model.PlanSettings) []Scenario {
	scenarios := []Scenario{
		{Name: "Current Settings", Settings: base},
	}

	// Scenario: the other bar-opening policy
	altPolicy := base
	if base.Policy == model.PolicySmallestFit {
		altPolicy.Policy = model.PolicyLargestStock
		scenarios = append(scenarios, Scenario{Name: "Largest Stock Policy", Settings: altPolicy})
	} else {
		altPolicy.Policy = model.PolicySmallestFit
		scenarios = append(scenarios, Scenario{Name: "Smallest-Fit Policy", Settings: altPolicy})
	}

	// Scenario: what the plan would look like on a zero-kerf saw
	if base.Kerf > 0 {
		noKerf := base
		noKerf.Kerf = 0
		scenarios = append(scenarios, Scenario{Name: "Zero Kerf", Settings: noKerf})
	}

	return scenarios
}
