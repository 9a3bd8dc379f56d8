package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fabkit/barcut/internal/model"
)

func TestCompareScenarios_PoliciesDiverge(t *testing.T) {
	// One long piece and one short piece: the largest-stock policy burns two
	// 6000 bars, smallest-fit puts the short piece on a 3000 bar.
	reqs := []model.PieceRequirement{
		{Length: 5500, Quantity: 1},
		{Length: 2500, Quantity: 1},
	}
	stocks := []model.StockOption{3000, 6000}

	largest := model.PlanSettings{Kerf: 5, Policy: model.PolicyLargestStock}
	smallest := model.PlanSettings{Kerf: 5, Policy: model.PolicySmallestFit}

	results, err := CompareScenarios([]Scenario{
		{Name: "largest", Settings: largest},
		{Name: "smallest-fit", Settings: smallest},
	}, reqs, stocks)

	require.NoError(t, err)
	require.Len(t, results, 2)

	assert.Equal(t, 2, results[0].BarsUsed)
	assert.Equal(t, 2, results[1].BarsUsed)
	assert.Greater(t, results[0].Plan.TotalWaste(), results[1].Plan.TotalWaste(),
		"smallest-fit should waste less on this job")
}

func TestCompareScenarios_PropagatesValidationError(t *testing.T) {
	reqs := []model.PieceRequirement{{Length: 0, Quantity: 1}}

	_, err := CompareScenarios(BuildDefaultScenarios(model.DefaultSettings()), reqs, nil)

	require.Error(t, err)
	var verr *model.ValidationError
	assert.ErrorAs(t, err, &verr)
}

func TestBuildDefaultScenarios(t *testing.T) {
	base := model.DefaultSettings()

	scenarios := BuildDefaultScenarios(base)

	require.Len(t, scenarios, 3)
	assert.Equal(t, "Current Settings", scenarios[0].Name)
	assert.Equal(t, model.PolicySmallestFit, scenarios[1].Settings.Policy)
	assert.Zero(t, scenarios[2].Settings.Kerf)
}

func TestBuildDefaultScenarios_NoZeroKerfVariantWhenKerfIsZero(t *testing.T) {
	base := model.PlanSettings{Kerf: 0, Policy: model.PolicySmallestFit}

	scenarios := BuildDefaultScenarios(base)

	require.Len(t, scenarios, 2)
	assert.Equal(t, model.PolicyLargestStock, scenarios[1].Settings.Policy)
}
