package upgrade

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func floatPtr(f float64) *float64 { return &f }

func TestAssess(t *testing.T) {
	a := Assess(Input{
		ReleaseDate: at(testNow.AddDate(0, 0, -60)),
		AvgCycle:    floatPtr(100),
	}, testNow)

	assert.Equal(t, 60, a.ReleasedDaysAgo)
	assert.Nil(t, a.ExpectedUpgradeInDays)
	assert.Equal(t, 100.0, a.CycleDays)
	require.NotNil(t, a.Percentage)
	assert.InDelta(t, 0.40, *a.Percentage, 1e-9)
	assert.Equal(t, Wait, a.Status)
	assert.Empty(t, a.Diagnostics)
}

func TestAssess_ExpectedDate(t *testing.T) {
	a := Assess(Input{
		ReleaseDate:  at(testNow.AddDate(0, 0, -90)),
		ExpectedDate: at(testNow.AddDate(0, 0, 80)),
		AvgCycle:     floatPtr(100),
	}, testNow)

	require.NotNil(t, a.ExpectedUpgradeInDays)
	assert.Equal(t, 80, *a.ExpectedUpgradeInDays)
	assert.Equal(t, BuyNow, a.Status)
}

func TestAssess_PassedExpectedDateFallsBackToCycle(t *testing.T) {
	a := Assess(Input{
		ReleaseDate:  at(testNow.AddDate(0, 0, -60)),
		ExpectedDate: at(testNow.AddDate(0, 0, -1)),
		AvgCycle:     floatPtr(100),
	}, testNow)

	assert.Nil(t, a.ExpectedUpgradeInDays)
	assert.Equal(t, Wait, a.Status)
}

func TestAssess_MissingCycle(t *testing.T) {
	a := Assess(Input{ReleaseDate: at(testNow)}, testNow)

	assert.Equal(t, DontBuy, a.Status)
	assert.Nil(t, a.Percentage)
	assert.True(t, a.HasDiagnostic(DiagnosticNonPositiveCycle))
}

func TestAssess_NoDates(t *testing.T) {
	a := Assess(Input{AvgCycle: floatPtr(365)}, testNow)

	assert.Equal(t, 0, a.ReleasedDaysAgo)
	assert.Equal(t, BuyNow, a.Status)
}
