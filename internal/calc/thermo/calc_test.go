package thermo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculate_BandTable(t *testing.T) {
	cases := []struct {
		weeks, deficit float64
		wantSlowdown   float64 // percent
	}{
		{2, 10, 1},       // fresh diet, mild deficit
		{4, 10, 6},       // 0.05 + 0.01
		{8, 15, 8},       // 0.05 + 0.03
		{12, 20, 11},     // 0.08 + 0.03
		{20, 30, 15},     // 0.10 + 0.05
	}
	for _, tc := range cases {
		in := Input{MaintenanceKcal: 2500, DeficitPct: tc.deficit, WeeksDieting: tc.weeks}
		require.True(t, in.Validate().OK())
		res, err := Calculate(in)
		require.NoError(t, err)
		assert.InDelta(t, tc.wantSlowdown, res.SlowdownPct, 1e-9, "weeks %v deficit %v", tc.weeks, tc.deficit)
		assert.InDelta(t, 2500*(1-tc.wantSlowdown/100), res.AdjustedMaintenanceKcal, 1e-9)
		assert.InDelta(t, 2500*tc.wantSlowdown/100, res.DailyReductionKcal, 1e-9)
	}
}

func TestValidate(t *testing.T) {
	assert.Contains(t, Input{MaintenanceKcal: 500, DeficitPct: 10, WeeksDieting: 4}.Validate(), "maintenance_kcal")
	assert.Contains(t, Input{MaintenanceKcal: 2500, DeficitPct: 80, WeeksDieting: 4}.Validate(), "deficit_pct")
}
