// Package thermo estimates adaptive thermogenesis: the metabolic slowdown a
// prolonged calorie deficit produces on top of weight-driven BMR change. The
// band thresholds are the published calculator's documented behavior, kept
// verbatim; they are heuristics, not validated clinical values.
package thermo

import (
	"megacalc/internal/engine"
)

// Slowdown from time spent dieting.
func durationSlowdown(weeks float64) float64 {
	switch {
	case weeks < 4:
		return 0.0
	case weeks <= 8:
		return 0.05
	case weeks <= 16:
		return 0.08
	default:
		return 0.10
	}
}

// Additional slowdown from deficit severity.
func deficitSlowdown(deficitPct float64) float64 {
	switch {
	case deficitPct >= 25:
		return 0.05
	case deficitPct >= 15:
		return 0.03
	default:
		return 0.01
	}
}

type Input struct {
	MaintenanceKcal float64 `json:"maintenance_kcal"`
	DeficitPct      float64 `json:"deficit_pct"`
	WeeksDieting    float64 `json:"weeks_dieting"`
}

type Result struct {
	SlowdownPct             float64 `json:"slowdown_pct"`
	AdjustedMaintenanceKcal float64 `json:"adjusted_maintenance_kcal"`
	DailyReductionKcal      float64 `json:"daily_reduction_kcal"`
	Notes                   string  `json:"notes"`
}

func (in Input) Validate() engine.Errors {
	v := engine.NewValidation()
	v.Range("maintenance_kcal", in.MaintenanceKcal, 800, 6000)
	v.Range("deficit_pct", in.DeficitPct, 0, 50)
	v.Range("weeks_dieting", in.WeeksDieting, 0, 200)
	return v.Errors()
}

func Calculate(in Input) (Result, error) {
	slowdown := durationSlowdown(in.WeeksDieting) + deficitSlowdown(in.DeficitPct)
	adjusted := in.MaintenanceKcal * (1 - slowdown)
	return Result{
		SlowdownPct:             slowdown * 100,
		AdjustedMaintenanceKcal: adjusted,
		DailyReductionKcal:      in.MaintenanceKcal - adjusted,
		Notes:                   "Empirical estimate of diet-induced metabolic adaptation.",
	}, nil
}
