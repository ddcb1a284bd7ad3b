// Package altitude estimates the extra oxygen demand of exercising at
// elevation. The altitude bands and multipliers mirror the published
// calculator exactly; they are a lookup heuristic, not barometric physics.
package altitude

import (
	"megacalc/internal/engine"
)

type band struct {
	belowM     float64
	multiplier float64
	label      string
}

var bands = []band{
	{1500, 1.00, "Near sea level"},
	{2500, 1.06, "Moderate altitude"},
	{3500, 1.14, "High altitude"},
	{4500, 1.24, "Very high altitude"},
	{9000, 1.37, "Extreme altitude"},
}

type Input struct {
	AltitudeM   float64 `json:"altitude_m"`
	BaselineVO2 float64 `json:"baseline_vo2"` // ml/kg/min at sea level
}

type Result struct {
	Multiplier  float64 `json:"multiplier"`
	AdjustedVO2 float64 `json:"adjusted_vo2"`
	Band        string  `json:"band"`
	Notes       string  `json:"notes"`
}

func (in Input) Validate() engine.Errors {
	v := engine.NewValidation()
	v.Range("altitude_m", in.AltitudeM, 0, 8848)
	v.Range("baseline_vo2", in.BaselineVO2, 10, 95)
	return v.Errors()
}

func Calculate(in Input) (Result, error) {
	b := bands[len(bands)-1]
	for _, cand := range bands {
		if in.AltitudeM < cand.belowM {
			b = cand
			break
		}
	}
	return Result{
		Multiplier:  b.multiplier,
		AdjustedVO2: in.BaselineVO2 * b.multiplier,
		Band:        b.label,
		Notes:       "Banded estimate; acclimatization shifts real demand.",
	}, nil
}
