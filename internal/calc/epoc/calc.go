// Package epoc estimates the post-exercise "afterburn". The intensity
// multipliers and duration bands below are empirical estimates carried over
// from the published calculator, not derived physiology; change them and the
// documented behavior changes.
package epoc

import (
	"megacalc/internal/engine"
)

type Intensity string

const (
	Low      Intensity = "low"
	Moderate Intensity = "moderate"
	High     Intensity = "high"
	VeryHigh Intensity = "very_high"
)

var intensityFactor = map[Intensity]float64{
	Low:      0.05,
	Moderate: 0.10,
	High:     0.14,
	VeryHigh: 0.21,
}

// Longer sessions extend the afterburn window.
func durationFactor(min float64) float64 {
	switch {
	case min < 30:
		return 1.0
	case min <= 60:
		return 1.15
	default:
		return 1.3
	}
}

type Input struct {
	SessionCalories float64   `json:"session_calories"`
	Intensity       Intensity `json:"intensity"`
	DurationMin     float64   `json:"duration_min"`
}

type Result struct {
	EPOCCalories  float64 `json:"epoc_calories"`
	TotalCalories float64 `json:"total_calories"`
	Notes         string  `json:"notes"`
}

func (in Input) Validate() engine.Errors {
	v := engine.NewValidation()
	v.Positive("session_calories", in.SessionCalories)
	v.OneOf("intensity", string(in.Intensity),
		string(Low), string(Moderate), string(High), string(VeryHigh))
	v.Range("duration_min", in.DurationMin, 5, 300)
	return v.Errors()
}

func Calculate(in Input) (Result, error) {
	epoc := in.SessionCalories * intensityFactor[in.Intensity] * durationFactor(in.DurationMin)
	return Result{
		EPOCCalories:  epoc,
		TotalCalories: in.SessionCalories + epoc,
		Notes:         "Empirical estimate; individual afterburn varies widely.",
	}, nil
}
