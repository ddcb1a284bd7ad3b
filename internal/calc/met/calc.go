package met

import (
	"megacalc/internal/engine"
)

// Compendium MET values for the supported activities. "custom" lets the
// caller supply a MET value directly.
var activityMETs = map[string]float64{
	"walking":       3.5,
	"running":       9.8,
	"cycling":       7.5,
	"swimming":      8.0,
	"rowing":        7.0,
	"yoga":          2.5,
	"weightlifting": 5.0,
	"custom":        0,
}

type Input struct {
	Activity    string  `json:"activity"`
	MET         float64 `json:"met"` // required only for activity "custom"
	WeightKg    float64 `json:"weight_kg"`
	DurationMin float64 `json:"duration_min"`
}

type Result struct {
	MET      float64 `json:"met"`
	Calories float64 `json:"calories"`
}

func (in Input) Validate() engine.Errors {
	v := engine.NewValidation()
	_, known := activityMETs[in.Activity]
	v.Require("activity", known, "unknown activity")
	v.Range("weight_kg", in.WeightKg, 20, 400)
	v.Positive("duration_min", in.DurationMin)
	if in.Activity == "custom" {
		v.Range("met", in.MET, 0.9, 25)
	}
	return v.Errors()
}

// One MET burns roughly one kcal per kilogram of body weight per hour.
func Calculate(in Input) (Result, error) {
	m := activityMETs[in.Activity]
	if in.Activity == "custom" {
		m = in.MET
	}
	kcal := m * in.WeightKg * in.DurationMin / 60.0
	return Result{MET: m, Calories: kcal}, nil
}
