package brine

import (
	"megacalc/internal/engine"
)

type Input struct {
	WaterLiters float64 `json:"water_liters"`
	SaltPct     float64 `json:"salt_pct"`
	SugarPct    float64 `json:"sugar_pct"` // optional
}

type Result struct {
	SaltGrams  float64 `json:"salt_grams"`
	SugarGrams float64 `json:"sugar_grams"`
	Notes      string  `json:"notes"`
}

func (in Input) Validate() engine.Errors {
	v := engine.NewValidation()
	v.Positive("water_liters", in.WaterLiters)
	v.Range("salt_pct", in.SaltPct, 0.5, 26) // saturation is ~26% at room temperature
	v.Range("sugar_pct", in.SugarPct, 0, 50)
	return v.Errors()
}

// Percentages are by weight of water, one litre weighing 1000 g.
func Calculate(in Input) (Result, error) {
	waterG := in.WaterLiters * 1000.0
	return Result{
		SaltGrams:  waterG * in.SaltPct / 100.0,
		SugarGrams: waterG * in.SugarPct / 100.0,
		Notes:      "Weigh additions rather than measuring by volume for consistency.",
	}, nil
}
