package glycemic

import (
	"megacalc/internal/engine"
)

// Standard glycemic-load banding: 10 and below is low, 20 and above is high.
// The lower boundary is inclusive — GL of exactly 10 is still "Low".
var scale = engine.Scale{
	{UpTo: 10, Inclusive: true, Label: "Low",
		Advice: "Minimal impact on blood sugar. Suitable for most meal plans."},
	{UpTo: 20, Inclusive: false, Label: "Medium",
		Advice: "Moderate impact. Pair with protein or fat to slow absorption."},
	{UpTo: engine.Open, Label: "High",
		Advice: "Large blood-sugar impact. Consider a smaller portion or a lower-GI swap."},
}

type Input struct {
	GlycemicIndex float64 `json:"glycemic_index"`
	CarbsGrams    float64 `json:"carbs_grams"`
}

type Result struct {
	GlycemicLoad float64 `json:"glycemic_load"`
	Label        string  `json:"label"`
	Advice       string  `json:"advice"`
}

func (in Input) Validate() engine.Errors {
	v := engine.NewValidation()
	v.Range("glycemic_index", in.GlycemicIndex, 0, 150)
	v.Positive("carbs_grams", in.CarbsGrams)
	return v.Errors()
}

func Calculate(in Input) (Result, error) {
	gl := in.GlycemicIndex * in.CarbsGrams / 100.0
	label, advice := scale.Classify(gl)
	return Result{GlycemicLoad: gl, Label: label, Advice: advice}, nil
}
