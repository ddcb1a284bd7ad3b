package savings

import (
	"megacalc/internal/engine"
)

var scale = engine.Scale{
	{UpTo: 5, Label: "Low",
		Advice: "Below 5%. Start with automatic transfers, even small ones compound."},
	{UpTo: 15, Label: "Moderate",
		Advice: "5-15%. A solid base; aim for 15% to stay on a typical retirement track."},
	{UpTo: 25, Label: "Good",
		Advice: "15-25%. On track for standard retirement timelines."},
	{UpTo: engine.Open, Label: "Excellent",
		Advice: "25% or more. Early-retirement territory if sustained."},
}

type Input struct {
	MonthlyIncome  float64 `json:"monthly_income"`
	MonthlySavings float64 `json:"monthly_savings"`
}

type Result struct {
	SavingsRatePct float64 `json:"savings_rate_pct"`
	AnnualSavings  float64 `json:"annual_savings"`
	Label          string  `json:"label"`
	Advice         string  `json:"advice"`
}

func (in Input) Validate() engine.Errors {
	v := engine.NewValidation()
	v.Positive("monthly_income", in.MonthlyIncome)
	v.NonNegative("monthly_savings", in.MonthlySavings)
	v.Refine("monthly_savings", func() bool { return in.MonthlySavings <= in.MonthlyIncome },
		"cannot exceed monthly income")
	return v.Errors()
}

func Calculate(in Input) (Result, error) {
	rate := in.MonthlySavings / in.MonthlyIncome * 100.0
	label, advice := scale.Classify(rate)
	return Result{
		SavingsRatePct: rate,
		AnnualSavings:  in.MonthlySavings * 12,
		Label:          label,
		Advice:         advice,
	}, nil
}
