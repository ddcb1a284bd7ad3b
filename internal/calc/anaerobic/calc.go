package anaerobic

import (
	"megacalc/internal/engine"
)

type Input struct {
	Power1W    float64 `json:"power1_w"` // shorter, harder trial
	Duration1S float64 `json:"duration1_s"`
	Power2W    float64 `json:"power2_w"` // longer, easier trial
	Duration2S float64 `json:"duration2_s"`
}

type Result struct {
	CP     float64 `json:"cp_watts"`
	WPrime float64 `json:"w_prime_j"`
	Notes  string  `json:"notes"`
}

func (in Input) Validate() engine.Errors {
	v := engine.NewValidation()
	v.Positive("power1_w", in.Power1W)
	v.Positive("duration1_s", in.Duration1S)
	v.Positive("power2_w", in.Power2W)
	v.Positive("duration2_s", in.Duration2S)
	v.Refine("duration2_s", func() bool { return in.Duration2S > in.Duration1S },
		"second trial must be longer than the first")
	v.Refine("power2_w", func() bool { return in.Power2W < in.Power1W },
		"the longer trial must have the lower power")
	return v.Errors()
}

// Calculate fits the two-parameter critical-power model through two maximal
// trials. Total work W = W' + CP*t is linear in duration, so two points pin
// both the sustainable power CP and the finite anaerobic reserve W'.
func Calculate(in Input) (Result, error) {
	w1 := in.Power1W * in.Duration1S
	w2 := in.Power2W * in.Duration2S
	cp := (w2 - w1) / (in.Duration2S - in.Duration1S)
	wPrime := w1 - cp*in.Duration1S
	return Result{
		CP:     cp,
		WPrime: wPrime,
		Notes:  "Two-point Monod-Scherrer fit; trials must both be maximal efforts.",
	}, nil
}
