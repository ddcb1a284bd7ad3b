package beam

import (
	"math"

	"megacalc/internal/engine"
)

type Support string

const (
	SimplySupported Support = "simply_supported"
	Cantilever      Support = "cantilever"
)

type Input struct {
	Support              Support `json:"support"`
	Material             string  `json:"material"` // steel or timber
	FyMPa                float64 `json:"fy_mpa"`
	EGPa                 float64 `json:"e_gpa"`
	SpanM                float64 `json:"span_m"`
	UDLKNM               float64 `json:"udl_kn_m"`
	WidthM               float64 `json:"width_m"`
	HeightM              float64 `json:"height_m"`
	DeflectionLimitRatio float64 `json:"deflection_limit_ratio"`
}

type Result struct {
	MaxMomentKNM      float64 `json:"max_moment_knm"`
	SectionModulusMM3 float64 `json:"section_modulus_mm3"`
	StressMPa         float64 `json:"stress_mpa"`
	DeflectionMM      float64 `json:"deflection_mm"`
	DeflectionLimitMM float64 `json:"deflection_limit_mm"`
	OKStress          bool    `json:"ok_stress"`
	OKDeflection      bool    `json:"ok_deflection"`
	Notes             string  `json:"notes"`
}

func (in Input) Validate() engine.Errors {
	v := engine.NewValidation()
	v.OneOf("support", string(in.Support), string(SimplySupported), string(Cantilever))
	if in.Material != "" {
		v.OneOf("material", in.Material, "steel", "timber")
	}
	v.Positive("span_m", in.SpanM)
	v.Positive("udl_kn_m", in.UDLKNM)
	v.Positive("width_m", in.WidthM)
	v.Positive("height_m", in.HeightM)
	v.NonNegative("fy_mpa", in.FyMPa)
	v.NonNegative("e_gpa", in.EGPa)
	v.NonNegative("deflection_limit_ratio", in.DeflectionLimitRatio)
	return v.Errors()
}

func Calculate(in Input) (Result, error) {
	if in.DeflectionLimitRatio == 0 {
		in.DeflectionLimitRatio = 250
	}
	if in.EGPa == 0 {
		if in.Material == "timber" {
			in.EGPa = 11
		} else {
			in.EGPa = 200
		}
	}
	if in.FyMPa == 0 {
		if in.Material == "timber" {
			in.FyMPa = 24
		} else {
			in.FyMPa = 235
		}
	}

	// Max moment for a UDL: wL^2/8 simply supported, wL^2/2 at a cantilever root.
	var M float64
	switch in.Support {
	case Cantilever:
		M = in.UDLKNM * in.SpanM * in.SpanM / 2.0
	default:
		M = in.UDLKNM * in.SpanM * in.SpanM / 8.0
	}

	bmm := in.WidthM * 1000.0
	hmm := in.HeightM * 1000.0

	// Rectangular section properties.
	W := bmm * hmm * hmm / 6.0
	I := bmm * math.Pow(hmm, 3) / 12.0
	stress := (M * 1e6) / W

	wNmm := in.UDLKNM // 1 kN/m = 1 N/mm
	Lmm := in.SpanM * 1000.0
	E := in.EGPa * 1000.0 // MPa

	// Deflection: 5wL^4/384EI at midspan, wL^4/8EI at a cantilever tip.
	var defl float64
	notes := "Simply supported rectangular beam under UDL."
	if in.Support == Cantilever {
		defl = wNmm * math.Pow(Lmm, 4) / (8.0 * E * I)
		notes = "Cantilever rectangular beam under UDL."
	} else {
		defl = 5.0 * wNmm * math.Pow(Lmm, 4) / (384.0 * E * I)
	}
	deflLimit := Lmm / in.DeflectionLimitRatio

	return Result{
		MaxMomentKNM:      M,
		SectionModulusMM3: W,
		StressMPa:         stress,
		DeflectionMM:      defl,
		DeflectionLimitMM: deflLimit,
		OKStress:          stress <= in.FyMPa,
		OKDeflection:      defl <= deflLimit,
		Notes:             notes,
	}, nil
}
