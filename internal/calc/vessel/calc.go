package vessel

import (
	"megacalc/internal/engine"
)

type Shape string

const (
	Cylindrical Shape = "cylindrical"
	Spherical   Shape = "spherical"
)

type Input struct {
	Shape                Shape   `json:"shape"`
	DesignPressureMPa    float64 `json:"design_pressure_mpa"`
	InnerRadiusMM        float64 `json:"inner_radius_mm"`
	AllowableStressMPa   float64 `json:"allowable_stress_mpa"`
	JointEfficiency      float64 `json:"joint_efficiency"`
	CorrosionAllowanceMM float64 `json:"corrosion_allowance_mm"`
}

type Result struct {
	RequiredThicknessMM float64 `json:"required_thickness_mm"`
	WithCorrosionMM     float64 `json:"with_corrosion_mm"`
	Notes               string  `json:"notes"`
}

func (in Input) Validate() engine.Errors {
	v := engine.NewValidation()
	v.OneOf("shape", string(in.Shape), string(Cylindrical), string(Spherical))
	v.Positive("design_pressure_mpa", in.DesignPressureMPa)
	v.Positive("inner_radius_mm", in.InnerRadiusMM)
	v.Positive("allowable_stress_mpa", in.AllowableStressMPa)
	if in.JointEfficiency != 0 {
		v.Range("joint_efficiency", in.JointEfficiency, 0.1, 1.0)
	}
	v.NonNegative("corrosion_allowance_mm", in.CorrosionAllowanceMM)
	// Thin-wall formulas blow up when pressure approaches the stress term.
	v.Refine("design_pressure_mpa", func() bool {
		E := in.JointEfficiency
		if E == 0 {
			E = 1
		}
		if in.Shape == Spherical {
			return in.DesignPressureMPa < 2*in.AllowableStressMPa*E/0.2
		}
		return in.DesignPressureMPa < in.AllowableStressMPa*E/0.6
	}, "pressure too high for thin-wall design at this allowable stress")
	return v.Errors()
}

func Calculate(in Input) (Result, error) {
	E := in.JointEfficiency
	if E == 0 {
		E = 1
	}

	// ASME thin-wall shell thickness.
	var t float64
	notes := "Cylindrical shell, circumferential stress governs."
	switch in.Shape {
	case Spherical:
		t = in.DesignPressureMPa * in.InnerRadiusMM /
			(2*in.AllowableStressMPa*E - 0.2*in.DesignPressureMPa)
		notes = "Spherical shell."
	default:
		t = in.DesignPressureMPa * in.InnerRadiusMM /
			(in.AllowableStressMPa*E - 0.6*in.DesignPressureMPa)
	}

	return Result{
		RequiredThicknessMM: t,
		WithCorrosionMM:     t + in.CorrosionAllowanceMM,
		Notes:               notes,
	}, nil
}
