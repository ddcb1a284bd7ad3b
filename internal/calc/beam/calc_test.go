package beam

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func baseInput() Input {
	return Input{
		Support: SimplySupported,
		SpanM:   4,
		UDLKNM:  10,
		WidthM:  0.2,
		HeightM: 0.4,
	}
}

func TestCalculate_SimplySupported(t *testing.T) {
	in := baseInput()
	require.True(t, in.Validate().OK())
	res, err := Calculate(in)
	require.NoError(t, err)

	// M = wL^2/8 = 10*16/8 = 20 kNm
	assert.InDelta(t, 20, res.MaxMomentKNM, 1e-9)
	// W = 200*400^2/6 mm^3
	assert.InDelta(t, 200*400*400/6.0, res.SectionModulusMM3, 1e-6)
	assert.InDelta(t, 20e6/(200*400*400/6.0), res.StressMPa, 1e-9)
	assert.True(t, res.OKStress)
}

func TestCalculate_CantileverBranch(t *testing.T) {
	ss := baseInput()
	cant := baseInput()
	cant.Support = Cantilever

	ssRes, err := Calculate(ss)
	require.NoError(t, err)
	cantRes, err := Calculate(cant)
	require.NoError(t, err)

	// Same load and span: cantilever root moment is 4x the midspan moment.
	assert.InDelta(t, 4*ssRes.MaxMomentKNM, cantRes.MaxMomentKNM, 1e-9)
	assert.Greater(t, cantRes.DeflectionMM, ssRes.DeflectionMM)
}

func TestCalculate_MaterialDefaults(t *testing.T) {
	in := baseInput()
	in.Material = "timber"
	res, err := Calculate(in)
	require.NoError(t, err)
	// Timber defaults: E=11 GPa, fy=24 MPa -> softer and weaker than steel.
	steel := baseInput()
	steelRes, err := Calculate(steel)
	require.NoError(t, err)
	assert.Greater(t, res.DeflectionMM, steelRes.DeflectionMM)
}

func TestValidate(t *testing.T) {
	in := baseInput()
	in.Support = "fixed_fixed"
	assert.Contains(t, in.Validate(), "support")

	in = baseInput()
	in.SpanM = 0
	assert.Contains(t, in.Validate(), "span_m")

	in = baseInput()
	in.HeightM = -0.1
	assert.Contains(t, in.Validate(), "height_m")
}
