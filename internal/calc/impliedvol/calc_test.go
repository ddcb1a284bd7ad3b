package impliedvol

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"megacalc/internal/engine"
)

func atTheMoney(price float64) Input {
	return Input{
		OptionType:        "call",
		SpotPrice:         100,
		StrikePrice:       100,
		TimeToExpiryYears: 1,
		RiskFreeRate:      0.05,
		MarketPrice:       price,
	}
}

func TestCalculate_RecoversKnownVolatility(t *testing.T) {
	// Black-Scholes call at sigma=0.2: S=100, K=100, T=1, r=0.05 -> ~10.4506.
	in := atTheMoney(10.4506)
	res, err := Calculate(in)
	require.NoError(t, err)
	assert.InDelta(t, 0.2, res.ImpliedVolatility, 1e-4)
	assert.LessOrEqual(t, res.Iterations, 100)
	assert.InDelta(t, in.MarketPrice, res.PriceAtSolution, tolerance)
}

func TestCalculate_RoundTripsGeneratedPrices(t *testing.T) {
	for _, sigma := range []float64{0.05, 0.2, 0.8, 2.5} {
		in := atTheMoney(1) // placeholder price, replaced below
		in.MarketPrice = in.price(sigma)
		res, err := Calculate(in)
		require.NoError(t, err, "sigma %v", sigma)
		assert.InDelta(t, sigma, res.ImpliedVolatility, 1e-4, "sigma %v", sigma)
	}
}

func TestCalculate_Put(t *testing.T) {
	in := atTheMoney(0)
	in.OptionType = "put"
	in.MarketPrice = in.price(0.3)
	res, err := Calculate(in)
	require.NoError(t, err)
	assert.InDelta(t, 0.3, res.ImpliedVolatility, 1e-4)
}

func TestCalculate_NonConvergence(t *testing.T) {
	// A price above the sigma=5 ceiling has no feasible volatility.
	in := atTheMoney(0)
	infeasible := in.price(volHi) + 1
	in.MarketPrice = infeasible

	_, err := Calculate(in)
	require.Error(t, err)
	var fe *engine.FieldError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, "market_price", fe.Field)
	assert.Contains(t, fe.Message, "could not converge")
}

func TestPrice_MonotonicInVolatility(t *testing.T) {
	in := atTheMoney(0)
	prev := -1.0
	for sigma := 0.01; sigma <= 5; sigma += 0.05 {
		p := in.price(sigma)
		assert.Greater(t, p, prev, "price must rise with volatility at sigma %v", sigma)
		prev = p
	}
}

func TestCND(t *testing.T) {
	assert.InDelta(t, 0.5, cnd(0), 1e-6)
	assert.InDelta(t, 0.8413447, cnd(1), 1e-6)
	assert.InDelta(t, 0.0227501, cnd(-2), 1e-6)
	// Symmetry over a spread of points.
	for x := -4.0; x <= 4.0; x += 0.25 {
		assert.InDelta(t, 1.0, cnd(x)+cnd(-x), 1e-7, "x=%v", x)
	}
}

func TestValidate(t *testing.T) {
	in := atTheMoney(10)
	in.OptionType = "swaption"
	errs := in.Validate()
	assert.Contains(t, errs, "option_type")

	in = atTheMoney(-5)
	errs = in.Validate()
	assert.Contains(t, errs, "market_price")
}
