package impliedvol

import (
	"math"

	"megacalc/internal/engine"
)

const (
	volLo         = 0.0
	volHi         = 5.0 // 500% annualized, upper end of the search bracket
	tolerance     = 1e-5
	maxIterations = 100
)

type Input struct {
	OptionType        string  `json:"option_type"` // call or put
	SpotPrice         float64 `json:"spot_price"`
	StrikePrice       float64 `json:"strike_price"`
	TimeToExpiryYears float64 `json:"time_to_expiry_years"`
	RiskFreeRate      float64 `json:"risk_free_rate"`
	MarketPrice       float64 `json:"market_price"`
}

type Result struct {
	ImpliedVolatility float64 `json:"implied_volatility"`
	PriceAtSolution   float64 `json:"price_at_solution"`
	Iterations        int     `json:"iterations"`
}

func (in Input) Validate() engine.Errors {
	v := engine.NewValidation()
	v.OneOf("option_type", in.OptionType, "call", "put")
	v.Positive("spot_price", in.SpotPrice)
	v.Positive("strike_price", in.StrikePrice)
	v.Positive("time_to_expiry_years", in.TimeToExpiryYears)
	v.Positive("market_price", in.MarketPrice)
	v.Range("risk_free_rate", in.RiskFreeRate, -0.5, 1)
	return v.Errors()
}

// Calculate recovers the volatility that reproduces the observed market price
// by bisection over [0, 5]. Black-Scholes price is monotonic in volatility,
// so the bracket either contains the answer or the price is infeasible; an
// exhausted iteration budget is reported as a field error, never as a number.
func Calculate(in Input) (Result, error) {
	lo, hi := volLo, volHi
	for i := 1; i <= maxIterations; i++ {
		mid := (lo + hi) / 2
		p := in.price(mid)
		diff := p - in.MarketPrice
		if math.Abs(diff) < tolerance {
			return Result{ImpliedVolatility: mid, PriceAtSolution: p, Iterations: i}, nil
		}
		if diff > 0 {
			hi = mid
		} else {
			lo = mid
		}
	}
	return Result{}, &engine.FieldError{
		Field:   "market_price",
		Message: "could not converge: no volatility in [0%, 500%] reproduces this price",
	}
}

func (in Input) price(sigma float64) float64 {
	if sigma < 1e-9 {
		sigma = 1e-9
	}
	S, K, T, r := in.SpotPrice, in.StrikePrice, in.TimeToExpiryYears, in.RiskFreeRate
	d1 := (math.Log(S/K) + (r+sigma*sigma/2)*T) / (sigma * math.Sqrt(T))
	d2 := d1 - sigma*math.Sqrt(T)
	if in.OptionType == "put" {
		return K*math.Exp(-r*T)*cnd(-d2) - S*cnd(-d1)
	}
	return S*cnd(d1) - K*math.Exp(-r*T)*cnd(d2)
}

// cnd is the Abramowitz & Stegun polynomial approximation of the standard
// normal CDF (formula 26.2.17, |error| < 7.5e-8).
func cnd(x float64) float64 {
	const (
		a1 = 0.31938153
		a2 = -0.356563782
		a3 = 1.781477937
		a4 = -1.821255978
		a5 = 1.330274429
	)
	k := 1.0 / (1.0 + 0.2316419*math.Abs(x))
	poly := k * (a1 + k*(a2+k*(a3+k*(a4+k*a5))))
	w := 1.0 - math.Exp(-x*x/2)/math.Sqrt(2*math.Pi)*poly
	if x < 0 {
		return 1.0 - w
	}
	return w
}
