package cfat

import (
	"megacalc/internal/engine"
)

type Input struct {
	NOIAnnual         float64 `json:"noi_annual"`
	AnnualDebtService float64 `json:"annual_debt_service"`
	InterestPortion   float64 `json:"interest_portion"`
	Depreciation      float64 `json:"depreciation"`
	TaxRatePct        float64 `json:"tax_rate_pct"`
}

type Result struct {
	TaxableIncome     float64 `json:"taxable_income"`
	TaxLiability      float64 `json:"tax_liability"`
	CashFlowBeforeTax float64 `json:"cash_flow_before_tax"`
	CashFlowAfterTax  float64 `json:"cash_flow_after_tax"`
	Notes             string  `json:"notes"`
}

func (in Input) Validate() engine.Errors {
	v := engine.NewValidation()
	v.Positive("noi_annual", in.NOIAnnual)
	v.NonNegative("annual_debt_service", in.AnnualDebtService)
	v.NonNegative("interest_portion", in.InterestPortion)
	v.NonNegative("depreciation", in.Depreciation)
	v.Range("tax_rate_pct", in.TaxRatePct, 0, 100)
	v.Refine("interest_portion", func() bool { return in.InterestPortion <= in.AnnualDebtService },
		"cannot exceed the annual debt service")
	return v.Errors()
}

// Calculate derives cash flow after tax the way the IRS sees a rental:
// depreciation and interest are deductible, principal is not. A negative
// taxable income is kept as-is — the resulting negative liability is the
// paper-loss tax shield.
func Calculate(in Input) (Result, error) {
	taxable := in.NOIAnnual - in.InterestPortion - in.Depreciation
	tax := taxable * in.TaxRatePct / 100.0
	cfbt := in.NOIAnnual - in.AnnualDebtService
	return Result{
		TaxableIncome:     taxable,
		TaxLiability:      tax,
		CashFlowBeforeTax: cfbt,
		CashFlowAfterTax:  cfbt - tax,
		Notes:             "Straight-line view; consult a tax professional for filings.",
	}, nil
}
