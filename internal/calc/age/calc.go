package age

import (
	"time"

	"megacalc/internal/engine"
)

const dateLayout = "2006-01-02"

type Input struct {
	DateOfBirth string `json:"date_of_birth"` // YYYY-MM-DD
	AsOf        string `json:"as_of"`         // optional, defaults to today
}

type Result struct {
	Years     int `json:"years"`
	Months    int `json:"months"`
	Days      int `json:"days"`
	TotalDays int `json:"total_days"`
}

func (in Input) Validate() engine.Errors {
	v := engine.NewValidation()
	dob, dobErr := time.Parse(dateLayout, in.DateOfBirth)
	v.Require("date_of_birth", dobErr == nil, "must be a date in YYYY-MM-DD form")
	asOf := time.Now()
	if in.AsOf != "" {
		var err error
		asOf, err = time.Parse(dateLayout, in.AsOf)
		v.Require("as_of", err == nil, "must be a date in YYYY-MM-DD form")
	}
	v.Refine("date_of_birth", func() bool { return !dob.After(asOf) },
		"must not be after the reference date")
	return v.Errors()
}

// Calculate splits the span between the two dates into whole years, remaining
// whole months and remaining days. A negative day remainder borrows the
// length of the month preceding the reference date, so the day count is never
// negative; a negative month remainder borrows a year.
func Calculate(in Input) (Result, error) {
	dob, _ := time.Parse(dateLayout, in.DateOfBirth)
	var asOf time.Time
	if in.AsOf != "" {
		asOf, _ = time.Parse(dateLayout, in.AsOf)
	} else {
		now := time.Now()
		asOf = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	}

	years := asOf.Year() - dob.Year()
	months := int(asOf.Month()) - int(dob.Month())
	days := asOf.Day() - dob.Day()

	if days < 0 {
		months--
		// Count from the monthly anniversary in the month before the
		// reference date. The anniversary clamps to that month's last day
		// when the birth day does not exist in it (31st vs February).
		prevLen := daysInMonth(asOf.Year(), asOf.Month()-1)
		anchor := dob.Day()
		if anchor > prevLen {
			anchor = prevLen
		}
		days = prevLen - anchor + asOf.Day()
	}
	if months < 0 {
		years--
		months += 12
	}

	total := int(asOf.Sub(dob).Hours() / 24)

	return Result{
		Years:     years,
		Months:    months,
		Days:      days,
		TotalDays: total,
	}, nil
}

// daysInMonth handles month zero by normalizing through time.Date, so the
// month before January resolves to the previous December.
func daysInMonth(year int, m time.Month) int {
	return time.Date(year, m+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
