package convert

import (
	"sort"

	"megacalc/internal/engine"
)

// Every unit carries a factor to its category base (metre, hectare, kilogram,
// litre). Factors are the documented conversion constants and must stay as
// written; converting through the base keeps every pair round-trip exact up
// to float rounding.
type unit struct {
	category string
	toBase   float64
}

var units = map[string]unit{
	// length, base metre
	"m":  {"length", 1},
	"km": {"length", 1000},
	"cm": {"length", 0.01},
	"mm": {"length", 0.001},
	"mi": {"length", 1609.344},
	"yd": {"length", 0.9144},
	"ft": {"length", 0.3048},
	"in": {"length", 0.0254},

	// area, base hectare
	"ha":   {"area", 1},
	"acre": {"area", 0.404686},
	"m2":   {"area", 0.0001},
	"km2":  {"area", 100},
	"ft2":  {"area", 9.290304e-6},

	// mass, base kilogram
	"kg":    {"mass", 1},
	"g":     {"mass", 0.001},
	"t":     {"mass", 1000},
	"lb":    {"mass", 0.45359237},
	"oz":    {"mass", 0.028349523125},
	"stone": {"mass", 6.35029},

	// volume, base litre
	"l":     {"volume", 1},
	"ml":    {"volume", 0.001},
	"gal":   {"volume", 3.785411784},
	"qt":    {"volume", 0.946352946},
	"cup":   {"volume", 0.2365882365},
	"fl_oz": {"volume", 0.0295735295625},
}

type Input struct {
	Value float64 `json:"value"`
	From  string  `json:"from"`
	To    string  `json:"to"`
}

type Result struct {
	Value    float64 `json:"value"`
	From     string  `json:"from"`
	To       string  `json:"to"`
	Factor   float64 `json:"factor"`
	Category string  `json:"category"`
}

func (in Input) Validate() engine.Errors {
	v := engine.NewValidation()
	from, fromOK := units[in.From]
	to, toOK := units[in.To]
	v.Require("from", fromOK, "unknown unit")
	v.Require("to", toOK, "unknown unit")
	v.Refine("to", func() bool { return from.category == to.category },
		"units belong to different categories")
	return v.Errors()
}

func Calculate(in Input) (Result, error) {
	from := units[in.From]
	to := units[in.To]
	factor := from.toBase / to.toBase
	return Result{
		Value:    in.Value * factor,
		From:     in.From,
		To:       in.To,
		Factor:   factor,
		Category: from.category,
	}, nil
}

// Units lists the known unit symbols for one category, sorted.
func Units(category string) []string {
	var out []string
	for sym, u := range units {
		if u.category == category {
			out = append(out, sym)
		}
	}
	sort.Strings(out)
	return out
}
