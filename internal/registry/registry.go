// Package registry is the static slug->calculator table. Every calculator is
// registered here at startup; routing, the catalog listing and keyword search
// all resolve through the same map, so a calculator missing from this table
// does not exist.
package registry

import (
	"net/http"
	"sort"
	"strings"

	"megacalc/internal/calc/age"
	"megacalc/internal/calc/altitude"
	"megacalc/internal/calc/anaerobic"
	"megacalc/internal/calc/beam"
	"megacalc/internal/calc/bowling"
	"megacalc/internal/calc/brine"
	"megacalc/internal/calc/cfat"
	"megacalc/internal/calc/convert"
	"megacalc/internal/calc/epoc"
	"megacalc/internal/calc/glycemic"
	"megacalc/internal/calc/impliedvol"
	"megacalc/internal/calc/met"
	"megacalc/internal/calc/raid"
	"megacalc/internal/calc/savings"
	"megacalc/internal/calc/stress"
	"megacalc/internal/calc/thermo"
	"megacalc/internal/calc/vessel"
	"megacalc/internal/engine"
)

type Descriptor struct {
	Slug     string `json:"slug"`
	Name     string `json:"name"`
	Category string `json:"category"`
	Summary  string `json:"summary"`

	handler http.HandlerFunc
}

var calculators = []Descriptor{
	{
		Slug: "unit-convert", Name: "Unit Converter", Category: "conversion",
		Summary: "Length, area, mass and volume conversions with exact factors.",
		handler: engine.Handler(convert.Calculate),
	},
	{
		Slug: "beam-bending", Name: "Beam Bending", Category: "engineering",
		Summary: "Bending stress and deflection for simply supported and cantilever beams.",
		handler: engine.Handler(beam.Calculate),
	},
	{
		Slug: "pressure-vessel", Name: "Pressure Vessel Thickness", Category: "engineering",
		Summary: "Thin-wall shell thickness for cylindrical and spherical vessels.",
		handler: engine.Handler(vessel.Calculate),
	},
	{
		Slug: "raid-capacity", Name: "RAID Capacity", Category: "technology",
		Summary: "Usable capacity and fault tolerance for RAID 0/1/5/6/10 arrays.",
		handler: engine.Handler(raid.Calculate),
	},
	{
		Slug: "implied-volatility", Name: "Implied Volatility", Category: "finance",
		Summary: "Black-Scholes implied volatility recovered by bisection.",
		handler: engine.Handler(impliedvol.Calculate),
	},
	{
		Slug: "bowling-score", Name: "Bowling Score", Category: "sports",
		Summary: "Frame-by-frame scoring with strike and spare bonuses.",
		handler: engine.Handler(bowling.Calculate),
	},
	{
		Slug: "age", Name: "Age Calculator", Category: "everyday",
		Summary: "Exact age in years, months and days between two dates.",
		handler: engine.Handler(age.Calculate),
	},
	{
		Slug: "glycemic-load", Name: "Glycemic Load", Category: "health",
		Summary: "Glycemic load of a portion with low/medium/high interpretation.",
		handler: engine.Handler(glycemic.Calculate),
	},
	{
		Slug: "savings-rate", Name: "Savings Rate", Category: "finance",
		Summary: "Savings rate as a share of income, banded with guidance.",
		handler: engine.Handler(savings.Calculate),
	},
	{
		Slug: "stress-score", Name: "Stress Score", Category: "health",
		Summary: "Ten-question perceived stress score, banded at 13 and 26.",
		handler: engine.Handler(stress.Calculate),
	},
	{
		Slug: "cfat", Name: "Cash Flow After Tax", Category: "finance",
		Summary: "Rental cash flow after tax from NOI, debt service and depreciation.",
		handler: engine.Handler(cfat.Calculate),
	},
	{
		Slug: "met-calories", Name: "Activity Calories", Category: "health",
		Summary: "Calories burned from MET value, body weight and duration.",
		handler: engine.Handler(met.Calculate),
	},
	{
		Slug: "epoc", Name: "EPOC Afterburn", Category: "health",
		Summary: "Post-exercise calorie afterburn from session intensity and length.",
		handler: engine.Handler(epoc.Calculate),
	},
	{
		Slug: "adaptive-thermogenesis", Name: "Adaptive Thermogenesis", Category: "health",
		Summary: "Metabolic slowdown estimate for prolonged calorie deficits.",
		handler: engine.Handler(thermo.Calculate),
	},
	{
		Slug: "altitude-oxygen", Name: "Altitude Oxygen Need", Category: "health",
		Summary: "Oxygen demand multiplier for exercise at elevation.",
		handler: engine.Handler(altitude.Calculate),
	},
	{
		Slug: "anaerobic-capacity", Name: "Anaerobic Capacity", Category: "sports",
		Summary: "Critical power and W' from two maximal trials.",
		handler: engine.Handler(anaerobic.Calculate),
	},
	{
		Slug: "brine", Name: "Brine Calculator", Category: "everyday",
		Summary: "Salt and sugar weights for a brine of a given strength.",
		handler: engine.Handler(brine.Calculate),
	},
}

var bySlug = make(map[string]Descriptor, len(calculators))

func init() {
	for _, d := range calculators {
		if _, dup := bySlug[d.Slug]; dup {
			panic("duplicate calculator slug: " + d.Slug)
		}
		bySlug[d.Slug] = d
	}
}

// All returns the catalog sorted by category then name.
func All() []Descriptor {
	out := make([]Descriptor, len(calculators))
	copy(out, calculators)
	sort.Slice(out, func(i, j int) bool {
		if out[i].Category != out[j].Category {
			return out[i].Category < out[j].Category
		}
		return out[i].Name < out[j].Name
	})
	return out
}

// Lookup resolves a slug to its descriptor.
func Lookup(slug string) (Descriptor, bool) {
	d, ok := bySlug[slug]
	return d, ok
}

// Handler returns the calculator's HTTP handler.
func (d Descriptor) Handler() http.HandlerFunc { return d.handler }

// Search does a case-insensitive keyword match over slug, name and summary.
func Search(q string) []Descriptor {
	q = strings.ToLower(strings.TrimSpace(q))
	if q == "" {
		return nil
	}
	var out []Descriptor
	for _, d := range All() {
		hay := strings.ToLower(d.Slug + " " + d.Name + " " + d.Summary + " " + d.Category)
		if strings.Contains(hay, q) {
			out = append(out, d)
		}
	}
	return out
}
