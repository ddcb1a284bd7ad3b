package engine

import "math"

// Band is one step of a categorization scale. A value belongs to the band if
// it is below UpTo, or equal to it when Inclusive is set. Boundary semantics
// matter: moving GL=10 from "Low" to "Medium" is a behavior change, so every
// scale spells its boundaries out.
type Band struct {
	UpTo      float64
	Inclusive bool
	Label     string
	Advice    string
}

// Scale is an ordered list of bands ending in a catch-all (UpTo = +Inf).
type Scale []Band

// Classify returns the label and advice for v. The scale is total over the
// reals: the final catch-all band absorbs everything above the last boundary.
func (s Scale) Classify(v float64) (label, advice string) {
	for _, b := range s {
		if v < b.UpTo || (b.Inclusive && v == b.UpTo) {
			return b.Label, b.Advice
		}
	}
	last := s[len(s)-1]
	return last.Label, last.Advice
}

// Open is the upper bound for a scale's catch-all final band.
var Open = math.Inf(1)
