package engine

import "fmt"

// Errors maps input field names to a single user-visible message each.
// An empty map means the input passed validation.
type Errors map[string]string

func (e Errors) OK() bool { return len(e) == 0 }

// Validation collects field-level constraint failures for one submission.
// Per-field checks record immediately; Refine rules are held back and only
// evaluated once every per-field check has passed, so cross-field rules never
// fire against values that are individually invalid.
type Validation struct {
	errs    Errors
	refines []refine
}

type refine struct {
	field string
	rule  func() bool
	msg   string
}

func NewValidation() *Validation {
	return &Validation{errs: Errors{}}
}

func (v *Validation) fail(field, msg string) {
	if _, dup := v.errs[field]; !dup {
		v.errs[field] = msg
	}
}

func (v *Validation) Require(field string, ok bool, msg string) {
	if !ok {
		v.fail(field, msg)
	}
}

func (v *Validation) Positive(field string, val float64) {
	if val <= 0 {
		v.fail(field, "must be greater than zero")
	}
}

func (v *Validation) NonNegative(field string, val float64) {
	if val < 0 {
		v.fail(field, "must not be negative")
	}
}

func (v *Validation) Range(field string, val, lo, hi float64) {
	if val < lo || val > hi {
		v.fail(field, fmt.Sprintf("must be between %g and %g", lo, hi))
	}
}

func (v *Validation) IntMin(field string, val, min int) {
	if val < min {
		v.fail(field, fmt.Sprintf("must be at least %d", min))
	}
}

func (v *Validation) OneOf(field, val string, allowed ...string) {
	for _, a := range allowed {
		if val == a {
			return
		}
	}
	v.fail(field, fmt.Sprintf("must be one of %v", allowed))
}

// Refine registers a cross-field rule reported against field. Rules run in
// registration order when Errors is called, and only if no per-field check
// failed.
func (v *Validation) Refine(field string, rule func() bool, msg string) {
	v.refines = append(v.refines, refine{field: field, rule: rule, msg: msg})
}

func (v *Validation) Errors() Errors {
	if len(v.errs) == 0 {
		for _, r := range v.refines {
			if !r.rule() {
				v.fail(r.field, r.msg)
			}
		}
	}
	return v.errs
}

// FieldError reports a failure discovered during compute that is still
// attributable to one input field, e.g. a market price no volatility in the
// search bracket can reproduce. It is the only error a Calculate function may
// return for input that already passed validation.
type FieldError struct {
	Field   string
	Message string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}
