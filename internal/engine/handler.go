package engine

import (
	"encoding/json"
	"errors"
	"net/http"
)

// Validatable is the input side of the calculator contract: every calculator
// input knows how to check its own declared constraints.
type Validatable interface {
	Validate() Errors
}

type errorBody struct {
	Errors Errors `json:"errors"`
}

// Handler wraps a pure Calculate function in the JSON plumbing shared by
// every calculator endpoint: decode, validate, compute, encode. Compute is
// never invoked on input that failed validation.
func Handler[In Validatable, Out any](compute func(In) (Out, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in In
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			http.Error(w, "Invalid request payload", http.StatusBadRequest)
			return
		}
		if errs := in.Validate(); !errs.OK() {
			WriteFieldErrors(w, errs)
			return
		}
		out, err := compute(in)
		if err != nil {
			var fe *FieldError
			if errors.As(err, &fe) {
				WriteFieldErrors(w, Errors{fe.Field: fe.Message})
				return
			}
			http.Error(w, "Calculation error", http.StatusBadRequest)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(out)
	}
}

// WriteFieldErrors renders a field->message map as a 422 response.
func WriteFieldErrors(w http.ResponseWriter, errs Errors) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnprocessableEntity)
	json.NewEncoder(w).Encode(errorBody{Errors: errs})
}
