package batch

import (
	"megacalc/internal/calc/convert"
	"megacalc/internal/engine"
)

type ConvertBatchInput struct {
	Items []convert.Input `json:"items"`
}

type ConvertBatchResult struct {
	Results []convert.Result `json:"results"`
}

func (in ConvertBatchInput) Validate() engine.Errors {
	v := engine.NewValidation()
	v.Require("items", len(in.Items) > 0, "no items")
	v.Require("items", len(in.Items) <= 200, "too many items, the limit is 200")
	if errs := v.Errors(); !errs.OK() {
		return errs
	}
	for _, item := range in.Items {
		if errs := item.Validate(); !errs.OK() {
			return errs
		}
	}
	return engine.Errors{}
}

func Calculate(in ConvertBatchInput) (ConvertBatchResult, error) {
	out := ConvertBatchResult{Results: make([]convert.Result, 0, len(in.Items))}
	for _, item := range in.Items {
		res, err := convert.Calculate(item)
		if err != nil {
			return ConvertBatchResult{}, err
		}
		out.Results = append(out.Results, res)
	}
	return out, nil
}
