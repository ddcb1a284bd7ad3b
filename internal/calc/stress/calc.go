package stress

import (
	"fmt"

	"megacalc/internal/engine"
)

const questionCount = 10

// Ten items scored 0-4 give a 0-40 total, banded at 13 and 26. Both
// boundaries are inclusive on the lower side: a total of exactly 13 is still
// "Low" and 26 is still "Moderate".
var scale = engine.Scale{
	{UpTo: 13, Inclusive: true, Label: "Low",
		Advice: "Perceived stress is low. Keep whatever routine is working."},
	{UpTo: 26, Inclusive: true, Label: "Moderate",
		Advice: "Moderate stress. Regular sleep, exercise and breaks help most here."},
	{UpTo: engine.Open, Label: "High",
		Advice: "High perceived stress. Consider talking to a professional."},
}

type Input struct {
	Answers []int `json:"answers"` // one 0-4 answer per question
}

type Result struct {
	Score  int    `json:"score"`
	Max    int    `json:"max"`
	Label  string `json:"label"`
	Advice string `json:"advice"`
}

func (in Input) Validate() engine.Errors {
	v := engine.NewValidation()
	v.Require("answers", len(in.Answers) == questionCount,
		fmt.Sprintf("exactly %d answers are required", questionCount))
	for i, a := range in.Answers {
		if a < 0 || a > 4 {
			v.Require("answers", false, fmt.Sprintf("answer %d must be between 0 and 4", i+1))
			break
		}
	}
	return v.Errors()
}

func Calculate(in Input) (Result, error) {
	score := 0
	for _, a := range in.Answers {
		score += a
	}
	label, advice := scale.Classify(float64(score))
	return Result{Score: score, Max: questionCount * 4, Label: label, Advice: advice}, nil
}
