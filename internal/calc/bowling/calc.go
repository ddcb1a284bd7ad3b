package bowling

import (
	"fmt"

	"megacalc/internal/engine"
)

type Input struct {
	Rolls []int `json:"rolls"`
}

// Frame holds the rolls of one frame and its cumulative score. Score is nil
// while the frame still waits on bonus rolls: an unresolved strike or spare
// has no score yet, which is not the same as scoring zero.
type Frame struct {
	Rolls []int `json:"rolls"`
	Score *int  `json:"score"`
}

type Result struct {
	Frames   []Frame `json:"frames"`
	Total    *int    `json:"total"` // cumulative score of the last resolved frame
	Complete bool    `json:"complete"`
}

func (in Input) Validate() engine.Errors {
	v := engine.NewValidation()
	v.Require("rolls", len(in.Rolls) > 0, "at least one roll is required")
	for i, r := range in.Rolls {
		if r < 0 || r > 10 {
			v.Require("rolls", false, fmt.Sprintf("roll %d must be between 0 and 10", i+1))
			break
		}
	}
	_, serr := splitFrames(in.Rolls)
	v.Refine("rolls", func() bool { return serr == "" }, serr)
	return v.Errors()
}

// splitFrames groups a flat roll sequence into up to ten frames and reports
// the first structural violation. Partial games are legal; the scoring pass
// decides which frames are resolvable.
func splitFrames(rolls []int) ([][]int, string) {
	var frames [][]int
	i := 0
	for frame := 1; frame <= 9 && i < len(rolls); frame++ {
		if rolls[i] == 10 {
			frames = append(frames, rolls[i:i+1])
			i++
			continue
		}
		if i+1 < len(rolls) {
			if rolls[i]+rolls[i+1] > 10 {
				return nil, fmt.Sprintf("frame %d pin count exceeds 10", frame)
			}
			frames = append(frames, rolls[i:i+2])
			i += 2
			continue
		}
		frames = append(frames, rolls[i:i+1])
		i++
	}
	if i >= len(rolls) {
		return frames, ""
	}

	tenth := rolls[i:]
	if len(tenth) > 3 {
		return nil, "too many rolls for a ten-frame game"
	}
	if len(tenth) >= 2 && tenth[0] != 10 && tenth[0]+tenth[1] > 10 {
		return nil, "frame 10 pin count exceeds 10"
	}
	if len(tenth) == 3 {
		if tenth[0] != 10 && tenth[0]+tenth[1] < 10 {
			return nil, "no bonus roll after an open tenth frame"
		}
		if tenth[0] == 10 && tenth[1] != 10 && tenth[1]+tenth[2] > 10 {
			return nil, "frame 10 pin count exceeds 10"
		}
	}
	frames = append(frames, tenth)
	return frames, ""
}

// Calculate runs a single forward pass over the frames, resolving each one as
// soon as its bonus rolls exist. A strike scores 10 plus the next two rolls,
// a spare 10 plus the next one; the tenth frame is the plain sum of its up to
// three rolls. Once one frame is unresolved every later frame stays nil too,
// since scores are cumulative.
func Calculate(in Input) (Result, error) {
	rolls := in.Rolls
	frames, serr := splitFrames(rolls)
	if serr != "" {
		return Result{}, &engine.FieldError{Field: "rolls", Message: serr}
	}

	res := Result{Frames: make([]Frame, len(frames))}
	start := 0
	cum := 0
	resolved := true
	for f, fr := range frames {
		res.Frames[f] = Frame{Rolls: fr}
		base := start
		start += len(fr)
		if !resolved {
			continue
		}

		score, ok := 0, false
		if f == 9 {
			switch {
			case len(fr) == 3:
				score, ok = fr[0]+fr[1]+fr[2], true
			case len(fr) == 2 && fr[0] != 10 && fr[0]+fr[1] < 10:
				score, ok = fr[0]+fr[1], true
			}
		} else {
			switch {
			case fr[0] == 10: // strike
				if base+2 < len(rolls) {
					score, ok = 10+rolls[base+1]+rolls[base+2], true
				}
			case len(fr) == 2 && fr[0]+fr[1] == 10: // spare
				if base+2 < len(rolls) {
					score, ok = 10+rolls[base+2], true
				}
			case len(fr) == 2: // open frame, fixed immediately
				score, ok = fr[0]+fr[1], true
			}
		}

		if !ok {
			resolved = false
			continue
		}
		cum += score
		c := cum
		res.Frames[f].Score = &c
		t := cum
		res.Total = &t
	}

	res.Complete = len(frames) == 10 && res.Frames[9].Score != nil
	return res, nil
}
