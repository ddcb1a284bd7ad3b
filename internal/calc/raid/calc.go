package raid

import (
	"fmt"

	"megacalc/internal/engine"
)

type Level string

const (
	Raid0  Level = "0"
	Raid1  Level = "1"
	Raid5  Level = "5"
	Raid6  Level = "6"
	Raid10 Level = "10"
)

// minDisks is the smallest array each level can be built from.
var minDisks = map[Level]int{
	Raid0:  2,
	Raid1:  2,
	Raid5:  3,
	Raid6:  4,
	Raid10: 4,
}

type Input struct {
	Level      Level   `json:"level"`
	DiskCount  int     `json:"disk_count"`
	DiskSizeTB float64 `json:"disk_size_tb"`
}

type Result struct {
	UsableTB       float64 `json:"usable_tb"`
	RawTB          float64 `json:"raw_tb"`
	EfficiencyPct  float64 `json:"efficiency_pct"`
	FaultTolerance int     `json:"fault_tolerance"` // guaranteed survivable disk failures
	Notes          string  `json:"notes"`
}

func (in Input) Validate() engine.Errors {
	v := engine.NewValidation()
	v.OneOf("level", string(in.Level),
		string(Raid0), string(Raid1), string(Raid5), string(Raid6), string(Raid10))
	v.Positive("disk_size_tb", in.DiskSizeTB)
	v.IntMin("disk_count", in.DiskCount, 1)
	v.Refine("disk_count", func() bool { return in.DiskCount >= minDisks[in.Level] },
		fmt.Sprintf("RAID %s needs at least %d disks", in.Level, minDisks[in.Level]))
	v.Refine("disk_count", func() bool {
		return in.Level != Raid10 || in.DiskCount%2 == 0
	}, "RAID 10 needs an even number of disks")
	return v.Errors()
}

func Calculate(in Input) (Result, error) {
	n := float64(in.DiskCount)
	s := in.DiskSizeTB
	raw := n * s

	var usable float64
	var tolerance int
	var notes string
	switch in.Level {
	case Raid0:
		usable = n * s
		tolerance = 0
		notes = "Striping only, no redundancy."
	case Raid1:
		usable = s
		tolerance = in.DiskCount - 1
		notes = "Full mirror, capacity of a single disk."
	case Raid5:
		usable = (n - 1) * s
		tolerance = 1
		notes = "Single distributed parity."
	case Raid6:
		usable = (n - 2) * s
		tolerance = 2
		notes = "Double distributed parity."
	case Raid10:
		usable = n / 2 * s
		tolerance = 1
		notes = "Striped mirrors; one failure per mirror pair is survivable."
	}

	return Result{
		UsableTB:       usable,
		RawTB:          raw,
		EfficiencyPct:  usable / raw * 100,
		FaultTolerance: tolerance,
		Notes:          notes,
	}, nil
}
