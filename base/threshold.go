package base

import (
	"math"

	"github.com/spikeekips/signable/util"
	"github.com/spikeekips/signable/util/isvalid"
)

// Threshold is the number of distinct signers needed among Total signers.
type Threshold struct {
	Total     uint    `json:"total"`
	Threshold uint    `json:"threshold"`
	Percent   float64 `json:"percent"` // NOTE 1.0 ~ 100.0
}

func NewThreshold(total uint, percent float64) (Threshold, error) {
	thr := Threshold{
		Total:     total,
		Threshold: uint(math.Ceil(float64(total) * (percent / 100))),
		Percent:   percent,
	}

	return thr, thr.IsValid(nil)
}

func (thr Threshold) String() string {
	b, _ := util.JSONMarshal(thr)

	return string(b)
}

func (thr Threshold) IsValid([]byte) error {
	if thr.Total < 1 {
		return isvalid.InvalidError.Errorf("0 total")
	}

	switch {
	case thr.Percent < 1:
		return isvalid.InvalidError.Errorf("0 percent: %v", thr.Percent)
	case thr.Percent > 100:
		return isvalid.InvalidError.Errorf("over 100 percent: %v", thr.Percent)
	case thr.Threshold > thr.Total:
		return isvalid.InvalidError.Errorf("Threshold over Total: Threshold=%v Total=%v", thr.Threshold, thr.Total)
	}

	return nil
}
