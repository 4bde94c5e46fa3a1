package jsonenc

import (
	"github.com/spikeekips/signable/util"
	"github.com/spikeekips/signable/util/hint"
)

type HintedHead struct {
	H hint.Hint `json:"_hint"`
}

func NewHintedHead(h hint.Hint) HintedHead {
	return HintedHead{H: h}
}

func Marshal(i interface{}) ([]byte, error) {
	return util.JSON.Marshal(i)
}

func Unmarshal(b []byte, i interface{}) error {
	return util.JSON.Unmarshal(b, i)
}

// LoadHint reads the hint of the encoded object.
func LoadHint(b []byte) (hint.Hint, error) {
	var head HintedHead
	if err := Unmarshal(b, &head); err != nil {
		return hint.Hint{}, err
	}

	return head.H, head.H.IsValid(nil)
}
