package key

import (
	"github.com/spikeekips/signable/util"
)

func (sg Signature) MarshalText() ([]byte, error) {
	return []byte(sg.String()), nil
}

func (sg *Signature) UnmarshalText(b []byte) error {
	*sg = NewSignatureFromString(string(b))

	return nil
}

func (sg Signature) MarshalJSON() ([]byte, error) {
	return util.JSON.Marshal(sg.String())
}

func (sg *Signature) UnmarshalJSON(b []byte) error {
	var s string
	if err := util.JSON.Unmarshal(b, &s); err != nil {
		return err
	}

	*sg = NewSignatureFromString(s)

	return nil
}
