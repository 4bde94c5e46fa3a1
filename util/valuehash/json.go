package valuehash

import "github.com/spikeekips/signable/util"

func marshalJSON(h Hash) ([]byte, error) {
	return util.JSON.Marshal(h.String())
}

func (h L32) MarshalText() ([]byte, error) {
	return []byte(h.String()), nil
}

func (h L64) MarshalText() ([]byte, error) {
	return []byte(h.String()), nil
}

func (hs Bytes) MarshalText() ([]byte, error) {
	return []byte(hs.String()), nil
}

func (hs Bytes) MarshalJSON() ([]byte, error) {
	return marshalJSON(hs)
}

func (hs *Bytes) UnmarshalJSON(b []byte) error {
	var s string
	if err := util.JSON.Unmarshal(b, &s); err != nil {
		return err
	}

	*hs = NewBytesFromString(s)

	return nil
}
