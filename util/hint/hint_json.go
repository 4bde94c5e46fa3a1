package hint

import "github.com/spikeekips/signable/util"

func (ht Hint) MarshalText() ([]byte, error) {
	return []byte(ht.String()), nil
}

func (ht *Hint) UnmarshalText(b []byte) error {
	i, err := ParseHint(string(b))
	if err != nil {
		return err
	}

	*ht = i

	return nil
}

func (hs HintedString) MarshalText() ([]byte, error) {
	return []byte(hs.String()), nil
}

func (hs *HintedString) UnmarshalText(b []byte) error {
	i, err := ParseHintedString(string(b))
	if err != nil {
		return err
	}

	*hs = i

	return nil
}

func (ht Hint) MarshalJSON() ([]byte, error) {
	return util.JSON.Marshal(ht.String())
}

func (ht *Hint) UnmarshalJSON(b []byte) error {
	var s string
	if err := util.JSON.Unmarshal(b, &s); err != nil {
		return err
	}

	return ht.UnmarshalText([]byte(s))
}
