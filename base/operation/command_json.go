package operation

import (
	jsonenc "github.com/spikeekips/signable/util/encoder/json"
)

type CommandJSONPacker struct {
	N string   `json:"name"`
	A []string `json:"args"`
}

func (cm Command) MarshalJSON() ([]byte, error) {
	return jsonenc.Marshal(CommandJSONPacker{N: cm.name, A: cm.args})
}

func (cm *Command) UnmarshalJSON(b []byte) error {
	var ucm CommandJSONPacker
	if err := jsonenc.Unmarshal(b, &ucm); err != nil {
		return err
	}

	*cm = NewCommand(ucm.N, ucm.A...)

	return nil
}
