package base

import (
	"github.com/spikeekips/signable/base/key"
	jsonenc "github.com/spikeekips/signable/util/encoder/json"
)

type BaseSignatureJSONPacker struct {
	jsonenc.HintedHead
	SN key.Publickey `json:"signer"`
	SG key.Signature `json:"signature"`
}

func (sg BaseSignature) MarshalJSON() ([]byte, error) {
	return jsonenc.Marshal(BaseSignatureJSONPacker{
		HintedHead: jsonenc.NewHintedHead(sg.Hint()),
		SN:         sg.signer,
		SG:         sg.signedHash,
	})
}

type BaseSignatureJSONUnpacker struct {
	jsonenc.HintedHead
	SN string        `json:"signer"`
	SG key.Signature `json:"signature"`
}

func (sg *BaseSignature) UnmarshalJSON(b []byte) error {
	var usg BaseSignatureJSONUnpacker
	if err := jsonenc.Unmarshal(b, &usg); err != nil {
		return err
	}

	return sg.unpack(usg.H, usg.SN, usg.SG)
}
