package query

import (
	"github.com/spikeekips/signable/base"
	jsonenc "github.com/spikeekips/signable/util/encoder/json"
	"github.com/spikeekips/signable/util/localtime"
	"github.com/spikeekips/signable/util/valuehash"
)

type QueryJSONPacker struct {
	jsonenc.HintedHead
	H  valuehash.Hash   `json:"hash"`
	CR string           `json:"creator"`
	CO uint64           `json:"counter"`
	NA string           `json:"name"`
	AR []string         `json:"args"`
	CA localtime.Time   `json:"created_at"`
	SG []base.Signature `json:"signatures"`
}

func (qu Query) MarshalJSON() ([]byte, error) {
	return jsonenc.Marshal(QueryJSONPacker{
		HintedHead: jsonenc.NewHintedHead(qu.Hint()),
		H:          qu.Hash(),
		CR:         qu.creator,
		CO:         qu.counter,
		NA:         qu.name,
		AR:         qu.args,
		CA:         localtime.NewTime(qu.CreatedAt()),
		SG:         qu.Signatures().Signatures(),
	})
}

type QueryJSONUnpacker struct {
	jsonenc.HintedHead
	H  valuehash.Bytes      `json:"hash"`
	CR string               `json:"creator"`
	CO uint64               `json:"counter"`
	NA string               `json:"name"`
	AR []string             `json:"args"`
	CA localtime.Time       `json:"created_at"`
	SG []base.BaseSignature `json:"signatures"`
}

func (qu *Query) UnmarshalJSON(b []byte) error {
	var uqu QueryJSONUnpacker
	if err := jsonenc.Unmarshal(b, &uqu); err != nil {
		return err
	}

	return qu.unpack(uqu.H, uqu.HintedHead.H, uqu.CR, uqu.CO, uqu.NA, uqu.AR, uqu.CA, uqu.SG)
}
