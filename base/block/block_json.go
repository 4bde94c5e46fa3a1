package block

import (
	"github.com/spikeekips/signable/base"
	jsonenc "github.com/spikeekips/signable/util/encoder/json"
	"github.com/spikeekips/signable/util/localtime"
	"github.com/spikeekips/signable/util/valuehash"
)

type BlockJSONPacker struct {
	jsonenc.HintedHead
	H  valuehash.Hash   `json:"hash"`
	HT uint64           `json:"height"`
	PR valuehash.Hash   `json:"previous"`
	TX []valuehash.Hash `json:"transactions"`
	CA localtime.Time   `json:"created_at"`
	SG []base.Signature `json:"signatures"`
}

func (bk Block) MarshalJSON() ([]byte, error) {
	return jsonenc.Marshal(BlockJSONPacker{
		HintedHead: jsonenc.NewHintedHead(bk.Hint()),
		H:          bk.Hash(),
		HT:         bk.height,
		PR:         bk.previous,
		TX:         bk.transactions,
		CA:         localtime.NewTime(bk.CreatedAt()),
		SG:         bk.Signatures().Signatures(),
	})
}

type BlockJSONUnpacker struct {
	jsonenc.HintedHead
	H  valuehash.Bytes      `json:"hash"`
	HT uint64               `json:"height"`
	PR valuehash.Bytes      `json:"previous"`
	TX []valuehash.Bytes    `json:"transactions"`
	CA localtime.Time       `json:"created_at"`
	SG []base.BaseSignature `json:"signatures"`
}

func (bk *Block) UnmarshalJSON(b []byte) error {
	var ubk BlockJSONUnpacker
	if err := jsonenc.Unmarshal(b, &ubk); err != nil {
		return err
	}

	return bk.unpack(ubk.H, ubk.HintedHead.H, ubk.HT, ubk.PR, ubk.TX, ubk.CA, ubk.SG)
}
