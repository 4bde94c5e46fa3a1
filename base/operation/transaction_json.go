package operation

import (
	"github.com/spikeekips/signable/base"
	jsonenc "github.com/spikeekips/signable/util/encoder/json"
	"github.com/spikeekips/signable/util/localtime"
	"github.com/spikeekips/signable/util/valuehash"
)

type TransactionJSONPacker struct {
	jsonenc.HintedHead
	H  valuehash.Hash   `json:"hash"`
	CR string           `json:"creator"`
	QU uint32           `json:"quorum"`
	CM []Command        `json:"commands"`
	CA localtime.Time   `json:"created_at"`
	SG []base.Signature `json:"signatures"`
}

func (tx Transaction) MarshalJSON() ([]byte, error) {
	return jsonenc.Marshal(TransactionJSONPacker{
		HintedHead: jsonenc.NewHintedHead(tx.Hint()),
		H:          tx.Hash(),
		CR:         tx.creator,
		QU:         tx.quorum,
		CM:         tx.commands,
		CA:         localtime.NewTime(tx.CreatedAt()),
		SG:         tx.Signatures().Signatures(),
	})
}

type TransactionJSONUnpacker struct {
	jsonenc.HintedHead
	H  valuehash.Bytes      `json:"hash"`
	CR string               `json:"creator"`
	QU uint32               `json:"quorum"`
	CM []Command            `json:"commands"`
	CA localtime.Time       `json:"created_at"`
	SG []base.BaseSignature `json:"signatures"`
}

func (tx *Transaction) UnmarshalJSON(b []byte) error {
	var utx TransactionJSONUnpacker
	if err := jsonenc.Unmarshal(b, &utx); err != nil {
		return err
	}

	return tx.unpack(utx.H, utx.HintedHead.H, utx.CR, utx.QU, utx.CM, utx.CA, utx.SG)
}
