package operation

import (
	"go.mongodb.org/mongo-driver/bson"

	"github.com/spikeekips/signable/base"
	bsonenc "github.com/spikeekips/signable/util/encoder/bson"
	"github.com/spikeekips/signable/util/hint"
	"github.com/spikeekips/signable/util/localtime"
	"github.com/spikeekips/signable/util/valuehash"
)

func (tx Transaction) MarshalBSON() ([]byte, error) {
	return bsonenc.Marshal(bsonenc.MergeBSONM(
		bsonenc.NewHintedDoc(tx.Hint()),
		bson.M{
			"hash":       tx.Hash(),
			"creator":    tx.creator,
			"quorum":     tx.quorum,
			"commands":   tx.commands,
			"created_at": localtime.NewTime(tx.CreatedAt()),
			"signatures": tx.Signatures().Signatures(),
		},
	))
}

type TransactionBSONUnpacker struct {
	HT hint.Hint            `bson:"_hint"`
	H  valuehash.Bytes      `bson:"hash"`
	CR string               `bson:"creator"`
	QU uint32               `bson:"quorum"`
	CM []Command            `bson:"commands"`
	CA localtime.Time       `bson:"created_at"`
	SG []base.BaseSignature `bson:"signatures"`
}

func (tx *Transaction) UnmarshalBSON(b []byte) error {
	var utx TransactionBSONUnpacker
	if err := bsonenc.Unmarshal(b, &utx); err != nil {
		return err
	}

	return tx.unpack(utx.H, utx.HT, utx.CR, utx.QU, utx.CM, utx.CA, utx.SG)
}
