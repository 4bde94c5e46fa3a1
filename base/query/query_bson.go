package query

import (
	"go.mongodb.org/mongo-driver/bson"

	"github.com/spikeekips/signable/base"
	bsonenc "github.com/spikeekips/signable/util/encoder/bson"
	"github.com/spikeekips/signable/util/hint"
	"github.com/spikeekips/signable/util/localtime"
	"github.com/spikeekips/signable/util/valuehash"
)

func (qu Query) MarshalBSON() ([]byte, error) {
	return bsonenc.Marshal(bsonenc.MergeBSONM(
		bsonenc.NewHintedDoc(qu.Hint()),
		bson.M{
			"hash":       qu.Hash(),
			"creator":    qu.creator,
			"counter":    qu.counter,
			"name":       qu.name,
			"args":       qu.args,
			"created_at": localtime.NewTime(qu.CreatedAt()),
			"signatures": qu.Signatures().Signatures(),
		},
	))
}

type QueryBSONUnpacker struct {
	HT hint.Hint            `bson:"_hint"`
	H  valuehash.Bytes      `bson:"hash"`
	CR string               `bson:"creator"`
	CO uint64               `bson:"counter"`
	NA string               `bson:"name"`
	AR []string             `bson:"args"`
	CA localtime.Time       `bson:"created_at"`
	SG []base.BaseSignature `bson:"signatures"`
}

func (qu *Query) UnmarshalBSON(b []byte) error {
	var uqu QueryBSONUnpacker
	if err := bsonenc.Unmarshal(b, &uqu); err != nil {
		return err
	}

	return qu.unpack(uqu.H, uqu.HT, uqu.CR, uqu.CO, uqu.NA, uqu.AR, uqu.CA, uqu.SG)
}
