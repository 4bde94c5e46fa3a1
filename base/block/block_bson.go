package block

import (
	"go.mongodb.org/mongo-driver/bson"

	"github.com/spikeekips/signable/base"
	bsonenc "github.com/spikeekips/signable/util/encoder/bson"
	"github.com/spikeekips/signable/util/hint"
	"github.com/spikeekips/signable/util/localtime"
	"github.com/spikeekips/signable/util/valuehash"
)

func (bk Block) MarshalBSON() ([]byte, error) {
	m := bson.M{
		"hash":         bk.Hash(),
		"height":       bk.height,
		"transactions": bk.transactions,
		"created_at":   localtime.NewTime(bk.CreatedAt()),
		"signatures":   bk.Signatures().Signatures(),
	}

	if bk.previous != nil {
		m["previous"] = bk.previous
	}

	return bsonenc.Marshal(bsonenc.MergeBSONM(bsonenc.NewHintedDoc(bk.Hint()), m))
}

type BlockBSONUnpacker struct {
	HT hint.Hint            `bson:"_hint"`
	H  valuehash.Bytes      `bson:"hash"`
	BH uint64               `bson:"height"`
	PR valuehash.Bytes      `bson:"previous,omitempty"`
	TX []valuehash.Bytes    `bson:"transactions"`
	CA localtime.Time       `bson:"created_at"`
	SG []base.BaseSignature `bson:"signatures"`
}

func (bk *Block) UnmarshalBSON(b []byte) error {
	var ubk BlockBSONUnpacker
	if err := bsonenc.Unmarshal(b, &ubk); err != nil {
		return err
	}

	return bk.unpack(ubk.H, ubk.HT, ubk.BH, ubk.PR, ubk.TX, ubk.CA, ubk.SG)
}
