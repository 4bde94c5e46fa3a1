package base

import (
	"go.mongodb.org/mongo-driver/bson"

	"github.com/spikeekips/signable/base/key"
	bsonenc "github.com/spikeekips/signable/util/encoder/bson"
	"github.com/spikeekips/signable/util/hint"
)

func (sg BaseSignature) MarshalBSON() ([]byte, error) {
	var signer string
	if sg.signer != nil {
		signer = sg.signer.String()
	}

	return bsonenc.Marshal(bsonenc.MergeBSONM(
		bsonenc.NewHintedDoc(sg.Hint()),
		bson.M{
			"signer":    signer,
			"signature": sg.signedHash,
		},
	))
}

type BaseSignatureBSONUnpacker struct {
	HT hint.Hint     `bson:"_hint"`
	SN string        `bson:"signer"`
	SG key.Signature `bson:"signature"`
}

func (sg *BaseSignature) UnmarshalBSON(b []byte) error {
	var usg BaseSignatureBSONUnpacker
	if err := bsonenc.Unmarshal(b, &usg); err != nil {
		return err
	}

	return sg.unpack(usg.HT, usg.SN, usg.SG)
}
