package operation

import (
	"go.mongodb.org/mongo-driver/bson"

	bsonenc "github.com/spikeekips/signable/util/encoder/bson"
)

func (cm Command) MarshalBSON() ([]byte, error) {
	return bsonenc.Marshal(bson.M{
		"name": cm.name,
		"args": cm.args,
	})
}

type CommandBSONUnpacker struct {
	N string   `bson:"name"`
	A []string `bson:"args"`
}

func (cm *Command) UnmarshalBSON(b []byte) error {
	var ucm CommandBSONUnpacker
	if err := bsonenc.Unmarshal(b, &ucm); err != nil {
		return err
	}

	*cm = NewCommand(ucm.N, ucm.A...)

	return nil
}
