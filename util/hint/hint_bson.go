package hint

import (
	"go.mongodb.org/mongo-driver/bson/bsontype"
	"go.mongodb.org/mongo-driver/x/bsonx/bsoncore"
)

func (ht Hint) MarshalBSONValue() (bsontype.Type, []byte, error) {
	return bsontype.String, bsoncore.AppendString(nil, ht.String()), nil
}

func (ht *Hint) UnmarshalBSONValue(t bsontype.Type, b []byte) error {
	if t != bsontype.String {
		return InvalidHintError.Errorf("invalid bson type for Hint, %v", t)
	}

	s, _, ok := bsoncore.ReadString(b)
	if !ok {
		return InvalidHintError.Errorf("can not read string")
	}

	return ht.UnmarshalText([]byte(s))
}
