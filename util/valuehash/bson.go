package valuehash

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
	"go.mongodb.org/mongo-driver/x/bsonx/bsoncore"
)

func marshalBSONValue(h Hash) (bsontype.Type, []byte, error) {
	return bsontype.String, bsoncore.AppendString(nil, h.String()), nil
}

func (h L32) MarshalBSONValue() (bsontype.Type, []byte, error) {
	return marshalBSONValue(h)
}

func (h L64) MarshalBSONValue() (bsontype.Type, []byte, error) {
	return marshalBSONValue(h)
}

func (hs Bytes) MarshalBSONValue() (bsontype.Type, []byte, error) {
	return marshalBSONValue(hs)
}

func (hs *Bytes) UnmarshalBSONValue(t bsontype.Type, b []byte) error {
	if t != bsontype.String {
		return InvalidHashError.Errorf("invalid marshaled type for Hash, %v", t)
	}

	s, ok := (bson.RawValue{Type: t, Value: b}).StringValueOK()
	if !ok {
		return InvalidHashError.Errorf("invalid encoded input for Hash")
	}

	*hs = NewBytesFromString(s)

	return nil
}
