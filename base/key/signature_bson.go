package key

import (
	"go.mongodb.org/mongo-driver/bson/bsontype"
	"go.mongodb.org/mongo-driver/x/bsonx/bsoncore"
)

func (sg Signature) MarshalBSONValue() (bsontype.Type, []byte, error) {
	return bsontype.String, bsoncore.AppendString(nil, sg.String()), nil
}

func (sg *Signature) UnmarshalBSONValue(t bsontype.Type, b []byte) error {
	if t != bsontype.String {
		return InvalidKeyError.Errorf("invalid bson type for Signature, %v", t)
	}

	s, _, ok := bsoncore.ReadString(b)
	if !ok {
		return InvalidKeyError.Errorf("can not read string")
	}

	*sg = NewSignatureFromString(s)

	return nil
}
