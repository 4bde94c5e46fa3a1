package localtime

import (
	"go.mongodb.org/mongo-driver/bson/bsontype"
	"go.mongodb.org/mongo-driver/x/bsonx/bsoncore"
	"golang.org/x/xerrors"

	"github.com/spikeekips/signable/util"
)

func (t Time) MarshalText() ([]byte, error) {
	return []byte(t.Normalize().RFC3339()), nil
}

func (t *Time) UnmarshalText(b []byte) error {
	s, err := ParseRFC3339(string(b))
	if err != nil {
		return err
	}

	t.Time = Normalize(s)

	return nil
}

func (t Time) MarshalJSON() ([]byte, error) {
	return util.JSON.Marshal(t.Normalize().RFC3339())
}

func (t *Time) UnmarshalJSON(b []byte) error {
	var s string
	if err := util.JSON.Unmarshal(b, &s); err != nil {
		return err
	}

	return t.UnmarshalText([]byte(s))
}

func (t Time) MarshalBSONValue() (bsontype.Type, []byte, error) {
	return bsontype.DateTime, bsoncore.AppendTime(nil, t.Normalize().Time), nil
}

func (t *Time) UnmarshalBSONValue(bt bsontype.Type, b []byte) error {
	if bt != bsontype.DateTime {
		return xerrors.Errorf("invalid bson type for Time, %v", bt)
	}

	i, _, ok := bsoncore.ReadTime(b)
	if !ok {
		return xerrors.Errorf("can not read time")
	}

	t.Time = Normalize(i)

	return nil
}
