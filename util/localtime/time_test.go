package localtime

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/goleak"
)

type testTime struct {
	suite.Suite
}

func (t *testTime) TestNormalize() {
	tn := time.Now()

	n := Normalize(tn)

	t.Equal(time.UTC, n.Location())
	t.Equal((tn.Nanosecond()/1000000)*1000000, n.Nanosecond())
	t.True(Equal(tn, n))
}

func (t *testTime) TestUTCNow() {
	n := UTCNow()
	t.Equal(time.UTC, n.Location())
	t.Equal(0, n.Nanosecond()%1000000)
}

func (t *testTime) TestJSON() {
	n := NewTime(time.Now())

	b, err := json.Marshal(n)
	t.NoError(err)

	var un Time
	t.NoError(json.Unmarshal(b, &un))
	t.True(Equal(n.Time, un.Time))
}

func (t *testTime) TestBSON() {
	n := NewTime(time.Now())

	b, err := bson.Marshal(bson.M{"t": n})
	t.NoError(err)

	var m struct {
		T Time `bson:"t"`
	}
	t.NoError(bson.Unmarshal(b, &m))
	t.True(Equal(n.Time, m.T.Time))
}

func TestTime(t *testing.T) {
	defer goleak.VerifyNone(t)

	suite.Run(t, new(testTime))
}
