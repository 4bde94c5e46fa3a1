package bsonenc

import (
	"testing"

	"github.com/stretchr/testify/suite"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/spikeekips/signable/util/hint"
)

type testBSON struct {
	suite.Suite
}

func (t *testBSON) TestLoadHint() {
	ht := hint.NewHint("showme", "v0.0.1")

	b, err := Marshal(MergeBSONM(NewHintedDoc(ht), bson.M{"a": "findme"}))
	t.NoError(err)

	uht, err := LoadHint(b)
	t.NoError(err)
	t.True(ht.Equal(uht))

	var m bson.M
	t.NoError(Unmarshal(b, &m))
	t.Equal("findme", m["a"])
}

func TestBSON(t *testing.T) {
	suite.Run(t, new(testBSON))
}
