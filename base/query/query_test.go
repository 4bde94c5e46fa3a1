package query

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/suite"
	"github.com/zeebo/blake3"

	"github.com/spikeekips/signable/base"
	"github.com/spikeekips/signable/base/key"
	"github.com/spikeekips/signable/util"
	bsonenc "github.com/spikeekips/signable/util/encoder/bson"
	jsonenc "github.com/spikeekips/signable/util/encoder/json"
	"github.com/spikeekips/signable/util/isvalid"
	"github.com/spikeekips/signable/util/localtime"
)

type testQuery struct {
	suite.Suite
	networkID base.NetworkID
}

func (t *testQuery) SetupSuite() {
	t.networkID = base.NetworkID(util.UUID().Bytes())
}

func (t *testQuery) newQuery(counter uint64) Query {
	qu, err := NewQuery("admin@test", counter, GetAccountAssetsQuery, []string{"admin@test", "coin#test"}, localtime.UTCNow())
	t.NoError(err)

	return qu
}

func (t *testQuery) TestNew() {
	qu := t.newQuery(1)

	t.Implements((*base.Signable)(nil), qu)
	t.Equal("admin@test", qu.Creator())
	t.Equal(uint64(1), qu.Counter())
	t.Equal(GetAccountAssetsQuery, qu.Name())
	t.Equal([]string{"admin@test", "coin#test"}, qu.Args())

	b, err := qu.payload(qu.CreatedAt())
	t.NoError(err)

	expected := blake3.Sum256(b)
	t.Equal(expected[:], qu.Hash().Bytes())
}

func (t *testQuery) TestNewInvalid() {
	_, err := NewQuery("admin@test", 1, "showme", nil, localtime.UTCNow())
	t.True(errors.Is(err, isvalid.InvalidError))
	t.Contains(err.Error(), "unknown query")

	_, err = NewQuery("admin@test", 0, GetRolesQuery, nil, localtime.UTCNow())
	t.Contains(err.Error(), "zero counter")

	_, err = NewQuery("admin", 1, GetRolesQuery, nil, localtime.UTCNow())
	t.Contains(err.Error(), "invalid account id")
}

func (t *testQuery) TestCounter() {
	createdAt := localtime.UTCNow()

	a, _ := NewQuery("admin@test", 1, GetRolesQuery, nil, createdAt)
	b, _ := NewQuery("admin@test", 2, GetRolesQuery, nil, createdAt)
	t.False(a.Hash().Equal(b.Hash()))
}

func (t *testQuery) TestSign() {
	qu := t.newQuery(1)
	h := qu.Hash()

	priv, _ := key.NewEtherPrivatekey()

	added, err := base.SignSignable(qu, priv, t.networkID)
	t.NoError(err)
	t.True(added)

	// NOTE ether signature is deterministic
	added, err = base.SignSignable(qu, priv, t.networkID)
	t.NoError(err)
	t.False(added)

	t.Equal(1, qu.Signatures().Len())
	t.True(h.Equal(qu.Hash()))
	t.NoError(qu.IsValid(t.networkID))
}

func (t *testQuery) TestEncode() {
	qu := t.newQuery(3)

	priv, _ := key.NewBTCPrivatekey()
	_, err := base.SignSignable(qu, priv, t.networkID)
	t.NoError(err)

	b, err := jsonenc.Marshal(qu)
	t.NoError(err)

	var uqu Query
	t.NoError(jsonenc.Unmarshal(b, &uqu))
	t.compare(qu, uqu)

	b, err = bsonenc.Marshal(qu)
	t.NoError(err)

	uqu = Query{}
	t.NoError(bsonenc.Unmarshal(b, &uqu))
	t.compare(qu, uqu)
}

func (t *testQuery) compare(a, b Query) {
	t.True(a.Hash().Equal(b.Hash()))
	t.Equal(a.Creator(), b.Creator())
	t.Equal(a.Counter(), b.Counter())
	t.Equal(a.Name(), b.Name())
	t.Equal(a.Args(), b.Args())
	t.True(localtime.Equal(a.CreatedAt(), b.CreatedAt()))
	t.True(a.Signatures().Equal(b.Signatures()))
	t.NoError(b.IsValid(t.networkID))
}

func TestQuery(t *testing.T) {
	suite.Run(t, new(testQuery))
}
