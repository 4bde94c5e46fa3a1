package key

import (
	"encoding/json"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/suite"
	"go.mongodb.org/mongo-driver/bson"
)

type testParse struct {
	suite.Suite
}

func (t *testParse) privatekeys() []Privatekey {
	btc, _ := NewBTCPrivatekey()
	ether, _ := NewEtherPrivatekey()
	stellar, _ := NewStellarPrivatekey()

	return []Privatekey{btc, ether, stellar}
}

func (t *testParse) TestParse() {
	for _, priv := range t.privatekeys() {
		upriv, err := ParsePrivatekey(priv.String())
		t.NoError(err, "%T", priv)
		t.True(priv.Equal(upriv), "%T", priv)

		upub, err := ParsePublickey(priv.Publickey().String())
		t.NoError(err, "%T", priv)
		t.True(priv.Publickey().Equal(upub), "%T", priv)
	}
}

func (t *testParse) TestWrongKind() {
	priv, _ := NewBTCPrivatekey()

	_, err := ParsePublickey(priv.String())
	t.True(errors.Is(err, InvalidKeyError))
	t.Contains(err.Error(), "not Publickey")

	_, err = ParsePrivatekey(priv.Publickey().String())
	t.Contains(err.Error(), "not Privatekey")
}

func (t *testParse) TestUnknown() {
	_, err := ParseKey("showme~findme-v0.0.1")
	t.True(errors.Is(err, InvalidKeyError))
	t.Contains(err.Error(), "unknown key type")

	_, err = ParseKey("showme")
	t.True(errors.Is(err, InvalidKeyError))
}

func (t *testParse) TestIncompatibleVersion() {
	priv, _ := NewBTCPrivatekey()

	_, err := ParseKey(priv.Raw() + "~btc-priv-v1.0.0")
	t.True(errors.Is(err, InvalidKeyError))
}

func (t *testParse) TestSignatureEncode() {
	priv, _ := NewStellarPrivatekey()
	sig, _ := priv.Sign([]byte("showme"))

	b, err := json.Marshal(sig)
	t.NoError(err)

	var usig Signature
	t.NoError(json.Unmarshal(b, &usig))
	t.True(sig.Equal(usig))

	bb, err := bson.Marshal(bson.M{"s": sig})
	t.NoError(err)

	var m struct {
		S Signature `bson:"s"`
	}
	t.NoError(bson.Unmarshal(bb, &m))
	t.True(sig.Equal(m.S))
}

func TestParse(t *testing.T) {
	suite.Run(t, new(testParse))
}
