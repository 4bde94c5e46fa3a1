package base

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/suite"

	"github.com/spikeekips/signable/base/key"
	bsonenc "github.com/spikeekips/signable/util/encoder/bson"
	jsonenc "github.com/spikeekips/signable/util/encoder/json"
	"github.com/spikeekips/signable/util/isvalid"
)

type testSignature struct {
	suite.Suite
}

func (t *testSignature) newSignature(priv key.Privatekey, b []byte) BaseSignature {
	sig, err := priv.Sign(b)
	t.NoError(err)

	return NewBaseSignature(priv.Publickey(), sig)
}

func (t *testSignature) TestNew() {
	priv, _ := key.NewBTCPrivatekey()
	sg := t.newSignature(priv, []byte("showme"))

	t.NoError(sg.IsValid(nil))
	t.True(priv.Publickey().Equal(sg.Signer()))
	t.Implements((*Signature)(nil), sg)
}

func (t *testSignature) TestIsValid() {
	priv, _ := key.NewBTCPrivatekey()

	sg := NewBaseSignature(nil, key.Signature("findme"))
	t.True(errors.Is(sg.IsValid(nil), isvalid.InvalidError))

	sg = NewBaseSignature(priv.Publickey(), nil)
	t.True(errors.Is(sg.IsValid(nil), isvalid.InvalidError))
}

func (t *testSignature) TestSignedHashIsCopied() {
	priv, _ := key.NewBTCPrivatekey()

	b := key.Signature("findme")
	sg := NewBaseSignature(priv.Publickey(), b)

	b[0] = 'F'
	t.Equal(key.Signature("findme"), sg.SignedHash())
}

func (t *testSignature) TestEqual() {
	a, _ := key.NewBTCPrivatekey()
	b, _ := key.NewBTCPrivatekey()

	sa := t.newSignature(a, []byte("showme"))

	t.True(SignatureEqual(sa, sa))
	t.True(SignatureEqual(sa, NewBaseSignature(a.Publickey(), sa.SignedHash())))
	t.True(SignatureEqual(nil, nil))
	t.False(SignatureEqual(sa, nil))
	t.False(SignatureEqual(nil, sa))

	// NOTE same signer, different signature bytes
	t.False(SignatureEqual(sa, t.newSignature(a, []byte("findme"))))

	// NOTE different signer, same signature bytes
	t.False(SignatureEqual(sa, NewBaseSignature(b.Publickey(), sa.SignedHash())))
}

func (t *testSignature) TestHashKey() {
	a, _ := key.NewBTCPrivatekey()
	b, _ := key.NewBTCPrivatekey()

	sa := t.newSignature(a, []byte("showme"))

	t.Equal(SignatureHashKey(sa), SignatureHashKey(NewBaseSignature(a.Publickey(), sa.SignedHash())))
	t.NotEqual(SignatureHashKey(sa), SignatureHashKey(t.newSignature(a, []byte("findme"))))
	t.NotEqual(SignatureHashKey(sa), SignatureHashKey(NewBaseSignature(b.Publickey(), sa.SignedHash())))

	// NOTE swapped fields give different key
	t.NotEqual(
		hashCombine(hashCombine(0, 1), 2),
		hashCombine(hashCombine(0, 2), 1),
	)
}

func (t *testSignature) TestEncodeJSON() {
	priv, _ := key.NewStellarPrivatekey()
	sg := t.newSignature(priv, []byte("showme"))

	b, err := jsonenc.Marshal(sg)
	t.NoError(err)

	ht, err := jsonenc.LoadHint(b)
	t.NoError(err)
	t.True(BaseSignatureHint.Equal(ht))

	var usg BaseSignature
	t.NoError(jsonenc.Unmarshal(b, &usg))

	t.True(SignatureEqual(sg, usg))
	t.True(sg.Signer().Equal(usg.Signer()))
}

func (t *testSignature) TestEncodeBSON() {
	priv, _ := key.NewEtherPrivatekey()
	sg := t.newSignature(priv, []byte("showme"))

	b, err := bsonenc.Marshal(sg)
	t.NoError(err)

	ht, err := bsonenc.LoadHint(b)
	t.NoError(err)
	t.True(BaseSignatureHint.Equal(ht))

	var usg BaseSignature
	t.NoError(bsonenc.Unmarshal(b, &usg))

	t.True(SignatureEqual(sg, usg))
}

func (t *testSignature) TestDecodeUnknownSigner() {
	var usg BaseSignature
	err := jsonenc.Unmarshal(
		[]byte(`{"_hint":"base-signature-v0.0.1","signer":"showme~findme-v0.0.1","signature":"3yZe7d"}`),
		&usg,
	)
	t.Error(err)
	t.Contains(err.Error(), "unknown key type")
}

func TestSignature(t *testing.T) {
	suite.Run(t, new(testSignature))
}
