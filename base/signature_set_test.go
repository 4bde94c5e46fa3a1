package base

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/spikeekips/signable/base/key"
	"github.com/spikeekips/signable/util"
)

type testSignatureSet struct {
	suite.Suite
}

func (t *testSignatureSet) newSignature(priv key.Privatekey, b []byte) BaseSignature {
	sig, err := priv.Sign(b)
	t.NoError(err)

	return NewBaseSignature(priv.Publickey(), sig)
}

func (t *testSignatureSet) randomSignature() BaseSignature {
	priv, _ := key.NewStellarPrivatekey()

	return t.newSignature(priv, util.UUID().Bytes())
}

func (t *testSignatureSet) TestIdempotentInsert() {
	ss := NewSignatureSet()
	t.Equal(0, ss.Len())

	sg := t.randomSignature()

	t.True(ss.Insert(sg))
	t.False(ss.Insert(sg))
	t.Equal(1, ss.Len())

	// NOTE new instance of same values
	t.False(ss.Insert(NewBaseSignature(sg.Signer(), sg.SignedHash())))
	t.Equal(1, ss.Len())

	t.True(ss.Has(sg))
}

func (t *testSignatureSet) TestNil() {
	ss := NewSignatureSet()

	t.False(ss.Insert(nil))
	t.False(ss.Has(nil))
	t.Equal(0, ss.Len())
}

func (t *testSignatureSet) TestZeroValue() {
	var ss SignatureSet

	sg := t.randomSignature()
	t.False(ss.Has(sg))
	t.True(ss.Insert(sg))
	t.True(ss.Has(sg))
}

func (t *testSignatureSet) TestDistinctSigners() {
	ss := NewSignatureSet()

	a := t.randomSignature()
	b := t.randomSignature()

	t.True(ss.Insert(a))
	t.True(ss.Insert(b))
	t.Equal(2, ss.Len())
	t.Equal(2, len(ss.Signers()))
}

func (t *testSignatureSet) TestSameSignerDifferentSignature() {
	priv, _ := key.NewBTCPrivatekey()

	a := t.newSignature(priv, []byte("showme"))
	b := t.newSignature(priv, []byte("findme"))

	ss := NewSignatureSet()
	t.True(ss.Insert(a))
	t.True(ss.Insert(b))
	t.Equal(2, ss.Len())

	signers := ss.Signers()
	t.Equal(1, len(signers))
	t.True(priv.Publickey().Equal(signers[0]))
}

func (t *testSignatureSet) TestOrderIndependent() {
	a := t.randomSignature()
	b := t.randomSignature()
	c := t.randomSignature()

	sa := NewSignatureSet(a, b, c)
	sb := NewSignatureSet(c, a, b, a)

	t.True(sa.Equal(sb))
	t.True(sb.Equal(sa))
	t.True(sa.Equal(sa))

	asgs := sa.Signatures()
	bsgs := sb.Signatures()
	t.Equal(len(asgs), len(bsgs))

	for i := range asgs {
		t.True(SignatureEqual(asgs[i], bsgs[i]))
	}

	t.False(sa.Equal(NewSignatureSet(a, b)))
	t.False(sa.Equal(NewSignatureSet(a, b, t.randomSignature())))
	t.False(sa.Equal(nil))
}

func (t *testSignatureSet) TestSignaturesSorted() {
	ss := NewSignatureSet()
	for i := 0; i < 10; i++ {
		_ = ss.Insert(t.randomSignature())
	}

	sgs := ss.Signatures()
	t.Equal(10, len(sgs))

	for i := 1; i < len(sgs); i++ {
		t.True(compareSignature(sgs[i-1], sgs[i]) < 0)
	}

	// NOTE snapshot does not change by insert
	_ = ss.Insert(t.randomSignature())
	t.Equal(10, len(sgs))
	t.Equal(11, ss.Len())
}

func (t *testSignatureSet) TestTraverse() {
	ss := NewSignatureSet()
	for i := 0; i < 5; i++ {
		_ = ss.Insert(t.randomSignature())
	}

	var count int
	ss.Traverse(func(Signature) bool {
		count++

		return count < 3
	})
	t.Equal(3, count)

	// NOTE callback can insert
	var inserted int
	ss.Traverse(func(sg Signature) bool {
		if ss.Insert(t.randomSignature()) {
			inserted++
		}

		t.True(ss.Has(sg))

		return true
	})
	t.Equal(5, inserted)
	t.Equal(10, ss.Len())
}

func (t *testSignatureSet) TestConcurrentInsert() {
	sgs := make([]Signature, 30)
	for i := range sgs {
		sgs[i] = t.randomSignature()
	}

	ss := NewSignatureSet()

	var wg sync.WaitGroup
	for i := 0; i < 3; i++ {
		wg.Add(1)

		go func() {
			defer wg.Done()

			for j := range sgs {
				_ = ss.Insert(sgs[j])
			}
		}()
	}

	for i := 0; i < 3; i++ {
		wg.Add(1)

		go func() {
			defer wg.Done()

			for j := 0; j < 30; j++ {
				l := ss.Len()
				t.True(l <= len(ss.Signatures()))

				ss.Traverse(func(sg Signature) bool {
					return ss.Has(sg)
				})
			}
		}()
	}

	wg.Wait()

	t.Equal(len(sgs), ss.Len())
	t.True(NewSignatureSet(sgs...).Equal(ss))
}

func TestSignatureSet(t *testing.T) {
	suite.Run(t, new(testSignatureSet))
}
