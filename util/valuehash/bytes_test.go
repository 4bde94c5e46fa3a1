package valuehash

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/suite"
)

type testBytes struct {
	suite.Suite
}

func (t *testBytes) TestEmpty() {
	s := Bytes{}
	t.True(errors.Is(s.IsValid(nil), EmptyHashError))
}

func (t *testBytes) TestNil() {
	s := NewBytes(nil)
	t.True(errors.Is(s.IsValid(nil), EmptyHashError))
}

func (t *testBytes) TestOverMax() {
	s := NewBytes(make([]byte, maxBytesHashSize+1))
	t.True(errors.Is(s.IsValid(nil), InvalidHashError))
}

func (t *testBytes) TestEqual() {
	hs := RandomSHA256()
	bhs := NewBytes(hs.Bytes())

	t.True(hs.Equal(bhs))
	t.True(bhs.Equal(hs))
}

func (t *testBytes) TestNew() {
	hs := NewBytes(nil)
	t.Implements((*Hash)(nil), hs)
	t.Equal(0, hs.Size())

	b := []byte("showme")
	hs = NewBytes(b)

	t.Equal(len(b), hs.Size())
	t.Equal(b, hs.Bytes())
}

func TestBytes(t *testing.T) {
	suite.Run(t, new(testBytes))
}
