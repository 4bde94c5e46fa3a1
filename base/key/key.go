package key

import (
	"fmt"

	"github.com/spikeekips/signable/util"
	"github.com/spikeekips/signable/util/hint"
	"github.com/spikeekips/signable/util/isvalid"
)

var (
	InvalidKeyError                  = util.NewError("invalid key")
	SignatureVerificationFailedError = util.NewError("signature verification failed")
)

type Key interface {
	fmt.Stringer // NOTE String() returns the hinted string, "<raw>~<hint>"
	hint.Hinter
	isvalid.IsValider
	util.Byter
	Raw() string
	Equal(Key) bool
}

type Privatekey interface {
	Key
	Publickey() Publickey
	Sign([]byte) (Signature, error)
}

type Publickey interface {
	Key
	Verify([]byte, Signature) error
}

// BaseKey carries the common part of keys; rawFunc returns the raw string
// form of the key.
type BaseKey struct {
	ht      hint.Hint
	rawFunc func() string
}

func NewBaseKey(ht hint.Hint, rawFunc func() string) BaseKey {
	return BaseKey{ht: ht, rawFunc: rawFunc}
}

func (ky BaseKey) Hint() hint.Hint {
	return ky.ht
}

func (ky BaseKey) Raw() string {
	if ky.rawFunc == nil {
		return ""
	}

	return ky.rawFunc()
}

func (ky BaseKey) String() string {
	return hint.NewHintedString(ky.ht, ky.Raw()).String()
}

// Bytes is used for hashing and signature identity; it is the hinted string,
// so the same raw key of different types gives different bytes.
func (ky BaseKey) Bytes() []byte {
	return []byte(ky.String())
}

func (ky BaseKey) MarshalText() ([]byte, error) {
	return []byte(ky.String()), nil
}

func (ky BaseKey) Equal(k Key) bool {
	if k == nil {
		return false
	}

	if ky.Hint().Type() != k.Hint().Type() {
		return false
	}

	return ky.Raw() == k.Raw()
}
