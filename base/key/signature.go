package key

import (
	"bytes"

	"github.com/btcsuite/btcutil/base58"
)

// Signature is the raw signature bytes, produced by Privatekey.Sign.
type Signature []byte

func NewSignatureFromString(s string) Signature {
	return Signature(base58.Decode(s))
}

func (sg Signature) Bytes() []byte {
	return sg
}

func (sg Signature) String() string {
	return base58.Encode(sg)
}

func (sg Signature) IsValid([]byte) error {
	if len(sg) < 1 {
		return InvalidKeyError.Errorf("empty Signature")
	}

	return nil
}

func (sg Signature) Equal(ns Signature) bool {
	return bytes.Equal(sg, ns)
}
