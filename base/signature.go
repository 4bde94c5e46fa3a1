package base

import (
	"bytes"

	"github.com/cespare/xxhash/v2"

	"github.com/spikeekips/signable/base/key"
	"github.com/spikeekips/signable/util"
	"github.com/spikeekips/signable/util/hint"
	"github.com/spikeekips/signable/util/isvalid"
)

var (
	BaseSignatureType = hint.Type("base-signature")
	BaseSignatureHint = hint.NewHint(BaseSignatureType, "v0.0.1")
)

// Signature pairs the signer with the signature bytes over the hash of
// Signable.
type Signature interface {
	util.Byter
	isvalid.IsValider
	hint.Hinter
	Signer() key.Publickey
	SignedHash() key.Signature
}

type BaseSignature struct {
	signer     key.Publickey
	signedHash key.Signature
}

// NewBaseSignature does not check the signature; key.Publickey.Verify does.
func NewBaseSignature(signer key.Publickey, signedHash key.Signature) BaseSignature {
	return BaseSignature{signer: signer, signedHash: util.CopyBytes(signedHash)}
}

func (BaseSignature) Hint() hint.Hint {
	return BaseSignatureHint
}

func (sg BaseSignature) Signer() key.Publickey {
	return sg.signer
}

func (sg BaseSignature) SignedHash() key.Signature {
	return sg.signedHash
}

func (sg BaseSignature) Bytes() []byte {
	return util.ConcatBytesSlice(signerBytes(sg), sg.signedHash.Bytes())
}

func (sg BaseSignature) IsValid([]byte) error {
	if sg.signer == nil {
		return isvalid.InvalidError.Errorf("empty signer")
	}

	return isvalid.Check(nil, false, sg.signer, sg.signedHash)
}

// SignatureEqual compares both of signer and signature bytes.
func SignatureEqual(a, b Signature) bool {
	switch {
	case a == nil && b == nil:
		return true
	case a == nil || b == nil:
		return false
	}

	return bytes.Equal(signerBytes(a), signerBytes(b)) &&
		bytes.Equal(a.SignedHash().Bytes(), b.SignedHash().Bytes())
}

// SignatureHashKey mixes the hashes of signer and signature bytes. Equal
// signatures have the same key, but the key is only meaningful in the same
// process.
func SignatureHashKey(s Signature) uint64 {
	if s == nil {
		return 0
	}

	return hashCombine(
		hashCombine(0, xxhash.Sum64(signerBytes(s))),
		xxhash.Sum64(s.SignedHash().Bytes()),
	)
}

func hashCombine(seed, v uint64) uint64 {
	return seed ^ (v + 0x9e3779b97f4a7c15 + (seed << 6) + (seed >> 2))
}

func signerBytes(s Signature) []byte {
	if s.Signer() == nil {
		return nil
	}

	return s.Signer().Bytes()
}
