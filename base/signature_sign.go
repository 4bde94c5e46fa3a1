package base

import (
	"github.com/spikeekips/signable/base/key"
	"github.com/spikeekips/signable/util"
	"github.com/spikeekips/signable/util/isvalid"
	"github.com/spikeekips/signable/util/valuehash"
)

// NewSignatureBytes is the signed input; the hash followed by network id.
func NewSignatureBytes(h valuehash.Hash, networkID []byte) []byte {
	return util.ConcatBytesSlice(h.Bytes(), networkID)
}

func NewSignature(priv key.Privatekey, h valuehash.Hash, networkID []byte) (BaseSignature, error) {
	if priv == nil {
		return BaseSignature{}, isvalid.InvalidError.Errorf("empty Privatekey")
	}

	if h == nil || h.IsEmpty() {
		return BaseSignature{}, isvalid.InvalidError.Errorf("empty hash")
	}

	sig, err := priv.Sign(NewSignatureBytes(h, networkID))
	if err != nil {
		return BaseSignature{}, err
	}

	return NewBaseSignature(priv.Publickey(), sig), nil
}

func IsValidSignature(h valuehash.Hash, sg Signature, networkID []byte) error {
	switch {
	case h == nil || h.IsEmpty():
		return isvalid.InvalidError.Errorf("empty hash")
	case sg == nil:
		return isvalid.InvalidError.Errorf("empty Signature")
	case sg.Signer() == nil:
		return isvalid.InvalidError.Errorf("Signature has empty Signer()")
	case len(sg.SignedHash()) < 1:
		return isvalid.InvalidError.Errorf("Signature has empty SignedHash()")
	}

	return sg.Signer().Verify(NewSignatureBytes(h, networkID), sg.SignedHash())
}

// SignSignable signs the hash of Signable and adds the new Signature. The
// returned bool is same with Signable.AddSignature.
func SignSignable(e Signable, priv key.Privatekey, networkID []byte) (bool, error) {
	if e == nil {
		return false, isvalid.InvalidError.Errorf("empty Signable")
	}

	sg, err := NewSignature(priv, e.Hash(), networkID)
	if err != nil {
		return false, err
	}

	return e.AddSignature(sg), nil
}

// IsValidSignatures checks Signable has at least one Signature and all the
// Signatures are valid.
func IsValidSignatures(e Signable, networkID []byte) error {
	if e == nil {
		return isvalid.InvalidError.Errorf("empty Signable")
	}

	if e.Signatures().Len() < 1 {
		return isvalid.InvalidError.Errorf("empty Signatures")
	}

	var err error
	e.Signatures().Traverse(func(sg Signature) bool {
		if err = sg.IsValid(networkID); err != nil {
			return false
		}

		err = IsValidSignature(e.Hash(), sg, networkID)

		return err == nil
	})

	return err
}
