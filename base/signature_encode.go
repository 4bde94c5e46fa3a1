package base

import (
	"github.com/spikeekips/signable/base/key"
	"github.com/spikeekips/signable/util/hint"
)

func (sg *BaseSignature) unpack(ht hint.Hint, signer string, signedHash key.Signature) error {
	if !ht.IsEmpty() {
		if err := sg.Hint().IsCompatible(ht); err != nil {
			return err
		}
	}

	pub, err := key.ParsePublickey(signer)
	if err != nil {
		return err
	}

	sg.signer = pub
	sg.signedHash = signedHash

	return nil
}
