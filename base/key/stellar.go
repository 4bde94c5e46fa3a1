package key

import (
	stellarKeypair "github.com/stellar/go/keypair"

	"github.com/spikeekips/signable/util/hint"
)

var (
	StellarPrivatekeyType = hint.Type("stellar-priv")
	StellarPrivatekeyHint = hint.NewHint(StellarPrivatekeyType, "v0.0.1")
	StellarPublickeyType  = hint.Type("stellar-pub")
	StellarPublickeyHint  = hint.NewHint(StellarPublickeyType, "v0.0.1")
)

// StellarPrivatekey is ed25519 key in stellar seed format.
type StellarPrivatekey struct {
	BaseKey
	kp *stellarKeypair.Full
}

func newStellarPrivatekey(kp *stellarKeypair.Full) StellarPrivatekey {
	return StellarPrivatekey{
		BaseKey: NewBaseKey(StellarPrivatekeyHint, kp.Seed),
		kp:      kp,
	}
}

func NewStellarPrivatekey() (StellarPrivatekey, error) {
	full, err := stellarKeypair.Random()
	if err != nil {
		return StellarPrivatekey{}, err
	}

	return newStellarPrivatekey(full), nil
}

func NewStellarPrivatekeyFromString(s string) (StellarPrivatekey, error) {
	kp, err := stellarKeypair.Parse(s)
	if err != nil {
		return StellarPrivatekey{}, InvalidKeyError.Wrap(err)
	}

	full, ok := kp.(*stellarKeypair.Full)
	if !ok {
		return StellarPrivatekey{}, InvalidKeyError.Errorf("not stellar private key; type=%T", kp)
	}

	return newStellarPrivatekey(full), nil
}

func (sp StellarPrivatekey) IsValid([]byte) error {
	if sp.kp == nil {
		return InvalidKeyError.Errorf("empty stellar Privatekey")
	}

	return nil
}

func (sp StellarPrivatekey) Publickey() Publickey {
	return newStellarPublickey(sp.kp)
}

func (sp StellarPrivatekey) Sign(input []byte) (Signature, error) {
	sig, err := sp.kp.Sign(input)
	if err != nil {
		return nil, err
	}

	return Signature(sig), nil
}

type StellarPublickey struct {
	BaseKey
	kp stellarKeypair.KP
}

func newStellarPublickey(kp stellarKeypair.KP) StellarPublickey {
	return StellarPublickey{
		BaseKey: NewBaseKey(StellarPublickeyHint, kp.Address),
		kp:      kp,
	}
}

func NewStellarPublickeyFromString(s string) (StellarPublickey, error) {
	kp, err := stellarKeypair.Parse(s)
	if err != nil {
		return StellarPublickey{}, InvalidKeyError.Wrap(err)
	}

	addr, ok := kp.(*stellarKeypair.FromAddress)
	if !ok {
		return StellarPublickey{}, InvalidKeyError.Errorf("not stellar public key; type=%T", kp)
	}

	return newStellarPublickey(addr), nil
}

func (sp StellarPublickey) IsValid([]byte) error {
	if sp.kp == nil {
		return InvalidKeyError.Errorf("empty stellar Publickey")
	}

	return nil
}

func (sp StellarPublickey) Verify(input []byte, sig Signature) error {
	if err := sp.kp.Verify(input, []byte(sig)); err != nil {
		return SignatureVerificationFailedError.Wrap(err)
	}

	return nil
}
