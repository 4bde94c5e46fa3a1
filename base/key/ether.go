package key

import (
	"crypto/ecdsa"
	"encoding/hex"

	etherCrypto "github.com/ethereum/go-ethereum/crypto"

	"github.com/spikeekips/signable/util/hint"
)

var (
	EtherPrivatekeyType = hint.Type("ether-priv")
	EtherPrivatekeyHint = hint.NewHint(EtherPrivatekeyType, "v0.0.1")
	EtherPublickeyType  = hint.Type("ether-pub")
	EtherPublickeyHint  = hint.NewHint(EtherPublickeyType, "v0.0.1")
)

// EtherPrivatekey signs the keccak256 of input with secp256k1; the Signature
// is the 65 bytes of [R || S || V].
type EtherPrivatekey struct {
	BaseKey
	pk *ecdsa.PrivateKey
}

func newEtherPrivatekey(pk *ecdsa.PrivateKey) EtherPrivatekey {
	return EtherPrivatekey{
		BaseKey: NewBaseKey(EtherPrivatekeyHint, func() string {
			return hex.EncodeToString(etherCrypto.FromECDSA(pk))
		}),
		pk: pk,
	}
}

func NewEtherPrivatekey() (EtherPrivatekey, error) {
	pk, err := etherCrypto.GenerateKey()
	if err != nil {
		return EtherPrivatekey{}, err
	}

	return newEtherPrivatekey(pk), nil
}

func NewEtherPrivatekeyFromString(s string) (EtherPrivatekey, error) {
	h, err := hex.DecodeString(s)
	if err != nil {
		return EtherPrivatekey{}, InvalidKeyError.Wrap(err)
	}

	pk, err := etherCrypto.ToECDSA(h)
	if err != nil {
		return EtherPrivatekey{}, InvalidKeyError.Wrap(err)
	}

	return newEtherPrivatekey(pk), nil
}

func (ep EtherPrivatekey) IsValid([]byte) error {
	if ep.pk == nil {
		return InvalidKeyError.Errorf("empty ether Privatekey")
	}

	return nil
}

func (ep EtherPrivatekey) Publickey() Publickey {
	return newEtherPublickey(&ep.pk.PublicKey)
}

func (ep EtherPrivatekey) Sign(input []byte) (Signature, error) {
	sig, err := etherCrypto.Sign(etherCrypto.Keccak256(input), ep.pk)
	if err != nil {
		return nil, err
	}

	return Signature(sig), nil
}

type EtherPublickey struct {
	BaseKey
	pk *ecdsa.PublicKey
}

func newEtherPublickey(pk *ecdsa.PublicKey) EtherPublickey {
	return EtherPublickey{
		BaseKey: NewBaseKey(EtherPublickeyHint, func() string {
			return hex.EncodeToString(etherCrypto.FromECDSAPub(pk))
		}),
		pk: pk,
	}
}

func NewEtherPublickeyFromString(s string) (EtherPublickey, error) {
	h, err := hex.DecodeString(s)
	if err != nil {
		return EtherPublickey{}, InvalidKeyError.Wrap(err)
	}

	pk, err := etherCrypto.UnmarshalPubkey(h)
	if err != nil {
		return EtherPublickey{}, InvalidKeyError.Wrap(err)
	}

	return newEtherPublickey(pk), nil
}

func (ep EtherPublickey) IsValid([]byte) error {
	if ep.pk == nil {
		return InvalidKeyError.Errorf("empty ether Publickey")
	}

	return nil
}

func (ep EtherPublickey) Verify(input []byte, sig Signature) error {
	if len(sig) != 65 {
		return SignatureVerificationFailedError.Errorf("invalid signature length, %d", len(sig))
	}

	if !etherCrypto.VerifySignature(etherCrypto.FromECDSAPub(ep.pk), etherCrypto.Keccak256(input), sig[:64]) {
		return SignatureVerificationFailedError.Call()
	}

	return nil
}
