package key

import (
	"github.com/btcsuite/btcd/btcec"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcutil"
	"github.com/btcsuite/btcutil/base58"

	"github.com/spikeekips/signable/util/hint"
)

var (
	BTCPrivatekeyType = hint.Type("btc-priv")
	BTCPrivatekeyHint = hint.NewHint(BTCPrivatekeyType, "v0.0.1")
	BTCPublickeyType  = hint.Type("btc-pub")
	BTCPublickeyHint  = hint.NewHint(BTCPublickeyType, "v0.0.1")
)

// BTCPrivatekey signs with secp256k1 over the double sha256 of input. The
// signature is deterministic(RFC6979), so signing same input again gives the
// same Signature.
type BTCPrivatekey struct {
	BaseKey
	wif *btcutil.WIF
}

func newBTCPrivatekey(wif *btcutil.WIF) BTCPrivatekey {
	return BTCPrivatekey{
		BaseKey: NewBaseKey(BTCPrivatekeyHint, wif.String),
		wif:     wif,
	}
}

func NewBTCPrivatekey() (BTCPrivatekey, error) {
	secret, err := btcec.NewPrivateKey(btcec.S256())
	if err != nil {
		return BTCPrivatekey{}, err
	}

	wif, err := btcutil.NewWIF(secret, &chaincfg.MainNetParams, true)
	if err != nil {
		return BTCPrivatekey{}, err
	}

	return newBTCPrivatekey(wif), nil
}

func NewBTCPrivatekeyFromString(s string) (BTCPrivatekey, error) {
	wif, err := btcutil.DecodeWIF(s)
	if err != nil {
		return BTCPrivatekey{}, InvalidKeyError.Wrap(err)
	}

	if !wif.IsForNet(&chaincfg.MainNetParams) {
		return BTCPrivatekey{}, InvalidKeyError.Errorf("not supported BTC network")
	}

	return newBTCPrivatekey(wif), nil
}

func (bt BTCPrivatekey) IsValid([]byte) error {
	if bt.wif == nil {
		return InvalidKeyError.Errorf("empty btc wif")
	} else if bt.wif.PrivKey == nil {
		return InvalidKeyError.Errorf("empty btc wif.PrivKey")
	}

	return nil
}

func (bt BTCPrivatekey) Publickey() Publickey {
	return newBTCPublickey(bt.wif.PrivKey.PubKey())
}

func (bt BTCPrivatekey) Sign(input []byte) (Signature, error) {
	sig, err := bt.wif.PrivKey.Sign(chainhash.DoubleHashB(input))
	if err != nil {
		return nil, err
	}

	return Signature(sig.Serialize()), nil
}

type BTCPublickey struct {
	BaseKey
	pk *btcec.PublicKey
}

func newBTCPublickey(pk *btcec.PublicKey) BTCPublickey {
	return BTCPublickey{
		BaseKey: NewBaseKey(BTCPublickeyHint, func() string {
			return base58.Encode(pk.SerializeCompressed())
		}),
		pk: pk,
	}
}

func NewBTCPublickeyFromString(s string) (BTCPublickey, error) {
	pk, err := btcec.ParsePubKey(base58.Decode(s), btcec.S256())
	if err != nil {
		return BTCPublickey{}, InvalidKeyError.Wrap(err)
	}

	return newBTCPublickey(pk), nil
}

func (bt BTCPublickey) IsValid([]byte) error {
	if bt.pk == nil {
		return InvalidKeyError.Errorf("empty btc PublicKey")
	}

	return nil
}

func (bt BTCPublickey) Verify(input []byte, sig Signature) error {
	signature, err := btcec.ParseSignature(sig, btcec.S256())
	if err != nil {
		return SignatureVerificationFailedError.Wrap(err)
	}

	if !signature.Verify(chainhash.DoubleHashB(input), bt.pk) {
		return SignatureVerificationFailedError.Call()
	}

	return nil
}
