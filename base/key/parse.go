package key

import (
	"github.com/spikeekips/signable/util/hint"
)

// ParseKey parses the hinted string of key, "<raw>~<hint>".
func ParseKey(s string) (Key, error) {
	hs, err := hint.ParseHintedString(s)
	if err != nil {
		return nil, InvalidKeyError.Wrap(err)
	}

	var k Key
	switch t := hs.Hint().Type(); t {
	case BTCPrivatekeyType:
		k, err = NewBTCPrivatekeyFromString(hs.Body())
	case BTCPublickeyType:
		k, err = NewBTCPublickeyFromString(hs.Body())
	case EtherPrivatekeyType:
		k, err = NewEtherPrivatekeyFromString(hs.Body())
	case EtherPublickeyType:
		k, err = NewEtherPublickeyFromString(hs.Body())
	case StellarPrivatekeyType:
		k, err = NewStellarPrivatekeyFromString(hs.Body())
	case StellarPublickeyType:
		k, err = NewStellarPublickeyFromString(hs.Body())
	default:
		return nil, InvalidKeyError.Errorf("unknown key type, %q", t)
	}

	if err != nil {
		return nil, err
	}

	if err := k.Hint().IsCompatible(hs.Hint()); err != nil {
		return nil, InvalidKeyError.Wrap(err)
	}

	return k, nil
}

func ParsePrivatekey(s string) (Privatekey, error) {
	k, err := ParseKey(s)
	if err != nil {
		return nil, err
	}

	pk, ok := k.(Privatekey)
	if !ok {
		return nil, InvalidKeyError.Errorf("not Privatekey; type=%T", k)
	}

	return pk, nil
}

func ParsePublickey(s string) (Publickey, error) {
	k, err := ParseKey(s)
	if err != nil {
		return nil, err
	}

	pk, ok := k.(Publickey)
	if !ok {
		return nil, InvalidKeyError.Errorf("not Publickey; type=%T", k)
	}

	return pk, nil
}
