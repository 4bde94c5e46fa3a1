package base

import (
	"bytes"

	"github.com/spikeekips/signable/util/isvalid"
)

// NetworkID separates the signatures of one network from the others; with
// different NetworkID, the same hash gives different signature.
type NetworkID []byte

const MaxNetworkIDLength = 300

func (ni NetworkID) IsValid([]byte) error {
	switch l := len(ni); {
	case l < 1:
		return isvalid.InvalidError.Errorf("empty NetworkID")
	case l > MaxNetworkIDLength:
		return isvalid.InvalidError.Errorf(
			"length of NetworkID too long; max=%d, but len=%d", MaxNetworkIDLength, l)
	}

	return nil
}

func (ni NetworkID) Equal(a NetworkID) bool {
	return bytes.Equal(ni, a)
}

func (ni NetworkID) MarshalText() ([]byte, error) {
	return []byte(ni), nil
}

func (ni *NetworkID) UnmarshalText(b []byte) error {
	*ni = NetworkID(b)

	return nil
}
