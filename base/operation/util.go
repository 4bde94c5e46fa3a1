package operation

import (
	"github.com/spikeekips/signable/base"
	"github.com/spikeekips/signable/base/key"
	"github.com/spikeekips/signable/util"
)

func isValidAccountID(s string) error {
	return base.IsValidAccountID(s)
}

func isValidPublickey(s string) error {
	_, err := key.ParsePublickey(s)

	return err
}

func isValidAmount(s string) error {
	_, err := util.NewUnsignedIntFromString(s)

	return err
}
