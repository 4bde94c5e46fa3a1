package base

import (
	"regexp"

	"github.com/spikeekips/signable/util/isvalid"
)

var reAccountID = regexp.MustCompile(`^[a-z_0-9]{1,32}@[a-z0-9][a-z0-9\-\.]{0,254}$`)

// IsValidAccountID checks the account id, "<name>@<domain>", like
// "admin@test".
func IsValidAccountID(s string) error {
	if !reAccountID.MatchString(s) {
		return isvalid.InvalidError.Errorf("invalid account id, %q", s)
	}

	return nil
}
