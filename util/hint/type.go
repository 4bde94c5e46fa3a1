package hint

import (
	"regexp"

	"github.com/spikeekips/signable/util"
)

var (
	InvalidTypeError      = util.NewError("invalid Type")
	TypeDoesNotMatchError = util.NewError("type does not match")
)

const MaxTypeLength = 100

var reTypeAllowedChars = regexp.MustCompile(`^[a-z0-9][a-z0-9\-_\+]*[a-z0-9]$`)

// Type represents the type of encodable data, like "btc-pub" or
// "transaction".
type Type string

func (t Type) IsValid([]byte) error {
	switch n := len(t); {
	case n < 2:
		return InvalidTypeError.Errorf("too short Type, %q", t)
	case n > MaxTypeLength:
		return InvalidTypeError.Errorf("too long Type; %d > %d", n, MaxTypeLength)
	}

	if !reTypeAllowedChars.MatchString(string(t)) {
		return InvalidTypeError.Errorf("invalid char found, %q", t)
	}

	return nil
}

func (t Type) Bytes() []byte {
	return []byte(t)
}

func (t Type) String() string {
	return string(t)
}
