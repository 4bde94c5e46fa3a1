package hint

import (
	"fmt"
	"regexp"
	"strings"

	"golang.org/x/mod/semver"

	"github.com/spikeekips/signable/util"
)

var InvalidHintError = util.NewError("invalid Hint")

var reHintVersion = regexp.MustCompile(`\-v\d+\.\d+\.\d+.*$`)

const MaxVersionLength = 20

// Hint tags the encodable data with Type and semver version. The string form
// is "<type>-<version>", like "btc-pub-v0.0.1".
type Hint struct {
	t Type
	v string
}

func NewHint(t Type, v string) Hint {
	return Hint{t: t, v: v}
}

func MustNewHint(s string) Hint {
	ht, err := ParseHint(s)
	if err != nil {
		panic(err)
	}

	return ht
}

func ParseHint(s string) (Hint, error) {
	l := reHintVersion.FindStringIndex(s)
	if len(l) < 1 {
		return Hint{}, InvalidHintError.Errorf("version not found, %q", s)
	}

	ht := Hint{t: Type(s[:l[0]]), v: s[l[0]+1:]}

	return ht, ht.IsValid(nil)
}

func (ht Hint) IsValid([]byte) error {
	if err := ht.t.IsValid(nil); err != nil {
		return InvalidHintError.Wrap(err)
	}

	switch {
	case len(ht.v) > MaxVersionLength:
		return InvalidHintError.Errorf("too long version; %d > %d", len(ht.v), MaxVersionLength)
	case !semver.IsValid(ht.v):
		return InvalidHintError.Errorf("invalid version, %q", ht.v)
	}

	return nil
}

func (ht Hint) Type() Type {
	return ht.t
}

func (ht Hint) Version() string {
	return ht.v
}

func (ht Hint) Equal(b Hint) bool {
	return ht.t == b.t && ht.v == b.v
}

// IsCompatible checks the given Hint has same Type and same major version.
func (ht Hint) IsCompatible(b Hint) error {
	if ht.t != b.t {
		return TypeDoesNotMatchError.Errorf("%q != %q", ht.t, b.t)
	}

	if semver.Major(ht.v) != semver.Major(b.v) {
		return InvalidHintError.Errorf("not compatible version; %q ~ %q", ht.v, b.v)
	}

	return nil
}

func (ht Hint) Bytes() []byte {
	return []byte(ht.String())
}

func (ht Hint) String() string {
	if len(ht.t) < 1 && len(ht.v) < 1 {
		return ""
	}

	return fmt.Sprintf("%s-%s", ht.t, ht.v)
}

func (ht Hint) IsEmpty() bool {
	return len(strings.TrimSpace(ht.String())) < 1
}

type Hinter interface {
	Hint() Hint
}
