package hint

import (
	"strings"
)

// HintedString is the string form of hinted value, "<body>~<hint>".
type HintedString struct {
	h Hint
	s string
}

func NewHintedString(h Hint, s string) HintedString {
	return HintedString{h: h, s: s}
}

func ParseHintedString(s string) (HintedString, error) {
	i := strings.LastIndex(s, "~")
	if i < 1 || len(strings.TrimSpace(s[:i])) < 1 {
		return HintedString{}, InvalidHintError.Errorf("invalid HintedString, %q; empty body", s)
	}

	ht, err := ParseHint(s[i+1:])
	if err != nil {
		return HintedString{}, err
	}

	return HintedString{h: ht, s: s[:i]}, nil
}

func (hs HintedString) Hint() Hint {
	return hs.h
}

func (hs HintedString) Body() string {
	return hs.s
}

func (hs HintedString) String() string {
	return hs.s + "~" + hs.h.String()
}

func (hs HintedString) IsValid([]byte) error {
	if err := hs.h.IsValid(nil); err != nil {
		return err
	}

	if len(strings.TrimSpace(hs.s)) < 1 {
		return InvalidHintError.Errorf("empty body of HintedString")
	}

	return nil
}
