package util

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestUnsignedBigInt(t *testing.T) {
	cases := []struct {
		name     string
		s        string
		expected string
		err      bool
	}{
		{name: "zero", s: "0", expected: "0"},
		{name: "basic", s: "10", expected: "10"},
		{name: "big", s: "123456789012345678901234567890", expected: "123456789012345678901234567890"},
		{name: "negative", s: "-1", err: true},
		{name: "not number", s: "showme", err: true},
		{name: "float", s: "1.1", err: true},
	}

	for i, c := range cases {
		i := i
		c := c
		t.Run(c.name, func(*testing.T) {
			us, err := NewUnsignedIntFromString(c.s)
			if c.err {
				assert.True(t, errors.Is(err, InvalidUnsignedIntError), "%d: %v", i, c.name)

				return
			}

			assert.NoError(t, err, "%d: %v", i, c.name)
			assert.Equal(t, c.expected, us.String(), "%d: %v", i, c.name)
		})
	}

	_, err := NewUnsignedInt(-3)
	assert.True(t, errors.Is(err, InvalidUnsignedIntError))

	assert.Error(t, UnsignedBigInt{}.IsValid(nil))
}
