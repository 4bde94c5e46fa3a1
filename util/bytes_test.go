package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConcatBytesSlice(t *testing.T) {
	cases := []struct {
		name     string
		sl       [][]byte
		expected []byte
	}{
		{name: "empty", sl: nil, expected: []byte{}},
		{name: "nil element", sl: [][]byte{[]byte("a"), nil, []byte("b")}, expected: []byte("ab")},
		{name: "single", sl: [][]byte{[]byte("showme")}, expected: []byte("showme")},
		{name: "multiple", sl: [][]byte{[]byte("show"), []byte("me"), []byte("!")}, expected: []byte("showme!")},
	}

	for i, c := range cases {
		i := i
		c := c
		t.Run(c.name, func(*testing.T) {
			assert.Equal(t, c.expected, ConcatBytesSlice(c.sl...), "%d: %v", i, c.name)
		})
	}
}

func TestCopyBytes(t *testing.T) {
	a := []byte("showme")
	b := CopyBytes(a)
	assert.Equal(t, a, b)

	b[0] = 'S'
	assert.Equal(t, byte('s'), a[0])

	assert.Nil(t, CopyBytes(nil))
}
