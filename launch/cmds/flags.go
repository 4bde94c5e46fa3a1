package cmds

import (
	"bytes"
	"io"
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"
	"github.com/pkg/errors"

	"github.com/spikeekips/signable/base"
	"github.com/spikeekips/signable/base/key"
)

var stdin io.Reader = os.Stdin

// FileLoad loads the content of file; "-" reads from stdin.
type FileLoad []byte

func (v FileLoad) MarshalText() ([]byte, error) {
	return []byte(v), nil
}

func (v *FileLoad) UnmarshalText(b []byte) error {
	var body []byte
	if bytes.Equal(bytes.TrimSpace(b), []byte("-")) {
		c, err := LoadFromStdInput()
		if err != nil {
			return err
		}
		body = c
	} else if c, err := os.ReadFile(filepath.Clean(string(b))); err != nil {
		return err
	} else {
		body = c
	}

	if len(bytes.TrimSpace(body)) < 1 {
		return errors.Errorf("empty file")
	}

	*v = body

	return nil
}

func (v FileLoad) Bytes() []byte {
	return []byte(v)
}

func (v FileLoad) String() string {
	return string(v)
}

func LoadFromStdInput() ([]byte, error) {
	if f, ok := stdin.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
		return nil, errors.Errorf("stdin is terminal; nothing to read")
	}

	return io.ReadAll(stdin)
}

type NetworkIDFlag []byte

func (v *NetworkIDFlag) UnmarshalText(b []byte) error {
	*v = b

	return nil
}

func (v NetworkIDFlag) NetworkID() base.NetworkID {
	return base.NetworkID(v)
}

type PrivatekeyFlag struct {
	key.Privatekey
}

func (v *PrivatekeyFlag) UnmarshalText(b []byte) error {
	k, err := key.ParsePrivatekey(string(bytes.TrimSpace(b)))
	if err != nil {
		return err
	}

	v.Privatekey = k

	return nil
}

func (v PrivatekeyFlag) MarshalText() ([]byte, error) {
	if v.Privatekey == nil {
		return nil, nil
	}

	return []byte(v.Privatekey.String()), nil
}
