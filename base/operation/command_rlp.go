package operation

import (
	"io"

	"github.com/ethereum/go-ethereum/rlp"
)

type CommandRLPPacker struct {
	N string
	A []string
}

func (cm Command) EncodeRLP(w io.Writer) error {
	return rlp.Encode(w, CommandRLPPacker{N: cm.name, A: cm.args})
}

func (cm *Command) DecodeRLP(s *rlp.Stream) error {
	var ucm CommandRLPPacker
	if err := s.Decode(&ucm); err != nil {
		return err
	}

	*cm = NewCommand(ucm.N, ucm.A...)

	return nil
}
