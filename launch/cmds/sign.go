package cmds

import (
	"github.com/pkg/errors"
	"golang.org/x/xerrors"

	"github.com/spikeekips/signable/base"
)

type SignCommand struct {
	BaseCommand
	Privatekey PrivatekeyFlag `name:"privatekey" help:"privatekey; <key>~<hint>"`
	NetworkID  NetworkIDFlag  `name:"network-id" help:"network id"`
	Input      FileLoad       `arg:"" name:"input" help:"signable json; '-' is stdin"`
}

func (cmd *SignCommand) Run() error {
	if err := cmd.Initialize("sign"); err != nil {
		return err
	}

	switch {
	case cmd.Privatekey.Privatekey == nil:
		return errors.Errorf("empty privatekey")
	case len(cmd.NetworkID) < 1:
		return errors.Errorf("empty network id")
	}

	e, err := DecodeSignable(cmd.Input.Bytes())
	if err != nil {
		return xerrors.Errorf("failed to decode signable: %w", err)
	}

	added, err := base.SignSignable(e, cmd.Privatekey.Privatekey, cmd.NetworkID.NetworkID())
	if err != nil {
		return xerrors.Errorf("failed to sign: %w", err)
	}

	cmd.Log().Debug().
		Stringer("hash", e.Hash()).
		Stringer("signer", cmd.Privatekey.Publickey()).
		Bool("added", added).
		Int("signatures", e.Signatures().Len()).
		Msg("signed")

	return cmd.print(e)
}
