package cmds

import (
	"fmt"

	"github.com/pkg/errors"
	"golang.org/x/xerrors"

	"github.com/spikeekips/signable/base"
	"github.com/spikeekips/signable/util/cache"
)

type VerifyCommand struct {
	BaseCommand
	NetworkID NetworkIDFlag `name:"network-id" help:"network id"`
	Cache     string        `name:"cache" help:"cache of verified signatures; gcache:?type=lru&size=<n> or dummy: (default: ${cache})" default:"${cache}"` // revive:disable-line:line-length-limit
	Input     FileLoad      `arg:"" name:"input" help:"signable json; '-' is stdin"`
}

func (cmd *VerifyCommand) Run() error {
	if err := cmd.Initialize("verify"); err != nil {
		return err
	}

	if len(cmd.NetworkID) < 1 {
		return errors.Errorf("empty network id")
	}

	e, err := DecodeSignable(cmd.Input.Bytes())
	if err != nil {
		return xerrors.Errorf("failed to decode signable: %w", err)
	}

	ca, err := cache.NewCacheFromURI(cmd.Cache)
	if err != nil {
		return xerrors.Errorf("failed to create cache: %w", err)
	}

	sv := base.NewSignatureVerifier(cmd.NetworkID.NetworkID(), ca)
	_ = sv.SetLogging(cmd.Logging)

	if err := sv.VerifySignable(e); err != nil {
		return xerrors.Errorf("failed to verify signatures: %w", err)
	}

	if err := e.IsValid(cmd.NetworkID.NetworkID()); err != nil {
		return xerrors.Errorf("invalid signable: %w", err)
	}

	signers := e.Signatures().Signers()

	cmd.Log().Debug().Stringer("hash", e.Hash()).Int("signers", len(signers)).Msg("verified")

	_, err = fmt.Fprintf(cmd.Out, "%s: %d signatures verified\n", e.Hash(), e.Signatures().Len())

	return err
}
