package cmds

import (
	"fmt"

	"golang.org/x/xerrors"
)

type HashCommand struct {
	BaseCommand
	Input FileLoad `arg:"" name:"input" help:"signable json; '-' is stdin"`
}

func (cmd *HashCommand) Run() error {
	if err := cmd.Initialize("hash"); err != nil {
		return err
	}

	e, err := DecodeSignable(cmd.Input.Bytes())
	if err != nil {
		return xerrors.Errorf("failed to decode signable: %w", err)
	}

	_, err = fmt.Fprintln(cmd.Out, e.Hash().String())

	return err
}
