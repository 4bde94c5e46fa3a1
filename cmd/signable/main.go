package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"github.com/spikeekips/signable/launch/cmds"
)

var Version = "v0.0.1"

type mainFlags struct {
	Version kong.VersionFlag   `help:"print version"`
	Config  kong.ConfigFlag    `help:"yaml config file"`
	Sign    cmds.SignCommand   `cmd:"" help:"sign signable"`
	Verify  cmds.VerifyCommand `cmd:"" help:"verify signatures of signable"`
	Hash    cmds.HashCommand   `cmd:"" help:"print hash of signable"`
}

func main() {
	flags := &mainFlags{}

	kctx, err := cmds.Context(
		os.Args[1:],
		flags,
		kong.Description("signs and verifies the signable"),
		kong.Configuration(cmds.YAMLConfigLoader),
		kong.Vars{"version": Version},
	)
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error: %+v\n", err)

		os.Exit(1)
	}

	kctx.FatalIfErrorf(kctx.Run())

	os.Exit(0)
}
