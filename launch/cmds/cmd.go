package cmds

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"
	"github.com/rs/zerolog"

	jsonenc "github.com/spikeekips/signable/util/encoder/json"
	"github.com/spikeekips/signable/util/logging"
)

var (
	DefaultName = "signable"
	MainOptions = kong.HelpOptions{NoAppSummary: false, Compact: true, Summary: false, Tree: true}
)

var defaultKongOptions = []kong.Option{
	kong.Name(DefaultName),
	kong.UsageOnError(),
	kong.ConfigureHelp(MainOptions),
	LogVars,
	CacheVars,
}

var CacheVars = kong.Vars{
	"cache": "gcache:?type=lru&size=1000",
}

func Context(args []string, flags interface{}, options ...kong.Option) (*kong.Context, error) {
	ops := make([]kong.Option, len(defaultKongOptions)+len(options))
	copy(ops, defaultKongOptions)
	copy(ops[len(defaultKongOptions):], options)

	p, err := kong.New(flags, ops...)
	if err != nil {
		return nil, err
	}

	return p.Parse(args)
}

type BaseCommand struct {
	*logging.Logging `kong:"-"`
	LogFlags
	Out       io.Writer `kong:"-"`
	LogOutput io.Writer `kong:"-"`
}

func (cmd *BaseCommand) Initialize(name string) error {
	if cmd.Out == nil {
		cmd.Out = os.Stdout
	}

	if cmd.LogOutput == nil {
		cmd.LogOutput = os.Stderr
	}

	l, err := SetupLoggingFromFlags(&cmd.LogFlags, cmd.LogOutput)
	if err != nil {
		return err
	}

	cmd.Logging = logging.NewLogging(func(c zerolog.Context) zerolog.Context {
		return c.Str("module", fmt.Sprintf("command-%s", name))
	}).SetLogging(l)

	cmd.Log().Debug().Str("log_level", zerolog.Level(cmd.LogLevel).String()).Msg("command initialized")

	return nil
}

func (cmd *BaseCommand) print(i interface{}) error {
	b, err := jsonenc.Marshal(i)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(cmd.Out, string(b))

	return err
}
