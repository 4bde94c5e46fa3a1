package cmds

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alecthomas/kong"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/suite"
)

type testConfig struct {
	suite.Suite
}

func (t *testConfig) TestLoad() {
	conf, err := LoadConfig(strings.NewReader(`
network_id: findme
privatekey: L1bQZCcDZKy342x8xjK9Hk935Nttm2jkApVVS2mn4Nqyxvu7nyGC~btc-priv-v0.0.1
cache: dummy:
log:
  level: debug
  format: json
  color: true
  files:
    - /tmp/a.log
    - /tmp/b.log
`))
	t.NoError(err)

	t.Equal("findme", conf.NetworkID)
	t.Equal("L1bQZCcDZKy342x8xjK9Hk935Nttm2jkApVVS2mn4Nqyxvu7nyGC~btc-priv-v0.0.1", conf.Privatekey)
	t.Equal("dummy:", conf.Cache)
	t.Equal("debug", conf.Log.Level)
	t.Equal("json", conf.Log.Format)
	t.NotNil(conf.Log.Color)
	t.True(*conf.Log.Color)
	t.Equal([]string{"/tmp/a.log", "/tmp/b.log"}, conf.Log.Files)

	uconf, err := LoadConfig(bytes.NewReader(conf.Bytes()))
	t.NoError(err)
	t.Equal(conf, uconf)
}

func (t *testConfig) TestLoadEmpty() {
	conf, err := LoadConfig(strings.NewReader(""))
	t.NoError(err)
	t.Equal(Config{}, conf)
}

func (t *testConfig) TestUnknownField() {
	_, err := LoadConfig(strings.NewReader("network-id: findme\n"))
	t.Error(err)
	t.Contains(err.Error(), "failed to load config")
}

func (t *testConfig) TestResolver() {
	conf, err := LoadConfig(strings.NewReader(`
network_id: findme
log:
  level: debug
`))
	t.NoError(err)

	var flags struct {
		LogFlags
		NetworkID NetworkIDFlag `name:"network-id"`
	}

	_, err = Context(nil, &flags, kong.Resolvers(conf.Resolver()))
	t.NoError(err)

	t.Equal("findme", string(flags.NetworkID))
	t.Equal(zerolog.DebugLevel, flags.LogLevel.Zero())
}

func (t *testConfig) TestFlagsOverrideConfig() {
	conf, err := LoadConfig(strings.NewReader(`
network_id: findme
log:
  level: debug
`))
	t.NoError(err)

	var flags struct {
		LogFlags
		NetworkID NetworkIDFlag `name:"network-id"`
	}

	_, err = Context([]string{"--network-id", "showme", "--log-level", "warn"}, &flags, kong.Resolvers(conf.Resolver()))
	t.NoError(err)

	t.Equal("showme", string(flags.NetworkID))
	t.Equal(zerolog.WarnLevel, flags.LogLevel.Zero())
}

func (t *testConfig) TestResolveCache() {
	f := filepath.Join(t.T().TempDir(), "signable.json")
	t.NoError(os.WriteFile(f, []byte("{}"), 0o600))

	var flags struct {
		Verify VerifyCommand `cmd:""`
	}

	_, err := Context([]string{"verify", "--network-id", "findme", f}, &flags)
	t.NoError(err)
	t.Equal(CacheVars["cache"], flags.Verify.Cache)

	conf, err := LoadConfig(strings.NewReader("cache: dummy:\n"))
	t.NoError(err)

	_, err = Context([]string{"verify", "--network-id", "findme", f}, &flags, kong.Resolvers(conf.Resolver()))
	t.NoError(err)
	t.Equal("dummy:", flags.Verify.Cache)
}

func TestConfig(t *testing.T) {
	suite.Run(t, new(testConfig))
}
