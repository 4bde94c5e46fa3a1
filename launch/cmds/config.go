package cmds

import (
	"bytes"
	"io"
	"strconv"
	"strings"

	"github.com/alecthomas/kong"
	"golang.org/x/xerrors"
	"gopkg.in/yaml.v3"
)

// Config is the optional yaml config. The flags given in command line
// override it.
//
//	network_id: mainnet
//	privatekey: L1bQZCcDZKy342x8xjK9Hk935Nttm2jkApVVS2mn4Nqyxvu7nyGC~btc-priv-v0.0.1
//	cache: gcache:?type=lru&size=1000
//	log:
//	  level: debug
//	  format: json
//	  color: false
//	  files:
//	    - /tmp/signable.log
type Config struct {
	NetworkID  string    `yaml:"network_id,omitempty"`
	Privatekey string    `yaml:"privatekey,omitempty"`
	Cache      string    `yaml:"cache,omitempty"`
	Log        LogConfig `yaml:"log,omitempty"`
}

type LogConfig struct {
	Level  string   `yaml:"level,omitempty"`
	Format string   `yaml:"format,omitempty"`
	Color  *bool    `yaml:"color,omitempty"`
	Files  []string `yaml:"files,omitempty"`
}

func LoadConfig(r io.Reader) (Config, error) {
	var conf Config

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	if err := dec.Decode(&conf); err != nil {
		if xerrors.Is(err, io.EOF) {
			return conf, nil
		}

		return conf, xerrors.Errorf("failed to load config: %w", err)
	}

	return conf, nil
}

// Resolver provides the config values to the flags, which are not set in
// command line.
func (conf Config) Resolver() kong.Resolver {
	values := map[string]string{}

	set := func(k, v string) {
		if v = strings.TrimSpace(v); len(v) > 0 {
			values[k] = v
		}
	}

	set("network-id", conf.NetworkID)
	set("privatekey", conf.Privatekey)
	set("cache", conf.Cache)
	set("log-level", conf.Log.Level)
	set("log-format", conf.Log.Format)
	set("log", strings.Join(conf.Log.Files, ","))

	if conf.Log.Color != nil {
		values["log-color"] = strconv.FormatBool(*conf.Log.Color)
	}

	return kong.ResolverFunc(func(_ *kong.Context, _ *kong.Path, flag *kong.Flag) (interface{}, error) {
		v, found := values[flag.Name]
		if !found {
			return nil, nil
		}

		return v, nil
	})
}

// YAMLConfigLoader is the kong.ConfigurationLoader for Config.
func YAMLConfigLoader(r io.Reader) (kong.Resolver, error) {
	conf, err := LoadConfig(r)
	if err != nil {
		return nil, err
	}

	return conf.Resolver(), nil
}

func (conf Config) Bytes() []byte {
	var buf bytes.Buffer

	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	_ = enc.Encode(conf)
	_ = enc.Close()

	return buf.Bytes()
}
