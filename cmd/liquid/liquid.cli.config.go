package main

import (
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"

	"github.com/itsatony/go-liquid"
)

// flagKeys maps persistent flag names to config keys
var flagKeys = map[string]string{
	FlagMaxDepth:  liquid.ConfigFieldMaxDepth,
	FlagErrorMode: liquid.ConfigFieldErrorMode,
	FlagLogLevel:  liquid.ConfigFieldLogLevel,
}

// loadConfig layers configuration sources, later ones winning:
// defaults, the YAML file at path, LIQUID_* environment variables,
// then flags set explicitly on the command line.
func loadConfig(path string, flags *pflag.FlagSet) (*liquid.Config, error) {
	k := koanf.New(KeyDelimiter)

	// 1. Defaults
	defaults := liquid.DefaultConfig()
	if err := k.Load(confmap.Provider(map[string]any{
		liquid.ConfigFieldErrorMode: defaults.ErrorMode,
		liquid.ConfigFieldMaxDepth:  defaults.MaxDepth,
		liquid.ConfigFieldLogLevel:  defaults.LogLevel,
	}, KeyDelimiter), nil); err != nil {
		return nil, liquid.NewConfigError(liquid.ErrMsgConfigParse, "", "", err)
	}

	// 2. Config file
	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, liquid.NewConfigError(liquid.ErrMsgConfigRead, "", path, err)
		}
	}

	// 3. Environment: LIQUID_MAX_DEPTH -> max_depth
	if err := k.Load(env.Provider(EnvPrefix, KeyDelimiter, func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil); err != nil {
		return nil, liquid.NewConfigError(liquid.ErrMsgConfigParse, "", "", err)
	}

	// 4. Flags, only when set explicitly
	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, KeyDelimiter, k, func(f *pflag.Flag) (string, any) {
			key, ok := flagKeys[f.Name]
			if !ok || !f.Changed {
				return "", nil
			}
			return key, posflag.FlagVal(flags, f)
		}), nil); err != nil {
			return nil, liquid.NewConfigError(liquid.ErrMsgConfigParse, "", "", err)
		}
	}

	cfg := &liquid.Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, liquid.NewConfigError(liquid.ErrMsgConfigParse, "", "", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
