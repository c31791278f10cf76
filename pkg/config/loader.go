package config

import (
	_ "embed"
	"errors"
	"os"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	pperrors "github.com/arthur-debert/pypath/pkg/errors"
	"github.com/arthur-debert/pypath/pkg/logging"
	"github.com/arthur-debert/pypath/pkg/paths"
)

//go:embed embedded/defaults.toml
var defaultConfig []byte

// EnvPrefix is the prefix of environment variables read into the config.
const EnvPrefix = "PYPATH_"

// envKeys maps environment variables to config keys. Anything else with the
// prefix is ignored.
var envKeys = map[string]string{
	paths.EnvFilename:       "filename",
	paths.EnvSiteDir:        "site_dir",
	"PYPATH_PYTHON":         "python.interpreter",
	"PYPATH_PYTHON_TIMEOUT": "python.timeout",
	"PYPATH_ATOMIC_WRITE":   "store.atomic_write",
	"PYPATH_FORMAT":         "output.format",
}

// rawBytesProvider implements koanf provider for raw bytes
type rawBytesProvider struct{ bytes []byte }

func (r *rawBytesProvider) ReadBytes() ([]byte, error) { return r.bytes, nil }
func (r *rawBytesProvider) Read() (map[string]interface{}, error) {
	return nil, errors.New("not implemented")
}

// LoadOptions selects the user config file.
type LoadOptions struct {
	// ConfigFile is an explicit config file. It must exist when set.
	ConfigFile string

	// Overrides are applied last, keyed by dotted config key, e.g.
	// "filename" or "python.interpreter". Empty string values are skipped.
	Overrides map[string]interface{}
}

// Load merges defaults, the user config file and the environment.
func Load(opts LoadOptions) (*Config, error) {
	logger := logging.GetLogger("config")
	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, pperrors.Wrap(err, pperrors.ErrConfigParse, "failed to load defaults")
	}

	// 2. User config file
	source := ""
	configPath := opts.ConfigFile
	explicit := configPath != ""
	if !explicit {
		configPath = paths.DefaultConfigFilePath()
	}
	if _, err := os.Stat(configPath); err == nil {
		if err := k.Load(file.Provider(configPath), toml.Parser()); err != nil {
			return nil, pperrors.Wrapf(err, pperrors.ErrConfigParse, "failed to load config from %s", configPath)
		}
		source = configPath
		logger.Debug().Str("path", configPath).Msg("Loaded user config")
	} else if explicit {
		return nil, pperrors.Wrapf(err, pperrors.ErrConfigLoad, "config file %s not readable", configPath)
	}

	// 3. Environment
	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, pperrors.Wrap(err, pperrors.ErrConfigLoad, "failed to load env vars")
	}

	// 4. Command-line overrides
	if overrides := nonEmpty(opts.Overrides); len(overrides) > 0 {
		if err := k.Load(confmap.Provider(overrides, "."), nil); err != nil {
			return nil, pperrors.Wrap(err, pperrors.ErrConfigLoad, "failed to apply overrides")
		}
		logger.Debug().Int("count", len(overrides)).Msg("Applied config overrides")
	}

	// 5. Unmarshal
	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, pperrors.Wrap(err, pperrors.ErrConfigParse, "failed to unmarshal configuration")
	}
	cfg.Source = source
	cfg.Output.Format = strings.ToLower(strings.TrimSpace(cfg.Output.Format))

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func nonEmpty(overrides map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(overrides))
	for key, value := range overrides {
		if s, ok := value.(string); ok && s == "" {
			continue
		}
		out[key] = value
	}
	return out
}

// envKey translates PYPATH_* variables into config keys. An empty result
// tells koanf to skip the variable.
func envKey(name string) string {
	return envKeys[name]
}
