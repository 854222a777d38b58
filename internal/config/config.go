// Package config loads the beanpath CLI configuration with viper.
//
// Sources, lowest precedence first: defaults, beanpath.yaml in the working
// directory (or the file given with --config), BEANPATH_* environment
// variables, explicit overrides from command-line flags.
package config

import (
	"strings"

	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"

	"beanpath/errors"
)

const (
	// FileName is the config file name looked up in the working directory, without extension.
	FileName = "beanpath"
	// EnvPrefix prefixes environment overrides: BEANPATH_LOG_LEVEL sets log.level.
	EnvPrefix = "BEANPATH"
)

// Output formats.
const (
	FormatYAML = "yaml"
	FormatJSON = "json"
)

// Config represents the beanpath configuration.
type Config struct {
	Cache  CacheConfig  `mapstructure:"cache"`
	Lookup LookupConfig `mapstructure:"lookup"`
	Log    LogConfig    `mapstructure:"log"`
	Output OutputConfig `mapstructure:"output"`
}

// CacheConfig controls the introspection cache.
type CacheConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

// LookupConfig controls property name lookup.
type LookupConfig struct {
	// CamelCase strips '_', '-' and ' ' before matching, so "total_cents" finds "totalCents".
	CamelCase bool `mapstructure:"camel_case"`
}

// LogConfig represents logger configuration.
type LogConfig struct {
	Level       string `mapstructure:"level"`
	Development bool   `mapstructure:"development"`
}

// OutputConfig represents how documents are printed.
type OutputConfig struct {
	Format string `mapstructure:"format"`
}

// Load reads the configuration. An empty path looks for beanpath.yaml in the
// working directory and tolerates its absence; an explicit path must exist.
// overrides are applied last, keyed like "output.format".
func Load(path string, overrides map[string]any) (*Config, error) {
	v := viper.New()

	v.SetDefault("cache.enabled", true)
	v.SetDefault("lookup.camel_case", false)
	v.SetDefault("log.level", "warn")
	v.SetDefault("log.development", false)
	v.SetDefault("output.format", FormatYAML)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(FileName)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, errors.Wrap(err, "failed to read config file")
		}
	}

	for key, value := range overrides {
		v.Set(key, value)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}

	if err := validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func validate(cfg *Config) error {
	if _, err := zapcore.ParseLevel(cfg.Log.Level); err != nil {
		return errors.Wrapf(err, "log.level")
	}

	switch cfg.Output.Format {
	case FormatYAML, FormatJSON:
		return nil
	default:
		return errors.WithHintf(
			errors.Newf("output.format must be %q or %q, got %q", FormatYAML, FormatJSON, cfg.Output.Format),
			"set output.format in %s.yaml or %s_OUTPUT_FORMAT", FileName, EnvPrefix)
	}
}
