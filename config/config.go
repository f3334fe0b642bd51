package config

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/sagarc03/storeopts/schema"
)

// configKey is the context key for storing the loaded configuration.
type configKey struct{}

// WithContext returns a new context with the config stored.
func WithContext(ctx context.Context, cfg *Config) context.Context {
	return context.WithValue(ctx, configKey{}, cfg)
}

// FromContext retrieves the config from context.
// Returns an error if config is not found.
func FromContext(ctx context.Context) (*Config, error) {
	cfg, ok := ctx.Value(configKey{}).(*Config)
	if !ok || cfg == nil {
		return nil, errors.New("config not found in context")
	}
	return cfg, nil
}

// Config is the root configuration struct for storeopts.
type Config struct {
	// Provider is the backend that environment variables are collected for
	// and that the CLI validates against by default.
	Provider string `mapstructure:"provider" validate:"omitempty,oneof=azure aws gcp"`
	// Providers lists the enabled capabilities. Empty enables all of them.
	Providers []string          `mapstructure:"providers" validate:"dive,oneof=azure aws gcp http"`
	Options   map[string]string `mapstructure:"options"`
	Transport map[string]string `mapstructure:"transport"`
	Env       EnvConfig         `mapstructure:"env"`
	AWS       AWSConfig         `mapstructure:"aws"`
	Log       LogConfig         `mapstructure:"log"`

	// ProfileOptions are the options of a saved profile. They sit below
	// every other source in Build. Never read from files or flags.
	ProfileOptions map[string]string `mapstructure:"-"`
}

// EnvConfig controls collection of provider variables from the environment.
type EnvConfig struct {
	Enabled bool     `mapstructure:"enabled"`
	Files   []string `mapstructure:"files" validate:"dive,required"`
}

// AWSConfig selects a profile from the AWS shared config files.
type AWSConfig struct {
	Profile          string   `mapstructure:"profile"`
	ConfigFiles      []string `mapstructure:"config_files" validate:"dive,required"`
	CredentialsFiles []string `mapstructure:"credentials_files" validate:"dive,required"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level string `mapstructure:"level" validate:"required,oneof=debug info warn error"`
}

// SlogLevel maps Level onto slog. Unset or unrecognised levels become info.
func (l LogConfig) SlogLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(l.Level))); err != nil {
		return slog.LevelInfo
	}
	return level
}

// flagToViperKey maps CLI flag names to viper configuration keys.
var flagToViperKey = map[string]string{
	"log-level":   "log.level",
	"env":         "env.enabled",
	"env-file":    "env.files",
	"aws-profile": "aws.profile",
}

// mapFlags are key=value flags merged into Config maps after unmarshalling,
// so they extend file values instead of replacing the whole map.
var mapFlags = map[string]func(*Config) *map[string]string{
	"option":           func(c *Config) *map[string]string { return &c.Options },
	"transport-option": func(c *Config) *map[string]string { return &c.Transport },
}

// bindFlags binds CLI flags to viper keys with custom name mapping.
func bindFlags(v *viper.Viper, flags *pflag.FlagSet) {
	flags.VisitAll(func(f *pflag.Flag) {
		if _, ok := mapFlags[f.Name]; ok {
			return
		}

		// Use custom mapping if it exists, otherwise use flag name as-is
		viperKey := f.Name
		if mapped, ok := flagToViperKey[viperKey]; ok {
			viperKey = mapped
		}

		// Only bind if the flag was explicitly set
		if f.Changed {
			_ = v.BindPFlag(viperKey, f)
		}
	})
}

func mergeMapFlags(cfg *Config, flags *pflag.FlagSet) error {
	for name, target := range mapFlags {
		f := flags.Lookup(name)
		if f == nil || !f.Changed {
			continue
		}

		values, err := flags.GetStringToString(name)
		if err != nil {
			return fmt.Errorf("read --%s: %w", name, err)
		}

		dst := target(cfg)
		if *dst == nil {
			*dst = make(map[string]string, len(values))
		}
		for k, v := range values {
			(*dst)[schema.Normalize(k)] = v
		}
	}
	return nil
}

// setDefaults configures default values on the viper instance.
func setDefaults(v *viper.Viper) {
	v.SetDefault("provider", "")
	v.SetDefault("providers", []string{})
	v.SetDefault("env.enabled", false)
	v.SetDefault("env.files", []string{})
	v.SetDefault("aws.profile", "")
	v.SetDefault("log.level", "info")
}

// Load reads configuration and returns a validated Config struct.
// Order of precedence (highest to lowest): flags > env > config files > defaults
//
// Parameters:
//   - configFiles: list of config file paths (later files override earlier ones)
//   - flags: cobra flag set for flag binding (can be nil)
func Load(configFiles []string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()

	// 1. Set defaults
	setDefaults(v)

	// 2. Read config files
	if len(configFiles) > 0 {
		v.SetConfigFile(configFiles[0])
		if err := v.ReadInConfig(); err != nil {
			slog.Warn("error reading config file", "file", configFiles[0], "err", err)
		}

		for _, cf := range configFiles[1:] {
			v.SetConfigFile(cf)
			if err := v.MergeInConfig(); err != nil {
				slog.Warn("error merging config file", "file", cf, "err", err)
			}
		}
	} else {
		v.SetConfigName("storeopts")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")

		if err := v.ReadInConfig(); err != nil {
			var configNotFound viper.ConfigFileNotFoundError
			if !errors.As(err, &configNotFound) {
				slog.Warn("error reading config file", "err", err)
			}
		}
	}

	// 3. Bind environment variables
	v.SetEnvPrefix("STOREOPTS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// 4. Bind flags (if provided)
	if flags != nil {
		bindFlags(v, flags)
	}

	// 5. Unmarshal into Config struct
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if flags != nil {
		if err := mergeMapFlags(&cfg, flags); err != nil {
			return nil, err
		}
	}

	for i, p := range cfg.Providers {
		cfg.Providers[i] = schema.Normalize(strings.TrimSpace(p))
	}
	cfg.Provider = schema.Normalize(strings.TrimSpace(cfg.Provider))
	cfg.Log.Level = strings.ToLower(strings.TrimSpace(cfg.Log.Level))

	// 6. Validate using go-playground/validator
	validate := validator.New()
	if err := validate.Struct(&cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &cfg, nil
}

// Clone returns a deep copy of the configuration.
func (c *Config) Clone() *Config {
	out := *c
	out.Providers = append([]string(nil), c.Providers...)
	out.Options = maps.Clone(c.Options)
	out.Transport = maps.Clone(c.Transport)
	out.ProfileOptions = maps.Clone(c.ProfileOptions)
	out.Env.Files = append([]string(nil), c.Env.Files...)
	out.AWS.ConfigFiles = append([]string(nil), c.AWS.ConfigFiles...)
	out.AWS.CredentialsFiles = append([]string(nil), c.AWS.CredentialsFiles...)
	return &out
}
