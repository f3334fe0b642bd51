// Package transport holds the provider-agnostic settings of the HTTP client
// underneath every storage backend: timeouts, connection pooling, proxy,
// TLS toggles and retry policy.
//
// Config is a plain value. Use Clone before handing it to code that may
// modify the DefaultHeaders map.
package transport

import (
	"fmt"
	"maps"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/mcuadros/go-defaults"
	"github.com/mitchellh/mapstructure"
)

// Config configures the HTTP client shared by all providers.
type Config struct {
	UserAgent          string `mapstructure:"user_agent" default:"storeopts"`
	DefaultContentType string `mapstructure:"default_content_type"`
	// DefaultHeaders are sent with every request. Not settable from string options.
	DefaultHeaders map[string]string `mapstructure:"-"`

	ProxyURL           string `mapstructure:"proxy_url" validate:"omitempty,url"`
	ProxyCACertificate string `mapstructure:"proxy_ca_certificate"`
	// ProxyExcludes is a comma separated list of hosts that bypass the proxy.
	ProxyExcludes string `mapstructure:"proxy_excludes"`

	AllowHTTP                bool `mapstructure:"allow_http" default:"false"`
	AllowInvalidCertificates bool `mapstructure:"allow_invalid_certificates" default:"false"`

	Timeout            time.Duration `mapstructure:"timeout" default:"30s" validate:"min=0s"`
	ConnectTimeout     time.Duration `mapstructure:"connect_timeout" default:"5s" validate:"min=0s"`
	PoolIdleTimeout    time.Duration `mapstructure:"pool_idle_timeout" default:"90s" validate:"min=0s"`
	PoolMaxIdlePerHost int           `mapstructure:"pool_max_idle_per_host" default:"100" validate:"min=0"`

	HTTP1Only               bool          `mapstructure:"http1_only"`
	HTTP2Only               bool          `mapstructure:"http2_only" validate:"excluded_with=HTTP1Only"`
	HTTP2KeepAliveInterval  time.Duration `mapstructure:"http2_keep_alive_interval" validate:"min=0s"`
	HTTP2KeepAliveTimeout   time.Duration `mapstructure:"http2_keep_alive_timeout" validate:"min=0s"`
	HTTP2KeepAliveWhileIdle bool          `mapstructure:"http2_keep_alive_while_idle"`

	Retry RetryConfig `mapstructure:"-"`
}

// RetryConfig bounds how the client retries failed requests.
type RetryConfig struct {
	MaxRetries   int           `default:"10" validate:"min=0"`
	RetryTimeout time.Duration `default:"3m" validate:"min=0s"`
	Backoff      BackoffConfig
}

// BackoffConfig is an exponential backoff with a ceiling.
type BackoffConfig struct {
	InitBackoff time.Duration `default:"100ms" validate:"min=0s"`
	MaxBackoff  time.Duration `default:"15s" validate:"gtefield=InitBackoff"`
	Base        float64       `default:"2" validate:"gte=1"`
}

// Default returns the configuration used when the caller supplies none.
func Default() Config {
	var c Config
	defaults.SetDefaults(&c)
	return c
}

// Clone returns a deep copy sharing no mutable state with c.
func (c Config) Clone() Config {
	out := c
	if c.DefaultHeaders != nil {
		out.DefaultHeaders = maps.Clone(c.DefaultHeaders)
	}
	return out
}

// Validate checks the struct constraints.
func (c Config) Validate() error {
	if err := validator.New().Struct(&c); err != nil {
		return fmt.Errorf("validate transport config: %w", err)
	}
	return nil
}

// FromOptions decodes validated client options over Default.
func FromOptions(opts map[ConfigKey]string) (Config, error) {
	return Default().Apply(opts)
}

// Apply returns a copy of c with opts decoded over it. Durations use Go
// syntax ("30s", "1m30s"); booleans and integers are parsed from strings.
// c itself is never modified.
func (c Config) Apply(opts map[ConfigKey]string) (Config, error) {
	out := c.Clone()

	input := make(map[string]any, len(opts))
	for k, v := range opts {
		input[string(k)] = v
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook:       mapstructure.StringToTimeDurationHookFunc(),
		WeaklyTypedInput: true,
		Result:           &out,
	})
	if err != nil {
		return Config{}, fmt.Errorf("create decoder: %w", err)
	}
	if err := decoder.Decode(input); err != nil {
		return Config{}, fmt.Errorf("decode transport options: %w", err)
	}

	if err := out.Validate(); err != nil {
		return Config{}, err
	}

	return out, nil
}

// Options renders c back into client options, one per recognised key.
// FromOptions(c.Options()) reproduces c apart from DefaultHeaders and Retry,
// which have no option keys.
func (c Config) Options() (map[ConfigKey]string, error) {
	var fields map[string]any
	if err := mapstructure.Decode(c, &fields); err != nil {
		return nil, fmt.Errorf("encode transport options: %w", err)
	}

	out := make(map[ConfigKey]string, len(Schema.Keys()))
	for _, k := range Schema.Keys() {
		v, ok := fields[string(k)]
		if !ok {
			continue
		}
		out[k] = fmt.Sprint(v)
	}
	return out, nil
}
