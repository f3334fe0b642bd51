package transport_test

import (
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sagarc03/storeopts/transport"
)

func TestDefault(t *testing.T) {
	cfg := transport.Default()

	assert.Equal(t, "storeopts", cfg.UserAgent)
	assert.Equal(t, 30*time.Second, cfg.Timeout)
	assert.Equal(t, 5*time.Second, cfg.ConnectTimeout)
	assert.Equal(t, 90*time.Second, cfg.PoolIdleTimeout)
	assert.Equal(t, 100, cfg.PoolMaxIdlePerHost)
	assert.False(t, cfg.AllowHTTP)
	assert.False(t, cfg.AllowInvalidCertificates)

	assert.Equal(t, 10, cfg.Retry.MaxRetries)
	assert.Equal(t, 3*time.Minute, cfg.Retry.RetryTimeout)
	assert.Equal(t, 100*time.Millisecond, cfg.Retry.Backoff.InitBackoff)
	assert.Equal(t, 15*time.Second, cfg.Retry.Backoff.MaxBackoff)
	assert.InDelta(t, 2.0, cfg.Retry.Backoff.Base, 0.0001)

	require.NoError(t, cfg.Validate())
}

func TestConfig_CloneIsIndependent(t *testing.T) {
	orig := transport.Default()
	orig.DefaultHeaders = map[string]string{"x-team": "storage"}

	clone := orig.Clone()
	clone.DefaultHeaders["x-team"] = "changed"
	clone.DefaultHeaders["x-new"] = "added"
	clone.Timeout = time.Hour

	assert.Equal(t, map[string]string{"x-team": "storage"}, orig.DefaultHeaders)
	assert.Equal(t, 30*time.Second, orig.Timeout)
}

func TestFromOptions(t *testing.T) {
	cfg, err := transport.FromOptions(map[transport.ConfigKey]string{
		transport.AllowHTTP:          "true",
		transport.Timeout:            "1m30s",
		transport.ConnectTimeout:     "2s",
		transport.PoolMaxIdlePerHost: "8",
		transport.ProxyURL:           "http://proxy.internal:3128",
		transport.UserAgent:          "backup-agent/1.2",
	})
	require.NoError(t, err)

	assert.True(t, cfg.AllowHTTP)
	assert.Equal(t, 90*time.Second, cfg.Timeout)
	assert.Equal(t, 2*time.Second, cfg.ConnectTimeout)
	assert.Equal(t, 8, cfg.PoolMaxIdlePerHost)
	assert.Equal(t, "http://proxy.internal:3128", cfg.ProxyURL)
	assert.Equal(t, "backup-agent/1.2", cfg.UserAgent)

	// untouched fields keep their defaults
	assert.Equal(t, 90*time.Second, cfg.PoolIdleTimeout)
	assert.Equal(t, 10, cfg.Retry.MaxRetries)
}

func TestFromOptions_Empty(t *testing.T) {
	cfg, err := transport.FromOptions(nil)
	require.NoError(t, err)
	assert.Equal(t, transport.Default(), cfg)
}

func TestFromOptions_Errors(t *testing.T) {
	tests := []struct {
		name    string
		opts    map[transport.ConfigKey]string
		wantErr string
	}{
		{
			name:    "bad duration",
			opts:    map[transport.ConfigKey]string{transport.Timeout: "thirty seconds"},
			wantErr: "decode transport options",
		},
		{
			name:    "bad bool",
			opts:    map[transport.ConfigKey]string{transport.AllowHTTP: "maybe"},
			wantErr: "decode transport options",
		},
		{
			name:    "bad int",
			opts:    map[transport.ConfigKey]string{transport.PoolMaxIdlePerHost: "many"},
			wantErr: "decode transport options",
		},
		{
			name:    "negative duration",
			opts:    map[transport.ConfigKey]string{transport.ConnectTimeout: "-1s"},
			wantErr: "validate transport config",
		},
		{
			name:    "invalid proxy url",
			opts:    map[transport.ConfigKey]string{transport.ProxyURL: "not a url"},
			wantErr: "validate transport config",
		},
		{
			name: "http1 and http2 only together",
			opts: map[transport.ConfigKey]string{
				transport.HTTP1Only: "true",
				transport.HTTP2Only: "true",
			},
			wantErr: "validate transport config",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := transport.FromOptions(tt.opts)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestConfig_ApplyDoesNotModifyReceiver(t *testing.T) {
	base := transport.Default()
	base.DefaultHeaders = map[string]string{"a": "1"}

	updated, err := base.Apply(map[transport.ConfigKey]string{transport.Timeout: "5s"})
	require.NoError(t, err)

	updated.DefaultHeaders["a"] = "2"

	assert.Equal(t, 30*time.Second, base.Timeout)
	assert.Equal(t, "1", base.DefaultHeaders["a"])
	assert.Equal(t, 5*time.Second, updated.Timeout)
}

// Every client key must land on a Config field, otherwise the decoder
// would silently drop it.
func TestSchema_EveryKeyHasConfigField(t *testing.T) {
	tags := map[string]bool{}
	typ := reflect.TypeOf(transport.Config{})
	for i := range typ.NumField() {
		tag := strings.Split(typ.Field(i).Tag.Get("mapstructure"), ",")[0]
		if tag != "" && tag != "-" {
			tags[tag] = true
		}
	}

	for _, k := range transport.Schema.Keys() {
		assert.True(t, tags[k.String()], "no Config field for %q", k)
	}
}

func TestParseConfigKey(t *testing.T) {
	k, err := transport.ParseConfigKey("CONNECT_TIMEOUT")
	require.NoError(t, err)
	assert.Equal(t, transport.ConnectTimeout, k)

	_, err = transport.ParseConfigKey("region")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "client")
}

func TestConfig_OptionsRoundTrip(t *testing.T) {
	in := transport.Default()
	in.Timeout = 90 * time.Second
	in.AllowHTTP = true
	in.ProxyURL = "http://proxy:3128"

	opts, err := in.Options()
	require.NoError(t, err)
	assert.Len(t, opts, len(transport.Schema.Keys()))
	assert.Equal(t, "1m30s", opts[transport.Timeout])
	assert.Equal(t, "true", opts[transport.AllowHTTP])
	assert.Equal(t, "100", opts[transport.PoolMaxIdlePerHost])

	out, err := transport.FromOptions(opts)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}
