package profile_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sagarc03/storeopts"
	"github.com/sagarc03/storeopts/profile"
	"github.com/sagarc03/storeopts/schema"
	"github.com/sagarc03/storeopts/transport"
)

func TestNewFormatter(t *testing.T) {
	t.Run("json formatter", func(t *testing.T) {
		formatter := profile.NewFormatter(true, false)
		_, ok := formatter.(*profile.JSONFormatter)
		assert.True(t, ok)
	})

	t.Run("human formatter", func(t *testing.T) {
		formatter := profile.NewFormatter(false, false)
		_, ok := formatter.(*profile.HumanFormatter)
		assert.True(t, ok)
	})

	t.Run("human formatter quiet", func(t *testing.T) {
		formatter := profile.NewFormatter(false, true)
		hf, ok := formatter.(*profile.HumanFormatter)
		require.True(t, ok)
		assert.True(t, hf.Quiet)
	})
}

var testEntries = []schema.Entry{
	{Key: "region", Value: "us-east-1"},
	{Key: "secret_access_key", Value: "wJalrXUtnFEMIK7MDENG", Secret: true},
	{Key: "session_token", Value: "short", Secret: true},
}

func TestHumanFormatter_FormatOptions(t *testing.T) {
	tests := []struct {
		name        string
		showSecrets bool
		contains    []string
		excludes    []string
	}{
		{
			name:     "secrets masked",
			contains: []string{"Valid aws options (3)", "us-east-1", "wJal...DENG", "********"},
			excludes: []string{"wJalrXUtnFEMIK7MDENG", "short"},
		},
		{
			name:        "secrets shown",
			showSecrets: true,
			contains:    []string{"wJalrXUtnFEMIK7MDENG", "short"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			err := (&profile.HumanFormatter{}).FormatOptions(&buf, storeopts.CapabilityAWS, testEntries, tt.showSecrets)
			require.NoError(t, err)

			for _, s := range tt.contains {
				assert.Contains(t, buf.String(), s)
			}
			for _, s := range tt.excludes {
				assert.NotContains(t, buf.String(), s)
			}
		})
	}

	t.Run("quiet prints nothing", func(t *testing.T) {
		var buf bytes.Buffer
		err := (&profile.HumanFormatter{Quiet: true}).FormatOptions(&buf, storeopts.CapabilityAWS, testEntries, false)
		require.NoError(t, err)
		assert.Empty(t, buf.String())
	})
}

func TestJSONFormatter_FormatOptions(t *testing.T) {
	var buf bytes.Buffer
	err := (&profile.JSONFormatter{}).FormatOptions(&buf, storeopts.CapabilityAWS, testEntries, false)
	require.NoError(t, err)

	var output struct {
		Provider string         `json:"provider"`
		Valid    bool           `json:"valid"`
		Options  []schema.Entry `json:"options"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &output))

	assert.Equal(t, "aws", output.Provider)
	assert.True(t, output.Valid)
	require.Len(t, output.Options, 3)
	assert.Equal(t, "us-east-1", output.Options[0].Value)
	assert.Equal(t, "wJal...DENG", output.Options[1].Value)
	assert.Equal(t, "********", output.Options[2].Value)

	// input is not modified
	assert.Equal(t, "short", testEntries[2].Value)
}

func TestFormatKeys(t *testing.T) {
	keys := []storeopts.KeyInfo{{Name: "region"}, {Name: "secret_access_key", Secret: true}}

	t.Run("human", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, (&profile.HumanFormatter{}).FormatKeys(&buf, storeopts.CapabilityAWS, keys))
		assert.Equal(t, "aws keys:\n  region\n  secret_access_key (secret)\n", buf.String())
	})

	t.Run("human quiet", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, (&profile.HumanFormatter{Quiet: true}).FormatKeys(&buf, storeopts.CapabilityAWS, keys))
		assert.Equal(t, "region\nsecret_access_key\n", buf.String())
	})

	t.Run("json", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, (&profile.JSONFormatter{}).FormatKeys(&buf, storeopts.CapabilityAWS, keys))

		var output struct {
			Provider string              `json:"provider"`
			Keys     []storeopts.KeyInfo `json:"keys"`
		}
		require.NoError(t, json.Unmarshal(buf.Bytes(), &output))
		assert.Equal(t, "aws", output.Provider)
		assert.Equal(t, keys, output.Keys)
	})
}

func TestFormatTransport(t *testing.T) {
	cfg := transport.Default()
	cfg.Timeout = 90 * time.Second
	cfg.DefaultHeaders = map[string]string{"x-env": "prod"}

	t.Run("human", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, (&profile.HumanFormatter{}).FormatTransport(&buf, cfg))

		out := buf.String()
		assert.Regexp(t, `timeout\s+1m30s`, out)
		assert.Regexp(t, `user_agent\s+storeopts`, out)
		assert.Regexp(t, `proxy_url\s+\(not set\)`, out)
		assert.Regexp(t, `retry.max_retries\s+10`, out)
		assert.Contains(t, out, "header x-env: prod")
	})

	t.Run("json", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, (&profile.JSONFormatter{}).FormatTransport(&buf, cfg))

		var output struct {
			Options map[string]string `json:"options"`
			Headers map[string]string `json:"default_headers"`
			Retry   struct {
				MaxRetries int    `json:"max_retries"`
				MaxBackoff string `json:"max_backoff"`
			} `json:"retry"`
		}
		require.NoError(t, json.Unmarshal(buf.Bytes(), &output))
		assert.Equal(t, "1m30s", output.Options["timeout"])
		assert.Equal(t, "prod", output.Headers["x-env"])
		assert.Equal(t, 10, output.Retry.MaxRetries)
		assert.Equal(t, "15s", output.Retry.MaxBackoff)
	})
}

func TestFormatError(t *testing.T) {
	t.Run("human", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, (&profile.HumanFormatter{}).FormatError(&buf, errors.New("test error")))
		assert.Equal(t, "Error: test error\n", buf.String())
	})

	t.Run("json", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, (&profile.JSONFormatter{}).FormatError(&buf, errors.New("test error")))

		var output map[string]string
		require.NoError(t, json.Unmarshal(buf.Bytes(), &output))
		assert.Equal(t, "test error", output["error"])
	})
}

var testProfiles = []profile.Profile{
	{
		Name:     "minio",
		Provider: "aws",
		Options: map[string]string{
			"endpoint":          "http://localhost:9000",
			"secret_access_key": "minioadmin-secret",
		},
	},
	{Name: "gcs", Provider: "gcp"},
}

func TestHumanFormatter_FormatProfileList(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, (&profile.HumanFormatter{}).FormatProfileList(&buf, testProfiles, "minio"))

	out := buf.String()
	assert.Contains(t, out, "NAME")
	assert.Contains(t, out, "PROVIDER")
	assert.Regexp(t, `\* minio\s+aws\s+2`, out)
	assert.Regexp(t, `  gcs\s+gcp\s+0`, out)

	t.Run("empty", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, (&profile.HumanFormatter{}).FormatProfileList(&buf, nil, ""))
		assert.Contains(t, buf.String(), "No profiles configured")
	})
}

func TestHumanFormatter_FormatProfileShow(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, (&profile.HumanFormatter{}).FormatProfileShow(&buf, testProfiles[0], true, false))

	out := buf.String()
	assert.Contains(t, out, "Name:     minio (default)")
	assert.Contains(t, out, "Provider: aws")
	assert.Contains(t, out, "endpoint: http://localhost:9000")
	assert.Contains(t, out, "secret_access_key: mini...cret")
	assert.NotContains(t, out, "minioadmin-secret")
}

func TestJSONFormatter_Profiles(t *testing.T) {
	t.Run("list masks secrets", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, (&profile.JSONFormatter{}).FormatProfileList(&buf, testProfiles, "gcs"))

		var output struct {
			Profiles []struct {
				Name    string            `json:"name"`
				Options map[string]string `json:"options"`
				Default bool              `json:"default"`
			} `json:"profiles"`
		}
		require.NoError(t, json.Unmarshal(buf.Bytes(), &output))
		require.Len(t, output.Profiles, 2)
		assert.Equal(t, "mini...cret", output.Profiles[0].Options["secret_access_key"])
		assert.False(t, output.Profiles[0].Default)
		assert.True(t, output.Profiles[1].Default)
	})

	t.Run("show with secrets", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, (&profile.JSONFormatter{}).FormatProfileShow(&buf, testProfiles[0], false, true))

		var output map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &output))
		opts, ok := output["options"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "minioadmin-secret", opts["secret_access_key"])
	})
}
