package azure_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sagarc03/storeopts/azure"
	"github.com/sagarc03/storeopts/schema"
)

func TestParseConfigKey(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantKey   azure.ConfigKey
		wantError bool
	}{
		{
			name:    "account name",
			input:   "account_name",
			wantKey: azure.AccountName,
		},
		{
			name:    "uppercase account key",
			input:   "ACCOUNT_KEY",
			wantKey: azure.AccountKey,
		},
		{
			name:    "tenant id",
			input:   "Tenant_Id",
			wantKey: azure.TenantID,
		},
		{
			name:    "use emulator",
			input:   "use_emulator",
			wantKey: azure.UseEmulator,
		},
		{
			name:      "unknown key",
			input:     "bad_key",
			wantError: true,
		},
		{
			name:      "s3 key",
			input:     "region",
			wantError: true,
		},
		{
			name:      "prefixed form is not accepted",
			input:     "azure_storage_account_name",
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key, err := azure.ParseConfigKey(tt.input)
			if tt.wantError {
				require.Error(t, err)
				assert.True(t, errors.Is(err, schema.ErrUnknownKey))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantKey, key)
		})
	}
}

func TestSchema_EveryKeyRoundTrips(t *testing.T) {
	for _, k := range azure.Schema.Keys() {
		parsed, err := azure.ParseConfigKey(k.String())
		require.NoError(t, err)
		assert.Equal(t, k, parsed)
	}
}

func TestSchema_Secrets(t *testing.T) {
	for _, k := range []azure.ConfigKey{azure.AccountKey, azure.ClientSecret, azure.SasKey, azure.Token} {
		assert.True(t, azure.Schema.IsSecret(k), k)
	}
	assert.False(t, azure.Schema.IsSecret(azure.AccountName))
}
