package storeopts_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sagarc03/storeopts"
	"github.com/sagarc03/storeopts/aws"
	"github.com/sagarc03/storeopts/azure"
	"github.com/sagarc03/storeopts/gcp"
	"github.com/sagarc03/storeopts/schema"
	"github.com/sagarc03/storeopts/transport"
)

func TestKnownKeys(t *testing.T) {
	tests := []struct {
		name    string
		cap     storeopts.Capability
		count   int
		first   string
		secrets []string
	}{
		{
			name:    "azure",
			cap:     storeopts.CapabilityAzure,
			count:   len(azure.Schema.Keys()),
			first:   azure.AccountName.String(),
			secrets: []string{"account_key", "client_secret", "sas_key", "token"},
		},
		{
			name:    "aws",
			cap:     storeopts.CapabilityAWS,
			count:   len(aws.Schema.Keys()),
			first:   aws.AccessKeyID.String(),
			secrets: []string{"secret_access_key", "session_token"},
		},
		{
			name:    "gcp",
			cap:     storeopts.CapabilityGCP,
			count:   len(gcp.Schema.Keys()),
			first:   gcp.ServiceAccount.String(),
			secrets: []string{"service_account_key"},
		},
		{
			name:  "http reports transport keys",
			cap:   storeopts.CapabilityHTTP,
			count: len(transport.Schema.Keys()),
			first: transport.Schema.Keys()[0].String(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			keys, err := storeopts.KnownKeys(tt.cap)
			require.NoError(t, err)
			require.Len(t, keys, tt.count)
			assert.Equal(t, tt.first, keys[0].Name)

			var secrets []string
			for _, k := range keys {
				if k.Secret {
					secrets = append(secrets, k.Name)
				}
			}
			assert.ElementsMatch(t, tt.secrets, secrets)
		})
	}

	_, err := storeopts.KnownKeys("ftp")
	assert.Error(t, err)
}

func TestStoreOptions_Entries(t *testing.T) {
	opts := storeopts.New([]storeopts.Pair{
		{Key: "secret_access_key", Value: "s3cr3t"},
		{Key: "Region", Value: "us-east-1"},
	})

	entries, err := opts.Entries(storeopts.CapabilityAWS)
	require.NoError(t, err)
	assert.Equal(t, []schema.Entry{
		{Key: "region", Value: "us-east-1"},
		{Key: "secret_access_key", Value: "s3cr3t", Secret: true},
	}, entries)

	_, err = opts.Entries(storeopts.CapabilityAzure)
	assert.True(t, errors.Is(err, storeopts.ErrUnknownKey))

	_, err = opts.Entries("ftp")
	assert.Error(t, err)
}

func TestStoreOptions_EntriesHTTP(t *testing.T) {
	opts := storeopts.New(
		[]storeopts.Pair{{Key: "timeout", Value: "5s"}},
		storeopts.WithCapabilities(storeopts.NewCapabilities(storeopts.CapabilityHTTP)),
	)

	entries, err := opts.Entries(storeopts.CapabilityHTTP)
	require.NoError(t, err)
	assert.Equal(t, []schema.Entry{{Key: "timeout", Value: "5s"}}, entries)

	_, err = opts.Entries(storeopts.CapabilityAWS)
	assert.True(t, errors.Is(err, storeopts.ErrCapabilityDisabled))
}
