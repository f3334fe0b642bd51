// Package azure declares the configuration keys recognised for Azure Blob
// Storage.
package azure

import "github.com/sagarc03/storeopts/schema"

// Provider is the name used in errors and capability lists.
const Provider = "azure"

// EnvPrefixes are stripped from environment variable names to reach a key,
// least specific first. AZURE_STORAGE_ACCOUNT_NAME resolves to AccountName
// and AZURE_CLIENT_ID to ClientID.
var EnvPrefixes = []string{"AZURE_", "AZURE_STORAGE_"}

// ConfigKey is a recognised Azure configuration key.
type ConfigKey string

const (
	// AccountName is the storage account.
	AccountName ConfigKey = "account_name"
	// AccountKey is the shared master key for the account.
	AccountKey ConfigKey = "account_key"
	// ClientID is the service principal or managed identity client id.
	ClientID     ConfigKey = "client_id"
	ClientSecret ConfigKey = "client_secret"
	// TenantID is the authority the client authenticates against.
	TenantID ConfigKey = "tenant_id"
	// SasKey is a shared access signature query string.
	SasKey ConfigKey = "sas_key"
	// Token is a bearer token used as-is.
	Token       ConfigKey = "token"
	UseEmulator ConfigKey = "use_emulator"
	Endpoint    ConfigKey = "endpoint"
	// MsiEndpoint overrides the managed identity token endpoint.
	MsiEndpoint        ConfigKey = "msi_endpoint"
	ObjectID           ConfigKey = "object_id"
	MsiResourceID      ConfigKey = "msi_resource_id"
	FederatedTokenFile ConfigKey = "federated_token_file"
	UseAzureCli        ConfigKey = "use_azure_cli"
	UseFabricEndpoint  ConfigKey = "use_fabric_endpoint"
	ContainerName      ConfigKey = "container_name"
	DisableTagging     ConfigKey = "disable_tagging"
	SkipSignature      ConfigKey = "skip_signature"
)

// Schema is the Azure key vocabulary.
var Schema = schema.New(schema.Definition[ConfigKey]{
	Provider: Provider,
	Keys: []ConfigKey{
		AccountName,
		AccountKey,
		ClientID,
		ClientSecret,
		TenantID,
		SasKey,
		Token,
		UseEmulator,
		Endpoint,
		MsiEndpoint,
		ObjectID,
		MsiResourceID,
		FederatedTokenFile,
		UseAzureCli,
		UseFabricEndpoint,
		ContainerName,
		DisableTagging,
		SkipSignature,
	},
	Secrets: []ConfigKey{AccountKey, ClientSecret, SasKey, Token},
})

// ParseConfigKey resolves a key name case-insensitively.
func ParseConfigKey(s string) (ConfigKey, error) {
	return Schema.Parse(s)
}

func (k ConfigKey) String() string {
	return string(k)
}
