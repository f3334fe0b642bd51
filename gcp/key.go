// Package gcp declares the configuration keys recognised for Google Cloud
// Storage.
package gcp

import "github.com/sagarc03/storeopts/schema"

// Provider is the name used in errors and capability lists.
const Provider = "gcp"

// EnvPrefix is stripped from environment variable names to reach a key.
const EnvPrefix = "GOOGLE_"

// ConfigKey is a recognised GCS configuration key.
type ConfigKey string

const (
	// ServiceAccount is the path to a service account JSON file.
	ServiceAccount ConfigKey = "service_account"
	// ServiceAccountKey is the service account JSON itself.
	ServiceAccountKey ConfigKey = "service_account_key"
	Bucket            ConfigKey = "bucket"
	// ApplicationCredentials is the application default credentials file.
	ApplicationCredentials ConfigKey = "application_credentials"
	SkipSignature          ConfigKey = "skip_signature"
)

// Schema is the GCS key vocabulary.
var Schema = schema.New(schema.Definition[ConfigKey]{
	Provider: Provider,
	Keys: []ConfigKey{
		ServiceAccount,
		ServiceAccountKey,
		Bucket,
		ApplicationCredentials,
		SkipSignature,
	},
	Secrets: []ConfigKey{ServiceAccountKey},
})

// ParseConfigKey resolves a key name case-insensitively.
func ParseConfigKey(s string) (ConfigKey, error) {
	return Schema.Parse(s)
}

func (k ConfigKey) String() string {
	return string(k)
}
