// Package aws declares the configuration keys recognised for Amazon S3 and
// S3-compatible stores.
package aws

import "github.com/sagarc03/storeopts/schema"

// Provider is the name used in errors and capability lists.
const Provider = "aws"

// EnvPrefix is stripped from environment variable names to reach a key,
// so AWS_SECRET_ACCESS_KEY resolves to SecretAccessKey.
const EnvPrefix = "AWS_"

// ConfigKey is a recognised S3 configuration key.
type ConfigKey string

const (
	// AccessKeyID is the access key half of static credentials.
	AccessKeyID ConfigKey = "access_key_id"
	// SecretAccessKey is the secret half of static credentials.
	SecretAccessKey ConfigKey = "secret_access_key"
	// SessionToken accompanies temporary credentials.
	SessionToken ConfigKey = "session_token"
	Region       ConfigKey = "region"
	// DefaultRegion is used when Region is unset.
	DefaultRegion ConfigKey = "default_region"
	Bucket        ConfigKey = "bucket"
	// Endpoint overrides the service URL, e.g. for MinIO.
	Endpoint ConfigKey = "endpoint"
	Profile  ConfigKey = "profile"
	// ImdsV1Fallback allows the instance metadata service v1 when v2 fails.
	ImdsV1Fallback ConfigKey = "imdsv1_fallback"
	// VirtualHostedStyleRequest puts the bucket in the host name instead of the path.
	VirtualHostedStyleRequest ConfigKey = "virtual_hosted_style_request"
	MetadataEndpoint          ConfigKey = "metadata_endpoint"
	// ContainerCredentialsRelativeURI is the ECS task role credentials path.
	ContainerCredentialsRelativeURI ConfigKey = "container_credentials_relative_uri"
	ChecksumAlgorithm               ConfigKey = "checksum_algorithm"
	CopyIfNotExists                 ConfigKey = "copy_if_not_exists"
	ConditionalPut                  ConfigKey = "conditional_put"
	UnsignedPayload                 ConfigKey = "unsigned_payload"
	SkipSignature                   ConfigKey = "skip_signature"
	DisableTagging                  ConfigKey = "disable_tagging"
	S3Express                       ConfigKey = "s3_express"
)

// Schema is the S3 key vocabulary.
var Schema = schema.New(schema.Definition[ConfigKey]{
	Provider: Provider,
	Keys: []ConfigKey{
		AccessKeyID,
		SecretAccessKey,
		SessionToken,
		Region,
		DefaultRegion,
		Bucket,
		Endpoint,
		Profile,
		ImdsV1Fallback,
		VirtualHostedStyleRequest,
		MetadataEndpoint,
		ContainerCredentialsRelativeURI,
		ChecksumAlgorithm,
		CopyIfNotExists,
		ConditionalPut,
		UnsignedPayload,
		SkipSignature,
		DisableTagging,
		S3Express,
	},
	Secrets: []ConfigKey{SecretAccessKey, SessionToken},
})

// ParseConfigKey resolves a key name case-insensitively.
func ParseConfigKey(s string) (ConfigKey, error) {
	return Schema.Parse(s)
}

func (k ConfigKey) String() string {
	return string(k)
}
