// Package config provides configuration loading and validation for storeopts.
//
// The package handles YAML configuration files, environment variables, and CLI flags
// with automatic merging and validation using go-playground/validator.
//
// # Configuration Precedence
//
// Values are loaded in this order (later sources override earlier ones):
//
//  1. Default values
//  2. Configuration file(s) - multiple files merged left-to-right
//  3. Environment variables (STOREOPTS_ prefix)
//  4. CLI flags
//
// The --option and --transport-option key=value flags are merged into the
// options and transport maps rather than replacing them.
//
// # Usage
//
//	cfg, err := config.Load([]string{"storeopts.yaml"}, cmd.Flags())
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	opts, err := cfg.Build(ctx)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	s3, err := opts.S3Options()
//
// # Environment Variables
//
// Scalar config keys map to environment variables with STOREOPTS_ prefix:
//   - provider → STOREOPTS_PROVIDER
//   - env.enabled → STOREOPTS_ENV_ENABLED
//   - log.level → STOREOPTS_LOG_LEVEL
//
// Provider settings themselves are read from the usual provider variables
// (AWS_REGION, AZURE_STORAGE_ACCOUNT_NAME, GOOGLE_SERVICE_ACCOUNT, ...) when
// env.enabled is set; see FromEnviron. Named AWS profiles are resolved with
// the AWS SDK shared config loader; see FromAWSProfile.
//
// # Configuration Structure
//
// The Config struct contains:
//   - Provider: backend whose environment variables are collected
//   - Providers: enabled capabilities (azure, aws, gcp, http)
//   - Options: raw provider key/value pairs
//   - Transport: raw client key/value pairs, decoded into transport.Config
//   - Env: environment collection switch and dotenv files
//   - AWS: shared config profile and file overrides
//   - Log: logging level
package config
