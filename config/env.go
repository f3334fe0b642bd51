package config

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/joho/godotenv"

	"github.com/sagarc03/storeopts"
	"github.com/sagarc03/storeopts/aws"
	"github.com/sagarc03/storeopts/azure"
	"github.com/sagarc03/storeopts/gcp"
	"github.com/sagarc03/storeopts/schema"
)

// ErrUnknownProvider is returned for a provider name with no environment mapping.
var ErrUnknownProvider = errors.New("unknown provider")

type envSource struct {
	// prefixes are tried least specific first so the more specific one wins.
	prefixes []string
	has      func(string) bool
}

var envSources = map[string]envSource{
	azure.Provider: {prefixes: azure.EnvPrefixes, has: azure.Schema.Has},
	aws.Provider:   {prefixes: []string{aws.EnvPrefix}, has: aws.Schema.Has},
	gcp.Provider:   {prefixes: []string{gcp.EnvPrefix}, has: gcp.Schema.Has},
}

// FromEnviron collects the variables of one provider from an environment
// in os.Environ form. The prefix is stripped and the rest lowercased;
// names the provider does not recognise are skipped.
//
// AZURE_STORAGE_ACCOUNT_NAME=devstore becomes account_name=devstore for
// provider "azure".
func FromEnviron(provider string, environ []string) ([]storeopts.Pair, error) {
	vars := make(map[string]string, len(environ))
	for _, kv := range environ {
		k, v, ok := strings.Cut(kv, "=")
		if !ok {
			continue
		}
		vars[k] = v
	}
	return fromVars(provider, vars)
}

// FromDotenv is FromEnviron over one or more .env files. Later files
// override earlier ones. The process environment is not touched.
func FromDotenv(provider string, files ...string) ([]storeopts.Pair, error) {
	if len(files) == 0 {
		return nil, nil
	}

	vars, err := godotenv.Read(files...)
	if err != nil {
		return nil, fmt.Errorf("read env files: %w", err)
	}
	return fromVars(provider, vars)
}

func fromVars(provider string, vars map[string]string) ([]storeopts.Pair, error) {
	src, ok := envSources[schema.Normalize(provider)]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownProvider, provider)
	}

	names := slices.Sorted(maps.Keys(vars))

	var pairs []storeopts.Pair
	for _, prefix := range src.prefixes {
		for _, name := range names {
			rest, ok := strings.CutPrefix(name, prefix)
			if !ok || rest == "" {
				continue
			}

			key := schema.Normalize(rest)
			if !src.has(key) {
				continue
			}
			pairs = append(pairs, storeopts.Pair{Key: key, Value: vars[name]})
		}
	}
	return pairs, nil
}

// FromAWSProfile reads a named profile from the AWS shared config and
// credentials files. Empty file lists fall back to the SDK defaults
// (~/.aws/config and ~/.aws/credentials, or AWS_CONFIG_FILE and
// AWS_SHARED_CREDENTIALS_FILE).
func FromAWSProfile(ctx context.Context, profile string, configFiles, credentialsFiles []string) ([]storeopts.Pair, error) {
	sc, err := awsconfig.LoadSharedConfigProfile(ctx, profile, func(o *awsconfig.LoadSharedConfigOptions) {
		if len(configFiles) > 0 {
			o.ConfigFiles = configFiles
		}
		if len(credentialsFiles) > 0 {
			o.CredentialsFiles = credentialsFiles
		}
	})
	if err != nil {
		return nil, fmt.Errorf("load aws profile %q: %w", profile, err)
	}

	pairs := []storeopts.Pair{{Key: aws.Profile.String(), Value: sc.Profile}}
	add := func(k aws.ConfigKey, v string) {
		if v != "" {
			pairs = append(pairs, storeopts.Pair{Key: k.String(), Value: v})
		}
	}
	add(aws.Region, sc.Region)
	add(aws.AccessKeyID, sc.Credentials.AccessKeyID)
	add(aws.SecretAccessKey, sc.Credentials.SecretAccessKey)
	add(aws.SessionToken, sc.Credentials.SessionToken)

	return pairs, nil
}
