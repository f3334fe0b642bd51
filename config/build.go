package config

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/sagarc03/storeopts"
	"github.com/sagarc03/storeopts/schema"
	"github.com/sagarc03/storeopts/transport"
)

// ErrProviderRequired is returned when environment collection is enabled
// without naming the provider whose variables should be read.
var ErrProviderRequired = errors.New("provider is required to collect environment variables")

// Build turns the configuration into StoreOptions.
//
// Raw options are layered, later sources winning on the same key:
//
//  1. the saved profile options (ProfileOptions)
//  2. the AWS shared config profile (aws.profile)
//  3. dotenv files (env.files)
//  4. the process environment (env.enabled)
//  5. the options map
//
// Transport keys are checked against transport.Schema before decoding, so an
// unknown client key fails here with an *schema.UnknownKeyError. Provider
// keys are not validated; call the StoreOptions accessors for that.
func (c *Config) Build(ctx context.Context) (*storeopts.StoreOptions, error) {
	caps := storeopts.AllCapabilities()
	if len(c.Providers) > 0 {
		parsed, err := storeopts.ParseCapabilities(c.Providers)
		if err != nil {
			return nil, fmt.Errorf("parse providers: %w", err)
		}
		caps = parsed
	}

	pairs, err := c.collect(ctx)
	if err != nil {
		return nil, err
	}

	tc, err := c.transportConfig()
	if err != nil {
		return nil, err
	}

	return storeopts.New(pairs,
		storeopts.WithTransport(tc),
		storeopts.WithCapabilities(caps),
	), nil
}

func (c *Config) collect(ctx context.Context) ([]storeopts.Pair, error) {
	pairs := storeopts.PairsFromMap(c.ProfileOptions)

	if c.AWS.Profile != "" {
		p, err := FromAWSProfile(ctx, c.AWS.Profile, c.AWS.ConfigFiles, c.AWS.CredentialsFiles)
		if err != nil {
			return nil, err
		}
		pairs = append(pairs, p...)
	}

	if c.Env.Enabled || len(c.Env.Files) > 0 {
		if c.Provider == "" {
			return nil, ErrProviderRequired
		}

		if len(c.Env.Files) > 0 {
			p, err := FromDotenv(c.Provider, c.Env.Files...)
			if err != nil {
				return nil, err
			}
			pairs = append(pairs, p...)
		}

		if c.Env.Enabled {
			p, err := FromEnviron(c.Provider, os.Environ())
			if err != nil {
				return nil, err
			}
			pairs = append(pairs, p...)
		}
	}

	return append(pairs, storeopts.PairsFromMap(c.Options)...), nil
}

func (c *Config) transportConfig() (transport.Config, error) {
	if len(c.Transport) == 0 {
		return transport.Default(), nil
	}

	raw := storeopts.NewRawOptions(storeopts.PairsFromMap(c.Transport))
	opts, err := schema.Validate(raw, transport.Schema)
	if err != nil {
		return transport.Config{}, fmt.Errorf("build transport: %w", err)
	}

	tc, err := transport.FromOptions(opts)
	if err != nil {
		return transport.Config{}, fmt.Errorf("build transport: %w", err)
	}
	return tc, nil
}
