package main

import (
	"errors"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/sagarc03/storeopts"
	"github.com/sagarc03/storeopts/config"
)

var errNoProvider = errors.New("no provider given: pass one as an argument, use --provider, or set provider in the config")

var validateCmd = &cobra.Command{
	Use:   "validate [provider]",
	Short: "Validate options against a provider",
	Long: `Validate the collected options against the key vocabulary of one provider.

Every key must be recognised. The first unknown key is reported and nothing
is printed for the rest. Values are not checked.

Examples:
  storeopts validate aws -o region=us-east-1 -o endpoint=http://localhost:9000
  storeopts validate --config storeopts.yaml
  storeopts validate azure --env --json`,
	Args: cobra.MaximumNArgs(1),
	RunE: runValidate,
}

func runValidate(cmd *cobra.Command, args []string) error {
	cfg, err := config.FromContext(cmd.Context())
	if err != nil {
		return err
	}

	c, err := resolveProvider(cfg, args)
	if err != nil {
		return err
	}

	opts, err := cfg.Build(cmd.Context())
	if err != nil {
		_ = getFormatter().FormatError(os.Stderr, err)
		return err
	}

	slog.Debug("validating options", "provider", c, "keys", opts.Raw().Len(), "capabilities", opts.Capabilities().String())

	entries, err := opts.Entries(c)
	if err != nil {
		_ = getFormatter().FormatError(os.Stderr, err)
		return err
	}

	return getFormatter().FormatOptions(os.Stdout, c, entries, showSecrets)
}

// resolveProvider picks the provider from the first argument, falling back
// to the configured one.
func resolveProvider(cfg *config.Config, args []string) (storeopts.Capability, error) {
	name := cfg.Provider
	if len(args) > 0 {
		name = args[0]
	}
	if name == "" {
		return "", errNoProvider
	}
	return storeopts.ParseCapability(name)
}
