package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/sagarc03/storeopts"
	"github.com/sagarc03/storeopts/config"
)

var envCmd = &cobra.Command{
	Use:   "env [provider]",
	Short: "Show provider options found in the environment",
	Long: `Collect the variables of one provider from the process environment and
any --env-file files, then print them as validated options.

Only variable names the provider recognises are collected, so the result
always validates. AZURE_STORAGE_ACCOUNT_NAME becomes account_name,
AWS_REGION becomes region and GOOGLE_BUCKET becomes bucket.

Examples:
  storeopts env aws
  storeopts env azure --env-file .env --show-secrets`,
	Args: cobra.MaximumNArgs(1),
	RunE: runEnv,
}

func runEnv(cmd *cobra.Command, args []string) error {
	cfg, err := config.FromContext(cmd.Context())
	if err != nil {
		return err
	}

	c, err := resolveProvider(cfg, args)
	if err != nil {
		return err
	}

	pairs, err := config.FromDotenv(string(c), cfg.Env.Files...)
	if err != nil {
		return err
	}
	fromProcess, err := config.FromEnviron(string(c), os.Environ())
	if err != nil {
		return err
	}
	pairs = append(pairs, fromProcess...)

	opts := storeopts.New(pairs, storeopts.WithCapabilities(storeopts.NewCapabilities(c)))
	entries, err := opts.Entries(c)
	if err != nil {
		_ = getFormatter().FormatError(os.Stderr, err)
		return err
	}

	return getFormatter().FormatOptions(os.Stdout, c, entries, showSecrets)
}
