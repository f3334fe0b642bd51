package main

import (
	"errors"
	"os"

	"github.com/spf13/cobra"

	"github.com/sagarc03/storeopts/config"
)

var transportCmd = &cobra.Command{
	Use:   "transport",
	Short: "Show the resolved client transport settings",
	Long: `Decode the transport section of the config (and --transport-option flags)
over the defaults and print the result, including the retry policy.

Examples:
  storeopts transport
  storeopts transport --transport-option timeout=5s --transport-option allow_http=true`,
	Args: cobra.NoArgs,
	RunE: runTransport,
}

func runTransport(cmd *cobra.Command, _ []string) error {
	cfg, err := config.FromContext(cmd.Context())
	if err != nil {
		return err
	}

	opts, err := cfg.Build(cmd.Context())
	if err != nil {
		_ = getFormatter().FormatError(os.Stderr, err)
		return err
	}

	tc, ok := opts.TransportConfig()
	if !ok {
		return errors.New("no enabled provider uses a transport")
	}

	return getFormatter().FormatTransport(os.Stdout, tc)
}
