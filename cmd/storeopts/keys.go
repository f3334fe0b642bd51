package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/sagarc03/storeopts"
)

var keysCmd = &cobra.Command{
	Use:   "keys <provider>",
	Short: "List the keys a provider recognises",
	Long: `List every configuration key recognised for a provider, in declaration order.

Keys whose values are masked on output are marked as secret. The "http"
provider lists the client transport keys.

Examples:
  storeopts keys aws
  storeopts keys azure --json
  storeopts keys http -q`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"azure", "aws", "gcp", "http"},
	RunE:      runKeys,
}

func runKeys(_ *cobra.Command, args []string) error {
	c, err := storeopts.ParseCapability(args[0])
	if err != nil {
		return err
	}

	keys, err := storeopts.KnownKeys(c)
	if err != nil {
		return err
	}

	return getFormatter().FormatKeys(os.Stdout, c, keys)
}
