package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/sagarc03/storeopts/config"
	"github.com/sagarc03/storeopts/profile"
	"github.com/sagarc03/storeopts/schema"
)

var (
	version = "dev"

	cfgFiles     []string
	profileName  string
	profilesFile string
	jsonOutput   bool
	quiet        bool
	showSecrets  bool
)

var rootCmd = &cobra.Command{
	Use:     "storeopts",
	Version: version,
	Short:   "Validate object store options for Azure, S3 and GCS",
	Long: `storeopts collects object store settings from config files, profiles,
the environment and flags, and checks them against the key vocabulary of
each provider.

Option sources, later ones winning on the same key:
  - profile (--profile or STOREOPTS_PROFILE)
  - AWS shared config profile (--aws-profile)
  - .env files (--env-file) and the process environment (--env)
  - config file options (--config)
  - --option key=value flags`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := config.Load(cfgFiles, cmd.Flags())
		if err != nil {
			return err
		}

		if err := applyProfile(cfg); err != nil {
			return err
		}

		setupLogging(cfg.Log)
		cmd.SetContext(config.WithContext(cmd.Context(), cfg))
		return nil
	},
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringSliceVarP(&cfgFiles, "config", "c", nil, "config file(s), merged left to right (default: ./storeopts.yaml)")
	pf.StringVarP(&profileName, "profile", "p", "", "profile name (env: STOREOPTS_PROFILE)")
	pf.StringVar(&profilesFile, "profiles-file", "", "profile file (default: ~/.storeopts/profiles.yaml, env: STOREOPTS_PROFILES)")
	pf.BoolVar(&jsonOutput, "json", false, "output as JSON")
	pf.BoolVarP(&quiet, "quiet", "q", false, "suppress non-essential output")
	pf.BoolVar(&showSecrets, "show-secrets", false, "show secret values")

	pf.String("provider", "", "provider: azure, aws, gcp (env: STOREOPTS_PROVIDER)")
	pf.StringSlice("providers", nil, "enabled capabilities (default: all)")
	pf.String("log-level", "", "log level: debug, info, warn, error (env: STOREOPTS_LOG_LEVEL)")
	pf.Bool("env", false, "collect provider variables from the environment")
	pf.StringSlice("env-file", nil, ".env file(s) to collect provider variables from")
	pf.String("aws-profile", "", "AWS shared config profile to read credentials and region from")
	pf.StringToStringP("option", "o", nil, "raw option key=value (repeatable)")
	pf.StringToString("transport-option", nil, "client option key=value (repeatable)")

	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(keysCmd)
	rootCmd.AddCommand(transportCmd)
	rootCmd.AddCommand(envCmd)
	rootCmd.AddCommand(profileCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// getFormatter returns the appropriate formatter based on flags.
func getFormatter() profile.Formatter {
	return profile.NewFormatter(jsonOutput, quiet)
}

func getProfilesPath() string {
	if profilesFile != "" {
		return profilesFile
	}
	if p := profile.PathFromEnv(); p != "" {
		return p
	}
	return profile.DefaultPath()
}

// applyProfile layers the selected profile underneath cfg. Its options go to
// ProfileOptions, the weakest source in Build; its provider and transport
// settings only fill what cfg leaves unset.
func applyProfile(cfg *config.Config) error {
	name := profileName
	if name == "" {
		name = profile.NameFromEnv()
	}
	if name == "" {
		return nil
	}

	f, err := profile.Load(getProfilesPath())
	if err != nil {
		return err
	}
	p, err := f.Get(name)
	if err != nil {
		return err
	}

	base := p.Config()
	if cfg.Provider == "" {
		cfg.Provider = base.Provider
	}
	if len(cfg.Providers) == 0 {
		cfg.Providers = base.Providers
	}
	cfg.ProfileOptions = base.Options
	cfg.Transport = overlay(base.Transport, cfg.Transport)
	return nil
}

func overlay(base, top map[string]string) map[string]string {
	out := make(map[string]string, len(base)+len(top))
	for _, m := range []map[string]string{base, top} {
		for k, v := range m {
			out[schema.Normalize(k)] = v
		}
	}
	return out
}
