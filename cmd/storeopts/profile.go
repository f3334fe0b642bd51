package main

import (
	"errors"
	"fmt"
	"maps"
	"os"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"

	"github.com/sagarc03/storeopts"
	"github.com/sagarc03/storeopts/config"
	"github.com/sagarc03/storeopts/profile"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Manage option profiles",
	Long: `Manage named option profiles in the profile file.

Profiles save the options for one provider so they can be reused with
--profile or STOREOPTS_PROFILE.

Profiles are stored in ~/.storeopts/profiles.yaml`,
}

var profileListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all profiles",
	Long: `List all profiles in the profile file.

The default profile is marked with an asterisk (*).`,
	RunE: runProfileList,
}

var profileAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add a new profile",
	Long: `Add a new profile.

With --provider and --option flags the profile is created directly.
Otherwise you will be prompted for:
  - Provider
  - Option keys and values (secret values are masked)
  - Whether to set as default

The options are validated against the provider before saving.`,
	Args: cobra.ExactArgs(1),
	RunE: runProfileAdd,
}

var profileRemoveCmd = &cobra.Command{
	Use:     "remove <name>",
	Aliases: []string{"rm"},
	Short:   "Remove a profile",
	Args:    cobra.ExactArgs(1),
	RunE:    runProfileRemove,
}

var profileSetDefaultCmd = &cobra.Command{
	Use:   "set-default <name>",
	Short: "Set the default profile",
	Args:  cobra.ExactArgs(1),
	RunE:  runProfileSetDefault,
}

var profileShowCmd = &cobra.Command{
	Use:   "show [name]",
	Short: "Show profile details",
	Long: `Show details for a profile.

If no name is provided, shows the default profile.
Secrets are hidden by default; use --show-secrets to reveal them.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runProfileShow,
}

var (
	assumeYes   bool
	makeDefault bool
)

const doneItem = "(done)"

func init() {
	profileCmd.AddCommand(profileListCmd)
	profileCmd.AddCommand(profileAddCmd)
	profileCmd.AddCommand(profileRemoveCmd)
	profileCmd.AddCommand(profileSetDefaultCmd)
	profileCmd.AddCommand(profileShowCmd)

	profileAddCmd.Flags().BoolVar(&makeDefault, "default", false, "set as default profile")
	profileRemoveCmd.Flags().BoolVarP(&assumeYes, "yes", "y", false, "do not ask for confirmation")
}

func runProfileList(_ *cobra.Command, _ []string) error {
	path := getProfilesPath()

	f, err := profile.LoadOrEmpty(path)
	if err != nil {
		return fmt.Errorf("load profiles: %w", err)
	}

	if len(f.Profiles) == 0 && !jsonOutput {
		fmt.Println("No profiles configured.")
		fmt.Println("Run 'storeopts profile add <name>' to create one.")
		return nil
	}

	return getFormatter().FormatProfileList(os.Stdout, f.Profiles, f.DefaultName())
}

func runProfileAdd(cmd *cobra.Command, args []string) error {
	name := args[0]
	path := getProfilesPath()

	f, err := profile.LoadOrEmpty(path)
	if err != nil {
		return fmt.Errorf("load profiles: %w", err)
	}

	existing, _ := f.Get(name)
	if existing != nil && !cmd.Flags().Changed("option") {
		prompt := promptui.Prompt{
			Label:     fmt.Sprintf("Profile '%s' already exists. Update it", name),
			IsConfirm: true,
		}
		if _, promptErr := prompt.Run(); promptErr != nil {
			fmt.Println("Cancelled.")
			return nil //nolint:nilerr // User cancelled, not an error
		}
	}

	var p profile.Profile
	if cmd.Flags().Changed("option") {
		p, err = profileFromFlags(cmd, name)
	} else {
		p, err = promptProfile(name, len(f.Profiles) == 0)
	}
	if err != nil {
		return handlePromptError(err)
	}

	if _, err := p.Entries(); err != nil {
		_ = getFormatter().FormatError(os.Stderr, err)
		return err
	}

	if existing != nil {
		err = f.Update(p)
	} else {
		err = f.Add(p)
	}
	if err != nil {
		return fmt.Errorf("add profile: %w", err)
	}

	if err := f.Save(path); err != nil {
		return fmt.Errorf("save profiles: %w", err)
	}

	if existing != nil {
		fmt.Printf("Profile '%s' updated.\n", name)
	} else {
		fmt.Printf("Profile '%s' added.\n", name)
	}

	if p.Default {
		fmt.Printf("Set as default profile.\n")
	}

	return nil
}

func profileFromFlags(cmd *cobra.Command, name string) (profile.Profile, error) {
	cfg, err := config.FromContext(cmd.Context())
	if err != nil {
		return profile.Profile{}, err
	}
	if cfg.Provider == "" {
		return profile.Profile{}, errNoProvider
	}

	return profile.Profile{
		Name:      name,
		Provider:  cfg.Provider,
		Options:   maps.Clone(cfg.Options),
		Transport: maps.Clone(cfg.Transport),
		Default:   makeDefault,
	}, nil
}

// promptProfile asks for a provider and then for keys until the user picks
// the done item.
func promptProfile(name string, first bool) (profile.Profile, error) {
	providerSelect := promptui.Select{
		Label: "Provider",
		Items: []string{string(storeopts.CapabilityAWS), string(storeopts.CapabilityAzure), string(storeopts.CapabilityGCP)},
	}
	_, providerName, err := providerSelect.Run()
	if err != nil {
		return profile.Profile{}, err
	}

	c, err := storeopts.ParseCapability(providerName)
	if err != nil {
		return profile.Profile{}, err
	}
	keys, err := storeopts.KnownKeys(c)
	if err != nil {
		return profile.Profile{}, err
	}

	items := make([]string, 0, len(keys)+1)
	items = append(items, doneItem)
	secret := make(map[string]bool, len(keys))
	for _, k := range keys {
		items = append(items, k.Name)
		secret[k.Name] = k.Secret
	}

	opts := make(map[string]string)
	for {
		keySelect := promptui.Select{
			Label: "Option key",
			Items: items,
			Size:  10,
			Searcher: func(input string, index int) bool {
				return strings.Contains(items[index], strings.ToLower(input))
			},
		}
		_, key, err := keySelect.Run()
		if err != nil {
			return profile.Profile{}, err
		}
		if key == doneItem {
			break
		}

		valuePrompt := promptui.Prompt{
			Label:   key,
			Default: opts[key],
		}
		if secret[key] {
			valuePrompt.Mask = '*'
			valuePrompt.Default = ""
		}
		value, err := valuePrompt.Run()
		if err != nil {
			return profile.Profile{}, err
		}
		opts[key] = value
	}

	setAsDefault := first || makeDefault
	if !setAsDefault {
		defaultPrompt := promptui.Prompt{
			Label:     "Set as default profile",
			IsConfirm: true,
		}
		if _, promptErr := defaultPrompt.Run(); promptErr == nil {
			setAsDefault = true
		}
	}

	return profile.Profile{
		Name:     name,
		Provider: providerName,
		Options:  opts,
		Default:  setAsDefault,
	}, nil
}

func runProfileRemove(_ *cobra.Command, args []string) error {
	name := args[0]
	path := getProfilesPath()

	f, err := profile.Load(path)
	if err != nil {
		return fmt.Errorf("load profiles: %w", err)
	}

	// Check if profile exists
	if _, err = f.Get(name); err != nil {
		return err
	}

	if !assumeYes {
		prompt := promptui.Prompt{
			Label:     fmt.Sprintf("Remove profile '%s'", name),
			IsConfirm: true,
		}
		if _, promptErr := prompt.Run(); promptErr != nil {
			fmt.Println("Cancelled.")
			return nil //nolint:nilerr // User cancelled, not an error
		}
	}

	if err := f.Remove(name); err != nil {
		return fmt.Errorf("remove profile: %w", err)
	}

	if err := f.Save(path); err != nil {
		return fmt.Errorf("save profiles: %w", err)
	}

	fmt.Printf("Profile '%s' removed.\n", name)
	return nil
}

func runProfileSetDefault(_ *cobra.Command, args []string) error {
	name := args[0]
	path := getProfilesPath()

	f, err := profile.Load(path)
	if err != nil {
		return fmt.Errorf("load profiles: %w", err)
	}

	if err := f.SetDefault(name); err != nil {
		return err
	}

	if err := f.Save(path); err != nil {
		return fmt.Errorf("save profiles: %w", err)
	}

	fmt.Printf("Default profile set to '%s'.\n", name)
	return nil
}

func runProfileShow(_ *cobra.Command, args []string) error {
	f, err := profile.Load(getProfilesPath())
	if err != nil {
		return fmt.Errorf("load profiles: %w", err)
	}

	name := ""
	if len(args) > 0 {
		name = args[0]
	}

	p, err := f.Get(name)
	if err != nil {
		return err
	}

	return getFormatter().FormatProfileShow(os.Stdout, *p, p.Name == f.DefaultName(), showSecrets)
}

// handlePromptError handles promptui errors.
func handlePromptError(err error) error {
	if errors.Is(err, promptui.ErrInterrupt) {
		fmt.Println("\nCancelled.")
		os.Exit(0)
	}
	if errors.Is(err, promptui.ErrAbort) || errors.Is(err, promptui.ErrEOF) {
		fmt.Println("Cancelled.")
		return nil
	}
	return err
}
