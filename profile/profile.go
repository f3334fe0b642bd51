package profile

import (
	"fmt"
	"maps"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/sagarc03/storeopts"
	"github.com/sagarc03/storeopts/config"
	"github.com/sagarc03/storeopts/schema"
)

// Profile is a named set of options for one provider.
type Profile struct {
	Name      string            `yaml:"name"`
	Provider  string            `yaml:"provider"`
	Options   map[string]string `yaml:"options,omitempty"`
	Transport map[string]string `yaml:"transport,omitempty"`
	Default   bool              `yaml:"default,omitempty"`
}

// Capability returns the provider as a capability.
func (p Profile) Capability() (storeopts.Capability, error) {
	c, err := storeopts.ParseCapability(p.Provider)
	if err != nil {
		return "", fmt.Errorf("profile %s: %w", p.Name, err)
	}
	return c, nil
}

// Config converts the profile into a loader configuration that only
// enables the profile's provider.
func (p Profile) Config() *config.Config {
	return &config.Config{
		Provider:  schema.Normalize(p.Provider),
		Providers: []string{schema.Normalize(p.Provider)},
		Options:   maps.Clone(p.Options),
		Transport: maps.Clone(p.Transport),
		Log:       config.LogConfig{Level: "info"},
	}
}

// Entries validates the options against the profile's provider.
func (p Profile) Entries() ([]schema.Entry, error) {
	c, err := p.Capability()
	if err != nil {
		return nil, err
	}
	return storeopts.FromMap(p.Options).Entries(c)
}

// File holds the full profile file structure.
type File struct {
	Profiles []Profile `yaml:"profiles"`
}

// Get returns the profile by name.
// If name is empty, returns the default profile.
func (f *File) Get(name string) (*Profile, error) {
	if len(f.Profiles) == 0 {
		return nil, ErrNoProfiles
	}

	if name == "" {
		return f.GetDefault()
	}

	for i := range f.Profiles {
		if f.Profiles[i].Name == name {
			return &f.Profiles[i], nil
		}
	}

	return nil, fmt.Errorf("%w: %s", ErrProfileNotFound, name)
}

// GetDefault returns the default profile.
// If no profile is marked as default, returns the first profile.
func (f *File) GetDefault() (*Profile, error) {
	if len(f.Profiles) == 0 {
		return nil, ErrNoProfiles
	}

	for i := range f.Profiles {
		if f.Profiles[i].Default {
			return &f.Profiles[i], nil
		}
	}

	return &f.Profiles[0], nil
}

// Add adds a new profile. Returns ErrProfileExists if a profile
// with the same name already exists. Use Update to modify an existing profile.
func (f *File) Add(p Profile) error {
	if p.Name == "" {
		return ErrNameRequired
	}
	for i := range f.Profiles {
		if f.Profiles[i].Name == p.Name {
			return fmt.Errorf("%w: %s", ErrProfileExists, p.Name)
		}
	}
	f.Profiles = append(f.Profiles, p)
	if p.Default {
		return f.SetDefault(p.Name)
	}
	return nil
}

// Update replaces an existing profile. Returns ErrProfileNotFound
// if the profile doesn't exist. Use Add to create a new profile.
func (f *File) Update(p Profile) error {
	for i := range f.Profiles {
		if f.Profiles[i].Name == p.Name {
			f.Profiles[i] = p
			if p.Default {
				return f.SetDefault(p.Name)
			}
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrProfileNotFound, p.Name)
}

// Remove removes a profile by name.
func (f *File) Remove(name string) error {
	for i := range f.Profiles {
		if f.Profiles[i].Name == name {
			f.Profiles = append(f.Profiles[:i], f.Profiles[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrProfileNotFound, name)
}

// SetDefault sets the default profile by name.
// Clears the default flag from all other profiles.
func (f *File) SetDefault(name string) error {
	found := false
	for i := range f.Profiles {
		if f.Profiles[i].Name == name {
			f.Profiles[i].Default = true
			found = true
		} else {
			f.Profiles[i].Default = false
		}
	}

	if !found {
		return fmt.Errorf("%w: %s", ErrProfileNotFound, name)
	}
	return nil
}

// DefaultName returns the name of the default profile, or "" when there
// are no profiles.
func (f *File) DefaultName() string {
	p, err := f.GetDefault()
	if err != nil {
		return ""
	}
	return p.Name
}

// Names returns a list of all profile names.
func (f *File) Names() []string {
	names := make([]string, len(f.Profiles))
	for i := range f.Profiles {
		names[i] = f.Profiles[i].Name
	}
	return names
}

// Save writes the profiles to the specified path.
// Creates the parent directory if it doesn't exist.
func (f *File) Save(path string) error {
	cleanPath := filepath.Clean(path)

	dir := filepath.Dir(cleanPath)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("create profile directory: %w", err)
	}

	data, err := yaml.Marshal(f)
	if err != nil {
		return fmt.Errorf("marshal profiles: %w", err)
	}

	// Profiles may hold credentials.
	if err := os.WriteFile(cleanPath, data, 0o600); err != nil {
		return fmt.Errorf("write profile file: %w", err)
	}

	return nil
}

// Load reads the profile file from the specified path.
func Load(path string) (*File, error) {
	cleanPath := filepath.Clean(path)
	data, err := os.ReadFile(cleanPath) //#nosec G304 -- path is user-provided profile file
	if err != nil {
		return nil, fmt.Errorf("read profile file: %w", err)
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse profile file: %w", err)
	}

	return &f, nil
}

// LoadOrEmpty is Load, except that a missing file yields an empty File.
func LoadOrEmpty(path string) (*File, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return &File{}, nil
	}
	return Load(path)
}

// DefaultPath returns the default profile file path (~/.storeopts/profiles.yaml).
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".storeopts", "profiles.yaml")
}

// NameFromEnv returns the profile name from STOREOPTS_PROFILE environment variable.
func NameFromEnv() string {
	return os.Getenv("STOREOPTS_PROFILE")
}

// PathFromEnv returns the profile file path from STOREOPTS_PROFILES environment variable.
func PathFromEnv() string {
	return os.Getenv("STOREOPTS_PROFILES")
}
