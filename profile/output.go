package profile

import (
	"encoding/json"
	"fmt"
	"io"
	"maps"
	"slices"
	"strings"

	"github.com/sagarc03/storeopts"
	"github.com/sagarc03/storeopts/schema"
	"github.com/sagarc03/storeopts/transport"
)

// Formatter formats results for output.
type Formatter interface {
	FormatOptions(w io.Writer, provider storeopts.Capability, entries []schema.Entry, showSecrets bool) error
	FormatKeys(w io.Writer, provider storeopts.Capability, keys []storeopts.KeyInfo) error
	FormatTransport(w io.Writer, cfg transport.Config) error
	FormatError(w io.Writer, err error) error
	FormatProfileList(w io.Writer, profiles []Profile, defaultName string) error
	FormatProfileShow(w io.Writer, profile Profile, isDefault, showSecrets bool) error
}

// NewFormatter returns the appropriate formatter based on flags.
func NewFormatter(jsonOutput, quiet bool) Formatter {
	if jsonOutput {
		return &JSONFormatter{}
	}
	return &HumanFormatter{Quiet: quiet}
}

// HumanFormatter outputs human-readable text.
type HumanFormatter struct {
	Quiet bool
}

// FormatOptions prints validated options as aligned key/value lines.
func (f *HumanFormatter) FormatOptions(w io.Writer, provider storeopts.Capability, entries []schema.Entry, showSecrets bool) error {
	if f.Quiet {
		return nil
	}
	_, _ = fmt.Fprintf(w, "Valid %s options (%d)\n", provider, len(entries))

	width := 0
	for _, e := range entries {
		width = max(width, len(e.Key))
	}
	for _, e := range entries {
		v := e.Value
		if e.Secret {
			v = maskSecret(v, showSecrets)
		}
		_, _ = fmt.Fprintf(w, "  %-*s  %s\n", width, e.Key, v)
	}
	return nil
}

// FormatKeys prints the recognised keys of a provider, one per line.
func (f *HumanFormatter) FormatKeys(w io.Writer, provider storeopts.Capability, keys []storeopts.KeyInfo) error {
	if !f.Quiet {
		_, _ = fmt.Fprintf(w, "%s keys:\n", provider)
	}
	for _, k := range keys {
		switch {
		case f.Quiet:
			_, _ = fmt.Fprintln(w, k.Name)
		case k.Secret:
			_, _ = fmt.Fprintf(w, "  %s (secret)\n", k.Name)
		default:
			_, _ = fmt.Fprintf(w, "  %s\n", k.Name)
		}
	}
	return nil
}

// FormatTransport prints the client settings in key order followed by the
// retry policy.
func (f *HumanFormatter) FormatTransport(w io.Writer, cfg transport.Config) error {
	opts, err := cfg.Options()
	if err != nil {
		return err
	}

	keys := slices.Sorted(maps.Keys(opts))
	width := len("retry.max_backoff")
	for _, k := range keys {
		width = max(width, len(k))
	}

	for _, k := range keys {
		v := opts[k]
		if v == "" {
			v = "(not set)"
		}
		_, _ = fmt.Fprintf(w, "%-*s  %s\n", width, k, v)
	}

	r := cfg.Retry
	_, _ = fmt.Fprintf(w, "%-*s  %d\n", width, "retry.max_retries", r.MaxRetries)
	_, _ = fmt.Fprintf(w, "%-*s  %s\n", width, "retry.timeout", r.RetryTimeout)
	_, _ = fmt.Fprintf(w, "%-*s  %s\n", width, "retry.init_backoff", r.Backoff.InitBackoff)
	_, _ = fmt.Fprintf(w, "%-*s  %s\n", width, "retry.max_backoff", r.Backoff.MaxBackoff)
	_, _ = fmt.Fprintf(w, "%-*s  %g\n", width, "retry.base", r.Backoff.Base)

	for _, h := range slices.Sorted(maps.Keys(cfg.DefaultHeaders)) {
		_, _ = fmt.Fprintf(w, "header %s: %s\n", h, cfg.DefaultHeaders[h])
	}
	return nil
}

// FormatError formats an error as human-readable text.
func (f *HumanFormatter) FormatError(w io.Writer, err error) error {
	_, _ = fmt.Fprintf(w, "Error: %v\n", err)
	return nil
}

// FormatProfileList formats a list of profiles as human-readable text.
func (f *HumanFormatter) FormatProfileList(w io.Writer, profiles []Profile, defaultName string) error {
	if len(profiles) == 0 {
		_, _ = fmt.Fprintln(w, "No profiles configured")
		return nil
	}

	// Calculate column widths
	maxNameLen := 4 // "NAME"
	for i := range profiles {
		maxNameLen = max(maxNameLen, len(profiles[i].Name))
	}
	maxNameLen = min(maxNameLen, 20)

	// Print header
	_, _ = fmt.Fprintf(w, "  %-*s  %-8s  %s\n", maxNameLen, "NAME", "PROVIDER", "OPTIONS")
	_, _ = fmt.Fprintf(w, "  %s  %s  %s\n", strings.Repeat("-", maxNameLen), strings.Repeat("-", 8), strings.Repeat("-", 7))

	for i := range profiles {
		p := &profiles[i]
		marker := " "
		if p.Name == defaultName {
			marker = "*"
		}

		name := p.Name
		if len(name) > maxNameLen {
			name = name[:maxNameLen-3] + "..."
		}

		_, _ = fmt.Fprintf(w, "%s %-*s  %-8s  %d\n", marker, maxNameLen, name, p.Provider, len(p.Options))
	}

	return nil
}

// FormatProfileShow formats a single profile as human-readable text.
func (f *HumanFormatter) FormatProfileShow(w io.Writer, profile Profile, isDefault, showSecrets bool) error {
	_, _ = fmt.Fprintf(w, "Name:     %s", profile.Name)
	if isDefault {
		_, _ = fmt.Fprintf(w, " (default)")
	}
	_, _ = fmt.Fprintln(w)
	_, _ = fmt.Fprintf(w, "Provider: %s\n", profile.Provider)

	secrets := secretKeys(profile.Provider)
	if len(profile.Options) > 0 {
		_, _ = fmt.Fprintln(w, "Options:")
		for _, k := range slices.Sorted(maps.Keys(profile.Options)) {
			v := profile.Options[k]
			if secrets[schema.Normalize(k)] {
				v = maskSecret(v, showSecrets)
			}
			_, _ = fmt.Fprintf(w, "  %s: %s\n", k, v)
		}
	}
	if len(profile.Transport) > 0 {
		_, _ = fmt.Fprintln(w, "Transport:")
		for _, k := range slices.Sorted(maps.Keys(profile.Transport)) {
			_, _ = fmt.Fprintf(w, "  %s: %s\n", k, profile.Transport[k])
		}
	}
	return nil
}

// JSONFormatter outputs JSON.
type JSONFormatter struct{}

// FormatOptions formats validated options as JSON.
func (f *JSONFormatter) FormatOptions(w io.Writer, provider storeopts.Capability, entries []schema.Entry, showSecrets bool) error {
	masked := make([]schema.Entry, len(entries))
	for i, e := range entries {
		if e.Secret {
			e.Value = maskSecret(e.Value, showSecrets)
		}
		masked[i] = e
	}

	output := struct {
		Provider string         `json:"provider"`
		Valid    bool           `json:"valid"`
		Options  []schema.Entry `json:"options"`
	}{
		Provider: string(provider),
		Valid:    true,
		Options:  masked,
	}
	return writeJSON(w, output)
}

// FormatKeys formats the recognised keys of a provider as JSON.
func (f *JSONFormatter) FormatKeys(w io.Writer, provider storeopts.Capability, keys []storeopts.KeyInfo) error {
	output := struct {
		Provider string              `json:"provider"`
		Keys     []storeopts.KeyInfo `json:"keys"`
	}{
		Provider: string(provider),
		Keys:     keys,
	}
	return writeJSON(w, output)
}

// FormatTransport formats the client settings as JSON.
func (f *JSONFormatter) FormatTransport(w io.Writer, cfg transport.Config) error {
	opts, err := cfg.Options()
	if err != nil {
		return err
	}

	type jsonRetry struct {
		MaxRetries  int     `json:"max_retries"`
		Timeout     string  `json:"timeout"`
		InitBackoff string  `json:"init_backoff"`
		MaxBackoff  string  `json:"max_backoff"`
		Base        float64 `json:"base"`
	}

	output := struct {
		Options map[transport.ConfigKey]string `json:"options"`
		Headers map[string]string              `json:"default_headers,omitempty"`
		Retry   jsonRetry                      `json:"retry"`
	}{
		Options: opts,
		Headers: cfg.DefaultHeaders,
		Retry: jsonRetry{
			MaxRetries:  cfg.Retry.MaxRetries,
			Timeout:     cfg.Retry.RetryTimeout.String(),
			InitBackoff: cfg.Retry.Backoff.InitBackoff.String(),
			MaxBackoff:  cfg.Retry.Backoff.MaxBackoff.String(),
			Base:        cfg.Retry.Backoff.Base,
		},
	}
	return writeJSON(w, output)
}

// FormatError formats an error as JSON.
func (f *JSONFormatter) FormatError(w io.Writer, err error) error {
	output := struct {
		Error string `json:"error"`
	}{
		Error: err.Error(),
	}
	return writeJSON(w, output)
}

type jsonProfile struct {
	Name      string            `json:"name"`
	Provider  string            `json:"provider"`
	Options   map[string]string `json:"options,omitempty"`
	Transport map[string]string `json:"transport,omitempty"`
	Default   bool              `json:"default"`
}

func toJSONProfile(p Profile, isDefault, showSecrets bool) jsonProfile {
	secrets := secretKeys(p.Provider)
	opts := make(map[string]string, len(p.Options))
	for k, v := range p.Options {
		if secrets[schema.Normalize(k)] {
			v = maskSecret(v, showSecrets)
		}
		opts[k] = v
	}
	return jsonProfile{
		Name:      p.Name,
		Provider:  p.Provider,
		Options:   opts,
		Transport: p.Transport,
		Default:   isDefault,
	}
}

// FormatProfileList formats a list of profiles as JSON. Secrets are always masked.
func (f *JSONFormatter) FormatProfileList(w io.Writer, profiles []Profile, defaultName string) error {
	output := struct {
		Profiles []jsonProfile `json:"profiles"`
	}{
		Profiles: make([]jsonProfile, len(profiles)),
	}

	for i := range profiles {
		output.Profiles[i] = toJSONProfile(profiles[i], profiles[i].Name == defaultName, false)
	}

	return writeJSON(w, output)
}

// FormatProfileShow formats a single profile as JSON.
func (f *JSONFormatter) FormatProfileShow(w io.Writer, profile Profile, isDefault, showSecrets bool) error {
	return writeJSON(w, toJSONProfile(profile, isDefault, showSecrets))
}

// writeJSON writes a value as indented JSON.
func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// secretKeys returns the secret key names of a provider. Unknown providers
// have none.
func secretKeys(provider string) map[string]bool {
	c, err := storeopts.ParseCapability(provider)
	if err != nil {
		return nil
	}
	keys, err := storeopts.KnownKeys(c)
	if err != nil {
		return nil
	}
	out := make(map[string]bool)
	for _, k := range keys {
		if k.Secret {
			out[k.Name] = true
		}
	}
	return out
}

// maskSecret masks a secret string, showing only first 4 and last 4 characters.
// If showSecrets is true, returns the original value.
// If the secret is too short, returns all asterisks.
func maskSecret(secret string, showSecrets bool) string {
	if showSecrets {
		return secret
	}
	if secret == "" {
		return "(not set)"
	}
	if len(secret) <= 8 {
		return "********"
	}
	return secret[:4] + "..." + secret[len(secret)-4:]
}
