// Package schema defines closed per-provider configuration key vocabularies
// and validates raw option snapshots against them.
//
// A Schema is built once, at package initialisation, from the full list of
// a provider's keys. Each key's string value is its canonical name. Parsing
// is case-insensitive but otherwise exact: no prefixes, no aliases.
//
//	var Schema = schema.New(schema.Definition[ConfigKey]{
//		Provider: "aws",
//		Keys:     []ConfigKey{Region, Endpoint},
//		Secrets:  []ConfigKey{SecretAccessKey},
//	})
//
//	opts, err := schema.Validate(raw, Schema)
package schema

import (
	"fmt"
	"sort"
)

// Key is the constraint satisfied by every provider key enumeration.
// The underlying string is the key's canonical lowercase name.
type Key interface {
	~string
}

// Definition lists everything a provider declares about its keys.
type Definition[K Key] struct {
	Provider string
	Keys     []K
	// Secrets are keys whose values must not be shown in clear text.
	Secrets []K
}

// Schema is the lookup table for one provider's keys.
type Schema[K Key] struct {
	provider string
	keys     []K
	lookup   map[string]K
	secrets  map[K]struct{}
}

// New builds a schema from a definition.
// It panics if the definition is malformed: an empty provider name, an empty
// or non-lowercase key name, a duplicate name, or a secret that is not one
// of the declared keys. Schemas are package-level values, so a bad table
// fails at init rather than at validation time.
func New[K Key](def Definition[K]) *Schema[K] {
	if def.Provider == "" {
		panic("schema: provider name is required")
	}

	s := &Schema[K]{
		provider: def.Provider,
		keys:     make([]K, 0, len(def.Keys)),
		lookup:   make(map[string]K, len(def.Keys)),
		secrets:  make(map[K]struct{}, len(def.Secrets)),
	}

	for _, k := range def.Keys {
		name := string(k)
		if name == "" {
			panic(fmt.Sprintf("schema: %s: empty key name", def.Provider))
		}
		if name != Normalize(name) {
			panic(fmt.Sprintf("schema: %s: key %q is not lowercase", def.Provider, name))
		}
		if _, dup := s.lookup[name]; dup {
			panic(fmt.Sprintf("schema: %s: duplicate key %q", def.Provider, name))
		}
		s.lookup[name] = k
		s.keys = append(s.keys, k)
	}

	for _, k := range def.Secrets {
		if _, ok := s.lookup[string(k)]; !ok {
			panic(fmt.Sprintf("schema: %s: secret %q is not a declared key", def.Provider, string(k)))
		}
		s.secrets[k] = struct{}{}
	}

	return s
}

// Provider returns the provider name the schema belongs to.
func (s *Schema[K]) Provider() string {
	return s.provider
}

// Parse resolves a raw key name to its typed key.
// Returns an *UnknownKeyError if the name is not recognised.
func (s *Schema[K]) Parse(name string) (K, error) {
	k, ok := s.lookup[Normalize(name)]
	if !ok {
		var zero K
		return zero, &UnknownKeyError{Key: name, Provider: s.provider}
	}
	return k, nil
}

// Has reports whether name is a recognised key.
func (s *Schema[K]) Has(name string) bool {
	_, ok := s.lookup[Normalize(name)]
	return ok
}

// Keys returns all keys in declaration order.
func (s *Schema[K]) Keys() []K {
	keys := make([]K, len(s.keys))
	copy(keys, s.keys)
	return keys
}

// IsSecret reports whether values for k should be masked on output.
func (s *Schema[K]) IsSecret(k K) bool {
	_, ok := s.secrets[k]
	return ok
}

// Normalize folds ASCII letters to lowercase and leaves every other byte
// untouched.
func Normalize(name string) string {
	b := []byte(name)
	for i, c := range b {
		if 'A' <= c && c <= 'Z' {
			b[i] = c + ('a' - 'A')
		}
	}
	return string(b)
}

// Entry is a validated option flattened for display.
type Entry struct {
	Key    string `json:"key"`
	Value  string `json:"value"`
	Secret bool   `json:"secret,omitempty"`
}

// Entries flattens a validated mapping into entries sorted by key name.
func (s *Schema[K]) Entries(opts map[K]string) []Entry {
	entries := make([]Entry, 0, len(opts))
	for k, v := range opts {
		entries = append(entries, Entry{
			Key:    string(k),
			Value:  v,
			Secret: s.IsSecret(k),
		})
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Key < entries[j].Key
	})
	return entries
}
