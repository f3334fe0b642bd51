package storeopts

import (
	"iter"
	"maps"
	"slices"

	"github.com/sagarc03/storeopts/schema"
)

// RawOptions is an immutable snapshot of raw settings keyed by lowercased
// name. Keys keep the position of their first occurrence; values follow the
// last write.
type RawOptions struct {
	keys   []string
	values map[string]string
}

// NewRawOptions builds a snapshot from pairs. Keys are ASCII lowercased and
// later pairs overwrite earlier ones that normalise to the same key.
// Construction never fails; unknown keys are only detected by validation.
func NewRawOptions(pairs []Pair) RawOptions {
	r := RawOptions{
		keys:   make([]string, 0, len(pairs)),
		values: make(map[string]string, len(pairs)),
	}
	for _, p := range pairs {
		k := schema.Normalize(p.Key)
		if _, seen := r.values[k]; !seen {
			r.keys = append(r.keys, k)
		}
		r.values[k] = p.Value
	}
	return r
}

// PairsFromMap converts a map into pairs sorted by key, so keys that differ
// only in case resolve the same way on every run.
func PairsFromMap(m map[string]string) []Pair {
	pairs := make([]Pair, 0, len(m))
	for _, k := range slices.Sorted(maps.Keys(m)) {
		pairs = append(pairs, Pair{Key: k, Value: m[k]})
	}
	return pairs
}

// Get looks up a key case-insensitively.
func (r RawOptions) Get(key string) (string, bool) {
	v, ok := r.values[schema.Normalize(key)]
	return v, ok
}

func (r RawOptions) Len() int {
	return len(r.keys)
}

// Keys returns the normalised keys in first-occurrence order.
func (r RawOptions) Keys() []string {
	return slices.Clone(r.keys)
}

// All iterates over the entries in first-occurrence order.
func (r RawOptions) All() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		for _, k := range r.keys {
			if !yield(k, r.values[k]) {
				return
			}
		}
	}
}

// Pairs returns a copy of the entries in first-occurrence order.
func (r RawOptions) Pairs() []Pair {
	pairs := make([]Pair, 0, len(r.keys))
	for k, v := range r.All() {
		pairs = append(pairs, Pair{Key: k, Value: v})
	}
	return pairs
}

// ToMap returns a copy of the entries as a map.
func (r RawOptions) ToMap() map[string]string {
	return maps.Clone(r.values)
}

func (r RawOptions) clone() RawOptions {
	return RawOptions{
		keys:   slices.Clone(r.keys),
		values: maps.Clone(r.values),
	}
}
