package schema

import "iter"

// Options is a read-only snapshot of raw key/value settings.
// All yields entries in a stable order; that order decides which unknown
// key is reported when there are several.
type Options interface {
	All() iter.Seq2[string, string]
	Len() int
}

// Validate converts every raw option into the provider's typed key.
//
// Validation is all-or-nothing: the first key the schema does not recognise
// aborts the pass with an *UnknownKeyError and no mapping is returned. On
// success the mapping has exactly opts.Len() entries with values unchanged.
func Validate[K Key](opts Options, s *Schema[K]) (map[K]string, error) {
	out := make(map[K]string, opts.Len())
	for key, value := range opts.All() {
		k, err := s.Parse(Normalize(key))
		if err != nil {
			return nil, err
		}
		out[k] = value
	}
	return out, nil
}
