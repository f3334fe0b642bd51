package storeopts

import (
	"fmt"

	"github.com/sagarc03/storeopts/aws"
	"github.com/sagarc03/storeopts/azure"
	"github.com/sagarc03/storeopts/gcp"
	"github.com/sagarc03/storeopts/schema"
	"github.com/sagarc03/storeopts/transport"
)

// KeyInfo describes one recognised configuration key.
type KeyInfo struct {
	Name   string `json:"name"`
	Secret bool   `json:"secret,omitempty"`
}

// KnownKeys lists the keys recognised for c in declaration order. The http
// capability has no provider keys of its own and reports the transport keys.
func KnownKeys(c Capability) ([]KeyInfo, error) {
	switch c {
	case CapabilityAzure:
		return keyInfos(azure.Schema), nil
	case CapabilityAWS:
		return keyInfos(aws.Schema), nil
	case CapabilityGCP:
		return keyInfos(gcp.Schema), nil
	case CapabilityHTTP:
		return keyInfos(transport.Schema), nil
	default:
		return nil, fmt.Errorf("invalid capability: %s", c)
	}
}

// Entries validates the options for c and flattens the result for display,
// sorted by key with secret keys flagged. For the http capability the
// options are checked against the transport keys.
func (s *StoreOptions) Entries(c Capability) ([]schema.Entry, error) {
	switch c {
	case CapabilityAzure:
		return entriesFor(s, c, azure.Schema)
	case CapabilityAWS:
		return entriesFor(s, c, aws.Schema)
	case CapabilityGCP:
		return entriesFor(s, c, gcp.Schema)
	case CapabilityHTTP:
		return entriesFor(s, c, transport.Schema)
	default:
		return nil, fmt.Errorf("invalid capability: %s", c)
	}
}

func keyInfos[K schema.Key](sch *schema.Schema[K]) []KeyInfo {
	keys := sch.Keys()
	out := make([]KeyInfo, len(keys))
	for i, k := range keys {
		out[i] = KeyInfo{Name: string(k), Secret: sch.IsSecret(k)}
	}
	return out
}

func entriesFor[K schema.Key](s *StoreOptions, c Capability, sch *schema.Schema[K]) ([]schema.Entry, error) {
	m, err := validateFor(s, c, sch)
	if err != nil {
		return nil, err
	}
	return sch.Entries(m), nil
}
