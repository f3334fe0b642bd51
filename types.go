package storeopts

import (
	"fmt"
	"strings"

	"github.com/sagarc03/storeopts/aws"
	"github.com/sagarc03/storeopts/azure"
	"github.com/sagarc03/storeopts/gcp"
)

// Pair is one raw setting as supplied by the caller.
type Pair struct {
	Key   string
	Value string
}

// Capability names a backend module the integrator has enabled.
type Capability string

const (
	CapabilityAzure Capability = azure.Provider
	CapabilityAWS   Capability = aws.Provider
	CapabilityGCP   Capability = gcp.Provider
	// CapabilityHTTP is the generic HTTP backend. It has no provider keys
	// and only consumes the transport configuration.
	CapabilityHTTP Capability = "http"
)

var allCapabilities = []Capability{CapabilityAzure, CapabilityAWS, CapabilityGCP, CapabilityHTTP}

func (c Capability) IsValid() bool {
	switch c {
	case CapabilityAzure, CapabilityAWS, CapabilityGCP, CapabilityHTTP:
		return true
	default:
		return false
	}
}

// ParseCapability parses a capability name case-insensitively.
func ParseCapability(s string) (Capability, error) {
	c := Capability(strings.ToLower(s))
	if !c.IsValid() {
		return "", fmt.Errorf("invalid capability: %s (valid capabilities: azure, aws, gcp, http)", s)
	}
	return c, nil
}

func (c Capability) bit() uint8 {
	for i, v := range allCapabilities {
		if v == c {
			return 1 << i
		}
	}
	return 0
}

// Capabilities is an immutable set of enabled capabilities.
type Capabilities struct {
	bits uint8
}

// NewCapabilities returns a set holding caps. Invalid entries are ignored.
func NewCapabilities(caps ...Capability) Capabilities {
	var s Capabilities
	for _, c := range caps {
		s.bits |= c.bit()
	}
	return s
}

// AllCapabilities returns the set with every capability enabled.
func AllCapabilities() Capabilities {
	return NewCapabilities(allCapabilities...)
}

// ParseCapabilities parses a list of names. An empty list yields the
// empty set.
func ParseCapabilities(names []string) (Capabilities, error) {
	var s Capabilities
	for _, n := range names {
		c, err := ParseCapability(n)
		if err != nil {
			return Capabilities{}, err
		}
		s.bits |= c.bit()
	}
	return s, nil
}

func (s Capabilities) Has(c Capability) bool {
	b := c.bit()
	return b != 0 && s.bits&b != 0
}

func (s Capabilities) Empty() bool {
	return s.bits == 0
}

// List returns the enabled capabilities in canonical order.
func (s Capabilities) List() []Capability {
	var out []Capability
	for _, c := range allCapabilities {
		if s.Has(c) {
			out = append(out, c)
		}
	}
	return out
}

func (s Capabilities) String() string {
	list := s.List()
	names := make([]string, len(list))
	for i, c := range list {
		names[i] = string(c)
	}
	return strings.Join(names, ",")
}

// usesTransport reports whether any enabled backend talks HTTP.
func (s Capabilities) usesTransport() bool {
	return s.Has(CapabilityAzure) || s.Has(CapabilityAWS) || s.Has(CapabilityGCP) || s.Has(CapabilityHTTP)
}
