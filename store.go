package storeopts

import (
	"fmt"

	"github.com/sagarc03/storeopts/aws"
	"github.com/sagarc03/storeopts/azure"
	"github.com/sagarc03/storeopts/gcp"
	"github.com/sagarc03/storeopts/schema"
	"github.com/sagarc03/storeopts/transport"
)

// StoreOptions pairs a raw option snapshot with the client transport
// configuration. It is immutable once built and safe for concurrent use;
// every accessor returns a fresh value.
type StoreOptions struct {
	raw       RawOptions
	transport *transport.Config
	caps      Capabilities
}

// Option customises New.
type Option func(*settings)

type settings struct {
	transport    *transport.Config
	capabilities Capabilities
}

// WithTransport sets the transport configuration. The value is copied.
func WithTransport(cfg transport.Config) Option {
	return func(s *settings) {
		c := cfg.Clone()
		s.transport = &c
	}
}

// WithCapabilities restricts the enabled backends. Without it every
// capability is enabled.
func WithCapabilities(caps Capabilities) Option {
	return func(s *settings) {
		s.capabilities = caps
	}
}

// New builds StoreOptions from raw pairs. It never fails; unknown keys are
// reported by the per-provider accessors.
func New(pairs []Pair, opts ...Option) *StoreOptions {
	s := settings{capabilities: AllCapabilities()}
	for _, opt := range opts {
		opt(&s)
	}

	so := &StoreOptions{
		raw:  NewRawOptions(pairs),
		caps: s.capabilities,
	}

	// Only backends that talk HTTP carry a transport.
	if s.capabilities.usesTransport() {
		cfg := transport.Default()
		if s.transport != nil {
			cfg = s.transport.Clone()
		}
		so.transport = &cfg
	}

	return so
}

// FromMap is New with default transport settings and every capability
// enabled. Keys are taken in sorted order.
func FromMap(m map[string]string) *StoreOptions {
	return New(PairsFromMap(m))
}

// Raw returns the normalised snapshot.
func (s *StoreOptions) Raw() RawOptions {
	return s.raw.clone()
}

func (s *StoreOptions) Capabilities() Capabilities {
	return s.caps
}

// TransportConfig returns a deep copy of the transport configuration.
// ok is false when no enabled backend uses one.
func (s *StoreOptions) TransportConfig() (cfg transport.Config, ok bool) {
	if s.transport == nil {
		return transport.Config{}, false
	}
	return s.transport.Clone(), true
}

// AzureOptions validates the raw options against the Azure key schema.
func (s *StoreOptions) AzureOptions() (map[azure.ConfigKey]string, error) {
	return validateFor(s, CapabilityAzure, azure.Schema)
}

// S3Options validates the raw options against the S3 key schema.
func (s *StoreOptions) S3Options() (map[aws.ConfigKey]string, error) {
	return validateFor(s, CapabilityAWS, aws.Schema)
}

// GCSOptions validates the raw options against the GCS key schema.
func (s *StoreOptions) GCSOptions() (map[gcp.ConfigKey]string, error) {
	return validateFor(s, CapabilityGCP, gcp.Schema)
}

// Clone returns an independent copy.
func (s *StoreOptions) Clone() *StoreOptions {
	out := &StoreOptions{
		raw:  s.raw.clone(),
		caps: s.caps,
	}
	if s.transport != nil {
		c := s.transport.Clone()
		out.transport = &c
	}
	return out
}

func validateFor[K schema.Key](s *StoreOptions, c Capability, sch *schema.Schema[K]) (map[K]string, error) {
	if !s.caps.Has(c) {
		return nil, fmt.Errorf("%s options: %w", c, ErrCapabilityDisabled)
	}
	return schema.Validate(s.raw, sch)
}
