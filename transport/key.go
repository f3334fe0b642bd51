package transport

import "github.com/sagarc03/storeopts/schema"

// Provider names the client key vocabulary in errors.
const Provider = "client"

// ConfigKey is a recognised client configuration key. Each key maps onto
// the Config field with the same mapstructure tag.
type ConfigKey string

const (
	AllowHTTP                ConfigKey = "allow_http"
	AllowInvalidCertificates ConfigKey = "allow_invalid_certificates"
	ConnectTimeout           ConfigKey = "connect_timeout"
	DefaultContentType       ConfigKey = "default_content_type"
	HTTP1Only                ConfigKey = "http1_only"
	HTTP2Only                ConfigKey = "http2_only"
	HTTP2KeepAliveInterval   ConfigKey = "http2_keep_alive_interval"
	HTTP2KeepAliveTimeout    ConfigKey = "http2_keep_alive_timeout"
	HTTP2KeepAliveWhileIdle  ConfigKey = "http2_keep_alive_while_idle"
	PoolIdleTimeout          ConfigKey = "pool_idle_timeout"
	PoolMaxIdlePerHost       ConfigKey = "pool_max_idle_per_host"
	ProxyURL                 ConfigKey = "proxy_url"
	ProxyCACertificate       ConfigKey = "proxy_ca_certificate"
	ProxyExcludes            ConfigKey = "proxy_excludes"
	Timeout                  ConfigKey = "timeout"
	UserAgent                ConfigKey = "user_agent"
)

// Schema is the client key vocabulary.
var Schema = schema.New(schema.Definition[ConfigKey]{
	Provider: Provider,
	Keys: []ConfigKey{
		AllowHTTP,
		AllowInvalidCertificates,
		ConnectTimeout,
		DefaultContentType,
		HTTP1Only,
		HTTP2Only,
		HTTP2KeepAliveInterval,
		HTTP2KeepAliveTimeout,
		HTTP2KeepAliveWhileIdle,
		PoolIdleTimeout,
		PoolMaxIdlePerHost,
		ProxyURL,
		ProxyCACertificate,
		ProxyExcludes,
		Timeout,
		UserAgent,
	},
})

// ParseConfigKey resolves a key name case-insensitively.
func ParseConfigKey(s string) (ConfigKey, error) {
	return Schema.Parse(s)
}

func (k ConfigKey) String() string {
	return string(k)
}
