package fetch

import (
	"time"

	"github.com/LoadstoneSoft/loadstone-core/pkg/faults"
)

// maxStatementTruncateLen is the maximum length for cache command statements
// recorded in OpenTelemetry trace spans. Statements longer than this are
// truncated so that key values and payload fragments do not leak into
// telemetry systems.
const maxStatementTruncateLen = 100

// Default connection and freshness settings for the redis-backed cache.
const (
	// DefaultAddr is the default Redis address.
	DefaultAddr = "localhost:6379"

	// DefaultDB is the default Redis database index.
	DefaultDB = 0

	// DefaultDialTimeout is the maximum time to wait when establishing a
	// new connection to the cache.
	DefaultDialTimeout = 10 * time.Second

	// DefaultReadTimeout is the maximum time to wait for a read response
	// from the cache.
	DefaultReadTimeout = 5 * time.Second

	// DefaultWriteTimeout is the maximum time to wait for a cache write
	// to complete.
	DefaultWriteTimeout = 5 * time.Second

	// DefaultFreshFor is how long a cached entry is served without
	// consulting the loader.
	DefaultFreshFor = 1 * time.Minute

	// DefaultRetainFor is how long an entry is kept after it goes stale.
	// Stale entries back the Failure-with-stale-data path, so retention
	// should comfortably exceed freshness.
	DefaultRetainFor = 1 * time.Hour
)

// Secret is a string type that prevents accidental logging of sensitive
// values such as cache passwords. Its String and GoString methods return a
// redacted placeholder; use Value to retrieve the actual secret.
type Secret string

// redacted is the placeholder string returned by Secret's string methods.
const redacted = "[REDACTED]"

// String returns "[REDACTED]" to prevent accidental logging of the secret.
func (s Secret) String() string {
	return redacted
}

// GoString returns "[REDACTED]" for fmt.Sprintf("%#v", secret) safety.
func (s Secret) GoString() string {
	return redacted
}

// Value returns the actual secret string. Handle the returned value with
// care; avoid logging, serializing, or storing it in plaintext.
func (s Secret) Value() string {
	return string(s)
}

// MarshalText implements encoding.TextMarshaler, returning "[REDACTED]" so
// the secret never appears in JSON or YAML output.
func (s Secret) MarshalText() ([]byte, error) {
	return []byte(redacted), nil
}

// Config holds the redis-backed cache configuration. The env struct tags
// document the environment variables the config loader reads for each
// field.
type Config struct {
	// Addr is the Redis server address in host:port form.
	// Default: "localhost:6379"
	Addr string `json:"addr,omitempty" yaml:"addr" env:"CACHE_ADDR"`

	// DB is the Redis database index.
	// Default: 0
	DB int `json:"db" yaml:"db" env:"CACHE_DB"`

	// Password is the Redis password. Uses the Secret type to prevent
	// accidental logging.
	Password Secret `json:"-" yaml:"-" env:"CACHE_PASSWORD"`

	// DialTimeout is the maximum time to wait when establishing a new
	// connection. Default: 10s
	DialTimeout time.Duration `json:"dial_timeout,omitempty" yaml:"dial_timeout" env:"CACHE_DIAL_TIMEOUT"`

	// ReadTimeout is the maximum time to wait for a read response.
	// Default: 5s
	ReadTimeout time.Duration `json:"read_timeout,omitempty" yaml:"read_timeout" env:"CACHE_READ_TIMEOUT"`

	// WriteTimeout is the maximum time to wait for a write to complete.
	// Default: 5s
	WriteTimeout time.Duration `json:"write_timeout,omitempty" yaml:"write_timeout" env:"CACHE_WRITE_TIMEOUT"`
}

// DefaultConfig returns a Config with default values. Callers should
// override fields as needed before passing the config to NewRedisCache.
func DefaultConfig() *Config {
	return &Config{
		Addr:         DefaultAddr,
		DB:           DefaultDB,
		DialTimeout:  DefaultDialTimeout,
		ReadTimeout:  DefaultReadTimeout,
		WriteTimeout: DefaultWriteTimeout,
	}
}

// Validate checks the configuration for invalid values and applies
// defaults for zero-valued fields. Returns a *faults.Fault with code
// CodeConfig for the first invalid value found, or nil if the
// configuration is valid.
func (c *Config) Validate() error {
	if c.Addr == "" {
		c.Addr = DefaultAddr
	}
	if c.DialTimeout == 0 {
		c.DialTimeout = DefaultDialTimeout
	}
	if c.ReadTimeout == 0 {
		c.ReadTimeout = DefaultReadTimeout
	}
	if c.WriteTimeout == 0 {
		c.WriteTimeout = DefaultWriteTimeout
	}

	if c.DB < 0 {
		return faults.Newf(faults.CodeConfig,
			"fetch: cache db index must not be negative, got %d", c.DB)
	}
	if c.DialTimeout < 0 {
		return faults.Newf(faults.CodeConfig,
			"fetch: cache dial_timeout must not be negative, got %v", c.DialTimeout)
	}
	if c.ReadTimeout < 0 {
		return faults.Newf(faults.CodeConfig,
			"fetch: cache read_timeout must not be negative, got %v", c.ReadTimeout)
	}
	if c.WriteTimeout < 0 {
		return faults.Newf(faults.CodeConfig,
			"fetch: cache write_timeout must not be negative, got %v", c.WriteTimeout)
	}
	return nil
}

// truncateStatement truncates a cache command statement to
// maxStatementTruncateLen runes for safe inclusion in trace spans. The
// truncation is rune-aware to avoid splitting multi-byte UTF-8 characters.
func truncateStatement(s string) string {
	runes := []rune(s)
	if len(runes) <= maxStatementTruncateLen {
		return s
	}
	return string(runes[:maxStatementTruncateLen]) + "..."
}
