package fetch

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LoadstoneSoft/loadstone-core/internal/testutil"
	"github.com/LoadstoneSoft/loadstone-core/pkg/faults"
)

// TestDefaultConfig verifies that DefaultConfig returns the documented
// default values.
func TestDefaultConfig(t *testing.T) {
	t.Parallel()
	cfg := DefaultConfig()

	assert.Equal(t, DefaultAddr, cfg.Addr)
	assert.Equal(t, DefaultDB, cfg.DB)
	assert.Equal(t, DefaultDialTimeout, cfg.DialTimeout)
	assert.Equal(t, DefaultReadTimeout, cfg.ReadTimeout)
	assert.Equal(t, DefaultWriteTimeout, cfg.WriteTimeout)
	assert.Empty(t, cfg.Password.Value())
}

// TestConfig_Validate_AppliesDefaults verifies that zero-valued fields are
// filled in rather than rejected.
func TestConfig_Validate_AppliesDefaults(t *testing.T) {
	t.Parallel()
	cfg := &Config{}

	require.NoError(t, cfg.Validate())
	assert.Equal(t, DefaultAddr, cfg.Addr)
	assert.Equal(t, DefaultDialTimeout, cfg.DialTimeout)
	assert.Equal(t, DefaultReadTimeout, cfg.ReadTimeout)
	assert.Equal(t, DefaultWriteTimeout, cfg.WriteTimeout)
}

// TestConfig_Validate_Invalid verifies that each invalid field is rejected
// with a CONFIG_001 fault.
func TestConfig_Validate_Invalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(cfg *Config)
		wantMsg string
	}{
		{
			name:    "negative db index",
			mutate:  func(cfg *Config) { cfg.DB = -1 },
			wantMsg: "db index",
		},
		{
			name:    "negative dial timeout",
			mutate:  func(cfg *Config) { cfg.DialTimeout = -time.Second },
			wantMsg: "dial_timeout",
		},
		{
			name:    "negative read timeout",
			mutate:  func(cfg *Config) { cfg.ReadTimeout = -time.Second },
			wantMsg: "read_timeout",
		},
		{
			name:    "negative write timeout",
			mutate:  func(cfg *Config) { cfg.WriteTimeout = -time.Second },
			wantMsg: "write_timeout",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := DefaultConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			testutil.RequireFaultCode(t, err, faults.CodeConfig)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

// TestSecret_Redaction verifies that a Secret never leaks through the
// common formatting and serialization paths.
func TestSecret_Redaction(t *testing.T) {
	t.Parallel()
	password := Secret("hunter2")

	assert.Equal(t, "[REDACTED]", password.String())
	assert.Equal(t, "[REDACTED]", fmt.Sprintf("%v", password))
	assert.Equal(t, "[REDACTED]", fmt.Sprintf("%s", password))
	assert.Equal(t, "[REDACTED]", fmt.Sprintf("%#v", password))
	assert.Equal(t, "hunter2", password.Value())

	text, err := password.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "[REDACTED]", string(text))
}

// TestConfig_JSONOmitsPassword verifies that serializing a Config never
// includes the password value.
func TestConfig_JSONOmitsPassword(t *testing.T) {
	t.Parallel()
	cfg := DefaultConfig()
	cfg.Password = Secret("hunter2")

	testutil.AssertJSONNotContains(t, cfg, "hunter2")
	testutil.AssertJSONContains(t, cfg, DefaultAddr)
}

// TestTruncateStatement verifies rune-aware truncation of trace span
// statements.
func TestTruncateStatement(t *testing.T) {
	t.Parallel()

	short := "GET profile:1"
	assert.Equal(t, short, truncateStatement(short))

	long := "SET " + strings.Repeat("k", 2*maxStatementTruncateLen)
	got := truncateStatement(long)
	assert.Len(t, []rune(got), maxStatementTruncateLen+3)
	assert.True(t, strings.HasSuffix(got, "..."))

	// Multi-byte runes must not be split mid-character.
	wide := strings.Repeat("日", maxStatementTruncateLen+10)
	got = truncateStatement(wide)
	assert.Equal(t, strings.Repeat("日", maxStatementTruncateLen)+"...", got)
}
