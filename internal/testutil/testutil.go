// Package testutil provides shared test helpers for the Loadstone Core SDK.
//
// All helpers accept [testing.TB] for compatibility with both tests and
// benchmarks. Functions that halt the test on failure use [require] from
// testify; functions that record failures without stopping use [assert].
//
// Every helper calls t.Helper() so that test failure messages report the
// caller's file and line number rather than this package's.
package testutil

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LoadstoneSoft/loadstone-core/pkg/faults"
	"github.com/LoadstoneSoft/loadstone-core/pkg/result"
)

// RequireNoError halts the test immediately if err is non-nil.
// Use this for preconditions whose failure makes continuing meaningless.
func RequireNoError(t testing.TB, err error, msgAndArgs ...any) {
	t.Helper()
	require.NoError(t, err, msgAndArgs...)
}

// RequireError halts the test immediately if err is nil.
// Use this when an error is expected and subsequent assertions depend on it.
func RequireError(t testing.TB, err error, msgAndArgs ...any) {
	t.Helper()
	require.Error(t, err, msgAndArgs...)
}

// RequireFaultCode halts the test if err is nil, is not a *faults.Fault,
// or does not carry the expected fault code. This is the primary helper
// for validating SDK failure values.
//
// Example:
//
//	err := loader.Load(nil)
//	testutil.RequireFaultCode(t, err, faults.CodeConfig)
func RequireFaultCode(t testing.TB, err error, code faults.Code, msgAndArgs ...any) {
	t.Helper()
	require.Error(t, err, msgAndArgs...)
	f, ok := faults.AsFault(err)
	require.True(t, ok, "expected *faults.Fault, got %T: %v", err, err)
	require.Equal(t, code, f.Code,
		"fault code mismatch: got %q, want %q (message: %s)",
		f.Code, code, f.Message)
}

// AssertFaultCode records a test failure (without halting) if err is nil,
// is not a *faults.Fault, or does not carry the expected fault code.
// Use this in table-driven tests where you want to check all rows.
func AssertFaultCode(t testing.TB, err error, code faults.Code, msgAndArgs ...any) bool {
	t.Helper()
	if !assert.Error(t, err, msgAndArgs...) {
		return false
	}
	f, ok := faults.AsFault(err)
	if !assert.True(t, ok, "expected *faults.Fault, got %T: %v", err, err) {
		return false
	}
	return assert.Equal(t, code, f.Code,
		"fault code mismatch: got %q, want %q (message: %s)",
		f.Code, code, f.Message)
}

// RequireState halts the test if the result's active state differs from
// want, printing the full rendered result for diagnostics.
func RequireState[D any](t testing.TB, res result.Result[D], want result.State) {
	t.Helper()
	require.Equal(t, want, res.State(), "unexpected result state: %s", res)
}

// RequireSuccess halts the test unless the result is Success, and returns
// its payload.
func RequireSuccess[D any](t testing.TB, res result.Result[D]) D {
	t.Helper()
	RequireState(t, res, result.StateSuccess)
	data, ok := res.Data()
	require.True(t, ok, "success result has no payload: %s", res)
	return data
}

// RequireFailure halts the test unless the result is Failure, and returns
// its reason.
func RequireFailure[D any](t testing.TB, res result.Result[D]) result.Reason {
	t.Helper()
	RequireState(t, res, result.StateFailure)
	reason, ok := res.Reason()
	require.True(t, ok, "failure result has no reason: %s", res)
	return reason
}

// RequireFailureCode halts the test unless the result is Failure carrying
// a *faults.Fault with the expected code.
func RequireFailureCode[D any](t testing.TB, res result.Result[D], code faults.Code) {
	t.Helper()
	reason := RequireFailure(t, res)
	RequireFaultCode(t, reason, code)
}

// TempConfigFile creates a temporary file with the given content and
// extension (e.g., ".yaml") inside t.TempDir(). The file is automatically
// cleaned up when the test finishes.
//
// The file is created with mode 0600 (owner read/write only) following
// the principle of least privilege for configuration files.
func TempConfigFile(t testing.TB, content, ext string) string {
	t.Helper()
	dir := t.TempDir()
	name := "config" + ext
	path := filepath.Join(dir, name)
	err := os.WriteFile(path, []byte(content), 0o600)
	require.NoError(t, err, "failed to write temp config file %s", path)
	return path
}

// SetEnv sets an environment variable and registers a cleanup function
// that restores the original value (or unsets it if it was not set)
// when the test completes.
//
// This is safe for use in parallel tests only if each test sets a
// unique environment variable. For shared variables, do not use
// t.Parallel().
func SetEnv(t testing.TB, key, value string) {
	t.Helper()
	prev, existed := os.LookupEnv(key)
	err := os.Setenv(key, value)
	require.NoError(t, err, "failed to set env var %s", key)
	t.Cleanup(func() {
		if existed {
			_ = os.Setenv(key, prev)
		} else {
			_ = os.Unsetenv(key)
		}
	})
}

// UnsetEnv unsets an environment variable and registers a cleanup
// function that restores the original value when the test completes.
func UnsetEnv(t testing.TB, key string) {
	t.Helper()
	prev, existed := os.LookupEnv(key)
	err := os.Unsetenv(key)
	require.NoError(t, err, "failed to unset env var %s", key)
	t.Cleanup(func() {
		if existed {
			_ = os.Setenv(key, prev)
		}
	})
}

// AssertJSONContains marshals v to JSON and asserts that the resulting
// JSON string contains the expected substring. Useful for verifying
// that specific fields appear in serialized output.
func AssertJSONContains(t testing.TB, v any, expected string) {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err, "json.Marshal failed")
	assert.Contains(t, string(data), expected,
		"expected JSON to contain %q, got: %s", expected, string(data))
}

// AssertJSONNotContains marshals v to JSON and asserts that the
// resulting JSON string does not contain the unexpected substring.
// Useful for verifying that sensitive fields are redacted.
func AssertJSONNotContains(t testing.TB, v any, unexpected string) {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err, "json.Marshal failed")
	assert.NotContains(t, string(data), unexpected,
		"expected JSON to NOT contain %q, got: %s", unexpected, string(data))
}
