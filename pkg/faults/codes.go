package faults

// Code represents a machine-readable fault code for categorizing failures.
// Fault codes follow the pattern FAMILY_XXX where FAMILY is a short
// identifier (e.g., NET, FILE, PERM) and XXX is a three-digit numeric code.
// Network codes reuse the HTTP status number they represent.
//
// Fault codes are designed to be:
//   - Stable: Codes do not change once assigned
//   - Unique: Each fault condition has a distinct code
//   - Machine-readable: Suitable for equality-based branching
//
// The _000 code in each family marks the custom escape hatch: a fault in
// the family that carries a caller-supplied message rather than a canonical
// one.
type Code string

// Fault code families:
//
//	NET_xxx       - Network faults (xxx is the HTTP status)
//	FILE_xxx      - Filesystem faults
//	PERM_xxx      - Permission faults
//	WRAP_xxx      - Wrapped external errors
//	TRANSFORM_xxx - Synthesized transformation faults
//	CONFIG_xxx    - Configuration faults
//	UNKNOWN_xxx   - Unclassified failures
const (
	// Network faults (NET_xxx)
	// Produced by NetworkFromStatus for responses from remote calls.

	// CodeNetworkBadRequest indicates the request was malformed (HTTP 400).
	CodeNetworkBadRequest Code = "NET_400"

	// CodeNetworkUnauthorized indicates missing or invalid credentials
	// (HTTP 401).
	CodeNetworkUnauthorized Code = "NET_401"

	// CodeNetworkForbidden indicates the caller lacks access rights
	// (HTTP 403).
	CodeNetworkForbidden Code = "NET_403"

	// CodeNetworkNotFound indicates the remote resource does not exist
	// (HTTP 404).
	CodeNetworkNotFound Code = "NET_404"

	// CodeNetworkRequestTimeout indicates the remote call timed out
	// (HTTP 408).
	CodeNetworkRequestTimeout Code = "NET_408"

	// CodeNetworkTooManyRequests indicates the caller was rate limited
	// (HTTP 429).
	CodeNetworkTooManyRequests Code = "NET_429"

	// CodeNetworkInternal indicates a remote server failure (HTTP 500).
	CodeNetworkInternal Code = "NET_500"

	// CodeNetworkBadGateway indicates an invalid upstream response
	// (HTTP 502).
	CodeNetworkBadGateway Code = "NET_502"

	// CodeNetworkUnavailable indicates the remote service is temporarily
	// unavailable (HTTP 503).
	CodeNetworkUnavailable Code = "NET_503"

	// CodeNetworkGatewayTimeout indicates an upstream timeout (HTTP 504).
	CodeNetworkGatewayTimeout Code = "NET_504"

	// CodeNetworkCustom is the escape hatch for unrecognized HTTP
	// statuses. The fault's Status field carries the original number.
	CodeNetworkCustom Code = "NET_000"

	// File faults (FILE_xxx)

	// CodeFileNotFound indicates the file does not exist.
	CodeFileNotFound Code = "FILE_001"

	// CodeFileRead indicates a read from the file failed.
	CodeFileRead Code = "FILE_002"

	// CodeFileWrite indicates a write to the file failed.
	CodeFileWrite Code = "FILE_003"

	// CodeFileCustom is the escape hatch for file failures with a
	// caller-supplied message.
	CodeFileCustom Code = "FILE_000"

	// Permission faults (PERM_xxx)

	// CodePermissionDenied indicates the permission was never granted.
	CodePermissionDenied Code = "PERM_001"

	// CodePermissionRevoked indicates a previously granted permission was
	// withdrawn.
	CodePermissionRevoked Code = "PERM_002"

	// CodePermissionCustom is the escape hatch for permission failures
	// with a caller-supplied message.
	CodePermissionCustom Code = "PERM_000"

	// Wrapped faults (WRAP_xxx)

	// CodeWrapped indicates an arbitrary external error lifted into the
	// taxonomy by FromError or FromPanic. The original error is retained
	// as the fault's Cause.
	CodeWrapped Code = "WRAP_001"

	// Transform faults (TRANSFORM_xxx)

	// CodeNullTransform indicates a success transformation produced no
	// value. Synthesized by the result package; never constructed by
	// callers directly.
	CodeNullTransform Code = "TRANSFORM_001"

	// Config faults (CONFIG_xxx)

	// CodeConfig indicates a general configuration loading failure.
	CodeConfig Code = "CONFIG_001"

	// CodeConfigRequired indicates a required configuration field is
	// missing.
	CodeConfigRequired Code = "CONFIG_002"

	// Unclassified faults (UNKNOWN_xxx)

	// CodeUnknown indicates a failure with no usable classification, such
	// as a Failure constructed without a reason.
	CodeUnknown Code = "UNKNOWN_001"
)

// String returns the string representation of the fault code.
func (c Code) String() string {
	return string(c)
}

// Family returns the family prefix of the fault code (e.g., "NET", "FILE").
func (c Code) Family() string {
	s := string(c)
	for i, r := range s {
		if r == '_' {
			return s[:i]
		}
	}
	return s
}
