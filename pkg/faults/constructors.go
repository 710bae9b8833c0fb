package faults

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// Canonical messages for the file and permission families. FileFromMessage
// and PermissionFromMessage compare against these exact strings, so they
// must not change once published.
const (
	fileNotFoundMessage  = "file not found"
	fileReadMessage      = "file read failed"
	fileWriteMessage     = "file write failed"
	permissionDeniedMsg  = "permission denied"
	permissionRevokedMsg = "permission revoked"
)

// genericWrapMessage is used when a wrapped error has no message of its own.
const genericWrapMessage = "an unexpected failure occurred"

// New creates a new Fault with the specified code and message.
// Use this for creating faults without an underlying cause.
//
// Example:
//
//	f := faults.New(faults.CodeConfig, "config file is malformed")
func New(code Code, message string) *Fault {
	return &Fault{
		Code:    code,
		Message: message,
	}
}

// Newf creates a new Fault with the specified code and formatted message.
//
// Example:
//
//	f := faults.Newf(faults.CodeConfigRequired, "field %q is empty", name)
func Newf(code Code, format string, args ...any) *Fault {
	return &Fault{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap wraps an existing error with a fault code and message. The wrapped
// error becomes the Cause of the new fault. If err is nil, Wrap returns
// nil.
//
// Example:
//
//	raw, err := cache.Get(ctx, key)
//	if err != nil {
//	    return faults.Wrap(err, faults.CodeNetworkUnavailable, "cache lookup failed")
//	}
func Wrap(err error, code Code, message string) *Fault {
	if err == nil {
		return nil
	}
	return &Fault{
		Code:    code,
		Message: message,
		Cause:   err,
	}
}

// Wrapf wraps an existing error with a formatted message.
// If err is nil, Wrapf returns nil.
func Wrapf(err error, code Code, format string, args ...any) *Fault {
	if err == nil {
		return nil
	}
	return &Fault{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   err,
	}
}

// networkCodes maps recognized HTTP statuses to their canonical fault
// codes. Statuses outside this set fall back to CodeNetworkCustom.
var networkCodes = map[int]Code{
	http.StatusBadRequest:          CodeNetworkBadRequest,
	http.StatusUnauthorized:        CodeNetworkUnauthorized,
	http.StatusForbidden:           CodeNetworkForbidden,
	http.StatusNotFound:            CodeNetworkNotFound,
	http.StatusRequestTimeout:      CodeNetworkRequestTimeout,
	http.StatusTooManyRequests:     CodeNetworkTooManyRequests,
	http.StatusInternalServerError: CodeNetworkInternal,
	http.StatusBadGateway:          CodeNetworkBadGateway,
	http.StatusServiceUnavailable:  CodeNetworkUnavailable,
	http.StatusGatewayTimeout:      CodeNetworkGatewayTimeout,
}

// NetworkFromStatus returns the canonical network fault for an HTTP status.
// The message always includes the numeric status. Unrecognized statuses
// yield a CodeNetworkCustom fault carrying the original number in its
// Status field.
//
// Example:
//
//	f := faults.NetworkFromStatus(resp.StatusCode)
//	if faults.HasCode(f, faults.CodeNetworkNotFound) {
//	    // 404
//	}
func NetworkFromStatus(status int) *Fault {
	code, ok := networkCodes[status]
	if !ok {
		return &Fault{
			Code:    CodeNetworkCustom,
			Message: fmt.Sprintf("unrecognized HTTP status %d", status),
			Status:  status,
		}
	}
	return &Fault{
		Code:    code,
		Message: fmt.Sprintf("%s (HTTP %d)", strings.ToLower(http.StatusText(status)), status),
		Status:  status,
	}
}

// FileNotFound returns the canonical file-not-found fault.
func FileNotFound() *Fault {
	return New(CodeFileNotFound, fileNotFoundMessage)
}

// FileReadFailed returns the canonical file-read fault.
func FileReadFailed() *Fault {
	return New(CodeFileRead, fileReadMessage)
}

// FileWriteFailed returns the canonical file-write fault.
func FileWriteFailed() *Fault {
	return New(CodeFileWrite, fileWriteMessage)
}

// FileCustom returns a file fault with a caller-supplied message.
func FileCustom(message string) *Fault {
	return New(CodeFileCustom, message)
}

// FileFromMessage reconstructs a file fault from its rendered message.
// Messages matching a canonical variant yield that variant; anything else
// yields FileCustom with the message unchanged.
//
// The lookup is lossy: it relies on exact message equality, so a reworded
// message no longer round-trips. Prefer branching on Code (via HasCode)
// when the original fault value is available.
func FileFromMessage(message string) *Fault {
	switch message {
	case fileNotFoundMessage:
		return FileNotFound()
	case fileReadMessage:
		return FileReadFailed()
	case fileWriteMessage:
		return FileWriteFailed()
	default:
		return FileCustom(message)
	}
}

// PermissionDenied returns the canonical permission-denied fault.
func PermissionDenied() *Fault {
	return New(CodePermissionDenied, permissionDeniedMsg)
}

// PermissionRevoked returns the canonical permission-revoked fault.
func PermissionRevoked() *Fault {
	return New(CodePermissionRevoked, permissionRevokedMsg)
}

// PermissionCustom returns a permission fault with a caller-supplied
// message.
func PermissionCustom(message string) *Fault {
	return New(CodePermissionCustom, message)
}

// PermissionFromMessage reconstructs a permission fault from its rendered
// message, with the same lossy-equality caveat as FileFromMessage.
func PermissionFromMessage(message string) *Fault {
	switch message {
	case permissionDeniedMsg:
		return PermissionDenied()
	case permissionRevokedMsg:
		return PermissionRevoked()
	default:
		return PermissionCustom(message)
	}
}

// NullTransform returns the fault synthesized when a success
// transformation yields no value. The result package produces this fault
// from Map; application code normally only ever inspects it.
func NullTransform() *Fault {
	return New(CodeNullTransform, "transformation produced no value")
}

// Unknown returns the fault substituted when a failure is constructed
// without a concrete reason.
func Unknown() *Fault {
	return New(CodeUnknown, "unknown failure")
}

// FromError lifts an arbitrary error into the taxonomy. If the error is
// already a *Fault, it is returned as-is. Otherwise it becomes a wrapped
// fault with the error as its Cause; an error with an empty message gets a
// generic description. Returns nil for a nil error.
//
// Example:
//
//	data, err := load(ctx)
//	if err != nil {
//	    return result.Failure[Profile](faults.FromError(err))
//	}
func FromError(err error) *Fault {
	if err == nil {
		return nil
	}

	var f *Fault
	if errors.As(err, &f) {
		return f
	}

	message := err.Error()
	if message == "" {
		message = genericWrapMessage
	}
	return &Fault{
		Code:    CodeWrapped,
		Message: message,
		Cause:   err,
	}
}

// FromPanic lifts a recovered panic value into the taxonomy. Error values
// are delegated to FromError; everything else is rendered into the wrapped
// fault's message.
func FromPanic(v any) *Fault {
	if err, ok := v.(error); ok {
		return Wrap(err, CodeWrapped, "panic during execution")
	}
	return Newf(CodeWrapped, "panic during execution: %v", v)
}
