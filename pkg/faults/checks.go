package faults

import (
	"errors"
)

// AsFault attempts to convert an error to a *Fault.
// Returns the Fault and true if successful, nil and false otherwise.
// This function traverses the error chain using errors.As.
//
// Example:
//
//	if f, ok := faults.AsFault(err); ok {
//	    log.Printf("fault code: %s, message: %s", f.Code, f.Message)
//	}
func AsFault(err error) (*Fault, bool) {
	var f *Fault
	if errors.As(err, &f) {
		return f, true
	}
	return nil, false
}

// GetCode returns the fault code from an error.
// If the error is not a *Fault or is nil, returns an empty string.
func GetCode(err error) Code {
	if f, ok := AsFault(err); ok {
		return f.Code
	}
	return ""
}

// HasCode checks if an error carries the specified fault code.
// Returns false if the error is nil or not a *Fault.
//
// Example:
//
//	if faults.HasCode(err, faults.CodeNetworkNotFound) {
//	    // handle 404
//	}
func HasCode(err error, code Code) bool {
	return GetCode(err) == code
}

// IsNetwork checks if the error is a network fault (NET_xxx).
func IsNetwork(err error) bool {
	f, ok := AsFault(err)
	return ok && f.Code.Family() == "NET"
}

// IsFile checks if the error is a file fault (FILE_xxx).
func IsFile(err error) bool {
	f, ok := AsFault(err)
	return ok && f.Code.Family() == "FILE"
}

// IsPermission checks if the error is a permission fault (PERM_xxx).
func IsPermission(err error) bool {
	f, ok := AsFault(err)
	return ok && f.Code.Family() == "PERM"
}

// IsWrapped checks if the error is a wrapped external failure (WRAP_xxx).
func IsWrapped(err error) bool {
	f, ok := AsFault(err)
	return ok && f.Code.Family() == "WRAP"
}

// IsNullTransform checks if the error is the synthesized
// null-transformation fault.
func IsNullTransform(err error) bool {
	return HasCode(err, CodeNullTransform)
}

// IsConfig checks if the error is a configuration fault (CONFIG_xxx).
func IsConfig(err error) bool {
	f, ok := AsFault(err)
	return ok && f.Code.Family() == "CONFIG"
}
