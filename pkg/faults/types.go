package faults

import (
	"fmt"
)

// Fault represents a structured failure reason with a code, message, and
// optional cause. It implements the standard error interface and the
// result package's Reason capability (message plus stable key), so a Fault
// can ride inside any Failure result and participate in error chains.
//
// Fault is designed to be:
//   - Immutable: Fields are not modified after creation
//   - Chainable: Supports error wrapping via the Cause field
//   - Structured: Provides a machine-readable code for branching
type Fault struct {
	// Code is the machine-readable fault code (e.g., "NET_404").
	Code Code

	// Message is the human-readable fault message. For canonical variants
	// the message is fixed; for custom variants it is caller-supplied.
	Message string

	// Status is the numeric HTTP status for network faults, zero for all
	// other families. It is informational; branching should use Code.
	Status int

	// Cause is the underlying error that produced this fault, if any.
	// Use Unwrap() to access the cause for error chain inspection.
	Cause error
}

// Error implements the error interface, returning the coded fault message.
func (f *Fault) Error() string {
	if f.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", f.Code, f.Message, f.Cause)
	}
	return fmt.Sprintf("%s: %s", f.Code, f.Message)
}

// Key returns the fault's stable identity. It satisfies the result
// package's Reason capability: two faults with the same Key represent the
// same failure condition regardless of message wording.
func (f *Fault) Key() string {
	return string(f.Code)
}

// Unwrap returns the underlying cause of this fault, supporting
// errors.Unwrap() and errors.Is() from the standard library.
func (f *Fault) Unwrap() error {
	return f.Cause
}

// Format implements fmt.Formatter for detailed fault output.
// Use %v for standard output, %+v for detailed output including the
// status and cause chain.
func (f *Fault) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		if s.Flag('+') {
			fmt.Fprintf(s, "Fault{Code: %q, Message: %q", f.Code, f.Message)
			if f.Status != 0 {
				fmt.Fprintf(s, ", Status: %d", f.Status)
			}
			if f.Cause != nil {
				fmt.Fprintf(s, ", Cause: %+v", f.Cause)
			}
			fmt.Fprint(s, "}")
			return
		}
		fallthrough
	case 's':
		fmt.Fprint(s, f.Error())
	case 'q':
		fmt.Fprintf(s, "%q", f.Error())
	}
}
