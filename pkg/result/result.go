// Package result provides a generic, immutable container for the outcome of
// an operation that may be pending, idle, successful, or failed. It gives
// producer code (a data-fetch layer, a client wrapper) a uniform way to hand
// operation status to consumer code (a presentation layer, a caller) without
// control-flow exceptions.
//
// # States
//
// A Result is always in exactly one of four states:
//
//	Idle     no operation has started; placeholder data allowed
//	Loading  operation in progress; optional stale or partial data
//	Success  operation completed; data is present by construction
//	Failure  operation failed; reason is mandatory, data optional
//
// The zero value of Result is Idle with no payload.
//
// # Immutability
//
// A Result never changes after construction: every transformation produces
// a new value. Instances may therefore be shared across goroutines freely
// without locking.
//
// # Combinators
//
// Map and FlatMap are package-level functions because Go methods cannot
// introduce new type parameters. Recover, RecoverWith, and the On* hooks
// keep the data type and are methods:
//
//	res := result.Success(41)
//	res = result.Map(res, func(n int) (int, bool) { return n + 1, true }).
//		OnSuccess(func(n int) { fmt.Println(n) }).
//		Recover(func(r result.Reason) int { return 0 })
//
// # Failure Reasons
//
// The failure slot holds any type satisfying the Reason capability: a
// human-readable message (via error) and a stable key for branching. The
// faults package supplies ready-made families (network, file, permission,
// wrapped); callers may bring their own.
package result

import (
	"fmt"

	"github.com/LoadstoneSoft/loadstone-core/pkg/faults"
)

// Reason is the capability a failure cause must satisfy to ride inside a
// Failure result: a human-readable message (the error interface) and a
// stable textual identity. The container never branches on a reason's
// concrete type, only carries it.
type Reason interface {
	error

	// Key returns a stable identifier for the failure condition, suitable
	// for equality checks and branching. Two reasons with the same Key
	// represent the same condition regardless of message wording.
	Key() string
}

// *faults.Fault is the SDK's standard Reason implementation.
var _ Reason = (*faults.Fault)(nil)

// State identifies which variant of a Result is active. Exactly one state
// is active at a time; the predicates on Result all read this single tag,
// so they are mutually exclusive and exhaustive by construction.
type State string

const (
	// StateIdle indicates no operation has started. The payload, when
	// present, is placeholder data.
	StateIdle State = "idle"

	// StateLoading indicates the operation is in progress. The payload,
	// when present, is stale or partial data.
	StateLoading State = "loading"

	// StateSuccess indicates the operation completed. The payload is
	// always present.
	StateSuccess State = "success"

	// StateFailure indicates the operation failed. The reason is always
	// present; the payload, when present, is stale data.
	StateFailure State = "failure"
)

// String returns the string representation of the state.
func (s State) String() string {
	return string(s)
}

// Valid reports whether the state is one of the recognized values.
func (s State) Valid() bool {
	switch s {
	case StateIdle, StateLoading, StateSuccess, StateFailure:
		return true
	default:
		return false
	}
}

// StatusOK is the default informational status code carried by Success
// results. It does not participate in any branching logic.
const StatusOK = 200

// Result is an immutable container for the outcome of an operation
// producing a D. Construct one with Idle, Loading, Success, Failure, or
// the WrapAs* lifting helpers; inspect it with the predicates and Data /
// Reason accessors; transform it with Map, FlatMap, Recover, and
// RecoverWith.
type Result[D any] struct {
	state  State
	data   *D
	status int
	reason Reason
}

// Idle returns an Idle result with no payload.
func Idle[D any]() Result[D] {
	return Result[D]{state: StateIdle}
}

// Loading returns a Loading result with no payload.
func Loading[D any]() Result[D] {
	return Result[D]{state: StateLoading}
}

// Success returns a Success result carrying data. The payload is required
// by the signature: a Success without data is unrepresentable. The status
// code defaults to StatusOK.
func Success[D any](data D) Result[D] {
	return Result[D]{state: StateSuccess, data: &data, status: StatusOK}
}

// SuccessStatus returns a Success result carrying data and an
// informational status code.
func SuccessStatus[D any](data D, status int) Result[D] {
	return Result[D]{state: StateSuccess, data: &data, status: status}
}

// Failure returns a Failure result with no payload. A nil reason is
// replaced with faults.Unknown so that a Failure always carries a concrete
// reason.
func Failure[D any](reason Reason) Result[D] {
	if reason == nil {
		reason = faults.Unknown()
	}
	return Result[D]{state: StateFailure, reason: reason}
}

// WrapAsIdle lifts a plain value into an Idle result carrying it as
// placeholder data.
func WrapAsIdle[D any](data D) Result[D] {
	return Result[D]{state: StateIdle, data: &data}
}

// WrapAsLoading lifts a plain value into a Loading result carrying it as
// stale or partial data.
func WrapAsLoading[D any](data D) Result[D] {
	return Result[D]{state: StateLoading, data: &data}
}

// WrapAsSuccess lifts a plain value into a Success result. It is
// equivalent to Success and exists for symmetry with the other lifting
// helpers.
func WrapAsSuccess[D any](data D) Result[D] {
	return Success(data)
}

// WrapAsFailure lifts a reason and a stale payload into a Failure result.
// A nil reason is replaced with faults.Unknown.
func WrapAsFailure[D any](reason Reason, data D) Result[D] {
	if reason == nil {
		reason = faults.Unknown()
	}
	return Result[D]{state: StateFailure, data: &data, reason: reason}
}

// State returns the active state. The zero value reports StateIdle.
func (r Result[D]) State() State {
	if r.state == "" {
		return StateIdle
	}
	return r.state
}

// IsIdle reports whether the result is Idle.
func (r Result[D]) IsIdle() bool {
	return r.State() == StateIdle
}

// IsLoading reports whether the result is Loading.
func (r Result[D]) IsLoading() bool {
	return r.State() == StateLoading
}

// IsSuccess reports whether the result is Success.
func (r Result[D]) IsSuccess() bool {
	return r.State() == StateSuccess
}

// IsFailure reports whether the result is Failure.
func (r Result[D]) IsFailure() bool {
	return r.State() == StateFailure
}

// Data returns the payload carried by the active variant, whichever it is.
// For Success the payload is always present; for Idle, Loading, and
// Failure, ok reports whether one was supplied.
func (r Result[D]) Data() (data D, ok bool) {
	if r.data == nil {
		var zero D
		return zero, false
	}
	return *r.data, true
}

// DataOr returns the payload if one is present, fallback otherwise.
func (r Result[D]) DataOr(fallback D) D {
	if r.data == nil {
		return fallback
	}
	return *r.data
}

// Reason returns the failure reason. ok is true only for Failure results,
// whose reason is present by construction.
func (r Result[D]) Reason() (reason Reason, ok bool) {
	if r.state != StateFailure {
		return nil, false
	}
	return r.reason, true
}

// Status returns the informational status code of a Success result, zero
// for all other variants.
func (r Result[D]) Status() int {
	return r.status
}

// String renders the result for debugging. It distinguishes the variant
// and includes the payload and, for Failure, the reason's message.
func (r Result[D]) String() string {
	switch r.State() {
	case StateSuccess:
		return fmt.Sprintf("Success(%v, status=%d)", *r.data, r.status)
	case StateFailure:
		if r.data != nil {
			return fmt.Sprintf("Failure(%v, data=%v)", r.reason, *r.data)
		}
		return fmt.Sprintf("Failure(%v)", r.reason)
	case StateLoading:
		if r.data != nil {
			return fmt.Sprintf("Loading(%v)", *r.data)
		}
		return "Loading()"
	default:
		if r.data != nil {
			return fmt.Sprintf("Idle(%v)", *r.data)
		}
		return "Idle()"
	}
}

// Equal reports whether two results are indistinguishable: same state,
// same payload presence and value, same status code, and (for Failure)
// reasons with equal keys and messages.
func Equal[D comparable](a, b Result[D]) bool {
	if a.State() != b.State() || a.status != b.status {
		return false
	}
	ad, aok := a.Data()
	bd, bok := b.Data()
	if aok != bok || (aok && ad != bd) {
		return false
	}
	ar, aok := a.Reason()
	br, bok := b.Reason()
	if aok != bok {
		return false
	}
	if aok {
		return ar.Key() == br.Key() && ar.Error() == br.Error()
	}
	return true
}
