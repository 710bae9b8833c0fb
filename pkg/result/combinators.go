package result

import (
	"github.com/LoadstoneSoft/loadstone-core/pkg/faults"
)

// Combinators over Result values.
//
// Map and FlatMap change the data type, so they are package-level generic
// functions; Go methods cannot introduce new type parameters. Recover and
// RecoverWith keep the data type and live on Result as methods.

// Map transforms the payload of a result while preserving its variant.
// The transform reports whether it produced a value: returning ok == false
// means the transformation was semantically null.
//
// Per-variant behavior:
//
//   - Success: the transform is applied to the required payload. If it
//     yields no value, the result becomes a Failure carrying the
//     null-transformation fault; a Success may never hold an absent
//     payload, so this is the one place a failure is synthesized without a
//     caller-supplied reason. Otherwise the status code is carried over.
//   - Idle, Loading: the transform is applied only when a payload is
//     present; absence is preserved, and so is the variant.
//   - Failure: as Idle/Loading, with the reason carried through unchanged.
func Map[D, R any](r Result[D], transform func(D) (R, bool)) Result[R] {
	switch r.State() {
	case StateSuccess:
		v, ok := transform(*r.data)
		if !ok {
			return Failure[R](faults.NullTransform())
		}
		return Result[R]{state: StateSuccess, data: &v, status: r.status}
	case StateFailure:
		out := Result[R]{state: StateFailure, reason: r.reason}
		if r.data != nil {
			if v, ok := transform(*r.data); ok {
				out.data = &v
			}
		}
		return out
	default:
		out := Result[R]{state: r.State()}
		if r.data != nil {
			if v, ok := transform(*r.data); ok {
				out.data = &v
			}
		}
		return out
	}
}

// FlatMap hands whatever payload the result carries (present or not, from
// any variant) to the transform, which returns a complete new result. The
// transform is always invoked and fully re-decides the resulting variant:
// a chain can turn a Loading into a Success, a Failure into an Idle, and
// so on. This is the universal chaining primitive; Map is kept separate
// for its null-transformation safety rule.
func FlatMap[D, R any](r Result[D], transform func(data D, ok bool) Result[R]) Result[R] {
	data, ok := r.Data()
	return transform(data, ok)
}

// Recover converts a Failure into a Success by computing replacement data
// from the reason. All other variants pass through unchanged.
func (r Result[D]) Recover(transform func(Reason) D) Result[D] {
	if !r.IsFailure() {
		return r
	}
	return Success(transform(r.reason))
}

// RecoverWith replaces a Failure with the transform's result, letting the
// caller decide the new variant entirely. All other variants pass through
// unchanged.
func (r Result[D]) RecoverWith(transform func(Reason) Result[D]) Result[D] {
	if !r.IsFailure() {
		return r
	}
	return transform(r.reason)
}
