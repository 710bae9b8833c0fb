// Package faults provides the failure-reason types carried by Failure
// results across the Loadstone SDK. It defines closed families of coded
// faults, lookup constructors, and helper functions for creating, wrapping,
// and inspecting faults.
//
// # Fault Families
//
// The package defines several fault families that map to common failure
// scenarios:
//
//   - Network faults: HTTP-status-coded failures from remote calls
//   - File faults: not-found, read, and write failures
//   - Permission faults: denied or revoked access
//   - Wrapped faults: arbitrary external errors lifted into the taxonomy
//   - Transform faults: synthesized when a success transformation yields
//     no value
//   - Config faults: configuration loading and validation failures
//
// Each family is a closed set of named variants plus a custom escape hatch
// carrying an arbitrary message.
//
// # Fault Codes
//
// Each fault includes a machine-readable code (e.g., "NET_404") that can be
// used for branching, tracking, and alerting. Fault codes follow the
// pattern: FAMILY_XXX where FAMILY is a short identifier and XXX is a
// numeric code. Codes are the stable identity of a fault; messages are for
// humans and may change.
//
// # Usage
//
// Create a fault from an HTTP status:
//
//	f := faults.NetworkFromStatus(404)
//
// Wrap an external error:
//
//	f := faults.FromError(err)
//
// Check a fault family:
//
//	if faults.IsNetwork(err) {
//	    // handle network failure
//	}
//
// Every *Fault satisfies the result.Reason capability (message plus stable
// key), so faults can ride inside any Failure result.
package faults
