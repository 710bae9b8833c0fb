package result

import (
	"github.com/LoadstoneSoft/loadstone-core/pkg/faults"
)

// Catch executes block synchronously and lifts its outcome into the result
// algebra. A normal return yields Success; a returned error yields Failure
// wrapping it via faults.FromError; a panic during execution is recovered
// and yields Failure wrapping the panic value via faults.FromPanic.
//
// This is the single boundary where Go's return-value failures (and
// escaped panics) are converted into typed Failure values. Outside Catch,
// the package never intercepts failures on behalf of the caller.
//
// Example:
//
//	res := result.Catch(func() (Profile, error) {
//	    return client.FetchProfile(ctx, id)
//	})
func Catch[D any](block func() (D, error)) (res Result[D]) {
	defer func() {
		if v := recover(); v != nil {
			res = Failure[D](faults.FromPanic(v))
		}
	}()

	data, err := block()
	if err != nil {
		return Failure[D](faults.FromError(err))
	}
	return Success(data)
}
