package result_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LoadstoneSoft/loadstone-core/internal/testutil"
	"github.com/LoadstoneSoft/loadstone-core/pkg/faults"
	"github.com/LoadstoneSoft/loadstone-core/pkg/result"
)

func TestResult_StatePredicates(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name      string
		res       result.Result[int]
		wantState result.State
	}{
		{"idle without payload", result.Idle[int](), result.StateIdle},
		{"idle with payload", result.WrapAsIdle(1), result.StateIdle},
		{"loading without payload", result.Loading[int](), result.StateLoading},
		{"loading with payload", result.WrapAsLoading(2), result.StateLoading},
		{"success", result.Success(3), result.StateSuccess},
		{"success with status", result.SuccessStatus(3, 201), result.StateSuccess},
		{"failure without payload", result.Failure[int](faults.PermissionDenied()), result.StateFailure},
		{"failure with payload", result.WrapAsFailure(faults.PermissionDenied(), 4), result.StateFailure},
		{"zero value is idle", result.Result[int]{}, result.StateIdle},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.wantState, tt.res.State())
			assert.True(t, tt.res.State().Valid())

			// Exactly one predicate holds for any variant.
			predicates := []bool{
				tt.res.IsIdle(), tt.res.IsLoading(),
				tt.res.IsSuccess(), tt.res.IsFailure(),
			}
			active := 0
			for _, p := range predicates {
				if p {
					active++
				}
			}
			assert.Equal(t, 1, active,
				"exactly one predicate must hold, got %v", predicates)
		})
	}
}

func TestResult_Data(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		res      result.Result[string]
		wantData string
		wantOK   bool
	}{
		{"idle has no data", result.Idle[string](), "", false},
		{"idle carries placeholder", result.WrapAsIdle("draft"), "draft", true},
		{"loading has no data", result.Loading[string](), "", false},
		{"loading carries stale data", result.WrapAsLoading("stale"), "stale", true},
		{"success always has data", result.Success("fresh"), "fresh", true},
		{"failure has no data", result.Failure[string](faults.FileNotFound()), "", false},
		{"failure carries stale data", result.WrapAsFailure(faults.FileNotFound(), "cached"), "cached", true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			data, ok := tt.res.Data()
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantData, data)
		})
	}
}

func TestResult_DataOr(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "cached", result.WrapAsLoading("cached").DataOr("fallback"))
	assert.Equal(t, "fallback", result.Loading[string]().DataOr("fallback"))
}

func TestResult_Reason(t *testing.T) {
	t.Parallel()
	fault := faults.NetworkFromStatus(404)

	reason, ok := result.Failure[int](fault).Reason()
	require.True(t, ok)
	assert.Equal(t, "NET_404", reason.Key())

	// Non-failure variants expose no reason, payload or not.
	for _, res := range []result.Result[int]{
		result.Idle[int](), result.Loading[int](), result.Success(1), result.WrapAsLoading(2),
	} {
		reason, ok := res.Reason()
		assert.False(t, ok)
		assert.Nil(t, reason)
	}
}

func TestFailure_NilReasonIsGuarded(t *testing.T) {
	t.Parallel()
	// A Failure must always carry a concrete reason; nil is replaced
	// with the unknown fault rather than stored.
	res := result.Failure[int](nil)
	testutil.RequireFailureCode(t, res, faults.CodeUnknown)

	res = result.WrapAsFailure[int](nil, 7)
	testutil.RequireFailureCode(t, res, faults.CodeUnknown)
	assert.Equal(t, 7, res.DataOr(0))
}

func TestResult_Status(t *testing.T) {
	t.Parallel()
	assert.Equal(t, result.StatusOK, result.Success(1).Status())
	assert.Equal(t, 201, result.SuccessStatus(1, 201).Status())
	assert.Zero(t, result.Loading[int]().Status())
	assert.Zero(t, result.Failure[int](faults.Unknown()).Status())
}

func TestResult_String(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		got  string
		want string
	}{
		{"idle empty", result.Idle[int]().String(), "Idle()"},
		{"idle with data", result.WrapAsIdle(5).String(), "Idle(5)"},
		{"loading empty", result.Loading[int]().String(), "Loading()"},
		{"loading with data", result.WrapAsLoading(6).String(), "Loading(6)"},
		{"success", result.Success(7).String(), "Success(7, status=200)"},
		{"failure", result.Failure[int](faults.FileNotFound()).String(),
			"Failure(FILE_001: file not found)"},
		{"failure with data", result.WrapAsFailure(faults.FileNotFound(), 8).String(),
			"Failure(FILE_001: file not found, data=8)"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.got)
		})
	}
}

func TestEqual(t *testing.T) {
	t.Parallel()
	notFound := faults.NetworkFromStatus(404)

	tests := []struct {
		name string
		a, b result.Result[int]
		want bool
	}{
		{"identical successes", result.Success(1), result.Success(1), true},
		{"different payloads", result.Success(1), result.Success(2), false},
		{"different statuses", result.Success(1), result.SuccessStatus(1, 204), false},
		{"different variants", result.WrapAsIdle(1), result.WrapAsLoading(1), false},
		{"payload presence differs", result.Idle[int](), result.WrapAsIdle(0), false},
		{"idle equals zero value", result.Idle[int](), result.Result[int]{}, true},
		{"same failure", result.Failure[int](notFound), result.Failure[int](faults.NetworkFromStatus(404)), true},
		{"different failure codes", result.Failure[int](notFound), result.Failure[int](faults.FileNotFound()), false},
		{"failure vs success", result.Failure[int](notFound), result.Success(1), false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, result.Equal(tt.a, tt.b))
		})
	}
}

func TestState_Valid(t *testing.T) {
	t.Parallel()
	for _, s := range []result.State{
		result.StateIdle, result.StateLoading, result.StateSuccess, result.StateFailure,
	} {
		assert.True(t, s.Valid(), "state %q should be valid", s)
		assert.Equal(t, string(s), s.String())
	}
	assert.False(t, result.State("").Valid())
	assert.False(t, result.State("done").Valid())
}

func TestResult_ImmutableUnderTransformation(t *testing.T) {
	t.Parallel()
	original := result.Success(10)

	_ = result.Map(original, func(n int) (int, bool) { return n * 2, true })
	_ = original.Recover(func(result.Reason) int { return 0 })
	_ = original.OnSuccess(func(int) {})

	data := testutil.RequireSuccess(t, original)
	assert.Equal(t, 10, data, "transformations must not mutate the original")
}
