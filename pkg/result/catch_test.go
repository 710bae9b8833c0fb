package result_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/LoadstoneSoft/loadstone-core/internal/testutil"
	"github.com/LoadstoneSoft/loadstone-core/pkg/faults"
	"github.com/LoadstoneSoft/loadstone-core/pkg/result"
)

func TestCatch_Success(t *testing.T) {
	t.Parallel()
	res := result.Catch(func() (int, error) { return 42, nil })
	assert.Equal(t, 42, testutil.RequireSuccess(t, res))
}

func TestCatch_Error(t *testing.T) {
	t.Parallel()
	boom := errors.New("connection refused")
	res := result.Catch(func() (int, error) { return 0, boom })

	reason := testutil.RequireFailure(t, res)
	testutil.RequireFaultCode(t, reason, faults.CodeWrapped)
	assert.True(t, errors.Is(reason, boom), "original error must stay in the chain")
}

func TestCatch_ErrorAlreadyFaultPassesThrough(t *testing.T) {
	t.Parallel()
	fault := faults.NetworkFromStatus(429)
	res := result.Catch(func() (int, error) { return 0, fault })

	reason := testutil.RequireFailure(t, res)
	assert.Same(t, fault, reason.(*faults.Fault),
		"a fault returned by the block must not be re-wrapped")
}

func TestCatch_Panic(t *testing.T) {
	t.Parallel()
	res := result.Catch(func() (int, error) { panic("index out of range") })

	reason := testutil.RequireFailure(t, res)
	testutil.RequireFaultCode(t, reason, faults.CodeWrapped)
	assert.Contains(t, reason.Error(), "index out of range")
}

func TestCatch_PanicWithError(t *testing.T) {
	t.Parallel()
	boom := errors.New("nil dereference")
	res := result.Catch(func() (int, error) { panic(boom) })

	reason := testutil.RequireFailure(t, res)
	testutil.RequireFaultCode(t, reason, faults.CodeWrapped)
	assert.True(t, errors.Is(reason, boom))
}
