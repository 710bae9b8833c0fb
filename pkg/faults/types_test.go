package faults

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFault_Error(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name  string
		fault *Fault
		want  string
	}{
		{
			name:  "fault without cause",
			fault: &Fault{Code: CodeFileNotFound, Message: "file not found"},
			want:  "FILE_001: file not found",
		},
		{
			name: "fault with cause",
			fault: &Fault{
				Code:    CodeWrapped,
				Message: "cache lookup failed",
				Cause:   errors.New("connection refused"),
			},
			want: "WRAP_001: cache lookup failed: connection refused",
		},
		{
			name: "fault with nested fault cause",
			fault: &Fault{
				Code:    CodeNetworkUnavailable,
				Message: "upstream call failed",
				Cause:   &Fault{Code: CodeNetworkGatewayTimeout, Message: "gateway timeout (HTTP 504)"},
			},
			want: "NET_503: upstream call failed: NET_504: gateway timeout (HTTP 504)",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.fault.Error())
		})
	}
}

func TestFault_Key(t *testing.T) {
	t.Parallel()
	// Key is the stable identity: same code means same key even when the
	// message wording differs.
	a := &Fault{Code: CodePermissionDenied, Message: "permission denied"}
	b := &Fault{Code: CodePermissionDenied, Message: "access is not allowed"}
	assert.Equal(t, a.Key(), b.Key())
	assert.Equal(t, "PERM_001", a.Key())
}

func TestFault_Unwrap(t *testing.T) {
	t.Parallel()
	cause := errors.New("underlying error")
	fault := &Fault{Code: CodeWrapped, Message: "wrapped", Cause: cause}

	assert.Equal(t, cause, fault.Unwrap())
	assert.True(t, errors.Is(fault, cause))

	var target *Fault
	require.True(t, errors.As(fault, &target))
	assert.Equal(t, CodeWrapped, target.Code)

	assert.Nil(t, (&Fault{Code: CodeUnknown}).Unwrap())
}

func TestFault_Format(t *testing.T) {
	t.Parallel()
	fault := &Fault{
		Code:    CodeNetworkNotFound,
		Message: "not found (HTTP 404)",
		Status:  404,
	}

	assert.Equal(t, "NET_404: not found (HTTP 404)", fmt.Sprintf("%v", fault))
	assert.Equal(t, "NET_404: not found (HTTP 404)", fmt.Sprintf("%s", fault))
	assert.Equal(t, `"NET_404: not found (HTTP 404)"`, fmt.Sprintf("%q", fault))

	detailed := fmt.Sprintf("%+v", fault)
	assert.Contains(t, detailed, `Code: "NET_404"`)
	assert.Contains(t, detailed, "Status: 404")
}
