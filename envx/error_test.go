package envx_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/unattended-backpack/clay/envx"
)

func TestError(t *testing.T) {
	cause := errors.New("permission denied")

	tests := []struct {
		name string
		err  envx.Error
		want string
	}{
		{"reason only", envx.Error{VarName: "CLAY_SECRET", Reason: "is not set"}, `variable "CLAY_SECRET" is not set`},
		{"cause only", envx.Error{VarName: "CLAY_SECRET", Cause: envx.ErrRequired}, `variable "CLAY_SECRET": value is required`},
		{"reason and cause", envx.Error{VarName: "POTTER_SECRET", Reason: "cannot be set in Environment", Cause: cause}, `variable "POTTER_SECRET" cannot be set in Environment: permission denied`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.EqualError(t, tt.err, tt.want)
		})
	}
}

func TestErrorUnwrap(t *testing.T) {
	var err error = envx.Error{VarName: "CLAY_SECRET", Reason: "is not set", Cause: envx.ErrRequired}

	assert.ErrorIs(t, err, envx.ErrRequired)

	var envErr envx.Error
	assert.True(t, errors.As(err, &envErr))
	assert.Equal(t, "CLAY_SECRET", envErr.VarName)
}
