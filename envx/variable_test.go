package envx_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unattended-backpack/clay/envx"
)

func TestVariable_String(t *testing.T) {
	tests := []struct {
		name    string
		v       *envx.Variable
		want    string
		wantErr error
	}{
		{
			name: "present required",
			v:    (&envx.Variable{Name: "V", Val: "x", Exist: true}).Required(),
			want: "x",
		},
		{
			name:    "absent required",
			v:       (&envx.Variable{Name: "V"}).Required(),
			wantErr: envx.ErrRequired,
		},
		{
			name: "present empty required",
			v:    (&envx.Variable{Name: "V", Exist: true}).Required(),
			want: "",
		},
		{
			name: "absent without runners",
			v:    &envx.Variable{Name: "V"},
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.v.String()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, "", got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRequiredErrorNamesVariable(t *testing.T) {
	_, err := (&envx.Variable{Name: "CLAY_SECRET"}).Required().String()

	assert.EqualError(t, err, `variable "CLAY_SECRET" is not set: value is required`)
}
