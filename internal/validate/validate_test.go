package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVar_NotBlank(t *testing.T) {
	tests := []struct {
		name  string
		value string
		ok    bool
	}{
		{name: "empty", value: "", ok: false},
		{name: "spaces only", value: "   \t\n", ok: false},
		{name: "text", value: "Jane Doe", ok: true},
		{name: "padded text", value: "  hi  ", ok: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Var(tt.value, "notblank")
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestStruct_EmailTag(t *testing.T) {
	type form struct {
		Email string `validate:"notblank,email"`
	}
	require.NoError(t, Struct(form{Email: "jane@x.com"}))
	require.Error(t, Struct(form{Email: "jane"}))
	require.Error(t, Struct(form{Email: ""}))
}
