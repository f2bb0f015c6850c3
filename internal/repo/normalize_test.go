package repo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOptional(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want *string
	}{
		{"empty becomes absent", "", nil},
		{"whitespace becomes absent", "   ", nil},
		{"value is kept", "Salvador", strPtr("Salvador")},
		{"value is trimmed", "  Salvador ", strPtr("Salvador")},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := optional(tc.in)
			if tc.want == nil {
				assert.Nil(t, got)
			} else {
				assert.NotNil(t, got)
				assert.Equal(t, *tc.want, *got)
			}
		})
	}
}

func TestText(t *testing.T) {
	assert.Equal(t, "", text(nil))
	assert.Equal(t, "BA", text(strPtr("BA")))
}

func strPtr(s string) *string { return &s }
