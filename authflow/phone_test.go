package authflow

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePhone(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"bare number", "9876543210", "+919876543210"},
		{"country code without plus", "919876543210", "+919876543210"},
		{"full international form", "+919876543210", "+919876543210"},
		{"surrounding whitespace", "  9876543210 ", "+919876543210"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizePhone(tt.input))
		})
	}
}

// The three accepted spellings of one number must converge on the same
// canonical value.
func TestNormalizePhone_Convergence(t *testing.T) {
	canonical := NormalizePhone("9876543210")
	assert.Equal(t, canonical, NormalizePhone("919876543210"))
	assert.Equal(t, canonical, NormalizePhone("+919876543210"))
}
