package registration

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPasswordStrength(t *testing.T) {
	tests := []struct {
		password string
		score    int
		label    string
	}{
		{"", 0, ""},
		{"a", 1, "Weak"},
		{"abcdefgh", 2, "Fair"},
		{"Abcdefgh", 3, "Good"},
		{"Abcdefg1", 4, "Strong"},
		{"Abcdefg1!", 5, "Very Strong"},
		{"aA1!", 4, "Strong"}, // everything but length
	}

	for _, tt := range tests {
		score, label := PasswordStrength(tt.password)
		assert.Equal(t, tt.score, score, tt.password)
		assert.Equal(t, tt.label, label, tt.password)
	}
}
