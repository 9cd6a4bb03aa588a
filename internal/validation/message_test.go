package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateMessage(t *testing.T) {
	tests := []struct {
		name    string
		message string
		wantErr bool
	}{
		{"empty", "", true},
		{"whitespace only", "   \n\t ", true},
		{"nine characters rejected", "123456789", true},
		{"ten characters accepted", "1234567890", false},
		{"normal message", "Please pray for our upcoming conference.", false},
		{"too long", strings.Repeat("a", 10001), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateMessage(tt.message)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
