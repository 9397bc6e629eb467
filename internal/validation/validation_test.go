package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidatePath(t *testing.T) {
	tests := []struct {
		name        string
		path        string
		expectError bool
	}{
		{"simple relative", "styles.yaml", false},
		{"nested relative", "web/styles/site.yaml", false},
		{"dot prefixed", "./styles.yaml", false},
		{"absolute", "/tmp/styles.yaml", false},
		{"internal dotdot that stays inside", "web/../styles.yaml", false},
		{"empty", "", true},
		{"null byte", "styles\x00.yaml", true},
		{"parent escape", "../styles.yaml", true},
		{"deep parent escape", "../../etc/passwd", true},
		{"bare dotdot", "..", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePath(tt.path)
			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
