package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheckSchemaCompatibility(t *testing.T) {
	tests := []struct {
		name          string
		engineSchema  string
		configSchema  string
		expectError   bool
		errorContains string
	}{
		{
			name:         "identical versions",
			engineSchema: "1.0.0",
			configSchema: "1.0.0",
			expectError:  false,
		},
		{
			name:         "patch difference is compatible",
			engineSchema: "1.0.0",
			configSchema: "1.0.5",
			expectError:  false,
		},
		{
			name:          "minor mismatch",
			engineSchema:  "1.0.0",
			configSchema:  "1.1.0",
			expectError:   true,
			errorContains: "minor schema version mismatch",
		},
		{
			name:          "major mismatch",
			engineSchema:  "1.0.0",
			configSchema:  "2.0.0",
			expectError:   true,
			errorContains: "major schema version mismatch",
		},
		{
			name:         "engine on main skips the check",
			engineSchema: "main",
			configSchema: "7.3.1",
			expectError:  false,
		},
		{
			name:         "config on main skips the check",
			engineSchema: "1.0.0",
			configSchema: "main",
			expectError:  false,
		},
		{
			name:         "v prefix is stripped",
			engineSchema: "v1.0.0",
			configSchema: "1.0.2",
			expectError:  false,
		},
		{
			name:          "garbage config version",
			engineSchema:  "1.0.0",
			configSchema:  "not-a-version",
			expectError:   true,
			errorContains: "invalid config schema version",
		},
		{
			name:          "garbage engine version",
			engineSchema:  "not-a-version",
			configSchema:  "1.0.0",
			expectError:   true,
			errorContains: "invalid engine schema version",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := CheckSchemaCompatibility(tc.engineSchema, tc.configSchema)

			if tc.expectError {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tc.errorContains)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestGetVersion(t *testing.T) {
	assert.NotEmpty(t, GetVersion())
	assert.Equal(t, Version, GetVersion())
}
