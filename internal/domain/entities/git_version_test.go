//go:build unit

package entities_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/repoeditor/internal/domain/entities"
)

func TestParseGitVersion(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		output   string
		expected string
	}{
		{name: "should parse a plain release", output: "git version 2.43.0\n", expected: "v2.43.0"},
		{name: "should drop the Apple suffix", output: "git version 2.39.3 (Apple Git-146)", expected: "v2.39.3"},
		{name: "should drop the Windows suffix", output: "git version 2.45.1.windows.1", expected: "v2.45.1"},
		{name: "should default a missing patch to zero", output: "git version 2.31", expected: "v2.31.0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			// when
			version, err := entities.ParseGitVersion(tt.output)

			// then
			require.NoError(t, err)
			assert.Equal(t, tt.expected, version)
		})
	}

	t.Run("should reject output without a version", func(t *testing.T) {
		t.Parallel()

		// when
		_, err := entities.ParseGitVersion("command not found")

		// then
		require.Error(t, err)
	})
}

func TestSupportsConfigEnv(t *testing.T) {
	t.Parallel()

	assert.True(t, entities.SupportsConfigEnv("v2.31.0"))
	assert.True(t, entities.SupportsConfigEnv("2.43.0"))
	assert.False(t, entities.SupportsConfigEnv("v2.30.9"))
	assert.False(t, entities.SupportsConfigEnv("v1.8.3"))
}
