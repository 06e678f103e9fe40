//go:build unit

package entities_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/repoeditor/internal/domain/entities"
	"github.com/rios0rios0/repoeditor/test/domain/entitybuilders"
)

func TestParseOperationKind(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		raw      string
		expected entities.OperationKind
	}{
		{name: "should accept add", raw: "add", expected: entities.OperationAdd},
		{name: "should accept update", raw: "update", expected: entities.OperationUpdate},
		{name: "should ignore letter case", raw: "UpDaTe", expected: entities.OperationUpdate},
		{name: "should ignore surrounding blanks", raw: "  add \t", expected: entities.OperationAdd},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			// when
			kind, err := entities.ParseOperationKind(tt.raw)

			// then
			require.NoError(t, err)
			assert.Equal(t, tt.expected, kind)
		})
	}

	t.Run("should reject anything else", func(t *testing.T) {
		t.Parallel()

		// when
		_, err := entities.ParseOperationKind("delete")

		// then
		require.ErrorIs(t, err, entities.ErrUnknownOperation)
		assert.Contains(t, err.Error(), `"delete"`)
	})
}

func TestFileOperation(t *testing.T) {
	t.Parallel()

	t.Run("should format the commit message from kind and file name", func(t *testing.T) {
		t.Parallel()

		// given
		operation := entitybuilders.NewFileOperationBuilder().
			WithKind(entities.OperationUpdate).
			WithFileName("notes.txt").
			BuildFileOperation()

		// when
		message := operation.CommitMessage()

		// then
		assert.Equal(t, "update file notes.txt", message)
	})

	t.Run("should append the content on update without separator", func(t *testing.T) {
		t.Parallel()

		// given
		operation := entitybuilders.NewFileOperationBuilder().
			WithKind(entities.OperationUpdate).
			WithContent("D").
			BuildFileOperation()

		// when
		merged := operation.Merge("C")

		// then
		assert.Equal(t, "CD", merged)
	})

	t.Run("should replace the content on add", func(t *testing.T) {
		t.Parallel()

		// given
		operation := entitybuilders.NewFileOperationBuilder().WithContent("new").BuildFileOperation()

		// when
		merged := operation.Merge("old")

		// then
		assert.Equal(t, "new", merged)
	})
}
