//go:build integration || unit || test

package entitybuilders //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/rios0rios0/repoeditor/internal/domain/entities"
	testkit "github.com/rios0rios0/testkit/pkg/test"
)

// FileOperationBuilder helps create file operations with a fluent interface.
type FileOperationBuilder struct {
	*testkit.BaseBuilder
	kind     entities.OperationKind
	fileName string
	content  string
}

// NewFileOperationBuilder creates a builder for an "add" of apple.txt.
func NewFileOperationBuilder() *FileOperationBuilder {
	return &FileOperationBuilder{
		BaseBuilder: testkit.NewBaseBuilder(),
		kind:        entities.OperationAdd,
		fileName:    "apple.txt",
		content:     "hello",
	}
}

// WithKind sets the operation kind.
func (b *FileOperationBuilder) WithKind(kind entities.OperationKind) *FileOperationBuilder {
	b.kind = kind
	return b
}

// WithFileName sets the target file name.
func (b *FileOperationBuilder) WithFileName(fileName string) *FileOperationBuilder {
	b.fileName = fileName
	return b
}

// WithContent sets the content.
func (b *FileOperationBuilder) WithContent(content string) *FileOperationBuilder {
	b.content = content
	return b
}

// Build creates the operation (satisfies testkit.Builder interface).
func (b *FileOperationBuilder) Build() interface{} {
	return b.BuildFileOperation()
}

// BuildFileOperation creates the operation with a concrete return type.
func (b *FileOperationBuilder) BuildFileOperation() entities.FileOperation {
	return entities.FileOperation{
		Kind:     b.kind,
		FileName: b.fileName,
		Content:  b.content,
	}
}

// Reset clears the builder state, allowing it to be reused.
func (b *FileOperationBuilder) Reset() testkit.Builder {
	b.BaseBuilder.Reset()
	b.kind = entities.OperationAdd
	b.fileName = "apple.txt"
	b.content = "hello"
	return b
}

// Clone creates a deep copy of the FileOperationBuilder.
func (b *FileOperationBuilder) Clone() testkit.Builder {
	return &FileOperationBuilder{
		BaseBuilder: b.BaseBuilder.Clone().(*testkit.BaseBuilder),
		kind:        b.kind,
		fileName:    b.fileName,
		content:     b.content,
	}
}
