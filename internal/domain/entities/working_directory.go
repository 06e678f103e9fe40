package entities

import (
	"fmt"
	"path/filepath"
	"strings"
)

// DefaultWorkDir is where the repository is cloned unless configured otherwise.
const DefaultWorkDir = "./temp-repo"

// WorkingDirectory is the local clone owned by one session iteration.
type WorkingDirectory struct {
	Path string
}

// NewWorkingDirectory creates a handle for the given path.
func NewWorkingDirectory(path string) WorkingDirectory {
	return WorkingDirectory{Path: filepath.Clean(path)}
}

// Resolve joins a relative file name under the working directory and refuses
// names that would land outside of it.
func (w WorkingDirectory) Resolve(fileName string) (string, error) {
	if fileName == "" {
		return "", fmt.Errorf("file name: %w", ErrEmptyInput)
	}
	if filepath.IsAbs(fileName) {
		return "", fmt.Errorf("%w: %s", ErrPathEscapesWorkDir, fileName)
	}

	resolved := filepath.Join(w.Path, fileName)
	rel, err := filepath.Rel(w.Path, resolved)
	if err != nil || rel == "." || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("%w: %s", ErrPathEscapesWorkDir, fileName)
	}
	return resolved, nil
}

// DeleteFailure records one entry the recursive delete could not remove.
type DeleteFailure struct {
	Path string
	Err  error
}

func (f DeleteFailure) String() string {
	return fmt.Sprintf("%s: %v", f.Path, f.Err)
}
