package entities

import (
	"fmt"
	"strings"
)

// OperationKind is the action applied to the target file.
type OperationKind string

const (
	OperationAdd    OperationKind = "add"
	OperationUpdate OperationKind = "update"
)

// ParseOperationKind accepts "add" or "update" in any letter case.
func ParseOperationKind(raw string) (OperationKind, error) {
	switch kind := OperationKind(strings.ToLower(strings.TrimSpace(raw))); kind {
	case OperationAdd, OperationUpdate:
		return kind, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownOperation, raw)
	}
}

// FileOperation is a single add/update request entered by the operator.
type FileOperation struct {
	Kind     OperationKind
	FileName string
	Content  string
}

// CommitMessage returns "<operation> file <fileName>".
func (o FileOperation) CommitMessage() string {
	return fmt.Sprintf("%s file %s", o.Kind, o.FileName)
}

// Merge returns the content to store on disk. Updates append with no
// separator; callers supply their own line breaks.
func (o FileOperation) Merge(previous string) string {
	if o.Kind == OperationUpdate {
		return previous + o.Content
	}
	return o.Content
}

// OperationOutcome reports how a file operation ended when no error occurred.
type OperationOutcome string

const (
	OutcomePushed        OperationOutcome = "pushed"
	OutcomeAlreadyExists OperationOutcome = "already_exists"
	OutcomeDoesNotExist  OperationOutcome = "does_not_exist"
)
