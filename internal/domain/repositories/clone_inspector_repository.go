package repositories

import "github.com/rios0rios0/repoeditor/internal/domain/entities"

// CloneInspectorRepository reads metadata from a local clone.
type CloneInspectorRepository interface {
	Inspect(dir string) (entities.CloneSummary, error)
}
