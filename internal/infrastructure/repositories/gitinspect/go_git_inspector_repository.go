package gitinspect

import (
	"errors"
	"fmt"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"

	"github.com/rios0rios0/repoeditor/internal/domain/entities"
	"github.com/rios0rios0/repoeditor/internal/domain/repositories"
)

const remoteName = "origin"

// GoGitInspectorRepository reads clone metadata with go-git, without spawning git.
type GoGitInspectorRepository struct{}

// NewGoGitInspectorRepository creates a new GoGitInspectorRepository.
func NewGoGitInspectorRepository() *GoGitInspectorRepository {
	return &GoGitInspectorRepository{}
}

var _ repositories.CloneInspectorRepository = (*GoGitInspectorRepository)(nil)

// Inspect returns the checked-out branch, the HEAD commit and the redacted
// origin URL. An empty clone (no commits yet) yields an empty Head.
func (it *GoGitInspectorRepository) Inspect(dir string) (entities.CloneSummary, error) {
	repo, err := git.PlainOpen(dir)
	if err != nil {
		if errors.Is(err, git.ErrRepositoryNotExists) {
			return entities.CloneSummary{}, fmt.Errorf("%s is not a git repository", dir)
		}
		return entities.CloneSummary{}, fmt.Errorf("failed to open repository: %w", err)
	}

	var summary entities.CloneSummary

	if remote, remoteErr := repo.Remote(remoteName); remoteErr == nil {
		if urls := remote.Config().URLs; len(urls) > 0 {
			summary.Remote = entities.RedactURL(urls[0])
		}
	}

	head, err := repo.Head()
	if err != nil {
		// Unborn HEAD: fall back to the symbolic reference to learn the branch name.
		ref, refErr := repo.Storer.Reference(plumbing.HEAD)
		if refErr != nil {
			return summary, fmt.Errorf("failed to get HEAD: %w", err)
		}
		summary.Branch = ref.Target().Short()
		return summary, nil
	}

	if head.Name().IsBranch() {
		summary.Branch = head.Name().Short()
	}
	summary.Head = head.Hash().String()
	return summary, nil
}
