package gitinfo

import (
	"github.com/go-git/go-git/v5"
)

// Stamper resolves the HEAD commit of a validated project so run
// history can tie each validation to the code state it ran against.
type Stamper struct{}

func New() *Stamper {
	return &Stamper{}
}

// HeadCommit returns the current HEAD hash of the repository at
// projectPath. ok is false when the path is not inside a git worktree
// or HEAD cannot be resolved; history records such runs unstamped.
func (s *Stamper) HeadCommit(projectPath string) (hash string, ok bool) {
	repo, err := git.PlainOpen(projectPath)
	if err != nil {
		return "", false
	}

	head, err := repo.Head()
	if err != nil {
		return "", false
	}

	return head.Hash().String(), true
}
