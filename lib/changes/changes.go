package changes

import (
	"context"
	"path/filepath"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/filemode"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/pkg/errors"
	"github.com/samber/lo"

	"github.com/pescuma/lintsel/lib/model"
	"github.com/pescuma/lintsel/lib/utils"
)

var (
	ErrRepositoryNotFound = errors.New("repository not found")
	ErrNoCommits          = errors.New("repository has no commits")
	ErrNoParentCommit     = errors.New("HEAD has no parent commit")
)

// Resolve returns the absolute paths of the files added, modified or deleted by the HEAD commit
// of the repository at repoPath, compared to its first parent. Renames and type changes are not
// returned.
func Resolve(repoPath string) ([]string, error) {
	repoPath, err := utils.PathAbs(repoPath)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	cs, err := List(repoPath)
	if err != nil {
		return nil, err
	}

	cs = lo.Filter(cs, func(c *model.FileChange, _ int) bool {
		return c.Kind.Selected()
	})

	return lo.Map(cs, func(c *model.FileChange, _ int) string {
		return filepath.Join(repoPath, filepath.FromSlash(c.Path))
	}), nil
}

// List returns every change between HEAD and its first parent, in diff order.
func List(repoPath string) ([]*model.FileChange, error) {
	gitRepo, err := git.PlainOpen(repoPath)
	if errors.Is(err, git.ErrRepositoryNotExists) {
		return nil, errors.Wrapf(ErrRepositoryNotFound, "%v", repoPath)
	} else if err != nil {
		return nil, errors.Wrapf(err, "opening repository %v", repoPath)
	}

	gitCommit, err := headCommit(gitRepo)
	if err != nil {
		return nil, errors.Wrapf(err, "%v", repoPath)
	}

	if gitCommit.NumParents() == 0 {
		return nil, errors.Wrapf(ErrNoParentCommit, "%v: %v", repoPath, gitCommit.Hash)
	}

	gitParent, err := gitCommit.Parent(0)
	if err != nil {
		return nil, errors.Wrapf(err, "%v: loading parent of %v", repoPath, gitCommit.Hash)
	}

	return diff(gitParent, gitCommit)
}

func headCommit(gitRepo *git.Repository) (*object.Commit, error) {
	gitHead, err := gitRepo.Head()
	if errors.Is(err, plumbing.ErrReferenceNotFound) {
		return nil, ErrNoCommits
	} else if err != nil {
		return nil, errors.Wrap(err, "reading HEAD")
	}

	gitCommit, err := gitRepo.CommitObject(gitHead.Hash())
	if err != nil {
		return nil, errors.Wrapf(err, "loading commit %v", gitHead.Hash())
	}

	return gitCommit, nil
}

func diff(parent *object.Commit, commit *object.Commit) ([]*model.FileChange, error) {
	parentTree, err := parent.Tree()
	if err != nil {
		return nil, errors.WithStack(err)
	}

	commitTree, err := commit.Tree()
	if err != nil {
		return nil, errors.WithStack(err)
	}

	gitChanges, err := object.DiffTreeWithOptions(context.Background(), parentTree, commitTree, object.DefaultDiffTreeOptions)
	if err != nil {
		return nil, errors.Wrapf(err, "computing diff %v..%v", parent.Hash, commit.Hash)
	}

	result := make([]*model.FileChange, 0, len(gitChanges))
	for _, gitChange := range gitChanges {
		result = append(result, toFileChange(gitChange))
	}

	return result, nil
}

func toFileChange(gitChange *object.Change) *model.FileChange {
	from := gitChange.From
	to := gitChange.To

	result := model.FileChange{
		Path:    from.Name,
		NewPath: to.Name,
	}

	switch {
	case from.Name == "":
		result.Kind = model.ChangeAdded
		result.Path = to.Name
	case to.Name == "":
		result.Kind = model.ChangeDeleted
	case from.Name != to.Name:
		result.Kind = model.ChangeRenamed
	case entryType(from.TreeEntry.Mode) != entryType(to.TreeEntry.Mode):
		result.Kind = model.ChangeTypeChanged
	default:
		result.Kind = model.ChangeModified
	}

	return &result
}

// entryType groups modes the way git does when reporting type changes: regular and executable
// files are the same type.
func entryType(mode filemode.FileMode) filemode.FileMode {
	if mode == filemode.Executable || mode == filemode.Deprecated {
		return filemode.Regular
	}
	return mode
}
