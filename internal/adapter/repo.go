// Package adapter contains the infrastructure adapters the apidiff domain
// layer runs on: repository access, workspace filesystem operations, the
// external jdiff tool, and report persistence.
package adapter

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"

	m "apidiff.dev/pkg/apidiff/internal/model"
)

// ErrRevisionNotFound reports a revision identifier that could not be
// resolved against the repository.
var ErrRevisionNotFound = errors.New("revision not found")

// ErrNotText reports a blob whose content is not decodable UTF-8 text.
var ErrNotText = errors.New("content is not valid UTF-8 text")

// FileBlob exposes the content of one file entry at a resolved revision.
type FileBlob interface {
	// Text returns the blob content decoded as UTF-8 text. Binary or
	// malformed content is an error, never silently skipped.
	Text() (string, error)
}

// TreeSnapshot is a read-only view over one revision's file tree.
type TreeSnapshot interface {
	// ForEachFile visits every file entry reachable from the tree root with
	// its slash-separated path relative to the root. Visiting order is not
	// specified. A non-nil error from fn stops the walk and is returned.
	ForEachFile(fn func(path string, blob FileBlob) error) error
}

// RepoAdapter resolves revisions of a version-controlled repository into
// immutable tree snapshots.
type RepoAdapter interface {
	ResolveTree(repoPath m.Path, revision m.Revision) (TreeSnapshot, error)
}

// GitRepoAdapter implements RepoAdapter over a local git repository using
// go-git, so no git binary is needed at runtime.
type GitRepoAdapter struct{}

// NewGitRepoAdapter constructs a GitRepoAdapter.
func NewGitRepoAdapter() *GitRepoAdapter {
	return &GitRepoAdapter{}
}

// ResolveTree opens the repository at repoPath, searching parent directories
// for the .git directory, and resolves revision to its commit tree.
func (a *GitRepoAdapter) ResolveTree(repoPath m.Path, revision m.Revision) (TreeSnapshot, error) {
	repo, err := git.PlainOpenWithOptions(string(repoPath), &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return nil, fmt.Errorf("failed to open repository at %s: %w", repoPath, err)
	}

	rev := strings.TrimSpace(string(revision))

	hash, err := repo.ResolveRevision(plumbing.Revision(rev))
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrRevisionNotFound, rev)
	}

	commit, err := repo.CommitObject(*hash)
	if err != nil {
		// Annotated tags resolve to the tag object, one hop away from the commit.
		if tag, tagErr := repo.TagObject(*hash); tagErr == nil {
			commit, err = tag.Commit()
		}

		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrRevisionNotFound, rev)
		}
	}

	tree, err := commit.Tree()
	if err != nil {
		return nil, fmt.Errorf("failed to read tree for revision %q: %w", rev, err)
	}

	return &gitTreeSnapshot{tree: tree}, nil
}

type gitTreeSnapshot struct {
	tree *object.Tree
}

// ForEachFile walks the tree with go-git's stack-based file iterator.
func (s *gitTreeSnapshot) ForEachFile(fn func(path string, blob FileBlob) error) error {
	return s.tree.Files().ForEach(func(f *object.File) error {
		return fn(f.Name, &gitFileBlob{file: f})
	})
}

type gitFileBlob struct {
	file *object.File
}

func (b *gitFileBlob) Text() (string, error) {
	bin, err := b.file.IsBinary()
	if err != nil {
		return "", fmt.Errorf("failed to read blob %s: %w", b.file.Name, err)
	}

	if bin {
		return "", fmt.Errorf("%w: %s", ErrNotText, b.file.Name)
	}

	contents, err := b.file.Contents()
	if err != nil {
		return "", fmt.Errorf("failed to read blob %s: %w", b.file.Name, err)
	}

	if !utf8.ValidString(contents) {
		return "", fmt.Errorf("%w: %s", ErrNotText, b.file.Name)
	}

	return contents, nil
}
