// Package domain holds the comparison workflow: snapshot extraction,
// description generation, and result classification.
package domain

import (
	"context"
	"fmt"
	"log/slog"
	"path"
	"path/filepath"
	"strings"

	"apidiff.dev/pkg/apidiff/internal/adapter"
	m "apidiff.dev/pkg/apidiff/internal/model"
)

// Extractor materializes the subtree of one repository revision onto the
// local filesystem.
type Extractor interface {
	// Extract resolves revision against the repository at repoPath and writes
	// every file under srcPrefix to destDir, preserving the hierarchy below
	// the prefix. It returns the number of files written. A revision that
	// cannot be resolved or a file that cannot be decoded as text aborts the
	// whole extraction.
	Extract(ctx context.Context, repoPath m.Path, revision m.Revision, srcPrefix m.Path, destDir m.Path) (int, error)
}

type snapshotExtractor struct {
	repo adapter.RepoAdapter
	fs   adapter.WorkspaceFS
}

// NewSnapshotExtractor constructs an Extractor backed by the provided
// repository and filesystem adapters.
func NewSnapshotExtractor(repo adapter.RepoAdapter, fs adapter.WorkspaceFS) Extractor {
	return &snapshotExtractor{
		repo: repo,
		fs:   fs,
	}
}

func (e *snapshotExtractor) Extract(ctx context.Context, repoPath m.Path, revision m.Revision, srcPrefix m.Path, destDir m.Path) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	snapshot, err := e.repo.ResolveTree(repoPath, revision)
	if err != nil {
		slog.Error("Failed to resolve revision", "repo", repoPath, "revision", revision, "error", err)
		return 0, fmt.Errorf("failed to resolve revision %q: %w", revision, err)
	}

	// An empty match still leaves the destination directory behind.
	if err := e.fs.MakeDir(destDir); err != nil {
		slog.Error("Failed to create destination directory", "dest", destDir, "error", err)
		return 0, fmt.Errorf("failed to create destination %s: %w", destDir, err)
	}

	prefix := normalizePrefix(srcPrefix)
	count := 0

	err = snapshot.ForEachFile(func(entryPath string, blob adapter.FileBlob) error {
		rel, ok := underPrefix(entryPath, prefix)
		if !ok {
			return nil
		}

		text, err := blob.Text()
		if err != nil {
			return fmt.Errorf("failed to decode %s at %s: %w", entryPath, revision, err)
		}

		dest := e.fs.JoinPath(string(destDir), filepath.FromSlash(rel))
		if err := e.fs.WriteFile(dest, []byte(text), 0o640); err != nil {
			return fmt.Errorf("failed to write %s: %w", dest, err)
		}

		count++

		return nil
	})
	if err != nil {
		slog.Error("Extraction aborted", "revision", revision, "error", err)
		return count, err
	}

	return count, nil
}

// normalizePrefix cleans the configured source prefix into slash-separated
// form so it can be compared against tree entry paths.
func normalizePrefix(srcPrefix m.Path) string {
	prefix := path.Clean(filepath.ToSlash(string(srcPrefix)))
	if prefix == "." || prefix == "/" {
		return ""
	}

	return strings.Trim(prefix, "/")
}

// underPrefix reports whether prefix is a strict ancestor of entryPath and,
// if so, returns entryPath relative to the prefix.
func underPrefix(entryPath, prefix string) (string, bool) {
	if prefix == "" {
		return entryPath, true
	}

	if !strings.HasPrefix(entryPath, prefix+"/") {
		return "", false
	}

	return entryPath[len(prefix)+1:], true
}
