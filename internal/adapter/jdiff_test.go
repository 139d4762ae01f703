package adapter

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "apidiff.dev/pkg/apidiff/internal/model"
)

// writeStubJavadoc writes an executable standing in for the javadoc binary
// that echoes its arguments and exits with the given code.
func writeStubJavadoc(t *testing.T, exitCode int) string {
	t.Helper()

	if runtime.GOOS == "windows" {
		t.Skip("stub executables use /bin/sh")
	}

	path := filepath.Join(t.TempDir(), "javadoc-stub")
	script := fmt.Sprintf("#!/bin/sh\necho \"argv: $@\"\nexit %d\n", exitCode)

	require.NoError(t, os.WriteFile(path, []byte(script), 0o750))

	return path
}

func newStubRunner(t *testing.T, exitCode int) *LocalJDiffRunner {
	t.Helper()

	runner := NewLocalJDiffRunner(NewLocalWorkspaceFS())
	runner.JavadocBin = writeStubJavadoc(t, exitCode)

	return runner
}

func TestLocalJDiffRunner_GenerateDescription(t *testing.T) {
	t.Run("successful launch", func(t *testing.T) {
		runner := newStubRunner(t, 0)
		out := t.TempDir()

		args := GenerateArgs{
			JDiffPath:  "thirdparty/jdiff/jdiff.jar",
			OutputPath: m.Path(filepath.Join(out, "rev-a", "output")),
			LogPath:    m.Path(filepath.Join(out, "messages.log")),
			SourceDir:  m.Path(filepath.Join(out, "src", "rev-a")),
			Packages:   []string{"org.x", "org.y"},
		}

		require.NoError(t, runner.GenerateDescription(context.Background(), args))

		info, err := os.Stat(filepath.Join(out, "rev-a", "output"))
		require.NoError(t, err)
		assert.True(t, info.IsDir())

		log, err := os.ReadFile(filepath.Join(out, "messages.log"))
		require.NoError(t, err)
		assert.Contains(t, string(log), "-doclet jdiff.JDiff")
		assert.Contains(t, string(log), "-apiname "+filepath.Join(out, "rev-a", "output"))
		assert.Contains(t, string(log), "org.x org.y")
	})

	t.Run("non-zero exit is an error", func(t *testing.T) {
		runner := newStubRunner(t, 3)
		out := t.TempDir()

		err := runner.GenerateDescription(context.Background(), GenerateArgs{
			OutputPath: m.Path(filepath.Join(out, "rev-a", "output")),
			LogPath:    m.Path(filepath.Join(out, "messages.log")),
			SourceDir:  m.Path(filepath.Join(out, "src", "rev-a")),
			Packages:   []string{"org.x"},
		})
		require.Error(t, err)
	})

	t.Run("missing binary is an error", func(t *testing.T) {
		runner := NewLocalJDiffRunner(NewLocalWorkspaceFS())
		runner.JavadocBin = filepath.Join(t.TempDir(), "does-not-exist")
		out := t.TempDir()

		err := runner.GenerateDescription(context.Background(), GenerateArgs{
			OutputPath: m.Path(filepath.Join(out, "rev-a", "output")),
			LogPath:    m.Path(filepath.Join(out, "messages.log")),
			SourceDir:  m.Path(out),
			Packages:   []string{"org.x"},
		})
		require.Error(t, err)
	})
}

func TestLocalJDiffRunner_CompareDescriptions(t *testing.T) {
	newArgs := func(root string) CompareArgs {
		return CompareArgs{
			JDiffPath:       "thirdparty/jdiff/jdiff.jar",
			RootDir:         m.Path(root),
			DiffDir:         m.Path(filepath.Join(root, "diff")),
			OldFolder:       "rev-a",
			NewFolder:       "rev-b",
			DescriptionName: "output",
			LogPath:         m.Path(filepath.Join(root, "messages.log")),
		}
	}

	t.Run("returns the comparator exit code", func(t *testing.T) {
		for _, code := range []int{100, 101, 102} {
			runner := newStubRunner(t, code)
			root := t.TempDir()

			got, err := runner.CompareDescriptions(context.Background(), newArgs(root))
			require.NoError(t, err)
			assert.Equal(t, code, got)
		}
	})

	t.Run("creates the comment staging directory", func(t *testing.T) {
		runner := newStubRunner(t, 100)
		root := t.TempDir()

		_, err := runner.CompareDescriptions(context.Background(), newArgs(root))
		require.NoError(t, err)

		staging := filepath.Join(root, "diff", "user_comments_for_rev-a", "output_to_rev-b")
		info, err := os.Stat(staging)
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	})

	t.Run("passes the description paths and null script", func(t *testing.T) {
		runner := newStubRunner(t, 100)
		root := t.TempDir()

		_, err := runner.CompareDescriptions(context.Background(), newArgs(root))
		require.NoError(t, err)

		log, err := os.ReadFile(filepath.Join(root, "messages.log"))
		require.NoError(t, err)
		assert.Contains(t, string(log), "-oldapi "+filepath.Join("rev-a", "output"))
		assert.Contains(t, string(log), "-newapi "+filepath.Join("rev-b", "output"))
		assert.Contains(t, string(log), filepath.Join("thirdparty", "jdiff", "lib", "Null.java"))
	})

	t.Run("launch failure is an error", func(t *testing.T) {
		runner := NewLocalJDiffRunner(NewLocalWorkspaceFS())
		runner.JavadocBin = filepath.Join(t.TempDir(), "does-not-exist")
		root := t.TempDir()

		_, err := runner.CompareDescriptions(context.Background(), newArgs(root))
		require.Error(t, err)
	})
}
