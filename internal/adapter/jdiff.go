package adapter

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"path/filepath"

	m "apidiff.dev/pkg/apidiff/internal/model"
)

const (
	jdiffDoclet = "jdiff.JDiff"

	// The comparator expects its -script argument to point at this stub,
	// shipped in the lib directory next to the jdiff jar.
	nullScriptRelPath = "lib/Null.java"

	commentDirPrefix = "user_comments_for_"
)

// GenerateArgs describes one description-generation launch.
type GenerateArgs struct {
	// JDiffPath is the path to the jdiff doclet jar.
	JDiffPath m.Path
	// OutputPath is the API-name path the description is generated under.
	OutputPath m.Path
	// LogPath receives the combined stdout/stderr of the child process.
	LogPath m.Path
	// SourceDir is the extracted source tree to document.
	SourceDir m.Path
	// Packages restricts generation to these package identifiers, in order.
	Packages []string
}

// CompareArgs describes one description-comparison launch.
type CompareArgs struct {
	// JDiffPath is the path to the jdiff doclet jar.
	JDiffPath m.Path
	// RootDir is the working directory of the launch; the old and new
	// description folders are addressed relative to it.
	RootDir m.Path
	// DiffDir is the directory comparison artifacts are written to.
	DiffDir m.Path
	// OldFolder and NewFolder are the per-revision folder names under RootDir.
	OldFolder m.Revision
	NewFolder m.Revision
	// DescriptionName is the file-name stem both descriptions share.
	DescriptionName string
	// LogPath receives the combined stdout/stderr of the child process.
	LogPath m.Path
}

// JDiffRunner launches the external jdiff doclet. Both operations block
// until the child process exits; neither applies a timeout.
type JDiffRunner interface {
	// GenerateDescription generates the XML API description for one source
	// tree. Launch failure or a non-zero exit is returned as an error.
	GenerateDescription(ctx context.Context, args GenerateArgs) error

	// CompareDescriptions compares two previously generated descriptions and
	// returns the raw exit code of the comparator. An error is returned only
	// when the process could not be launched at all.
	CompareDescriptions(ctx context.Context, args CompareArgs) (int, error)
}

// LocalJDiffRunner implements JDiffRunner with os/exec. The doclet rides on
// the javadoc binary, found on PATH unless JavadocBin points elsewhere.
type LocalJDiffRunner struct {
	fs WorkspaceFS

	// JavadocBin is the binary the doclet is launched through.
	JavadocBin string
}

// NewLocalJDiffRunner constructs a LocalJDiffRunner on the given workspace.
func NewLocalJDiffRunner(fs WorkspaceFS) *LocalJDiffRunner {
	return &LocalJDiffRunner{
		fs:         fs,
		JavadocBin: "javadoc",
	}
}

// GenerateDescription launches javadoc with the jdiff doclet against the
// extracted sources, appending the child's combined output to the shared log.
func (r *LocalJDiffRunner) GenerateDescription(ctx context.Context, args GenerateArgs) error {
	if err := r.fs.MakeDir(args.OutputPath); err != nil {
		return fmt.Errorf("failed to create description directory %s: %w", args.OutputPath, err)
	}

	log, err := r.fs.OpenLog(args.LogPath)
	if err != nil {
		return fmt.Errorf("failed to open log %s: %w", args.LogPath, err)
	}
	defer func() { _ = log.Close() }()

	argv := []string{
		"-doclet", jdiffDoclet,
		"-docletpath", FixForeignMounts(string(args.JDiffPath)),
		"-apiname", FixForeignMounts(string(args.OutputPath)),
		"-sourcepath", FixForeignMounts(string(args.SourceDir)),
	}
	argv = append(argv, args.Packages...)

	cmd := exec.CommandContext(ctx, r.JavadocBin, argv...)
	cmd.Stdout = log
	cmd.Stderr = log

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("javadoc generation for %s failed: %w", args.SourceDir, err)
	}

	return nil
}

// CompareDescriptions launches the jdiff comparator against the two
// descriptions and captures its exit code. The comparator writes its report
// into DiffDir and expects a comment-staging directory to exist beforehand.
func (r *LocalJDiffRunner) CompareDescriptions(ctx context.Context, args CompareArgs) (int, error) {
	staging := r.fs.JoinPath(
		string(args.DiffDir),
		commentDirPrefix+string(args.OldFolder),
		fmt.Sprintf("%s_to_%s", args.DescriptionName, args.NewFolder),
	)
	if err := r.fs.MakeDir(staging); err != nil {
		return 0, fmt.Errorf("failed to create comment staging directory %s: %w", staging, err)
	}

	log, err := r.fs.OpenLog(args.LogPath)
	if err != nil {
		return 0, fmt.Errorf("failed to open log %s: %w", args.LogPath, err)
	}
	defer func() { _ = log.Close() }()

	nullScript := filepath.Join(filepath.Dir(string(args.JDiffPath)), filepath.FromSlash(nullScriptRelPath))

	argv := []string{
		"-doclet", jdiffDoclet,
		"-docletpath", FixForeignMounts(string(args.JDiffPath)),
		"-d", FixForeignMounts(string(args.DiffDir)),
		"-oldapi", FixForeignMounts(filepath.Join(string(args.OldFolder), args.DescriptionName)),
		"-newapi", FixForeignMounts(filepath.Join(string(args.NewFolder), args.DescriptionName)),
		"-script", FixForeignMounts(nullScript),
	}

	cmd := exec.CommandContext(ctx, r.JavadocBin, argv...)
	cmd.Dir = string(args.RootDir)
	cmd.Stdout = log
	cmd.Stderr = log

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			// jdiff reports its classification through the exit code, so a
			// non-zero exit is the expected outcome here.
			return exitErr.ExitCode(), nil
		}

		return 0, fmt.Errorf("failed to launch javadoc comparison: %w", err)
	}

	return 0, nil
}
