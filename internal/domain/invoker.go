package domain

import (
	"context"
	"log/slog"
	"os"

	"apidiff.dev/pkg/apidiff/internal/adapter"
	m "apidiff.dev/pkg/apidiff/internal/model"
)

// Invoker drives the external jdiff tool and interprets its outcomes. The
// two operations carry deliberately different failure policies: a failed
// generation makes the subsequent comparison meaningless, so it terminates
// the process, while a failed comparison is reported as the error
// classification and the run carries on to the reporting stage.
type Invoker interface {
	// Generate produces one revision's API description. Launch failure or a
	// non-zero exit logs the error and terminates the whole process.
	Generate(ctx context.Context, args adapter.GenerateArgs)

	// Compare runs the comparator and classifies its exit code. A launch
	// failure or an undocumented exit code maps to the error state; neither
	// raises.
	Compare(ctx context.Context, args adapter.CompareArgs) (int, m.CompareStatus)
}

type jdiffInvoker struct {
	runner adapter.JDiffRunner
	exit   func(code int)
}

// NewInvoker constructs an Invoker on the given runner.
func NewInvoker(runner adapter.JDiffRunner) Invoker {
	return &jdiffInvoker{
		runner: runner,
		exit:   os.Exit,
	}
}

func (i *jdiffInvoker) Generate(ctx context.Context, args adapter.GenerateArgs) {
	slog.Info("Generating API description", "source", args.SourceDir, "output", args.OutputPath, "packages", args.Packages)

	if err := i.runner.GenerateDescription(ctx, args); err != nil {
		slog.Error("API description generation failed, exiting", "source", args.SourceDir, "error", err)
		i.exit(1)
		return
	}

	slog.Info("Generated API description", "packages", args.Packages)
}

func (i *jdiffInvoker) Compare(ctx context.Context, args adapter.CompareArgs) (int, m.CompareStatus) {
	code, err := i.runner.CompareDescriptions(ctx, args)
	if err != nil {
		slog.Error("Comparison launch failed", "error", err)
		return int(m.StatusError), m.StatusError
	}

	return code, m.ClassifyExitCode(code)
}
