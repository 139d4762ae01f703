package domain

import (
	"context"
	"log/slog"

	"apidiff.dev/pkg/apidiff/internal/adapter"
	"apidiff.dev/pkg/apidiff/internal/controller"
	m "apidiff.dev/pkg/apidiff/internal/model"
)

// CompareArgs carries everything one comparison run needs.
type CompareArgs struct {
	OutputPath     m.Path
	JDiffPath      m.Path
	RepoPath       m.Path
	SrcRelPath     m.Path
	PrevRevision   m.Revision
	LatestRevision m.Revision
	Packages       []string
}

// ExtractArgs carries a standalone snapshot extraction request.
type ExtractArgs struct {
	OutputPath m.Path
	RepoPath   m.Path
	SrcRelPath m.Path
	Revision   m.Revision
}

// Workflow sequences extraction, description generation, and comparison for
// one run. Execution is strictly sequential with no retries: any extraction
// or generation failure aborts the run.
type Workflow interface {
	Compare(ctx context.Context, args CompareArgs) (m.CompareResult, error)
	Extract(ctx context.Context, args ExtractArgs) error
}

type compareWorkflow struct {
	extractor Extractor
	invoker   Invoker
	reports   adapter.ReportStore
	ui        controller.UI
}

// NewWorkflow constructs the Workflow on the provided collaborators.
func NewWorkflow(extractor Extractor, invoker Invoker, reports adapter.ReportStore, ui controller.UI) Workflow {
	return &compareWorkflow{
		extractor: extractor,
		invoker:   invoker,
		reports:   reports,
		ui:        ui,
	}
}

// Compare extracts and documents both revisions, then compares the two
// descriptions and reports the classification.
func (w *compareWorkflow) Compare(ctx context.Context, args CompareArgs) (m.CompareResult, error) {
	layout := m.NewLayout(args.OutputPath)

	for _, rev := range []m.Revision{args.PrevRevision, args.LatestRevision} {
		srcCopy := layout.SourceCopyDir(rev)

		if err := w.extractRevision(ctx, args, rev, srcCopy); err != nil {
			return m.CompareResult{}, err
		}

		w.ui.DisplayGenerationInfo(rev, srcCopy)
		w.invoker.Generate(ctx, adapter.GenerateArgs{
			JDiffPath:  args.JDiffPath,
			OutputPath: layout.DescriptionPath(rev),
			LogPath:    layout.LogPath(),
			SourceDir:  srcCopy,
			Packages:   args.Packages,
		})
	}

	code, status := w.invoker.Compare(ctx, adapter.CompareArgs{
		JDiffPath:       args.JDiffPath,
		RootDir:         layout.Root(),
		DiffDir:         layout.DiffDir(),
		OldFolder:       args.PrevRevision,
		NewFolder:       args.LatestRevision,
		DescriptionName: layout.DescriptionName(),
		LogPath:         layout.LogPath(),
	})

	result := m.CompareResult{
		PrevRevision:   args.PrevRevision,
		LatestRevision: args.LatestRevision,
		ExitCode:       code,
		Status:         status,
	}

	w.ui.DisplayCompareResult(result)
	w.saveReport(layout, args, result)

	return result, nil
}

// Extract materializes a single revision's subtree without generating a
// description.
func (w *compareWorkflow) Extract(ctx context.Context, args ExtractArgs) error {
	layout := m.NewLayout(args.OutputPath)

	return w.extractRevision(ctx, CompareArgs{
		OutputPath: args.OutputPath,
		RepoPath:   args.RepoPath,
		SrcRelPath: args.SrcRelPath,
	}, args.Revision, layout.SourceCopyDir(args.Revision))
}

func (w *compareWorkflow) extractRevision(ctx context.Context, args CompareArgs, rev m.Revision, srcCopy m.Path) error {
	w.ui.DisplayExtractionInfo(rev, srcCopy)

	count, err := w.extractor.Extract(ctx, args.RepoPath, rev, args.SrcRelPath, srcCopy)
	if err != nil {
		w.ui.DisplayError(err.Error())
		return err
	}

	slog.Info("Extracted revision sources", "revision", rev, "files", count, "dest", srcCopy)

	return nil
}

// saveReport persists the run summary; a write failure is logged but does
// not change the outcome of an otherwise completed run.
func (w *compareWorkflow) saveReport(layout m.Layout, args CompareArgs, result m.CompareResult) {
	report := m.CompareReport{
		PreviousRevision: string(args.PrevRevision),
		LatestRevision:   string(args.LatestRevision),
		Packages:         args.Packages,
		ExitCode:         result.ExitCode,
		Classification:   result.Status.String(),
		DiffDir:          string(layout.DiffDir()),
		LogPath:          string(layout.LogPath()),
	}

	if err := w.reports.SaveReport(layout.ReportPath(), report); err != nil {
		slog.Error("Failed to save run report", "path", layout.ReportPath(), "error", err)
	}
}
