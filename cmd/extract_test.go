package cmd

import (
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"apidiff.dev/pkg/apidiff/internal/domain"
	domainmocks "apidiff.dev/pkg/apidiff/internal/domain/mocks"
	m "apidiff.dev/pkg/apidiff/internal/model"
)

func TestExtractCmd(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)

	cmd := newTestRootCmd()
	cmd.AddCommand(newExtractCmd())

	originalWorkflow := workflow
	workflow = mockWorkflow
	defer func() { workflow = originalWorkflow }()

	out := t.TempDir()

	mockWorkflow.On("Extract", mock.Anything, mock.MatchedBy(func(args domain.ExtractArgs) bool {
		return args.RepoPath == m.Path("/work/repo") &&
			args.OutputPath == m.Path(out) &&
			args.SrcRelPath == m.Path("bindings/java/src") &&
			args.Revision == m.Revision("release-4.10.2")
	})).Return(nil)

	cmd.SetArgs([]string{
		"extract", "release-4.10.2",
		"--repo", "/work/repo",
		"--output", out,
	})
	err := cmd.Execute()
	require.NoError(t, err)

	mockWorkflow.AssertExpectations(t)
}

func TestExtractCmd_RequiresRepo(t *testing.T) {
	cmd := newTestRootCmd()
	cmd.AddCommand(newExtractCmd())

	cmd.SetArgs([]string{"extract", "release-4.10.2", "--repo", "", "--output", t.TempDir()})
	err := cmd.Execute()
	require.Error(t, err)
}
