package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"apidiff.dev/pkg/apidiff/internal/domain"
	m "apidiff.dev/pkg/apidiff/internal/model"
)

const compareLongDescription = `Compare the API between two revisions of the same repository.

The revisions may be commit ids, branches, or tags. Artifacts are written
under the output directory:

  src/<revision>/      extracted sources per revision
  <revision>/output    generated API description per revision
  diff/                comparison output
  messages.log         shared log for every stage
  report.yaml          machine-readable run summary`

// compareCmd represents the compare command.
var compareCmd = newCompareCmd()

func newCompareCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "compare <previous-revision> <latest-revision>",
		Short: "Generate an API diff between two revisions",
		Long:  compareLongDescription,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			repoPath, err := requireRepoPath()
			if err != nil {
				return err
			}

			outputPath := resolveOutputPath(viper.GetString(outputFlagName))
			layout := m.NewLayout(m.Path(outputPath))
			configureLogger(string(layout.LogPath()))

			_, err = workflow.Compare(cmd.Context(), domain.CompareArgs{
				OutputPath:     m.Path(outputPath),
				JDiffPath:      m.Path(resolveJDiffPath(viper.GetString(jdiffFlagName))),
				RepoPath:       m.Path(repoPath),
				SrcRelPath:     m.Path(viper.GetString(srcFlagName)),
				PrevRevision:   m.Revision(args[0]),
				LatestRevision: m.Revision(args[1]),
				Packages:       viper.GetStringSlice(packagesFlagName),
			})

			return err
		},
	}
}

func init() {
	rootCmd.AddCommand(compareCmd)
}
