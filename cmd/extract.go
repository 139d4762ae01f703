package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"apidiff.dev/pkg/apidiff/internal/domain"
	m "apidiff.dev/pkg/apidiff/internal/model"
)

// extractCmd represents the extract command.
var extractCmd = newExtractCmd()

func newExtractCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "extract <revision>",
		Short: "Extract one revision's source folder without diffing",
		Long: `Materialize the configured source folder at a single revision under
src/<revision> in the output directory, exactly as a compare run would see it.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			repoPath, err := requireRepoPath()
			if err != nil {
				return err
			}

			outputPath := resolveOutputPath(viper.GetString(outputFlagName))
			layout := m.NewLayout(m.Path(outputPath))
			configureLogger(string(layout.LogPath()))

			return workflow.Extract(cmd.Context(), domain.ExtractArgs{
				OutputPath: m.Path(outputPath),
				RepoPath:   m.Path(repoPath),
				SrcRelPath: m.Path(viper.GetString(srcFlagName)),
				Revision:   m.Revision(args[0]),
			})
		},
	}
}

func init() {
	rootCmd.AddCommand(extractCmd)
}
