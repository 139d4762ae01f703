// Package cmd provides the root command and CLI setup for apidiff.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"apidiff.dev/pkg/apidiff/internal/adapter"
	"apidiff.dev/pkg/apidiff/internal/controller"
	"apidiff.dev/pkg/apidiff/internal/domain"
)

var repoAdapter adapter.RepoAdapter
var workspaceFS adapter.WorkspaceFS
var jdiffRunner adapter.JDiffRunner
var reportStore adapter.ReportStore
var extractor domain.Extractor
var invoker domain.Invoker
var workflow domain.Workflow
var ui controller.UI

// repoFlag is the path to the repository (or any directory inside it).
var repoFlag string

// outputFlag is the root directory all run artifacts land under.
var outputFlag string

// srcFlag is the relative path within the repository of the source root.
var srcFlag string

// packagesFlag lists the packages the API diff considers.
var packagesFlag []string

// jdiffFlag is the path to the jdiff doclet jar.
var jdiffFlag string

func init() {
	configureRootFlags(rootCmd)

	// Initialize shared dependencies.
	ui = controller.NewSimpleUI(rootCmd)
	repoAdapter = adapter.NewGitRepoAdapter()
	workspaceFS = adapter.NewLocalWorkspaceFS()
	jdiffRunner = adapter.NewLocalJDiffRunner(workspaceFS)
	reportStore = adapter.NewReportStore()
	extractor = domain.NewSnapshotExtractor(repoAdapter, workspaceFS)
	invoker = domain.NewInvoker(jdiffRunner)
	workflow = domain.NewWorkflow(extractor, invoker, reportStore, ui)
}

const rootLongDescription = `Apidiff compares the public Java API surface of a source tree between two
revisions of a git repository. It extracts the configured source folder at
each revision, generates an XML API description per revision with the jdiff
doclet, and classifies the comparison from jdiff's exit code:

  100  no API changes
  101  backwards compatible changes
  102  backwards incompatible changes

Any other exit code is reported as an error, most commonly an empty module.`

// rootCmd represents the base command when called without any subcommands.
var rootCmd = baseRootCmd()

func baseRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "apidiff",
		Short: "Java API diff between two git revisions",
		Long:  rootLongDescription,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVarP(&repoFlag, repoFlagName, "r", viper.GetString(repoFlagName), "path to the repository (any directory inside it works)")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(repoFlagName), repoFlagName)

	cmd.PersistentFlags().StringVarP(&outputFlag, outputFlagName, "o", viper.GetString(outputFlagName), "output directory for all run artifacts (default: apidiff_output next to the program)")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(outputFlagName), outputFlagName)

	cmd.PersistentFlags().StringVarP(&srcFlag, srcFlagName, "s", viper.GetString(srcFlagName), "relative path within the repository of the source folder")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(srcFlagName), srcFlagName)

	cmd.PersistentFlags().StringArrayVarP(&packagesFlag, packagesFlagName, "p", viper.GetStringSlice(packagesFlagName), "package to consider in the API diff (repeat the flag for more)")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(packagesFlagName), packagesFlagName)

	cmd.PersistentFlags().StringVarP(&jdiffFlag, jdiffFlagName, "j", viper.GetString(jdiffFlagName), "path to the jdiff jar (default: bundled copy next to the program)")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(jdiffFlagName), jdiffFlagName)
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// requireRepoPath enforces the one flag without a usable default.
func requireRepoPath() (string, error) {
	repoPath := viper.GetString(repoFlagName)
	if repoPath == "" {
		return "", fmt.Errorf("--%s is required", repoFlagName)
	}

	return repoPath, nil
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
