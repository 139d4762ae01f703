package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCmd_ShowsHelp(t *testing.T) {
	var out bytes.Buffer

	cmd := baseRootCmd()
	configureRootFlags(cmd)
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{})

	err := cmd.Execute()
	require.NoError(t, err)

	assert.Contains(t, out.String(), "apidiff")
}

func TestRootCmd_HasSubcommands(t *testing.T) {
	names := map[string]bool{}
	for _, sub := range rootCmd.Commands() {
		names[sub.Name()] = true
	}

	assert.True(t, names["compare"], "compare subcommand registered")
	assert.True(t, names["extract"], "extract subcommand registered")
	assert.True(t, names["version"], "version subcommand registered")
}

func TestPackagesFlag_RepeatsWithoutSplitting(t *testing.T) {
	cmd := newTestRootCmd()

	flag := cmd.PersistentFlags().Lookup(packagesFlagName)
	require.NotNil(t, flag)
	assert.Equal(t, "stringArray", flag.Value.Type())

	require.NoError(t, flag.Value.Set("org.sleuthkit.datamodel"))
	require.NoError(t, flag.Value.Set("org.sleuthkit.caseuco"))

	assert.Equal(t, []string{"org.sleuthkit.datamodel", "org.sleuthkit.caseuco"}, packagesFlag)
}

func TestRequireRepoPath(t *testing.T) {
	cmd := newTestRootCmd()
	require.NoError(t, cmd.PersistentFlags().Set(repoFlagName, "/work/repo"))

	got, err := requireRepoPath()
	require.NoError(t, err)
	assert.Equal(t, "/work/repo", got)

	require.NoError(t, cmd.PersistentFlags().Set(repoFlagName, ""))

	_, err = requireRepoPath()
	require.Error(t, err)
}
