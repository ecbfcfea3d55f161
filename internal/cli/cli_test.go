package cli_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/texide/texide/internal/cli"
)

func testBuildInfo() cli.BuildInfo {
	return cli.BuildInfo{Version: "test-version", Commit: "test-commit", Date: "test-date"}
}

func TestNewRootCommand(t *testing.T) {
	cmd := cli.NewRootCommand(testBuildInfo())
	require.NotNil(t, cmd)
	require.Equal(t, "texide", cmd.Use)
	require.NotEmpty(t, cmd.Short)
	require.NotEmpty(t, cmd.Long)
}

func TestRootCommandHasSubcommands(t *testing.T) {
	cmd := cli.NewRootCommand(testBuildInfo())

	for _, name := range []string{"lint", "rules", "init", "version"} {
		sub, _, err := cmd.Find([]string{name})
		require.NoError(t, err, "subcommand %q", name)
		require.Equal(t, name, sub.Name())
	}
}
