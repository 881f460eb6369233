package root

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atlasbank/atlasctl/internal/cmd/common"
	"github.com/atlasbank/atlasctl/internal/meta"
)

func TestRootCommandShape(t *testing.T) {
	c := newRootCmd()

	assert.Equal(t, meta.CLIName, c.Use)
	assert.True(t, c.TraverseChildren)

	for _, name := range []string{
		common.ConfigFilePathFlagName,
		common.ProfileFlagName,
		common.OutputFlagName,
		common.LogLevelFlagName,
	} {
		assert.NotNil(t, c.PersistentFlags().Lookup(name), "missing persistent flag %s", name)
	}
}

func TestRootSubcommands(t *testing.T) {
	names := make(map[string]bool)
	for _, sub := range rootCmd.Commands() {
		names[sub.Name()] = true
	}

	require.True(t, names["version"])
	require.True(t, names["list"])
}

func TestOutputFlagRejectsUnknownFormat(t *testing.T) {
	c := newRootCmd()

	err := c.PersistentFlags().Set(common.OutputFlagName, "xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid value")

	require.NoError(t, c.PersistentFlags().Set(common.OutputFlagName, "yaml"))
}
