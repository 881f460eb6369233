package version

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atlasbank/atlasctl/internal/build"
	"github.com/atlasbank/atlasctl/internal/cmd"
	"github.com/atlasbank/atlasctl/internal/cmd/common"
	"github.com/atlasbank/atlasctl/internal/config"
	"github.com/atlasbank/atlasctl/internal/iostreams"
	cmdtest "github.com/atlasbank/atlasctl/test/cmd"
	configtest "github.com/atlasbank/atlasctl/test/config"
)

func newVersionHelper(showCommit bool, outType common.OutputFormat,
	streams *iostreams.IOStreams,
) *cmdtest.MockHelper {
	return &cmdtest.MockHelper{
		GetConfigMock: func() (config.Hook, error) {
			return &configtest.MockConfigHook{
				GetBoolMock: func(string) bool { return showCommit },
			}, nil
		},
		GetOutputFormatMock: func() (common.OutputFormat, error) {
			return outType, nil
		},
		GetBuildInfoMock: func() (*build.Info, error) {
			return &build.Info{Version: "1.2.3", Commit: "abc1234", Date: "2026-08-01"}, nil
		},
		GetStreamsMock: func() *iostreams.IOStreams { return streams },
		GetArgsMock:    func() []string { return nil },
	}
}

func TestVersionTextOutput(t *testing.T) {
	streams, _, out, _ := iostreams.NewTestIOStreams()

	require.NoError(t, run(newVersionHelper(false, common.TEXT, streams)))
	assert.Equal(t, "1.2.3\n", out.String())
}

func TestVersionTextOutputWithCommit(t *testing.T) {
	streams, _, out, _ := iostreams.NewTestIOStreams()

	require.NoError(t, run(newVersionHelper(true, common.TEXT, streams)))
	assert.Equal(t, "1.2.3 (abc1234, built 2026-08-01)\n", out.String())
}

func TestVersionJSONOutput(t *testing.T) {
	streams, _, out, _ := iostreams.NewTestIOStreams()

	require.NoError(t, run(newVersionHelper(true, common.JSON, streams)))

	var rec map[string]string
	require.NoError(t, json.Unmarshal(out.Bytes(), &rec))
	assert.Equal(t, "1.2.3", rec["version"])
	assert.Equal(t, "abc1234", rec["commit"])
}

func TestVersionJSONOmitsCommitByDefault(t *testing.T) {
	streams, _, out, _ := iostreams.NewTestIOStreams()

	require.NoError(t, run(newVersionHelper(false, common.JSON, streams)))

	var rec map[string]string
	require.NoError(t, json.Unmarshal(out.Bytes(), &rec))
	assert.Equal(t, "1.2.3", rec["version"])
	assert.NotContains(t, rec, "commit")
}

func TestVersionRejectsArguments(t *testing.T) {
	helper := &cmdtest.MockHelper{
		GetArgsMock: func() []string { return []string{"extra"} },
	}

	err := validate(helper)
	require.Error(t, err)

	var cfgErr *cmd.ConfigurationError
	assert.ErrorAs(t, err, &cfgErr)
}
