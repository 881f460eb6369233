package list

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atlasbank/atlasctl/internal/atlas"
	"github.com/atlasbank/atlasctl/internal/cmd"
	"github.com/atlasbank/atlasctl/internal/cmd/common"
	"github.com/atlasbank/atlasctl/internal/config"
	"github.com/atlasbank/atlasctl/internal/grid"
	"github.com/atlasbank/atlasctl/internal/iostreams"
	cmdtest "github.com/atlasbank/atlasctl/test/cmd"
	configtest "github.com/atlasbank/atlasctl/test/config"
)

func newListHelper(streams *iostreams.IOStreams, args []string) *cmdtest.MockHelper {
	return &cmdtest.MockHelper{
		GetCmdMock: func() *cobra.Command { return &cobra.Command{} },
		GetConfigMock: func() (config.Hook, error) {
			return &configtest.MockConfigHook{}, nil
		},
		GetOutputFormatMock: func() (common.OutputFormat, error) {
			return common.JSON, nil
		},
		GetStreamsMock: func() *iostreams.IOStreams { return streams },
		GetArgsMock:    func() []string { return args },
	}
}

func TestResolveScreenContextRejectsArguments(t *testing.T) {
	streams, _, _, _ := iostreams.NewTestIOStreams()

	_, err := resolveScreenContext(newListHelper(streams, []string{"extra"}))
	require.Error(t, err)

	var cfgErr *cmd.ConfigurationError
	assert.ErrorAs(t, err, &cfgErr)
}

func TestResolveScreenContextDefaults(t *testing.T) {
	streams, _, _, _ := iostreams.NewTestIOStreams()

	sc, err := resolveScreenContext(newListHelper(streams, nil))
	require.NoError(t, err)

	assert.Equal(t, common.DefaultPageSize, sc.pageSize)
	assert.Equal(t, "default", sc.profile)
	assert.False(t, sc.interactive())
}

func TestRunScreenStaticJSON(t *testing.T) {
	streams, _, out, _ := iostreams.NewTestIOStreams()
	helper := newListHelper(streams, nil)

	sc := &screenContext{
		helper:   helper,
		ctx:      context.Background(),
		streams:  streams,
		outType:  common.JSON,
		pageSize: 10,
		profile:  "default",
	}

	fetch := func(context.Context) ([]atlas.Currency, error) {
		return atlas.SampleCurrencies(), nil
	}
	require.NoError(t, runScreen(sc, currenciesScreen(), fetch, "currencies"))

	var rows []map[string]any
	require.NoError(t, json.Unmarshal(out.Bytes(), &rows))
	require.Len(t, rows, 5)
	assert.Equal(t, "USD", rows[0]["code"])
}

func TestRunScreenStaticText(t *testing.T) {
	streams, _, out, _ := iostreams.NewTestIOStreams()
	helper := newListHelper(streams, nil)

	sc := &screenContext{
		helper:   helper,
		ctx:      context.Background(),
		streams:  streams,
		outType:  common.TEXT,
		pageSize: 10,
		profile:  "default",
	}

	fetch := func(context.Context) ([]atlas.ATM, error) {
		return atlas.SampleATMs(), nil
	}
	require.NoError(t, runScreen(sc, atmsScreen(), fetch, "atms"))

	rendered := out.String()
	assert.Contains(t, rendered, "LABEL")
	assert.Contains(t, rendered, "CITY")
	// hidden columns stay out of the text table
	assert.NotContains(t, rendered, "ID")
}

func TestRunScreenFetchErrorBecomesExecutionError(t *testing.T) {
	streams, _, _, _ := iostreams.NewTestIOStreams()
	helper := newListHelper(streams, nil)

	sc := &screenContext{
		helper:  helper,
		ctx:     context.Background(),
		streams: streams,
		outType: common.JSON,
	}

	fetch := func(context.Context) ([]atlas.User, error) {
		return nil, errors.New("boom")
	}
	err := runScreen(sc, usersScreen(), fetch, "users")
	require.Error(t, err)

	var execErr *cmd.ExecutionError
	require.ErrorAs(t, err, &execErr)
	assert.Contains(t, execErr.Msg, "users")
}

func TestScreenDefinitions(t *testing.T) {
	users := usersScreen()
	assert.Equal(t, "users", users.ExportPrefix)
	assert.Equal(t, "name", users.Columns[1].ID)
	assert.True(t, users.Columns[1].Searchable)
	assert.NotNil(t, users.RowID)

	txns := transactionsScreen()
	assert.Equal(t, "transactions", txns.ExportPrefix)
	ids := make([]string, 0, len(txns.Columns))
	for _, col := range txns.Columns {
		ids = append(ids, col.ID)
	}
	assert.Equal(t, []string{"id", "reference", "account", "type", "amount", "status", "createdAt"}, ids)
	require.Len(t, txns.Filters, 4)
	assert.Equal(t, "type", txns.Filters[0].ColumnID)

	currencies := currenciesScreen()
	assert.Equal(t, "currencies", currencies.ExportPrefix)
	assert.Equal(t, "USD", currencies.RowID(atlas.SampleCurrencies()[0]))

	atms := atmsScreen()
	assert.Equal(t, "atms", atms.ExportPrefix)
	require.Len(t, atms.Filters, 1)
	assert.Equal(t, "status", atms.Filters[0].ColumnID)
}

// Forward cycling resolves the next picker entry from the index of the active
// filter value, so a repeated value would trap the picker on it. Every group
// must lead with exactly one clearing entry and carry no duplicate values.
func TestScreenFilterOptionsLeadWithSingleAllEntry(t *testing.T) {
	groups := map[string][]grid.FilterGroup{
		"users":        usersScreen().Filters,
		"transactions": transactionsScreen().Filters,
		"currencies":   currenciesScreen().Filters,
		"atms":         atmsScreen().Filters,
	}

	for screen, filters := range groups {
		for _, group := range filters {
			require.NotEmpty(t, group.Options, "%s %s", screen, group.ColumnID)
			assert.Equal(t, "", group.Options[0].Value, "%s %s", screen, group.ColumnID)

			seen := make(map[string]bool, len(group.Options))
			for _, opt := range group.Options {
				assert.False(t, seen[opt.Value],
					"%s %s repeats option %q", screen, group.ColumnID, opt.Value)
				seen[opt.Value] = true
			}
		}
	}
}
