package list

import (
	"github.com/spf13/cobra"

	"github.com/atlasbank/atlasctl/internal/atlas"
	"github.com/atlasbank/atlasctl/internal/cmd"
	"github.com/atlasbank/atlasctl/internal/grid"
	"github.com/atlasbank/atlasctl/internal/util/i18n"
	"github.com/atlasbank/atlasctl/internal/util/normalizers"
)

var (
	atmsShort = i18n.T("root.list.atms.atmsShort", "List ATMs")

	atmsLong = normalizers.LongDesc(i18n.T("root.list.atms.atmsLong",
		`List the machines registered with the ATM network and their operational state.`))
)

func atmsScreen() grid.Screen[atlas.ATM] {
	return grid.Screen[atlas.ATM]{
		Title:        "ATMs",
		ExportPrefix: "atms",
		Columns: []grid.Column[atlas.ATM]{
			{
				ID:       "id",
				Accessor: func(a atlas.ATM) any { return a.ID },
				Hidden:   true,
			},
			{
				ID:         "label",
				Accessor:   func(a atlas.ATM) any { return a.Label },
				Searchable: true,
			},
			{
				ID:         "address",
				Accessor:   func(a atlas.ATM) any { return a.Address },
				Searchable: true,
			},
			{
				ID:         "city",
				Accessor:   func(a atlas.ATM) any { return a.City },
				Searchable: true,
			},
			{
				ID:       "status",
				Accessor: func(a atlas.ATM) any { return a.Status },
				Render:   func(a atlas.ATM) string { return atlas.StatusLabel(a.Status.String()) },
			},
		},
		Filters: []grid.FilterGroup{
			{
				ColumnID: "status",
				Label:    "Status",
				Options: append([]grid.FilterOption{grid.AllOption()},
					statusOptions(
						atlas.ATMOnline.String(),
						atlas.ATMOffline.String(),
						atlas.ATMMaintenance.String(),
					)...),
			},
		},
		RowID: func(a atlas.ATM) string { return a.ID.String() },
	}
}

func newATMsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "atms",
		Short: atmsShort,
		Long:  atmsLong,
		RunE: func(c *cobra.Command, args []string) error {
			helper := cmd.BuildHelper(c, args)
			sc, err := resolveScreenContext(helper)
			if err != nil {
				return err
			}
			client, err := newClient(sc)
			if err != nil {
				return err
			}
			return runScreen(sc, atmsScreen(), client.ListATMs, "atms")
		},
	}
}
