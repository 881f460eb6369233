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
	currenciesShort = i18n.T("root.list.currencies.currenciesShort", "List exchange rates")

	currenciesLong = normalizers.LongDesc(i18n.T("root.list.currencies.currenciesLong",
		`List the currencies the bank trades and their current exchange rates.`))
)

func currenciesScreen() grid.Screen[atlas.Currency] {
	return grid.Screen[atlas.Currency]{
		Title:        "Currencies",
		ExportPrefix: "currencies",
		Columns: []grid.Column[atlas.Currency]{
			{
				ID:         "code",
				Accessor:   func(c atlas.Currency) any { return c.Code },
				Searchable: true,
			},
			{
				ID:         "name",
				Accessor:   func(c atlas.Currency) any { return c.Name },
				Searchable: true,
			},
			{
				ID:       "rate",
				Accessor: func(c atlas.Currency) any { return c.Rate },
				Filter:   grid.NumberRange(func(c atlas.Currency) any { return c.Rate }),
				Render:   func(c atlas.Currency) string { return c.Rate.StringFixed(4) },
			},
			{
				ID:       "updatedAt",
				Label:    "UPDATED",
				Accessor: func(c atlas.Currency) any { return c.UpdatedAt },
				Filter:   grid.DateBucket(func(c atlas.Currency) any { return c.UpdatedAt }),
			},
		},
		Filters: []grid.FilterGroup{
			{
				ColumnID: "updatedAt",
				Label:    "Updated",
				Options:  grid.DateBucketOptions(),
			},
		},
		RowID: func(c atlas.Currency) string { return c.Code },
	}
}

func newCurrenciesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "currencies",
		Short: currenciesShort,
		Long:  currenciesLong,
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
			return runScreen(sc, currenciesScreen(), client.ListCurrencies, "currencies")
		},
	}
}
