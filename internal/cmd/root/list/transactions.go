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
	transactionsShort = i18n.T("root.list.transactions.transactionsShort", "List transactions")

	transactionsLong = normalizers.LongDesc(i18n.T("root.list.transactions.transactionsLong",
		`List money movements processed by the bank, newest first as the API returns them.`))
)

func transactionsScreen() grid.Screen[atlas.Transaction] {
	return grid.Screen[atlas.Transaction]{
		Title:        "Transactions",
		ExportPrefix: "transactions",
		Columns: []grid.Column[atlas.Transaction]{
			{
				ID:       "id",
				Accessor: func(t atlas.Transaction) any { return t.ID },
				Hidden:   true,
			},
			{
				ID:         "reference",
				Accessor:   func(t atlas.Transaction) any { return t.Reference },
				Searchable: true,
			},
			{
				ID:         "account",
				Accessor:   func(t atlas.Transaction) any { return t.Account },
				Searchable: true,
			},
			{
				ID:       "type",
				Accessor: func(t atlas.Transaction) any { return t.Type },
				Render:   func(t atlas.Transaction) string { return atlas.StatusLabel(t.Type.String()) },
			},
			{
				ID:       "amount",
				Accessor: func(t atlas.Transaction) any { return t.Amount },
				Filter:   grid.NumberRange(func(t atlas.Transaction) any { return t.Amount }),
				Render: func(t atlas.Transaction) string {
					return t.Amount.StringFixed(2) + " " + t.Currency
				},
			},
			{
				ID:       "status",
				Accessor: func(t atlas.Transaction) any { return t.Status },
				Render:   func(t atlas.Transaction) string { return atlas.StatusLabel(t.Status.String()) },
			},
			{
				ID:       "createdAt",
				Label:    "DATE",
				Accessor: func(t atlas.Transaction) any { return t.CreatedAt },
				Filter:   grid.DateBucket(func(t atlas.Transaction) any { return t.CreatedAt }),
			},
		},
		Filters: []grid.FilterGroup{
			{
				ColumnID: "type",
				Label:    "Type",
				Options: append([]grid.FilterOption{grid.AllOption()},
					statusOptions(
						atlas.TransactionDeposit.String(),
						atlas.TransactionWithdrawal.String(),
						atlas.TransactionTransfer.String(),
						atlas.TransactionPayment.String(),
					)...),
			},
			{
				ColumnID: "status",
				Label:    "Status",
				Options: append([]grid.FilterOption{grid.AllOption()},
					statusOptions(
						atlas.TransactionPending.String(),
						atlas.TransactionCompleted.String(),
						atlas.TransactionFailed.String(),
						atlas.TransactionReversed.String(),
					)...),
			},
			{
				ColumnID: "amount",
				Label:    "Amount",
				Options:  grid.AmountRangeOptions(),
			},
			{
				ColumnID: "createdAt",
				Label:    "Date",
				Options:  grid.DateBucketOptions(),
			},
		},
		RowID: func(t atlas.Transaction) string { return t.ID.String() },
	}
}

func newTransactionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "transactions",
		Short:   transactionsShort,
		Long:    transactionsLong,
		Aliases: []string{"txns"},
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
			return runScreen(sc, transactionsScreen(), client.ListTransactions, "transactions")
		},
	}
}
