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
	usersShort = i18n.T("root.list.users.usersShort", "List customer accounts")

	usersLong = normalizers.LongDesc(i18n.T("root.list.users.usersLong",
		`List the customer accounts registered with the bank.`))
)

func usersScreen() grid.Screen[atlas.User] {
	return grid.Screen[atlas.User]{
		Title:        "Users",
		ExportPrefix: "users",
		Columns: []grid.Column[atlas.User]{
			{
				ID:       "id",
				Accessor: func(u atlas.User) any { return u.ID },
				Hidden:   true,
			},
			{
				ID:         "name",
				Accessor:   func(u atlas.User) any { return u.Name },
				Searchable: true,
			},
			{
				ID:         "email",
				Accessor:   func(u atlas.User) any { return u.Email },
				Searchable: true,
			},
			{
				ID:       "status",
				Accessor: func(u atlas.User) any { return u.Status },
				Render:   func(u atlas.User) string { return atlas.StatusLabel(u.Status.String()) },
			},
			{
				ID:       "registeredAt",
				Label:    "REGISTERED",
				Accessor: func(u atlas.User) any { return u.RegisteredAt },
				Filter:   grid.DateBucket(func(u atlas.User) any { return u.RegisteredAt }),
			},
		},
		Filters: []grid.FilterGroup{
			{
				ColumnID: "status",
				Label:    "Status",
				Options: append([]grid.FilterOption{grid.AllOption()},
					statusOptions(
						atlas.UserActive.String(),
						atlas.UserInactive.String(),
						atlas.UserPending.String(),
						atlas.UserBlocked.String(),
					)...),
			},
			{
				ColumnID: "registeredAt",
				Label:    "Registered",
				Options:  grid.DateBucketOptions(),
			},
		},
		RowID: func(u atlas.User) string { return u.ID.String() },
	}
}

// statusOptions builds picker entries from status literals, labelled for
// display.
func statusOptions(values ...string) []grid.FilterOption {
	opts := make([]grid.FilterOption, 0, len(values))
	for _, v := range values {
		opts = append(opts, grid.FilterOption{Value: v, Label: atlas.StatusLabel(v)})
	}
	return opts
}

func newUsersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "users",
		Short: usersShort,
		Long:  usersLong,
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
			return runScreen(sc, usersScreen(), client.ListUsers, "users")
		},
	}
}
