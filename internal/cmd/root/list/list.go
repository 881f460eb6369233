package list

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/atlasbank/atlasctl/internal/atlas"
	"github.com/atlasbank/atlasctl/internal/cmd"
	"github.com/atlasbank/atlasctl/internal/cmd/common"
	"github.com/atlasbank/atlasctl/internal/config"
	"github.com/atlasbank/atlasctl/internal/grid"
	"github.com/atlasbank/atlasctl/internal/iostreams"
	"github.com/atlasbank/atlasctl/internal/log"
	"github.com/atlasbank/atlasctl/internal/util/i18n"
	"github.com/atlasbank/atlasctl/internal/util/normalizers"
)

var (
	listUse = "list"

	listShort = i18n.T("root.list.listShort", "List back office records")

	listLong = normalizers.LongDesc(i18n.T("root.list.listLong", `
  List records from the back office API.

  On a terminal each listing opens an interactive grid with searching,
  filtering, sorting, column toggling, and spreadsheet export. When the
  output is redirected or a structured format is requested, the records
  are written directly to the output stream.`))

	listExamples = normalizers.Examples(i18n.T("root.list.listExamples", `
	# Browse transactions interactively
	atlasctl list transactions
	# Dump all users as JSON
	atlasctl list users -o json
	`))
)

// screenContext is the shared bundle every list subcommand resolves before
// deciding between the interactive grid and a static rendering.
type screenContext struct {
	helper   cmd.Helper
	ctx      context.Context
	cfg      config.Hook
	streams  *iostreams.IOStreams
	outType  common.OutputFormat
	pageSize int
	profile  string
}

func resolveScreenContext(helper cmd.Helper) (*screenContext, error) {
	if len(helper.GetArgs()) > 0 {
		return nil, &cmd.ConfigurationError{
			Err: fmt.Errorf("list commands do not accept arguments"),
		}
	}

	cfg, err := helper.GetConfig()
	if err != nil {
		return nil, err
	}
	outType, err := helper.GetOutputFormat()
	if err != nil {
		return nil, err
	}

	return &screenContext{
		helper:   helper,
		ctx:      helper.GetContext(),
		cfg:      cfg,
		streams:  helper.GetStreams(),
		outType:  outType,
		pageSize: cfg.GetIntOrElse(common.PageSizeConfigPath, common.DefaultPageSize),
		profile:  cfg.GetProfile(),
	}, nil
}

func newClient(sc *screenContext) (*atlas.Client, error) {
	logger, err := sc.helper.GetLogger()
	if err != nil {
		return nil, err
	}
	return sc.helper.GetAtlasClient(sc.cfg, logger)
}

// interactive reports whether this invocation should open the grid. Structured
// output formats always bypass it, even on a terminal.
func (sc *screenContext) interactive() bool {
	return sc.outType == common.TEXT && sc.helper.IsInteractive()
}

// runScreen executes one list screen end to end: interactively when attached
// to a terminal, otherwise by fetching once and rendering to the stream.
func runScreen[T any](
	sc *screenContext,
	screen grid.Screen[T],
	fetch func(context.Context) ([]T, error),
	noun string,
) error {
	screen.PageSize = sc.pageSize

	if sc.interactive() {
		// The grid owns the terminal. Mirrored error records would tear
		// the alternate screen, so they go to the log file only.
		log.DisableErrorMirroring()
		defer log.EnableErrorMirroring()

		return grid.Run(sc.ctx, sc.streams, screen, atlas.NewSource(fetch),
			grid.WithProfile[T](sc.profile))
	}

	rows, err := fetch(sc.ctx)
	if err != nil {
		return cmd.PrepareExecutionErrorWithHelper(sc.helper,
			fmt.Sprintf("failed to list %s", noun), err)
	}
	return grid.RenderStatic(sc.streams, screen, rows, sc.outType)
}

func NewListCmd() *cobra.Command {
	listCmd := &cobra.Command{
		Use:     listUse,
		Short:   listShort,
		Long:    listLong,
		Example: listExamples,
		Aliases: []string{"ls"},
	}

	listCmd.AddCommand(newUsersCmd())
	listCmd.AddCommand(newTransactionsCmd())
	listCmd.AddCommand(newCurrenciesCmd())
	listCmd.AddCommand(newATMsCmd())

	return listCmd
}
