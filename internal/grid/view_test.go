package grid

import (
	"context"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atlasbank/atlasctl/internal/atlas"
	"github.com/atlasbank/atlasctl/internal/grid/debounce"
	"github.com/atlasbank/atlasctl/internal/grid/export"
)

func executeCmd[T any](t *testing.T, model *Model[T], cmd tea.Cmd) *Model[T] {
	t.Helper()
	queue := []tea.Cmd{cmd}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		if current == nil {
			continue
		}
		msg := current()
		switch m := msg.(type) {
		case tea.BatchMsg:
			queue = append(queue, []tea.Cmd(m)...)
			continue
		case nil:
			continue
		}
		updated, next := model.Update(msg)
		tm, ok := updated.(*Model[T])
		require.True(t, ok)
		model = tm
		if next != nil {
			queue = append(queue, next)
		}
	}
	return model
}

func pressKey[T any](t *testing.T, model *Model[T], key string) *Model[T] {
	t.Helper()

	var msg tea.KeyMsg
	switch key {
	case "esc":
		msg = tea.KeyMsg{Type: tea.KeyEsc}
	case "enter":
		msg = tea.KeyMsg{Type: tea.KeyEnter}
	case " ":
		msg = tea.KeyMsg{Type: tea.KeySpace}
	case "backspace":
		msg = tea.KeyMsg{Type: tea.KeyBackspace}
	case "up":
		msg = tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		msg = tea.KeyMsg{Type: tea.KeyDown}
	default:
		msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
	}

	updated, cmd := model.Update(msg)
	tm, ok := updated.(*Model[T])
	require.True(t, ok)
	return executeCmd(t, tm, cmd)
}

func txScreen() Screen[txRow] {
	return Screen[txRow]{
		Title:        "Transactions",
		ExportPrefix: "transactions",
		Columns:      txColumns(),
		RowID:        func(r txRow) string { return r.ID },
		PageSize:     10,
		Filters: []FilterGroup{
			{
				ColumnID: "status",
				Label:    "Status",
				Options: []FilterOption{
					AllOption(),
					{Value: "pending", Label: "Pending"},
					{Value: "completed", Label: "Completed"},
				},
			},
			{ColumnID: "amount", Label: "Amount", Options: AmountRangeOptions()},
		},
	}
}

func newTestModel(t *testing.T, rows []txRow, opts ...ViewOption[txRow]) *Model[txRow] {
	t.Helper()

	source := atlas.NewSource(func(context.Context) ([]txRow, error) {
		return rows, nil
	})
	model, err := NewModel(context.Background(), txScreen(), source, opts...)
	require.NoError(t, err)

	model.debouncer = debounce.New(func(q string) string { return q }, time.Millisecond)
	return executeCmd(t, model, model.Init())
}

func TestModelLoadingStateShowsSkeleton(t *testing.T) {
	source := atlas.NewSource(func(context.Context) ([]txRow, error) {
		return makeTxRows(3), nil
	})
	model, err := NewModel(context.Background(), txScreen(), source)
	require.NoError(t, err)

	// Start the load but do not execute its command yet.
	loadCmd := model.Init()
	require.NotNil(t, loadCmd)

	view := model.View()
	assert.Contains(t, view, "▒▒▒")

	model = executeCmd(t, model, loadCmd)
	view = model.View()
	assert.NotContains(t, view, "▒▒▒")
	assert.Contains(t, view, "tx-000")
}

func TestModelEmptyState(t *testing.T) {
	model := newTestModel(t, nil)

	view := model.View()
	assert.Contains(t, view, "No data available")
	assert.NotContains(t, view, "No results found")
}

func TestModelNoResultsState(t *testing.T) {
	model := newTestModel(t, makeTxRows(5))

	model.Controller().SetColumnFilter("status", "nothing-matches-this")
	model.rebuildTable()

	view := model.View()
	assert.Contains(t, view, "No results found")
	assert.NotContains(t, view, "No data available")
}

func TestModelLoadErrorShowsStatus(t *testing.T) {
	source := atlas.NewSource(func(context.Context) ([]txRow, error) {
		return nil, assert.AnError
	})
	model, err := NewModel(context.Background(), txScreen(), source)
	require.NoError(t, err)

	model = executeCmd(t, model, model.Init())

	view := model.View()
	assert.Contains(t, view, "Failed to load data")
	assert.Contains(t, view, "No data available")
}

func TestSearchIsDebouncedAndApplied(t *testing.T) {
	rows := []txRow{
		{ID: "tx-001", Sender: "alice"},
		{ID: "tx-002", Sender: "bob"},
		{ID: "tx-003", Sender: "alina"},
	}
	model := newTestModel(t, rows)

	model = pressKey(t, model, "/")
	require.Equal(t, modeSearch, model.mode)

	// Each keystroke funnels through the debouncer; pumping the returned
	// command blocks until the window closes, so the term lands applied.
	for _, key := range []string{"a", "l", "i"} {
		model = pressKey(t, model, key)
	}

	assert.Equal(t, "ali", model.Controller().SearchTerm())
	assert.Equal(t, 2, model.Controller().FilteredRowCount())
}

func TestSearchEscapeCancelsAndClears(t *testing.T) {
	model := newTestModel(t, makeTxRows(5))

	model = pressKey(t, model, "/")
	model = pressKey(t, model, "z")
	model = pressKey(t, model, "esc")

	assert.Equal(t, modeNormal, model.mode)
	assert.Empty(t, model.Controller().SearchTerm())
	assert.Equal(t, 5, model.Controller().FilteredRowCount())
}

func TestSearchEnterAppliesImmediately(t *testing.T) {
	rows := []txRow{
		{ID: "tx-001", Sender: "alice"},
		{ID: "tx-002", Sender: "bob"},
	}
	model := newTestModel(t, rows)

	model = pressKey(t, model, "/")
	model = pressKey(t, model, "b")
	model = pressKey(t, model, "enter")

	assert.Equal(t, modeNormal, model.mode)
	assert.Equal(t, "b", model.Controller().SearchTerm())
	assert.Equal(t, 1, model.Controller().FilteredRowCount())
}

func TestFilterPickerAppliesAndClears(t *testing.T) {
	model := newTestModel(t, makeTxRows(12))

	model = pressKey(t, model, "f")
	require.Equal(t, modeFilter, model.mode)

	// First group is status; stepping down selects "pending".
	model = pressKey(t, model, "down")
	assert.Equal(t, "pending", model.Controller().ColumnFilter("status"))
	assert.Equal(t, 4, model.Controller().FilteredRowCount())

	// Stepping back up returns to the clearing "All" option.
	model = pressKey(t, model, "up")
	assert.Empty(t, model.Controller().ColumnFilter("status"))
	assert.Equal(t, 12, model.Controller().FilteredRowCount())

	model = pressKey(t, model, "esc")
	assert.Equal(t, modeNormal, model.mode)
}

// Forward steps must visit every entry of a shared option catalog and wrap
// back to the clearing entry; the recomputed option index would otherwise
// stall on a repeated value.
func TestFilterPickerForwardCycleVisitsEveryOption(t *testing.T) {
	model := newTestModel(t, makeTxRows(12))

	model = pressKey(t, model, "f")
	model = pressKey(t, model, "tab")

	want := []string{"0-100", "100-1000", "1000-", ""}
	for _, expected := range want {
		model = pressKey(t, model, "down")
		assert.Equal(t, expected, model.Controller().ColumnFilter("amount"))
	}
}

func TestResetClearsFiltersAndSearch(t *testing.T) {
	model := newTestModel(t, makeTxRows(12))

	model.Controller().SetColumnFilter("status", "pending")
	model.Controller().SetSearch("sender1")
	require.True(t, model.Controller().HasActiveFilters())

	model = pressKey(t, model, "r")
	assert.False(t, model.Controller().HasActiveFilters())
	assert.Equal(t, 12, model.Controller().FilteredRowCount())
}

func TestSortKeyCyclesOnFocusedColumn(t *testing.T) {
	model := newTestModel(t, makeTxRows(5))

	model = pressKey(t, model, "s")
	require.Equal(t, []SortKey{{ColumnID: "id", Direction: Ascending}}, model.Controller().SortKeys())
	assert.Contains(t, model.View(), "▲")

	model = pressKey(t, model, "s")
	require.Equal(t, []SortKey{{ColumnID: "id", Direction: Descending}}, model.Controller().SortKeys())
	assert.Contains(t, model.View(), "▼")

	model = pressKey(t, model, "s")
	assert.Empty(t, model.Controller().SortKeys())
}

func TestPaginationKeysAndFooter(t *testing.T) {
	model := newTestModel(t, makeTxRows(25))

	assert.Contains(t, model.View(), "Page 1 of 3")

	model = pressKey(t, model, "n")
	assert.Equal(t, 2, model.Controller().Page())
	assert.Contains(t, model.View(), "Page 2 of 3")

	model = pressKey(t, model, "p")
	assert.Equal(t, 1, model.Controller().Page())
}

func TestPaginationFooterHiddenForSinglePage(t *testing.T) {
	model := newTestModel(t, makeTxRows(5))

	assert.NotContains(t, model.View(), "Page 1 of 1")
}

func TestRowSelectionKeys(t *testing.T) {
	model := newTestModel(t, makeTxRows(25))

	model = pressKey(t, model, " ")
	assert.Equal(t, []string{"tx-000"}, model.Controller().SelectedRowIDs())

	model = pressKey(t, model, " ")
	assert.Empty(t, model.Controller().SelectedRowIDs())

	model = pressKey(t, model, "a")
	assert.Len(t, model.Controller().SelectedRowIDs(), 10)

	model = pressKey(t, model, "a")
	assert.Empty(t, model.Controller().SelectedRowIDs())
}

func TestCopyRowID(t *testing.T) {
	var copied string
	prev := writeClipboard
	writeClipboard = func(text string) error {
		copied = text
		return nil
	}
	t.Cleanup(func() { writeClipboard = prev })

	model := newTestModel(t, makeTxRows(3))

	model = pressKey(t, model, "c")
	assert.Equal(t, "tx-000", copied)
	assert.Contains(t, model.statusMessage, "tx-000")
}

func TestColumnVisibilityMenu(t *testing.T) {
	model := newTestModel(t, makeTxRows(5))

	model = pressKey(t, model, "v")
	require.Equal(t, modeColumns, model.mode)
	assert.Contains(t, model.View(), "[x] ID")

	// Toggle the first column off.
	model = pressKey(t, model, " ")
	assert.False(t, model.Controller().IsColumnVisible("id"))
	assert.Contains(t, model.View(), "[ ] ID")

	model = pressKey(t, model, "esc")
	assert.Equal(t, modeNormal, model.mode)
	assert.Len(t, model.Controller().VisibleColumns(), len(txColumns())-1)
}

func TestColumnsMenuSearchScopeToggle(t *testing.T) {
	model := newTestModel(t, makeTxRows(5))

	model = pressKey(t, model, "v")
	require.Equal(t, modeColumns, model.mode)

	// Both searchable columns start in scope.
	assert.Contains(t, model.View(), "SENDER *")
	assert.Contains(t, model.View(), "RECEIVER *")

	// Drop sender from the scope.
	model = pressKey(t, model, "down")
	model = pressKey(t, model, "s")
	assert.Equal(t, []string{"receiver"}, model.Controller().SearchColumns())
	assert.NotContains(t, model.View(), "SENDER *")

	// s on a non-searchable column is a no-op.
	model = pressKey(t, model, "up")
	model = pressKey(t, model, "s")
	assert.Equal(t, []string{"receiver"}, model.Controller().SearchColumns())

	// Dropping the last scoped column restores the full searchable set.
	model = pressKey(t, model, "down")
	model = pressKey(t, model, "down")
	model = pressKey(t, model, "s")
	assert.Equal(t, []string{"sender", "receiver"}, model.Controller().SearchColumns())
}

type capturingWriter struct {
	sheets []export.Sheet
	paths  []string
}

func (w *capturingWriter) Write(sheet export.Sheet, path string) error {
	w.sheets = append(w.sheets, sheet)
	w.paths = append(w.paths, path)
	return nil
}

func TestExportWritesFilteredRows(t *testing.T) {
	writer := &capturingWriter{}
	exporter := export.NewExporter("transactions", t.TempDir(),
		export.WithClock(func() time.Time { return time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC) }),
		export.WithWriterLoader(func() export.Writer { return writer }),
	)

	model := newTestModel(t, makeTxRows(25), WithExporter[txRow](exporter))
	model.Controller().SetColumnFilter("status", "pending")
	model.rebuildTable()

	model = pressKey(t, model, "e")

	require.Len(t, writer.sheets, 1)
	// All filtered rows cross the page boundary, not just the visible ten.
	assert.Len(t, writer.sheets[0].Records, 9)
	assert.Contains(t, writer.paths[0], "transactions_2026-03-14.xlsx")
	assert.False(t, model.exporting)
	assert.Contains(t, model.statusMessage, "Exported to")
}

func TestExportRefusedWhileInFlight(t *testing.T) {
	model := newTestModel(t, makeTxRows(5))

	model.exporting = true
	updated, cmd := model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("e")})
	tm := updated.(*Model[txRow])

	assert.Nil(t, cmd)
	assert.Contains(t, tm.statusMessage, "already in progress")
}

func TestExportNoDataSurfacesStatus(t *testing.T) {
	writer := &capturingWriter{}
	exporter := export.NewExporter("transactions", t.TempDir(),
		export.WithWriterLoader(func() export.Writer { return writer }),
	)

	model := newTestModel(t, nil, WithExporter[txRow](exporter))

	model = pressKey(t, model, "e")

	assert.Empty(t, writer.sheets)
	assert.Contains(t, model.statusMessage, "No data available to export")
	assert.False(t, model.exporting)
}

func TestBuildSheetUsesVisibleColumnsAndHeaderLabels(t *testing.T) {
	model := newTestModel(t, makeTxRows(3))
	c := model.Controller()

	c.SetColumnVisibility("receiver", false)

	sheet := BuildSheet(c)
	assert.NotContains(t, sheet.Headers, "RECEIVER")
	assert.Contains(t, sheet.Headers, "SENDER")
	assert.Contains(t, sheet.Headers, "DATE")
	require.Len(t, sheet.Records, 3)
	assert.Equal(t, "tx-000", sheet.Records[0]["ID"])
}
