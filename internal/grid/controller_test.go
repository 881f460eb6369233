package grid

import (
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type txRow struct {
	ID        string
	Sender    string
	Receiver  string
	Status    string
	Amount    decimal.Decimal
	CreatedAt time.Time
}

func txColumns() []Column[txRow] {
	return []Column[txRow]{
		{ID: "id", Accessor: func(r txRow) any { return r.ID }},
		{ID: "sender", Searchable: true, Accessor: func(r txRow) any { return r.Sender }},
		{ID: "receiver", Searchable: true, Accessor: func(r txRow) any { return r.Receiver }},
		{ID: "status", Accessor: func(r txRow) any { return r.Status }},
		{
			ID:       "amount",
			Accessor: func(r txRow) any { return r.Amount },
			Filter:   NumberRange(func(r txRow) any { return r.Amount }),
		},
		{
			ID:       "createdAt",
			Label:    "DATE",
			Accessor: func(r txRow) any { return r.CreatedAt },
			Filter:   DateBucket(func(r txRow) any { return r.CreatedAt }),
		},
	}
}

func makeTxRows(n int) []txRow {
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	rows := make([]txRow, 0, n)
	for i := 0; i < n; i++ {
		status := "completed"
		if i%3 == 0 {
			status = "pending"
		}
		rows = append(rows, txRow{
			ID:        fmt.Sprintf("tx-%03d", i),
			Sender:    fmt.Sprintf("sender%d", i),
			Receiver:  fmt.Sprintf("receiver%d", i),
			Status:    status,
			Amount:    decimal.NewFromInt(int64(i * 50)),
			CreatedAt: base.AddDate(0, 0, i),
		})
	}
	return rows
}

func newTxController(t *testing.T, rows []txRow, opts ...ControllerOption[txRow]) *Controller[txRow] {
	t.Helper()
	opts = append([]ControllerOption[txRow]{
		WithRowID[txRow](func(r txRow) string { return r.ID }),
	}, opts...)
	c, err := NewController(txColumns(), opts...)
	require.NoError(t, err)
	c.SetRows(rows)
	return c
}

func TestNewControllerRejectsBadColumnSets(t *testing.T) {
	_, err := NewController([]Column[txRow]{{ID: ""}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty ID")

	_, err = NewController([]Column[txRow]{{ID: "a"}, {ID: "a"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate column ID")
}

func TestWindowPaginatesFilteredRows(t *testing.T) {
	c := newTxController(t, makeTxRows(25))

	require.Equal(t, 25, c.TotalRowCount())
	require.Equal(t, 25, c.FilteredRowCount())
	require.Equal(t, 3, c.PageCount())
	require.Equal(t, 1, c.Page())

	window := c.Window()
	require.Len(t, window, 10)
	assert.Equal(t, "tx-000", window[0].ID)

	c.SetPage(3)
	window = c.Window()
	require.Len(t, window, 5)
	assert.Equal(t, "tx-020", window[0].ID)
}

func TestSetPageClampsIntoValidRange(t *testing.T) {
	c := newTxController(t, makeTxRows(25))

	c.SetPage(99)
	assert.Equal(t, 3, c.Page())

	c.SetPage(0)
	assert.Equal(t, 1, c.Page())

	c.SetPage(-5)
	assert.Equal(t, 1, c.Page())
}

func TestPageClampsAfterFilterShrinksResultSet(t *testing.T) {
	c := newTxController(t, makeTxRows(25))

	c.SetPage(3)
	require.Equal(t, 3, c.Page())

	// Narrow the result set below one page; the stale page must snap back.
	c.SetColumnFilter("status", "pending")
	assert.Equal(t, 1, c.Page())
	assert.Equal(t, 9, c.FilteredRowCount())
}

func TestPageCountIsZeroForEmptyResultSet(t *testing.T) {
	c := newTxController(t, nil)

	assert.Equal(t, 0, c.PageCount())
	assert.Equal(t, 1, c.Page())
	assert.Empty(t, c.Window())
}

func TestColumnFiltersCombineWithAnd(t *testing.T) {
	c := newTxController(t, makeTxRows(25))

	c.SetColumnFilter("status", "pending")
	pendingOnly := c.FilteredRowCount()
	require.Equal(t, 9, pendingOnly)

	// Adding a second filter can only shrink the set, never grow it.
	c.SetColumnFilter("amount", "300-600")
	withAmount := c.FilteredRowCount()
	assert.LessOrEqual(t, withAmount, pendingOnly)
	for _, row := range c.FilteredRows() {
		assert.Equal(t, "pending", row.Status)
		assert.True(t, row.Amount.GreaterThanOrEqual(decimal.NewFromInt(300)))
		assert.True(t, row.Amount.LessThanOrEqual(decimal.NewFromInt(600)))
	}
}

func TestAmountRangeFilterScenario(t *testing.T) {
	rows := make([]txRow, 0, 12)
	for i := 0; i < 12; i++ {
		rows = append(rows, txRow{
			ID:     fmt.Sprintf("tx-%03d", i),
			Amount: decimal.NewFromInt(int64(i * 100)),
		})
	}
	c := newTxController(t, rows)

	c.SetColumnFilter("amount", "100-1000")

	filtered := c.FilteredRows()
	require.Len(t, filtered, 10)
	assert.Equal(t, "tx-001", filtered[0].ID)
	assert.Equal(t, "tx-010", filtered[len(filtered)-1].ID)
}

func TestClearingFilterRestoresFullSet(t *testing.T) {
	c := newTxController(t, makeTxRows(25))

	c.SetColumnFilter("status", "pending")
	require.True(t, c.HasActiveFilters())
	require.Equal(t, "pending", c.ColumnFilter("status"))

	c.SetColumnFilter("status", "")
	assert.False(t, c.HasActiveFilters())
	assert.Equal(t, 25, c.FilteredRowCount())
}

func TestResetFiltersClearsFiltersAndSearch(t *testing.T) {
	c := newTxController(t, makeTxRows(25))

	c.SetColumnFilter("status", "pending")
	c.SetSearch("sender1")
	require.True(t, c.HasActiveFilters())

	c.ResetFilters()
	assert.False(t, c.HasActiveFilters())
	assert.Empty(t, c.SearchTerm())
	assert.Equal(t, 25, c.FilteredRowCount())
}

func TestSearchMatchesAcrossSearchableColumnsWithOr(t *testing.T) {
	rows := []txRow{
		{ID: "tx-001", Sender: "alice", Receiver: "bob"},
		{ID: "tx-002", Sender: "bob", Receiver: "carol"},
		{ID: "tx-003", Sender: "carol", Receiver: "dave"},
	}
	c := newTxController(t, rows)

	// "bob" appears as a sender in one row and a receiver in another; the
	// search must keep both.
	c.SetSearch("bob")
	filtered := c.FilteredRows()
	require.Len(t, filtered, 2)
	assert.Equal(t, "tx-001", filtered[0].ID)
	assert.Equal(t, "tx-002", filtered[1].ID)
}

func TestSearchIsCaseInsensitiveSubstring(t *testing.T) {
	rows := []txRow{
		{ID: "tx-001", Sender: "Alice Smith"},
		{ID: "tx-002", Sender: "Bob Jones"},
	}
	c := newTxController(t, rows)

	c.SetSearch("SMITH")
	require.Equal(t, 1, c.FilteredRowCount())
	assert.Equal(t, "tx-001", c.FilteredRows()[0].ID)
}

func TestSearchIgnoresNonSearchableColumns(t *testing.T) {
	rows := []txRow{
		{ID: "tx-001", Sender: "alice", Status: "pending"},
		{ID: "tx-002", Sender: "bob", Status: "completed"},
	}
	c := newTxController(t, rows)

	// Status is not searchable, so the term cannot match through it.
	c.SetSearch("pending")
	assert.Equal(t, 0, c.FilteredRowCount())
}

func TestSetSearchColumnsNarrowsTheSearchScope(t *testing.T) {
	rows := []txRow{
		{ID: "tx-001", Sender: "alice", Receiver: "bob"},
		{ID: "tx-002", Sender: "bob", Receiver: "carol"},
	}
	c := newTxController(t, rows)

	c.SetSearchColumns([]string{"sender"})
	require.Equal(t, []string{"sender"}, c.SearchColumns())

	c.SetSearch("bob")
	filtered := c.FilteredRows()
	require.Len(t, filtered, 1)
	assert.Equal(t, "tx-002", filtered[0].ID)

	// Non-searchable IDs are dropped; an empty set restores the default.
	c.SetSearchColumns([]string{"status"})
	assert.Equal(t, []string{"sender", "receiver"}, c.SearchColumns())
}

func TestSearchAndColumnFiltersCompose(t *testing.T) {
	rows := []txRow{
		{ID: "tx-001", Sender: "alice", Status: "pending"},
		{ID: "tx-002", Sender: "alice", Status: "completed"},
		{ID: "tx-003", Sender: "bob", Status: "pending"},
	}
	c := newTxController(t, rows)

	c.SetSearch("alice")
	c.SetColumnFilter("status", "pending")

	filtered := c.FilteredRows()
	require.Len(t, filtered, 1)
	assert.Equal(t, "tx-001", filtered[0].ID)
}

func TestCycleSortReplacesPrimaryKey(t *testing.T) {
	c := newTxController(t, makeTxRows(5))

	c.CycleSort("amount")
	require.Equal(t, []SortKey{{ColumnID: "amount", Direction: Ascending}}, c.SortKeys())

	c.CycleSort("amount")
	require.Equal(t, []SortKey{{ColumnID: "amount", Direction: Descending}}, c.SortKeys())

	c.CycleSort("amount")
	assert.Empty(t, c.SortKeys())

	// Cycling a different column replaces the primary key instead of
	// appending a secondary one.
	c.CycleSort("amount")
	c.CycleSort("sender")
	require.Equal(t, []SortKey{{ColumnID: "sender", Direction: Ascending}}, c.SortKeys())

	c.CycleSort("missing")
	assert.Equal(t, []SortKey{{ColumnID: "sender", Direction: Ascending}}, c.SortKeys())
}

func TestSortOrdersNumericallyAndByDirection(t *testing.T) {
	rows := []txRow{
		{ID: "tx-001", Amount: decimal.NewFromInt(900)},
		{ID: "tx-002", Amount: decimal.NewFromInt(20)},
		{ID: "tx-003", Amount: decimal.NewFromInt(100)},
	}
	c := newTxController(t, rows)

	c.SetSort([]SortKey{{ColumnID: "amount", Direction: Ascending}})
	filtered := c.FilteredRows()
	assert.Equal(t, []string{"tx-002", "tx-003", "tx-001"}, rowIDs(filtered))

	c.SetSort([]SortKey{{ColumnID: "amount", Direction: Descending}})
	filtered = c.FilteredRows()
	assert.Equal(t, []string{"tx-001", "tx-003", "tx-002"}, rowIDs(filtered))
}

func TestSortIsStableAcrossKeys(t *testing.T) {
	rows := []txRow{
		{ID: "tx-001", Status: "pending", Sender: "carol"},
		{ID: "tx-002", Status: "completed", Sender: "alice"},
		{ID: "tx-003", Status: "pending", Sender: "alice"},
		{ID: "tx-004", Status: "completed", Sender: "bob"},
	}
	c := newTxController(t, rows)

	c.SetSort([]SortKey{
		{ColumnID: "status", Direction: Ascending},
		{ColumnID: "sender", Direction: Ascending},
	})

	assert.Equal(t, []string{"tx-002", "tx-004", "tx-003", "tx-001"}, rowIDs(c.FilteredRows()))
}

func TestEmptySortSpecPreservesInsertionOrder(t *testing.T) {
	rows := []txRow{
		{ID: "tx-003"},
		{ID: "tx-001"},
		{ID: "tx-002"},
	}
	c := newTxController(t, rows)

	assert.Equal(t, []string{"tx-003", "tx-001", "tx-002"}, rowIDs(c.FilteredRows()))
}

func TestSortByDateColumn(t *testing.T) {
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	rows := []txRow{
		{ID: "tx-001", CreatedAt: base.AddDate(0, 0, 2)},
		{ID: "tx-002", CreatedAt: base},
		{ID: "tx-003", CreatedAt: base.AddDate(0, 0, 1)},
	}
	c := newTxController(t, rows)

	c.SetSort([]SortKey{{ColumnID: "createdAt", Direction: Descending}})
	assert.Equal(t, []string{"tx-001", "tx-003", "tx-002"}, rowIDs(c.FilteredRows()))
}

func TestColumnVisibility(t *testing.T) {
	cols := txColumns()
	cols[0].Hidden = true
	c, err := NewController(cols)
	require.NoError(t, err)

	assert.False(t, c.IsColumnVisible("id"))
	assert.True(t, c.IsColumnVisible("sender"))
	assert.Len(t, c.VisibleColumns(), len(cols)-1)

	c.SetColumnVisibility("id", true)
	assert.True(t, c.IsColumnVisible("id"))
	assert.Len(t, c.VisibleColumns(), len(cols))

	c.SetColumnVisibility("sender", false)
	assert.False(t, c.IsColumnVisible("sender"))
}

func TestHiddenColumnFilterStillApplies(t *testing.T) {
	c := newTxController(t, makeTxRows(25))

	c.SetColumnVisibility("status", false)
	c.SetColumnFilter("status", "pending")

	assert.Equal(t, 9, c.FilteredRowCount())
	assert.Equal(t, "pending", c.ColumnFilter("status"))
}

func TestRowSelection(t *testing.T) {
	c := newTxController(t, makeTxRows(5))

	c.ToggleRowSelection("tx-002")
	c.ToggleRowSelection("tx-004")
	assert.True(t, c.IsRowSelected("tx-002"))
	assert.Equal(t, []string{"tx-002", "tx-004"}, c.SelectedRowIDs())

	c.ToggleRowSelection("tx-002")
	assert.False(t, c.IsRowSelected("tx-002"))

	c.SetSelection([]string{"tx-000", "tx-001"})
	assert.Equal(t, []string{"tx-000", "tx-001"}, c.SelectedRowIDs())

	c.ClearSelection()
	assert.Empty(t, c.SelectedRowIDs())
}

func TestRowIDFallsBackToIndex(t *testing.T) {
	c, err := NewController(txColumns())
	require.NoError(t, err)
	c.SetRows(makeTxRows(3))

	assert.Equal(t, "2", c.RowID(txRow{}, 2))

	withID := newTxController(t, makeTxRows(3))
	assert.Equal(t, "tx-007", withID.RowID(txRow{ID: "tx-007"}, 2))
}

func TestFilteredRowsSpansAllPages(t *testing.T) {
	c := newTxController(t, makeTxRows(25), WithPageSize[txRow](5))

	c.SetPage(2)
	require.Len(t, c.Window(), 5)
	assert.Len(t, c.FilteredRows(), 25)
}

func rowIDs(rows []txRow) []string {
	ids := make([]string, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, row.ID)
	}
	return ids
}
