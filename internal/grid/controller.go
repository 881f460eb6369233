package grid

import (
	"fmt"
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Direction is a sort direction.
type Direction int

const (
	Ascending Direction = iota
	Descending
)

func (d Direction) String() string {
	if d == Descending {
		return "descending"
	}
	return "ascending"
}

// SortKey pairs a column with a direction. The first key in a sort spec is the
// primary key; ties are broken by subsequent keys.
type SortKey struct {
	ColumnID  string
	Direction Direction
}

// DefaultPageSize is used when a table does not configure its own.
const DefaultPageSize = 10

var sortCollator = collate.New(language.Und, collate.IgnoreCase)

// Controller owns all grid state for one table instance: sort spec, per-column
// filter values, column visibility, row selection, and the current page. It
// derives the filtered/sorted/paginated row window on demand and memoizes the
// result until the next mutation. The raw row slice is treated as read-only.
type Controller[T any] struct {
	columns  []Column[T]
	colIndex map[string]int
	rows     []T

	sortKeys      []SortKey
	filters       map[string]string
	searchTerm    string
	searchColumns map[string]bool
	visibility    map[string]bool
	selected      map[string]bool
	rowID         func(row T) string

	page     int
	pageSize int

	dirty    bool
	filtered []int
}

// ControllerOption configures a Controller at construction time.
type ControllerOption[T any] func(*Controller[T])

// WithPageSize fixes the number of rows per page. The page size is a property
// of the table instance, not user-configurable at runtime.
func WithPageSize[T any](size int) ControllerOption[T] {
	return func(c *Controller[T]) {
		if size > 0 {
			c.pageSize = size
		}
	}
}

// WithRowID supplies the identity function used for row selection. Without it
// selection is keyed by the row's position in the raw slice.
func WithRowID[T any](id func(row T) string) ControllerOption[T] {
	return func(c *Controller[T]) {
		c.rowID = id
	}
}

// NewController builds a controller over the provided column set. Column IDs
// must be unique within the table.
func NewController[T any](columns []Column[T], opts ...ControllerOption[T]) (*Controller[T], error) {
	c := &Controller[T]{
		columns:       append([]Column[T](nil), columns...),
		colIndex:      make(map[string]int, len(columns)),
		filters:       make(map[string]string),
		searchColumns: make(map[string]bool),
		visibility:    make(map[string]bool),
		selected:      make(map[string]bool),
		page:          1,
		pageSize:      DefaultPageSize,
		dirty:         true,
	}

	for i, col := range c.columns {
		if col.ID == "" {
			return nil, fmt.Errorf("grid: column %d has an empty ID", i)
		}
		if _, exists := c.colIndex[col.ID]; exists {
			return nil, fmt.Errorf("grid: duplicate column ID %q", col.ID)
		}
		c.colIndex[col.ID] = i
		c.visibility[col.ID] = !col.Hidden
	}

	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// SetRows replaces the raw row data. The controller never mutates the slice;
// callers retain ownership.
func (c *Controller[T]) SetRows(rows []T) {
	c.rows = rows
	c.invalidate()
}

// Columns returns the full column descriptor set in declaration order.
func (c *Controller[T]) Columns() []Column[T] {
	return c.columns
}

// VisibleColumns returns the columns currently visible, preserving
// declaration order.
func (c *Controller[T]) VisibleColumns() []Column[T] {
	visible := make([]Column[T], 0, len(c.columns))
	for _, col := range c.columns {
		if c.visibility[col.ID] {
			visible = append(visible, col)
		}
	}
	return visible
}

// SetSort replaces the entire sort spec.
func (c *Controller[T]) SetSort(keys []SortKey) {
	c.sortKeys = append([]SortKey(nil), keys...)
	c.invalidate()
}

// SortKeys returns the active sort spec, primary key first.
func (c *Controller[T]) SortKeys() []SortKey {
	return c.sortKeys
}

// CycleSort advances the sort state of one column through
// none -> ascending -> descending -> none, replacing the primary sort key
// rather than appending to it.
func (c *Controller[T]) CycleSort(columnID string) {
	if _, ok := c.colIndex[columnID]; !ok {
		return
	}

	if len(c.sortKeys) > 0 && c.sortKeys[0].ColumnID == columnID {
		if c.sortKeys[0].Direction == Ascending {
			c.sortKeys = []SortKey{{ColumnID: columnID, Direction: Descending}}
		} else {
			c.sortKeys = nil
		}
	} else {
		c.sortKeys = []SortKey{{ColumnID: columnID, Direction: Ascending}}
	}
	c.invalidate()
}

// SetColumnFilter sets the filter value for a column. An empty value clears
// the filter.
func (c *Controller[T]) SetColumnFilter(columnID, value string) {
	if _, ok := c.colIndex[columnID]; !ok {
		return
	}
	if value == "" {
		delete(c.filters, columnID)
	} else {
		c.filters[columnID] = value
	}
	c.invalidate()
}

// ColumnFilter returns the active filter value for a column, or "".
func (c *Controller[T]) ColumnFilter(columnID string) string {
	return c.filters[columnID]
}

// HasActiveFilters reports whether any column filter or search term is set.
func (c *Controller[T]) HasActiveFilters() bool {
	return len(c.filters) > 0 || c.searchTerm != ""
}

// ResetFilters clears every column filter and the shared search term.
func (c *Controller[T]) ResetFilters() {
	c.filters = make(map[string]string)
	c.searchTerm = ""
	c.invalidate()
}

// SetSearch applies the shared search term. The term is matched against every
// currently selected searchable column; a row passes when any of those columns
// matches (OR), unlike ordinary column filters which are ANDed.
func (c *Controller[T]) SetSearch(term string) {
	c.searchTerm = term
	c.invalidate()
}

// SearchTerm returns the active shared search term.
func (c *Controller[T]) SearchTerm() string {
	return c.searchTerm
}

// SetSearchColumns narrows the searchable-column subset the shared term is
// applied to. IDs that are not searchable columns are ignored; an empty set
// restores the default of all searchable columns.
func (c *Controller[T]) SetSearchColumns(columnIDs []string) {
	c.searchColumns = make(map[string]bool, len(columnIDs))
	for _, id := range columnIDs {
		if idx, ok := c.colIndex[id]; ok && c.columns[idx].Searchable {
			c.searchColumns[id] = true
		}
	}
	c.invalidate()
}

// SearchColumns returns the IDs of the columns the shared search currently
// applies to, in declaration order.
func (c *Controller[T]) SearchColumns() []string {
	ids := make([]string, 0, len(c.columns))
	for _, col := range c.columns {
		if !col.Searchable {
			continue
		}
		if len(c.searchColumns) == 0 || c.searchColumns[col.ID] {
			ids = append(ids, col.ID)
		}
	}
	return ids
}

// SetColumnVisibility shows or hides a column. Hidden columns keep their
// filter state.
func (c *Controller[T]) SetColumnVisibility(columnID string, visible bool) {
	if _, ok := c.colIndex[columnID]; !ok {
		return
	}
	c.visibility[columnID] = visible
}

// IsColumnVisible reports the visibility of a column.
func (c *Controller[T]) IsColumnVisible(columnID string) bool {
	return c.visibility[columnID]
}

// ToggleRowSelection flips the selection state of a row id.
func (c *Controller[T]) ToggleRowSelection(rowID string) {
	if c.selected[rowID] {
		delete(c.selected, rowID)
	} else {
		c.selected[rowID] = true
	}
}

// SetSelection replaces the selected row id set.
func (c *Controller[T]) SetSelection(rowIDs []string) {
	c.selected = make(map[string]bool, len(rowIDs))
	for _, id := range rowIDs {
		c.selected[id] = true
	}
}

// ClearSelection drops every selected row.
func (c *Controller[T]) ClearSelection() {
	c.selected = make(map[string]bool)
}

// IsRowSelected reports whether a row id is selected.
func (c *Controller[T]) IsRowSelected(rowID string) bool {
	return c.selected[rowID]
}

// SelectedRowIDs returns the selected row ids, sorted for stable output.
func (c *Controller[T]) SelectedRowIDs() []string {
	ids := make([]string, 0, len(c.selected))
	for id := range c.selected {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// RowID resolves the identity of a row for selection purposes.
func (c *Controller[T]) RowID(row T, index int) string {
	if c.rowID != nil {
		return c.rowID(row)
	}
	return fmt.Sprintf("%d", index)
}

// SetPage moves to the requested 1-based page, clamped into the valid range.
func (c *Controller[T]) SetPage(page int) {
	c.page = page
	c.derive()
	c.clampPage()
}

// Page returns the current 1-based page, clamped against the filtered row
// count so a stale page never renders past the end.
func (c *Controller[T]) Page() int {
	c.derive()
	c.clampPage()
	return c.page
}

// PageSize returns the fixed rows-per-page for this table instance.
func (c *Controller[T]) PageSize() int {
	return c.pageSize
}

// PageCount returns the number of pages in the filtered set.
func (c *Controller[T]) PageCount() int {
	c.derive()
	count := len(c.filtered)
	if count == 0 {
		return 0
	}
	return (count + c.pageSize - 1) / c.pageSize
}

// TotalRowCount returns the size of the raw row set.
func (c *Controller[T]) TotalRowCount() int {
	return len(c.rows)
}

// FilteredRowCount returns the number of rows passing every active filter.
func (c *Controller[T]) FilteredRowCount() int {
	c.derive()
	return len(c.filtered)
}

// Window returns the derived row window: rows passing every filter, ordered by
// the sort spec, sliced to the current page.
func (c *Controller[T]) Window() []T {
	c.derive()
	c.clampPage()

	if len(c.filtered) == 0 {
		return nil
	}

	start := (c.page - 1) * c.pageSize
	if start >= len(c.filtered) {
		return nil
	}
	end := start + c.pageSize
	if end > len(c.filtered) {
		end = len(c.filtered)
	}

	window := make([]T, 0, end-start)
	for _, idx := range c.filtered[start:end] {
		window = append(window, c.rows[idx])
	}
	return window
}

// FilteredRows returns every row passing the active filters in sorted order,
// across all pages. The export pipeline uses this to write the full result
// set rather than the visible page.
func (c *Controller[T]) FilteredRows() []T {
	c.derive()

	rows := make([]T, 0, len(c.filtered))
	for _, idx := range c.filtered {
		rows = append(rows, c.rows[idx])
	}
	return rows
}

func (c *Controller[T]) invalidate() {
	c.dirty = true
}

// derive recomputes the filtered and sorted index set. The result is memoized
// until the next mutation so repeated reads within one render are cheap.
func (c *Controller[T]) derive() {
	if !c.dirty {
		return
	}
	c.dirty = false

	c.filtered = c.filtered[:0]
	if len(c.rows) == 0 {
		return
	}

	searchCols := c.SearchColumns()

	for i, row := range c.rows {
		if !c.passesFilters(row) {
			continue
		}
		if !c.passesSearch(row, searchCols) {
			continue
		}
		c.filtered = append(c.filtered, i)
	}

	c.sortFiltered()
}

// passesFilters applies every active ordinary column filter; all must match.
func (c *Controller[T]) passesFilters(row T) bool {
	for columnID, value := range c.filters {
		idx, ok := c.colIndex[columnID]
		if !ok {
			continue
		}
		if !c.columns[idx].matches(row, value) {
			return false
		}
	}
	return true
}

// passesSearch applies the shared term to the selected searchable columns.
// The same filter value is evaluated against each column and the results are
// ORed together.
func (c *Controller[T]) passesSearch(row T, searchCols []string) bool {
	if c.searchTerm == "" || len(searchCols) == 0 {
		return true
	}
	for _, columnID := range searchCols {
		idx := c.colIndex[columnID]
		if c.columns[idx].matches(row, c.searchTerm) {
			return true
		}
	}
	return false
}

// sortFiltered applies the multi-key comparator as a stable sort. An empty
// sort spec preserves the raw insertion order.
func (c *Controller[T]) sortFiltered() {
	if len(c.sortKeys) == 0 {
		return
	}

	keys := make([]int, 0, len(c.sortKeys))
	dirs := make([]Direction, 0, len(c.sortKeys))
	for _, sk := range c.sortKeys {
		if idx, ok := c.colIndex[sk.ColumnID]; ok {
			keys = append(keys, idx)
			dirs = append(dirs, sk.Direction)
		}
	}
	if len(keys) == 0 {
		return
	}

	sort.SliceStable(c.filtered, func(a, b int) bool {
		rowA, rowB := c.rows[c.filtered[a]], c.rows[c.filtered[b]]
		for k, colIdx := range keys {
			cmp := compareValues(c.columns[colIdx].value(rowA), c.columns[colIdx].value(rowB))
			if cmp == 0 {
				continue
			}
			if dirs[k] == Descending {
				return cmp > 0
			}
			return cmp < 0
		}
		return false
	})
}

func (c *Controller[T]) clampPage() {
	pageCount := 0
	if len(c.filtered) > 0 {
		pageCount = (len(c.filtered) + c.pageSize - 1) / c.pageSize
	}
	if pageCount < 1 {
		pageCount = 1
	}
	if c.page < 1 {
		c.page = 1
	}
	if c.page > pageCount {
		c.page = pageCount
	}
}

// compareValues orders two accessor outputs: numerically when both sides are
// numeric, chronologically when both are times, otherwise by case-insensitive
// text collation.
func compareValues(a, b any) int {
	if na, okA := numericValue(a); okA {
		if nb, okB := numericValue(b); okB {
			switch {
			case na < nb:
				return -1
			case na > nb:
				return 1
			default:
				return 0
			}
		}
	}

	if ta, okA := timeValue(a); okA {
		if tb, okB := timeValue(b); okB {
			switch {
			case ta.Before(tb):
				return -1
			case ta.After(tb):
				return 1
			default:
				return 0
			}
		}
	}

	return sortCollator.CompareString(FormatValue(a), FormatValue(b))
}
