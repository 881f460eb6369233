package grid

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"github.com/atlasbank/atlasctl/internal/atlas"
	"github.com/atlasbank/atlasctl/internal/grid/debounce"
	"github.com/atlasbank/atlasctl/internal/grid/export"
	"github.com/atlasbank/atlasctl/internal/theme"
)

// DefaultSearchDebounce is the wait window between the last search keystroke
// and the term being applied to the controller.
const DefaultSearchDebounce = 350 * time.Millisecond

// Screen bundles everything one list screen needs: its column set, the
// enumerated filter pickers, row identity, and the export filename prefix.
type Screen[T any] struct {
	Title        string
	ExportPrefix string
	Columns      []Column[T]
	Filters      []FilterGroup
	RowID        func(row T) string
	PageSize     int
}

type viewMode int

const (
	modeNormal viewMode = iota
	modeSearch
	modeFilter
	modeColumns
)

type searchAppliedMsg struct {
	query string
}

type exportDoneMsg struct {
	path string
	err  error
}

// writeClipboard is swapped out by tests.
var writeClipboard = clipboard.WriteAll

// Model is the interactive grid: one bubbles table over a Controller, with the
// toolbar, debounced search, export trigger, and theming folded into the
// update loop.
type Model[T any] struct {
	ctx        context.Context
	screen     Screen[T]
	controller *Controller[T]
	source     *atlas.Source[T]
	toolbar    toolbar[T]
	exporter   *export.Exporter

	table   table.Model
	spinner spinner.Model

	palette         theme.Palette
	availableThemes []string
	themeIndex      int
	boxStyle        lipgloss.Style
	statusStyle     lipgloss.Style
	tableStyles     table.Styles

	mode          viewMode
	showHelp      bool
	searchBuffer  []rune
	debouncer     *debounce.Debouncer[string, string]
	columnCursor  int
	menuCursor    int
	exporting     bool
	statusMessage string

	windowWidth  int
	windowHeight int
	profileName  string
}

// ViewOption configures optional model behaviour.
type ViewOption[T any] func(*Model[T])

// WithProfile records the active configuration profile for the status area.
func WithProfile[T any](name string) ViewOption[T] {
	return func(m *Model[T]) {
		m.profileName = strings.TrimSpace(name)
	}
}

// WithExporter overrides the default exporter, which writes
// "<prefix>_<date>.xlsx" into the working directory.
func WithExporter[T any](e *export.Exporter) ViewOption[T] {
	return func(m *Model[T]) {
		m.exporter = e
	}
}

// NewModel builds the grid model for one screen. The source is loaded
// asynchronously on Init.
func NewModel[T any](
	ctx context.Context,
	screen Screen[T],
	source *atlas.Source[T],
	opts ...ViewOption[T],
) (*Model[T], error) {
	ctrlOpts := []ControllerOption[T]{}
	if screen.PageSize > 0 {
		ctrlOpts = append(ctrlOpts, WithPageSize[T](screen.PageSize))
	}
	if screen.RowID != nil {
		ctrlOpts = append(ctrlOpts, WithRowID[T](screen.RowID))
	}

	controller, err := NewController(screen.Columns, ctrlOpts...)
	if err != nil {
		return nil, err
	}

	m := &Model[T]{
		ctx:             ctx,
		screen:          screen,
		controller:      controller,
		source:          source,
		toolbar:         newToolbar[T](screen.Filters),
		debouncer:       debounce.New(func(q string) string { return q }, DefaultSearchDebounce),
		availableThemes: theme.Available(),
		windowWidth:     120,
		windowHeight:    24,
	}

	for _, opt := range opts {
		opt(m)
	}
	if m.exporter == nil {
		m.exporter = export.NewExporter(screen.ExportPrefix, ".")
	}
	if m.ctx == nil {
		m.ctx = context.Background()
	}

	m.applyPalette(theme.Current())
	m.rebuildTable()

	return m, nil
}

// Controller exposes the grid state, mainly for tests and static rendering.
func (m *Model[T]) Controller() *Controller[T] {
	return m.controller
}

func (m *Model[T]) applyPalette(p theme.Palette) {
	m.palette = p
	m.themeIndex = themeIndexOf(m.availableThemes, p.Name)

	m.boxStyle = lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(p.Adaptive(theme.ColorBorder)).
		Padding(0, 1)
	m.statusStyle = lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(p.Adaptive(theme.ColorBorder)).
		Padding(0, 1)

	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		Foreground(p.Adaptive(theme.ColorTextPrimary)).
		Background(p.Adaptive(theme.ColorSurface))
	styles.Cell = styles.Cell.
		Foreground(p.Adaptive(theme.ColorTextPrimary))
	styles.Selected = styles.Selected.
		Foreground(p.Adaptive(theme.ColorAccentText)).
		Background(p.Adaptive(theme.ColorAccent))
	m.tableStyles = styles

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = p.ForegroundStyle(theme.ColorAccent)
	m.spinner = s
}

func themeIndexOf(names []string, name string) int {
	for i, n := range names {
		if n == name {
			return i
		}
	}
	return 0
}

func (m *Model[T]) selectable() bool {
	return m.screen.RowID != nil
}

func (m *Model[T]) loading() bool {
	return m.source != nil && m.source.State().IsLoading
}

// rebuildTable regenerates the bubbles table from the controller's current
// window, preserving the row cursor where possible.
func (m *Model[T]) rebuildTable() {
	visible := m.controller.VisibleColumns()
	if m.columnCursor >= len(visible) {
		m.columnCursor = 0
	}

	headers := make([]string, 0, len(visible)+1)
	if m.selectable() {
		headers = append(headers, " ")
	}
	sortKeys := m.controller.SortKeys()
	for _, col := range visible {
		title := col.HeaderLabel()
		if len(sortKeys) > 0 && sortKeys[0].ColumnID == col.ID {
			if sortKeys[0].Direction == Ascending {
				title += " ▲"
			} else {
				title += " ▼"
			}
		}
		headers = append(headers, title)
	}

	var matrix [][]string
	if m.loading() {
		matrix = m.skeletonMatrix(len(headers))
	} else {
		window := m.controller.Window()
		pageStart := (m.controller.Page() - 1) * m.controller.PageSize()
		matrix = make([][]string, 0, len(window))
		for i, row := range window {
			record := make([]string, 0, len(headers))
			if m.selectable() {
				marker := " "
				if m.controller.IsRowSelected(m.controller.RowID(row, pageStart+i)) {
					marker = "✓"
				}
				record = append(record, marker)
			}
			for _, col := range visible {
				record = append(record, col.CellValue(row))
			}
			matrix = append(matrix, record)
		}
	}

	frameWidth, _ := m.boxStyle.GetFrameSize()
	widths, _ := calculateColumnWidths(headers, matrix, m.windowWidth-frameWidth-2*len(headers))

	columns := make([]table.Column, len(headers))
	for i, header := range headers {
		columns[i] = table.Column{Title: header, Width: widths[i]}
	}

	rows := make([]table.Row, len(matrix))
	for i, record := range matrix {
		row := make(table.Row, len(columns))
		for j := range columns {
			if j < len(record) {
				row[j] = truncateWithEllipsis(record[j], widths[j])
			}
		}
		rows[i] = row
	}

	cursor := 0
	if len(rows) > 0 {
		cursor = clampInt(m.table.Cursor(), 0, len(rows)-1)
	}

	tbl := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithStyles(m.tableStyles),
	)
	tbl.SetHeight(clampInt(len(rows)+1, 3, m.controller.PageSize()+1))
	tbl.SetCursor(cursor)
	m.table = tbl
}

func (m *Model[T]) skeletonMatrix(columnCount int) [][]string {
	const placeholder = "▒▒▒▒▒▒"

	count := m.controller.PageSize()
	matrix := make([][]string, count)
	for i := range matrix {
		record := make([]string, columnCount)
		for j := range record {
			record[j] = placeholder
		}
		matrix[i] = record
	}
	return matrix
}

func (m *Model[T]) Init() tea.Cmd {
	cmds := []tea.Cmd{m.spinner.Tick}
	if m.source != nil {
		cmds = append(cmds, m.source.Load(m.ctx))
		m.rebuildTable()
	}
	return tea.Batch(cmds...)
}

func (m *Model[T]) Update(msg tea.Msg) (tea.Model, tea.Cmd) { //nolint:ireturn
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.windowWidth = msg.Width
		m.windowHeight = msg.Height
		m.rebuildTable()
		return m, nil

	case spinner.TickMsg:
		if !m.loading() && !m.exporting {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case atlas.DataMsg[T]:
		m.source.Apply(msg)
		state := m.source.State()
		if state.IsError {
			m.statusMessage = "Failed to load data. Press q to quit or r to retry."
		}
		m.controller.SetRows(state.Rows)
		m.rebuildTable()
		return m, nil

	case searchAppliedMsg:
		m.controller.SetSearch(msg.query)
		m.rebuildTable()
		return m, nil

	case exportDoneMsg:
		m.exporting = false
		switch {
		case errors.Is(msg.err, export.ErrNoData):
			m.statusMessage = "No data available to export."
		case msg.err != nil:
			m.statusMessage = fmt.Sprintf("Export failed: %v", msg.err)
		default:
			m.statusMessage = fmt.Sprintf("Exported to %s", msg.path)
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m *Model[T]) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		if key := msg.String(); key == "?" || key == "esc" || key == "q" {
			m.showHelp = false
		}
		return m, nil
	}

	switch m.mode {
	case modeSearch:
		return m.handleSearchKey(msg)
	case modeFilter:
		return m.handleFilterKey(msg)
	case modeColumns:
		return m.handleColumnsKey(msg)
	default:
		return m.handleNormalKey(msg)
	}
}

func (m *Model[T]) handleNormalKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		m.debouncer.Cancel()
		return m, tea.Quit

	case "?":
		m.showHelp = true
		return m, nil

	case "/":
		m.mode = modeSearch
		m.searchBuffer = m.searchBuffer[:0]
		m.statusMessage = ""
		return m, nil

	case "f":
		if len(m.toolbar.groups) > 0 {
			m.mode = modeFilter
			m.statusMessage = ""
		}
		return m, nil

	case "v":
		m.mode = modeColumns
		m.menuCursor = 0
		return m, nil

	case "left", "h":
		if m.columnCursor > 0 {
			m.columnCursor--
		}
		return m, nil

	case "right", "l":
		if m.columnCursor < len(m.controller.VisibleColumns())-1 {
			m.columnCursor++
		}
		return m, nil

	case "s":
		visible := m.controller.VisibleColumns()
		if m.columnCursor < len(visible) {
			m.controller.CycleSort(visible[m.columnCursor].ID)
			m.rebuildTable()
		}
		return m, nil

	case "n":
		m.controller.SetPage(m.controller.Page() + 1)
		m.rebuildTable()
		return m, nil

	case "p":
		m.controller.SetPage(m.controller.Page() - 1)
		m.rebuildTable()
		return m, nil

	case "r":
		m.controller.ResetFilters()
		m.searchBuffer = nil
		m.statusMessage = ""
		m.rebuildTable()
		if m.source != nil && m.source.State().IsError {
			m.rebuildTable()
			return m, tea.Batch(m.spinner.Tick, m.source.Load(m.ctx))
		}
		return m, nil

	case " ":
		if id, ok := m.cursorRowID(); ok {
			m.controller.ToggleRowSelection(id)
			m.rebuildTable()
		}
		return m, nil

	case "a":
		m.toggleSelectPage()
		m.rebuildTable()
		return m, nil

	case "c":
		if id, ok := m.cursorRowID(); ok {
			if err := writeClipboard(id); err != nil {
				m.statusMessage = fmt.Sprintf("Copy failed: %v", err)
			} else {
				m.statusMessage = fmt.Sprintf("Copied %s", id)
			}
		}
		return m, nil

	case "e":
		return m.startExport()

	case "t":
		m.cycleTheme()
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m *Model[T]) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = modeNormal
		m.searchBuffer = nil
		m.debouncer.Cancel()
		m.controller.SetSearch("")
		m.rebuildTable()
		return m, nil

	case "enter":
		m.mode = modeNormal
		m.controller.SetSearch(string(m.searchBuffer))
		m.rebuildTable()
		return m, nil

	case "backspace":
		if len(m.searchBuffer) > 0 {
			m.searchBuffer = m.searchBuffer[:len(m.searchBuffer)-1]
			return m, m.scheduleSearch()
		}
		m.mode = modeNormal
		return m, nil
	}

	if msg.Type == tea.KeyRunes && !msg.Alt {
		appended := false
		for _, r := range msg.Runes {
			if unicode.IsControl(r) {
				continue
			}
			m.searchBuffer = append(m.searchBuffer, r)
			appended = true
		}
		if appended {
			return m, m.scheduleSearch()
		}
	}
	return m, nil
}

// scheduleSearch funnels the buffer through the debouncer so rapid keystrokes
// collapse into one controller update.
func (m *Model[T]) scheduleSearch() tea.Cmd {
	ch := m.debouncer.Call(string(m.searchBuffer))
	return func() tea.Msg {
		result := <-ch
		if result.Cancelled {
			return nil
		}
		return searchAppliedMsg{query: result.Value}
	}
}

func (m *Model[T]) handleFilterKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "enter", "f":
		m.mode = modeNormal
		return m, nil

	case "tab", "right", "l":
		m.toolbar.focusNext()
		return m, nil

	case "shift+tab", "left", "h":
		m.toolbar.focusPrev()
		return m, nil

	case "down", "j", " ":
		if id, value, ok := m.toolbar.cycleOption(m.controller, 1); ok {
			m.controller.SetColumnFilter(id, value)
			m.rebuildTable()
		}
		return m, nil

	case "up", "k":
		if id, value, ok := m.toolbar.cycleOption(m.controller, -1); ok {
			m.controller.SetColumnFilter(id, value)
			m.rebuildTable()
		}
		return m, nil
	}
	return m, nil
}

func (m *Model[T]) handleColumnsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	columns := m.controller.Columns()

	switch msg.String() {
	case "esc", "v", "q":
		m.mode = modeNormal
		return m, nil

	case "down", "j":
		if m.menuCursor < len(columns)-1 {
			m.menuCursor++
		}
		return m, nil

	case "up", "k":
		if m.menuCursor > 0 {
			m.menuCursor--
		}
		return m, nil

	case " ", "enter":
		if m.menuCursor < len(columns) {
			id := columns[m.menuCursor].ID
			m.controller.SetColumnVisibility(id, !m.controller.IsColumnVisible(id))
			m.rebuildTable()
		}
		return m, nil

	case "s":
		if m.menuCursor < len(columns) && columns[m.menuCursor].Searchable {
			m.toggleSearchColumn(columns[m.menuCursor].ID)
			m.rebuildTable()
		}
		return m, nil
	}
	return m, nil
}

// toggleSearchColumn adds or removes a column from the shared search scope.
// Removing the last column restores the full searchable set.
func (m *Model[T]) toggleSearchColumn(id string) {
	scope := m.controller.SearchColumns()
	next := make([]string, 0, len(scope))
	found := false
	for _, colID := range scope {
		if colID == id {
			found = true
			continue
		}
		next = append(next, colID)
	}
	if !found {
		next = append(next, id)
	}
	m.controller.SetSearchColumns(next)
}

func (m *Model[T]) cursorRowID() (string, bool) {
	if !m.selectable() || m.loading() {
		return "", false
	}

	window := m.controller.Window()
	cursor := m.table.Cursor()
	if cursor < 0 || cursor >= len(window) {
		return "", false
	}

	pageStart := (m.controller.Page() - 1) * m.controller.PageSize()
	return m.controller.RowID(window[cursor], pageStart+cursor), true
}

// toggleSelectPage selects every row on the current page, or clears them when
// all are already selected.
func (m *Model[T]) toggleSelectPage() {
	if !m.selectable() || m.loading() {
		return
	}

	window := m.controller.Window()
	if len(window) == 0 {
		return
	}

	pageStart := (m.controller.Page() - 1) * m.controller.PageSize()
	ids := make([]string, 0, len(window))
	allSelected := true
	for i, row := range window {
		id := m.controller.RowID(row, pageStart+i)
		ids = append(ids, id)
		if !m.controller.IsRowSelected(id) {
			allSelected = false
		}
	}

	for _, id := range ids {
		if allSelected {
			if m.controller.IsRowSelected(id) {
				m.controller.ToggleRowSelection(id)
			}
		} else if !m.controller.IsRowSelected(id) {
			m.controller.ToggleRowSelection(id)
		}
	}
}

// startExport kicks off the spreadsheet write. At most one export runs at a
// time; a second trigger while one is in flight is refused with a status
// message rather than queued.
func (m *Model[T]) startExport() (tea.Model, tea.Cmd) {
	if m.exporting {
		m.statusMessage = "Export already in progress."
		return m, nil
	}
	if m.loading() {
		m.statusMessage = "Still loading; try again shortly."
		return m, nil
	}

	m.exporting = true
	m.statusMessage = ""

	sheet := BuildSheet(m.controller)
	exporter := m.exporter
	return m, tea.Batch(m.spinner.Tick, func() tea.Msg {
		path, err := exporter.Export(sheet)
		return exportDoneMsg{path: path, err: err}
	})
}

func (m *Model[T]) cycleTheme() {
	if len(m.availableThemes) == 0 {
		return
	}

	m.themeIndex = (m.themeIndex + 1) % len(m.availableThemes)
	name := m.availableThemes[m.themeIndex]
	if err := theme.SetCurrent(name); err != nil {
		m.statusMessage = fmt.Sprintf("Theme %q unavailable: %v", name, err)
		return
	}
	m.applyPalette(theme.Current())
	m.rebuildTable()
	m.statusMessage = fmt.Sprintf("Theme: %s", name)
}

func (m *Model[T]) View() string {
	var sections []string

	if title := strings.TrimSpace(m.screen.Title); title != "" {
		sections = append(sections, m.palette.ForegroundStyle(theme.ColorAccent).Render(title))
	}

	if bar := m.toolbar.render(m.controller, m.palette, m.mode == modeFilter, m.windowWidth); bar != "" {
		sections = append(sections, bar)
	}

	sections = append(sections, m.renderBody())
	sections = append(sections, m.renderStatusArea())

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderBody resolves the display state in precedence order: loading, then
// genuinely empty data, then an empty filter result, then the populated table.
func (m *Model[T]) renderBody() string {
	if m.mode == modeColumns {
		return m.boxStyle.Render(m.renderColumnsMenu())
	}

	if m.loading() {
		return m.boxStyle.Render(m.table.View())
	}

	if m.controller.TotalRowCount() == 0 {
		return m.boxStyle.Render(m.palette.ForegroundStyle(theme.ColorTextMuted).Render("No data available"))
	}

	if m.controller.FilteredRowCount() == 0 {
		return m.boxStyle.Render(m.palette.ForegroundStyle(theme.ColorTextMuted).Render("No results found"))
	}

	return m.boxStyle.Render(m.table.View())
}

func (m *Model[T]) renderColumnsMenu() string {
	columns := m.controller.Columns()
	lines := make([]string, 0, len(columns)+1)
	lines = append(lines, m.palette.ForegroundStyle(theme.ColorTextSecondary).Render("Columns (space toggles visibility, s toggles search scope, esc closes)"))

	inScope := make(map[string]bool)
	for _, id := range m.controller.SearchColumns() {
		inScope[id] = true
	}

	for i, col := range columns {
		marker := "[ ]"
		if m.controller.IsColumnVisible(col.ID) {
			marker = "[x]"
		}
		line := fmt.Sprintf("%s %s", marker, col.HeaderLabel())
		if col.Searchable && inScope[col.ID] {
			line += " *"
		}
		if i == m.menuCursor {
			line = m.palette.ForegroundStyle(theme.ColorAccent).Render("> " + line)
		} else {
			line = "  " + line
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

func (m *Model[T]) renderStatusArea() string {
	width := m.windowWidth
	if width <= 0 {
		width = 80
	}
	frameWidth, _ := m.statusStyle.GetFrameSize()
	innerWidth := width - frameWidth
	if innerWidth < 1 {
		innerWidth = 1
	}

	if m.showHelp {
		return m.statusStyle.Render(m.renderHelpContent(innerWidth))
	}

	rows := m.buildStatusRows(innerWidth)
	return m.statusStyle.Render(strings.Join(rows, "\n"))
}

func (m *Model[T]) buildStatusRows(innerWidth int) []string {
	var rows []string

	left := renderSummary(m.controller, m.palette)
	right := faintStyle().Render("Press ? for help")
	rows = append(rows, renderStatusRow(left, right, innerWidth))

	profile := ""
	if m.profileName != "" {
		profile = m.palette.ForegroundStyle(theme.ColorTextSecondary).
			Render(fmt.Sprintf("Profile: %s", m.profileName))
	}

	if m.loading() {
		rows = append(rows, renderStatusRow(m.spinner.View()+" Loading...", profile, innerWidth))
		return rows
	}

	if m.exporting {
		rows = append(rows, renderStatusRow(m.spinner.View()+" Exporting...", profile, innerWidth))
		return rows
	}

	if m.mode == modeSearch {
		prompt := m.palette.ForegroundStyle(theme.ColorAccent).Render("/" + string(m.searchBuffer))
		rows = append(rows, renderStatusRow(prompt, profile, innerWidth))
		return rows
	}

	if msg := strings.TrimSpace(m.statusMessage); msg != "" {
		wrapped := wordwrap.String(msg, innerWidth)
		rows = append(rows, renderStatusRow(faintStyle().Render(wrapped), profile, innerWidth))
		return rows
	}

	if pagination := renderPagination(m.controller, m.palette); pagination != "" {
		rows = append(rows, renderStatusRow(pagination, profile, innerWidth))
		return rows
	}

	if profile != "" {
		rows = append(rows, renderStatusRow("", profile, innerWidth))
	}

	return rows
}

func (m *Model[T]) renderHelpContent(innerWidth int) string {
	helpLines := []string{
		"Up/Down j/k     : move row cursor",
		"Left/Right h/l  : choose sort column",
		"s               : cycle sort asc/desc/off",
		"/<text>         : search (debounced)",
		"f               : filter pickers",
		"v               : columns menu (visibility, search scope)",
		"space / a       : select row / page",
		"c               : copy row id",
		"e               : export filtered rows",
		"n/p             : next/previous page",
		"r               : reset filters",
		"t               : cycle color theme",
		"?               : toggle this help",
		"q               : quit",
	}
	rendered := make([]string, len(helpLines))
	for i, line := range helpLines {
		rendered[i] = padStatusLine(faintStyle().Render(line), innerWidth)
	}
	return strings.Join(rendered, "\n")
}

func renderStatusRow(left, right string, width int) string {
	leftWidth := lipgloss.Width(left)
	rightWidth := lipgloss.Width(right)

	if width < 1 {
		width = leftWidth + rightWidth
		if width < 1 {
			width = 1
		}
	}

	switch {
	case rightWidth == 0 && leftWidth == 0:
		return strings.Repeat(" ", width)
	case rightWidth == 0:
		if leftWidth >= width {
			return left
		}
		return left + strings.Repeat(" ", width-leftWidth)
	case leftWidth == 0:
		if rightWidth >= width {
			return right
		}
		return strings.Repeat(" ", width-rightWidth) + right
	default:
		gap := width - leftWidth - rightWidth
		if gap < 1 {
			gap = 1
		}
		return left + strings.Repeat(" ", gap) + right
	}
}

func padStatusLine(value string, width int) string {
	if width < 1 {
		return value
	}
	lineWidth := lipgloss.Width(value)
	if lineWidth >= width {
		return value
	}
	return value + strings.Repeat(" ", width-lineWidth)
}
