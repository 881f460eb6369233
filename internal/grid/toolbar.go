package grid

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/atlasbank/atlasctl/internal/theme"
)

// FilterOption is one entry in an enumerated filter picker. An empty Value
// clears the column filter; the conventional first option is {"", "All"}.
type FilterOption struct {
	Value string
	Label string
}

// FilterGroup describes one enumerated value picker in the toolbar, bound to a
// column by ID.
type FilterGroup struct {
	ColumnID string
	Label    string
	Options  []FilterOption
}

// optionIndex returns the position of the option whose value matches the
// active filter, defaulting to the first option.
func (g FilterGroup) optionIndex(activeValue string) int {
	for i, opt := range g.Options {
		if opt.Value == activeValue {
			return i
		}
	}
	return 0
}

// AllOption is the conventional picker entry that clears a column filter.
func AllOption() FilterOption {
	return FilterOption{Value: "", Label: "All"}
}

// DateBucketOptions returns the relative-date picker entries every dated
// screen shares.
func DateBucketOptions() []FilterOption {
	return []FilterOption{
		AllOption(),
		{Value: BucketToday, Label: "Today"},
		{Value: BucketYesterday, Label: "Yesterday"},
		{Value: BucketWeek, Label: "This week"},
		{Value: BucketMonth, Label: "This month"},
	}
}

// AmountRangeOptions returns the amount picker entries the transaction screen
// uses.
func AmountRangeOptions() []FilterOption {
	return []FilterOption{
		AllOption(),
		{Value: "0-100", Label: "0 - 100"},
		{Value: "100-1000", Label: "100 - 1,000"},
		{Value: "1000-", Label: "1,000+"},
	}
}

// toolbar renders the state summary line above the table: search term, active
// filter pickers, and the focused picker when the filter menu is open.
type toolbar[T any] struct {
	groups  []FilterGroup
	focused int
}

func newToolbar[T any](groups []FilterGroup) toolbar[T] {
	return toolbar[T]{groups: append([]FilterGroup(nil), groups...)}
}

func (t *toolbar[T]) focusNext() {
	if len(t.groups) == 0 {
		return
	}
	t.focused = (t.focused + 1) % len(t.groups)
}

func (t *toolbar[T]) focusPrev() {
	if len(t.groups) == 0 {
		return
	}
	t.focused = (t.focused - 1 + len(t.groups)) % len(t.groups)
}

func (t *toolbar[T]) focusedGroup() (FilterGroup, bool) {
	if t.focused < 0 || t.focused >= len(t.groups) {
		return FilterGroup{}, false
	}
	return t.groups[t.focused], true
}

// cycleOption advances the focused picker to its next option and returns the
// column ID and new value to apply. Wrapping past the last option lands back
// on the clearing option.
func (t *toolbar[T]) cycleOption(c *Controller[T], step int) (string, string, bool) {
	group, ok := t.focusedGroup()
	if !ok || len(group.Options) == 0 {
		return "", "", false
	}

	current := group.optionIndex(c.ColumnFilter(group.ColumnID))
	next := (current + step + len(group.Options)) % len(group.Options)
	return group.ColumnID, group.Options[next].Value, true
}

func (t *toolbar[T]) render(c *Controller[T], palette theme.Palette, filterMode bool, width int) string {
	if len(t.groups) == 0 {
		return ""
	}

	labelStyle := palette.ForegroundStyle(theme.ColorTextSecondary)
	valueStyle := palette.ForegroundStyle(theme.ColorTextPrimary)
	activeStyle := palette.ForegroundStyle(theme.ColorAccent)

	parts := make([]string, 0, len(t.groups))
	for i, group := range t.groups {
		option := group.Options[group.optionIndex(c.ColumnFilter(group.ColumnID))]

		label := labelStyle.Render(group.Label + ":")
		value := valueStyle.Render(option.Label)
		if c.ColumnFilter(group.ColumnID) != "" {
			value = activeStyle.Render(option.Label)
		}

		part := label + " " + value
		if filterMode && i == t.focused {
			part = activeStyle.Render("[") + part + activeStyle.Render("]")
		}
		parts = append(parts, part)
	}

	line := strings.Join(parts, "  ")
	if width > 0 {
		line = ansi.Truncate(line, width, "…")
	}
	return line
}

// renderSummary produces the "Showing X of Y" row-count line.
func renderSummary[T any](c *Controller[T], palette theme.Palette) string {
	filtered := c.FilteredRowCount()
	total := c.TotalRowCount()

	text := fmt.Sprintf("%d rows", total)
	if filtered != total {
		text = fmt.Sprintf("Showing %d of %d rows", filtered, total)
	}
	if selected := len(c.SelectedRowIDs()); selected > 0 {
		text += fmt.Sprintf(" · %d selected", selected)
	}
	return palette.ForegroundStyle(theme.ColorTextMuted).Render(text)
}

// renderPagination produces the "Page X of Y" footer, shown only when the
// filtered set spans more than one page.
func renderPagination[T any](c *Controller[T], palette theme.Palette) string {
	count := c.PageCount()
	if count <= 1 {
		return ""
	}
	return palette.ForegroundStyle(theme.ColorTextSecondary).
		Render(fmt.Sprintf("Page %d of %d", c.Page(), count))
}

func faintStyle() lipgloss.Style {
	return lipgloss.NewStyle().Faint(true)
}
