package grid

import (
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/shopspring/decimal"
)

// Predicate reports whether a row matches a column filter value. Implementations
// must treat an empty filter value as "no filter" and must fail closed: when a
// filter value or row value cannot be interpreted, the row is excluded rather
// than included.
type Predicate[T any] func(row T, filterValue string) bool

// Column describes one column of a grid: how to pull a value out of a row, how
// to label it, and optionally how to filter and render it.
type Column[T any] struct {
	// ID is the stable key for this column, unique within a table. The
	// controller indexes filter and visibility state by it.
	ID string

	// Label is the human readable header text. When empty it is derived
	// from the ID.
	Label string

	// Accessor extracts the display value from a row.
	Accessor func(row T) any

	// Searchable marks the column as a participant in the shared
	// multi-column text search.
	Searchable bool

	// Filter overrides the default case-insensitive substring match.
	Filter Predicate[T]

	// Render overrides the default stringification of the accessor output
	// for cell display.
	Render func(row T) string

	// Hidden makes the column invisible by default.
	Hidden bool
}

// HeaderLabel returns the display label, deriving one from the ID when the
// column does not carry an explicit label.
func (c Column[T]) HeaderLabel() string {
	if strings.TrimSpace(c.Label) != "" {
		return c.Label
	}
	return formatHeader(c.ID)
}

// CellValue resolves the display representation of a cell: the custom renderer
// when present, otherwise the stringified accessor output.
func (c Column[T]) CellValue(row T) string {
	if c.Render != nil {
		return c.Render(row)
	}
	return FormatValue(c.value(row))
}

func (c Column[T]) value(row T) any {
	if c.Accessor == nil {
		return nil
	}
	return c.Accessor(row)
}

func (c Column[T]) matches(row T, filterValue string) bool {
	if c.Filter != nil {
		return c.Filter(row, filterValue)
	}
	return defaultMatch(c.value(row), filterValue)
}

func defaultMatch(value any, filterValue string) bool {
	if filterValue == "" {
		return true
	}
	text := FormatValue(value)
	return strings.Contains(strings.ToLower(text), strings.ToLower(filterValue))
}

// FormatValue renders an accessor output for display and search.
func FormatValue(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case time.Time:
		return v.Format("2006-01-02 15:04")
	case *time.Time:
		if v == nil {
			return ""
		}
		return v.Format("2006-01-02 15:04")
	case decimal.Decimal:
		return v.StringFixed(2)
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprintf("%v", v)
	}
}

// formatHeader converts a camel-cased or dash-separated column ID into an
// upper-cased header label, e.g. "createdAt" -> "CREATED AT".
func formatHeader(id string) string {
	if id == "" {
		return ""
	}

	var words []string
	var current strings.Builder
	runes := []rune(strings.NewReplacer("-", " ", "_", " ").Replace(id))

	for i, r := range runes {
		if unicode.IsSpace(r) {
			words = appendWord(words, current.String())
			current.Reset()
			continue
		}
		if i > 0 && unicode.IsUpper(r) && unicode.IsLower(runes[i-1]) {
			words = appendWord(words, current.String())
			current.Reset()
		}
		current.WriteRune(r)
	}
	words = appendWord(words, current.String())

	return strings.ToUpper(strings.Join(words, " "))
}

func appendWord(words []string, word string) []string {
	if strings.TrimSpace(word) == "" {
		return words
	}
	return append(words, word)
}
