package grid

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"gopkg.in/yaml.v3"

	"github.com/atlasbank/atlasctl/internal/atlas"
	"github.com/atlasbank/atlasctl/internal/cmd/common"
	"github.com/atlasbank/atlasctl/internal/iostreams"
)

// Run starts the interactive grid program for one screen and blocks until the
// user quits.
func Run[T any](
	ctx context.Context,
	streams *iostreams.IOStreams,
	screen Screen[T],
	source *atlas.Source[T],
	opts ...ViewOption[T],
) error {
	if streams == nil || streams.Out == nil {
		return errors.New("grid: output stream is not available")
	}

	model, err := NewModel(ctx, screen, source, opts...)
	if err != nil {
		return err
	}

	program := tea.NewProgram(model,
		tea.WithInput(streams.In),
		tea.WithOutput(streams.Out),
		tea.WithAltScreen(),
	)

	_, err = program.Run()
	return err
}

// RenderStatic writes the screen's rows in the requested non-interactive
// format: a plain text table, JSON, or YAML.
func RenderStatic[T any](
	streams *iostreams.IOStreams,
	screen Screen[T],
	rows []T,
	outType common.OutputFormat,
) error {
	if streams == nil || streams.Out == nil {
		return errors.New("grid: output stream is not available")
	}

	switch outType {
	case common.TEXT:
		return renderTextTable(streams, screen, rows)
	case common.JSON:
		encoded, err := json.MarshalIndent(rows, "", "  ")
		if err != nil {
			return fmt.Errorf("grid: encoding %s as JSON: %w", screen.Title, err)
		}
		_, err = fmt.Fprintln(streams.Out, string(encoded))
		return err
	case common.YAML:
		encoded, err := marshalYAML(rows)
		if err != nil {
			return fmt.Errorf("grid: encoding %s as YAML: %w", screen.Title, err)
		}
		_, err = fmt.Fprint(streams.Out, encoded)
		return err
	default:
		return fmt.Errorf("grid: unsupported output format %s", outType.String())
	}
}

func renderTextTable[T any](streams *iostreams.IOStreams, screen Screen[T], rows []T) error {
	controller, err := NewController(screen.Columns)
	if err != nil {
		return err
	}
	controller.SetRows(rows)

	visible := controller.VisibleColumns()
	headers := make([]string, len(visible))
	for i, col := range visible {
		headers[i] = col.HeaderLabel()
	}

	if len(rows) == 0 {
		_, err := fmt.Fprintln(streams.Out, "No data available")
		return err
	}

	matrix := make([][]string, 0, len(rows))
	for _, row := range rows {
		record := make([]string, len(visible))
		for i, col := range visible {
			record[i] = col.CellValue(row)
		}
		matrix = append(matrix, record)
	}

	widths, _ := calculateColumnWidths(headers, matrix, 0)

	var builder strings.Builder
	writeRow := func(record []string) {
		cells := make([]string, len(record))
		for i, cell := range record {
			cells[i] = padCell(truncateWithEllipsis(cell, widths[i]), widths[i])
		}
		builder.WriteString(strings.TrimRight(strings.Join(cells, "  "), " "))
		builder.WriteString("\n")
	}

	writeRow(headers)
	for _, record := range matrix {
		writeRow(record)
	}

	_, err = fmt.Fprint(streams.Out, builder.String())
	return err
}

func padCell(value string, width int) string {
	if gap := width - len([]rune(value)); gap > 0 {
		return value + strings.Repeat(" ", gap)
	}
	return value
}

// marshalYAML round-trips through JSON so types with custom JSON encodings
// (decimals, UUIDs, timestamps) serialize as their wire form instead of their
// struct internals.
func marshalYAML(data any) (string, error) {
	encoded, err := json.Marshal(data)
	if err != nil {
		return "", err
	}

	var generic any
	if err := json.Unmarshal(encoded, &generic); err != nil {
		return "", err
	}

	out, err := yaml.Marshal(generic)
	if err != nil {
		return "", err
	}
	return string(out), nil
}
