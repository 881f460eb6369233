package grid

import (
	"github.com/atlasbank/atlasctl/internal/grid/export"
)

// BuildSheet projects the controller's visible columns across every filtered
// row, not just the current page, into an export sheet. Records are keyed by
// header label in visible-column order.
func BuildSheet[T any](c *Controller[T]) export.Sheet {
	columns := c.VisibleColumns()

	headers := make([]string, len(columns))
	for i, col := range columns {
		headers[i] = col.HeaderLabel()
	}

	rows := c.FilteredRows()
	records := make([]map[string]string, 0, len(rows))
	for _, row := range rows {
		record := make(map[string]string, len(columns))
		for i, col := range columns {
			record[headers[i]] = col.CellValue(row)
		}
		records = append(records, record)
	}

	return export.Sheet{
		Headers: headers,
		Records: records,
	}
}
