package export

import (
	"github.com/xuri/excelize/v2"
)

const worksheetName = "Sheet1"

type xlsxWriter struct{}

func newXLSXWriter() Writer {
	return xlsxWriter{}
}

func (xlsxWriter) Write(sheet Sheet, path string) error {
	file := excelize.NewFile()
	defer func() {
		_ = file.Close()
	}()

	header := make([]any, len(sheet.Headers))
	for i, label := range sheet.Headers {
		header[i] = label
	}
	if err := file.SetSheetRow(worksheetName, "A1", &header); err != nil {
		return err
	}

	for i, record := range sheet.Records {
		row := make([]any, len(sheet.Headers))
		for j, label := range sheet.Headers {
			row[j] = record[label]
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := file.SetSheetRow(worksheetName, cell, &row); err != nil {
			return err
		}
	}

	return file.SaveAs(path)
}
