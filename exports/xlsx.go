package exports

import (
	"bytes"
	"strconv"

	"github.com/360EntSecGroup-Skylar/excelize"
)

// XLSX renders a table as a single-sheet Excel workbook
func XLSX(t Table) ([]byte, error) {
	f := excelize.NewFile()
	sheet := "Sheet1"

	for col, header := range t.Headers {
		f.SetCellValue(sheet, excelize.ToAlphaString(col)+"1", header)
	}
	for i, row := range t.Rows {
		for col, value := range row {
			f.SetCellValue(sheet, excelize.ToAlphaString(col)+strconv.Itoa(i+2), value)
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
