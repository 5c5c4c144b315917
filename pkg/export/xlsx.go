package export

import (
	"fmt"
	"io"
	"strconv"

	"github.com/xuri/excelize/v2"
)

// Columns stored as numbers rather than text.
var numericColumns = map[string]bool{
	"efficiency_percent": true,
	"occupancy_percent":  true,
	"sections":           true,
	"rooms_used":         true,
}

// WriteXLSX writes a workbook with one sheet per table.
func WriteXLSX(w io.Writer, tables []Table) error {
	f := excelize.NewFile()
	defer f.Close()

	headerStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("header style: %w", err)
	}
	for i, t := range tables {
		index, err := f.NewSheet(t.Name)
		if err != nil {
			return fmt.Errorf("create sheet %s: %w", t.Name, err)
		}
		if i == 0 {
			f.SetActiveSheet(index)
		}
		header := make([]any, len(t.Header))
		for j, h := range t.Header {
			header[j] = h
		}
		if err := f.SetSheetRow(t.Name, "A1", &header); err != nil {
			return err
		}
		last, err := excelize.CoordinatesToCellName(len(t.Header), 1)
		if err != nil {
			return err
		}
		if err := f.SetCellStyle(t.Name, "A1", last, headerStyle); err != nil {
			return err
		}
		for r, row := range t.Rows {
			cells := make([]any, len(row))
			for j, v := range row {
				cells[j] = v
				if j < len(t.Header) && numericColumns[t.Header[j]] {
					cells[j] = cellValue(v)
				}
			}
			cell, err := excelize.CoordinatesToCellName(1, r+2)
			if err != nil {
				return err
			}
			if err := f.SetSheetRow(t.Name, cell, &cells); err != nil {
				return err
			}
		}
	}
	if len(tables) > 0 {
		if err := f.DeleteSheet("Sheet1"); err != nil {
			return err
		}
	}
	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

func cellValue(s string) any {
	if v, err := strconv.ParseFloat(s, 64); err == nil {
		return v
	}
	return s
}
