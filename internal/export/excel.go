package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"
	"survey-cruncher-go/internal/types"
)

// SheetName matches the sheet the download is expected to carry.
const SheetName = "Survey Results"

// Bytes serializes the report to an .xlsx workbook with a single
// "Survey Results" sheet: a header row, the base-size row, then one row
// per (question, answer) with the display-blanked question labels.
func Bytes(rep types.Report) ([]byte, error) {
	f, err := build(rep)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

// Write saves the report workbook to disk.
func Write(rep types.Report, path string) error {
	f, err := build(rep)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save workbook: %w", err)
	}
	return nil
}

func build(rep types.Report) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		f.Close()
		return nil, fmt.Errorf("rename sheet: %w", err)
	}

	header := append([]string{"Question", "Answer"}, rep.ValueColumns...)
	for c, name := range header {
		if err := setCell(f, c+1, 1, name); err != nil {
			f.Close()
			return nil, err
		}
	}
	for r, row := range rep.Rows {
		if err := setCell(f, 1, r+2, row.Question); err != nil {
			f.Close()
			return nil, err
		}
		if err := setCell(f, 2, r+2, row.Answer); err != nil {
			f.Close()
			return nil, err
		}
		for c, v := range row.Cells {
			if err := setCell(f, c+3, r+2, v); err != nil {
				f.Close()
				return nil, err
			}
		}
	}
	return f, nil
}

func setCell(f *excelize.File, col, row int, value interface{}) error {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return fmt.Errorf("cell name: %w", err)
	}
	if err := f.SetCellValue(SheetName, cell, value); err != nil {
		return fmt.Errorf("set cell %s: %w", cell, err)
	}
	return nil
}
