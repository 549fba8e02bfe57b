package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
	"survey-cruncher-go/internal/types"
)

// Load reads a wide respondent table from a .csv or .xlsx file. The
// first row is the header; data rows become header-keyed maps. Cells
// past the header width are dropped, short rows simply lack those keys.
func Load(path string) (types.Table, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return loadCSV(path)
	default:
		return loadExcel(path)
	}
}

func loadCSV(path string) (types.Table, error) {
	file, err := os.Open(path)
	if err != nil {
		return types.Table{}, fmt.Errorf("open file: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1
	header, err := reader.Read()
	if err != nil {
		return types.Table{}, fmt.Errorf("read header: %w", err)
	}
	tbl := types.Table{Columns: header}
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return types.Table{}, fmt.Errorf("read row: %w", err)
		}
		tbl.Rows = append(tbl.Rows, rowMap(header, record))
	}
	return tbl, nil
}

func loadExcel(path string) (types.Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return types.Table{}, fmt.Errorf("open file: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return types.Table{}, fmt.Errorf("no sheets")
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return types.Table{}, fmt.Errorf("read rows: %w", err)
	}
	if len(rows) == 0 {
		return types.Table{}, fmt.Errorf("no header row")
	}
	header := rows[0]
	tbl := types.Table{Columns: header}
	for _, r := range rows[1:] {
		tbl.Rows = append(tbl.Rows, rowMap(header, r))
	}
	return tbl, nil
}

func rowMap(header, record []string) map[string]string {
	row := make(map[string]string, len(header))
	for i, h := range header {
		if i < len(record) {
			row[h] = record[i]
		}
	}
	return row
}
