package spreadsheet

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"
)

// ErrNoWorksheet means the workbook opened fine but carries no sheet.
var ErrNoWorksheet = errors.New("no worksheet found")

// ReadRows parses the first worksheet of an XLSX workbook into rows
// keyed by the header row. Every header column is present in every row
// map, so short rows come through with empty strings rather than
// missing keys. A workbook with only a header row yields zero rows.
func ReadRows(r io.Reader) ([]map[string]string, error) {
	file, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer func() { _ = file.Close() }()

	sheetName := file.GetSheetName(0)
	if sheetName == "" {
		return nil, ErrNoWorksheet
	}

	rows, err := file.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("read worksheet %q: %w", sheetName, err)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	headers := make([]string, len(rows[0]))
	for i, h := range rows[0] {
		headers[i] = strings.TrimSpace(h)
	}

	mapped := make([]map[string]string, 0, len(rows)-1)
	for _, row := range rows[1:] {
		m := make(map[string]string, len(headers))
		for i, header := range headers {
			if header == "" {
				continue
			}
			if i < len(row) {
				m[header] = strings.TrimSpace(row[i])
			} else {
				m[header] = ""
			}
		}
		mapped = append(mapped, m)
	}
	return mapped, nil
}
