package spreadsheet

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/pontolabs/ponto-backend/internal/domain/record"
	"github.com/pontolabs/ponto-backend/internal/domain/settings"
)

// ReportSheetName is the worksheet the colored report is written to.
const ReportSheetName = "Registros"

var reportHeaders = []string{
	"Nome",
	"Departamento",
	"Localização",
	"Equipamento",
	"Entrada Contratual",
	"Saida Contratual",
	"Data da batida",
	"Entrada",
	"Saída",
	"STATUS ENTRADA",
	"STATUS SAIDA",
}

// BuildReport renders records into a workbook with status-colored cells:
// the actual entry/exit columns and the status text columns are filled
// with the configured color of their status. Dark fills get white text;
// a white fill gets black text and a thin border so the cell stays
// visible. The caller owns closing the returned file.
func BuildReport(records []record.TimeRecord, colors settings.StatusColorMap) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName(f.GetSheetName(0), ReportSheetName); err != nil {
		return nil, fmt.Errorf("rename worksheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"E0E0E0"}},
	})
	if err != nil {
		return nil, fmt.Errorf("header style: %w", err)
	}

	widths := make([]int, len(reportHeaders))
	for i, h := range reportHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(ReportSheetName, cell, h); err != nil {
			return nil, fmt.Errorf("write header: %w", err)
		}
		widths[i] = len([]rune(h))
	}
	lastHeader, _ := excelize.CoordinatesToCellName(len(reportHeaders), 1)
	if err := f.SetCellStyle(ReportSheetName, "A1", lastHeader, headerStyle); err != nil {
		return nil, fmt.Errorf("style header: %w", err)
	}

	statusStyles := make(map[string]int)
	styleFor := func(color string) (int, error) {
		if id, ok := statusStyles[color]; ok {
			return id, nil
		}
		style := &excelize.Style{
			Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{strings.TrimPrefix(color, "#")}},
		}
		switch strings.ToLower(color) {
		case "#ef4444", "#f59e0b":
			style.Font = &excelize.Font{Color: "FFFFFF"}
		case "#ffffff":
			style.Font = &excelize.Font{Color: "000000"}
			style.Border = []excelize.Border{
				{Type: "top", Style: 1, Color: "000000"},
				{Type: "left", Style: 1, Color: "000000"},
				{Type: "bottom", Style: 1, Color: "000000"},
				{Type: "right", Style: 1, Color: "000000"},
			}
		}
		id, err := f.NewStyle(style)
		if err != nil {
			return 0, err
		}
		statusStyles[color] = id
		return id, nil
	}

	colorCell := func(rowIdx, col int, status *record.Status) error {
		if status == nil {
			return nil
		}
		color, ok := colors[*status]
		if !ok {
			return nil
		}
		id, err := styleFor(color)
		if err != nil {
			return err
		}
		cell, _ := excelize.CoordinatesToCellName(col, rowIdx)
		return f.SetCellStyle(ReportSheetName, cell, cell, id)
	}

	for i, rec := range records {
		rowIdx := i + 2
		values := []string{
			rec.Name,
			rec.Department,
			rec.Location,
			rec.Equipment,
			strOrEmpty(rec.ContractualEntry),
			strOrEmpty(rec.ContractualExit),
			rec.PunchDate,
			strOrEmpty(rec.ActualEntry),
			strOrEmpty(rec.ActualExit),
			statusText(rec.EntryStatus),
			statusText(rec.ExitStatus),
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, rowIdx)
			if err := f.SetCellValue(ReportSheetName, cell, v); err != nil {
				return nil, fmt.Errorf("write row %d: %w", rowIdx, err)
			}
			if n := len([]rune(v)); n > widths[col] {
				widths[col] = n
			}
		}

		if rec.ActualEntry != nil {
			if err := colorCell(rowIdx, 8, rec.EntryStatus); err != nil {
				return nil, err
			}
		}
		if rec.ActualExit != nil {
			if err := colorCell(rowIdx, 9, rec.ExitStatus); err != nil {
				return nil, err
			}
		}
		if err := colorCell(rowIdx, 10, rec.EntryStatus); err != nil {
			return nil, err
		}
		if err := colorCell(rowIdx, 11, rec.ExitStatus); err != nil {
			return nil, err
		}
	}

	for i, width := range widths {
		col, _ := excelize.ColumnNumberToName(i + 1)
		w := float64(width + 2)
		if w < 10 {
			w = 10
		}
		if err := f.SetColWidth(ReportSheetName, col, col, w); err != nil {
			return nil, fmt.Errorf("column width: %w", err)
		}
	}

	return f, nil
}

func strOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func statusText(s *record.Status) string {
	if s == nil {
		return ""
	}
	return s.DisplayText()
}
