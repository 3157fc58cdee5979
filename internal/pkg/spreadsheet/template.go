package spreadsheet

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// TemplateSheetName is the worksheet of the downloadable import model.
const TemplateSheetName = "Novo Modelo"

// templateColumns reproduces the full punch-clock export layout, in
// column order, with one example row showing the expected formats.
var templateColumns = []struct {
	Header string
	Sample string
}{
	{"Nome", "Exemplo Usuário"},
	{"Matrícula", "12345"},
	{"Pis", "12345678901"},
	{"CPF", "123.456.789-00"},
	{"Código Interno", "INT001"},
	{"Data de Admissão", "01/01/2023"},
	{"Data de Nascimento", "15/05/1990"},
	{"Cargo", "Analista"},
	{"Departamento", "TI"},
	{"Filial", "Matriz"},
	{"Regime de trabalho", "CLT"},
	{"Centro de Custo", "001"},
	{"Localização", "Sede"},
	{"Equipamento da Última Batida", "REP001"},
	{"centro_custo_desc", "Tecnologia da Informação"},
	{"Data de Demissão", ""},
	{"Data Lógica", "21/07/2025"},
	{"Data da Batida", "21/07/2025"},
	{"Tipo da Batida", "Normal"},
	{"Latitude", "-23.550520"},
	{"Longitude", "-46.633308"},
	{"Precisão", "10"},
	{"Escala/Jornala", "Padrão"},
	{"Horário contratual", "08:00 - 12:00 - 13:00 - 17:00"},
	{"Data e Hora da Batida 1", "21/07/2025 08:02"},
	{"Data e Hora da Batida 2", "21/07/2025 12:00"},
	{"Data e Hora da Batida 3", "21/07/2025 13:00"},
	{"Data e Hora da Batida 4", "21/07/2025 17:05"},
	{"Data e Hora da Batida 5", ""},
}

// BuildTemplate produces the import model workbook: the header row of
// the punch-clock layout plus one example row.
func BuildTemplate() (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName(f.GetSheetName(0), TemplateSheetName); err != nil {
		return nil, fmt.Errorf("rename worksheet: %w", err)
	}

	for i, col := range templateColumns {
		headerCell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(TemplateSheetName, headerCell, col.Header); err != nil {
			return nil, fmt.Errorf("write header: %w", err)
		}
		sampleCell, _ := excelize.CoordinatesToCellName(i+1, 2)
		if err := f.SetCellValue(TemplateSheetName, sampleCell, col.Sample); err != nil {
			return nil, fmt.Errorf("write sample row: %w", err)
		}
	}

	return f, nil
}
