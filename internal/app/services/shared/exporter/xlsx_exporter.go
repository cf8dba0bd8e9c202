package exporter

import (
	"bytes"
	"carehome-service/internal/pkg/constvars"
	"carehome-service/internal/pkg/dto/responses"
	"carehome-service/internal/pkg/utils"

	"github.com/xuri/excelize/v2"
)

type xlsxExporter struct{}

func (xlsxExporter) Format() string {
	return constvars.ExportFormatXLSX
}

func (xlsxExporter) ContentType() string {
	return constvars.MIMEApplicationXLSX
}

// Build writes one sheet per year. Each specification is a header line with its
// period and total followed by its display rows.
func (xlsxExporter) Build(patientID string, years []responses.SpecificationYear) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if len(years) == 0 {
		_ = f.SetCellValue("Sheet1", "A1", "Patient")
		_ = f.SetCellValue("Sheet1", "B1", patientID)
		_ = f.SetCellValue("Sheet1", "A3", "No specifications")
		return writeWorkbook(f)
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, err
	}

	for i, year := range years {
		sheet := utils.YearLabel(year.Year)
		if i == 0 {
			if err := f.SetSheetName("Sheet1", sheet); err != nil {
				return nil, err
			}
		} else if _, err := f.NewSheet(sheet); err != nil {
			return nil, err
		}

		_ = f.SetCellValue(sheet, "A1", "Patient")
		_ = f.SetCellValue(sheet, "B1", patientID)
		_ = f.SetColWidth(sheet, "A", "A", 14)
		_ = f.SetColWidth(sheet, "B", "B", 60)
		_ = f.SetColWidth(sheet, "C", "D", 14)

		row := 3
		for _, spec := range year.Specifications {
			start, _ := excelize.CoordinatesToCellName(1, row)
			end, _ := excelize.CoordinatesToCellName(4, row)
			_ = f.SetCellValue(sheet, start, periodLabel(spec.StartDate, spec.EndDate))
			_ = f.SetCellValue(sheet, end, spec.TotalPrice)
			_ = f.SetCellStyle(sheet, start, end, bold)
			row++

			_ = f.SetSheetRow(sheet, cell(1, row), &[]interface{}{"Category", "Item", "Quantity", "Price"})
			row++
			for _, item := range spec.Items {
				_ = f.SetSheetRow(sheet, cell(1, row), &[]interface{}{item.Category, item.FormattedName, item.FormattedQuantity, item.Price})
				row++
			}
			row++
		}
	}

	return writeWorkbook(f)
}

func cell(col, row int) string {
	name, _ := excelize.CoordinatesToCellName(col, row)
	return name
}

func writeWorkbook(f *excelize.File) ([]byte, error) {
	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
