package exporter

import (
	"bytes"
	"carehome-service/internal/pkg/constvars"
	"carehome-service/internal/pkg/dto/responses"
	"carehome-service/internal/pkg/utils"
	"fmt"
	"strings"

	"github.com/jung-kurt/gofpdf"
)

const unicodeFontFamily = "CareUnicode"

// cp1252Fallback maps the Serbian Latin letters missing from cp1252 to their
// closest cp1252 glyphs. Š and Ž exist in cp1252 and pass through.
var cp1252Fallback = strings.NewReplacer(
	"Č", "C", "č", "c",
	"Ć", "C", "ć", "c",
	"Đ", "Ð", "đ", "dj",
)

type pdfExporter struct {
	fontPath string
}

func (pdfExporter) Format() string {
	return constvars.ExportFormatPDF
}

func (pdfExporter) ContentType() string {
	return constvars.MIMEApplicationPDF
}

// Build starts a new page for every year.
func (e pdfExporter) Build(patientID string, years []responses.SpecificationYear) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	family, tr, err := e.fonts(pdf)
	if err != nil {
		return nil, err
	}

	if len(years) == 0 {
		pdf.AddPage()
		pdf.SetFont(family, "B", 14)
		pdf.Cell(0, 8, tr(fmt.Sprintf("Specifications for patient %s", patientID)))
		pdf.Ln(10)
		pdf.SetFont(family, "", 10)
		pdf.Cell(0, 6, "No specifications")
	}

	for _, year := range years {
		pdf.AddPage()
		pdf.SetFont(family, "B", 14)
		pdf.Cell(0, 8, tr(fmt.Sprintf("Specifications %s, patient %s", utils.YearLabel(year.Year), patientID)))
		pdf.Ln(10)

		for _, spec := range year.Specifications {
			pdf.SetFont(family, "B", 10)
			pdf.CellFormat(130, 6, tr(periodLabel(spec.StartDate, spec.EndDate)), "", 0, "L", false, 0, "")
			pdf.CellFormat(50, 6, money(spec.TotalPrice), "", 0, "R", false, 0, "")
			pdf.Ln(7)

			pdf.CellFormat(30, 6, "Category", "1", 0, "C", false, 0, "")
			pdf.CellFormat(100, 6, "Item", "1", 0, "C", false, 0, "")
			pdf.CellFormat(20, 6, "Qty", "1", 0, "C", false, 0, "")
			pdf.CellFormat(30, 6, "Price", "1", 0, "C", false, 0, "")
			pdf.Ln(-1)

			pdf.SetFont(family, "", 9)
			for _, item := range spec.Items {
				pdf.CellFormat(30, 6, tr(item.Category), "1", 0, "L", false, 0, "")
				pdf.CellFormat(100, 6, tr(truncate(item.FormattedName, 70)), "1", 0, "L", false, 0, "")
				pdf.CellFormat(20, 6, item.FormattedQuantity, "1", 0, "R", false, 0, "")
				pdf.CellFormat(30, 6, fmt.Sprintf("%.2f", item.Price), "1", 0, "R", false, 0, "")
				pdf.Ln(-1)
			}
			pdf.Ln(4)
		}
	}

	var buf bytes.Buffer
	err = pdf.Output(&buf)
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// fonts registers the UTF-8 font when one is configured and returns the font
// family with the matching text translator.
func (e pdfExporter) fonts(pdf *gofpdf.Fpdf) (string, func(string) string, error) {
	if e.fontPath == "" {
		core := pdf.UnicodeTranslatorFromDescriptor("")
		return "Arial", func(text string) string {
			return core(cp1252Fallback.Replace(text))
		}, nil
	}

	pdf.AddUTF8Font(unicodeFontFamily, "", e.fontPath)
	pdf.AddUTF8Font(unicodeFontFamily, "B", e.fontPath)
	if err := pdf.Error(); err != nil {
		return "", nil, err
	}
	return unicodeFontFamily, func(text string) string { return text }, nil
}

func truncate(value string, limit int) string {
	runes := []rune(value)
	if len(runes) <= limit {
		return value
	}
	return string(runes[:limit-3]) + "..."
}
