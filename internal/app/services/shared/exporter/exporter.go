package exporter

import (
	"carehome-service/internal/app/contracts"
	"carehome-service/internal/pkg/constvars"
	"carehome-service/internal/pkg/exceptions"
	"fmt"
)

type Options struct {
	// PDFFontPath points at a TrueType font with Latin Extended-A glyphs. Without
	// it the PDF falls back to the cp1252 core fonts.
	PDFFontPath string
}

// New returns the exporter registered for format.
func New(format string, opts Options) (contracts.SpecificationExporter, error) {
	switch format {
	case constvars.ExportFormatXLSX:
		return xlsxExporter{}, nil
	case constvars.ExportFormatPDF:
		return pdfExporter{fontPath: opts.PDFFontPath}, nil
	default:
		return nil, exceptions.ErrUnsupportedExportFormat(format)
	}
}

func periodLabel(startDate, endDate string) string {
	if endDate == "" {
		return fmt.Sprintf("%s - open", startDate)
	}
	return fmt.Sprintf("%s - %s", startDate, endDate)
}

func money(amount float64) string {
	return fmt.Sprintf("%.2f %s", amount, constvars.CurrencyRSD)
}
