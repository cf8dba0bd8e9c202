package exporter

import (
	"bytes"
	"carehome-service/internal/pkg/constvars"
	"carehome-service/internal/pkg/dto/responses"
	"carehome-service/internal/pkg/exceptions"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func sampleYears() []responses.SpecificationYear {
	return []responses.SpecificationYear{
		{
			Year: 2024,
			Specifications: []responses.Specification{{
				ID:         "spec-0",
				StartDate:  "2024-12-20",
				EndDate:    "2025-01-04",
				TotalPrice: 300,
				Items: []responses.DisplayRow{
					{Category: "lodging", FormattedName: "Lodging", FormattedQuantity: "0", Price: 300},
				},
			}},
		},
		{
			Year: 2025,
			Specifications: []responses.Specification{{
				ID:         "spec-1",
				StartDate:  "2025-01-05",
				TotalPrice: 1280,
				Items: []responses.DisplayRow{
					{Category: "medicine", FormattedName: "Paracetamol", FormattedQuantity: "4", Price: 480},
					{Category: "combination", FormattedName: "  CBC (500.00 RSD), CRP (300.00 RSD)", FormattedQuantity: "1", Price: 800},
				},
			}},
		},
	}
}

func TestNew(t *testing.T) {
	t.Run("Known formats", func(t *testing.T) {
		xlsx, err := New(constvars.ExportFormatXLSX, Options{})
		require.NoError(t, err)
		assert.Equal(t, constvars.MIMEApplicationXLSX, xlsx.ContentType())

		pdf, err := New(constvars.ExportFormatPDF, Options{PDFFontPath: "/fonts/DejaVuSans.ttf"})
		require.NoError(t, err)
		assert.Equal(t, constvars.MIMEApplicationPDF, pdf.ContentType())
		assert.Equal(t, "/fonts/DejaVuSans.ttf", pdf.(pdfExporter).fontPath)
	})

	t.Run("Unknown format is a bad request", func(t *testing.T) {
		_, err := New("csv", Options{})
		assert.Equal(t, constvars.StatusBadRequest, exceptions.StatusCodeOf(err))
	})
}

func TestXLSXExporter_Build(t *testing.T) {
	t.Run("One sheet per year with the display rows", func(t *testing.T) {
		content, err := xlsxExporter{}.Build("patient-1", sampleYears())
		require.NoError(t, err)

		f, err := excelize.OpenReader(bytes.NewReader(content))
		require.NoError(t, err)
		defer f.Close()

		assert.Equal(t, []string{"2024", "2025"}, f.GetSheetList())

		period, err := f.GetCellValue("2025", "A3")
		require.NoError(t, err)
		assert.Equal(t, "2025-01-05 - open", period)

		name, err := f.GetCellValue("2025", "B5")
		require.NoError(t, err)
		assert.Equal(t, "Paracetamol", name)

		quantity, err := f.GetCellValue("2025", "C6")
		require.NoError(t, err)
		assert.Equal(t, "1", quantity)
	})

	t.Run("Unknown year gets its own sheet", func(t *testing.T) {
		years := append(sampleYears(), responses.SpecificationYear{
			Year:           constvars.UnknownYear,
			Specifications: []responses.Specification{{ID: "spec-x", StartDate: "n/a"}},
		})

		content, err := xlsxExporter{}.Build("patient-1", years)
		require.NoError(t, err)

		f, err := excelize.OpenReader(bytes.NewReader(content))
		require.NoError(t, err)
		defer f.Close()

		assert.Equal(t, []string{"2024", "2025", constvars.UnknownYearLabel}, f.GetSheetList())
	})

	t.Run("Empty history still builds a workbook", func(t *testing.T) {
		content, err := xlsxExporter{}.Build("patient-1", nil)
		require.NoError(t, err)
		assert.NotEmpty(t, content)
	})
}

func TestPDFExporter_Build(t *testing.T) {
	t.Run("Builds a PDF document", func(t *testing.T) {
		content, err := pdfExporter{}.Build("patient-1", sampleYears())
		require.NoError(t, err)
		assert.True(t, bytes.HasPrefix(content, []byte("%PDF")))
	})

	t.Run("Empty history still builds a document", func(t *testing.T) {
		content, err := pdfExporter{}.Build("patient-1", nil)
		require.NoError(t, err)
		assert.True(t, bytes.HasPrefix(content, []byte("%PDF")))
	})
}

func TestPDFExporter_Fonts(t *testing.T) {
	t.Run("Core font keeps Serbian names readable", func(t *testing.T) {
		assert.Equal(t, "Cacak Ðordjevic Šabac Žabalj", cp1252Fallback.Replace("Čačak Đorđević Šabac Žabalj"))

		content, err := pdfExporter{}.Build("patient-1", []responses.SpecificationYear{{
			Year: 2025,
			Specifications: []responses.Specification{{
				StartDate: "2025-01-05",
				Items:     []responses.DisplayRow{{Category: "medicine", FormattedName: "Ćuprija Čaj", FormattedQuantity: "1"}},
			}},
		}})
		require.NoError(t, err)
		assert.True(t, bytes.HasPrefix(content, []byte("%PDF")))
	})

	t.Run("Missing font file fails the build", func(t *testing.T) {
		_, err := pdfExporter{fontPath: "/does/not/exist.ttf"}.Build("patient-1", sampleYears())
		assert.Error(t, err)
	})
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "abcdefg...", truncate("abcdefghijklmnop", 10))
}
