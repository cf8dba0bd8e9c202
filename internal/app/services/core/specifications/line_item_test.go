package specifications

import (
	"carehome-service/internal/pkg/care_dto"
	"carehome-service/internal/pkg/constvars"
	"testing"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func floatPtr(f float64) *float64 { return &f }

func TestFormatLineItem(t *testing.T) {
	t.Run("Medicine keeps name and amount", func(t *testing.T) {
		row := FormatLineItem(NewLineItem(care_dto.SpecificationItem{
			ID:     "m1",
			Type:   "medicine",
			Name:   strPtr("Paracetamol"),
			Amount: floatPtr(4),
			Price:  floatPtr(120),
		}))

		assert.Equal(t, "Paracetamol", row.FormattedName)
		assert.Equal(t, "4", row.FormattedQuantity)
		assert.Equal(t, constvars.ItemTypeMedicine, row.Category)
		assert.Equal(t, 120.0, row.Price)
	})

	t.Run("Combination without name lists analyses", func(t *testing.T) {
		row := FormatLineItem(NewLineItem(care_dto.SpecificationItem{
			ID:   "c1",
			Type: "combination",
			Analyses: []care_dto.SpecificationAnalysis{
				{Name: strPtr("CBC"), Price: floatPtr(500)},
				{Name: strPtr("CRP"), Price: floatPtr(300)},
			},
		}))

		assert.Equal(t, "  CBC (500.00 RSD), CRP (300.00 RSD)", row.FormattedName)
		assert.Equal(t, "1", row.FormattedQuantity)
	})

	t.Run("Combination analysis without name gets placeholder", func(t *testing.T) {
		row := FormatLineItem(CombinationItem{
			Name:     "Panel",
			Analyses: []AnalysisLine{{Price: 10}},
		})

		assert.Equal(t, "Panel  Unknown analysis (10.00 RSD)", row.FormattedName)
	})

	t.Run("Lodging and extra show the stored amount", func(t *testing.T) {
		lodging := FormatLineItem(NewLineItem(care_dto.SpecificationItem{Type: "lodging", Price: floatPtr(1000), Amount: floatPtr(30)}))
		extra := FormatLineItem(NewLineItem(care_dto.SpecificationItem{Type: "extra", Name: strPtr("Laundry"), Price: floatPtr(200), Amount: floatPtr(30)}))

		assert.Equal(t, constvars.PlaceholderLodging, lodging.FormattedName)
		assert.Equal(t, "30", lodging.FormattedQuantity)
		assert.Equal(t, "Laundry", extra.FormattedName)
		assert.Equal(t, "30", extra.FormattedQuantity)
	})

	t.Run("Lodging and extra without amount show zero", func(t *testing.T) {
		lodging := FormatLineItem(NewLineItem(care_dto.SpecificationItem{Type: "lodging", Price: floatPtr(1000)}))
		extra := FormatLineItem(NewLineItem(care_dto.SpecificationItem{Type: "extra", Price: floatPtr(200)}))

		assert.Equal(t, "0", lodging.FormattedQuantity)
		assert.Equal(t, "0", extra.FormattedQuantity)
	})

	t.Run("Type tag is matched case insensitively", func(t *testing.T) {
		item := NewLineItem(care_dto.SpecificationItem{Type: "ARTICLE", Name: strPtr("Gloves"), Amount: floatPtr(2.5)})

		assert.IsType(t, ArticleItem{}, item)
		assert.Equal(t, "2.5", FormatLineItem(item).FormattedQuantity)
	})

	t.Run("Every row has name and quantity", func(t *testing.T) {
		items := []care_dto.SpecificationItem{
			{Type: "medicine"},
			{Type: "combination"},
			{Type: "article", Name: strPtr("   ")},
			{Type: "lodging"},
			{Type: "extra"},
			{Type: "transport"},
			{},
		}

		rows := FormatItems(items)

		assert.Len(t, rows, len(items))
		for i, row := range rows {
			assert.NotEmpty(t, row.FormattedName, "row %d has an empty name", i)
			assert.NotEmpty(t, row.FormattedQuantity, "row %d has an empty quantity", i)
		}
		assert.Equal(t, constvars.PlaceholderUnknownMedicine, rows[0].FormattedName)
		assert.Equal(t, "0", rows[0].FormattedQuantity)
		assert.Equal(t, constvars.PlaceholderUnknownArticle, rows[2].FormattedName)
		assert.Equal(t, constvars.ItemTypeUnknown, rows[5].Category)
		assert.Equal(t, constvars.PlaceholderUnknownItem, rows[6].FormattedName)
	})
}
