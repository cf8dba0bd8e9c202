package specifications

import (
	"carehome-service/internal/pkg/care_dto"
	"carehome-service/internal/pkg/constvars"
	"carehome-service/internal/pkg/dto/responses"
	"fmt"
	"strconv"
	"strings"
)

// LineItem is one billed entry of a specification. The set of implementations is
// closed; FormatLineItem switches over all of them.
type LineItem interface {
	lineItem()
}

type MedicineItem struct {
	ID     string
	Name   string
	Price  float64
	Amount float64
}

type CombinationItem struct {
	ID       string
	Name     string
	Price    float64
	Analyses []AnalysisLine
}

type AnalysisLine struct {
	Name  string
	Price float64
}

type ArticleItem struct {
	ID     string
	Name   string
	Price  float64
	Amount float64
}

type LodgingItem struct {
	ID     string
	Name   string
	Price  float64
	Amount float64
}

type ExtraItem struct {
	ID     string
	Name   string
	Price  float64
	Amount float64
}

// UnknownItem keeps entries with a type tag this service does not know yet.
type UnknownItem struct {
	ID     string
	Type   string
	Name   string
	Price  float64
	Amount float64
}

func (MedicineItem) lineItem() {}
func (CombinationItem) lineItem() {}
func (ArticleItem) lineItem() {}
func (LodgingItem) lineItem() {}
func (ExtraItem) lineItem() {}
func (UnknownItem) lineItem() {}

// NewLineItem decodes a backend item into its variant, defaulting absent values.
func NewLineItem(item care_dto.SpecificationItem) LineItem {
	name := stringOrEmpty(item.Name)
	price := floatOrZero(item.Price)
	amount := floatOrZero(item.Amount)

	switch strings.ToLower(item.Type) {
	case constvars.ItemTypeMedicine:
		return MedicineItem{ID: item.ID, Name: name, Price: price, Amount: amount}
	case constvars.ItemTypeCombination:
		analyses := make([]AnalysisLine, 0, len(item.Analyses))
		for _, analysis := range item.Analyses {
			analyses = append(analyses, AnalysisLine{
				Name:  stringOrEmpty(analysis.Name),
				Price: floatOrZero(analysis.Price),
			})
		}
		return CombinationItem{ID: item.ID, Name: name, Price: price, Analyses: analyses}
	case constvars.ItemTypeArticle:
		return ArticleItem{ID: item.ID, Name: name, Price: price, Amount: amount}
	case constvars.ItemTypeLodging:
		return LodgingItem{ID: item.ID, Name: name, Price: price, Amount: amount}
	case constvars.ItemTypeExtra:
		return ExtraItem{ID: item.ID, Name: name, Price: price, Amount: amount}
	default:
		return UnknownItem{ID: item.ID, Type: item.Type, Name: name, Price: price, Amount: amount}
	}
}

// FormatLineItem derives the display row of an item. FormattedName and
// FormattedQuantity are never empty.
func FormatLineItem(item LineItem) responses.DisplayRow {
	switch v := item.(type) {
	case MedicineItem:
		return responses.DisplayRow{
			ID:                v.ID,
			Category:          constvars.ItemTypeMedicine,
			FormattedName:     nameOr(v.Name, constvars.PlaceholderUnknownMedicine),
			FormattedQuantity: formatQuantity(v.Amount),
			Price:             v.Price,
		}
	case CombinationItem:
		return responses.DisplayRow{
			ID:                v.ID,
			Category:          constvars.ItemTypeCombination,
			FormattedName:     formatCombinationName(v),
			FormattedQuantity: constvars.CombinationQuantity,
			Price:             v.Price,
		}
	case ArticleItem:
		return responses.DisplayRow{
			ID:                v.ID,
			Category:          constvars.ItemTypeArticle,
			FormattedName:     nameOr(v.Name, constvars.PlaceholderUnknownArticle),
			FormattedQuantity: formatQuantity(v.Amount),
			Price:             v.Price,
		}
	case LodgingItem:
		return responses.DisplayRow{
			ID:                v.ID,
			Category:          constvars.ItemTypeLodging,
			FormattedName:     nameOr(v.Name, constvars.PlaceholderLodging),
			FormattedQuantity: formatQuantity(v.Amount),
			Price:             v.Price,
		}
	case ExtraItem:
		return responses.DisplayRow{
			ID:                v.ID,
			Category:          constvars.ItemTypeExtra,
			FormattedName:     nameOr(v.Name, constvars.PlaceholderExtraCost),
			FormattedQuantity: formatQuantity(v.Amount),
			Price:             v.Price,
		}
	case UnknownItem:
		return responses.DisplayRow{
			ID:                v.ID,
			Category:          constvars.ItemTypeUnknown,
			FormattedName:     nameOr(v.Name, constvars.PlaceholderUnknownItem),
			FormattedQuantity: formatQuantity(v.Amount),
			Price:             v.Price,
		}
	default:
		panic(fmt.Sprintf("specifications: unhandled line item %T", item))
	}
}

// FormatItems formats backend items in their original order.
func FormatItems(items []care_dto.SpecificationItem) []responses.DisplayRow {
	rows := make([]responses.DisplayRow, 0, len(items))
	for _, item := range items {
		rows = append(rows, FormatLineItem(NewLineItem(item)))
	}
	return rows
}

// formatCombinationName renders "<name>  <a1> (<p1> RSD), <a2> (<p2> RSD)".
// The two spaces stay even when the combination has no name.
func formatCombinationName(item CombinationItem) string {
	parts := make([]string, 0, len(item.Analyses))
	for _, analysis := range item.Analyses {
		parts = append(parts, fmt.Sprintf("%s (%.2f %s)",
			nameOr(analysis.Name, constvars.PlaceholderUnknownAnalysis),
			analysis.Price,
			constvars.CurrencyRSD,
		))
	}
	return item.Name + "  " + strings.Join(parts, ", ")
}

func formatQuantity(amount float64) string {
	return strconv.FormatFloat(amount, 'f', -1, 64)
}

func nameOr(name, placeholder string) string {
	if strings.TrimSpace(name) == "" {
		return placeholder
	}
	return name
}

func stringOrEmpty(value *string) string {
	if value == nil {
		return ""
	}
	return *value
}

func floatOrZero(value *float64) float64 {
	if value == nil {
		return 0
	}
	return *value
}
