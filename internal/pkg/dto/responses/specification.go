package responses

// DisplayRow is derived from a line item on every read and never sent back
// to the care backend.
type DisplayRow struct {
	ID                string  `json:"id"`
	Category          string  `json:"category"`
	FormattedName     string  `json:"formattedName"`
	FormattedQuantity string  `json:"formattedQuantity"`
	Price             float64 `json:"price"`
}

type Specification struct {
	ID         string       `json:"id"`
	PatientID  string       `json:"patientId"`
	StartDate  string       `json:"startDate"`
	EndDate    string       `json:"endDate"`
	Items      []DisplayRow `json:"items"`
	TotalPrice float64      `json:"totalPrice"`
}

type SpecificationDetail struct {
	Specification
	LodgingPrice    float64 `json:"lodgingPrice"`
	ExtraCostAmount float64 `json:"extraCostAmount"`
	ExtraCostLabel  string  `json:"extraCostLabel"`
}

type SpecificationHistory struct {
	ActiveSpec *Specification  `json:"activeSpec"`
	History    []Specification `json:"history"`
}

type Period struct {
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}

type PeriodGroup struct {
	Year    int      `json:"year"`
	Periods []Period `json:"periods"`
}

// SpecificationYear holds the specifications whose period starts in Year.
type SpecificationYear struct {
	Year           int             `json:"year"`
	Specifications []Specification `json:"specifications"`
}

type ExportFile struct {
	FileName    string `json:"fileName"`
	ContentType string `json:"contentType"`
	Content     []byte `json:"-"`
}

type StoredExport struct {
	ObjectName string `json:"objectName"`
	URL        string `json:"url"`
	ExpiresAt  string `json:"expiresAt"`
}
