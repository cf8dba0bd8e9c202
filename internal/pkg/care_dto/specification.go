package care_dto

// Specification optional numeric fields are pointers so that an absent
// value can be told apart from an explicit zero.
type Specification struct {
	ID              string              `json:"id"`
	PatientID       string              `json:"patientId"`
	StartDate       string              `json:"startDate"`
	EndDate         *string             `json:"endDate"`
	Items           []SpecificationItem `json:"items"`
	TotalPrice      *float64            `json:"totalPrice"`
	LodgingPrice    *float64            `json:"lodgingPrice"`
	ExtraCostAmount *float64            `json:"extraCostAmount"`
	ExtraCostLabel  *string             `json:"extraCostLabel"`
}

type SpecificationItem struct {
	ID       string                  `json:"id"`
	Type     string                  `json:"type"`
	Name     *string                 `json:"name"`
	Price    *float64                `json:"price"`
	Amount   *float64                `json:"amount"`
	Analyses []SpecificationAnalysis `json:"analyses"`
}

type SpecificationAnalysis struct {
	Name  *string  `json:"name"`
	Price *float64 `json:"price"`
}

type SpecificationHistory struct {
	ActiveSpec *Specification  `json:"activeSpec"`
	History    []Specification `json:"history"`
}

type Period struct {
	StartDate string  `json:"startDate"`
	EndDate   *string `json:"endDate"`
}

type AddCostsPayload struct {
	LodgingPrice    float64 `json:"lodgingPrice"`
	ExtraCostAmount float64 `json:"extraCostAmount"`
	ExtraCostLabel  string  `json:"extraCostLabel"`
}
