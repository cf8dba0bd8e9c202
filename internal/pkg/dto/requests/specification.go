package requests

type AddCosts struct {
	PatientID       string  `json:"-"`
	SpecificationID string  `json:"-"`
	LodgingPrice    float64 `json:"lodgingPrice" validate:"gte=0"`
	ExtraCostAmount float64 `json:"extraCostAmount" validate:"gte=0"`
	ExtraCostLabel  string  `json:"extraCostLabel" validate:"required_with=ExtraCostAmount,max=150"`
}

type ExportSpecifications struct {
	PatientID string `json:"-"`
	Format    string `json:"format" validate:"required,oneof=xlsx pdf"`
}
