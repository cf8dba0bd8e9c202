package care_dto

// InventoryItem is the shared wire shape of medicines and articles.
type InventoryItem struct {
	ID              string  `json:"id,omitempty"`
	PatientID       string  `json:"patientId"`
	Name            string  `json:"name"`
	Price           float64 `json:"price"`
	Quantity        int     `json:"quantity"`
	Packages        int     `json:"packages"`
	UnitsPerPackage int     `json:"unitsPerPackage"`
	FamilyQuantity  int     `json:"familyQuantity"`
	ReserveQuantity int     `json:"reserveQuantity"`
}

// SetQuantityPayload replaces the loose home quantity.
type SetQuantityPayload struct {
	Quantity int `json:"quantity"`
}

// AddQuantityPayload adds whole packages and loose units on top of the stored stock.
type AddQuantityPayload struct {
	AddPackages int `json:"addPackages"`
	AddQuantity int `json:"addQuantity"`
}

// StockPayload is one of the two PATCH bodies the stock endpoint accepts.
type StockPayload interface {
	stockPayload()
}

func (SetQuantityPayload) stockPayload() {}

func (AddQuantityPayload) stockPayload() {}
