package requests

// CreateInventoryItem takes stock as a total unit count plus the package size.
// It is split into packages and loose units before it reaches the care backend.
type CreateInventoryItem struct {
	Kind            string  `json:"-"`
	PatientID       string  `json:"-"`
	Name            string  `json:"name" validate:"required,max=150"`
	Price           float64 `json:"price" validate:"gte=0"`
	Total           int     `json:"total" validate:"gte=0"`
	UnitsPerPackage int     `json:"unitsPerPackage"`
	FamilyQuantity  int     `json:"familyQuantity" validate:"gte=0"`
}

// UpdateStock is decoded from the dashboard and turned into exactly one
// stock update variant. Quantity belongs to mode "set", Total and
// UnitsPerPackage to mode "add".
type UpdateStock struct {
	Kind            string `json:"-"`
	PatientID       string `json:"-"`
	ItemID          string `json:"-"`
	Mode            string `json:"mode" validate:"required,oneof=set add"`
	Quantity        *int   `json:"quantity" validate:"required_if=Mode set,excluded_with=Total,omitempty,gte=0"`
	Total           *int   `json:"total" validate:"required_if=Mode add,omitempty,gte=0"`
	UnitsPerPackage int    `json:"unitsPerPackage"`
}
