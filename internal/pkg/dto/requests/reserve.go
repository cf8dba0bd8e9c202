package requests

type TransferToReserve struct {
	PatientID string  `json:"-"`
	ItemID    string  `json:"itemId" validate:"required"`
	ItemKind  string  `json:"itemKind" validate:"required,oneof=medicines articles"`
	Source    string  `json:"source" validate:"required,stock_source"`
	Amount    int     `json:"amount" validate:"gt=0"`
	Price     float64 `json:"price" validate:"gte=0"`
}
