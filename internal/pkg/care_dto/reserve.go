package care_dto

type ReserveEntry struct {
	ID        string  `json:"id,omitempty"`
	PatientID string  `json:"patientId"`
	ItemID    string  `json:"itemId"`
	ItemKind  string  `json:"itemKind"`
	Source    string  `json:"source"`
	Amount    int     `json:"amount"`
	Price     float64 `json:"price"`
	CreatedAt string  `json:"createdAt,omitempty"`
}
