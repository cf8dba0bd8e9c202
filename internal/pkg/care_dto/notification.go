package care_dto

type Notification struct {
	ID        string `json:"id,omitempty"`
	Title     string `json:"title,omitempty"`
	Message   string `json:"message,omitempty"`
	PatientID string `json:"patientId,omitempty"`
	Read      bool   `json:"read"`
	CreatedAt string `json:"createdAt,omitempty"`
}
