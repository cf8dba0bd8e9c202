package requests

type CreateNotification struct {
	Title     string `json:"title" validate:"required,max=150"`
	Message   string `json:"message" validate:"required,max=2000"`
	PatientID string `json:"patientId"`
}
