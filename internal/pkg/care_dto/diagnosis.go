package care_dto

type Diagnosis struct {
	ID          string `json:"id,omitempty"`
	PatientID   string `json:"patientId"`
	Code        string `json:"code"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	DiagnosedAt string `json:"diagnosedAt"`
}
