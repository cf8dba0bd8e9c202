package requests

type CreateDiagnosis struct {
	PatientID   string `json:"-"`
	Code        string `json:"code" validate:"required,max=20"`
	Name        string `json:"name" validate:"required,max=200"`
	Description string `json:"description" validate:"max=2000"`
	DiagnosedAt string `json:"diagnosedAt" validate:"required,iso_date"`
}

type UpdateDiagnosis struct {
	PatientID   string `json:"-"`
	DiagnosisID string `json:"-"`
	Code        string `json:"code" validate:"required,max=20"`
	Name        string `json:"name" validate:"required,max=200"`
	Description string `json:"description" validate:"max=2000"`
	DiagnosedAt string `json:"diagnosedAt" validate:"required,iso_date"`
}
