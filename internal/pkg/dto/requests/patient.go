package requests

type CreatePatient struct {
	Name          string `json:"name" validate:"required,max=100"`
	LastName      string `json:"lastName" validate:"required,max=100"`
	BirthDate     string `json:"birthDate" validate:"required,iso_date"`
	AdmissionDate string `json:"admissionDate" validate:"required,iso_date"`
	Address       string `json:"address" validate:"max=255"`
}

type UpdatePatient struct {
	PatientID     string `json:"-"`
	Name          string `json:"name" validate:"required,max=100"`
	LastName      string `json:"lastName" validate:"required,max=100"`
	BirthDate     string `json:"birthDate" validate:"required,iso_date"`
	AdmissionDate string `json:"admissionDate" validate:"required,iso_date"`
	Address       string `json:"address" validate:"max=255"`
}

type DischargePatient struct {
	PatientID     string `json:"-"`
	DischargeDate string `json:"dischargeDate" validate:"required,iso_date"`
}
