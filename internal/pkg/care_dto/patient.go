package care_dto

type Patient struct {
	ID            string  `json:"id,omitempty"`
	Name          string  `json:"name"`
	LastName      string  `json:"lastName"`
	BirthDate     string  `json:"birthDate"`
	AdmissionDate string  `json:"admissionDate"`
	DischargeDate *string `json:"dischargeDate,omitempty"`
	Address       string  `json:"address"`
	CreatedBy     string  `json:"createdBy,omitempty"`
}

type DischargePatient struct {
	DischargeDate string `json:"dischargeDate"`
}
