package care_dto

type Analysis struct {
	ID    string  `json:"id,omitempty"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

type Combination struct {
	ID       string     `json:"id,omitempty"`
	Name     string     `json:"name"`
	Analyses []Analysis `json:"analyses"`
	Price    float64    `json:"price"`
	GroupID  string     `json:"groupId,omitempty"`
}

type AddCombinationToGroup struct {
	CombinationID string `json:"combinationId"`
}
