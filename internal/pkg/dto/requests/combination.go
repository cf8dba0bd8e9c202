package requests

type Analysis struct {
	Name  string  `json:"name" validate:"required,max=150"`
	Price float64 `json:"price" validate:"gte=0"`
}

type CreateCombination struct {
	Name     string     `json:"name" validate:"required,max=150"`
	Analyses []Analysis `json:"analyses" validate:"required,min=1,dive"`
}

type UpdateCombination struct {
	CombinationID string     `json:"-"`
	Name          string     `json:"name" validate:"required,max=150"`
	Analyses      []Analysis `json:"analyses" validate:"required,min=1,dive"`
}

type CreateCombinationInGroup struct {
	GroupID  string     `json:"-"`
	Name     string     `json:"name" validate:"required,max=150"`
	Analyses []Analysis `json:"analyses" validate:"required,min=1,dive"`
}
