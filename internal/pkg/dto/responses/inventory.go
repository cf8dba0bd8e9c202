package responses

type Packaging struct {
	PackageCount   int `json:"packageCount"`
	RemainderUnits int `json:"remainderUnits"`
}
