package utils

import (
	"carehome-service/internal/pkg/dto/requests"
	"strings"
)

func SanitizeCreatePatientRequest(input *requests.CreatePatient) {
	input.Name = strings.TrimSpace(input.Name)
	input.LastName = strings.TrimSpace(input.LastName)
	input.Address = strings.TrimSpace(input.Address)
}

func SanitizeUpdatePatientRequest(input *requests.UpdatePatient) {
	input.Name = strings.TrimSpace(input.Name)
	input.LastName = strings.TrimSpace(input.LastName)
	input.Address = strings.TrimSpace(input.Address)
}

func SanitizeCreateInventoryItemRequest(input *requests.CreateInventoryItem) {
	input.Name = strings.TrimSpace(input.Name)
}

func SanitizeCombinationAnalyses(analyses []requests.Analysis) {
	for i := range analyses {
		analyses[i].Name = strings.TrimSpace(analyses[i].Name)
	}
}

func SanitizeAddCostsRequest(input *requests.AddCosts) {
	input.ExtraCostLabel = strings.TrimSpace(input.ExtraCostLabel)
}
