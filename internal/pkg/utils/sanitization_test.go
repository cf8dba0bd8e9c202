package utils

import (
	"carehome-service/internal/pkg/dto/requests"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizePatientRequests(t *testing.T) {
	t.Run("Create patient trims text fields", func(t *testing.T) {
		request := &requests.CreatePatient{
			Name:      "  Ana ",
			LastName:  " Ilic  ",
			BirthDate: "1940-02-11",
			Address:   "  Main street 1 ",
		}

		SanitizeCreatePatientRequest(request)

		assert.Equal(t, "Ana", request.Name, "name should be trimmed")
		assert.Equal(t, "Ilic", request.LastName, "last name should be trimmed")
		assert.Equal(t, "Main street 1", request.Address, "address should be trimmed")
		assert.Equal(t, "1940-02-11", request.BirthDate, "dates should stay untouched")
	})

	t.Run("Update patient trims text fields", func(t *testing.T) {
		request := &requests.UpdatePatient{PatientID: "p1", Name: "\tMarko\n", LastName: "Petrovic"}

		SanitizeUpdatePatientRequest(request)

		assert.Equal(t, "Marko", request.Name, "name should be trimmed")
		assert.Equal(t, "p1", request.PatientID, "id should stay untouched")
	})
}

func TestSanitizeCatalogRequests(t *testing.T) {
	t.Run("Inventory item name", func(t *testing.T) {
		request := &requests.CreateInventoryItem{Name: "  Paracetamol 500mg  "}

		SanitizeCreateInventoryItemRequest(request)

		assert.Equal(t, "Paracetamol 500mg", request.Name, "name should be trimmed")
	})

	t.Run("Combination analyses", func(t *testing.T) {
		analyses := []requests.Analysis{{Name: "  CBC  ", Price: 500}, {Name: "CRP", Price: 300}}

		SanitizeCombinationAnalyses(analyses)

		assert.Equal(t, []requests.Analysis{{Name: "CBC", Price: 500}, {Name: "CRP", Price: 300}}, analyses, "analysis names should be trimmed")
	})

	t.Run("Empty analyses", func(t *testing.T) {
		analyses := []requests.Analysis{}

		SanitizeCombinationAnalyses(analyses)

		assert.Equal(t, []requests.Analysis{}, analyses, "empty analyses should remain empty")
	})

	t.Run("Extra cost label", func(t *testing.T) {
		request := &requests.AddCosts{LodgingPrice: 1000, ExtraCostAmount: 200, ExtraCostLabel: " Laundry "}

		SanitizeAddCostsRequest(request)

		assert.Equal(t, "Laundry", request.ExtraCostLabel, "label should be trimmed")
		assert.Equal(t, 1000.0, request.LodgingPrice, "amounts should stay untouched")
	})
}
