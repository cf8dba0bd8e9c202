package routers

import (
	"carehome-service/internal/app/delivery/http/controllers"

	"github.com/go-chi/chi/v5"
)

func attachPatientRoutes(router chi.Router, patientController *controllers.PatientController) {
	router.Get("/", patientController.ListPatients)
	router.Post("/", patientController.CreatePatient)
	router.Get("/{patientId}", patientController.FindPatientByID)
	router.Patch("/{patientId}", patientController.UpdatePatient)
	router.Delete("/{patientId}", patientController.DeletePatient)
	router.Patch("/{patientId}/discharge", patientController.DischargePatient)
}

func attachInventoryRoutes(router chi.Router, inventoryController *controllers.InventoryController) {
	router.Get("/", inventoryController.ListItems)
	router.Post("/", inventoryController.CreateItem)
	router.Delete("/{id}", inventoryController.DeleteItem)
	router.Patch("/{id}/stock", inventoryController.UpdateStock)
}

func attachDiagnosisRoutes(router chi.Router, diagnosisController *controllers.DiagnosisController) {
	router.Get("/", diagnosisController.ListDiagnoses)
	router.Post("/", diagnosisController.CreateDiagnosis)
	router.Patch("/{id}", diagnosisController.UpdateDiagnosis)
	router.Delete("/{id}", diagnosisController.DeleteDiagnosis)
}

func attachReserveRoutes(router chi.Router, reserveController *controllers.ReserveController) {
	router.Get("/", reserveController.ListReserves)
	router.Post("/", reserveController.TransferToReserve)
}
