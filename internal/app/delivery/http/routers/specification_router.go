package routers

import (
	"carehome-service/internal/app/delivery/http/controllers"

	"github.com/go-chi/chi/v5"
)

func attachSpecificationRoutes(router chi.Router, specificationController *controllers.SpecificationController) {
	router.Get("/active", specificationController.FetchActiveSpecification)
	router.Get("/history", specificationController.FetchSpecificationHistory)
	router.Get("/periods", specificationController.FetchPeriods)
	router.Get("/export", specificationController.ExportPeriods)
	router.Post("/exports", specificationController.StoreExport)
	router.Get("/{specificationId}", specificationController.FetchSpecificationByID)
	router.Patch("/{specificationId}/costs", specificationController.AddCosts)
}
