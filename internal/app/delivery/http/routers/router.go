package routers

import (
	"carehome-service/internal/app/config"
	"carehome-service/internal/app/delivery/http/controllers"
	"carehome-service/internal/app/delivery/http/middlewares"
	"carehome-service/internal/pkg/constvars"
	"carehome-service/internal/pkg/utils"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	authController *controllers.AuthController,
	patientController *controllers.PatientController,
	inventoryController *controllers.InventoryController,
	diagnosisController *controllers.DiagnosisController,
	reserveController *controllers.ReserveController,
	specificationController *controllers.SpecificationController,
	combinationController *controllers.CombinationController,
	notificationController *controllers.NotificationController,
) {
	corsOptions := cors.Options{
		AllowedOrigins:   []string{internalConfig.App.FrontendDomain},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", constvars.HeaderXRequestID},
		ExposedHeaders:   []string{constvars.HeaderXAccessToken, constvars.HeaderXRequestID, constvars.HeaderContentDisposition},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	router.Use(middlewares.RequestIDMiddleware)
	router.Use(middlewares.Logging)
	router.Use(middlewares.ErrorHandler)

	rateLimiter := httprate.LimitByIP(internalConfig.App.MaxRequests, time.Duration(internalConfig.App.MaxTimeRequestsPerSeconds)*time.Second)
	router.Use(rateLimiter)
	router.Use(middlewares.BodyLimit)

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		utils.BuildSuccessResponse(w, constvars.StatusOK, "ok", map[string]string{
			"version": internalConfig.App.Version,
		})
	})
	router.Handle("/metrics", promhttp.Handler())

	router.Route(internalConfig.App.EndpointPrefix, func(r chi.Router) {
		r.Use(middlewares.Session)

		r.Route("/auth", func(r chi.Router) {
			attachAuthRoutes(r, authController)
		})

		r.Group(func(r chi.Router) {
			r.Use(middlewares.RequireAuth)

			r.Route("/patients", func(r chi.Router) {
				attachPatientRoutes(r, patientController)

				r.Route("/{patientId}", func(r chi.Router) {
					r.Route("/inventory/{kind}", func(r chi.Router) {
						attachInventoryRoutes(r, inventoryController)
					})
					r.Route("/diagnoses", func(r chi.Router) {
						attachDiagnosisRoutes(r, diagnosisController)
					})
					r.Route("/reserves", func(r chi.Router) {
						attachReserveRoutes(r, reserveController)
					})
					r.Route("/specifications", func(r chi.Router) {
						attachSpecificationRoutes(r, specificationController)
					})
				})
			})

			attachCombinationRoutes(r, combinationController)

			r.Route("/notifications", func(r chi.Router) {
				attachNotificationRoutes(r, notificationController)
			})
		})
	})
}
