package routers

import (
	"carehome-service/internal/app/delivery/http/controllers"

	"github.com/go-chi/chi/v5"
)

func attachCombinationRoutes(router chi.Router, combinationController *controllers.CombinationController) {
	router.Get("/combinations", combinationController.ListCombinations)
	router.Post("/combinations", combinationController.CreateCombination)
	router.Patch("/combinations/{id}", combinationController.UpdateCombination)
	router.Delete("/combinations/{id}", combinationController.DeleteCombination)
	router.Post("/combination-groups/{groupId}/combinations", combinationController.CreateCombinationInGroup)
}

func attachNotificationRoutes(router chi.Router, notificationController *controllers.NotificationController) {
	router.Get("/", notificationController.ListNotifications)
	router.Post("/", notificationController.CreateNotification)
	router.Patch("/{id}/read", notificationController.MarkNotificationRead)
	router.Delete("/{id}", notificationController.DeleteNotification)
}
