package routers

import (
	"carehome-service/internal/app/delivery/http/controllers"

	"github.com/go-chi/chi/v5"
)

func attachAuthRoutes(router chi.Router, authController *controllers.AuthController) {
	router.Post("/login", authController.Login)
	router.Post("/refresh", authController.Refresh)
	router.Post("/logout", authController.Logout)
}
