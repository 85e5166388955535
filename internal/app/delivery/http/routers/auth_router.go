package routers

import (
	"dentaldesk-service/internal/app/delivery/http/middlewares"
	"dentaldesk-service/internal/app/services/auth"

	"github.com/go-chi/chi/v5"
)

func attachAuthRoutes(router chi.Router, middlewares *middlewares.Middlewares, authController *auth.AuthController) {
	router.Post("/signup", authController.SignUp)
	router.Post("/login", authController.Login)
	router.With(middlewares.Authenticate).Post("/logout", authController.Logout)
	router.With(middlewares.Authenticate).Get("/me", authController.Me)
	router.With(middlewares.Authenticate).Delete("/delete", authController.DeleteAccount)
}
