package routers

import (
	"time"

	"dentaldesk-service/internal/app/config"
	"dentaldesk-service/internal/app/delivery/http/middlewares"
	"dentaldesk-service/internal/app/services/auth"
	"dentaldesk-service/internal/app/services/imaging"
	"dentaldesk-service/internal/app/services/patients"
	"dentaldesk-service/internal/app/services/reminders"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	authController *auth.AuthController,
	patientController *patients.PatientController,
	imagingController *imaging.ImagingController,
	reminderController *reminders.ReminderController,
) {
	corsOptions := cors.Options{
		AllowedOrigins:   []string{internalConfig.App.FrontendOrigin},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	rateLimiter := httprate.LimitByIP(internalConfig.App.MaxRequests, time.Second)
	router.Use(rateLimiter)

	router.Use(middlewares.RequestID)
	router.Use(middlewares.Logging)
	router.Use(middlewares.ErrorHandler)

	attach := func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			attachAuthRoutes(r, middlewares, authController)
		})

		r.Route("/patients", func(r chi.Router) {
			attachPatientRoutes(r, middlewares, patientController, imagingController)
		})

		r.Route("/reminder", func(r chi.Router) {
			attachReminderRoutes(r, middlewares, reminderController)
		})
	}

	if internalConfig.App.EndpointPrefix != "" {
		router.Route(internalConfig.App.EndpointPrefix, attach)
		return
	}
	router.Group(attach)
}
