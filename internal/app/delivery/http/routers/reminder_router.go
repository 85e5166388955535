package routers

import (
	"dentaldesk-service/internal/app/delivery/http/middlewares"
	"dentaldesk-service/internal/app/services/reminders"

	"github.com/go-chi/chi/v5"
)

func attachReminderRoutes(router chi.Router, middlewares *middlewares.Middlewares, reminderController *reminders.ReminderController) {
	router.With(middlewares.Authenticate).Get("/", reminderController.Upcoming)
}
