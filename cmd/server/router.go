package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/mayconaraujosantos/alertasaude-sub001/internal/api"
	apiMiddleware "github.com/mayconaraujosantos/alertasaude-sub001/internal/api/middleware"
)

// setupRouter creates and configures the application router with all routes
// and middleware, using the application's services to create the handlers.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	// Standard middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware)

	// Handlers
	authHandler := api.NewAuthHandler(app.userService, app.jwtService)
	medicineHandler := api.NewMedicineHandler(app.medicineService)
	scheduleHandler := api.NewScheduleHandler(app.scheduleService, app.reminderService)
	reminderHandler := api.NewReminderHandler(app.reminderService)
	statsHandler := api.NewStatsHandler(app.statsService)

	authMiddleware := apiMiddleware.NewAuthMiddleware(app.jwtService)

	r.Route("/api", func(r chi.Router) {
		// Authentication endpoints (public)
		r.Post("/auth/register", authHandler.Register)
		r.Post("/auth/login", authHandler.Login)

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.Authenticate)

			// Medicine endpoints
			r.Post("/medicines", medicineHandler.CreateMedicine)
			r.Get("/medicines", medicineHandler.ListMedicines)
			r.Get("/medicines/{id}", medicineHandler.GetMedicine)
			r.Put("/medicines/{id}", medicineHandler.UpdateMedicine)
			r.Delete("/medicines/{id}", medicineHandler.DeleteMedicine)

			// Schedule endpoints
			r.Post("/schedules", scheduleHandler.CreateSchedule)
			r.Get("/schedules", scheduleHandler.ListSchedules)
			r.Get("/schedules/{id}", scheduleHandler.GetSchedule)
			r.Get("/schedules/{id}/reminders", scheduleHandler.ListScheduleReminders)
			r.Patch("/schedules/{id}/active", scheduleHandler.SetScheduleActive)
			r.Delete("/schedules/{id}", scheduleHandler.DeleteSchedule)

			// Dose reminder endpoints
			r.Get("/reminders", reminderHandler.ListReminders)
			r.Get("/reminders/{id}", reminderHandler.GetReminder)
			r.Post("/reminders/{id}/take", reminderHandler.MarkTaken)
			r.Post("/reminders/{id}/skip", reminderHandler.MarkSkipped)

			// Statistics endpoint
			r.Get("/stats", statsHandler.GetStats)
		})
	})

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})

	return r
}
