package rest

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"

	"github.com/frahmantamala/hotel-management/internal/access"
	"github.com/frahmantamala/hotel-management/internal/accounting"
	"github.com/frahmantamala/hotel-management/internal/auth"
	"github.com/frahmantamala/hotel-management/internal/customer"
	"github.com/frahmantamala/hotel-management/internal/report"
	"github.com/frahmantamala/hotel-management/internal/reservation"
	"github.com/frahmantamala/hotel-management/internal/room"
	"github.com/frahmantamala/hotel-management/internal/shift"
	"github.com/frahmantamala/hotel-management/internal/staff"
	"github.com/frahmantamala/hotel-management/internal/transport/middleware"
	"github.com/frahmantamala/hotel-management/internal/transport/swagger"
)

// Handlers bundles every mounted handler so route registration stays one
// call in the server bootstrap.
type Handlers struct {
	Auth        *auth.Handler
	Reservation *reservation.Handler
	Customer    *customer.Handler
	Room        *room.Handler
	Accounting  *accounting.Handler
	Report      *report.Handler
	Staff       *staff.Handler
	Shift       *shift.Handler
}

func RegisterAllRoutes(router *chi.Mux, db *sql.DB, h Handlers, pages *access.PageAccess, allowedOrigins []string, logger *slog.Logger) {
	healthHandler := NewHealthHandler(db)

	// Apply global middleware
	router.Use(middleware.CORS(allowedOrigins))
	router.Use(middleware.RequestID)
	router.Use(middleware.RecoveryMiddleware(logger))
	router.Use(middleware.LoggingMiddleware(logger))

	// Serve OpenAPI spec at root (outside API prefix)
	router.Get("/openapi.yml", func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, "./api/openapi.yml")
	})
	// Swagger UI route at root
	router.Handle("/swagger/*", swagger.Handler())

	// Mount API under /api/v1 to match OpenAPI basePath
	router.Route("/api/v1", func(r chi.Router) {
		// Health check route
		r.Get("/health", healthHandler.healthCheckHandler)
		r.Get("/ping", healthHandler.pingHandler)

		// Auth routes
		r.Route("/auth", func(sr chi.Router) {
			sr.Post("/login", h.Auth.Login)
			sr.Post("/refresh", h.Auth.RefreshToken)
			sr.Post("/logout", h.Auth.Logout)
		})

		// Protected routes that require authentication
		r.Group(func(pr chi.Router) {
			pr.Use(h.Auth.AuthMiddleware)

			pr.Get("/users/me", h.Auth.GetCurrentUser)

			// Front-desk reservation routes
			pr.Route("/reservations", func(rr chi.Router) {
				rr.Group(func(gr chi.Router) {
					gr.Use(pages.RequirePage(access.PageCheckIn))
					gr.Get("/check-ins", h.Reservation.ListCheckIns)
					gr.Post("/check-ins", h.Reservation.CreateCheckIn)
					gr.Post("/{id}/cancel", h.Reservation.Cancel)
				})
				rr.Group(func(gr chi.Router) {
					gr.Use(pages.RequirePage(access.PageCheckOut))
					gr.Get("/check-outs", h.Reservation.ListCheckOuts)
					gr.Post("/{id}/check-out", h.Reservation.CheckOut)
				})
			})

			// Customer routes
			pr.Route("/customers", func(cr chi.Router) {
				cr.Use(pages.RequirePage(access.PageManageCustomers))
				cr.Get("/", h.Customer.List)
				cr.Post("/", h.Customer.Create)
				cr.Get("/{id}", h.Customer.Get)
				cr.Put("/{id}", h.Customer.Update)
				cr.Delete("/{id}", h.Customer.Delete)
			})

			// Room routes, maintenance issues nested under a room
			pr.Route("/rooms", func(rr chi.Router) {
				rr.Use(pages.RequirePage(access.PageManageRooms))
				rr.Get("/", h.Room.List)
				rr.Post("/", h.Room.Create)
				rr.Get("/{id}", h.Room.Get)
				rr.Put("/{id}", h.Room.Update)
				rr.Delete("/{id}", h.Room.Delete)
				rr.Get("/{id}/issues", h.Room.ListIssues)
				rr.Post("/{id}/issues", h.Room.ReportIssue)
				rr.Post("/{id}/issues/{issueId}/resolve", h.Room.ResolveIssue)
			})

			// Ledger routes
			pr.Route("/accounting", func(ar chi.Router) {
				ar.Use(pages.RequirePage(access.PageAccounting))
				ar.Get("/incomes", h.Accounting.ListIncomes)
				ar.Post("/incomes", h.Accounting.CreateIncome)
				ar.Put("/incomes/{id}", h.Accounting.UpdateIncome)
				ar.Delete("/incomes/{id}", h.Accounting.DeleteIncome)
				ar.Get("/expenses", h.Accounting.ListExpenses)
				ar.Post("/expenses", h.Accounting.CreateExpense)
				ar.Put("/expenses/{id}", h.Accounting.UpdateExpense)
				ar.Delete("/expenses/{id}", h.Accounting.DeleteExpense)
				ar.Get("/summary/daily", h.Accounting.DailySummary)
				ar.Get("/summary/weekly", h.Accounting.WeeklySummary)
			})

			// Financial report routes
			pr.Group(func(gr chi.Router) {
				gr.Use(pages.RequirePage(access.PageFinancialReport))
				gr.Get("/reports/monthly", h.Report.Monthly)
			})

			// Staff and schedule routes
			pr.Route("/staff", func(sr chi.Router) {
				sr.Use(pages.RequirePage(access.PageManageStaff))
				sr.Get("/", h.Staff.List)
				sr.Post("/", h.Staff.Create)
				sr.Get("/{id}", h.Staff.Get)
				sr.Put("/{id}", h.Staff.Update)
				sr.Delete("/{id}", h.Staff.Delete)

				sr.Get("/{id}/shifts", h.Shift.GetShifts)
				sr.Put("/{id}/shifts", h.Shift.ReplaceShifts)
				sr.Post("/{id}/shifts", h.Shift.UpsertShift)
				sr.Delete("/{id}/shifts/{shiftId}", h.Shift.DeleteShift)
			})
		})
	})
}
