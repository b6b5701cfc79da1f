/*
server.go - HTTP router and middleware configuration

PURPOSE:
  Configures the chi router, middleware stack, and route definitions.
  This is the wiring layer that connects URLs to handlers.

MIDDLEWARE STACK:
  1. Logger:     Request logging
  2. Recoverer:  Panic recovery (500 instead of crash)
  3. RequestID:  Unique ID per request for tracing
  4. CORS:       Cross-origin requests for the frontend dev server

ROUTE GROUPS:
  /api/auth/*       Session flag
  /api/employees/*  Directory
  /api/leave/*      Requests and approvals
  /api/documents/*  Document tracking
  /api/messages/*   Internal messaging
  /api/admin/*      Reset (dev only)
  /health           Liveness and readiness

SEE ALSO:
  - handlers.go: Handler implementations
  - cmd/server/main.go: Server startup
*/
package api

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// NewRouter creates a new router with all routes configured.
func NewRouter(h *Handler, corsOrigins []string) *chi.Mux {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   corsOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	}))

	// Health routes
	r.Get("/health", h.Health)
	r.Get("/health/ready", h.Ready)

	// API routes
	r.Route("/api", func(r chi.Router) {
		// Session routes
		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", h.Login)
			r.Post("/logout", h.Logout)
			r.Get("/session", h.GetSession)
		})

		// Employee routes
		r.Route("/employees", func(r chi.Router) {
			r.Get("/", h.ListEmployees)
			r.Post("/", h.CreateEmployee)
			r.Get("/{id}", h.GetEmployee)
			r.Put("/{id}", h.UpdateEmployee)
			r.Delete("/{id}", h.DeleteEmployee)
			r.Get("/{id}/balances", h.GetEmployeeBalances)
			r.Get("/{id}/documents", h.GetEmployeeDocuments)
		})

		// Leave routes
		r.Route("/leave/requests", func(r chi.Router) {
			r.Get("/", h.ListLeaveRequests)
			r.Post("/", h.CreateLeaveRequest)
			r.Post("/{id}/status", h.UpdateLeaveStatus)
			r.Post("/{id}/cancel", h.CancelLeaveRequest)
		})

		// Document routes
		r.Route("/documents", func(r chi.Router) {
			r.Get("/", h.ListDocuments)
			r.Post("/", h.CreateDocument)
			r.Delete("/{id}", h.DeleteDocument)
		})

		// Message routes
		r.Route("/messages", func(r chi.Router) {
			r.Post("/", h.SendMessage)
			r.Post("/read", h.MarkRead)
			r.Get("/unread-count", h.GetUnreadCount)
			r.Get("/conversations/{id}", h.GetConversation)
		})

		// Notification and dashboard routes
		r.Get("/notifications", h.ListNotifications)
		r.Get("/stats", h.GetStats)

		// Admin routes
		r.Route("/admin", func(r chi.Router) {
			r.Post("/reset", h.ResetData)
		})
	})

	return r
}
