package rest

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	chiMiddleware "github.com/go-chi/chi/middleware"

	"github.com/KunjShah95/gearguard/internal/auth"
	"github.com/KunjShah95/gearguard/internal/equipment"
	"github.com/KunjShah95/gearguard/internal/request"
	"github.com/KunjShah95/gearguard/internal/team"
	"github.com/KunjShah95/gearguard/internal/transport/middleware"
	"github.com/KunjShah95/gearguard/internal/transport/swagger"
	"github.com/KunjShah95/gearguard/internal/user"
)

func RegisterAllRoutes(
	router *chi.Mux,
	db *sql.DB,
	authHandler *auth.Handler,
	userHandler *user.Handler,
	teamHandler *team.Handler,
	equipmentHandler *equipment.Handler,
	requestHandler *request.Handler,
	openAPISpecPath string,
	logger *slog.Logger,
) {
	healthHandler := NewHealthHandler(db)

	rbac := auth.NewRoleAuthorization(logger)

	// Apply global middleware
	router.Use(middleware.CORS)
	router.Use(chiMiddleware.RequestID)
	router.Use(middleware.RequestID)
	router.Use(middleware.LoggingMiddleware(logger))
	router.Use(middleware.RecoveryMiddleware(logger))

	// Serve OpenAPI spec at root (outside API prefix)
	router.Get("/openapi.yml", func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, openAPISpecPath)
	})
	// Swagger UI route at root
	router.Handle("/swagger/*", swagger.Handler())

	// Mount API under /api/v1 to match OpenAPI basePath
	router.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", healthHandler.healthCheckHandler)
		r.Get("/ping", healthHandler.pingHandler)

		// Auth routes
		if authHandler != nil {
			r.Route("/auth", func(sr chi.Router) {
				sr.Post("/login", authHandler.Login)
				sr.Post("/refresh", authHandler.RefreshToken)
				sr.Post("/logout", authHandler.Logout)
			})
		}

		if authHandler != nil {
			// Protected routes that require authentication
			r.Group(func(pr chi.Router) {
				pr.Use(authHandler.AuthMiddleware)

				if userHandler != nil {
					pr.Get("/users/me", userHandler.GetCurrentUser)
					pr.Get("/users", userHandler.ListUsers)
				}

				// Maintenance team routes; membership and team management
				// is restricted to asset managers
				if teamHandler != nil {
					pr.Route("/teams", func(tr chi.Router) {
						tr.Get("/", teamHandler.GetAllTeams)
						tr.Get("/{id}", teamHandler.GetTeam)

						tr.Group(func(mr chi.Router) {
							mr.Use(rbac.RequireAssetManager())
							mr.Post("/", teamHandler.CreateTeam)
							mr.Patch("/{id}", teamHandler.UpdateTeam)
							mr.Delete("/{id}", teamHandler.DeleteTeam)
							mr.Post("/{id}/members", teamHandler.AddMember)
							mr.Delete("/{id}/members/{userId}", teamHandler.RemoveMember)
						})
					})
				}

				// Equipment routes
				if equipmentHandler != nil {
					pr.Route("/equipment", func(er chi.Router) {
						er.Get("/", equipmentHandler.GetAllEquipment)
						er.Get("/{id}", equipmentHandler.GetEquipment)
						if requestHandler != nil {
							er.Get("/{id}/requests", requestHandler.GetRequestsByEquipment)
						}

						er.Group(func(mr chi.Router) {
							mr.Use(rbac.RequireAssetManager())
							mr.Post("/", equipmentHandler.CreateEquipment)
							mr.Patch("/{id}", equipmentHandler.UpdateEquipment)
							mr.Patch("/{id}/status", equipmentHandler.UpdateStatus)
							mr.Delete("/{id}", equipmentHandler.DeleteEquipment)
						})
					})
				}

				// Maintenance request routes
				if requestHandler != nil {
					pr.Route("/requests", func(rr chi.Router) {
						rr.Post("/", requestHandler.CreateRequest)
						rr.Get("/", requestHandler.GetAllRequests)
						rr.Get("/my-requests", requestHandler.GetMyRequests)
						rr.Get("/calendar", requestHandler.GetCalendar)
						rr.Get("/kanban", requestHandler.GetKanban)
						rr.Get("/{id}", requestHandler.GetRequest)
						rr.Patch("/{id}", requestHandler.UpdateRequest)
						rr.Patch("/{id}/status", requestHandler.UpdateStatus)
						rr.Patch("/{id}/assign", requestHandler.AssignRequest)
					})
				}
			})
		}
	})
}
