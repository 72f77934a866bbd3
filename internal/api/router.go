package api

import (
	"log/slog"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"gorm.io/gorm"

	"github.com/Ifeanyi-design/irapada-ogo-youths/internal/api/handlers"
	"github.com/Ifeanyi-design/irapada-ogo-youths/internal/api/middleware"
	"github.com/Ifeanyi-design/irapada-ogo-youths/internal/auth"
	"github.com/Ifeanyi-design/irapada-ogo-youths/internal/export"
	"github.com/Ifeanyi-design/irapada-ogo-youths/internal/identity"
	"github.com/Ifeanyi-design/irapada-ogo-youths/internal/ledger"
	"github.com/Ifeanyi-design/irapada-ogo-youths/internal/schema"
	"github.com/Ifeanyi-design/irapada-ogo-youths/pkg/uploads"
)

type Router struct {
	chi.Router
}

type RouterConfig struct {
	DB             *gorm.DB
	Logger         *slog.Logger
	JWTService     *auth.JWTService
	Uploads        *uploads.Store
	AllowedOrigins []string // CORS allowed origins
	RateLimitReqs  int      // Rate limit requests per window
	RateLimitSecs  int      // Rate limit window in seconds
}

func NewRouter(cfg RouterConfig) *Router {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.Recovery(cfg.Logger))
	r.Use(middleware.Logging(cfg.Logger))

	if cfg.RateLimitReqs > 0 {
		r.Use(middleware.RateLimit(cfg.RateLimitReqs, cfg.RateLimitSecs))
	}

	// CORS - restrict to configured origins, or allow localhost in development
	allowedOrigins := cfg.AllowedOrigins
	if len(allowedOrigins) == 0 {
		allowedOrigins = []string{"http://localhost:3000", "http://localhost:8080"}
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"X-RateLimit-Limit", "X-RateLimit-Remaining", "X-RateLimit-Reset"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Initialize services
	identityService := identity.NewService(cfg.DB)
	schemaService := schema.NewService(cfg.DB)
	ledgerService := ledger.NewService(cfg.DB)
	exportEngine := export.NewEngine(cfg.DB)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(cfg.DB)
	authHandler := handlers.NewAuthHandler(identityService, cfg.JWTService)
	profileHandler := handlers.NewProfileHandler(identityService, cfg.Uploads)
	userHandler := handlers.NewUserHandler(identityService)
	preUserHandler := handlers.NewPreUserHandler(identityService)
	mergeHandler := handlers.NewMergeHandler(identityService)
	tableHandler := handlers.NewTableHandler(schemaService, identityService)
	contributionHandler := handlers.NewContributionHandler(ledgerService, identityService)
	exportHandler := handlers.NewExportHandler(exportEngine)

	// Health endpoints (no auth required)
	r.Get("/health", healthHandler.Health)
	r.Get("/ready", healthHandler.Ready)

	// API routes
	r.Route("/api/v1", func(r chi.Router) {
		// Public auth endpoints
		r.Post("/auth/register", authHandler.Register)
		r.Post("/auth/login", authHandler.Login)
		r.Post("/auth/logout", authHandler.Logout)

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(middleware.Auth(cfg.JWTService))

			// Profile endpoints
			r.Get("/me", profileHandler.Me)
			r.Put("/me", profileHandler.Update)
			r.Post("/me/image", profileHandler.UploadImage)

			// Schema reads for the contribution forms
			r.Get("/tables", tableHandler.ListMine)
			r.Get("/tables/{id}/columns", tableHandler.ListColumns)

			// Contribution ledger
			r.Post("/contributions", contributionHandler.Log)
			r.Get("/contributions", contributionHandler.List)

			// Admin-only operations
			r.Route("/admin", func(r chi.Router) {
				r.Use(middleware.RequireAdmin)

				r.Get("/users", userHandler.List)
				r.Put("/users/{id}/role", userHandler.UpdateRole)

				r.Get("/preusers", preUserHandler.List)
				r.Post("/preusers", preUserHandler.Create)

				r.Get("/merge/candidates", mergeHandler.Candidates)
				r.Post("/merge", mergeHandler.Merge)

				r.Get("/tables", tableHandler.ListAll)
				r.Post("/tables", tableHandler.Create)
				r.Post("/tables/{id}/columns", tableHandler.AddColumn)

				r.Post("/contributions/bulk", contributionHandler.LogBulk)

				r.Get("/export", exportHandler.Export)
			})
		})
	})

	return &Router{r}
}
