package main

import (
	"context"
	"errors"
	"io/fs"
	stdlog "log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"

	"github.com/blogem/petition-desk/config"
	"github.com/blogem/petition-desk/controllers"
	"github.com/blogem/petition-desk/database"
	"github.com/blogem/petition-desk/logging"
	"github.com/blogem/petition-desk/metrics"
	appmiddleware "github.com/blogem/petition-desk/middleware"
	"github.com/blogem/petition-desk/repositories"
	"github.com/blogem/petition-desk/services"
	"github.com/blogem/petition-desk/templates"
)

func main() {
	// Load environment variables from .env file, if there is one
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		stdlog.Fatalf("Failed to load the env vars: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		stdlog.Fatalf("Failed to load configuration: %v", err)
	}

	logCloser, err := logging.Setup(cfg)
	if err != nil {
		stdlog.Fatalf("Failed to set up logging: %v", err)
	}
	defer logCloser.Close()

	if !cfg.AdminKeyConfigured() {
		log.Warn("ADMIN_KEY is not set, admin exports will always be rejected")
	}

	// Connect to the database; an unreachable store leaves the service in degraded mode
	store := database.Connect(context.Background(), cfg)
	defer store.Close(context.Background())

	m := metrics.New()

	// Initialize repositories
	repos := repositories.NewRepositories(store)

	// Initialize services
	srvs := services.NewServices(repos, m)

	// Initialize controllers
	ctrl := controllers.NewControllers(srvs, templates.FS)

	r := setupRouter(ctrl, cfg, m)

	server := &http.Server{
		Addr:              cfg.ListenAddr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.WithFields(log.Fields{
			"addr":      cfg.ListenAddr(),
			"backend":   store.Backend(),
			"available": store.Available(),
		}).Info("Petition desk starting")

		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Fatal("HTTP server failed")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.WithError(err).Error("Graceful shutdown failed")
	}
	log.Info("Petition desk stopped")
}

// setupRouter configures all routes
func setupRouter(ctrl *controllers.Controllers, cfg *config.Config, m *metrics.Metrics) *chi.Mux {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(appmiddleware.RequestLogger)
	r.Use(middleware.Recoverer)
	r.Use(appmiddleware.PrometheusMiddleware(m))

	// Pages
	r.Get("/", ctrl.Pages.Index)
	r.Get("/petition", ctrl.Pages.Petition)
	r.Get("/demand", ctrl.Pages.Demand)

	r.Get("/health", ctrl.Health.Health)
	r.Method(http.MethodGet, "/metrics", m.Handler())

	// Public API
	r.Route("/api", func(r chi.Router) {
		r.Post("/submit", ctrl.Entries.Submit)
		r.Get("/records", ctrl.Entries.Records)
		r.Get("/counts", ctrl.Entries.Counts)
	})

	// ADMIN ROUTES (shared secret required, checked before any data access)
	r.Group(func(r chi.Router) {
		r.Use(appmiddleware.RequireAdminKey(cfg.AdminKey))

		r.Get("/admin/export.csv", ctrl.Export.CSV)
		r.Get("/admin/export.xlsx", ctrl.Export.XLSX)
	})

	return r
}
