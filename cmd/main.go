package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	createAppointmentHandler "github.com/glamnails/salon-gateway/internal/api/handlers/create_appointment"
	createContactMessageHandler "github.com/glamnails/salon-gateway/internal/api/handlers/create_contact_message"
	deleteAppointmentHandler "github.com/glamnails/salon-gateway/internal/api/handlers/delete_appointment"
	deleteContactMessageHandler "github.com/glamnails/salon-gateway/internal/api/handlers/delete_contact_message"
	getAdminStatsHandler "github.com/glamnails/salon-gateway/internal/api/handlers/get_admin_stats"
	getCatalogHandler "github.com/glamnails/salon-gateway/internal/api/handlers/get_catalog"
	invalidateCacheHandler "github.com/glamnails/salon-gateway/internal/api/handlers/invalidate_cache"
	listAppointmentsHandler "github.com/glamnails/salon-gateway/internal/api/handlers/list_appointments"
	listContactMessagesHandler "github.com/glamnails/salon-gateway/internal/api/handlers/list_contact_messages"
	updateAppointmentStatusHandler "github.com/glamnails/salon-gateway/internal/api/handlers/update_appointment_status"
	"github.com/glamnails/salon-gateway/internal/api/middleware"
	"github.com/glamnails/salon-gateway/internal/config"
	salonAPIClient "github.com/glamnails/salon-gateway/internal/integrations/salonapi"
	"github.com/glamnails/salon-gateway/internal/respcache"
	catalogService "github.com/glamnails/salon-gateway/internal/service/catalog"
	manageAppointmentsUC "github.com/glamnails/salon-gateway/internal/usecase/manage_appointments"
	submitBookingUC "github.com/glamnails/salon-gateway/internal/usecase/submit_booking"
	submitContactUC "github.com/glamnails/salon-gateway/internal/usecase/submit_contact"
	"github.com/glamnails/salon-gateway/pkg/logger"
	"github.com/glamnails/salon-gateway/pkg/metrics"
)

func main() {
	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting salon-gateway...")
	log.Info("Configuration loaded from config.toml")

	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Backend client
	var backendRecorder salonAPIClient.Recorder
	var cacheRecorder respcache.Recorder
	if cfg.Metrics.Enabled {
		backendRecorder = metricsCollector
		cacheRecorder = metricsCollector
	}
	backendClient := salonAPIClient.NewClient(
		cfg.Backend.URL,
		time.Duration(cfg.Backend.Timeout)*time.Second,
		log,
		backendRecorder,
	)
	log.Info("Backend client initialized (URL=%s timeout=%ds)", cfg.Backend.URL, cfg.Backend.Timeout)

	// Response cache and catalog service
	cache := respcache.New(time.Duration(cfg.Cache.TTLSeconds)*time.Second, cacheRecorder)
	catalog := catalogService.NewService(cache, backendClient, log)
	log.Info("Response cache initialized (ttl=%ds)", cfg.Cache.TTLSeconds)

	// Use cases
	submitBookingUseCase := submitBookingUC.NewUseCase(backendClient, log)
	appointmentManager := manageAppointmentsUC.NewManager(backendClient, log)
	submitContactUseCase := submitContactUC.NewUseCase(backendClient, log)

	// Handlers
	createAppointment := createAppointmentHandler.NewHandler(submitBookingUseCase, log)
	getCatalog := getCatalogHandler.NewHandler(catalog, log)
	createContactMessage := createContactMessageHandler.NewHandler(submitContactUseCase, log)
	listAppointments := listAppointmentsHandler.NewHandler(appointmentManager, log)
	updateAppointmentStatus := updateAppointmentStatusHandler.NewHandler(appointmentManager, log)
	deleteAppointment := deleteAppointmentHandler.NewHandler(appointmentManager, log)
	listContactMessages := listContactMessagesHandler.NewHandler(submitContactUseCase, log)
	deleteContactMessage := deleteContactMessageHandler.NewHandler(submitContactUseCase, log)
	getAdminStats := getAdminStatsHandler.NewHandler(backendClient, log)
	invalidateCache := invalidateCacheHandler.NewHandler(catalog, log)

	// Router
	r := mux.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recovery(log))

	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api").Subrouter()

	// ============================================================
	// PUBLIC ROUTES
	// ============================================================

	// Catalog reads, cache-backed
	api.HandleFunc("/services", getCatalog.HandleServices).Methods(http.MethodGet)
	api.HandleFunc("/categories", getCatalog.HandleCategories).Methods(http.MethodGet)
	api.HandleFunc("/artists", getCatalog.HandleArtists).Methods(http.MethodGet)
	api.HandleFunc("/gallery", getCatalog.HandleGallery).Methods(http.MethodGet)
	api.HandleFunc("/gallery-styles", getCatalog.HandleGalleryStyles).Methods(http.MethodGet)
	api.HandleFunc("/gallery-colors", getCatalog.HandleGalleryColors).Methods(http.MethodGet)
	api.HandleFunc("/settings", getCatalog.HandleSettings).Methods(http.MethodGet)

	// Booking and contact submissions
	api.HandleFunc("/appointments", createAppointment.Handle).Methods(http.MethodPost)
	api.HandleFunc("/contact", createContactMessage.Handle).Methods(http.MethodPost)

	// ============================================================
	// ADMIN ROUTES (shared token)
	// ============================================================

	admin := api.PathPrefix("").Subrouter()
	admin.Use(middleware.AdminAuth(cfg.Admin.Token, log))

	admin.HandleFunc("/appointments", listAppointments.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/appointments/{id}/status", updateAppointmentStatus.Handle).Methods(http.MethodPatch)
	admin.HandleFunc("/appointments/{id}", deleteAppointment.Handle).Methods(http.MethodDelete)

	admin.HandleFunc("/contact", listContactMessages.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/contact/{id}", deleteContactMessage.Handle).Methods(http.MethodDelete)

	admin.HandleFunc("/admin/stats", getAdminStats.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/admin/cache/invalidate", invalidateCache.Handle).Methods(http.MethodPost)

	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
