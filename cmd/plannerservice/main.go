// Package main provides the entry point for the garden planner engine's
// HTTP service.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/urban-gardening-assistant/planner-engine/config"
	"github.com/urban-gardening-assistant/planner-engine/internal/catalogue"
	"github.com/urban-gardening-assistant/planner-engine/internal/narrative"
	"github.com/urban-gardening-assistant/planner-engine/internal/orchestrator"
	"github.com/urban-gardening-assistant/planner-engine/internal/store"
	utilerrors "github.com/urban-gardening-assistant/planner-engine/internal/utils/errors"
	"github.com/urban-gardening-assistant/planner-engine/internal/utils/logger"
	"github.com/urban-gardening-assistant/planner-engine/pkg/constants"
	"github.com/urban-gardening-assistant/planner-engine/pkg/dto"
)

const shutdownGraceTimeout = 10 * time.Second

var (
	requestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "garden_planner_requests_total",
		Help: "Total garden plan requests processed, by outcome.",
	}, []string{"outcome"})

	requestDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "garden_planner_request_duration_seconds",
		Help:    "Garden plan request latency in seconds.",
		Buckets: prometheus.DefBuckets,
	}, []string{"outcome"})
)

func init() {
	prometheus.MustRegister(requestsTotal, requestDuration)
}

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Printf("failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.NewLogger(cfg)
	if err != nil {
		fmt.Printf("failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	db, err := store.NewPostgresConnection(cfg.Database)
	if err != nil {
		log.Error("failed to connect to database", zap.Error(err))
		os.Exit(1)
	}

	plantStore := store.NewCatalogueStore(db)
	compatStore := store.NewCompatibilityStore(db)
	cached := catalogue.NewCachedStore(compositeLoader{catalogue: plantStore, compatibility: compatStore})

	orch := orchestrator.New(
		catalogueAdapter{cached: cached, fallback: plantStore},
		compatibilityAdapter{cached: cached},
		store.NewUserProfileStore(db),
		nil,
		log,
	)

	if err := orch.Warm(ctx); err != nil {
		log.Error("failed to warm catalogue/compatibility index", zap.Error(err))
		os.Exit(1)
	}

	enricher := narrative.NewEnricher(os.Getenv("OPENAI_API_KEY"), log)
	aiEnabled := cfg.FeatureFlags["ai_narrative"]

	router := setupRouter(orch, enricher, aiEnabled, log, cfg.API.RateLimit)

	server := &http.Server{
		Addr:         ":" + cfg.API.Port,
		Handler:      router,
		ReadTimeout:  cfg.API.ReadTimeout,
		WriteTimeout: cfg.API.WriteTimeout,
		IdleTimeout:  cfg.API.IdleTimeout,
	}

	go func() {
		log.Info("starting garden planner engine", zap.String("port", cfg.API.Port))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server failed", zap.Error(err))
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutting down garden planner engine")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownGraceTimeout)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("server forced to shutdown", zap.Error(err))
	}
	log.Info("server exited gracefully")
}

func setupRouter(orch *orchestrator.Orchestrator, enricher *narrative.Enricher, aiEnabled bool, log *zap.Logger, rateLimit int) *chi.Mux {
	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(middleware.SetHeader("X-Content-Type-Options", "nosniff"))
	router.Use(middleware.SetHeader("X-Frame-Options", "deny"))

	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://*", "http://*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	router.Use(middleware.Timeout(35 * time.Second))
	router.Use(middleware.Compress(5))
	router.Use(httprate.LimitByIP(rateLimit, time.Minute))

	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("healthy"))
	})

	router.Handle("/metrics", promhttp.Handler())

	router.Route("/api/v1", func(r chi.Router) {
		r.Post("/plans", planHandler(orch, enricher, aiEnabled, log))
	})

	return router
}

func planHandler(orch *orchestrator.Orchestrator, enricher *narrative.Enricher, aiEnabled bool, log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		var req dto.GardenPlanRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "malformed request body")
			requestsTotal.WithLabelValues("bad_request").Inc()
			return
		}

		resp, err := orch.Plan(r.Context(), &req)
		if err != nil {
			log.Warn("planning request failed", zap.Error(err))

			status := http.StatusInternalServerError
			label := "error"
			if utilerrors.Is(err, constants.ErrValidation) {
				status = http.StatusBadRequest
				label = "validation_error"
			}

			writeError(w, status, "planning failed")
			requestsTotal.WithLabelValues(label).Inc()
			requestDuration.WithLabelValues(label).Observe(time.Since(start).Seconds())
			return
		}

		if aiEnabled && enricher != nil {
			for i := range resp.Solutions {
				resp.Solutions[i].Narrative = enricher.Describe(r.Context(), req.Objective, resp.Solutions[i])
			}
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(resp)

		requestsTotal.WithLabelValues("success").Inc()
		requestDuration.WithLabelValues("success").Observe(time.Since(start).Seconds())
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}
