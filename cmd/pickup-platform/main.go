package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/revive-recycling/pickup-platform/internal/api/handlers"
	"github.com/revive-recycling/pickup-platform/internal/api/middleware"
	"github.com/revive-recycling/pickup-platform/internal/cache"
	"github.com/revive-recycling/pickup-platform/internal/config"
	"github.com/revive-recycling/pickup-platform/internal/health"
	"github.com/revive-recycling/pickup-platform/internal/metrics"
	repository "github.com/revive-recycling/pickup-platform/internal/repositories"
	service "github.com/revive-recycling/pickup-platform/internal/services"
	"github.com/revive-recycling/pickup-platform/internal/tracing"
	"github.com/revive-recycling/pickup-platform/pkg/sendgrid"
)

func main() {

	// Logger setup
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// Load config
	cfg := config.MustLoad()

	// Tracing setup
	shutdownTracing, err := tracing.Setup(context.Background(), &cfg.Tracing)
	if err != nil {
		slog.Error("Error setting up tracing", slog.Any("error", err))
		os.Exit(1)
	}

	// Database setup (runs embedded migrations)
	repos, err := repository.New(cfg)
	if err != nil {
		slog.Error("Error accessing the database", slog.Any("error", err))
		os.Exit(1)
	}

	defer func() {
		if err := repos.Close(); err != nil {
			slog.Error("Error closing database connection", slog.Any("error", err))
		}
	}()

	// Redis setup
	redisClient, err := repository.NewRedisClient(cfg)
	if err != nil {
		slog.Error("Error accessing the redis instance", slog.Any("error", err))
		os.Exit(1)
	}

	defer func() {
		if err := redisClient.Close(); err != nil {
			slog.Error("Error closing redis connection", slog.Any("error", err))
		}
	}()

	cacheStore := cache.NewRedisCache(redisClient, &cfg.Cache)
	rateLimitRepo := repository.NewRateLimitRepo(redisClient, cfg)

	jwtKey := []byte(cfg.Security.JWTKey)
	emailService := sendgrid.NewEmailService(cfg.SendGrid.APIKey, cfg.SendGrid.FromEmail, cfg.SendGrid.FromName)

	userService := service.NewUserService(repos.User, rateLimitRepo, jwtKey, cfg.Security.TokenTTL)
	userHandler := handlers.NewUserHandler(userService)
	addressService := service.NewAddressService(repos.Address)
	addressHandler := handlers.NewAddressHandler(addressService)
	catalogService := service.NewCatalogService(repos.Catalog, cacheStore, cfg.Cache.CatalogTTL)
	catalogHandler := handlers.NewCatalogHandler(catalogService)
	draftService := service.NewDraftService(cacheStore, catalogService, cfg.Cache.DraftTTL)
	draftHandler := handlers.NewDraftHandler(draftService)
	pickupService := service.NewPickupService(repos.Pickup, repos.User, draftService, emailService)
	pickupHandler := handlers.NewPickupHandler(pickupService)
	authMiddleware := middleware.NewAuthMiddleware(jwtKey)

	healthHandler, err := health.NewHealthHandler(cfg)
	if err != nil {
		slog.Error("Error setting up health checks", slog.Any("error", err))
		os.Exit(1)
	}

	slog.Info("storage initialized", slog.String("env", cfg.Env), slog.String("version", "1.0.0"))

	// Setup router
	routerMux := http.NewServeMux()
	routerMux.HandleFunc("POST /api/v1/users/register", userHandler.Register())
	routerMux.HandleFunc("POST /api/v1/users/login", userHandler.Login())
	routerMux.HandleFunc("GET /api/v1/users/profile", authMiddleware.Authenticate(userHandler.Profile()))
	routerMux.HandleFunc("PUT /api/v1/users/profile", authMiddleware.Authenticate(userHandler.UpdateProfile()))
	routerMux.HandleFunc("GET /api/v1/catalog", catalogHandler.ListCatalog())
	routerMux.HandleFunc("POST /api/v1/addresses", authMiddleware.Authenticate(addressHandler.CreateAddress()))
	routerMux.HandleFunc("GET /api/v1/addresses", authMiddleware.Authenticate(addressHandler.ListAddresses()))
	routerMux.HandleFunc("GET /api/v1/addresses/{id}", authMiddleware.Authenticate(addressHandler.GetAddress()))
	routerMux.HandleFunc("PUT /api/v1/addresses/{id}", authMiddleware.Authenticate(addressHandler.UpdateAddress()))
	routerMux.HandleFunc("DELETE /api/v1/addresses/{id}", authMiddleware.Authenticate(addressHandler.DeleteAddress()))
	routerMux.HandleFunc("GET /api/v1/pickups/draft", authMiddleware.Authenticate(draftHandler.GetDraft()))
	routerMux.HandleFunc("PUT /api/v1/pickups/draft", authMiddleware.Authenticate(draftHandler.UpdateDetails()))
	routerMux.HandleFunc("DELETE /api/v1/pickups/draft", authMiddleware.Authenticate(draftHandler.ClearDraft()))
	routerMux.HandleFunc("POST /api/v1/pickups/draft/items", authMiddleware.Authenticate(draftHandler.AddItem()))
	routerMux.HandleFunc("DELETE /api/v1/pickups/draft/items/{index}", authMiddleware.Authenticate(draftHandler.RemoveItem()))
	routerMux.HandleFunc("POST /api/v1/pickups", authMiddleware.Authenticate(pickupHandler.SchedulePickup()))
	routerMux.HandleFunc("GET /api/v1/pickups", authMiddleware.Authenticate(pickupHandler.ListPickups()))
	routerMux.HandleFunc("GET /api/v1/pickups/{id}", authMiddleware.Authenticate(pickupHandler.GetPickup()))
	routerMux.HandleFunc("PATCH /api/v1/pickups/{id}/cancel", authMiddleware.Authenticate(pickupHandler.CancelPickup()))
	routerMux.Handle("GET /metrics", metrics.Handler())
	routerMux.Handle("GET /health", healthHandler.Handler())

	// Middleware chaining
	var handler http.Handler = routerMux
	handler = middleware.Logging(handler)
	handler = metrics.Middleware(handler)
	handler = otelhttp.NewHandler(handler, "pickup-platform")

	// Setup http server
	server := http.Server{
		Addr:    cfg.Addr,
		Handler: handler,
	}

	slog.Info("Server is starting...", slog.String("address", cfg.Addr))

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := server.ListenAndServe(); err != http.ErrServerClosed {
			slog.Error("Failed to start server", slog.Any("error", err))
		}
	}()

	<-done

	slog.Warn("Shutdown signal received. Preparing to stop the server...")

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("Server shutdown encountered an issue", slog.Any("error", err))
	} else {
		slog.Info("Server shut down gracefully. All connections closed.")
	}

	if err := shutdownTracing(shutdownCtx); err != nil {
		slog.Error("Tracing shutdown encountered an issue", slog.Any("error", err))
	}
}
