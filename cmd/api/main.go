package main

import (
	"context"
	"encoding/json"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"storepulse/internal/application"
	"storepulse/internal/domain"
	apiinfra "storepulse/internal/infrastructure/api"
	authinfra "storepulse/internal/infrastructure/auth"
	"storepulse/internal/infrastructure/locker"
	"storepulse/internal/infrastructure/metrics"
	"storepulse/internal/infrastructure/repository"
	shopifyinfra "storepulse/internal/infrastructure/shopify"

	securitymiddleware "storepulse/internal/infrastructure/middleware"
)

func main() {
	// Initialize logger
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	if err := godotenv.Load(); err != nil {
		logger.Warn().Msg("⚠️  Warning: .env file not found")
	}

	// Get configuration from environment
	mongoURI := os.Getenv("MONGODB_URI")
	if mongoURI == "" {
		mongoURI = "mongodb://localhost:27017"
	}

	redisAddr := os.Getenv("REDIS_ADDR")
	if redisAddr == "" {
		redisAddr = "localhost:6379"
	}

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		logger.Fatal().Msg("JWT_SECRET environment variable is required")
	}

	devMode := os.Getenv("APP_ENV") != "production"

	// Connect to MongoDB
	client, err := mongo.Connect(context.Background(), options.Client().ApplyURI(mongoURI))
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to connect to MongoDB")
	}
	defer client.Disconnect(context.Background())

	db := client.Database(os.Getenv("MONGODB_DATABASE"))
	if err := repository.EnsureIndexes(context.Background(), db); err != nil {
		logger.Fatal().Err(err).Msg("Failed to create MongoDB indexes")
	}

	// Connect to Redis (sync locks)
	redisClient := redis.NewClient(&redis.Options{Addr: redisAddr})

	// Initialize infrastructure (implementations)
	tokenService := authinfra.NewJWTService(jwtSecret, authinfra.TokenTTL)
	syncLocker := locker.NewRedisSyncLocker(redisClient, locker.DefaultLockTTL, logger)
	storeClient := shopifyinfra.NewClient(logger)
	credentialsResolver := shopifyinfra.NewConfigCredentialsResolver(
		shopifyinfra.ParseTenantStores(os.Getenv("SHOPIFY_TENANT_STORES")),
		domain.StoreCredentials{
			Domain:      os.Getenv("SHOPIFY_STORE_URL"),
			AccessToken: os.Getenv("SHOPIFY_ACCESS_TOKEN"),
		},
		logger,
	)

	// Initialize repositories
	tenantRepo := repository.NewMongoTenantRepository(db)
	storeRepo := repository.NewMongoStoreRepository(db)
	commerceRepo := repository.NewMongoCommerceRepository(db)
	insightsRepo := repository.NewMongoInsightsRepository(db)

	// Initialize application services
	authService := application.NewAuthService(tenantRepo, tokenService, logger)
	tenantService := application.NewTenantService(tenantRepo, logger)
	syncService := application.NewSyncService(
		storeRepo,
		commerceRepo,
		storeClient,
		credentialsResolver,
		syncLocker,
		logger,
	)
	insightsService := application.NewInsightsService(insightsRepo, logger)

	// Initialize handlers
	authHandler := apiinfra.NewAuthHandler(authService, logger, devMode)
	tenantHandler := apiinfra.NewTenantHandler(tenantService, logger, devMode)
	syncHandler := apiinfra.NewSyncHandler(syncService, logger, devMode)
	insightsHandler := apiinfra.NewInsightsHandler(insightsService, logger, devMode)

	// Setup router
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(metrics.Middleware)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	}))

	// Public routes
	// Health check - must be public for monitoring
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	})

	// Prometheus metrics - public
	r.Handle("/metrics", promhttp.Handler())

	// Swagger documentation - public
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"), // The URL pointing to API definition
	))
	r.Get("/swagger/doc.json", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		http.ServeFile(w, r, "./docs/swagger.json")
	})

	// Auth routes
	r.Post("/auth/signup", authHandler.Signup)
	r.Post("/auth/login", authHandler.Login)

	// Tenant directory
	r.Get("/tenants", tenantHandler.List)

	// Routes requiring a bearer token
	r.Group(func(r chi.Router) {
		r.Use(securitymiddleware.RequireTenant(tokenService, logger))

		r.Post("/shopify/sync", syncHandler.Sync)

		r.Get("/insights/overview", insightsHandler.Overview)
		r.Get("/insights/revenue", insightsHandler.Revenue)
		r.Get("/insights/top-customers", insightsHandler.TopCustomers)
		r.Get("/insights/top-products", insightsHandler.TopProducts)
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	logger.Info().Str("port", port).Msg("Starting API server")
	logger.Info().Msg("Swagger documentation available at http://localhost:" + port + "/swagger/index.html")
	if err := http.ListenAndServe(":"+port, r); err != nil {
		logger.Fatal().Err(err).Msg("Failed to start server")
	}
}
