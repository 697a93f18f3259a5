package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"

	"github.com/imhotep-finance/finance-service/internal/facades"
	"github.com/imhotep-finance/finance-service/internal/handlers"
	"github.com/imhotep-finance/finance-service/internal/jwt"
	"github.com/imhotep-finance/finance-service/internal/logger"
	"github.com/imhotep-finance/finance-service/internal/mailer"
	"github.com/imhotep-finance/finance-service/internal/middlewares"
	"github.com/imhotep-finance/finance-service/internal/repositories"
	"github.com/imhotep-finance/finance-service/internal/services"

	_ "github.com/imhotep-finance/finance-service/docs"
	_ "github.com/jackc/pgx/v5/stdlib"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title finance-service API
// @version 1.0.0
// @description Personal finance service: multi-currency ledger, transaction journal, wishlist funding and net-worth reporting
// @host localhost:8080
// @BasePath /api/v1
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	cfg, err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(), cfg); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Starting service version %s, commit %s, build %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// config holds everything the service needs to start, loaded from the
// environment with a .env file as an optional base.
type config struct {
	AppHost  string
	AppPort  string
	LogLevel string

	PGHost         string
	PGPort         int
	PGUser         string
	PGPassword     string
	PGDB           string
	PGMaxOpenConns int
	PGMaxIdleConns int

	RedisHost     string
	RedisPort     int
	RedisDB       int
	RedisPassword string
	RateCacheTTL  time.Duration

	KafkaBrokers []string
	KafkaTopic   string

	RatesPrimaryURL  string
	RatesFallbackURL string
	RatesTimeout     time.Duration

	SMTPHost     string
	SMTPPort     int
	SMTPUser     string
	SMTPPassword string
	SMTPFrom     string

	JWTSecretKey string
	JWTExp       time.Duration
}

// parseConfig loads environment variables from a file and returns the
// application, database, Redis, Kafka, rate-provider, SMTP, logging and
// JWT configuration.
func parseConfig(path string) (cfg config, err error) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}
	getInt := func(key, defaultValue string) int {
		var n int
		if err == nil {
			n, err = strconv.Atoi(getEnv(key, defaultValue))
		}
		return n
	}

	// Application config
	cfg.AppHost = getEnv("APP_HOST", "localhost")
	cfg.AppPort = getEnv("APP_PORT", "8080")
	cfg.LogLevel = getEnv("APP_LOG_LEVEL", "info")

	// PostgreSQL config
	cfg.PGHost = getEnv("POSTGRES_HOST", "localhost")
	cfg.PGUser = getEnv("POSTGRES_USER", "user")
	cfg.PGPassword = getEnv("POSTGRES_PASSWORD", "password")
	cfg.PGDB = getEnv("POSTGRES_DB", "finance")
	cfg.PGPort = getInt("POSTGRES_PORT", "5432")
	cfg.PGMaxOpenConns = getInt("POSTGRES_MAX_OPEN_CONNS", "16")
	cfg.PGMaxIdleConns = getInt("POSTGRES_MAX_IDLE_CONNS", "8")

	// Redis config
	cfg.RedisHost = getEnv("REDIS_HOST", "localhost")
	cfg.RedisPort = getInt("REDIS_PORT", "6379")
	cfg.RedisDB = getInt("REDIS_DB", "0")
	cfg.RedisPassword = getEnv("REDIS_PASSWORD", "")
	cfg.RateCacheTTL = time.Duration(getInt("RATE_CACHE_TTL_SECOND", "86400")) * time.Second

	// Kafka config; empty KAFKA_BROKERS disables event publishing
	if brokers := getEnv("KAFKA_BROKERS", ""); brokers != "" {
		cfg.KafkaBrokers = strings.Split(brokers, ",")
	}
	cfg.KafkaTopic = getEnv("KAFKA_TOPIC", "transactions")

	// Exchange-rate providers
	cfg.RatesPrimaryURL = getEnv("RATES_PRIMARY_URL", "https://v6.exchangerate-api.com/v6/latest")
	cfg.RatesFallbackURL = getEnv("RATES_FALLBACK_URL", "https://open.er-api.com/v6/latest")
	cfg.RatesTimeout = time.Duration(getInt("RATES_TIMEOUT_SECOND", "10")) * time.Second

	// SMTP config
	cfg.SMTPHost = getEnv("SMTP_HOST", "localhost")
	cfg.SMTPPort = getInt("SMTP_PORT", "1025")
	cfg.SMTPUser = getEnv("SMTP_USER", "")
	cfg.SMTPPassword = getEnv("SMTP_PASSWORD", "")
	cfg.SMTPFrom = getEnv("SMTP_FROM", "no-reply@imhotep.finance")

	// JWT config
	cfg.JWTSecretKey = getEnv("JWT_SECRET_KEY", "my_super_secret_key")
	cfg.JWTExp = time.Duration(getInt("JWT_EXP_SECOND", "3600")) * time.Second

	return cfg, err
}

// run initializes the logger, database, Redis, Kafka, SMTP and HTTP server.
// It sets up routes, applies middleware, and handles graceful shutdown.
func run(ctx context.Context, cfg config) error {
	// Initialize logger
	if err := logger.Initialize(cfg.LogLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Log.Sync()
	logger.Log.Infof("Logger initialized with level %s", cfg.LogLevel)

	// Connect to PostgreSQL
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		cfg.PGUser, cfg.PGPassword, cfg.PGHost, cfg.PGPort, cfg.PGDB)
	logger.Log.Infof("Connecting to PostgreSQL at %s:%d", cfg.PGHost, cfg.PGPort)

	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		return fmt.Errorf("PostgreSQL connection error: %w", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(cfg.PGMaxOpenConns)
	db.SetMaxIdleConns(cfg.PGMaxIdleConns)
	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("PostgreSQL ping failed: %w", err)
	}

	// Connect to Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.RedisHost, cfg.RedisPort),
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("Redis connection error: %w", err)
	}
	defer rdb.Close()

	// Kafka writer for transaction events. The interface stays nil when
	// brokers are not configured so services skip publishing entirely.
	var eventsWriter services.KafkaWriter
	if len(cfg.KafkaBrokers) > 0 {
		kafkaWriter := &kafka.Writer{
			Addr:         kafka.TCP(cfg.KafkaBrokers...),
			Topic:        cfg.KafkaTopic,
			Balancer:     &kafka.LeastBytes{},
			RequiredAcks: kafka.RequireOne,
		}
		defer kafkaWriter.Close()
		eventsWriter = kafkaWriter
		logger.Log.Infof("Kafka producer configured for topic %s", cfg.KafkaTopic)
	} else {
		logger.Log.Warn("Kafka brokers not configured, event publishing disabled")
	}

	// Initialize JWT service
	tokener := jwt.New(cfg.JWTSecretKey, cfg.JWTExp)

	// Initialize external facades
	ratesFacade := facades.NewRatesHTTPFacade(cfg.RatesPrimaryURL, cfg.RatesFallbackURL, cfg.RatesTimeout)
	smtpMailer := mailer.New(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword, cfg.SMTPFrom)

	// Initialize repositories
	txGetter := middlewares.GetTxFromContext
	userReadRepo := repositories.NewUserReadRepository(db)
	userWriteRepo := repositories.NewUserWriteRepository(db, txGetter)
	networthReadRepo := repositories.NewNetworthReadRepository(db)
	networthWriteRepo := repositories.NewNetworthWriteRepository(db, txGetter)
	transReadRepo := repositories.NewTransactionReadRepository(db)
	transWriteRepo := repositories.NewTransactionWriteRepository(db, txGetter)
	wishReadRepo := repositories.NewWishlistReadRepository(db)
	wishWriteRepo := repositories.NewWishlistWriteRepository(db, txGetter)
	rateCacheRepo := repositories.NewRateCacheRepository(rdb, cfg.RateCacheTTL)

	// Initialize services
	authService := services.NewAuthService(userReadRepo, userWriteRepo, tokener, smtpMailer)
	profileService := services.NewProfileService(userReadRepo, userWriteRepo, smtpMailer)
	transService := services.NewTransactionService(
		networthReadRepo, networthWriteRepo, transReadRepo, transWriteRepo, wishWriteRepo, eventsWriter)
	wishlistService := services.NewWishlistService(
		wishReadRepo, wishWriteRepo, networthReadRepo, networthWriteRepo, transWriteRepo, eventsWriter)
	networthService := services.NewNetworthService(networthReadRepo, userReadRepo, ratesFacade, rateCacheRepo)

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(logger.Log))

	r.Route("/api/v1", func(r chi.Router) {
		// Public routes
		r.Post("/register", handlers.NewRegisterHandler(authService))
		r.Post("/login", handlers.NewLoginHandler(authService))
		r.Post("/verify-email", handlers.NewVerifyEmailHandler(authService))
		r.Post("/forgot-password", handlers.NewForgotPasswordHandler(authService))

		// Protected routes with JWT middleware; writes share one
		// transaction per request
		r.Group(func(r chi.Router) {
			r.Use(middlewares.AuthMiddleware(tokener))
			r.Use(middlewares.TxMiddleware(db))

			r.Get("/balance", handlers.NewBalanceHandler(networthService, tokener))
			r.Get("/networth", handlers.NewNetworthHandler(networthService, tokener))

			r.Post("/wallet/deposit", handlers.NewDepositHandler(transService, tokener))
			r.Post("/wallet/withdraw", handlers.NewWithdrawHandler(transService, tokener))

			r.Get("/transactions", handlers.NewTransactionsListHandler(transService, tokener))
			r.Put("/transactions/{id}", handlers.NewTransactionEditHandler(transService, tokener))
			r.Delete("/transactions/{id}", handlers.NewTransactionDeleteHandler(transService, tokener))

			r.Get("/wishlist", handlers.NewWishlistListHandler(wishlistService, tokener))
			r.Get("/wishlist/years", handlers.NewWishlistYearsHandler(wishlistService, tokener))
			r.Post("/wishlist", handlers.NewWishAddHandler(wishlistService, tokener))
			r.Put("/wishlist/{id}", handlers.NewWishEditHandler(wishlistService, tokener))
			r.Delete("/wishlist/{id}", handlers.NewWishDeleteHandler(wishlistService, tokener))
			r.Post("/wishlist/{id}/fund", handlers.NewWishFundHandler(wishlistService, tokener))
			r.Post("/wishlist/{id}/unfund", handlers.NewWishUnfundHandler(wishlistService, tokener))

			r.Put("/settings/favorite-currency", handlers.NewFavoriteCurrencyHandler(profileService, tokener))
			r.Put("/settings/password", handlers.NewChangePasswordHandler(profileService, tokener))
			r.Put("/settings/email", handlers.NewChangeEmailHandler(profileService, tokener))
		})
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", cfg.AppHost, cfg.AppPort)),
	))

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", cfg.AppHost, cfg.AppPort),
		Handler: r,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s:%s", cfg.AppHost, cfg.AppPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}
