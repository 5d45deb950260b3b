package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net"
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

	"github.com/mentorhq/mentorship-api/internal/handlers"
	"github.com/mentorhq/mentorship-api/internal/logger"
	"github.com/mentorhq/mentorship-api/internal/middlewares"
	"github.com/mentorhq/mentorship-api/internal/repositories"
	"github.com/mentorhq/mentorship-api/internal/services"

	_ "github.com/jackc/pgx/v5/stdlib"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title mentorship-api
// @version 1.0.0
// @description Backend service for a mentorship marketplace: users, mentor and mentee profiles, sessions and pricing plans
// @host localhost:8080
// @BasePath /
// @schemes http
func main() {
	printBuildInfo()
	configPath := parseFlags()

	appHost, appPort, logLevel,
		pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		redisHost, redisPort, redisDB, redisPassword,
		redisPoolSize, redisMinIdleConns, emailCacheTTLSecond,
		kafkaBrokers, kafkaTopic,
		mxTimeoutSecond,
		err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(),
		appHost, appPort, logLevel,
		pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		redisHost, redisPort, redisDB, redisPassword,
		redisPoolSize, redisMinIdleConns, emailCacheTTLSecond,
		kafkaBrokers, kafkaTopic,
		mxTimeoutSecond,
	); err != nil {
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

// parseConfig loads environment variables from a file and returns
// all application, database, Redis, Kafka and logging configuration.
func parseConfig(path string) (
	appHost, appPort, logLevel string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int,
	redisHost string, redisPort int, redisDB int, redisPassword string,
	redisPoolSize, redisMinIdleConns, emailCacheTTLSecond int,
	kafkaBrokers, kafkaTopic string,
	mxTimeoutSecond int,
	err error,
) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	// Application config
	appHost = getEnv("APP_HOST", "localhost")
	appPort = getEnv("APP_PORT", "8080")
	logLevel = getEnv("APP_LOG_LEVEL", "info")

	// PostgreSQL config
	pgHost = getEnv("POSTGRES_HOST", "localhost")
	pgUser = getEnv("POSTGRES_USER", "user")
	pgPassword = getEnv("POSTGRES_PASSWORD", "password")
	pgDB = getEnv("POSTGRES_DB", "mentorship")
	if pgPort, err = strconv.Atoi(getEnv("POSTGRES_PORT", "5432")); err != nil {
		return
	}
	if pgMaxOpenConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_OPEN_CONNS", "16")); err != nil {
		return
	}
	if pgMaxIdleConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_IDLE_CONNS", "8")); err != nil {
		return
	}

	// Redis config
	redisHost = getEnv("REDIS_HOST", "localhost")
	if redisPort, err = strconv.Atoi(getEnv("REDIS_PORT", "6379")); err != nil {
		return
	}
	if redisDB, err = strconv.Atoi(getEnv("REDIS_DB", "0")); err != nil {
		return
	}
	redisPassword = getEnv("REDIS_PASSWORD", "")
	if redisPoolSize, err = strconv.Atoi(getEnv("REDIS_POOL_SIZE", "10")); err != nil {
		return
	}
	if redisMinIdleConns, err = strconv.Atoi(getEnv("REDIS_MIN_IDLE_CONNS", "2")); err != nil {
		return
	}
	if emailCacheTTLSecond, err = strconv.Atoi(getEnv("EMAIL_CACHE_TTL_SECOND", "86400")); err != nil {
		return
	}

	// Kafka config. Empty broker list disables event publishing.
	kafkaBrokers = getEnv("KAFKA_BROKERS", "")
	kafkaTopic = getEnv("KAFKA_TOPIC", "mentorship-events")

	// Email verification config
	if mxTimeoutSecond, err = strconv.Atoi(getEnv("MX_LOOKUP_TIMEOUT_SECOND", "5")); err != nil {
		return
	}

	return
}

// run initializes the logger, database, Redis, Kafka writer and HTTP server.
// It sets up routes, applies middleware, and handles graceful shutdown.
func run(ctx context.Context,
	appHost, appPort, logLevel string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int,
	redisHost string, redisPort, redisDB int, redisPassword string,
	redisPoolSize, redisMinIdleConns, emailCacheTTLSecond int,
	kafkaBrokers, kafkaTopic string,
	mxTimeoutSecond int,
) error {
	// Initialize logger
	if err := logger.Initialize(logLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Log.Sync()
	logger.Log.Infof("Logger initialized with level %s", logLevel)

	// Connect to PostgreSQL
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		pgUser, pgPassword, pgHost, pgPort, pgDB)
	logger.Log.Infof("Connecting to PostgreSQL: %s:%d/%s", pgHost, pgPort, pgDB)

	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		logger.Log.Fatal("PostgreSQL connection error:", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(pgMaxOpenConns)
	db.SetMaxIdleConns(pgMaxIdleConns)
	if err := db.PingContext(ctx); err != nil {
		logger.Log.Fatal("PostgreSQL ping failed:", err)
	}

	if err := repositories.ApplySchema(ctx, db); err != nil {
		logger.Log.Fatal("schema migration failed:", err)
	}

	// Connect to Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%d", redisHost, redisPort),
		Password:     redisPassword,
		DB:           redisDB,
		PoolSize:     redisPoolSize,
		MinIdleConns: redisMinIdleConns,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		logger.Log.Fatal("Redis connection error:", err)
	}
	defer rdb.Close()

	// Kafka writer is optional: without brokers events are skipped.
	var eventsWriter services.KafkaWriter
	if kafkaBrokers != "" {
		w := &kafka.Writer{
			Addr:     kafka.TCP(strings.Split(kafkaBrokers, ",")...),
			Topic:    kafkaTopic,
			Balancer: &kafka.LeastBytes{},
		}
		defer w.Close()
		eventsWriter = w
		logger.Log.Infof("Kafka writer configured for topic %s", kafkaTopic)
	} else {
		logger.Log.Info("Kafka brokers not configured, event publishing disabled")
	}

	// Initialize repositories
	txGetter := middlewares.GetTxFromContext
	userReadRepo := repositories.NewUserReadRepository(db, txGetter)
	userWriteRepo := repositories.NewUserWriteRepository(db, txGetter)
	mentorProfileReadRepo := repositories.NewMentorProfileReadRepository(db, txGetter)
	mentorProfileWriteRepo := repositories.NewMentorProfileWriteRepository(db, txGetter)
	availabilityWriteRepo := repositories.NewMentorAvailabilityWriteRepository(db, txGetter)
	skillWriteRepo := repositories.NewMentorSkillWriteRepository(db, txGetter)
	menteeProfileReadRepo := repositories.NewMenteeProfileReadRepository(db, txGetter)
	menteeProfileWriteRepo := repositories.NewMenteeProfileWriteRepository(db, txGetter)
	sessionWriteRepo := repositories.NewSessionWriteRepository(db, txGetter)
	planWriteRepo := repositories.NewPricingPlanWriteRepository(db, txGetter)
	userPlanWriteRepo := repositories.NewUserPlanWriteRepository(db, txGetter)
	emailCacheRepo := repositories.NewEmailDomainCacheRepository(rdb, time.Duration(emailCacheTTLSecond)*time.Second)

	// Initialize services
	emailVerifier := services.NewEmailVerifierService(
		net.DefaultResolver,
		emailCacheRepo,
		time.Duration(mxTimeoutSecond)*time.Second,
	)
	userService := services.NewUserService(userReadRepo, userWriteRepo, emailVerifier, eventsWriter)
	mentorService := services.NewMentorService(userReadRepo, mentorProfileReadRepo, mentorProfileWriteRepo, availabilityWriteRepo, skillWriteRepo)
	menteeService := services.NewMenteeService(userReadRepo, menteeProfileReadRepo, menteeProfileWriteRepo)
	sessionService := services.NewSessionService(userReadRepo, sessionWriteRepo, eventsWriter)
	pricingService := services.NewPricingService(planWriteRepo, userPlanWriteRepo)

	// Initialize handlers
	createUserHandler := handlers.NewCreateUserHandler(userService)
	listUsersHandler := handlers.NewListUsersHandler(userService)
	getUserByEmailHandler := handlers.NewGetUserByEmailHandler(userService)
	loginHandler := handlers.NewLoginHandler(userService)
	createMentorProfileHandler := handlers.NewCreateMentorProfileHandler(mentorService)
	addAvailabilityHandler := handlers.NewAddAvailabilityHandler(mentorService)
	addSkillHandler := handlers.NewAddSkillHandler(mentorService)
	createMenteeProfileHandler := handlers.NewCreateMenteeProfileHandler(menteeService)
	createSessionHandler := handlers.NewCreateSessionHandler(sessionService)
	createPlanHandler := handlers.NewCreatePlanHandler(pricingService)
	assignPlanHandler := handlers.NewAssignPlanHandler(pricingService)

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(logger.Log))

	r.Get("/", handlers.NewRootHandler())
	r.Get("/health", handlers.NewHealthHandler())

	// Mutating routes run inside a per-request transaction.
	r.Group(func(r chi.Router) {
		r.Use(middlewares.TxMiddleware(db))
		r.Post("/users/", createUserHandler)
		r.Post("/users/login", loginHandler)
		r.Post("/mentors/profiles", createMentorProfileHandler)
		r.Post("/mentors/availability", addAvailabilityHandler)
		r.Post("/mentors/skills", addSkillHandler)
		r.Post("/mentees/profiles", createMenteeProfileHandler)
		r.Post("/sessions/", createSessionHandler)
		r.Post("/pricing/plans", createPlanHandler)
		r.Post("/pricing/user-plans", assignPlanHandler)
	})

	r.Get("/users/", listUsersHandler)
	r.Get("/users/by-email", getUserByEmailHandler)

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", appHost, appPort)),
	))

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", appHost, appPort),
		Handler: r,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s:%s", appHost, appPort)
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
