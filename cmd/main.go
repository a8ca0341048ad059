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
	"github.com/robfig/cron/v3"
	"github.com/segmentio/kafka-go"

	"github.com/sbilibin2017/gw-water-quality/internal/classifier"
	"github.com/sbilibin2017/gw-water-quality/internal/facades"
	"github.com/sbilibin2017/gw-water-quality/internal/handlers"
	"github.com/sbilibin2017/gw-water-quality/internal/jwt"
	"github.com/sbilibin2017/gw-water-quality/internal/logger"
	"github.com/sbilibin2017/gw-water-quality/internal/middlewares"
	"github.com/sbilibin2017/gw-water-quality/internal/render"
	"github.com/sbilibin2017/gw-water-quality/internal/repositories"
	"github.com/sbilibin2017/gw-water-quality/internal/services"

	_ "github.com/jackc/pgx/v5/stdlib"
	httpSwagger "github.com/swaggo/http-swagger"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// Session backends
const (
	sessionBackendRedis  = "redis"
	sessionBackendMemory = "memory"
)

// config holds the application, storage, session, classifier and
// integration settings.
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

	SessionBackend    string
	SessionSweep      string
	RedisHost         string
	RedisPort         int
	RedisDB           int
	RedisPassword     string
	RedisPoolSize     int
	RedisMinIdleConns int

	JWTSecretKey string
	JWTExpSecond int

	ClassifierAddr      string
	ClassifierTimeoutMS int
	ClassifierThreshold float64

	KafkaBrokers          []string
	KafkaTopic            string
	KafkaPublishTimeoutMS int

	S3Endpoint  string
	S3Region    string
	S3AccessKey string
	S3SecretKey string
	S3Bucket    string
}

// @title gw-water-quality API
// @version 1.0.0
// @description Water potability prediction service with per-user history and reports
// @host localhost:8080
// @BasePath /
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
	fmt.Printf("Version: %s\nCommit: %s\nBuild: %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// parseConfig loads environment variables from a file and returns the
// application configuration.
func parseConfig(path string) (cfg config, err error) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}
	getInt := func(key, defaultValue string) (int, error) {
		v, err := strconv.Atoi(getEnv(key, defaultValue))
		if err != nil {
			return 0, fmt.Errorf("%s: %w", key, err)
		}
		return v, nil
	}

	// Application config
	cfg.AppHost = getEnv("APP_HOST", "localhost")
	cfg.AppPort = getEnv("APP_PORT", "8080")
	cfg.LogLevel = getEnv("APP_LOG_LEVEL", "info")

	// PostgreSQL config
	cfg.PGHost = getEnv("POSTGRES_HOST", "localhost")
	cfg.PGUser = getEnv("POSTGRES_USER", "user")
	cfg.PGPassword = getEnv("POSTGRES_PASSWORD", "password")
	cfg.PGDB = getEnv("POSTGRES_DB", "database")
	if cfg.PGPort, err = getInt("POSTGRES_PORT", "5432"); err != nil {
		return
	}
	if cfg.PGMaxOpenConns, err = getInt("POSTGRES_MAX_OPEN_CONNS", "16"); err != nil {
		return
	}
	if cfg.PGMaxIdleConns, err = getInt("POSTGRES_MAX_IDLE_CONNS", "8"); err != nil {
		return
	}

	// Session config
	cfg.SessionBackend = getEnv("SESSION_BACKEND", sessionBackendRedis)
	if cfg.SessionBackend != sessionBackendRedis && cfg.SessionBackend != sessionBackendMemory {
		err = fmt.Errorf("SESSION_BACKEND: unknown backend %q", cfg.SessionBackend)
		return
	}
	cfg.SessionSweep = getEnv("SESSION_SWEEP_SCHEDULE", "@every 1m")
	cfg.RedisHost = getEnv("REDIS_HOST", "localhost")
	if cfg.RedisPort, err = getInt("REDIS_PORT", "6379"); err != nil {
		return
	}
	if cfg.RedisDB, err = getInt("REDIS_DB", "0"); err != nil {
		return
	}
	cfg.RedisPassword = getEnv("REDIS_PASSWORD", "")
	if cfg.RedisPoolSize, err = getInt("REDIS_POOL_SIZE", "10"); err != nil {
		return
	}
	if cfg.RedisMinIdleConns, err = getInt("REDIS_MIN_IDLE_CONNS", "2"); err != nil {
		return
	}

	// JWT config
	cfg.JWTSecretKey = getEnv("JWT_SECRET_KEY", "my_super_secret_key")
	if cfg.JWTExpSecond, err = getInt("JWT_EXP_SECOND", "3600"); err != nil {
		return
	}

	// Classifier config
	cfg.ClassifierAddr = getEnv("CLASSIFIER_ADDR", "")
	if cfg.ClassifierTimeoutMS, err = getInt("CLASSIFIER_TIMEOUT_MS", "5000"); err != nil {
		return
	}
	if cfg.ClassifierThreshold, err = strconv.ParseFloat(getEnv("CLASSIFIER_THRESHOLD", "0.5"), 64); err != nil {
		err = fmt.Errorf("CLASSIFIER_THRESHOLD: %w", err)
		return
	}

	// Kafka config
	if brokers := getEnv("KAFKA_BROKERS", ""); brokers != "" {
		cfg.KafkaBrokers = strings.Split(brokers, ",")
	}
	cfg.KafkaTopic = getEnv("KAFKA_TOPIC", "predictions")
	if cfg.KafkaPublishTimeoutMS, err = getInt("KAFKA_PUBLISH_TIMEOUT_MS", "500"); err != nil {
		return
	}

	// S3 config
	cfg.S3Endpoint = getEnv("S3_ENDPOINT", "")
	cfg.S3Region = getEnv("S3_REGION", "us-east-1")
	cfg.S3AccessKey = getEnv("S3_ACCESS_KEY", "")
	cfg.S3SecretKey = getEnv("S3_SECRET_KEY", "")
	cfg.S3Bucket = getEnv("S3_BUCKET", "")

	return
}

// run initializes the logger, storage, integrations and HTTP server.
// It sets up routes, applies middleware, and handles graceful shutdown.
func run(ctx context.Context, cfg config) error {
	// Initialize logger
	if err := logger.Initialize(cfg.LogLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Sync()
	logger.Log.Infof("Logger initialized with level %s", cfg.LogLevel)

	// Connect to PostgreSQL
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		cfg.PGUser, cfg.PGPassword, cfg.PGHost, cfg.PGPort, cfg.PGDB)
	logger.Log.Infow("Connecting to PostgreSQL", "host", cfg.PGHost, "port", cfg.PGPort, "db", cfg.PGDB)

	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		return fmt.Errorf("PostgreSQL connection error: %w", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(cfg.PGMaxOpenConns)
	db.SetMaxIdleConns(cfg.PGMaxIdleConns)

	if err := repositories.RunMigrations(ctx, db.DB); err != nil {
		return fmt.Errorf("migrations failed: %w", err)
	}

	// Sessions
	var sessions services.SessionStore
	switch cfg.SessionBackend {
	case sessionBackendMemory:
		logger.Log.Warn("Using in-memory sessions, they will not survive a restart")
		memory := repositories.NewSessionMemoryRepository()
		sweeper := cron.New()
		if _, err := sweeper.AddFunc(cfg.SessionSweep, func() {
			memory.PurgeExpired(ctx)
		}); err != nil {
			return fmt.Errorf("invalid SESSION_SWEEP_SCHEDULE %q: %w", cfg.SessionSweep, err)
		}
		sweeper.Start()
		defer sweeper.Stop()
		sessions = memory
	default:
		rdb := redis.NewClient(&redis.Options{
			Addr:         fmt.Sprintf("%s:%d", cfg.RedisHost, cfg.RedisPort),
			Password:     cfg.RedisPassword,
			DB:           cfg.RedisDB,
			PoolSize:     cfg.RedisPoolSize,
			MinIdleConns: cfg.RedisMinIdleConns,
		})
		if err := rdb.Ping(ctx).Err(); err != nil {
			return fmt.Errorf("Redis connection error: %w", err)
		}
		defer rdb.Close()
		sessions = repositories.NewSessionCacheRepository(rdb)
	}

	// Classifier
	var model services.Classifier
	if cfg.ClassifierAddr != "" {
		conn, err := grpc.NewClient(cfg.ClassifierAddr, grpc.WithTransportCredentials(insecure.NewCredentials()))
		if err != nil {
			return fmt.Errorf("failed to connect to classifier at %s: %w", cfg.ClassifierAddr, err)
		}
		defer conn.Close()
		model = facades.NewClassifierGRPCFacade(conn)
	} else {
		logger.Log.Warn("CLASSIFIER_ADDR is empty, using the baseline classifier")
		model = classifier.NewBaseline(cfg.ClassifierThreshold)
	}

	predictionOpts := []services.PredictionOpt{
		services.WithClassifierTimeout(time.Duration(cfg.ClassifierTimeoutMS) * time.Millisecond),
		services.WithPublishTimeout(time.Duration(cfg.KafkaPublishTimeoutMS) * time.Millisecond),
	}

	// Kafka
	if len(cfg.KafkaBrokers) > 0 {
		kw := newKafkaWriter(cfg)
		defer kw.Close()
		predictionOpts = append(predictionOpts, services.WithKafkaWriter(kw))
	}

	// Report storage
	var artifacts services.ArtifactStorage
	if cfg.S3Bucket != "" {
		storage, err := facades.NewS3ArtifactStorage(ctx,
			cfg.S3Endpoint, cfg.S3Region, cfg.S3AccessKey, cfg.S3SecretKey, cfg.S3Bucket)
		if err != nil {
			return fmt.Errorf("S3 configuration error: %w", err)
		}
		artifacts = storage
	}

	// Initialize JWT service
	tokens := jwt.New(
		jwt.WithSecretKey(cfg.JWTSecretKey),
		jwt.WithExpiration(time.Duration(cfg.JWTExpSecond)*time.Second),
	)

	// Initialize repositories
	userReadRepo := repositories.NewUserReadRepository(db)
	userWriteRepo := repositories.NewUserWriteRepository(db)
	predictionReadRepo := repositories.NewPredictionReadRepository(db)
	predictionWriteRepo := repositories.NewPredictionWriteRepository(db, middlewares.GetTxFromContext)

	// Initialize services
	authService := services.NewAuthService(userReadRepo, userWriteRepo, sessions, tokens)
	predictionService := services.NewPredictionService(model, predictionWriteRepo, predictionOpts...)
	historyService := services.NewHistoryService(predictionReadRepo)
	reportService := services.NewReportService(render.NewTextRenderer(), artifacts)

	r := newRouter(routerDeps{
		auth:       authService,
		prediction: predictionService,
		history:    historyService,
		report:     reportService,
		tokens:     tokens,
		tx:         middlewares.TxMiddleware(db),
		swaggerURL: fmt.Sprintf("http://%s:%s/swagger/doc.json", cfg.AppHost, cfg.AppPort),
	})

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

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}

// newKafkaWriter builds the prediction event writer. Single events are
// flushed without waiting for a batch to fill.
func newKafkaWriter(cfg config) *kafka.Writer {
	timeout := time.Duration(cfg.KafkaPublishTimeoutMS) * time.Millisecond
	return &kafka.Writer{
		Addr:         kafka.TCP(cfg.KafkaBrokers...),
		Topic:        cfg.KafkaTopic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireOne,
		BatchSize:    1,
		BatchTimeout: 10 * time.Millisecond,
		WriteTimeout: timeout,
		ReadTimeout:  timeout,
	}
}

// routerDeps are the collaborators served by the HTTP router.
type routerDeps struct {
	auth interface {
		handlers.Signer
		handlers.Authenticator
		handlers.Logouter
		middlewares.SessionChecker
	}
	prediction handlers.Predictor
	history    interface {
		handlers.DashboardReader
		handlers.GalleryReader
	}
	report interface {
		handlers.ChartBuilder
		handlers.ReportBuilder
		handlers.ReportFileRenderer
		handlers.StandardsReader
	}
	tokens     middlewares.Tokener
	tx         func(http.Handler) http.Handler
	swaggerURL string
}

// newRouter mounts every endpoint with its authentication policy.
func newRouter(d routerDeps) *chi.Mux {
	requireAuth := middlewares.AuthMiddleware(d.tokens, d.auth)
	optionalAuth := middlewares.OptionalAuthMiddleware(d.tokens, d.auth)

	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware)

	// Public routes
	r.Post("/signup", handlers.NewSignupHandler(d.auth))
	r.Post("/login", handlers.NewLoginHandler(d.auth))
	r.Post("/chart", handlers.NewChartHandler(d.report))
	r.Post("/report", handlers.NewReportHandler(d.report))
	r.Get("/standards", handlers.NewStandardsHandler(d.report))
	r.Get("/defaults", handlers.NewDefaultsHandler(d.report))

	// Routes that behave differently for anonymous callers
	r.Group(func(r chi.Router) {
		r.Use(optionalAuth)
		r.Post("/logout", handlers.NewLogoutHandler(d.auth))
		r.Get("/dashboard", handlers.NewDashboardHandler(d.history))
		r.Get("/gallery", handlers.NewGalleryHandler(d.history))
	})

	// Protected routes
	r.Group(func(r chi.Router) {
		r.Use(requireAuth)
		r.Get("/me", handlers.NewMeHandler())
		r.Post("/report/file", handlers.NewReportFileHandler(d.report))
		r.With(d.tx).Post("/predict", handlers.NewPredictHandler(d.prediction))
	})

	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL(d.swaggerURL)))

	return r
}
