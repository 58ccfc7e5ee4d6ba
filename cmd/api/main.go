package main

import (
	"context"
	"expvar"
	"fmt"
	"log"
	"os"
	"runtime"
	"strconv"
	"time"

	"github.com/Zorochan404/adv-backend-sub001/internal/auth"
	"github.com/Zorochan404/adv-backend-sub001/internal/cache"
	appconfig "github.com/Zorochan404/adv-backend-sub001/internal/config"
	"github.com/Zorochan404/adv-backend-sub001/internal/db"
	"github.com/Zorochan404/adv-backend-sub001/internal/domain/accesscontrol"
	"github.com/Zorochan404/adv-backend-sub001/internal/domain/bookings"
	"github.com/Zorochan404/adv-backend-sub001/internal/domain/catalog"
	"github.com/Zorochan404/adv-backend-sub001/internal/domain/otp"
	"github.com/Zorochan404/adv-backend-sub001/internal/domain/pricing"
	"github.com/Zorochan404/adv-backend-sub001/internal/domain/storage"
	"github.com/Zorochan404/adv-backend-sub001/internal/ratelimiter"
	"github.com/Zorochan404/adv-backend-sub001/internal/refcode"
	"github.com/Zorochan404/adv-backend-sub001/internal/scheduler"
	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// LoadRateLimiterConfig retrieves rate limiter settings from environment variables
func LoadRateLimiterConfig() ratelimiter.Config {
	defaultRequests := 200
	defaultEnabled := false

	requestsPerTimeFrame := defaultRequests
	if val, exists := os.LookupEnv("RATELIMITER_REQUESTS_COUNT"); exists {
		if parsedVal, err := strconv.Atoi(val); err == nil {
			requestsPerTimeFrame = parsedVal
		} else {
			fmt.Println("Invalid RATELIMITER_REQUESTS_COUNT, defaulting to", defaultRequests)
		}
	}

	enabled := defaultEnabled
	if val, exists := os.LookupEnv("RATE_LIMITER_ENABLED"); exists {
		if parsedVal, err := strconv.ParseBool(val); err == nil {
			enabled = parsedVal
		} else {
			fmt.Println("Invalid RATE_LIMITER_ENABLED, defaulting to", defaultEnabled)
		}
	}

	return ratelimiter.Config{
		RequestsPerTimeFrame: requestsPerTimeFrame,
		TimeFrame:            5 * time.Second,
		Enabled:              enabled,
	}
}

// NewLogger creates a colored console logger at the given level.
func NewLogger(level string) (*zap.SugaredLogger, error) {
	lvl := zapcore.InfoLevel
	if level != "" {
		if err := lvl.UnmarshalText([]byte(level)); err != nil {
			return nil, fmt.Errorf("invalid log level %q: %w", level, err)
		}
	}

	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderCfg),
		zapcore.AddSync(os.Stdout),
		lvl,
	)
	return zap.New(core).Sugar(), nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return v
}

func loadConfig() config {
	dbAddr := os.Getenv("DB_ADDR")
	maxOpenConns := envInt("DB_MAX_OPEN_CONNS", 30)
	maxIdleTime := envOr("DB_MAX_IDLE_TIME", "15m")

	return config{
		addr:        envOr("ADDR", ":8080"),
		env:         envOr("ENV", "development"),
		apiURL:      envOr("EXTERNAL_URL", "localhost:8080"),
		logLevel:    os.Getenv("LOG_LEVEL"),
		policyFile:  os.Getenv("POLICY_FILE"),
		hashidsSalt: os.Getenv("HASHIDS_SALT"),
		cloudinary:  os.Getenv("CLOUDINARY_URL"),
		sweepSpec:   os.Getenv("OVERDUE_SWEEP_SCHEDULE"),
		db: dbConfig{
			addr:         dbAddr,
			maxOpenConns: maxOpenConns,
			maxIdleTime:  maxIdleTime,
		},
		catalogDB: dbConfig{
			addr:         envOr("CATALOG_DB_ADDR", dbAddr),
			maxOpenConns: envInt("CATALOG_DB_MAX_OPEN_CONNS", 10),
			maxIdleTime:  maxIdleTime,
		},
		redis: redisConfig{
			url: os.Getenv("REDIS_URL"),
		},
		auth: authConfig{
			basic: basicConfig{
				user: os.Getenv("AUTH_BASIC_USER"),
				pass: os.Getenv("AUTH_BASIC_PASS"),
			},
			token: tokenConfig{
				refreshSecret:   os.Getenv("AUTH_TOKEN_REFRESH_SECRET"),
				secret:          os.Getenv("AUTH_TOKEN_SECRET"),
				accessTokenExp:  time.Hour * 24,     // 1 day
				refreshTokenExp: time.Hour * 24 * 9, // 9 days
				iss:             "carrental",
			},
		},
		rateLimiter: LoadRateLimiterConfig(),
	}
}

var version = "1.0.0"

//	@title			Car Rental Booking API
//	@description	Booking lifecycle API for renters and parking in-charges.

//	@contact.name	API Support
//	@contact.url	http://www.swagger.io/support
//	@contact.email	support@swagger.io

//	@license.name	Apache 2.0
//	@license.url	http://www.apache.org/licenses/LICENSE-2.0.html

//	@BasePath					/v1
//	@securityDefinitions.apikey	ApiKeyAuth
//	@in							header
//	@name						Authorization
//	@description

func main() {
	// .env is optional; real deployments set the environment directly
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Fatalf("Error loading .env file: %v", err)
	}

	cfg := loadConfig()

	logger, err := NewLogger(cfg.logLevel)
	if err != nil {
		log.Fatalf("Error creating logger: %v", err)
	}
	defer logger.Sync()

	policy, err := appconfig.LoadPolicy(cfg.policyFile)
	if err != nil {
		logger.Fatal(err)
	}
	if cfg.sweepSpec != "" {
		policy.OverdueSweepSchedule = cfg.sweepSpec
	}

	ctx := context.Background()

	// Database
	pool, err := db.New(ctx, db.Config{
		Addr:         cfg.db.addr,
		MaxOpenConns: int32(cfg.db.maxOpenConns),
		MaxIdleTime:  cfg.db.maxIdleTime,
	})
	if err != nil {
		logger.Fatal(err)
	}
	defer pool.Close()
	logger.Info("database connection pool established")

	catalogDB, err := db.NewCatalog(ctx, db.Config{
		Addr:         cfg.catalogDB.addr,
		MaxOpenConns: int32(cfg.catalogDB.maxOpenConns),
		MaxIdleTime:  cfg.catalogDB.maxIdleTime,
	})
	if err != nil {
		logger.Fatal(err)
	}
	defer catalogDB.Close()

	//storage
	container := storage.NewContainer(pool)
	catalogRepo := catalog.NewRepository(catalogDB)

	var redisClient *redis.Client
	if cfg.redis.url != "" {
		redisClient, err = cache.NewClient(ctx, cfg.redis.url)
		if err != nil {
			logger.Warnw("redis unavailable, topup catalog served uncached", "error", err.Error())
			redisClient = nil
		} else {
			defer redisClient.Close()
		}
	}
	topupCache := cache.NewTopupCache(redisClient, catalogRepo, policy.TopupCacheTTL, logger)

	//cloudinary
	cld, err := cloudinary.NewFromURL(cfg.cloudinary)
	if err != nil {
		logger.Fatal(err)
	}

	refs, err := refcode.New(cfg.hashidsSalt)
	if err != nil {
		logger.Fatal(err)
	}

	bookingService := bookings.NewService(bookings.Deps{
		Store:    container.Bookings,
		Tx:       container,
		Ledger:   container.Ledger,
		Cars:     catalogRepo,
		Parkings: catalogRepo,
		Topups:   catalogRepo,
		Renters:  container.Users,
		Policy:   accesscontrol.NewPolicy(accesscontrol.DefaultRules()),
		OTP: otp.NewEngine(otp.Config{
			Digits:       policy.OTPDigits,
			ResendWindow: policy.OTPResendWindow,
			PickupGrace:  policy.OTPPickupGrace,
		}),
		Pricing:            pricing.NewCalculator(policy.AdvancePercentage, policy.DefaultLateFeeRate),
		Logger:             logger,
		MaxRescheduleCount: policy.MaxRescheduleCount,
		SweepBatchSize:     policy.OverdueSweepBatchSize,
	})

	// Rate limiters
	rateLimiter := ratelimiter.NewFixedWindowLimiter(
		cfg.rateLimiter.RequestsPerTimeFrame,
		cfg.rateLimiter.TimeFrame,
	)
	otpLimiter := ratelimiter.NewFixedWindowLimiter(otpAttemptsPerWindow, otpAttemptWindow)

	// Authenticator
	jwtAuthenticator := auth.NewJWTAuthenticator(
		cfg.auth.token.secret,
		cfg.auth.token.refreshSecret,
		cfg.auth.token.iss,
		cfg.auth.token.iss,
		cfg.auth.token.accessTokenExp,
		cfg.auth.token.refreshTokenExp,
	)

	// Background jobs
	sched := scheduler.New(logger)
	jobs := []scheduler.Job{
		scheduler.OverdueSweepJob(policy.OverdueSweepSchedule, bookingService, logger),
		scheduler.LimiterPruneJob("ip_limiter", rateLimiter),
		scheduler.LimiterPruneJob("otp_limiter", otpLimiter),
	}
	for _, job := range jobs {
		if err := sched.Register(job); err != nil {
			logger.Fatal(err)
		}
	}
	sched.Start()
	defer func() {
		stopCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := sched.Stop(stopCtx); err != nil {
			logger.Warnw("scheduler did not stop cleanly", "error", err.Error())
		}
	}()

	app := &application{
		config:        cfg,
		logger:        logger,
		users:         container.Users,
		bookings:      bookingService,
		topups:        topupCache,
		refs:          refs,
		uploader:      &cloudinaryUploader{cld: cld},
		authenticator: jwtAuthenticator,
		rateLimiter:   rateLimiter,
		otpLimiter:    otpLimiter,
	}

	//Metrics collected http://localhost:8080/v1/debug/vars
	expvar.NewString("version").Set(version)
	expvar.Publish("database", expvar.Func(func() any {
		s := pool.Stat()
		return map[string]int64{
			"total_conns":    int64(s.TotalConns()),
			"idle_conns":     int64(s.IdleConns()),
			"acquired_conns": int64(s.AcquiredConns()),
			"acquire_count":  s.AcquireCount(),
		}
	}))
	expvar.Publish("catalog_database", expvar.Func(func() any {
		return catalogDB.Stats()
	}))
	expvar.Publish("goroutines", expvar.Func(func() any {
		return runtime.NumGoroutine()
	}))

	mux := app.mount()

	if err := app.run(mux); err != nil {
		logger.Errorw("server stopped with error", "error", err.Error())
	}
}
