package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	nethttp "net/http"

	"github.com/go-openapi/strfmt"
	"github.com/sm8ta/webike_inventory/internal/adapter/baserow"
	"github.com/sm8ta/webike_inventory/internal/adapter/handler/http"
	"github.com/sm8ta/webike_inventory/internal/adapter/logger"
	"github.com/sm8ta/webike_inventory/internal/adapter/postgres"
	"github.com/sm8ta/webike_inventory/internal/adapter/prometheus"
	"github.com/sm8ta/webike_inventory/internal/adapter/redis"
	"github.com/sm8ta/webike_inventory/internal/config"
	"github.com/sm8ta/webike_inventory/internal/core/domain"
	"github.com/sm8ta/webike_inventory/internal/core/ports"
	"github.com/sm8ta/webike_inventory/internal/core/services"
	"github.com/sm8ta/webike_inventory/internal/i18n"

	"github.com/go-playground/validator/v10"
	"github.com/pressly/goose"
	prom "github.com/prometheus/client_golang/prometheus"
	redisClient "github.com/redis/go-redis/v9"
)

type App struct {
	Config       *config.Container
	Logger       ports.LoggerPort
	DB           *sql.DB
	RedisClient  *redisClient.Client
	RedisAdapter ports.CachePort
	Store        *services.InventoryStore
	HTTPRouter   *http.Router

	stopGauges func()
}

func New(ctx context.Context, cfg *config.Container) (*App, error) {
	// Set logger
	loggerAdapter := logger.NewLoggerAdapter(cfg.App.Env, cfg.Log.Level)
	loggerAdapter.Info("Starting the application", map[string]interface{}{
		"app":    cfg.App.Name,
		"env":    cfg.App.Env,
		"locale": cfg.App.Locale,
	})

	tr := i18n.New(cfg.App.Locale)

	// Set redis
	var redisConn *redisClient.Client
	var cacheAdapter ports.CachePort = redis.NopCache{}
	if cfg.Redis.Address != "" {
		redisConn = redisClient.NewClient(&redisClient.Options{
			Addr:     cfg.Redis.Address,
			Password: cfg.Redis.Password,
			DB:       0,
		})
		if _, err := redisConn.Ping(ctx).Result(); err != nil {
			return nil, fmt.Errorf("failed to connect to Redis: %w", err)
		}
		cacheAdapter = redis.NewRedisAdapter(redisConn)
	} else {
		loggerAdapter.Warn("REDIS_ADDRESS not set, user cache disabled", nil)
	}

	// Connect DB
	var db *sql.DB
	var auditRepo ports.AuditRepository
	if cfg.DB.Enabled() {
		dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
			cfg.DB.Host, cfg.DB.Port, cfg.DB.User, cfg.DB.Password, cfg.DB.Name)
		var err error
		db, err = sql.Open("postgres", dsn)
		if err != nil {
			closeRedis(redisConn)
			return nil, fmt.Errorf("Failed to connect to database:%w", err)
		}

		if err := db.PingContext(ctx); err != nil {
			db.Close()
			closeRedis(redisConn)
			return nil, fmt.Errorf("Failed to ping database:%w", err)
		}

		// Migrate DB
		if err := goose.Up(db, "./internal/adapter/postgres/migrations"); err != nil {
			db.Close()
			closeRedis(redisConn)
			return nil, fmt.Errorf("Failed to run migrations:%w", err)
		}
		auditRepo = postgres.NewAuditRepository(db)
	} else {
		loggerAdapter.Warn("DB_HOST not set, audit trail disabled", nil)
	}

	// Validate
	validate := validator.New()

	// Observability
	metrics := prometheus.NewPrometheusAdapter(prom.DefaultRegisterer)

	// Baserow gateway
	gateway, err := baserow.NewGateway(baserow.GatewayConfig{
		URL:            cfg.Baserow.URL,
		Token:          cfg.Baserow.Token,
		TokenScheme:    cfg.Baserow.TokenScheme,
		Timeout:        cfg.Baserow.TimeoutDuration(),
		GenericMessage: tr.T(i18n.RemoteGeneric),
	}, loggerAdapter, metrics)
	if err != nil {
		closeDB(db)
		closeRedis(redisConn)
		return nil, fmt.Errorf("failed to initialize Baserow gateway: %w", err)
	}

	if !cfg.Baserow.BikesConfigured() {
		loggerAdapter.Warn("BASEROW_BIKES_TABLE_ID not set, inventory stays empty", nil)
	}

	// Repositories
	bikeRepo := baserow.NewBikeRepository(gateway, cfg.Baserow.BikesTableID, tr)
	userRepo := baserow.NewUserRepository(gateway, cfg.Baserow.UsersTableID, tr)

	// Services
	store := services.NewInventoryStore(ctx, bikeRepo, loggerAdapter)
	stopGauges := watchInventory(store, metrics)
	authService := services.NewAuthService(userRepo, loggerAdapter, validate, cacheAdapter, tr)
	auditService := services.NewAuditService(auditRepo, loggerAdapter)

	// HTTP Handlers
	tokenService := http.NewJWTTokenService(cfg.Token.Secret, cfg.Token.TTL(), loggerAdapter)
	bikeHandler := http.NewBikeHandler(
		store,
		services.NewBikeFilterer(),
		auditService,
		loggerAdapter,
		metrics,
		strfmt.Default,
		cfg.Stock.LowThresholdInt(),
	)
	authHandler := http.NewAuthHandler(authService, tokenService, loggerAdapter, metrics)
	auditHandler := http.NewAuditHandler(auditService, loggerAdapter, metrics)

	// Init HTTP router
	router, err := http.NewRouter(
		cfg.HTTP,
		tokenService,
		bikeHandler,
		authHandler,
		auditHandler,
	)
	if err != nil {
		stopGauges()
		closeDB(db)
		closeRedis(redisConn)
		return nil, fmt.Errorf("failed to initialize router: %w", err)
	}

	return &App{
		Config:       cfg,
		Logger:       loggerAdapter,
		DB:           db,
		RedisClient:  redisConn,
		RedisAdapter: cacheAdapter,
		Store:        store,
		HTTPRouter:   router,
		stopGauges:   stopGauges,
	}, nil
}

// watchInventory keeps the inventory gauges in line with the store.
func watchInventory(store ports.InventoryStore, metrics ports.MetricsPort) func() {
	publish := func(state domain.InventoryState) {
		units := 0
		for _, b := range state.Bikes {
			units += b.Stock
		}
		metrics.SetInventory(len(state.Bikes), units)
	}

	updates, cancel := store.Subscribe()
	publish(store.State())
	go func() {
		for state := range updates {
			publish(state)
		}
	}()
	return cancel
}

// Runs all services
func (a *App) Run() error {
	listenAddr := fmt.Sprintf("%s:%s", a.Config.HTTP.URL, a.Config.HTTP.Port)
	a.Logger.Info("Starting HTTP server", map[string]interface{}{
		"addr": listenAddr,
	})

	if err := a.HTTPRouter.Serve(listenAddr); err != nil && !errors.Is(err, nethttp.ErrServerClosed) {
		a.Logger.Error("HTTP server error", map[string]interface{}{
			"error": err.Error(),
		})
		return err
	}
	return nil
}

// Stops all services
func (a *App) Stop(ctx context.Context) error {
	a.Logger.Info("Shutting down gracefully...", nil)

	if err := a.HTTPRouter.Shutdown(ctx); err != nil {
		a.Logger.Error("HTTP server shutdown error", map[string]interface{}{
			"error": err.Error(),
		})
	}

	a.stopGauges()

	// Close database
	if a.DB != nil {
		if err := a.DB.Close(); err != nil {
			a.Logger.Error("Database close error", map[string]interface{}{
				"error": err.Error(),
			})
		}
	}

	// Close Redis
	if a.RedisClient != nil {
		if err := a.RedisClient.Close(); err != nil {
			a.Logger.Error("Redis close error", map[string]interface{}{
				"error": err.Error(),
			})
		}
	}

	a.Logger.Info("Application stopped successfully", nil)
	return nil
}

func closeDB(db *sql.DB) {
	if db != nil {
		db.Close()
	}
}

func closeRedis(client *redisClient.Client) {
	if client != nil {
		client.Close()
	}
}
