package internal

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"user-account-api/config"
	"user-account-api/internal/application/ports"
	"user-account-api/internal/application/services"
	"user-account-api/internal/infrastructure/db/postgres"
	"user-account-api/internal/infrastructure/db/postgres/user"
	"user-account-api/internal/infrastructure/hasher"
	"user-account-api/internal/infrastructure/jwt"
	"user-account-api/internal/infrastructure/metrics"
	"user-account-api/internal/infrastructure/mq"
	"user-account-api/internal/interface/api/rest"
	"user-account-api/internal/interface/api/rest/middleware"
	"user-account-api/pkg/rmqconsumer"
)

var shutdownTimeout = 5 * time.Second

type App struct {
	logger     *zap.Logger
	cfg        config.Config
	db         *pgxpool.Pool
	httpSrv    *http.Server
	router     *gin.Engine
	mCounter   *prometheus.CounterVec
	events     ports.EventPublisher
	mq         ports.RabbitMQ
	mqConsumer ports.RMQConsumer
}

func NewApp(ctx context.Context, logger *zap.Logger, cfg config.Config) (*App, error) {
	// metrics
	mCounter := metrics.NewCounter()

	// router
	switch cfg.App.Env {
	case gin.ReleaseMode, "prod", "production":
		gin.SetMode(gin.ReleaseMode)
	case gin.TestMode:
		gin.SetMode(gin.TestMode)
	default:
		gin.SetMode(gin.DebugMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogGin(logger, mCounter))

	// httpServer
	httpSrv := &http.Server{
		Addr:              net.JoinHostPort(cfg.App.Host, cfg.App.Port),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// db
	if cfg.DB.AutoMigrate {
		migrateDsn, err := cfg.MigrateDSN()
		if err != nil {
			return nil, fmt.Errorf("DB config error: %w", err)
		}
		if err = postgres.Migrate(logger, migrateDsn, true); err != nil {
			return nil, err
		}
	}
	dbDsn, err := cfg.DBDSN()
	if err != nil {
		return nil, fmt.Errorf("DB config error: %w", err)
	}
	dbPool, err := postgres.New(ctx, logger, dbDsn)
	if err != nil {
		return nil, err
	}

	app := &App{
		logger:   logger,
		cfg:      cfg,
		db:       dbPool,
		httpSrv:  httpSrv,
		router:   r,
		mCounter: mCounter,
		events:   mq.NopPublisher{},
	}

	if !cfg.MQ.Enabled {
		logger.Info("rabbitmq disabled, account events are dropped")
		return app, nil
	}

	// rabbitMQ
	rabbitDsn, err := cfg.AMQPDSN()
	if err != nil {
		app.Close()
		return nil, fmt.Errorf("RabbitMQ config error: %w", err)
	}
	rbMQ := mq.New(cfg.MQ, logger)
	if err = rbMQ.Connect(ctx, rabbitDsn); err != nil {
		app.Close()
		return nil, fmt.Errorf("failed to connect to rabbitMQ: %w", err)
	}
	app.mq, app.events = rbMQ, rbMQ
	if err = rbMQ.Init(); err != nil {
		app.Close()
		return nil, fmt.Errorf("failed init rabbitMQ: %w", err)
	}

	// rmqConsumer
	rmqConsumer := rmqconsumer.New(cfg.MQ, logger, os.Stdout)
	if err = rmqConsumer.Connect(rabbitDsn); err != nil {
		app.Close()
		return nil, fmt.Errorf("failed to connect rabbitMQ consumer: %w", err)
	}
	if err = rmqConsumer.Init(); err != nil {
		app.Close()
		return nil, fmt.Errorf("failed to init rabbitMQ consumer: %w", err)
	}
	app.mqConsumer = rmqConsumer

	return app, nil
}

func (a *App) Close() {
	if a.db != nil {
		a.db.Close()
	}
	if a.mq != nil && a.mq.GetConn() != nil {
		_ = a.mq.GetConn().Close()
	}
	if a.logger != nil {
		_ = a.logger.Sync()
	}
}

// Run - The central place to launch and manage our application and
// parallel processes through a single context.
func (a *App) Run(ctx context.Context) error {
	// context with os signals cancel chan
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		a.logger.Info("starting "+a.cfg.App.Name, zap.String("addr", a.httpSrv.Addr))
		if err := a.httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server "+a.cfg.App.Name+" error: %w", err)
		}

		return nil
	})

	if a.mq != nil {
		g.Go(func() error {
			a.mq.PublisherWorker(ctx)
			return nil
		})
	}

	if a.mqConsumer != nil {
		g.Go(func() error {
			a.mqConsumer.DeliveryWorker(ctx)
			return nil
		})
	}

	<-ctx.Done()

	a.logger.Info("shutting down " + a.cfg.App.Name + " gracefully...")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()
	shutdownErr := a.httpSrv.Shutdown(shutdownCtx)
	if shutdownErr != nil {
		a.logger.Error("http server shutdown "+a.cfg.App.Name+" error", zap.Error(shutdownErr))
	}

	// workers must be gone before Close tears down their connections
	waitErr := g.Wait()
	if waitErr != nil {
		a.logger.Error(a.cfg.App.Name+" returning an error", zap.Error(waitErr))
	}
	if err := errors.Join(shutdownErr, waitErr); err != nil {
		return err
	}

	a.logger.Info(a.cfg.App.Name + " gracefully stopped")

	return nil
}

func (a *App) InitControllers() {
	// repos
	userRepo := user.NewRepository(a.db)

	// services
	jwtService := jwt.New(a.cfg.App.JWTSecret, a.cfg.App.TokenTTL)
	bcrypt := hasher.NewBcrypt(a.cfg.App.BcryptCost)
	authService := services.NewAuthService(userRepo, bcrypt, jwtService, a.events, a.mCounter, a.logger)
	userService := services.NewUserService(userRepo, bcrypt, a.events, a.mCounter, a.logger)

	// controllers
	rest.NewAuthController(a.router, a.logger, authService, jwtService)
	rest.NewUserController(a.router, userService, a.logger, jwtService)

	// ops
	a.router.GET(rest.RouteHealth, a.healthHandler)
	a.router.GET(rest.RouteMetrics, gin.WrapH(promhttp.Handler()))
}

func (a *App) healthHandler(c *gin.Context) {
	if err := a.db.Ping(c.Request.Context()); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "db unavailable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (a *App) Logger() *zap.Logger { return a.logger }
