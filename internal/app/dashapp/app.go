package dashapp

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/harryviennot/cuisto-admin/internal/config"
	"github.com/harryviennot/cuisto-admin/internal/infra/identity"
	"github.com/harryviennot/cuisto-admin/internal/infra/sessionbus"
	"github.com/harryviennot/cuisto-admin/internal/repo/adminhttp"
	modsvc "github.com/harryviennot/cuisto-admin/internal/services/moderation"
	notifsvc "github.com/harryviennot/cuisto-admin/internal/services/notifications"
	queuesvc "github.com/harryviennot/cuisto-admin/internal/services/queues"
	sessionsvc "github.com/harryviennot/cuisto-admin/internal/services/session"
	statssvc "github.com/harryviennot/cuisto-admin/internal/services/stats"
)

type App struct {
	cfg        config.Config
	logger     *zap.Logger
	server     *http.Server
	redis      *goredis.Client
	session    *sessionsvc.Store
	httpRouter http.Handler
}

func New(ctx context.Context, cfg config.Config, log *zap.Logger) (*App, error) {
	if log == nil {
		return nil, fmt.Errorf("logger is nil")
	}

	r := chi.NewRouter()
	ApplyMiddlewares(r, log)

	identityClient, err := identity.NewClient(cfg.Identity.BaseURL, cfg.Identity.AnonKey, cfg.Identity.Timeout)
	if err != nil {
		return nil, fmt.Errorf("init identity client: %w", err)
	}

	redisClient := goredis.NewClient(&goredis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	bus := sessionbus.New(redisClient)

	sessionStore := sessionsvc.NewStore(identityClient, nil, bus, log)

	coreClient, err := adminhttp.NewClient(cfg.CoreAPI.BaseURL, sessionStore, cfg.CoreAPI.Timeout)
	if err != nil {
		return nil, fmt.Errorf("init core api client: %w", err)
	}

	meRepo := adminhttp.NewMeRepo(coreClient)
	reportsRepo := adminhttp.NewReportsRepo(coreClient)
	feedbackRepo := adminhttp.NewFeedbackRepo(coreClient)
	recipesRepo := adminhttp.NewRecipesRepo(coreClient)
	usersRepo := adminhttp.NewUsersRepo(coreClient)
	statsRepo := adminhttp.NewStatsRepo(coreClient)
	notificationsRepo := adminhttp.NewNotificationsRepo(coreClient)

	sessionStore.SetVerifier(meRepo)
	if err := sessionStore.Start(ctx); err != nil {
		log.Warn("session bus unavailable, continuing without cross-context sync", zap.Error(err))
	}

	moderationService := modsvc.NewService(recipesRepo, usersRepo, reportsRepo)
	queueService := queuesvc.NewService(reportsRepo, feedbackRepo, recipesRepo, usersRepo, cfg.Queues.PageSize)
	queueService.SetSearchDebounce(cfg.Queues.SearchDebounce)
	statsService := statssvc.NewService(statsRepo, reportsRepo)
	notificationService := notifsvc.NewService(notificationsRepo, log)

	server := &http.Server{
		Addr:         cfg.HTTP.Addr,
		Handler:      r,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  cfg.HTTP.IdleTimeout,
	}

	RegisterRoutes(r, Dependencies{
		SessionStore:        sessionStore,
		ModerationService:   moderationService,
		QueueService:        queueService,
		StatsService:        statsService,
		NotificationService: notificationService,
		Logger:              log,
	})

	return &App{
		cfg:        cfg,
		logger:     log,
		server:     server,
		redis:      redisClient,
		session:    sessionStore,
		httpRouter: r,
	}, nil
}

func (a *App) Run() error {
	a.logger.Info("dashboard server started", zap.String("addr", a.cfg.HTTP.Addr))
	err := a.server.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

func (a *App) Shutdown(ctx context.Context) error {
	var shutdownErr error

	if err := a.server.Shutdown(ctx); err != nil {
		shutdownErr = err
	}
	if a.redis != nil {
		if err := a.redis.Close(); err != nil && shutdownErr == nil {
			shutdownErr = err
		}
	}

	return shutdownErr
}

func (a *App) Handler() http.Handler {
	return a.httpRouter
}
