package dashapp

import (
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	modsvc "github.com/harryviennot/cuisto-admin/internal/services/moderation"
	notifsvc "github.com/harryviennot/cuisto-admin/internal/services/notifications"
	queuesvc "github.com/harryviennot/cuisto-admin/internal/services/queues"
	sessionsvc "github.com/harryviennot/cuisto-admin/internal/services/session"
	statssvc "github.com/harryviennot/cuisto-admin/internal/services/stats"
	"github.com/harryviennot/cuisto-admin/internal/transport/http/handlers"
)

type Dependencies struct {
	SessionStore        *sessionsvc.Store
	ModerationService   *modsvc.Service
	QueueService        *queuesvc.Service
	StatsService        *statssvc.Service
	NotificationService *notifsvc.Service
	Logger              *zap.Logger
}

func RegisterRoutes(r chi.Router, deps Dependencies) {
	healthHandler := handlers.NewHealthHandler()
	sessionHandler := handlers.NewSessionHandler(deps.SessionStore)
	reportsHandler := handlers.NewReportsHandler(deps.QueueService, deps.ModerationService)
	feedbackHandler := handlers.NewFeedbackHandler(deps.QueueService)
	recipesHandler := handlers.NewRecipesHandler(deps.QueueService, deps.ModerationService)
	usersHandler := handlers.NewUsersHandler(deps.QueueService, deps.ModerationService)
	statsHandler := handlers.NewStatsHandler(deps.StatsService)
	notificationsHandler := handlers.NewNotificationsHandler(deps.NotificationService)

	sessionMW := SessionMiddleware(deps.SessionStore)

	r.Get("/healthz", healthHandler.Get)

	r.Route("/session", func(r chi.Router) {
		r.Post("/", sessionHandler.SignIn)
		r.Delete("/", sessionHandler.SignOut)
		r.Post("/refresh", sessionHandler.Refresh)
		r.With(sessionMW).Get("/", sessionHandler.Current)
	})

	r.Route("/reports", func(r chi.Router) {
		r.Use(sessionMW)
		r.Get("/", reportsHandler.List)
		r.Get("/{id}", reportsHandler.Get)
		r.Post("/{id}/quick-dismiss", reportsHandler.QuickDismiss)
		r.Post("/{id}/resolve", reportsHandler.Resolve)
	})

	r.Route("/feedback", func(r chi.Router) {
		r.Use(sessionMW)
		r.Get("/", feedbackHandler.List)
		r.Get("/{id}", feedbackHandler.Get)
		r.Post("/{id}/quick-resolve", feedbackHandler.QuickResolve)
		r.Post("/{id}/resolve", feedbackHandler.Resolve)
	})

	r.Route("/recipes", func(r chi.Router) {
		r.Use(sessionMW)
		r.Get("/", recipesHandler.List)
		r.Get("/{id}", recipesHandler.Get)
		r.Post("/{id}/hide", recipesHandler.Hide)
		r.Post("/{id}/unhide", recipesHandler.Unhide)
	})

	r.Route("/users", func(r chi.Router) {
		r.Use(sessionMW)
		r.Get("/", usersHandler.List)
		r.Get("/{id}", usersHandler.Get)
		r.Post("/{id}/warn", usersHandler.Warn)
		r.Post("/{id}/suspend", usersHandler.Suspend)
		r.Post("/{id}/unsuspend", usersHandler.Unsuspend)
		r.Post("/{id}/ban", usersHandler.Ban)
		r.Post("/{id}/unban", usersHandler.Unban)
		r.Delete("/{id}", usersHandler.Delete)
	})

	r.With(sessionMW).Get("/overview", statsHandler.Overview)
	r.With(sessionMW).Get("/statistics", statsHandler.Statistics)
	r.With(sessionMW).Post("/notifications", notificationsHandler.Send)
}
