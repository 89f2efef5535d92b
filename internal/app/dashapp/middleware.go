package dashapp

import (
	"net/http"
	"time"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	sessionsvc "github.com/harryviennot/cuisto-admin/internal/services/session"
	httperrors "github.com/harryviennot/cuisto-admin/internal/transport/http/errors"
)

func ApplyMiddlewares(r chiRouter, log *zap.Logger) {
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))
	r.Use(requestLogger(log))
}

// SessionMiddleware gates everything except sign-in behind a signed-in
// moderator session. The core API still re-checks on every forwarded call;
// this only keeps obviously unauthenticated traffic off it.
func SessionMiddleware(store *sessionsvc.Store) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if store == nil {
				httperrors.Write(w, http.StatusInternalServerError, httperrors.APIError{
					Code:    "SESSION_SERVICE_UNAVAILABLE",
					Message: "session service is unavailable",
				})
				return
			}

			if _, ok := store.Current(); !ok {
				httperrors.Write(w, http.StatusUnauthorized, httperrors.APIError{
					Code:    "UNAUTHORIZED",
					Message: "sign in required",
				})
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func requestLogger(log *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			next.ServeHTTP(w, r)
			if log != nil {
				log.Info("http_request",
					zap.String("method", r.Method),
					zap.String("path", r.URL.Path),
					zap.Duration("duration", time.Since(start)),
				)
			}
		})
	}
}

type chiRouter interface {
	Use(middlewares ...func(http.Handler) http.Handler)
}
