package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/g-vinokurov/interstellarium/internal/models"
	"github.com/sirupsen/logrus"
)

type Middleware func(http.Handler) http.Handler

type contextKey string

const userContextKey contextKey = "currentUser"

func withCurrentUser(ctx context.Context, user *models.User) context.Context {
	return context.WithValue(ctx, userContextKey, user)
}

// CurrentUser returns the authenticated actor stashed by the auth
// middleware, if any.
func CurrentUser(ctx context.Context) (*models.User, bool) {
	user, ok := ctx.Value(userContextKey).(*models.User)
	return user, ok
}

// requireElevated enforces the admin/superuser gate on mutating endpoints.
// Returns nil after writing the error response when the actor is missing
// or lacks an elevated role.
func requireElevated(w http.ResponseWriter, r *http.Request) *models.User {
	user, ok := CurrentUser(r.Context())
	if !ok {
		RespondWithError(w, ErrCodeUnauthorized, nil)
		return nil
	}
	if !user.IsAdmin && !user.IsSuperuser {
		RespondWithError(w, ErrCodeAccessDenied, nil)
		return nil
	}
	return user
}

func RequestLogger(logger *logrus.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(rec, r)
			logger.WithFields(logrus.Fields{
				"method":   r.Method,
				"path":     r.URL.Path,
				"status":   rec.status,
				"duration": time.Since(start).String(),
			}).Info("request")
		})
	}
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}
