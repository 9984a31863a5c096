package http

import (
	"context"
	"net/http"
	"time"

	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/sirupsen/logrus"
)

const sessionCookie = "storefront_session"

var ctxSessionKey = struct{ name string }{"session"}

// sessionMiddleware resolves the visitor's session from the signed cookie,
// issuing a fresh one when the cookie is missing or does not verify.
func (a *API) sessionMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if c, err := r.Cookie(sessionCookie); err == nil {
			if session, err := a.sessions.ParseToken(c.Value); err == nil {
				next.ServeHTTP(w, r.WithContext(withSession(r.Context(), session)))
				return
			}
			a.log.Debug("discarding invalid session cookie")
		}

		session := a.sessions.NewSessionID()
		token, err := a.sessions.GenerateToken(session)
		if err != nil {
			a.log.WithError(err).Error("issue session token")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
		http.SetCookie(w, &http.Cookie{
			Name:     sessionCookie,
			Value:    token,
			Path:     "/",
			MaxAge:   int(a.sessions.TTL().Seconds()),
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})
		next.ServeHTTP(w, r.WithContext(withSession(r.Context(), session)))
	})
}

func withSession(ctx context.Context, session string) context.Context {
	return context.WithValue(ctx, ctxSessionKey, session)
}

func sessionFrom(ctx context.Context) string {
	if s, ok := ctx.Value(ctxSessionKey).(string); ok {
		return s
	}
	return ""
}

func (a *API) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)

		a.log.WithFields(logrus.Fields{
			"request_id": chimw.GetReqID(r.Context()),
			"method":     r.Method,
			"path":       r.URL.Path,
			"status":     ww.Status(),
			"bytes":      ww.BytesWritten(),
			"duration":   time.Since(start),
		}).Info("request served")
	})
}
