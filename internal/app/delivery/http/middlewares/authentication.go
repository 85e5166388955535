package middlewares

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"dentaldesk-service/internal/pkg/constvars"
	"dentaldesk-service/internal/pkg/exceptions"
	"dentaldesk-service/internal/pkg/utils"
)

// Authenticate resolves the caller's session from the session cookie or, for
// non-browser clients, a bearer token wrapping the session id. The session id
// and owning user id land in the request context.
func (m *Middlewares) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sessionID, err := m.resolveSessionID(r)
		if err != nil {
			utils.BuildErrorResponse(m.Log, w, err)
			return
		}

		session, err := m.SessionRepository.GetSession(r.Context(), sessionID)
		if err != nil {
			utils.BuildErrorResponse(m.Log, w, err)
			return
		}

		ctx := context.WithValue(r.Context(), constvars.CONTEXT_SESSION_ID_KEY, sessionID)
		ctx = context.WithValue(ctx, constvars.CONTEXT_USER_ID_KEY, session.UserID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (m *Middlewares) resolveSessionID(r *http.Request) (string, error) {
	cookie, err := r.Cookie(constvars.SessionCookieName)
	if err == nil && cookie.Value != "" {
		return cookie.Value, nil
	}

	authHeader := r.Header.Get(constvars.HeaderAuthorization)
	if authHeader == "" {
		return "", exceptions.ErrSessionCookieMissing(errors.New("no session cookie and no authorization header"))
	}
	if !strings.HasPrefix(authHeader, constvars.BearerSchema) {
		return "", exceptions.ErrTokenMissing(errors.New("authorization header is not a bearer token"))
	}

	token := strings.TrimPrefix(authHeader, constvars.BearerSchema)
	return utils.ParseSessionJWT(token, m.InternalConfig.JWT.Secret)
}
