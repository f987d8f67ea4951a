package httpapi

import (
	"context"
	"net/http"

	"github.com/streamify-app/auth-server/internal/common"
	"github.com/streamify-app/auth-server/internal/server/auth"
)

type ctxKey string

const accountIDKey ctxKey = "accountID"

// sessionTokenMiddleware verifies the session cookie and injects the account
// id into the request context. A missing, malformed, or expired token yields
// the same 401 so callers learn nothing about why verification failed.
func (s *HTTPServer) sessionTokenMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		cookie, err := r.Cookie(common.SessionCookieName)
		if err != nil {
			writeMessage(w, http.StatusUnauthorized, msgUnauthorized)
			return
		}

		accountID, err := auth.GetAccountIDFromToken(cookie.Value, s.jwtSecret)
		if err != nil {
			writeMessage(w, http.StatusUnauthorized, msgUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), accountIDKey, accountID)
		next(w, r.WithContext(ctx))
	}
}

// accountIDFromContext returns the account id injected by
// sessionTokenMiddleware, or "" when the request was not authenticated.
func accountIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(accountIDKey).(string)
	return id
}
