package httpapi

import (
	"net/http"
	"time"

	"github.com/streamify-app/auth-server/internal/common"
)

// sessionCookie builds the cookie that carries the session token. HttpOnly
// blocks script access, SameSite=Strict blocks cross-site sends, and the
// Secure flag is set only in production so local HTTP development keeps
// working.
func (s *HTTPServer) sessionCookie(token string, validity time.Duration) *http.Cookie {
	return &http.Cookie{
		Name:     common.SessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(validity.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
		Secure:   s.environment == common.EnvProduction,
	}
}

// expiredSessionCookie instructs the client to discard the session token.
// Tokens are stateless, so this is the entirety of logout.
func (s *HTTPServer) expiredSessionCookie() *http.Cookie {
	return &http.Cookie{
		Name:     common.SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
		Secure:   s.environment == common.EnvProduction,
	}
}
