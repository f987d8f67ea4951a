// Package httpapi exposes the credential service over HTTP. The endpoint
// paths, JSON shapes, response messages, and cookie attributes are a
// compatibility contract with existing clients.
package httpapi

import (
	"context"
	"errors"
	"net/http"

	"github.com/streamify-app/auth-server/internal/logging"
	"github.com/streamify-app/auth-server/internal/server/accounts"
)

type HTTPServer struct {
	address     string
	accounts    *accounts.Service
	logger      logging.Logger
	jwtSecret   []byte
	environment string
}

func NewHTTPServer(a string, l logging.Logger, as *accounts.Service, secretKey string, environment string) (*HTTPServer, error) {
	return &HTTPServer{
		address:     a,
		logger:      l.With("module", "http_server"),
		accounts:    as,
		jwtSecret:   []byte(secretKey),
		environment: environment,
	}, nil
}

// Handler builds the route table. Split out from Run so tests can exercise
// the full routing/middleware stack with httptest.
func (s *HTTPServer) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /signup", s.handleSignup)
	mux.HandleFunc("POST /login", s.handleLogin)
	mux.HandleFunc("POST /logout", s.handleLogout)
	mux.HandleFunc("GET /me", s.sessionTokenMiddleware(s.handleMe))

	return mux
}

func (s *HTTPServer) Run(ctx context.Context) error {

	srv := &http.Server{
		Addr:    s.address,
		Handler: s.Handler(),
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		_ = srv.Shutdown(context.Background())
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
