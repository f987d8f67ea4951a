// Package server initializes and runs the credential server: it loads
// configuration, connects storage, wires the account service, and starts the
// HTTP endpoint with graceful shutdown.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/streamify-app/auth-server/internal/logging"
	"github.com/streamify-app/auth-server/internal/server/accounts"
	"github.com/streamify-app/auth-server/internal/server/config"
	"github.com/streamify-app/auth-server/internal/server/httpapi"
	"github.com/streamify-app/auth-server/internal/server/shared/db"
)

type App struct {
	config         *config.Config
	logger         logging.Logger
	accountService *accounts.Service
}

func NewApp(c *config.Config) (*App, error) {

	sl := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	logger := logging.NewSlogLogger(sl)

	// The signing secret must come from configuration; there is no baked-in
	// default to fall back to.
	if c.SecretKey == "" {
		return nil, errors.New("secret key is not configured (set -s or secret_key in the config file)")
	}

	m, err := db.NewPostgresRepositoryManager(c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	as := accounts.NewService(m.Accounts(), c)

	return &App{config: c, logger: logger, accountService: as}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {

	s, err := httpapi.NewHTTPServer(app.config.EndpointAddrHTTP, app.logger,
		app.accountService, app.config.SecretKey, app.config.Environment)

	if err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
		return
	}

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)

	app.logger.Info(ctx, "Starting app...", "env", app.config.Environment)

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc)
	}()

	wg.Wait()
}
