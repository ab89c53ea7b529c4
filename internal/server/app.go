// Package server initializes and runs the Huddle functions server.
// It wires the database, object storage, identity verification and the
// status proxy into the HTTP transport and handles graceful shutdown.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/dmitrijs2005/huddle/internal/logging"
	"github.com/dmitrijs2005/huddle/internal/server/auth"
	"github.com/dmitrijs2005/huddle/internal/server/config"
	"github.com/dmitrijs2005/huddle/internal/server/geo"
	"github.com/dmitrijs2005/huddle/internal/server/httpapi"
	"github.com/dmitrijs2005/huddle/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/huddle/internal/server/services"
	"github.com/dmitrijs2005/huddle/internal/server/statuspage"
	"github.com/dmitrijs2005/huddle/internal/server/storage"
	"github.com/gin-gonic/gin"
	_ "github.com/jackc/pgx/v5/stdlib"
)

const statusUpstreamTimeout = 10 * time.Second

type App struct {
	config  *config.Config
	logger  logging.Logger
	db      *sql.DB
	handler http.Handler
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {

	logger := logging.NewJSONLogger(os.Stdout, logging.ParseLevel(c.LogLevel))

	if c.LogLevel != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := sql.Open("pgx", c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	rm := repomanager.NewPostgresRepositoryManager()
	if c.RunMigrations {
		if err := rm.RunMigrations(ctx, db); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("migrations error: %w", err)
		}
		logger.Info(ctx, "Migrations applied")
	}

	store, err := storage.NewS3Store(ctx, storage.Options{
		Region:       c.S3Region,
		AccessKey:    c.S3RootUser,
		SecretKey:    c.S3RootPassword,
		BaseEndpoint: c.S3BaseEndpoint,
	})
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("storage init error: %w", err)
	}

	locator := geo.NewHTTPLocator(c.GeoIPBaseURL, c.GeoIPTimeout, &http.Client{})
	status := statuspage.NewService(c.StatusURL, statuspage.NewMemoryCache(), logger,
		statuspage.WithTTL(c.StatusTTL),
		statuspage.WithHTTPClient(&http.Client{Timeout: statusUpstreamTimeout}),
	)

	accounts := services.NewAccountService(db, rm, store, c, logger)
	activity := services.NewActivityService(db, rm, locator, logger)

	router, err := httpapi.NewRouter(httpapi.NewHandler(auth.NewVerifier(c.SecretKey), accounts, activity, status), logger)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	return &App{config: c, logger: logger, db: db, handler: router}, nil
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
	s := httpapi.NewHTTPServer(app.config.EndpointAddrHTTP, app.logger, app.handler)
	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

// Run blocks until a termination signal arrives or the server fails.
func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc)
	}()

	wg.Wait()

	if err := app.db.Close(); err != nil {
		app.logger.Error(ctx, "db close", "error", err)
	}
	app.logger.Info(ctx, "App stopped")
}
