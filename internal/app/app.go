package app

import (
	"context"
	"net/http"

	"github.com/alitto/pond/v2"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/shandysiswandi/userguard/internal/pkg/clock"
	"github.com/shandysiswandi/userguard/internal/pkg/config"
	"github.com/shandysiswandi/userguard/internal/pkg/goroutine"
	"github.com/shandysiswandi/userguard/internal/pkg/idempotency"
	"github.com/shandysiswandi/userguard/internal/pkg/instrument"
	"github.com/shandysiswandi/userguard/internal/pkg/jwt"
	"github.com/shandysiswandi/userguard/internal/pkg/messaging"
	"github.com/shandysiswandi/userguard/internal/pkg/router"
	"github.com/shandysiswandi/userguard/internal/pkg/storage"
	"github.com/shandysiswandi/userguard/internal/pkg/uid"
	"github.com/shandysiswandi/userguard/internal/pkg/validator"
)

// App wires dependencies and manages service lifecycle.
type App struct {
	ctx    context.Context
	cancel context.CancelFunc

	// configuration
	config config.Config
	ins    instrument.Instrumentation

	// libraries
	goroutine *goroutine.Manager
	pool      pond.Pool
	validator *validator.V10Validator
	clock     clock.Clocker
	uid       uid.NumberID
	oid       uid.StringID
	uuid      uid.StringID
	jwt       jwt.JWT

	// resources
	dbConn    *pgxpool.Pool
	cacheConn *redis.Client
	idemp     idempotency.Idempotency
	messaging messaging.Messaging
	storage   storage.Storage

	// server
	router     *router.Router
	httpServer *http.Server

	//
	closers []struct {
		name string
		fn   func(context.Context) error
	}
}

// New initializes the application with default wiring and returns an App instance.
func New() *App {
	ctx, cancel := context.WithCancel(context.Background())
	app := &App{
		ctx:    ctx,
		cancel: cancel,
	}

	app.initConfig()
	app.initInstrument()
	app.initLibraries()
	app.initJWT()
	app.initDatabase()
	app.initCache()
	app.initStorage()
	app.initMessaging()
	app.initHTTPServer()
	app.initModules()
	app.initClosers()

	return app
}
