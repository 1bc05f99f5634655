package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/linesmerrill/report-nui/api"
	"github.com/linesmerrill/report-nui/config"
	"github.com/linesmerrill/report-nui/cooldown"
	"github.com/linesmerrill/report-nui/databases"
	"github.com/linesmerrill/report-nui/models"
)

const (
	callTimeout   = 10 * time.Second
	pruneSchedule = "@every 1m"
)

// App stores the router and its dependencies, so it can be reused
type App struct {
	Router    *mux.Router
	Config    config.Config
	Fixture   *Fixture
	Tickets   databases.TicketDatabase
	Cooldowns cooldown.Ledger
	Hub       *Hub

	closers []func()
}

// New creates a new mux router and all the routes
func (a *App) New() *mux.Router {
	if a.Fixture == nil {
		a.Fixture = DefaultFixture()
	}
	if a.Hub == nil {
		a.Hub = NewHub(models.Init{Type: models.TypeInit, HostInfo: a.Fixture.Host})
	}
	if a.Tickets == nil {
		a.Tickets = databases.NewMemoryTicketDatabase()
	}

	h := Host{
		Fixture:        a.Fixture,
		DB:             a.Tickets,
		Cooldowns:      a.Cooldowns,
		Publisher:      a.Hub,
		CooldownWindow: time.Duration(a.Config.CooldownSeconds) * time.Second,
	}

	r := api.New()
	r.Use(api.MetricsMiddleware)

	callbacks := r.PathPrefix("/nui").Subrouter()
	callbacks.Use(api.TimeoutMiddleware(callTimeout))
	callbacks.HandleFunc("/requestPlayerData", h.PlayerDataHandler).Methods("POST")
	callbacks.HandleFunc("/requestServerConfig", h.ServerConfigHandler).Methods("POST")
	callbacks.HandleFunc("/requestScreenshotUpload", h.ScreenshotUploadHandler).Methods("POST")
	callbacks.HandleFunc("/submitReport", h.SubmitReportHandler).Methods("POST")
	callbacks.HandleFunc("/closeReport", h.CloseReportHandler).Methods("POST")

	host := r.PathPrefix("/host").Subrouter()
	host.Use(api.TimeoutMiddleware(callTimeout))
	host.HandleFunc("/open", h.OpenHandler).Methods("POST")
	host.HandleFunc("/close", h.CloseHandler).Methods("POST")
	host.HandleFunc("/screenshot", h.ScreenshotHandler).Methods("POST")
	host.HandleFunc("/tickets/{ticket_id}", h.TicketHandler).Methods("GET")
	host.HandleFunc("/reporters/{fivem_id}", h.ReporterHandler).Methods("GET")

	r.HandleFunc("/ws", a.Hub.ServeWS)
	return r
}

// Initialize is invoked by main to load the fixture, connect the stores and
// create a router
func (a *App) Initialize(ctx context.Context) error {
	if a.Config.FixturePath != "" {
		f, err := LoadFixture(a.Config.FixturePath)
		if err != nil {
			zap.S().Errorw("failed to load fixture", "path", a.Config.FixturePath, "error", err)
			return err
		}
		a.Fixture = f
	}

	if err := a.initializeTickets(ctx); err != nil {
		return err
	}
	if err := a.initializeCooldowns(ctx); err != nil {
		return err
	}

	// initialize api router
	a.initializeRoutes()
	return nil
}

func (a *App) initializeTickets(ctx context.Context) error {
	if a.Config.Url == "" {
		zap.S().Info("DB_URI not set, keeping tickets in memory")
		a.Tickets = databases.NewMemoryTicketDatabase()
		return nil
	}

	client, err := databases.NewClient(&a.Config)
	if err != nil {
		zap.S().Errorw("failed to create new client", "error", err)
		return err
	}
	if err := client.Connect(ctx); err != nil {
		zap.S().Errorw("failed to connect to database", "error", err)
		return err
	}
	a.closers = append(a.closers, func() {
		_ = client.Disconnect(context.Background())
	})
	a.Tickets = databases.NewTicketDatabase(databases.NewDatabase(&a.Config, client))
	zap.S().Infow("connected to the ticket database", "database", a.Config.DatabaseName)
	return nil
}

func (a *App) initializeCooldowns(ctx context.Context) error {
	if a.Config.RedisUrl != "" {
		ledger, err := cooldown.NewRedisLedger(ctx, a.Config.RedisUrl)
		if err != nil {
			zap.S().Errorw("failed to connect to redis", "error", err)
			return err
		}
		a.closers = append(a.closers, func() { _ = ledger.Close() })
		a.Cooldowns = ledger
		return nil
	}

	ledger := cooldown.NewMemoryLedger()
	if err := ledger.Start(pruneSchedule); err != nil {
		return err
	}
	a.closers = append(a.closers, ledger.Stop)
	a.Cooldowns = ledger
	return nil
}

func (a *App) initializeRoutes() {
	a.Router = a.New()
}

// Close releases the stores opened by Initialize
func (a *App) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
	a.closers = nil
}

// ServeHTTP implements http.Handler
func (a *App) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	a.Router.ServeHTTP(w, r)
}
