package router

import (
	"net/http"
	"time"

	_ "medtrack/docs"
	"medtrack/internal/adapters/storage"
	"medtrack/internal/domain/adherence"
	"medtrack/internal/domain/analytics"
	"medtrack/internal/domain/plans"
	"medtrack/internal/domain/records"
	"medtrack/internal/domain/settings"
	"medtrack/internal/middleware"
	"medtrack/internal/platform/logger"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	// Repos ya abiertos con storage.Open (server los comparte con el ingest MQTT).
	// nil => in-memory.
	Stores *storage.Stores

	Logger logger.Logger // nil => nop

	// Zona del paciente para el calendario; nil => time.Local.
	Location *time.Location

	// Reloj para el mes por defecto de analytics (tests).
	Clock func() time.Time
}

func NewRouter(opts Options) http.Handler {
	log := opts.Logger
	if log == nil {
		log = logger.NewNop()
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(middleware.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLog(log))
	r.Use(middleware.Recover(log))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	stores := resolveStores(opts, log)

	// Services por módulo
	recordsSvc := records.NewService(stores.Records)
	plansSvc := plans.NewService(stores.Plans)
	settingsSvc := settings.NewService(stores.Settings)

	agg := adherence.NewAggregator(opts.Location).WithClock(opts.Clock)
	analyticsSvc := analytics.NewService(recordsSvc, agg)

	// Rutas por módulo
	records.RegisterRoutes(r, recordsSvc)
	plans.RegisterRoutes(r, plansSvc)
	settings.RegisterRoutes(r, settingsSvc)
	analytics.RegisterRoutes(r, analyticsSvc)

	return r
}

func resolveStores(opts Options, log logger.Logger) *storage.Stores {
	if opts.Stores != nil {
		return opts.Stores
	}
	log.Debug("no stores configured, using in-memory store", nil)
	return storage.Memory()
}
