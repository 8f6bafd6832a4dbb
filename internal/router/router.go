package router

import (
	_ "embed"
	"net/http"

	_ "petstore/docs"
	mem "petstore/internal/adapters/storage/memory"
	"petstore/internal/domain/pets"
	"petstore/internal/middleware"
	"petstore/internal/platform/metrics"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"
)

//go:embed static/index.html
var indexHTML []byte

type Options struct {
	// Store es el record store ya abierto; su ciclo de vida es de quien lo crea.
	// Si es nil se usa uno en memoria (dev/tests).
	Store pets.Repository

	// Logger base; nil = no-op.
	Logger *zap.Logger

	// Metrics opcional: si viene, instrumenta requests y expone /metrics.
	Metrics *metrics.Metrics

	// Swagger expone /swagger/*.
	Swagger bool
}

func NewRouter(opts Options) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLogger(opts.Logger))
	// Metrics va por fuera de Recoverer para contar los panics como 500.
	if opts.Metrics != nil {
		r.Use(middleware.Metrics(opts.Metrics))
	}
	r.Use(chimw.Recoverer)
	if opts.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", opts.Metrics.Handler())
	}

	r.Get("/", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(indexHTML)
	})

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	if opts.Swagger {
		r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))
	}

	store := opts.Store
	if store == nil {
		store = mem.NewPetRepo()
	}

	var svcOpts []pets.Option
	if opts.Metrics != nil {
		purchased := opts.Metrics.PetsPurchased
		svcOpts = append(svcOpts, pets.WithPurchaseObserver(func(pets.Pet) { purchased.Inc() }))
	}

	pets.RegisterRoutes(r, pets.NewService(store, svcOpts...))

	return r
}
