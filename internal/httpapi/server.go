// Package httpapi exposes the matching engine and the shop catalog over
// HTTP. The chat transport (LINE webhook) lives outside this repository;
// it talks to the same /match contract.
package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/ICHI0608/jiji-matching/internal/domain"
	"github.com/ICHI0608/jiji-matching/internal/matching"
)

// ShopStore is the catalog administration surface. The SQLite store
// implements it; a read-only JSON catalog does not, in which case the shop
// management endpoints are disabled.
type ShopStore interface {
	ListShops(areaFilter string, limit, offset int) ([]domain.ShopRecord, int, error)
	GetShop(id string) (domain.ShopRecord, bool, error)
	CreateShop(shop domain.ShopRecord) error
	DeleteShop(id string) (bool, error)
}

type Server struct {
	engine     *matching.Engine
	store      ShopStore
	validate   *validator.Validate
	logger     zerolog.Logger
	maxResults int
}

// NewServer wires the HTTP surface. store may be nil for read-only
// catalog sources.
func NewServer(engine *matching.Engine, store ShopStore, maxResults int, logger zerolog.Logger) *Server {
	if maxResults <= 0 {
		maxResults = matching.DefaultMaxResults
	}
	return &Server{
		engine:     engine,
		store:      store,
		validate:   validator.New(validator.WithRequiredStructEnabled()),
		logger:     logger.With().Str("component", "httpapi").Logger(),
		maxResults: maxResults,
	}
}

// Routes assembles the router with the shared middleware stack.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RealIP)
	r.Use(requestID)
	r.Use(s.requestLogger)
	r.Use(metricsMiddleware)
	r.Use(chimiddleware.Recoverer)

	r.Get("/healthz", s.handleHealth)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Post("/match", s.handleMatch)

	if s.store != nil {
		r.Route("/shops", func(r chi.Router) {
			r.Get("/", s.handleShopsList)
			r.Post("/", s.handleShopCreate)
			r.Get("/{shopID}", s.handleShopGet)
			r.Delete("/{shopID}", s.handleShopDelete)
		})
	}

	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
