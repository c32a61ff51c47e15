// Package api serves the back office over HTTP: login and logout, the guarded
// route groups, document downloads and notice flashing.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"backoffice/internal/apiclient"
	"backoffice/internal/backend"
	"backoffice/internal/config"
	"backoffice/internal/domain"
	"backoffice/internal/export"
	"backoffice/internal/guard"
	"backoffice/internal/logging"
	"backoffice/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

// Deps are the collaborators the HTTP layer calls into.
type Deps struct {
	Backend   *backend.API
	Sessions  *service.SessionService
	Notifier  domain.Notifier
	Exporter  *export.Exporter
	Workbooks export.Workbooks
}

type HTTPServer struct {
	cfg     *config.Config
	deps    Deps
	limiter *rateLimiter
	logger  zerolog.Logger
	server  *http.Server
}

func NewHTTPServer(cfg *config.Config, deps Deps, logger *zerolog.Logger) *HTTPServer {
	log := logging.Component(logger, "http")

	srv := &HTTPServer{
		cfg:     cfg,
		deps:    deps,
		limiter: newRateLimiter(cfg.RateLimit),
		logger:  log,
	}

	srv.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:           srv.routes(logger),
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      30 * time.Second,
	}
	return srv
}

func (s *HTTPServer) routes(logger *zerolog.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(requestLogger(s.logger))
	r.Use(flashNotices(s.cfg.Session.Secure))

	r.Get("/healthz", s.handleHealth)
	r.Get("/notices", s.handleNotices)

	r.Mount("/", s.guardedRoutes(logger))

	return r
}

// guardedRoutes is mounted as the catch-all so the guard also sees paths no
// route matches.
func (s *HTTPServer) guardedRoutes(logger *zerolog.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(guard.Middleware(s.cfg.Session.CookieName, s.deps.Sessions, s.deps.Notifier, logger))
	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusNotFound, "not found")
	})

	r.Get("/", s.handleHome)
	r.Get(guard.LoginPath, s.handleLoginView)
	r.With(s.limiter.middleware).Post(guard.LoginPath, s.handleLogin)
	r.Post("/logout", s.handleLogout)

	r.Route("/admin", func(r chi.Router) {
		r.Get("/hotels", s.handleHotels)
		r.Get("/hotels/{hotelID}", s.handleHotel)
		r.Get("/hotels/{hotelID}/rooms", s.handleHotelRooms)
		r.Get("/restaurants", s.handleRestaurants)
		r.Get("/restaurants/{restaurantID}/dishes", s.handleDishes)
		r.Get("/payments", s.handlePayments)
	})

	r.Route("/reservaciones", func(r chi.Router) {
		r.Get("/", s.handleReservations)
		r.Get("/{reservationID}", s.handleReservation)
		r.Get("/{reservationID}/comprobante.pdf", s.handleReservationProof)
		r.Get("/{reservationID}/factura.pdf", s.handleReservationInvoice)
	})

	r.Route("/ordenes", func(r chi.Router) {
		r.Get("/", s.handleOrders)
		r.Get("/{orderID}", s.handleOrder)
		r.Get("/{orderID}/factura.pdf", s.handleOrderInvoice)
	})

	r.Route("/reportes", func(r chi.Router) {
		r.Get("/anuncios-comprados.xlsx", s.handleBoughtAdsXLSX)
		r.Get("/anuncios-comprados.pdf", s.handleBoughtAdsPDF)
		r.Get("/ganancias-anunciante.xlsx", s.handleEarningsXLSX)
		r.Get("/ganancias-anunciante.pdf", s.handleEarningsPDF)
		r.Get("/ventas.csv", s.handleSalesCSV)
	})

	r.Get("/public/anuncios/random", s.handleRandomAd)

	return r
}

// Handler exposes the router, mainly for tests.
func (s *HTTPServer) Handler() http.Handler {
	return s.server.Handler
}

func (s *HTTPServer) Start() error {
	if s.server == nil {
		return fmt.Errorf("http server is not initialized")
	}
	s.logger.Info().Str("addr", s.server.Addr).Msg("HTTP server listening")
	if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *HTTPServer) Shutdown(ctx context.Context) error {
	if s.server == nil {
		return nil
	}
	return s.server.Shutdown(ctx)
}

func writeJSON(w http.ResponseWriter, statusCode int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, statusCode int, message string) {
	writeJSON(w, statusCode, map[string]string{"error": message})
}

// writeBackendError relays the backend status and message. A call that got
// no response becomes 502.
func writeBackendError(w http.ResponseWriter, err error) {
	status := apiclient.StatusOf(err)
	if status == 0 {
		status = http.StatusBadGateway
	}
	writeError(w, status, apiclient.MessageOf(err))
}
