package api

import (
	"net/http"

	"backoffice/internal/apiclient"
	"backoffice/internal/auth"
	"backoffice/internal/events"
	"backoffice/internal/guard"
	"backoffice/internal/models"

	"github.com/go-chi/chi/v5"
)

type navEntry struct {
	Group auth.RouteGroup `json:"group"`
	Title string          `json:"title"`
	Path  string          `json:"path"`
}

var navigation = []navEntry{
	{Group: auth.GroupAdmin, Path: "/admin/hotels"},
	{Group: auth.GroupReservations, Path: "/reservaciones"},
	{Group: auth.GroupOrders, Path: "/ordenes"},
	{Group: auth.GroupReports, Path: "/reportes/anuncios-comprados.xlsx"},
}

func (s *HTTPServer) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleNotices hands out the pending notices once.
func (s *HTTPServer) handleNotices(w http.ResponseWriter, r *http.Request) {
	notices := []models.Notice{}
	if c := events.CollectorFrom(r.Context()); c != nil {
		notices = append(notices, c.Drain()...)
	}
	writeJSON(w, http.StatusOK, map[string]any{"notices": notices})
}

// handleHome describes the signed-in user and the areas their role opens.
func (s *HTTPServer) handleHome(w http.ResponseWriter, r *http.Request) {
	state := guard.StateFrom(r.Context())
	role := state.Role()

	nav := make([]navEntry, 0, len(navigation))
	for _, entry := range navigation {
		if auth.IsAllowed(role, entry.Group) {
			entry.Title = entry.Group.Title()
			nav = append(nav, entry)
		}
	}

	session := auth.ToSession(state)
	writeJSON(w, http.StatusOK, map[string]any{
		"username":   session.Username,
		"name":       session.FullName(),
		"role":       role,
		"navigation": nav,
	})
}

func (s *HTTPServer) handleHotels(w http.ResponseWriter, r *http.Request) {
	hotels, err := s.deps.Backend.Hotels.List(r.Context(), queryParams(r))
	respond(w, hotels, err)
}

func (s *HTTPServer) handleHotel(w http.ResponseWriter, r *http.Request) {
	hotel, err := s.deps.Backend.Hotels.Get(r.Context(), chi.URLParam(r, "hotelID"))
	respond(w, hotel, err)
}

func (s *HTTPServer) handleHotelRooms(w http.ResponseWriter, r *http.Request) {
	rooms, err := s.deps.Backend.Hotels.Rooms(r.Context(), chi.URLParam(r, "hotelID"))
	respond(w, rooms, err)
}

func (s *HTTPServer) handleRestaurants(w http.ResponseWriter, r *http.Request) {
	restaurants, err := s.deps.Backend.Restaurants.List(r.Context(), queryParams(r))
	respond(w, restaurants, err)
}

func (s *HTTPServer) handleDishes(w http.ResponseWriter, r *http.Request) {
	dishes, err := s.deps.Backend.Restaurants.Dishes(r.Context(), chi.URLParam(r, "restaurantID"))
	respond(w, dishes, err)
}

func (s *HTTPServer) handlePayments(w http.ResponseWriter, r *http.Request) {
	payments, err := s.deps.Backend.Payments.List(r.Context(), queryParams(r))
	respond(w, payments, err)
}

func (s *HTTPServer) handleReservations(w http.ResponseWriter, r *http.Request) {
	reservations, err := s.deps.Backend.Reservations.List(r.Context(), queryParams(r))
	respond(w, reservations, err)
}

func (s *HTTPServer) handleReservation(w http.ResponseWriter, r *http.Request) {
	reservation, err := s.deps.Backend.Reservations.Get(r.Context(), chi.URLParam(r, "reservationID"))
	respond(w, reservation, err)
}

func (s *HTTPServer) handleOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := s.deps.Backend.Orders.List(r.Context(), queryParams(r))
	respond(w, orders, err)
}

func (s *HTTPServer) handleOrder(w http.ResponseWriter, r *http.Request) {
	order, err := s.deps.Backend.Orders.Get(r.Context(), chi.URLParam(r, "orderID"))
	respond(w, order, err)
}

// handleRandomAd answers null when no ad can be picked.
func (s *HTTPServer) handleRandomAd(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	cinemaID := q.Get("cinemaId")
	adType := models.AdType(q.Get("type"))
	if cinemaID == "" || !adType.Valid() {
		writeError(w, http.StatusBadRequest, "cinemaId y type válidos son requeridos")
		return
	}
	writeJSON(w, http.StatusOK, s.deps.Backend.Ads.Random(r.Context(), cinemaID, adType))
}

func respond[T any](w http.ResponseWriter, data T, err error) {
	if err != nil {
		writeBackendError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, data)
}

// queryParams forwards the request's query string to the backend, first
// value per key.
func queryParams(r *http.Request) apiclient.Params {
	values := r.URL.Query()
	if len(values) == 0 {
		return nil
	}
	params := make(apiclient.Params, len(values))
	for key := range values {
		params[key] = values.Get(key)
	}
	return params
}
