package api

import (
	"fmt"
	"net/http"
	"strconv"

	"backoffice/internal/export"
	"backoffice/internal/metrics"
	"backoffice/internal/models"

	"github.com/go-chi/chi/v5"
	"github.com/mitchellh/mapstructure"
)

// httpDownloader delivers a file as an attachment of the response.
type httpDownloader struct {
	w http.ResponseWriter
}

func (d httpDownloader) Download(fileName, contentType string, data []byte) error {
	h := d.w.Header()
	h.Set("Content-Type", contentType)
	h.Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", fileName))
	h.Set("Content-Length", strconv.Itoa(len(data)))
	d.w.WriteHeader(http.StatusOK)
	_, err := d.w.Write(data)
	return err
}

func (s *HTTPServer) handleReservationProof(w http.ResponseWriter, r *http.Request) {
	res, hotel, room, err := s.stay(r)
	if err != nil {
		writeBackendError(w, err)
		return
	}
	s.download(w, export.ReservationProof(res, hotel, room))
}

func (s *HTTPServer) handleReservationInvoice(w http.ResponseWriter, r *http.Request) {
	res, hotel, room, err := s.stay(r)
	if err != nil {
		writeBackendError(w, err)
		return
	}
	s.download(w, export.ReservationInvoice(res, hotel, room))
}

func (s *HTTPServer) handleOrderInvoice(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	order, err := s.deps.Backend.Orders.Get(ctx, chi.URLParam(r, "orderID"))
	if err != nil {
		writeBackendError(w, err)
		return
	}

	restaurant := order.Restaurant
	if restaurant == nil && order.RestaurantID != "" {
		if found, err := s.deps.Backend.Restaurants.Get(ctx, order.RestaurantID); err == nil {
			restaurant = found
		}
	}
	s.download(w, export.OrderInvoice(order, restaurant))
}

// stay loads a reservation with its hotel and room. Missing hotel or room
// details only degrade the document.
func (s *HTTPServer) stay(r *http.Request) (*models.Reservation, *models.Hotel, *models.Room, error) {
	ctx := r.Context()
	res, err := s.deps.Backend.Reservations.Get(ctx, chi.URLParam(r, "reservationID"))
	if err != nil {
		return nil, nil, nil, err
	}

	hotel, room := res.Hotel, res.Room
	if hotel == nil && res.HotelID != "" {
		if found, err := s.deps.Backend.Hotels.Get(ctx, res.HotelID); err == nil {
			hotel = found
		}
	}
	if room == nil && res.HotelID != "" && res.RoomID != "" {
		if found, err := s.deps.Backend.Hotels.GetRoom(ctx, res.HotelID, res.RoomID); err == nil {
			room = found
		}
	}
	return res, hotel, room, nil
}

func (s *HTTPServer) download(w http.ResponseWriter, doc export.Document) {
	if err := s.deps.Exporter.Download(httpDownloader{w: w}, doc); err != nil {
		s.logger.Error().Err(err).Str("kind", doc.Kind).Msg("document download failed")
		writeError(w, http.StatusInternalServerError, models.DefaultErrorMessage)
	}
}

func (s *HTTPServer) handleBoughtAdsXLSX(w http.ResponseWriter, r *http.Request) {
	var query models.BoughtAdsQuery
	if !decodeReportQuery(w, r, &query) || !requirePeriod(w, query.From, query.To) {
		return
	}
	ads, err := s.deps.Backend.Reports.BoughtAds(r.Context(), query)
	if err != nil {
		writeBackendError(w, err)
		return
	}
	data, err := s.deps.Workbooks.BoughtAds(ads)
	s.sendFile(w, "bought_ads_xlsx", "anuncios_comprados.xlsx", export.ContentTypeXLSX, data, err)
}

func (s *HTTPServer) handleBoughtAdsPDF(w http.ResponseWriter, r *http.Request) {
	var query models.BoughtAdsQuery
	if !decodeReportQuery(w, r, &query) || !requirePeriod(w, query.From, query.To) {
		return
	}
	data, err := s.deps.Backend.Reports.BoughtAdsPDF(r.Context(), query)
	if err != nil {
		writeBackendError(w, err)
		return
	}
	s.sendFile(w, "bought_ads_pdf", "anuncios_comprados.pdf", export.ContentTypePDF, data, nil)
}

func (s *HTTPServer) handleEarningsXLSX(w http.ResponseWriter, r *http.Request) {
	var query models.AdvertiserEarningsQuery
	if !decodeReportQuery(w, r, &query) || !requirePeriod(w, query.From, query.To) {
		return
	}
	report, err := s.deps.Backend.Reports.AdvertiserEarnings(r.Context(), query)
	if err != nil {
		writeBackendError(w, err)
		return
	}
	data, err := s.deps.Workbooks.AdvertiserEarnings(report)
	s.sendFile(w, "advertiser_earnings_xlsx", "ganancias_anunciante.xlsx", export.ContentTypeXLSX, data, err)
}

func (s *HTTPServer) handleEarningsPDF(w http.ResponseWriter, r *http.Request) {
	var query models.AdvertiserEarningsQuery
	if !decodeReportQuery(w, r, &query) || !requirePeriod(w, query.From, query.To) {
		return
	}
	data, err := s.deps.Backend.Reports.AdvertiserEarningsPDF(r.Context(), query)
	if err != nil {
		writeBackendError(w, err)
		return
	}
	s.sendFile(w, "advertiser_earnings_pdf", "ganancias_anunciante.pdf", export.ContentTypePDF, data, nil)
}

// handleSalesCSV exports every sale, or those of one cinema when cinemaId
// is given.
func (s *HTTPServer) handleSalesCSV(w http.ResponseWriter, r *http.Request) {
	var (
		sales []models.Sale
		err   error
	)
	if cinemaID := r.URL.Query().Get("cinemaId"); cinemaID != "" {
		sales, err = s.deps.Backend.Sales.ByCinema(r.Context(), cinemaID)
	} else {
		sales, err = s.deps.Backend.Sales.All(r.Context())
	}
	if err != nil {
		writeBackendError(w, err)
		return
	}
	data, err := export.SalesCSV(sales)
	s.sendFile(w, "sales_csv", "ventas.csv", export.ContentTypeCSV, data, err)
}

func (s *HTTPServer) sendFile(w http.ResponseWriter, kind, fileName, contentType string, data []byte, err error) {
	metrics.IncExport(kind, err)
	if err != nil {
		s.logger.Error().Err(err).Str("kind", kind).Msg("report export failed")
		writeError(w, http.StatusInternalServerError, models.DefaultErrorMessage)
		return
	}
	if err := (httpDownloader{w: w}).Download(fileName, contentType, data); err != nil {
		s.logger.Warn().Err(err).Str("kind", kind).Msg("report write failed")
	}
}

// decodeReportQuery fills a report query struct from the query string using
// its mapstructure tags.
func decodeReportQuery(w http.ResponseWriter, r *http.Request, out any) bool {
	values := r.URL.Query()
	raw := make(map[string]any, len(values))
	for key := range values {
		raw[key] = values.Get(key)
	}
	if err := mapstructure.WeakDecode(raw, out); err != nil {
		writeError(w, http.StatusBadRequest, "parámetros de reporte inválidos")
		return false
	}
	return true
}

func requirePeriod(w http.ResponseWriter, from, to string) bool {
	if from == "" || to == "" {
		writeError(w, http.StatusBadRequest, "from y to son requeridos")
		return false
	}
	return true
}
