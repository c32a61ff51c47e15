package api

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"backoffice/internal/events"
	"backoffice/internal/metrics"
	"backoffice/internal/models"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const (
	requestIDHeader = "X-Request-ID"
	flashCookie     = "backoffice-notices"
	maxFlashNotices = 10
	unmatchedRoute  = "unmatched"
)

// requestLogger tags the request with an ID and writes one access log line.
func requestLogger(logger zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requestID := strings.TrimSpace(r.Header.Get(requestIDHeader))
			if requestID == "" {
				requestID = uuid.NewString()
			}
			w.Header().Set(requestIDHeader, requestID)

			reqLogger := logger.With().Str("request_id", requestID).Logger()
			ctx := reqLogger.WithContext(r.Context())

			start := time.Now()
			recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(recorder, r.WithContext(ctx))
			dur := time.Since(start)

			route := routeLabel(r)
			metrics.IncHTTP(route)

			reqLogger.Info().
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Str("route", route).
				Int("status", recorder.status).
				Dur("duration", dur).
				Msg("http request")
		})
	}
}

// routeLabel is the chi pattern that served r. Paths no route matched share
// one label so the metric stays bounded.
func routeLabel(r *http.Request) string {
	rctx := chi.RouteContext(r.Context())
	if rctx == nil {
		return unmatchedRoute
	}
	switch pattern := rctx.RoutePattern(); pattern {
	case "", "/*":
		return unmatchedRoute
	default:
		return pattern
	}
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// flashNotices gives each request a notice collector seeded from the flash
// cookie. Whatever is left in the collector when the response starts goes
// back into the cookie, so notices survive redirects until /notices reads
// them.
func flashNotices(secure bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, collector := events.WithCollector(r.Context())
			pending := readFlash(r)
			for _, n := range pending {
				collector.Add(n)
			}

			fw := &flashWriter{
				ResponseWriter: w,
				collector:      collector,
				hadCookie:      len(pending) > 0,
				secure:         secure,
			}
			next.ServeHTTP(fw, r.WithContext(ctx))
			if !fw.wroteHeader {
				fw.flush()
			}
		})
	}
}

type flashWriter struct {
	http.ResponseWriter
	collector   *events.Collector
	hadCookie   bool
	secure      bool
	wroteHeader bool
}

func (w *flashWriter) WriteHeader(status int) {
	if !w.wroteHeader {
		w.wroteHeader = true
		w.flush()
	}
	w.ResponseWriter.WriteHeader(status)
}

func (w *flashWriter) Write(b []byte) (int, error) {
	if !w.wroteHeader {
		w.WriteHeader(http.StatusOK)
	}
	return w.ResponseWriter.Write(b)
}

func (w *flashWriter) flush() {
	notices := w.collector.Drain()
	if len(notices) == 0 {
		if w.hadCookie {
			http.SetCookie(w.ResponseWriter, &http.Cookie{Name: flashCookie, Path: "/", MaxAge: -1})
		}
		return
	}
	if len(notices) > maxFlashNotices {
		notices = notices[len(notices)-maxFlashNotices:]
	}
	raw, err := json.Marshal(notices)
	if err != nil {
		return
	}
	http.SetCookie(w.ResponseWriter, &http.Cookie{
		Name:     flashCookie,
		Value:    base64.RawURLEncoding.EncodeToString(raw),
		Path:     "/",
		HttpOnly: true,
		Secure:   w.secure,
		SameSite: http.SameSiteLaxMode,
	})
}

func readFlash(r *http.Request) []models.Notice {
	c, err := r.Cookie(flashCookie)
	if err != nil || c.Value == "" {
		return nil
	}
	raw, err := base64.RawURLEncoding.DecodeString(c.Value)
	if err != nil {
		return nil
	}
	var notices []models.Notice
	if err := json.Unmarshal(raw, &notices); err != nil {
		return nil
	}
	return notices
}
