package guard

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"backoffice/internal/apiclient"
	"backoffice/internal/auth"
	"backoffice/internal/domain"
	"backoffice/internal/logging"
	"backoffice/internal/metrics"

	"github.com/rs/zerolog"
)

// Sessions resolves the state stored for a token.
type Sessions interface {
	Current(ctx context.Context, token string) auth.State
}

type stateKey struct{}

// StateFrom returns the session state the middleware attached to ctx.
func StateFrom(ctx context.Context) auth.State {
	s, _ := ctx.Value(stateKey{}).(auth.State)
	return s
}

func WithState(ctx context.Context, s auth.State) context.Context {
	return context.WithValue(ctx, stateKey{}, s)
}

// Middleware enforces Evaluate on every request. Allowed requests continue
// with the session state and bearer token in their context.
func Middleware(cookieName string, sessions Sessions, notifier domain.Notifier, logger *zerolog.Logger) func(http.Handler) http.Handler {
	log := logging.Component(logger, "guard")

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			token := ""
			if c, err := r.Cookie(cookieName); err == nil {
				token = c.Value
			}

			state := auth.State{}
			if token != "" && !IsPublic(r.URL.Path) {
				state = sessions.Current(ctx, token)
				// A cookie without a stored session counts as signed out.
				if !state.Authenticated {
					token = ""
				}
			}

			decision := Evaluate(r.URL.Path, token, state.Role())
			metrics.IncGuard(string(decision.Kind))

			if decision.Kind != Allow {
				log.Debug().
					Str("path", r.URL.Path).
					Str("decision", string(decision.Kind)).
					Str("role", string(state.Role())).
					Msg("navigation blocked")
				if decision.Notice != nil && notifier != nil {
					notifier.Notify(ctx, *decision.Notice)
				}
				if wantsJSON(r) && decision.Kind != RedirectHome {
					writeDecision(w, decision)
					return
				}
				http.Redirect(w, r, decision.Location, http.StatusSeeOther)
				return
			}

			ctx = WithState(ctx, state)
			if token != "" {
				ctx = apiclient.WithToken(ctx, token)
			}
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func wantsJSON(r *http.Request) bool {
	return strings.Contains(r.Header.Get("Accept"), "application/json")
}

func writeDecision(w http.ResponseWriter, d Decision) {
	status := http.StatusForbidden
	if d.Kind == RedirectLogin {
		status = http.StatusUnauthorized
	}
	body := map[string]string{"redirect": d.Location}
	if d.Notice != nil {
		body["error"] = d.Notice.Message
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
