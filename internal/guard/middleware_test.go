package guard

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"backoffice/internal/apiclient"
	"backoffice/internal/auth"
	"backoffice/internal/events"
	"backoffice/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testCookie = "proyecto1sa-user-token"

type fakeSessions map[string]auth.State

func (f fakeSessions) Current(_ context.Context, token string) auth.State {
	return f[token]
}

func signedIn(role string) auth.State {
	return auth.SignedIn(auth.State{}, models.LoginResponse{
		Token:    "tok",
		Username: "ana",
		Employee: &models.Employee{EmployeeType: &models.EmployeeType{Name: role}},
	})
}

type reached struct {
	ok    bool
	token string
	state auth.State
}

func newGuarded(sessions Sessions) (http.Handler, *reached) {
	got := &reached{}
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got.ok = true
		got.token = apiclient.TokenFrom(r.Context())
		got.state = StateFrom(r.Context())
		w.WriteHeader(http.StatusOK)
	})
	return Middleware(testCookie, sessions, events.NewNotifier(nil), nil)(next), got
}

func serve(h http.Handler, path, token string, accept string) (*httptest.ResponseRecorder, []models.Notice) {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.AddCookie(&http.Cookie{Name: testCookie, Value: token})
	}
	if accept != "" {
		req.Header.Set("Accept", accept)
	}
	ctx, collector := events.WithCollector(req.Context())
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req.WithContext(ctx))
	return rec, collector.Drain()
}

func TestMiddlewareRedirectsWithoutToken(t *testing.T) {
	h, got := newGuarded(fakeSessions{})
	rec, notices := serve(h, "/ordenes", "", "")

	assert.False(t, got.ok)
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get("Location"))
	require.Len(t, notices, 1)
	assert.Equal(t, "Debes loguearte para acceder al sitio", notices[0].Message)
}

func TestMiddlewareAllowsAndAttachesToken(t *testing.T) {
	h, got := newGuarded(fakeSessions{"tok": signedIn("Staff Restaurante")})
	rec, notices := serve(h, "/ordenes/o1", "tok", "")

	assert.True(t, got.ok)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "tok", got.token)
	assert.Equal(t, auth.RoleStaffRestaurant, got.state.Role())
	assert.Empty(t, notices)
}

func TestMiddlewareDeniesWrongRole(t *testing.T) {
	h, got := newGuarded(fakeSessions{"tok": signedIn("Contador")})
	rec, notices := serve(h, "/admin/hotels", "tok", "")

	assert.False(t, got.ok)
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/", rec.Header().Get("Location"))
	require.Len(t, notices, 1)
	assert.Equal(t, "No tienes permisos para acceder a Administración", notices[0].Message)
}

func TestMiddlewareJSONDenial(t *testing.T) {
	h, _ := newGuarded(fakeSessions{"tok": signedIn("Staff Hotel")})

	rec, _ := serve(h, "/reportes/ventas.csv", "tok", "application/json")
	assert.Equal(t, http.StatusForbidden, rec.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "No tienes permisos para acceder a Reportes", body["error"])

	rec, _ = serve(h, "/reportes", "", "application/json")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestMiddlewareUnknownTokenCountsAsSignedOut(t *testing.T) {
	h, got := newGuarded(fakeSessions{})

	rec, _ := serve(h, "/login", "stale", "")
	assert.True(t, got.ok)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "", got.token)
}

func TestMiddlewareSignedInOnLogin(t *testing.T) {
	h, got := newGuarded(fakeSessions{"tok": signedIn("ADMIN")})
	rec, notices := serve(h, "/login", "tok", "application/json")

	assert.False(t, got.ok)
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/", rec.Header().Get("Location"))
	assert.Empty(t, notices)
}

func TestMiddlewarePublicSkipsSession(t *testing.T) {
	h, got := newGuarded(nil)
	rec, _ := serve(h, "/public/anuncios/random", "", "")
	assert.True(t, got.ok)
	assert.Equal(t, http.StatusOK, rec.Code)
}
