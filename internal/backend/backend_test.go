package backend

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"backoffice/internal/apiclient"
	"backoffice/internal/config"
	"backoffice/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type captured struct {
	Method      string
	Path        string
	RawPath     string
	Query       string
	ContentType string
	Body        string
}

func newTestAPI(t *testing.T, status int, response string) (*API, *captured) {
	t.Helper()
	got := &captured{}
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got.Method = r.Method
		got.Path = r.URL.Path
		got.RawPath = r.URL.EscapedPath()
		got.Query = r.URL.RawQuery
		got.ContentType = r.Header.Get("Content-Type")
		data, _ := io.ReadAll(r.Body)
		got.Body = string(data)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(response))
	}))
	t.Cleanup(ts.Close)
	return New(apiclient.New(config.BackendConfig{BaseURL: ts.URL}, nil)), got
}

func TestEndpoints(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name   string
		call   func(api *API) error
		method string
		path   string
		query  string
		list   bool
	}{
		{
			name:   "hotels list",
			call:   func(api *API) error { _, err := api.Hotels.List(ctx, apiclient.Params{"page": 1}); return err },
			method: http.MethodGet, path: "/v1/hotels", query: "page=1", list: true,
		},
		{
			name:   "hotel restaurants",
			call:   func(api *API) error { _, err := api.Hotels.Restaurants(ctx, "h1"); return err },
			method: http.MethodGet, path: "/v1/hotels/h1/restaurants", list: true,
		},
		{
			name: "create room posts to hotel",
			call: func(api *API) error {
				_, err := api.Hotels.CreateRoom(ctx, "h1", models.CreateRoomPayload{Number: "101"})
				return err
			},
			method: http.MethodPost, path: "/v1/hotels/h1",
		},
		{
			name: "update room",
			call: func(api *API) error {
				_, err := api.Hotels.UpdateRoom(ctx, "h1", "r9", models.UpdateRoomPayload{Number: "102"})
				return err
			},
			method: http.MethodPatch, path: "/v1/hotels/h1/rooms/r9",
		},
		{
			name:   "restaurants by hotel",
			call:   func(api *API) error { _, err := api.Restaurants.ByHotel(ctx, "h1"); return err },
			method: http.MethodGet, path: "/v1/restaurants/by-hotel/h1", list: true,
		},
		{
			name: "update dish",
			call: func(api *API) error {
				_, err := api.Restaurants.UpdateDish(ctx, "rs1", "d1", models.DishPayload{Name: "Pepián", Price: 55})
				return err
			},
			method: http.MethodPatch, path: "/v1/restaurants/rs1/dishes/d1",
		},
		{
			name:   "invoice for warehouse",
			call:   func(api *API) error { _, err := api.Invoices.CreateForWarehouse(ctx, models.CreateInvoice{}, "w1"); return err },
			method: http.MethodPost, path: "/v1/invoices/warehouse/w1",
		},
		{
			name:   "invoices by client document",
			call:   func(api *API) error { _, err := api.Invoices.ByClientDocument(ctx, "1234567"); return err },
			method: http.MethodGet, path: "/v1/invoices/client/1234567", list: true,
		},
		{
			name:   "sales by client",
			call:   func(api *API) error { _, err := api.Sales.ByClient(ctx, "c1"); return err },
			method: http.MethodGet, path: "/v1/sales/customer/c1", list: true,
		},
		{
			name:   "claim ticket money",
			call:   func(api *API) error { _, err := api.Sales.ClaimTicketMoney(ctx, "slt1"); return err },
			method: http.MethodPost, path: "/v1/sales/claim/sale-line-ticket/slt1",
		},
		{
			name:   "retry sale",
			call:   func(api *API) error { _, err := api.Sales.Retry(ctx, "s1"); return err },
			method: http.MethodPost, path: "/v1/sales/retry/sale/s1",
		},
		{
			name:   "mark ticket used",
			call:   func(api *API) error { _, err := api.Tickets.MarkUsed(ctx, "t1"); return err },
			method: http.MethodPatch, path: "/v1/tickets/mark-used/t1",
		},
		{
			name:   "toggle ad",
			call:   func(api *API) error { return api.Ads.ToggleActive(ctx, "a1") },
			method: http.MethodPatch, path: "/v1/adds/state/a1",
		},
		{
			name:   "retry ad payment",
			call:   func(api *API) error { return api.Ads.RetryPayment(ctx, "a1") },
			method: http.MethodPost, path: "/v1/adds/retry-paid/a1",
		},
		{
			name:   "delete ad",
			call:   func(api *API) error { return api.Ads.Delete(ctx, "a1") },
			method: http.MethodDelete, path: "/v1/adds/a1",
		},
		{
			name:   "client by cui",
			call:   func(api *API) error { _, err := api.Clients.ByCUI(ctx, "2990"); return err },
			method: http.MethodGet, path: "/v1/clients/by-cui/2990",
		},
		{
			name:   "payment get",
			call:   func(api *API) error { _, err := api.Payments.Get(ctx, "p1"); return err },
			method: http.MethodGet, path: "/v1/payments/p1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			response := `{}`
			if tt.list {
				response = `[]`
			}
			api, got := newTestAPI(t, http.StatusOK, response)
			require.NoError(t, tt.call(api))
			assert.Equal(t, tt.method, got.Method)
			assert.Equal(t, tt.path, got.Path)
			assert.Equal(t, tt.query, got.Query)
		})
	}
}

func TestPathSegmentsAreEscaped(t *testing.T) {
	api, got := newTestAPI(t, http.StatusOK, `{}`)
	_, err := api.Hotels.Get(context.Background(), "a/b c")
	require.NoError(t, err)
	assert.Equal(t, "/v1/hotels/a%2Fb%20c", got.RawPath)
}

func TestErrorsPropagateUnchanged(t *testing.T) {
	api, _ := newTestAPI(t, http.StatusNotFound, `{"message":"Hotel no encontrado"}`)
	hotel, err := api.Hotels.Get(context.Background(), "missing")
	require.Error(t, err)
	assert.Nil(t, hotel)
	assert.Equal(t, http.StatusNotFound, apiclient.StatusOf(err))
	assert.Equal(t, "Hotel no encontrado", apiclient.MessageOf(err))
}

func TestInvoicesAllUsesFilterQuery(t *testing.T) {
	api, got := newTestAPI(t, http.StatusOK, `[]`)
	method := "CASH"
	_, err := api.Invoices.All(context.Background(), models.InvoiceFilter{PaymentMethod: &method})
	require.NoError(t, err)
	assert.Equal(t, "/v1/invoices/all", got.Path)
	assert.Equal(t, "paymentMethod=CASH", got.Query)

	_, err = api.Invoices.All(context.Background(), models.InvoiceFilter{})
	require.NoError(t, err)
	assert.Equal(t, "", got.Query)
}

func TestAdsSearchAddsPage(t *testing.T) {
	api, got := newTestAPI(t, http.StatusOK, `{"content":[{"id":"a1"}],"totalPages":1,"number":0}`)
	active := true
	page, err := api.Ads.Search(context.Background(), models.AdFilter{Active: &active}, 2)
	require.NoError(t, err)
	assert.Equal(t, "/v1/adds/search", got.Path)
	assert.Equal(t, "active=true&page=2", got.Query)
	require.Len(t, page.Content, 1)
	assert.Equal(t, "a1", page.Content[0].ID)
}

func TestAdsRandomSwallowsFailure(t *testing.T) {
	api, _ := newTestAPI(t, http.StatusInternalServerError, `{"message":"boom"}`)
	assert.Nil(t, api.Ads.Random(context.Background(), "c1", models.AdTextBanner))

	api, got := newTestAPI(t, http.StatusOK, `{"id":"a7","type":"TEXT_BANNER"}`)
	ad := api.Ads.Random(context.Background(), "c1", models.AdTextBanner)
	require.NotNil(t, ad)
	assert.Equal(t, "a7", ad.ID)
	assert.Equal(t, "/v1/adds/public/cinema/c1/type/TEXT_BANNER/random", got.Path)
	assert.Equal(t, "cinemaId=c1&type=TEXT_BANNER", got.Query)
}

func TestAdsUpdateWithoutFileOmitsPart(t *testing.T) {
	api, got := newTestAPI(t, http.StatusOK, `{"id":"a1"}`)
	_, err := api.Ads.Update(context.Background(), "a1", models.UpdateAdUpload{Content: "x", Description: "y", URLContent: "z"})
	require.NoError(t, err)
	assert.Equal(t, http.MethodPatch, got.Method)
	assert.True(t, strings.HasPrefix(got.ContentType, "multipart/form-data"))
	assert.NotContains(t, got.Body, `name="file"`)
	assert.Contains(t, got.Body, `name="urlContent"`)
}

func TestSnackCreateSendsFile(t *testing.T) {
	api, got := newTestAPI(t, http.StatusOK, `{"id":"s1","name":"Poporopo"}`)
	snack, err := api.Snacks.Create(context.Background(), models.SnackUpload{
		CinemaID: "c1",
		Name:     "Poporopo",
		Price:    25.5,
		File:     &models.Upload{FileName: "pop.png", Content: strings.NewReader("IMG")},
	})
	require.NoError(t, err)
	assert.Equal(t, "Poporopo", snack.Name)
	assert.Contains(t, got.Body, `filename="pop.png"`)
	assert.Contains(t, got.Body, "25.5")
}

func TestOccupiedSeats(t *testing.T) {
	api, got := newTestAPI(t, http.StatusOK, `42`)
	qty, err := api.Tickets.OccupiedSeats(context.Background(), "f1")
	require.NoError(t, err)
	assert.Equal(t, 42, qty)
	assert.Equal(t, "/v1/tickets/public/cinema-function/f1/seats/occupied/qty", got.Path)
}

func TestReportsBodyAndQuery(t *testing.T) {
	api, got := newTestAPI(t, http.StatusOK, `[]`)
	_, err := api.Reports.BoughtAds(context.Background(), models.BoughtAdsQuery{From: "2025-10-01", To: "2025-10-31"})
	require.NoError(t, err)
	assert.Equal(t, "/v1/adds/report/bought", got.Path)

	var body map[string]any
	require.NoError(t, json.Unmarshal([]byte(got.Body), &body))
	assert.Equal(t, "2025-10-01", body["from"])
	assert.NotContains(t, body, "addType")

	api, got = newTestAPI(t, http.StatusOK, `{"adds":[],"totalGanancias":150}`)
	report, err := api.Reports.AdvertiserEarnings(context.Background(), models.AdvertiserEarningsQuery{From: "2025-10-01", To: "2025-10-31"})
	require.NoError(t, err)
	assert.Equal(t, http.MethodPost, got.Method)
	assert.Equal(t, "from=2025-10-01&to=2025-10-31", got.Query)
	assert.Empty(t, got.Body)
	assert.InDelta(t, 150.0, report.TotalGanancias, 0.001)
}

func TestAuthLogin(t *testing.T) {
	api, got := newTestAPI(t, http.StatusOK, `{"token":"tok","username":"ana","employee":{"employeeType":{"name":"ADMIN"}}}`)
	resp, err := api.Auth.Login(context.Background(), models.LoginPayload{Email: "ana@example.com", Password: "pw"})
	require.NoError(t, err)
	assert.Equal(t, "/v1/auth/login", got.Path)
	assert.Equal(t, "tok", resp.Token)
	require.NotNil(t, resp.Employee)
	assert.Equal(t, "ADMIN", resp.Employee.EmployeeType.Name)
}

func TestToCreateInvoice(t *testing.T) {
	form := models.InvoiceForm{
		PaymentMethod:  "CARD",
		ClientDocument: "CF",
		Details: []models.InvoiceDetail{
			{Entity: models.Entity{ID: "det-1"}, ItemID: "i1", ItemName: "Noche", ItemType: "SERVICE", Quantity: 2, UnitPrice: 300, Total: 600},
		},
	}

	got := ToCreateInvoice(form)
	assert.Equal(t, models.MethodCard, got.PaymentMethod)
	assert.Equal(t, "CF", got.ClientDocument)
	require.Len(t, got.Details, 1)
	assert.Equal(t, models.CreateInvoiceDetail{
		ItemID: "i1", ItemName: "Noche", ItemType: models.ItemService, Quantity: 2, UnitPrice: 300,
	}, got.Details[0])
}
