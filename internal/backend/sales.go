package backend

import (
	"context"
	"net/http"

	"backoffice/internal/apiclient"
	"backoffice/internal/models"
)

const salesURI = "/v1/sales"

type Sales struct {
	c *apiclient.Client
}

func (s *Sales) Create(ctx context.Context, payload models.CreateSalePayload) (*models.Sale, error) {
	return one[models.Sale](ctx, s.c, http.MethodPost, salesURI, nil, payload)
}

func (s *Sales) Get(ctx context.Context, saleID string) (*models.Sale, error) {
	return one[models.Sale](ctx, s.c, http.MethodGet, salesURI+"/"+seg(saleID), nil, nil)
}

func (s *Sales) ByCinema(ctx context.Context, cinemaID string) ([]models.Sale, error) {
	return list[models.Sale](ctx, s.c, salesURI+"/cinema/"+seg(cinemaID), nil)
}

func (s *Sales) ByClient(ctx context.Context, clientID string) ([]models.Sale, error) {
	return list[models.Sale](ctx, s.c, salesURI+"/customer/"+seg(clientID), nil)
}

func (s *Sales) All(ctx context.Context) ([]models.Sale, error) {
	return list[models.Sale](ctx, s.c, salesURI+"/all", nil)
}

// ClaimTicketMoney refunds the amount of one ticket line of a sale.
func (s *Sales) ClaimTicketMoney(ctx context.Context, saleLineTicketID string) (*models.Sale, error) {
	return one[models.Sale](ctx, s.c, http.MethodPost, salesURI+"/claim/sale-line-ticket/"+seg(saleLineTicketID), nil, nil)
}

// Retry asks the backend to charge a sale again. It is only ever called on
// an explicit user action.
func (s *Sales) Retry(ctx context.Context, saleID string) (*models.Sale, error) {
	return one[models.Sale](ctx, s.c, http.MethodPost, salesURI+"/retry/sale/"+seg(saleID), nil, nil)
}
