package backend

import (
	"context"
	"net/http"

	"backoffice/internal/apiclient"
	"backoffice/internal/models"
)

const paymentsURI = "/v1/payments"

type Payments struct {
	c *apiclient.Client
}

func (p *Payments) List(ctx context.Context, params apiclient.Params) ([]models.Payment, error) {
	return list[models.Payment](ctx, p.c, paymentsURI, params)
}

func (p *Payments) Get(ctx context.Context, paymentID string) (*models.Payment, error) {
	return one[models.Payment](ctx, p.c, http.MethodGet, paymentsURI+"/"+seg(paymentID), nil, nil)
}
