package backend

import (
	"context"
	"net/http"

	"backoffice/internal/apiclient"
	"backoffice/internal/models"
)

const ordersURI = "/v1/orders"

type Orders struct {
	c *apiclient.Client
}

func (o *Orders) List(ctx context.Context, params apiclient.Params) ([]models.Order, error) {
	return list[models.Order](ctx, o.c, ordersURI, params)
}

func (o *Orders) Get(ctx context.Context, orderID string) (*models.Order, error) {
	return one[models.Order](ctx, o.c, http.MethodGet, ordersURI+"/"+seg(orderID), nil, nil)
}

func (o *Orders) Create(ctx context.Context, payload models.CreateOrderPayload) (*models.Order, error) {
	return one[models.Order](ctx, o.c, http.MethodPost, ordersURI, nil, payload)
}
