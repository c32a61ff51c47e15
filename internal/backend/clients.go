package backend

import (
	"context"
	"net/http"

	"backoffice/internal/apiclient"
	"backoffice/internal/models"
)

const clientsURI = "/v1/clients"

type Clients struct {
	c *apiclient.Client
}

func (c *Clients) ByCUI(ctx context.Context, cui string) (*models.Client, error) {
	return one[models.Client](ctx, c.c, http.MethodGet, clientsURI+"/by-cui/"+seg(cui), nil, nil)
}

func (c *Clients) Create(ctx context.Context, payload models.CreateClientPayload) (*models.Client, error) {
	return one[models.Client](ctx, c.c, http.MethodPost, clientsURI, nil, payload)
}
