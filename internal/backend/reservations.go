package backend

import (
	"context"
	"net/http"

	"backoffice/internal/apiclient"
	"backoffice/internal/models"
)

const reservationsURI = "/v1/reservations"

type Reservations struct {
	c *apiclient.Client
}

func (r *Reservations) List(ctx context.Context, params apiclient.Params) ([]models.Reservation, error) {
	return list[models.Reservation](ctx, r.c, reservationsURI, params)
}

func (r *Reservations) Get(ctx context.Context, reservationID string) (*models.Reservation, error) {
	return one[models.Reservation](ctx, r.c, http.MethodGet, reservationsURI+"/"+seg(reservationID), nil, nil)
}

func (r *Reservations) Create(ctx context.Context, payload models.CreateReservationPayload) (*models.Reservation, error) {
	return one[models.Reservation](ctx, r.c, http.MethodPost, reservationsURI, nil, payload)
}
