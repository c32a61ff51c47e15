package backend

import (
	"context"
	"net/http"

	"backoffice/internal/apiclient"
	"backoffice/internal/models"
)

const ticketsURI = "/v1/tickets"

type Tickets struct {
	c *apiclient.Client
}

func (t *Tickets) Get(ctx context.Context, ticketID string) (*models.Ticket, error) {
	return one[models.Ticket](ctx, t.c, http.MethodGet, ticketsURI+"/"+seg(ticketID), nil, nil)
}

func (t *Tickets) MarkUsed(ctx context.Context, ticketID string) (*models.Ticket, error) {
	return one[models.Ticket](ctx, t.c, http.MethodPatch, ticketsURI+"/mark-used/"+seg(ticketID), nil, nil)
}

// OccupiedSeats returns how many seats of a cinema function are taken.
func (t *Tickets) OccupiedSeats(ctx context.Context, cinemaFunctionID string) (int, error) {
	var qty int
	path := ticketsURI + "/public/cinema-function/" + seg(cinemaFunctionID) + "/seats/occupied/qty"
	if err := t.c.Do(ctx, http.MethodGet, path, nil, nil, &qty); err != nil {
		return 0, err
	}
	return qty, nil
}
