// Package backend holds one typed module per resource of the commerce REST
// API. Functions map a typed input to a single HTTP call and return client
// errors unchanged.
package backend

import (
	"context"
	"net/http"
	"net/url"

	"backoffice/internal/apiclient"
)

// API groups every resource module over one client.
type API struct {
	Auth         *Auth
	Hotels       *Hotels
	Restaurants  *Restaurants
	Reservations *Reservations
	Orders       *Orders
	Invoices     *Invoices
	Sales        *Sales
	Snacks       *Snacks
	Tickets      *Tickets
	Ads          *Ads
	Reports      *Reports
	Clients      *Clients
	Payments     *Payments
}

func New(client *apiclient.Client) *API {
	return &API{
		Auth:         &Auth{c: client},
		Hotels:       &Hotels{c: client},
		Restaurants:  &Restaurants{c: client},
		Reservations: &Reservations{c: client},
		Orders:       &Orders{c: client},
		Invoices:     &Invoices{c: client},
		Sales:        &Sales{c: client},
		Snacks:       &Snacks{c: client},
		Tickets:      &Tickets{c: client},
		Ads:          &Ads{c: client},
		Reports:      &Reports{c: client},
		Clients:      &Clients{c: client},
		Payments:     &Payments{c: client},
	}
}

func one[T any](ctx context.Context, c *apiclient.Client, method, path string, query apiclient.Params, body any) (*T, error) {
	var out T
	if err := c.Do(ctx, method, path, query, body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func list[T any](ctx context.Context, c *apiclient.Client, path string, query apiclient.Params) ([]T, error) {
	var out []T
	if err := c.Do(ctx, http.MethodGet, path, query, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func seg(s string) string {
	return url.PathEscape(s)
}
