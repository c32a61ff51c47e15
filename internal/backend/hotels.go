package backend

import (
	"context"
	"net/http"

	"backoffice/internal/apiclient"
	"backoffice/internal/models"
)

const hotelsURI = "/v1/hotels"

type Hotels struct {
	c *apiclient.Client
}

func (h *Hotels) List(ctx context.Context, params apiclient.Params) ([]models.Hotel, error) {
	return list[models.Hotel](ctx, h.c, hotelsURI, params)
}

func (h *Hotels) Get(ctx context.Context, hotelID string) (*models.Hotel, error) {
	return one[models.Hotel](ctx, h.c, http.MethodGet, hotelsURI+"/"+seg(hotelID), nil, nil)
}

// Rooms lists every room of a hotel.
func (h *Hotels) Rooms(ctx context.Context, hotelID string) ([]models.Room, error) {
	return list[models.Room](ctx, h.c, hotelsURI+"/"+seg(hotelID)+"/rooms", nil)
}

func (h *Hotels) Restaurants(ctx context.Context, hotelID string) ([]models.Restaurant, error) {
	return list[models.Restaurant](ctx, h.c, hotelsURI+"/"+seg(hotelID)+"/restaurants", nil)
}

func (h *Hotels) Create(ctx context.Context, payload models.HotelPayload) (*models.Hotel, error) {
	return one[models.Hotel](ctx, h.c, http.MethodPost, hotelsURI, nil, payload)
}

func (h *Hotels) Update(ctx context.Context, hotelID string, payload models.HotelPayload) (*models.Hotel, error) {
	return one[models.Hotel](ctx, h.c, http.MethodPatch, hotelsURI+"/"+seg(hotelID), nil, payload)
}

// CreateRoom posts to the hotel resource itself; the backend has no
// /rooms collection endpoint for creation.
func (h *Hotels) CreateRoom(ctx context.Context, hotelID string, payload models.CreateRoomPayload) (*models.Room, error) {
	return one[models.Room](ctx, h.c, http.MethodPost, hotelsURI+"/"+seg(hotelID), nil, payload)
}

func (h *Hotels) GetRoom(ctx context.Context, hotelID, roomID string) (*models.Room, error) {
	return one[models.Room](ctx, h.c, http.MethodGet, hotelsURI+"/"+seg(hotelID)+"/rooms/"+seg(roomID), nil, nil)
}

func (h *Hotels) UpdateRoom(ctx context.Context, hotelID, roomID string, payload models.UpdateRoomPayload) (*models.Room, error) {
	return one[models.Room](ctx, h.c, http.MethodPatch, hotelsURI+"/"+seg(hotelID)+"/rooms/"+seg(roomID), nil, payload)
}
