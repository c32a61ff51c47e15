package backend

import (
	"context"
	"net/http"

	"backoffice/internal/apiclient"
	"backoffice/internal/models"
)

const restaurantsURI = "/v1/restaurants"

type Restaurants struct {
	c *apiclient.Client
}

func (r *Restaurants) List(ctx context.Context, params apiclient.Params) ([]models.Restaurant, error) {
	return list[models.Restaurant](ctx, r.c, restaurantsURI, params)
}

func (r *Restaurants) Get(ctx context.Context, restaurantID string) (*models.Restaurant, error) {
	return one[models.Restaurant](ctx, r.c, http.MethodGet, restaurantsURI+"/"+seg(restaurantID), nil, nil)
}

func (r *Restaurants) ByHotel(ctx context.Context, hotelID string) ([]models.Restaurant, error) {
	return list[models.Restaurant](ctx, r.c, restaurantsURI+"/by-hotel/"+seg(hotelID), nil)
}

func (r *Restaurants) Dishes(ctx context.Context, restaurantID string) ([]models.Dish, error) {
	return list[models.Dish](ctx, r.c, restaurantsURI+"/"+seg(restaurantID)+"/dishes", nil)
}

func (r *Restaurants) GetDish(ctx context.Context, restaurantID, dishID string) (*models.Dish, error) {
	return one[models.Dish](ctx, r.c, http.MethodGet, restaurantsURI+"/"+seg(restaurantID)+"/dishes/"+seg(dishID), nil, nil)
}

// Create registers a restaurant. HotelID is optional and sent as null when
// the restaurant is standalone.
func (r *Restaurants) Create(ctx context.Context, payload models.CreateRestaurantPayload) (*models.Restaurant, error) {
	return one[models.Restaurant](ctx, r.c, http.MethodPost, restaurantsURI, nil, payload)
}

func (r *Restaurants) Update(ctx context.Context, restaurantID string, payload models.UpdateRestaurantPayload) (*models.Restaurant, error) {
	return one[models.Restaurant](ctx, r.c, http.MethodPatch, restaurantsURI+"/"+seg(restaurantID), nil, payload)
}

func (r *Restaurants) CreateDish(ctx context.Context, restaurantID string, payload models.DishPayload) (*models.Dish, error) {
	return one[models.Dish](ctx, r.c, http.MethodPost, restaurantsURI+"/"+seg(restaurantID)+"/dishes", nil, payload)
}

func (r *Restaurants) UpdateDish(ctx context.Context, restaurantID, dishID string, payload models.DishPayload) (*models.Dish, error) {
	return one[models.Dish](ctx, r.c, http.MethodPatch, restaurantsURI+"/"+seg(restaurantID)+"/dishes/"+seg(dishID), nil, payload)
}
