package models

// Reservation is a hotel room booking.
type Reservation struct {
	Entity
	ClientCUI        string            `json:"clientCui"`
	HotelID          string            `json:"hotelId"`
	RoomID           string            `json:"roomId"`
	StartDate        Timestamp         `json:"startDate"`
	EndDate          Timestamp         `json:"endDate"`
	TotalCost        *float64          `json:"totalCost"`
	Subtotal         *float64          `json:"subtotal"`
	PromotionApplied *PromotionApplied `json:"promotionApplied,omitempty"`
	Hotel            *Hotel            `json:"hotel,omitempty"`
	Room             *Room             `json:"room,omitempty"`
}

type CreateReservationPayload struct {
	ClientCUI   string `json:"clientCui"`
	HotelID     string `json:"hotelId"`
	RoomID      string `json:"roomId"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	PromotionID string `json:"promotionId,omitempty"`
}

// Order is a restaurant order.
type Order struct {
	Entity
	ClientCUI        string            `json:"clientCui"`
	RestaurantID     string            `json:"restaurantId"`
	Restaurant       *Restaurant       `json:"restaurant,omitempty"`
	Items            []OrderItem       `json:"items"`
	Total            *float64          `json:"total"`
	Subtotal         *float64          `json:"subtotal"`
	PromotionApplied *PromotionApplied `json:"promotionApplied,omitempty"`
}

type OrderItem struct {
	DishID   string  `json:"dishId"`
	Name     string  `json:"name"`
	Quantity float64 `json:"quantity"`
	Price    float64 `json:"price"`
}

type CreateOrderItemRequest struct {
	DishID   string `json:"dishId"`
	Quantity int    `json:"quantity"`
}

type CreateOrderPayload struct {
	ClientCUI               string                   `json:"clientCui"`
	RestaurantID            string                   `json:"restaurantId"`
	PromotionID             string                   `json:"promotionId,omitempty"`
	CreateOrderItemRequests []CreateOrderItemRequest `json:"createOrderItemRequests"`
	OrderedAt               Timestamp                `json:"orderedAt"`
}

// Payment is polymorphic over its source: a hotel stay or a restaurant order.
type Payment struct {
	Entity
	EstablishmentID  string            `json:"establishmentId"`
	ClientID         string            `json:"clientId"`
	SourceType       string            `json:"sourceType"`
	SourceID         string            `json:"sourceId"`
	Subtotal         float64           `json:"subtotal"`
	Discount         float64           `json:"discount"`
	Total            float64           `json:"total"`
	Method           string            `json:"method"`
	Status           string            `json:"status"`
	CardNumber       string            `json:"cardNumber"`
	PromotionApplied *PromotionApplied `json:"promotionApplied,omitempty"`
	Hotel            *Hotel            `json:"hotel,omitempty"`
	Restaurant       *Restaurant       `json:"restaurant,omitempty"`
	Description      string            `json:"description,omitempty"`
}

type Client struct {
	Entity
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	CUI       string `json:"cui"`
}

type CreateClientPayload struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	CUI       string `json:"cui"`
}
