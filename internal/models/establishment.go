package models

type RoomStatus string

const (
	RoomAvailable   RoomStatus = "AVAILABLE"
	RoomOccupied    RoomStatus = "OCCUPIED"
	RoomMaintenance RoomStatus = "MAINTENANCE"
)

func (s RoomStatus) Valid() bool {
	switch s {
	case RoomAvailable, RoomOccupied, RoomMaintenance:
		return true
	}
	return false
}

type Hotel struct {
	Entity
	Name                   string  `json:"name"`
	Address                string  `json:"address"`
	MaintenanceCostPerWeek float64 `json:"maintenanceCostPerWeek"`
}

type Room struct {
	Entity
	Name          string     `json:"name,omitempty"`
	Number        string     `json:"number,omitempty"`
	Capacity      int        `json:"capacity"`
	PricePerNight float64    `json:"pricePerNight"`
	Status        RoomStatus `json:"status,omitempty"`
}

// Label is how documents and listings name the room.
func (r *Room) Label() string {
	if r == nil {
		return ""
	}
	if r.Number != "" {
		return r.Number
	}
	return r.Name
}

type HotelPayload struct {
	Name                   string  `json:"name"`
	Address                string  `json:"address"`
	MaintenanceCostPerWeek float64 `json:"maintenanceCostPerWeek"`
}

type CreateRoomPayload struct {
	Number        string     `json:"number"`
	Capacity      int        `json:"capacity"`
	PricePerNight float64    `json:"pricePerNight"`
	Status        RoomStatus `json:"status,omitempty"`
}

type UpdateRoomPayload struct {
	Number        string  `json:"number"`
	PricePerNight float64 `json:"pricePerNight"`
	Capacity      int     `json:"capacity"`
}

type Restaurant struct {
	Entity
	Name    string `json:"name"`
	Address string `json:"address"`
	HotelID string `json:"hotelId,omitempty"`
}

type Dish struct {
	Entity
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Description string  `json:"description,omitempty"`
	Available   *bool   `json:"available,omitempty"`
	Category    string  `json:"category,omitempty"`
}

type CreateRestaurantPayload struct {
	Name    string  `json:"name"`
	Address string  `json:"address"`
	HotelID *string `json:"hotelId"`
}

type UpdateRestaurantPayload struct {
	Name    string `json:"name"`
	Address string `json:"address"`
}

type DishPayload struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}
