package models

import "io"

type SaleStatus string

const (
	SalePending   SaleStatus = "PENDING"
	SalePaid      SaleStatus = "PAID"
	SalePaidError SaleStatus = "PAID_ERROR"
	SaleCancelled SaleStatus = "CANCELLED"
)

func (s SaleStatus) Valid() bool {
	switch s {
	case SalePending, SalePaid, SalePaidError, SaleCancelled:
		return true
	}
	return false
}

type Snack struct {
	ID        string    `json:"id"`
	CinemaID  string    `json:"cinemaId"`
	Name      string    `json:"name"`
	Price     float64   `json:"price"`
	ImageURL  string    `json:"imageUrl"`
	CreatedAt Timestamp `json:"createdAt"`
	UpdatedAt Timestamp `json:"updatedAt"`
}

// SnackUpload is the multipart body for creating or updating a snack.
// File may be nil on update.
type SnackUpload struct {
	CinemaID string
	Name     string
	Price    float64
	File     *Upload
}

// Upload is a file part of a multipart request.
type Upload struct {
	FileName string
	Content  io.Reader
}

type Ticket struct {
	ID               string    `json:"id"`
	SaleLineTicketID string    `json:"saleLineTicketId"`
	CinemaFunctionID string    `json:"cinemaFunctionId"`
	CinemaID         string    `json:"cinemaId"`
	CinemaRoomID     string    `json:"cinemaRoomId"`
	MovieID          string    `json:"movieId"`
	Used             *bool     `json:"used"`
	CreatedAt        Timestamp `json:"createdAt"`
	UpdatedAt        Timestamp `json:"updatedAt"`
}

type SaleLineSnack struct {
	ID         string  `json:"id"`
	SaleID     string  `json:"saleId"`
	SnackID    string  `json:"snackId"`
	Quantity   int     `json:"quantity"`
	UnitPrice  float64 `json:"unitPrice"`
	TotalPrice float64 `json:"totalPrice"`
	Snack      *Snack  `json:"snack,omitempty"`
}

type SaleLineTicket struct {
	ID         string    `json:"id"`
	SaleID     string    `json:"saleId"`
	Quantity   int       `json:"quantity"`
	UnitPrice  float64   `json:"unitPrice"`
	TotalPrice float64   `json:"totalPrice"`
	Status     string    `json:"status"`
	CreatedAt  Timestamp `json:"createdAt"`
	UpdatedAt  Timestamp `json:"updatedAt"`
	TicketView *Ticket   `json:"ticketView,omitempty"`
}

type Sale struct {
	ID               string           `json:"id"`
	ClientID         string           `json:"clientId"`
	CinemaID         string           `json:"cinemaId"`
	TotalAmount      float64          `json:"totalAmount"`
	ClaimedAmount    float64          `json:"claimedAmount"`
	DiscountedAmount float64          `json:"discountedAmount"`
	Status           SaleStatus       `json:"status"`
	CreatedAt        Timestamp        `json:"createdAt"`
	UpdatedAt        Timestamp        `json:"updatedAt"`
	PaidAt           Timestamp        `json:"paidAt"`
	SaleLineSnacks   []SaleLineSnack  `json:"saleLineSnacks"`
	SaleLineTickets  []SaleLineTicket `json:"saleLineTickets"`
}

type CreateSaleLineSnack struct {
	SnackID  string `json:"snackId"`
	Quantity int    `json:"quantity"`
}

type CreateSaleLineTicket struct {
	CinemaFunctionID string `json:"cinemaFunctionId"`
}

type CreateSalePayload struct {
	ClientID string                 `json:"clientId"`
	CinemaID string                 `json:"cinemaId"`
	Snacks   []CreateSaleLineSnack  `json:"snacks"`
	Tickets  []CreateSaleLineTicket `json:"tickets"`
}
