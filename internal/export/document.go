package export

import (
	"fmt"
	"math"
	"strings"
	"time"

	"backoffice/internal/models"

	"github.com/spf13/cast"
)

type Align int

const (
	AlignLeft Align = iota
	AlignRight
)

type Cell struct {
	Text  string
	Bold  bool
	Align Align
}

// Table widths are relative weights; a zero weight sizes the column to its
// widest cell.
type Table struct {
	Widths []float64
	Header []Cell
	Rows   [][]Cell
}

type Party struct {
	Name    string
	Address string
}

type Total struct {
	Label string
	Value string
	Bold  bool
}

// Document is a renderer-independent description of a printable page.
type Document struct {
	Kind     string
	FileName string
	Title    string
	Vendor   *Party
	Meta     []string
	Table    Table
	Totals   []Total
	Footer   string
}

var now = time.Now

var itemHeader = []Cell{
	{Text: "Descripción", Bold: true},
	{Text: "Cantidad", Bold: true, Align: AlignRight},
	{Text: "P. Unitario", Bold: true, Align: AlignRight},
	{Text: "Importe", Bold: true, Align: AlignRight},
}

// OrderInvoice lists each dish of the order and a discount row when the
// backend total is below the subtotal.
func OrderInvoice(order *models.Order, restaurant *models.Restaurant) Document {
	if order == nil {
		order = &models.Order{}
	}
	if restaurant == nil {
		restaurant = order.Restaurant
	}

	rows := make([][]Cell, 0, len(order.Items)+1)
	computed := 0.0
	for _, it := range order.Items {
		q, p := finiteOrZero(it.Quantity), finiteOrZero(it.Price)
		line := q * p
		computed += line
		rows = append(rows, []Cell{
			{Text: firstNonEmpty(it.Name, it.DishID, "Ítem")},
			{Text: cast.ToString(q), Align: AlignRight},
			{Text: FormatGTQ(p), Align: AlignRight},
			{Text: FormatGTQ(line), Align: AlignRight},
		})
	}

	subtotal := valueOr(order.Subtotal, computed)
	total := valueOr(order.Total, subtotal)
	discount := math.Max(0, subtotal-total)
	if discount > 0 {
		rows = append(rows, discountRow(order.PromotionApplied, discount))
	}

	return Document{
		Kind:     "order_invoice",
		FileName: fmt.Sprintf("factura_orden_%s.pdf", SanitizeID(order.ID, "orden")),
		Title:    "Factura de Orden",
		Vendor:   vendor(restaurantName(restaurant, "Restaurante"), restaurantAddress(restaurant)),
		Meta: []string{
			"Fecha: " + FormatDate(now()),
			"Orden: " + orPlaceholder(order.ID),
			"Cliente: " + orPlaceholder(order.ClientCUI),
		},
		Table:  Table{Widths: []float64{1, 0, 0, 0}, Header: itemHeader, Rows: rows},
		Totals: totals(subtotal, discount, total),
	}
}

// ReservationInvoice bills the stay as nights times the nightly price.
func ReservationInvoice(res *models.Reservation, hotel *models.Hotel, room *models.Room) Document {
	if res == nil {
		res = &models.Reservation{}
	}
	hotel, room = stayParties(res, hotel, room)

	nights := Nights(res.StartDate, res.EndDate)
	unit := 0.0
	if room != nil {
		unit = finiteOrZero(room.PricePerNight)
	}
	lineTotal := float64(nights) * unit
	discount := math.Max(0, valueOr(res.Subtotal, 0)-valueOr(res.TotalCost, 0))

	rows := [][]Cell{{
		{Text: "Alojamiento - " + firstNonEmpty(room.Label(), res.RoomID, "Habitación")},
		{Text: cast.ToString(nights), Align: AlignRight},
		{Text: FormatGTQ(unit), Align: AlignRight},
		{Text: FormatGTQ(lineTotal), Align: AlignRight},
	}}
	if discount > 0 {
		rows = append(rows, discountRow(res.PromotionApplied, discount))
	}

	subtotal := valueOr(res.Subtotal, lineTotal)
	total := valueOr(res.TotalCost, math.Max(0, subtotal-discount))

	name, address := "Hotel", ""
	if hotel != nil {
		name = firstNonEmpty(hotel.Name, name)
		address = hotel.Address
	}

	return Document{
		Kind:     "reservation_invoice",
		FileName: fmt.Sprintf("factura_reservacion_%s.pdf", SanitizeID(res.ID, "reserva")),
		Title:    "Factura de Pago",
		Vendor:   vendor(name, address),
		Meta: []string{
			"Fecha: " + FormatDate(now()),
			"Reserva: " + orPlaceholder(res.ID),
			"Cliente: " + orPlaceholder(res.ClientCUI),
		},
		Table:  Table{Widths: []float64{1, 0, 0, 0}, Header: itemHeader, Rows: rows},
		Totals: totals(subtotal, discount, total),
	}
}

// ReservationProof is the booking confirmation handed to the guest.
func ReservationProof(res *models.Reservation, hotel *models.Hotel, room *models.Room) Document {
	if res == nil {
		res = &models.Reservation{}
	}
	hotel, room = stayParties(res, hotel, room)

	hotelText := orPlaceholder(res.HotelID)
	if hotel != nil {
		hotelText = firstNonEmpty(hotel.Name, res.HotelID, models.Placeholder) + "\n" + hotel.Address
	}

	nights := Nights(res.StartDate, res.EndDate)
	suffix := "s"
	if nights == 1 {
		suffix = ""
	}
	dates := fmt.Sprintf("%s – %s (%d noche%s)", FormatDate(res.StartDate), FormatDate(res.EndDate), nights, suffix)

	var price any
	if room != nil {
		price = room.PricePerNight
	}

	rows := [][]Cell{
		keyValue("Hotel", hotelText, false),
		keyValue("Habitación", firstNonEmpty(room.Label(), res.RoomID, models.Placeholder), false),
		keyValue("Fechas", dates, false),
		keyValue("Precio/noche", FormatGTQ(price), false),
		keyValue("Subtotal", FormatGTQ(res.Subtotal), false),
		keyValue("Promoción", promotionText(res.PromotionApplied), false),
		keyValue("Total", FormatGTQ(res.TotalCost), true),
	}

	return Document{
		Kind:     "reservation_proof",
		FileName: fmt.Sprintf("comprobante_reservacion_%s.pdf", SanitizeID(res.ID, "reserva")),
		Title:    "Comprobante de Reservación",
		Meta: []string{
			"Reserva: " + orPlaceholder(res.ID),
			"Cliente: " + orPlaceholder(res.ClientCUI),
		},
		Table:  Table{Widths: []float64{0, 1}, Rows: rows},
		Footer: "Emitido: " + FormatDate(now()),
	}
}

func stayParties(res *models.Reservation, hotel *models.Hotel, room *models.Room) (*models.Hotel, *models.Room) {
	if hotel == nil {
		hotel = res.Hotel
	}
	if room == nil {
		room = res.Room
	}
	return hotel, room
}

func discountRow(promo *models.PromotionApplied, discount float64) []Cell {
	label := "Descuento"
	if promo != nil && promo.Name != "" {
		label += " - " + promo.Name
	}
	amount := "- " + FormatGTQ(discount)
	return []Cell{
		{Text: label},
		{Text: "1", Align: AlignRight},
		{Text: amount, Align: AlignRight},
		{Text: amount, Align: AlignRight},
	}
}

func totals(subtotal, discount, total float64) []Total {
	out := []Total{{Label: "Subtotal", Value: FormatGTQ(subtotal)}}
	if discount > 0 {
		out = append(out, Total{Label: "Descuento", Value: "- " + FormatGTQ(discount)})
	}
	return append(out, Total{Label: "Total", Value: FormatGTQ(total), Bold: true})
}

func promotionText(promo *models.PromotionApplied) string {
	if promo == nil {
		return models.Placeholder
	}
	parts := make([]string, 0, 3)
	if promo.Name != "" {
		parts = append(parts, promo.Name)
	}
	if promo.PercentOff != 0 {
		parts = append(parts, cast.ToString(promo.PercentOff)+"%")
	}
	if promo.AmountOff != 0 {
		parts = append(parts, "- "+FormatGTQ(promo.AmountOff))
	}
	if len(parts) == 0 {
		return models.Placeholder
	}
	return strings.Join(parts, " · ")
}

func keyValue(key, value string, bold bool) []Cell {
	return []Cell{{Text: key, Bold: true}, {Text: value, Bold: bold}}
}

func vendor(name, address string) *Party {
	return &Party{Name: name, Address: address}
}

func restaurantName(r *models.Restaurant, fallback string) string {
	if r == nil {
		return fallback
	}
	return firstNonEmpty(r.Name, fallback)
}

func restaurantAddress(r *models.Restaurant) string {
	if r == nil {
		return ""
	}
	return r.Address
}

func valueOr(p *float64, fallback float64) float64 {
	if p == nil {
		return fallback
	}
	return finiteOrZero(*p)
}

func finiteOrZero(f float64) float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func orPlaceholder(s string) string {
	return firstNonEmpty(s, models.Placeholder)
}
