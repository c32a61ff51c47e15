package models

type InvoiceItemType string

const (
	ItemGood    InvoiceItemType = "GOOD"
	ItemService InvoiceItemType = "SERVICE"
)

type InvoicePaymentMethod string

const (
	MethodCash   InvoicePaymentMethod = "CASH"
	MethodCard   InvoicePaymentMethod = "CARD"
	MethodOnline InvoicePaymentMethod = "ONLINE"
)

func (m InvoicePaymentMethod) Valid() bool {
	switch m {
	case MethodCash, MethodCard, MethodOnline:
		return true
	}
	return false
}

type InvoiceDetail struct {
	Entity
	ItemID    string  `json:"itemId"`
	ItemName  string  `json:"itemName"`
	ItemType  string  `json:"itemType"`
	Quantity  float64 `json:"quantity"`
	UnitPrice float64 `json:"unitPrice"`
	Total     float64 `json:"total"`
}

type Invoice struct {
	Entity
	PaymentMethod  InvoicePaymentMethod `json:"paymentMethod"`
	Subtotal       float64              `json:"subtotal"`
	Tax            float64              `json:"tax"`
	Total          float64              `json:"total"`
	ClientDocument string               `json:"clientDocument"`
	Details        []InvoiceDetail      `json:"details"`
}

type CreateInvoiceDetail struct {
	ItemID    string          `json:"itemId"`
	ItemName  string          `json:"itemName"`
	ItemType  InvoiceItemType `json:"itemType"`
	Quantity  float64         `json:"quantity"`
	UnitPrice float64         `json:"unitPrice"`
}

type CreateInvoice struct {
	PaymentMethod  InvoicePaymentMethod  `json:"paymentMethod"`
	ClientDocument string                `json:"clientDocument"`
	Details        []CreateInvoiceDetail `json:"details"`
}

// InvoiceForm is the loosely typed shape the invoice form produces.
type InvoiceForm struct {
	PaymentMethod  string          `json:"paymentMethod"`
	ClientDocument string          `json:"clientDocument"`
	Details        []InvoiceDetail `json:"details"`
}

// InvoiceFilter narrows /v1/invoices/all.
type InvoiceFilter struct {
	PaymentMethod  *string `mapstructure:"paymentMethod"`
	ClientDocument *string `mapstructure:"clientDocument"`
}

type ItemTypeOption struct {
	ItemType string `json:"itemType"`
	Name     string `json:"name"`
}

type PaymentMethodOption struct {
	PaymentMethod *string `json:"paymentMethod"`
	Name          string  `json:"name"`
}
