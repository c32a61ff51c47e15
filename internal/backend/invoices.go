package backend

import (
	"context"
	"net/http"

	"backoffice/internal/apiclient"
	"backoffice/internal/models"
)

const invoicesURI = "/v1/invoices"

type Invoices struct {
	c *apiclient.Client
}

// Create issues an invoice under the warehouse of the calling user.
func (i *Invoices) Create(ctx context.Context, payload models.CreateInvoice) (*models.Invoice, error) {
	return one[models.Invoice](ctx, i.c, http.MethodPost, invoicesURI, nil, payload)
}

func (i *Invoices) CreateForWarehouse(ctx context.Context, payload models.CreateInvoice, warehouseID string) (*models.Invoice, error) {
	return one[models.Invoice](ctx, i.c, http.MethodPost, invoicesURI+"/warehouse/"+seg(warehouseID), nil, payload)
}

func (i *Invoices) Get(ctx context.Context, invoiceID string) (*models.Invoice, error) {
	return one[models.Invoice](ctx, i.c, http.MethodGet, invoicesURI+"/"+seg(invoiceID), nil, nil)
}

func (i *Invoices) ByClientDocument(ctx context.Context, clientDocument string) ([]models.Invoice, error) {
	return list[models.Invoice](ctx, i.c, invoicesURI+"/client/"+seg(clientDocument), nil)
}

// All lists invoices. Nil filter fields are left out of the query string.
func (i *Invoices) All(ctx context.Context, filter models.InvoiceFilter) ([]models.Invoice, error) {
	return list[models.Invoice](ctx, i.c, invoicesURI+"/all"+apiclient.GenParams(filter), nil)
}

func (i *Invoices) ItemTypes(ctx context.Context) ([]models.ItemTypeOption, error) {
	return list[models.ItemTypeOption](ctx, i.c, invoicesURI+"/item-types", nil)
}

func (i *Invoices) PaymentMethods(ctx context.Context) ([]models.PaymentMethodOption, error) {
	return list[models.PaymentMethodOption](ctx, i.c, invoicesURI+"/payment-methods", nil)
}

// ToCreateInvoice converts the loosely typed form into the create request,
// keeping only the fields the backend accepts for each detail.
func ToCreateInvoice(form models.InvoiceForm) models.CreateInvoice {
	details := make([]models.CreateInvoiceDetail, 0, len(form.Details))
	for _, d := range form.Details {
		details = append(details, models.CreateInvoiceDetail{
			ItemID:    d.ItemID,
			ItemName:  d.ItemName,
			ItemType:  models.InvoiceItemType(d.ItemType),
			Quantity:  d.Quantity,
			UnitPrice: d.UnitPrice,
		})
	}
	return models.CreateInvoice{
		PaymentMethod:  models.InvoicePaymentMethod(form.PaymentMethod),
		ClientDocument: form.ClientDocument,
		Details:        details,
	}
}
