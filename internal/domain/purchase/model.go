// Package purchase records completed checkouts and drives the invoice
// pipeline: allocate a number, render the document, persist the rows.
package purchase

import (
	"time"

	"uniboks/internal/core/id"
	"uniboks/internal/core/types"
	"uniboks/internal/domain/invoice"
)

// Purchase is one persisted line of a checkout. A checkout with N line
// items produces N rows sharing one invoice number.
type Purchase struct {
	ID            id.ID       `db:"id" json:"id"`
	UserID        id.ID       `db:"user_id" json:"userId"`
	InvoiceNumber string      `db:"invoice_number" json:"invoiceNumber"`
	BookCode      string      `db:"book_code" json:"bookCode"`
	Quantity      int         `db:"quantity" json:"quantity"`
	UnitPrice     types.Money `db:"unit_price" json:"unitPrice"`
	TotalPrice    types.Money `db:"total_price" json:"totalPrice"`
	PaymentMethod string      `db:"payment_method" json:"paymentMethod"`
	DatePurchased time.Time   `db:"date_purchased" json:"datePurchased"`
}

// CheckoutRequest is the input to a purchase submission.
type CheckoutRequest struct {
	UserID id.ID
	Items  []invoice.LineItem
	Method invoice.PaymentMethod
}

// CheckoutResult carries the allocated number and the rendered document.
type CheckoutResult struct {
	InvoiceNumber string
	Document      []byte
}

// Filename is the download name for the rendered invoice.
func (r *CheckoutResult) Filename() string {
	return r.InvoiceNumber + ".pdf"
}

// Summary aggregates a user's purchase history.
type Summary struct {
	TotalSum   types.Money `json:"totalSum"`
	TotalBooks int         `json:"totalBooks"`
}
