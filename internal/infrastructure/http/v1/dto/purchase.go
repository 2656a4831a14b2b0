package dto

import (
	"uniboks/internal/core/types"
	"uniboks/internal/domain/invoice"
	"uniboks/internal/domain/purchase"
)

// LineItemRequest is one purchased entry in a checkout submission.
// TotalPrice is supplied by the client and passed through to the
// invoice unchanged.
type LineItemRequest struct {
	Code       string      `json:"code" binding:"required"`
	Quantity   int         `json:"quantity" binding:"required,min=1"`
	UnitPrice  types.Money `json:"unitPrice"`
	TotalPrice types.Money `json:"totalPrice"`
}

// PaymentMethodRequest describes how the purchase was paid.
type PaymentMethodRequest struct {
	Type          string      `json:"type" binding:"required"`
	AccountName   string      `json:"accountName" binding:"required"`
	AccountNumber string      `json:"accountNumber" binding:"required"`
	PaidAt        string      `json:"paidAt"`
	Fee           types.Money `json:"fee"`
}

// CheckoutRequest is the purchase submission payload.
type CheckoutRequest struct {
	Items  []LineItemRequest    `json:"items" binding:"required,min=1,dive"`
	Method PaymentMethodRequest `json:"method" binding:"required"`
}

// ToDomain converts the request for the given user.
func (r *CheckoutRequest) ToDomain(userID string) (purchase.CheckoutRequest, error) {
	items := make([]invoice.LineItem, 0, len(r.Items))
	for _, it := range r.Items {
		items = append(items, invoice.LineItem{
			Code:       it.Code,
			Quantity:   it.Quantity,
			UnitPrice:  it.UnitPrice,
			TotalPrice: it.TotalPrice,
		})
	}

	uid, err := parseID(userID)
	if err != nil {
		return purchase.CheckoutRequest{}, err
	}

	return purchase.CheckoutRequest{
		UserID: uid,
		Items:  items,
		Method: invoice.PaymentMethod{
			Type:          r.Method.Type,
			AccountName:   r.Method.AccountName,
			AccountNumber: r.Method.AccountNumber,
			PaidAt:        r.Method.PaidAt,
			Fee:           r.Method.Fee,
		},
	}, nil
}

// PurchaseResponse is one recorded purchase line.
type PurchaseResponse struct {
	ID            string `json:"id"`
	InvoiceNumber string `json:"invoiceNumber"`
	BookCode      string `json:"bookCode"`
	Quantity      int    `json:"quantity"`
	UnitPrice     string `json:"unitPrice"`
	TotalPrice    string `json:"totalPrice"`
	PaymentMethod string `json:"paymentMethod"`
	DatePurchased string `json:"datePurchased"`
}

// FromPurchase maps a domain purchase row.
func FromPurchase(p *purchase.Purchase) PurchaseResponse {
	return PurchaseResponse{
		ID:            p.ID.String(),
		InvoiceNumber: p.InvoiceNumber,
		BookCode:      p.BookCode,
		Quantity:      p.Quantity,
		UnitPrice:     p.UnitPrice.StringFixed(2),
		TotalPrice:    p.TotalPrice.StringFixed(2),
		PaymentMethod: p.PaymentMethod,
		DatePurchased: p.DatePurchased.Format("2006-01-02T15:04:05Z07:00"),
	}
}

// FromPurchases maps a slice of purchase rows.
func FromPurchases(purchases []*purchase.Purchase) []PurchaseResponse {
	out := make([]PurchaseResponse, 0, len(purchases))
	for _, p := range purchases {
		out = append(out, FromPurchase(p))
	}
	return out
}

// SummaryResponse aggregates a user's purchase history.
type SummaryResponse struct {
	TotalSum   float64 `json:"totalSum"`
	TotalBooks int     `json:"totalBooks"`
}

// FromSummary maps the domain summary. TotalSum is a float to match
// the storefront client's expectations.
func FromSummary(s *purchase.Summary) SummaryResponse {
	f, _ := s.TotalSum.Float64()
	return SummaryResponse{TotalSum: f, TotalBooks: s.TotalBooks}
}
