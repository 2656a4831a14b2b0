// Package invoice renders purchase invoices as printable PDF documents.
package invoice

import (
	"time"

	"uniboks/internal/core/apperror"
	"uniboks/internal/core/types"
)

// LineItem is one purchased catalog entry on the invoice. TotalPrice is
// supplied by the caller and passed through as-is; the renderer sums it
// for the subtotal but never recomputes it from Quantity * UnitPrice.
type LineItem struct {
	Code       string      `json:"code"`
	Quantity   int         `json:"quantity"`
	UnitPrice  types.Money `json:"unit_price"`
	TotalPrice types.Money `json:"total_price"`
}

// PaymentMethod describes how the purchase was paid. Fee is a flat
// service charge added to the itemized subtotal.
type PaymentMethod struct {
	Type          string      `json:"type"`
	AccountName   string      `json:"account_name"`
	AccountNumber string      `json:"account_number"`
	PaidAt        string      `json:"paid_at"`
	Fee           types.Money `json:"fee"`
}

// Invoice is the full input to the renderer. It is ephemeral: built per
// request, rendered, streamed back, never stored.
type Invoice struct {
	Number       string        `json:"number"`
	Date         time.Time     `json:"date"`
	CustomerName string        `json:"customer_name"`
	Address      string        `json:"address"`
	Items        []LineItem    `json:"items"`
	Method       PaymentMethod `json:"method"`
}

// Validate fails fast on malformed input so the renderer never produces
// a partially-built document.
func (inv *Invoice) Validate() error {
	if inv.Number == "" {
		return apperror.NewRender("invoice number is required")
	}
	if inv.CustomerName == "" {
		return apperror.NewRender("customer name is required")
	}
	if len(inv.Items) == 0 {
		return apperror.NewRender("invoice must have at least one line item")
	}
	for i, item := range inv.Items {
		if item.Code == "" {
			return apperror.NewRender("line item code is required").
				WithDetail("index", i)
		}
		if item.Quantity <= 0 {
			return apperror.NewRender("line item quantity must be positive").
				WithDetail("code", item.Code)
		}
		if item.UnitPrice.IsNegative() || item.TotalPrice.IsNegative() {
			return apperror.NewRender("line item prices must be non-negative").
				WithDetail("code", item.Code)
		}
	}
	if inv.Method.Type == "" {
		return apperror.NewRender("payment method type is required")
	}
	if inv.Method.AccountName == "" || inv.Method.AccountNumber == "" {
		return apperror.NewRender("payment account name and number are required")
	}
	if inv.Method.Fee.IsNegative() {
		return apperror.NewRender("payment fee must be non-negative")
	}
	return nil
}

// Subtotal sums the supplied line item totals.
func (inv *Invoice) Subtotal() types.Money {
	sum := types.Zero()
	for _, item := range inv.Items {
		sum = sum.Add(item.TotalPrice)
	}
	return sum
}

// Total is subtotal plus the payment fee.
func (inv *Invoice) Total() types.Money {
	return inv.Subtotal().Add(inv.Method.Fee)
}
