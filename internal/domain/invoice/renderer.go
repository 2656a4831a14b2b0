package invoice

import (
	"bytes"
	"fmt"
	"strconv"

	"uniboks/internal/core/apperror"
	"uniboks/internal/core/types"
	"uniboks/pkg/pdfdoc"
)

// Config holds storefront branding for rendered invoices.
type Config struct {
	StoreName      string
	CurrencySymbol string
	FeeLabel       string
	LogoPath       string // optional, omitted when empty
}

// DefaultConfig returns the Uniboks storefront branding.
func DefaultConfig() Config {
	return Config{
		StoreName:      "UNIBOOKS",
		CurrencySymbol: "N",
		FeeLabel:       "Our Fees",
	}
}

// Renderer converts an Invoice into a PDF byte stream. It is a pure
// function of its inputs plus the optional logo asset: no database
// access, safe for concurrent use.
type Renderer struct {
	cfg Config
}

// NewRenderer creates a renderer with the given branding.
func NewRenderer(cfg Config) *Renderer {
	if cfg.StoreName == "" {
		cfg = DefaultConfig()
	}
	return &Renderer{cfg: cfg}
}

// Render validates the invoice and produces the finished PDF.
// Malformed input returns a render error before any layout happens.
func (r *Renderer) Render(inv *Invoice) ([]byte, error) {
	if err := inv.Validate(); err != nil {
		return nil, err
	}

	doc := pdfdoc.New()

	if r.cfg.LogoPath != "" {
		doc.Image(r.cfg.LogoPath, 30, pdfdoc.AlignCenter).Spacer(4)
	}

	doc.
		Text(r.cfg.StoreName, pdfdoc.TextStyle{Size: 22, Bold: true, Align: pdfdoc.AlignCenter}).
		Spacer(6).
		Text("Invoice #: "+inv.Number, pdfdoc.TextStyle{Size: 11}).
		Text("Date: "+inv.Date.Format("2006-01-02"), pdfdoc.TextStyle{Size: 11}).
		Spacer(4).
		Text("Invoice to: "+inv.CustomerName, pdfdoc.TextStyle{Size: 11, Bold: true}).
		Text(inv.Address, pdfdoc.TextStyle{Size: 11}).
		Spacer(6).
		Table(r.itemColumns(), r.itemRows(inv)).
		Spacer(8).
		Text("Payment Method: "+inv.Method.Type, pdfdoc.TextStyle{Size: 11}).
		Text("Account Name: "+inv.Method.AccountName, pdfdoc.TextStyle{Size: 11}).
		Text("Account No.: "+inv.Method.AccountNumber, pdfdoc.TextStyle{Size: 11}).
		Text("Checked Out On: "+inv.Method.PaidAt, pdfdoc.TextStyle{Size: 11}).
		Spacer(12).
		Text("Authorized Signed", pdfdoc.TextStyle{Size: 11, Align: pdfdoc.AlignRight}).
		Spacer(8).
		Text("Thank you for choosing Unibooks!", pdfdoc.TextStyle{Size: 10, Align: pdfdoc.AlignCenter})

	var buf bytes.Buffer
	if err := doc.Render(&buf); err != nil {
		return nil, apperror.NewRender(fmt.Sprintf("document layout failed: %v", err)).WithCause(err)
	}
	return buf.Bytes(), nil
}

func (r *Renderer) itemColumns() []pdfdoc.Column {
	return []pdfdoc.Column{
		{Header: "Book Code", Width: 0.34, Align: pdfdoc.AlignLeft},
		{Header: "Quantity", Width: 0.16, Align: pdfdoc.AlignCenter},
		{Header: "Unit Price", Width: 0.25, Align: pdfdoc.AlignRight},
		{Header: "Total", Width: 0.25, Align: pdfdoc.AlignRight},
	}
}

func (r *Renderer) itemRows(inv *Invoice) []pdfdoc.Row {
	rows := make([]pdfdoc.Row, 0, len(inv.Items)+3)
	for _, item := range inv.Items {
		rows = append(rows, pdfdoc.Row{Cells: []string{
			item.Code,
			strconv.Itoa(item.Quantity),
			r.amount(item.UnitPrice),
			r.amount(item.TotalPrice),
		}})
	}
	rows = append(rows,
		pdfdoc.Row{Cells: []string{"", "", "Subtotal", r.amount(inv.Subtotal())}, Summary: true},
		pdfdoc.Row{Cells: []string{"", "", r.cfg.FeeLabel, r.amount(inv.Method.Fee)}, Summary: true},
		pdfdoc.Row{Cells: []string{"", "", "Total", r.amount(inv.Total())}, Summary: true},
	)
	return rows
}

func (r *Renderer) amount(m types.Money) string {
	return types.FormatAmount(r.cfg.CurrencySymbol, m)
}
