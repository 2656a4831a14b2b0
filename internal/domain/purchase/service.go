package purchase

import (
	"context"
	"time"

	"uniboks/internal/core/apperror"
	"uniboks/internal/core/id"
	"uniboks/internal/core/numerator"
	"uniboks/internal/core/tx"
	"uniboks/internal/domain/analytics"
	"uniboks/internal/domain/book"
	"uniboks/internal/domain/invoice"
	"uniboks/internal/domain/user"
	"uniboks/pkg/logger"
)

// invoicePrefix is the numbering series for checkout invoices.
const invoicePrefix = "INV"

// Service drives the checkout pipeline.
type Service struct {
	repo      Repository
	users     user.Repository
	books     book.Repository
	numbers   numerator.Generator
	renderer  *invoice.Renderer
	txManager tx.Manager
	events    analytics.Recorder
}

// NewService creates a purchase service.
func NewService(
	repo Repository,
	users user.Repository,
	books book.Repository,
	numbers numerator.Generator,
	renderer *invoice.Renderer,
	txManager tx.Manager,
	events analytics.Recorder,
) *Service {
	return &Service{
		repo:      repo,
		users:     users,
		books:     books,
		numbers:   numbers,
		renderer:  renderer,
		txManager: txManager,
		events:    events,
	}
}

// Checkout runs the full purchase pipeline:
//
//	validate items -> allocate invoice number -> render document -> persist rows
//
// An allocation failure aborts before anything is rendered or stored.
// A render failure aborts before anything is stored, so a failed request
// never leaves partial purchase rows behind.
func (s *Service) Checkout(ctx context.Context, req CheckoutRequest) (*CheckoutResult, error) {
	u, err := s.users.GetByID(ctx, req.UserID)
	if err != nil {
		return nil, err
	}

	if len(req.Items) == 0 {
		return nil, apperror.NewRender("checkout requires at least one line item")
	}
	for _, item := range req.Items {
		if _, err := s.books.GetByCode(ctx, item.Code); err != nil {
			return nil, err
		}
	}

	now := time.Now().UTC()

	number, err := s.numbers.NextNumber(ctx, numerator.DefaultConfig(invoicePrefix), now)
	if err != nil {
		return nil, apperror.NewAllocation(err)
	}

	inv := &invoice.Invoice{
		Number:       number,
		Date:         now,
		CustomerName: u.Username,
		Address:      u.FullAddress(),
		Items:        req.Items,
		Method:       req.Method,
	}

	document, err := s.renderer.Render(inv)
	if err != nil {
		return nil, err
	}

	purchases := make([]*Purchase, 0, len(req.Items))
	for _, item := range req.Items {
		purchases = append(purchases, &Purchase{
			ID:            id.New(),
			UserID:        req.UserID,
			InvoiceNumber: number,
			BookCode:      item.Code,
			Quantity:      item.Quantity,
			UnitPrice:     item.UnitPrice,
			TotalPrice:    item.TotalPrice,
			PaymentMethod: req.Method.Type,
			DatePurchased: now,
		})
	}

	err = s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		return s.repo.CreateBatch(ctx, purchases)
	})
	if err != nil {
		return nil, err
	}

	logger.Info(ctx, "checkout completed",
		"user_id", req.UserID,
		"invoice_number", number,
		"items", len(purchases),
		"total", inv.Total().StringFixed(2),
	)
	analytics.RecordQuiet(ctx, s.events, req.UserID.String(), analytics.EventPurchase, map[string]any{
		"invoiceNumber": number,
		"items":         len(purchases),
		"total":         inv.Total().StringFixed(2),
	})

	return &CheckoutResult{InvoiceNumber: number, Document: document}, nil
}

// ListByUser returns a user's purchase history.
func (s *Service) ListByUser(ctx context.Context, userID id.ID) ([]*Purchase, error) {
	return s.repo.ListByUser(ctx, userID)
}

// SummaryByUser returns total spend and book count for a user.
func (s *Service) SummaryByUser(ctx context.Context, userID id.ID) (*Summary, error) {
	return s.repo.SummaryByUser(ctx, userID)
}
