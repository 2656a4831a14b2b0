package wishlist

import (
	"context"
	"time"

	"uniboks/internal/core/apperror"
	"uniboks/internal/core/id"
	"uniboks/internal/core/tx"
	"uniboks/internal/domain/analytics"
	"uniboks/internal/domain/book"
)

// Service provides wishlist business logic.
type Service struct {
	repo      Repository
	books     book.Repository
	txManager tx.Manager
	events    analytics.Recorder
}

// NewService creates a wishlist service.
func NewService(repo Repository, books book.Repository, txManager tx.Manager, events analytics.Recorder) *Service {
	return &Service{repo: repo, books: books, txManager: txManager, events: events}
}

// Add puts a book on the user's wishlist. Adding a book that is already
// there is a conflict, matching the storefront's duplicate handling.
func (s *Service) Add(ctx context.Context, userID, bookID id.ID) error {
	if _, err := s.books.GetByID(ctx, bookID); err != nil {
		return err
	}

	exists, err := s.repo.Exists(ctx, userID, bookID)
	if err != nil {
		return err
	}
	if exists {
		return apperror.NewConflict("book already on wishlist").
			WithDetail("bookId", bookID.String())
	}

	item := &Item{UserID: userID, BookID: bookID, CreatedAt: time.Now().UTC()}
	err = s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		return s.repo.Add(ctx, item)
	})
	if err != nil {
		return err
	}

	analytics.RecordQuiet(ctx, s.events, userID.String(), analytics.EventWishlistAdd,
		map[string]any{"bookId": bookID.String()})
	return nil
}

// Remove deletes a wishlist entry and returns the remaining books.
func (s *Service) Remove(ctx context.Context, userID, bookID id.ID) ([]*book.Book, error) {
	err := s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		return s.repo.Remove(ctx, userID, bookID)
	})
	if err != nil {
		return nil, err
	}
	return s.repo.ListBooks(ctx, userID)
}

// List returns the user's wishlisted books.
func (s *Service) List(ctx context.Context, userID id.ID) ([]*book.Book, error) {
	return s.repo.ListBooks(ctx, userID)
}
