package book

import (
	"context"

	"uniboks/internal/core/id"
	"uniboks/internal/core/tx"
	"uniboks/internal/core/types"
	"uniboks/internal/domain/user"
)

// Storefront section parameters. Shelf sizes mirror what the web
// client renders.
var (
	recentLimit     = 10
	arrivalsLimit   = 3
	topRatedLimit   = 10
	popularLimit    = 3
	onSaleCap       = types.MustMoney("2000")
	scienceDepts    = []string{"Physics and Astronomy", "Pure and Industrial Chemistry", "Micro Biology"}
	featuredDept    = "geology"
	artsDept        = "art"
	engineeringDept = "Engineering"
	itDept          = "it"
)

// Service assembles catalog views.
type Service struct {
	repo      Repository
	users     user.Repository
	txManager tx.ReadOnlyManager
}

// NewService creates a catalog service.
func NewService(repo Repository, users user.Repository, txManager tx.ReadOnlyManager) *Service {
	return &Service{repo: repo, users: users, txManager: txManager}
}

// Get returns one book by ID.
func (s *Service) Get(ctx context.Context, bookID id.ID) (*Book, error) {
	return s.repo.GetByID(ctx, bookID)
}

// GetByCode returns one book by catalog code.
func (s *Service) GetByCode(ctx context.Context, code string) (*Book, error) {
	return s.repo.GetByCode(ctx, code)
}

// HomeListing returns the post-login view: books from the user's own
// department plus the most recent additions. Users without a department
// get an empty department shelf, not an error.
func (s *Service) HomeListing(ctx context.Context, userID id.ID) (*HomeListing, error) {
	listing := &HomeListing{}
	err := s.txManager.ReadOnly(ctx, func(ctx context.Context) error {
		u, err := s.users.GetByID(ctx, userID)
		if err != nil {
			return err
		}

		if u.Department != nil && *u.Department != "" {
			listing.AllBooks, err = s.repo.ListByDepartments(ctx, []string{*u.Department})
			if err != nil {
				return err
			}
		}

		listing.RecentChoices, err = s.repo.List(ctx, SortNewest, recentLimit)
		return err
	})
	if err != nil {
		return nil, err
	}
	return listing, nil
}

// Storefront returns the landing-page shelves. All shelf queries run in
// one read-only transaction so the page is a single catalog snapshot.
func (s *Service) Storefront(ctx context.Context) (*Sections, error) {
	sections := &Sections{}

	err := s.txManager.ReadOnly(ctx, func(ctx context.Context) error {
		var err error
		load := func(dst *[]*Book, fetch func() ([]*Book, error)) {
			if err != nil {
				return
			}
			*dst, err = fetch()
		}

		load(&sections.AllBooks, func() ([]*Book, error) { return s.repo.List(ctx, SortNewest, 0) })
		load(&sections.RecentChoices, func() ([]*Book, error) { return s.repo.List(ctx, SortNewest, recentLimit) })
		load(&sections.NewArrivals, func() ([]*Book, error) { return s.repo.List(ctx, SortNewest, arrivalsLimit) })
		load(&sections.TopRatedBooks, func() ([]*Book, error) { return s.repo.List(ctx, SortTopRated, topRatedLimit) })
		load(&sections.OnSaleBooks, func() ([]*Book, error) { return s.repo.ListCheaperThan(ctx, onSaleCap) })
		load(&sections.ArtsBooks, func() ([]*Book, error) { return s.repo.ListByDepartments(ctx, []string{artsDept}) })
		load(&sections.EngineeringBooks, func() ([]*Book, error) { return s.repo.ListByDepartments(ctx, []string{engineeringDept}) })
		load(&sections.ITBooks, func() ([]*Book, error) { return s.repo.ListByDepartments(ctx, []string{itDept}) })
		load(&sections.FeaturedBooks, func() ([]*Book, error) { return s.repo.ListByDepartments(ctx, []string{featuredDept}) })
		load(&sections.ScienceBooks, func() ([]*Book, error) { return s.repo.ListByDepartments(ctx, scienceDepts) })
		load(&sections.PopularBooks, func() ([]*Book, error) { return s.repo.List(ctx, SortMostViews, popularLimit) })
		return err
	})
	if err != nil {
		return nil, err
	}

	return sections, nil
}
