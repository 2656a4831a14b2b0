package book

import (
	"context"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"uniboks/internal/core/apperror"
	"uniboks/internal/core/id"
	"uniboks/internal/core/types"
	"uniboks/internal/domain/user"
)

type fakeRepo struct {
	books []*Book
}

func (r *fakeRepo) Create(_ context.Context, b *Book) error {
	r.books = append(r.books, b)
	return nil
}

func (r *fakeRepo) GetByID(_ context.Context, bookID id.ID) (*Book, error) {
	for _, b := range r.books {
		if b.ID == bookID {
			return b, nil
		}
	}
	return nil, apperror.NewNotFound("book", bookID.String())
}

func (r *fakeRepo) GetByCode(_ context.Context, code string) (*Book, error) {
	for _, b := range r.books {
		if b.Code == code {
			return b, nil
		}
	}
	return nil, apperror.NewNotFound("book", code)
}

func (r *fakeRepo) List(_ context.Context, order SortOrder, limit int) ([]*Book, error) {
	out := append([]*Book{}, r.books...)
	switch order {
	case SortTopRated:
		sort.Slice(out, func(i, j int) bool { return out[i].Rating > out[j].Rating })
	case SortMostViews:
		sort.Slice(out, func(i, j int) bool { return out[i].Views > out[j].Views })
	default:
		sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	}
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *fakeRepo) ListByDepartments(_ context.Context, departments []string) ([]*Book, error) {
	var out []*Book
	for _, b := range r.books {
		for _, dept := range departments {
			if b.Department == dept {
				out = append(out, b)
			}
		}
	}
	return out, nil
}

func (r *fakeRepo) ListCheaperThan(_ context.Context, cap types.Money) ([]*Book, error) {
	var out []*Book
	for _, b := range r.books {
		if b.Price.LessThan(cap) {
			out = append(out, b)
		}
	}
	return out, nil
}

type fakeUserRepo struct {
	users map[id.ID]*user.User
}

func (r *fakeUserRepo) Create(_ context.Context, u *user.User) error { r.users[u.ID] = u; return nil }
func (r *fakeUserRepo) Update(_ context.Context, u *user.User) error { r.users[u.ID] = u; return nil }
func (r *fakeUserRepo) GetByID(_ context.Context, userID id.ID) (*user.User, error) {
	if u, ok := r.users[userID]; ok {
		return u, nil
	}
	return nil, apperror.NewNotFound("user", userID.String())
}
func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*user.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, apperror.NewNotFound("user", email)
}

func catalogBook(code, dept, price string) *Book {
	return &Book{
		ID:         id.New(),
		Code:       code,
		Title:      code + " Textbook",
		Department: dept,
		Price:      types.MustMoney(price),
	}
}

// fakeTxManager counts read-only transactions.
type fakeTxManager struct {
	readOnlyCalls int
}

func (m *fakeTxManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func (m *fakeTxManager) ReadOnly(ctx context.Context, fn func(ctx context.Context) error) error {
	m.readOnlyCalls++
	return fn(ctx)
}

func newFixture() (*Service, *fakeTxManager, *fakeUserRepo) {
	repo := &fakeRepo{books: []*Book{
		catalogBook("STA211", "Statistics", "200.00"),
		catalogBook("ENG301", "Engineering", "1800.00"),
		catalogBook("GLY202", "geology", "2400.00"),
		catalogBook("ART105", "art", "950.00"),
		catalogBook("COS201", "it", "250.00"),
		catalogBook("PHY101", "Physics and Astronomy", "1200.00"),
	}}
	users := &fakeUserRepo{users: map[id.ID]*user.User{}}
	txm := &fakeTxManager{}
	return NewService(repo, users, txm), txm, users
}

func TestHomeListing_ScopedToUserDepartment(t *testing.T) {
	svc, txm, users := newFixture()

	dept := "Statistics"
	u := user.NewUser("ada@unn.edu.ng", "Ada Obi")
	u.Department = &dept
	users.users[u.ID] = u

	listing, err := svc.HomeListing(context.Background(), u.ID)
	require.NoError(t, err)

	require.Len(t, listing.AllBooks, 1)
	assert.Equal(t, "STA211", listing.AllBooks[0].Code)
	assert.Len(t, listing.RecentChoices, 6)
	assert.Equal(t, 1, txm.readOnlyCalls)
}

func TestHomeListing_NoDepartmentYieldsEmptyShelf(t *testing.T) {
	svc, _, users := newFixture()

	u := user.NewUser("ada@unn.edu.ng", "Ada Obi")
	users.users[u.ID] = u

	listing, err := svc.HomeListing(context.Background(), u.ID)
	require.NoError(t, err)

	assert.Empty(t, listing.AllBooks)
	assert.NotEmpty(t, listing.RecentChoices)
}

func TestHomeListing_UnknownUser(t *testing.T) {
	svc, _, _ := newFixture()

	_, err := svc.HomeListing(context.Background(), id.New())
	require.Error(t, err)
	assert.True(t, apperror.IsNotFound(err))
}

func TestStorefront_Shelves(t *testing.T) {
	svc, txm, _ := newFixture()

	sections, err := svc.Storefront(context.Background())
	require.NoError(t, err)

	// All shelves load inside a single read-only transaction.
	assert.Equal(t, 1, txm.readOnlyCalls)

	assert.Len(t, sections.AllBooks, 6)
	assert.Len(t, sections.NewArrivals, 3)

	codes := func(books []*Book) []string {
		out := make([]string, 0, len(books))
		for _, b := range books {
			out = append(out, b.Code)
		}
		return out
	}
	assert.Equal(t, []string{"ENG301"}, codes(sections.EngineeringBooks))
	assert.Equal(t, []string{"ART105"}, codes(sections.ArtsBooks))
	assert.Equal(t, []string{"COS201"}, codes(sections.ITBooks))
	assert.Equal(t, []string{"GLY202"}, codes(sections.FeaturedBooks))
	assert.Equal(t, []string{"PHY101"}, codes(sections.ScienceBooks))

	// On-sale shelf is everything priced under the cap.
	assert.NotContains(t, codes(sections.OnSaleBooks), "GLY202")
	assert.Contains(t, codes(sections.OnSaleBooks), "STA211")
}
