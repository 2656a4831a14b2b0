package wishlist

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"uniboks/internal/core/apperror"
	"uniboks/internal/core/id"
	"uniboks/internal/core/types"
	"uniboks/internal/domain/book"
)

type pair struct {
	userID id.ID
	bookID id.ID
}

type fakeWishlistRepo struct {
	items map[pair]*Item
	books map[id.ID]*book.Book
}

func (r *fakeWishlistRepo) Exists(_ context.Context, userID, bookID id.ID) (bool, error) {
	_, ok := r.items[pair{userID, bookID}]
	return ok, nil
}

func (r *fakeWishlistRepo) Add(_ context.Context, item *Item) error {
	r.items[pair{item.UserID, item.BookID}] = item
	return nil
}

func (r *fakeWishlistRepo) Remove(_ context.Context, userID, bookID id.ID) error {
	delete(r.items, pair{userID, bookID})
	return nil
}

func (r *fakeWishlistRepo) ListBooks(_ context.Context, userID id.ID) ([]*book.Book, error) {
	out := []*book.Book{}
	for p := range r.items {
		if p.userID == userID {
			out = append(out, r.books[p.bookID])
		}
	}
	return out, nil
}

type fakeBookRepo struct {
	byID map[id.ID]*book.Book
}

func (r *fakeBookRepo) Create(_ context.Context, b *book.Book) error { r.byID[b.ID] = b; return nil }
func (r *fakeBookRepo) GetByID(_ context.Context, bookID id.ID) (*book.Book, error) {
	if b, ok := r.byID[bookID]; ok {
		return b, nil
	}
	return nil, apperror.NewNotFound("book", bookID.String())
}
func (r *fakeBookRepo) GetByCode(_ context.Context, code string) (*book.Book, error) {
	for _, b := range r.byID {
		if b.Code == code {
			return b, nil
		}
	}
	return nil, apperror.NewNotFound("book", code)
}
func (r *fakeBookRepo) List(_ context.Context, _ book.SortOrder, _ int) ([]*book.Book, error) {
	return nil, nil
}
func (r *fakeBookRepo) ListByDepartments(_ context.Context, _ []string) ([]*book.Book, error) {
	return nil, nil
}
func (r *fakeBookRepo) ListCheaperThan(_ context.Context, _ types.Money) ([]*book.Book, error) {
	return nil, nil
}

type noopTxManager struct{}

func (noopTxManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func newFixture() (*Service, id.ID, *book.Book) {
	b := &book.Book{ID: id.New(), Code: "STA211", Title: "Probability I", Department: "Statistics"}
	books := &fakeBookRepo{byID: map[id.ID]*book.Book{b.ID: b}}
	repo := &fakeWishlistRepo{items: map[pair]*Item{}, books: books.byID}
	return NewService(repo, books, noopTxManager{}, nil), id.New(), b
}

func TestAdd(t *testing.T) {
	svc, userID, b := newFixture()

	require.NoError(t, svc.Add(context.Background(), userID, b.ID))

	books, err := svc.List(context.Background(), userID)
	require.NoError(t, err)
	require.Len(t, books, 1)
	assert.Equal(t, "STA211", books[0].Code)
}

func TestAdd_DuplicateConflicts(t *testing.T) {
	svc, userID, b := newFixture()

	require.NoError(t, svc.Add(context.Background(), userID, b.ID))

	err := svc.Add(context.Background(), userID, b.ID)
	require.Error(t, err)
	assert.True(t, apperror.IsConflict(err))
}

func TestAdd_UnknownBookFails(t *testing.T) {
	svc, userID, _ := newFixture()

	err := svc.Add(context.Background(), userID, id.New())
	require.Error(t, err)
	assert.True(t, apperror.IsNotFound(err))
}

func TestRemove_ReturnsRemainingBooks(t *testing.T) {
	svc, userID, b := newFixture()

	require.NoError(t, svc.Add(context.Background(), userID, b.ID))

	remaining, err := svc.Remove(context.Background(), userID, b.ID)
	require.NoError(t, err)
	assert.Empty(t, remaining)
}

func TestRemove_AbsentPairIsNoop(t *testing.T) {
	svc, userID, _ := newFixture()

	remaining, err := svc.Remove(context.Background(), userID, id.New())
	require.NoError(t, err)
	assert.Empty(t, remaining)
}

func TestList_IsolatedPerUser(t *testing.T) {
	svc, userID, b := newFixture()

	require.NoError(t, svc.Add(context.Background(), userID, b.ID))

	other, err := svc.List(context.Background(), id.New())
	require.NoError(t, err)
	assert.Empty(t, other)
}
