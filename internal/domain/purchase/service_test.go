package purchase

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"uniboks/internal/core/apperror"
	"uniboks/internal/core/id"
	"uniboks/internal/core/numerator"
	"uniboks/internal/core/types"
	"uniboks/internal/domain/book"
	"uniboks/internal/domain/invoice"
	"uniboks/internal/domain/user"
)

// --- test doubles ---

type fakePurchaseRepo struct {
	created []*Purchase
	fail    error
}

func (r *fakePurchaseRepo) CreateBatch(_ context.Context, purchases []*Purchase) error {
	if r.fail != nil {
		return r.fail
	}
	r.created = append(r.created, purchases...)
	return nil
}

func (r *fakePurchaseRepo) ListByUser(_ context.Context, userID id.ID) ([]*Purchase, error) {
	var out []*Purchase
	for _, p := range r.created {
		if p.UserID == userID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *fakePurchaseRepo) SummaryByUser(_ context.Context, userID id.ID) (*Summary, error) {
	s := &Summary{TotalSum: types.Zero()}
	for _, p := range r.created {
		if p.UserID == userID {
			s.TotalSum = s.TotalSum.Add(p.TotalPrice)
			s.TotalBooks++
		}
	}
	return s, nil
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

type fakeBookRepo struct {
	byCode map[string]*book.Book
}

func (r *fakeBookRepo) Create(_ context.Context, b *book.Book) error { r.byCode[b.Code] = b; return nil }
func (r *fakeBookRepo) GetByID(_ context.Context, bookID id.ID) (*book.Book, error) {
	for _, b := range r.byCode {
		if b.ID == bookID {
			return b, nil
		}
	}
	return nil, apperror.NewNotFound("book", bookID.String())
}
func (r *fakeBookRepo) GetByCode(_ context.Context, code string) (*book.Book, error) {
	if b, ok := r.byCode[code]; ok {
		return b, nil
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

// noopTxManager runs the function without a real database.
type noopTxManager struct{}

func (noopTxManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

// --- fixtures ---

func newFixture() (*Service, *fakePurchaseRepo, *user.User) {
	dept := "Statistics"
	level := "200"
	u := user.NewUser("ada@unn.edu.ng", "Ada Obi")
	u.Department = &dept
	u.Level = &level

	users := &fakeUserRepo{users: map[id.ID]*user.User{u.ID: u}}
	books := &fakeBookRepo{byCode: map[string]*book.Book{
		"STA211": {ID: id.New(), Code: "STA211", Title: "Probability I", Department: "Statistics"},
		"STA231": {ID: id.New(), Code: "STA231", Title: "Inference I", Department: "Statistics"},
	}}
	repo := &fakePurchaseRepo{}

	svc := NewService(
		repo, users, books,
		&numerator.MockGenerator{},
		invoice.NewRenderer(invoice.DefaultConfig()),
		noopTxManager{},
		nil,
	)
	return svc, repo, u
}

func checkoutRequest(userID id.ID) CheckoutRequest {
	return CheckoutRequest{
		UserID: userID,
		Items: []invoice.LineItem{
			{Code: "STA211", Quantity: 1, UnitPrice: types.MustMoney("200.00"), TotalPrice: types.MustMoney("200.00")},
			{Code: "STA231", Quantity: 2, UnitPrice: types.MustMoney("150.00"), TotalPrice: types.MustMoney("300.00")},
		},
		Method: invoice.PaymentMethod{
			Type:          "Bank Transfer",
			AccountName:   "Uniboks Ltd",
			AccountNumber: "0123456789",
			PaidAt:        "2024-06-01 10:30",
			Fee:           types.MustMoney("75.00"),
		},
	}
}

// --- tests ---

func TestCheckout_Succeeds(t *testing.T) {
	svc, repo, u := newFixture()

	result, err := svc.Checkout(context.Background(), checkoutRequest(u.ID))
	require.NoError(t, err)

	assert.Regexp(t, `^INV-\d{8}-\d{4}$`, result.InvoiceNumber)
	assert.Equal(t, result.InvoiceNumber+".pdf", result.Filename())
	assert.True(t, bytes.HasPrefix(result.Document, []byte("%PDF-")))

	require.Len(t, repo.created, 2)
	for _, p := range repo.created {
		assert.Equal(t, result.InvoiceNumber, p.InvoiceNumber)
		assert.Equal(t, u.ID, p.UserID)
		assert.Equal(t, "Bank Transfer", p.PaymentMethod)
	}

	summary, err := svc.SummaryByUser(context.Background(), u.ID)
	require.NoError(t, err)
	assert.Equal(t, "500.00", summary.TotalSum.StringFixed(2))
	assert.Equal(t, 2, summary.TotalBooks)
}

func TestCheckout_EmptyItemsFails(t *testing.T) {
	svc, repo, u := newFixture()

	req := checkoutRequest(u.ID)
	req.Items = nil

	_, err := svc.Checkout(context.Background(), req)
	require.Error(t, err)
	assert.True(t, apperror.IsRender(err))
	assert.Empty(t, repo.created)
}

func TestCheckout_UnknownBookCodeFails(t *testing.T) {
	svc, repo, u := newFixture()

	req := checkoutRequest(u.ID)
	req.Items[0].Code = "NOPE101"

	_, err := svc.Checkout(context.Background(), req)
	require.Error(t, err)
	assert.True(t, apperror.IsNotFound(err))
	assert.Empty(t, repo.created)
}

func TestCheckout_UnknownUserFails(t *testing.T) {
	svc, repo, _ := newFixture()

	_, err := svc.Checkout(context.Background(), checkoutRequest(id.New()))
	require.Error(t, err)
	assert.True(t, apperror.IsNotFound(err))
	assert.Empty(t, repo.created)
}

func TestCheckout_AllocationFailureAbortsBeforePersist(t *testing.T) {
	svc, repo, u := newFixture()
	svc.numbers = &numerator.MockGenerator{
		NextNumberFunc: func(_ context.Context, _ numerator.Config, _ time.Time) (string, error) {
			return "", errors.New("store unavailable")
		},
	}

	_, err := svc.Checkout(context.Background(), checkoutRequest(u.ID))
	require.Error(t, err)
	assert.True(t, apperror.IsAllocation(err))
	assert.Empty(t, repo.created)
}

func TestCheckout_RenderFailureAbortsBeforePersist(t *testing.T) {
	svc, repo, u := newFixture()

	req := checkoutRequest(u.ID)
	req.Method.AccountNumber = ""

	_, err := svc.Checkout(context.Background(), req)
	require.Error(t, err)
	assert.True(t, apperror.IsRender(err))
	assert.Empty(t, repo.created)
}

func TestCheckout_PersistFailureSurfaces(t *testing.T) {
	svc, repo, u := newFixture()
	repo.fail = errors.New("db down")

	_, err := svc.Checkout(context.Background(), checkoutRequest(u.ID))
	require.Error(t, err)
	assert.Empty(t, repo.created)
}

func TestCheckout_SequentialInvoiceNumbersIncrement(t *testing.T) {
	svc, _, u := newFixture()

	first, err := svc.Checkout(context.Background(), checkoutRequest(u.ID))
	require.NoError(t, err)
	second, err := svc.Checkout(context.Background(), checkoutRequest(u.ID))
	require.NoError(t, err)

	assert.NotEqual(t, first.InvoiceNumber, second.InvoiceNumber)
}
