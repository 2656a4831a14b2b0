package user

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"uniboks/internal/core/apperror"
	"uniboks/internal/core/id"
)

type fakeRepo struct {
	users   map[id.ID]*User
	updates int
}

func (r *fakeRepo) Create(_ context.Context, u *User) error {
	for _, existing := range r.users {
		if existing.Email == u.Email {
			return apperror.NewDuplicate("user", "email", u.Email)
		}
	}
	r.users[u.ID] = u
	return nil
}

func (r *fakeRepo) Update(_ context.Context, u *User) error {
	if _, ok := r.users[u.ID]; !ok {
		return apperror.NewNotFound("user", u.ID.String())
	}
	r.users[u.ID] = u
	r.updates++
	return nil
}

func (r *fakeRepo) GetByID(_ context.Context, userID id.ID) (*User, error) {
	if u, ok := r.users[userID]; ok {
		return u, nil
	}
	return nil, apperror.NewNotFound("user", userID.String())
}

func (r *fakeRepo) GetByEmail(_ context.Context, email string) (*User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, apperror.NewNotFound("user", email)
}

type noopTxManager struct{}

func (noopTxManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func newService() (*Service, *fakeRepo) {
	repo := &fakeRepo{users: map[id.ID]*User{}}
	return NewService(repo, noopTxManager{}, nil), repo
}

func strptr(s string) *string { return &s }

func TestLogin_CreatesOnFirstSight(t *testing.T) {
	svc, repo := newService()

	u, created, err := svc.Login(context.Background(), "ada@unn.edu.ng", "Ada Obi", nil)
	require.NoError(t, err)

	assert.True(t, created)
	assert.Equal(t, "ada@unn.edu.ng", u.Email)
	assert.False(t, u.ProfileComplete())
	assert.Len(t, repo.users, 1)
}

func TestLogin_ReturnsExistingProfile(t *testing.T) {
	svc, repo := newService()

	first, _, err := svc.Login(context.Background(), "ada@unn.edu.ng", "Ada Obi", nil)
	require.NoError(t, err)

	second, created, err := svc.Login(context.Background(), "ada@unn.edu.ng", "Different Name", nil)
	require.NoError(t, err)

	assert.False(t, created)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "Ada Obi", second.Username)
	assert.Len(t, repo.users, 1)
}

func TestLogin_RejectsInvalidEmail(t *testing.T) {
	svc, repo := newService()

	_, _, err := svc.Login(context.Background(), "not-an-email", "Ada Obi", nil)
	require.Error(t, err)
	assert.True(t, apperror.IsValidation(err))
	assert.Empty(t, repo.users)
}

func TestCheckByEmail(t *testing.T) {
	svc, _ := newService()

	_, _, err := svc.Login(context.Background(), "ada@unn.edu.ng", "Ada Obi", nil)
	require.NoError(t, err)

	u, err := svc.CheckByEmail(context.Background(), "ada@unn.edu.ng")
	require.NoError(t, err)
	assert.Equal(t, "Ada Obi", u.Username)

	_, err = svc.CheckByEmail(context.Background(), "nobody@unn.edu.ng")
	assert.True(t, apperror.IsNotFound(err))

	_, err = svc.CheckByEmail(context.Background(), "")
	assert.True(t, apperror.IsValidation(err))
}

func TestUpdateProfile_CompletesProfile(t *testing.T) {
	svc, repo := newService()

	u, _, err := svc.Login(context.Background(), "ada@unn.edu.ng", "Ada Obi", nil)
	require.NoError(t, err)

	updated, err := svc.UpdateProfile(context.Background(), u.ID, ProfileInput{
		Department: strptr("Statistics"),
		Level:      strptr("200"),
		Phone:      strptr("08012345678"),
		City:       strptr("Nsukka"),
	})
	require.NoError(t, err)

	assert.True(t, updated.ProfileComplete())
	assert.Equal(t, "Statistics", *updated.Department)
	assert.Equal(t, 1, repo.updates)
}

func TestUpdateProfile_NilFieldsLeaveValuesUntouched(t *testing.T) {
	svc, _ := newService()

	u, _, err := svc.Login(context.Background(), "ada@unn.edu.ng", "Ada Obi", nil)
	require.NoError(t, err)

	_, err = svc.UpdateProfile(context.Background(), u.ID, ProfileInput{
		Department: strptr("Statistics"),
		Level:      strptr("200"),
	})
	require.NoError(t, err)

	updated, err := svc.UpdateProfile(context.Background(), u.ID, ProfileInput{
		Phone: strptr("08012345678"),
	})
	require.NoError(t, err)

	assert.Equal(t, "Statistics", *updated.Department)
	assert.Equal(t, "Ada Obi", updated.Username)
	assert.Equal(t, "08012345678", *updated.Phone)
}

func TestUpdateProfile_UnknownUser(t *testing.T) {
	svc, _ := newService()

	_, err := svc.UpdateProfile(context.Background(), id.New(), ProfileInput{Level: strptr("200")})
	require.Error(t, err)
	assert.True(t, apperror.IsNotFound(err))
}

func TestFullAddress(t *testing.T) {
	u := NewUser("ada@unn.edu.ng", "Ada Obi")
	assert.Empty(t, u.FullAddress())

	u.FlatNo = strptr("12B")
	u.Street = strptr("Zik Avenue")
	u.City = strptr("Nsukka")
	u.State = strptr("Enugu")
	assert.Equal(t, "12B, Zik Avenue, Nsukka, Enugu", u.FullAddress())
}
