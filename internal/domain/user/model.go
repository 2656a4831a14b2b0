// Package user provides storefront user profiles. Users are created on
// first login (upsert by email, there is no registration flow) and later
// complete their profile with address and department details.
package user

import (
	"context"
	"regexp"
	"time"

	"uniboks/internal/core/apperror"
	"uniboks/internal/core/id"
)

var emailRE = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// User is a storefront customer profile.
type User struct {
	ID         id.ID     `db:"id" json:"id"`
	Email      string    `db:"email" json:"email"`
	Username   string    `db:"username" json:"username"`
	ProfileURL *string   `db:"profile_url" json:"profileUrl,omitempty"`
	Level      *string   `db:"level" json:"level,omitempty"`
	Department *string   `db:"department" json:"department,omitempty"`
	Phone      *string   `db:"phone" json:"phone,omitempty"`
	FlatNo     *string   `db:"flat_no" json:"flatNo,omitempty"`
	Street     *string   `db:"street" json:"street,omitempty"`
	City       *string   `db:"city" json:"city,omitempty"`
	State      *string   `db:"state" json:"state,omitempty"`
	PostalCode *string   `db:"postal_code" json:"postalCode,omitempty"`
	CreatedAt  time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt  time.Time `db:"updated_at" json:"updatedAt"`
}

// NewUser creates a user from login identity data.
func NewUser(email, username string) *User {
	now := time.Now().UTC()
	return &User{
		ID:        id.New(),
		Email:     email,
		Username:  username,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Validate implements basic field validation.
func (u *User) Validate(ctx context.Context) error {
	if u.Email == "" {
		return apperror.NewValidation("email is required").WithDetail("field", "email")
	}
	if !emailRE.MatchString(u.Email) {
		return apperror.NewValidation("invalid email format").WithDetail("field", "email")
	}
	if u.Username == "" {
		return apperror.NewValidation("username is required").WithDetail("field", "username")
	}
	return nil
}

// ProfileComplete reports whether the user finished onboarding.
// Department and level gate the department-scoped catalog views.
func (u *User) ProfileComplete() bool {
	return u.Department != nil && *u.Department != "" &&
		u.Level != nil && *u.Level != ""
}

// FullAddress joins the address parts for invoice rendering.
func (u *User) FullAddress() string {
	parts := []*string{u.FlatNo, u.Street, u.City, u.State, u.PostalCode}
	addr := ""
	for _, p := range parts {
		if p == nil || *p == "" {
			continue
		}
		if addr != "" {
			addr += ", "
		}
		addr += *p
	}
	return addr
}
