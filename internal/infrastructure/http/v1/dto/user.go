package dto

import (
	"uniboks/internal/domain/user"
)

// LoginRequest is the upsert-on-login payload from the identity provider.
type LoginRequest struct {
	Email      string  `json:"email" binding:"required,email"`
	Username   string  `json:"username" binding:"required"`
	ProfileURL *string `json:"profileUrl"`
}

// LoginResponse returns the profile plus onboarding state.
type LoginResponse struct {
	User            UserResponse `json:"user"`
	Created         bool         `json:"created"`
	ProfileComplete bool         `json:"profileComplete"`
}

// UpdateProfileRequest carries editable profile fields. Absent fields
// are left unchanged.
type UpdateProfileRequest struct {
	Username   *string `json:"username"`
	ProfileURL *string `json:"profileUrl"`
	Level      *string `json:"level"`
	Department *string `json:"department"`
	Phone      *string `json:"phone"`
	FlatNo     *string `json:"flatNo"`
	Street     *string `json:"street"`
	City       *string `json:"city"`
	State      *string `json:"state"`
	PostalCode *string `json:"postalCode"`
}

// ToInput converts the request to the domain input.
func (r *UpdateProfileRequest) ToInput() user.ProfileInput {
	return user.ProfileInput{
		Username:   r.Username,
		ProfileURL: r.ProfileURL,
		Level:      r.Level,
		Department: r.Department,
		Phone:      r.Phone,
		FlatNo:     r.FlatNo,
		Street:     r.Street,
		City:       r.City,
		State:      r.State,
		PostalCode: r.PostalCode,
	}
}

// UserResponse is the public profile shape.
type UserResponse struct {
	ID         string  `json:"id"`
	Email      string  `json:"email"`
	Username   string  `json:"username"`
	ProfileURL *string `json:"profileUrl,omitempty"`
	Level      *string `json:"level,omitempty"`
	Department *string `json:"department,omitempty"`
	Phone      *string `json:"phone,omitempty"`
	FlatNo     *string `json:"flatNo,omitempty"`
	Street     *string `json:"street,omitempty"`
	City       *string `json:"city,omitempty"`
	State      *string `json:"state,omitempty"`
	PostalCode *string `json:"postalCode,omitempty"`
}

// FromUser creates a UserResponse from the domain model.
func FromUser(u *user.User) UserResponse {
	return UserResponse{
		ID:         u.ID.String(),
		Email:      u.Email,
		Username:   u.Username,
		ProfileURL: u.ProfileURL,
		Level:      u.Level,
		Department: u.Department,
		Phone:      u.Phone,
		FlatNo:     u.FlatNo,
		Street:     u.Street,
		City:       u.City,
		State:      u.State,
		PostalCode: u.PostalCode,
	}
}
