package user

import (
	"context"
	"time"

	"uniboks/internal/core/apperror"
	"uniboks/internal/core/id"
	"uniboks/internal/core/tx"
	"uniboks/internal/domain/analytics"
	"uniboks/pkg/logger"
)

// ProfileInput carries the editable profile fields. Nil pointers leave
// the current value untouched.
type ProfileInput struct {
	Username   *string
	ProfileURL *string
	Level      *string
	Department *string
	Phone      *string
	FlatNo     *string
	Street     *string
	City       *string
	State      *string
	PostalCode *string
}

// Service provides user profile business logic.
type Service struct {
	repo      Repository
	txManager tx.Manager
	events    analytics.Recorder
}

// NewService creates a user service.
func NewService(repo Repository, txManager tx.Manager, events analytics.Recorder) *Service {
	return &Service{repo: repo, txManager: txManager, events: events}
}

// Login finds the user by email or creates one on first sight.
// Returns the profile and whether it was newly created.
func (s *Service) Login(ctx context.Context, email, username string, profileURL *string) (*User, bool, error) {
	existing, err := s.repo.GetByEmail(ctx, email)
	if err == nil {
		analytics.RecordQuiet(ctx, s.events, existing.ID.String(), analytics.EventLogin, nil)
		return existing, false, nil
	}
	if !apperror.IsNotFound(err) {
		return nil, false, err
	}

	u := NewUser(email, username)
	u.ProfileURL = profileURL
	if err := u.Validate(ctx); err != nil {
		return nil, false, err
	}

	err = s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		return s.repo.Create(ctx, u)
	})
	if err != nil {
		return nil, false, err
	}

	logger.Info(ctx, "user created on first login", "user_id", u.ID, "email", u.Email)
	analytics.RecordQuiet(ctx, s.events, u.ID.String(), analytics.EventSignup, nil)
	return u, true, nil
}

// CheckByEmail returns the profile for an email, or a not-found error.
func (s *Service) CheckByEmail(ctx context.Context, email string) (*User, error) {
	if email == "" {
		return nil, apperror.NewValidation("email is required").WithDetail("field", "email")
	}
	return s.repo.GetByEmail(ctx, email)
}

// GetByID returns the profile for an internal ID.
func (s *Service) GetByID(ctx context.Context, userID id.ID) (*User, error) {
	return s.repo.GetByID(ctx, userID)
}

// UpdateProfile applies the supplied profile fields and persists.
// Used both for first-time profile completion and later edits.
func (s *Service) UpdateProfile(ctx context.Context, userID id.ID, input ProfileInput) (*User, error) {
	u, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	applyInput(u, input)
	u.UpdatedAt = time.Now().UTC()

	if err := u.Validate(ctx); err != nil {
		return nil, err
	}

	err = s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		return s.repo.Update(ctx, u)
	})
	if err != nil {
		analytics.RecordQuiet(ctx, s.events, userID.String(), analytics.EventError, map[string]any{"op": "update_profile", "error": err.Error()})
		return nil, err
	}

	logger.Info(ctx, "user profile updated", "user_id", u.ID, "complete", u.ProfileComplete())
	analytics.RecordQuiet(ctx, s.events, u.ID.String(), analytics.EventProfileUpdate, "User Updated Profile")
	return u, nil
}

func applyInput(u *User, input ProfileInput) {
	if input.Username != nil {
		u.Username = *input.Username
	}
	if input.ProfileURL != nil {
		u.ProfileURL = input.ProfileURL
	}
	if input.Level != nil {
		u.Level = input.Level
	}
	if input.Department != nil {
		u.Department = input.Department
	}
	if input.Phone != nil {
		u.Phone = input.Phone
	}
	if input.FlatNo != nil {
		u.FlatNo = input.FlatNo
	}
	if input.Street != nil {
		u.Street = input.Street
	}
	if input.City != nil {
		u.City = input.City
	}
	if input.State != nil {
		u.State = input.State
	}
	if input.PostalCode != nil {
		u.PostalCode = input.PostalCode
	}
}
