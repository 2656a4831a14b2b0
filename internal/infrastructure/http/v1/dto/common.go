// Package dto provides Data Transfer Objects for API requests/responses.
package dto

import (
	"uniboks/internal/core/apperror"
	"uniboks/internal/core/id"
)

// parseID parses a path/query ID, mapping failures to a validation error.
func parseID(raw string) (id.ID, error) {
	parsed, err := id.Parse(raw)
	if err != nil {
		return id.Nil(), apperror.NewValidation("invalid id").WithDetail("value", raw)
	}
	return parsed, nil
}

// ParseID is the exported form used by handlers.
func ParseID(raw string) (id.ID, error) {
	return parseID(raw)
}

// IDResponse for create operations.
type IDResponse struct {
	ID string `json:"id"`
}

// SuccessResponse for operations without data.
type SuccessResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// ErrorResponse for error details.
type ErrorResponse struct {
	Code    string         `json:"code"`
	Message string         `json:"message"`
	Details map[string]any `json:"details,omitempty"`
}
