package handlers

import (
	"github.com/gin-gonic/gin"

	"uniboks/internal/domain/user"
	"uniboks/internal/infrastructure/http/v1/dto"
)

// UserHandler handles user profile endpoints.
type UserHandler struct {
	*BaseHandler
	service *user.Service
}

// NewUserHandler creates a user handler.
func NewUserHandler(base *BaseHandler, service *user.Service) *UserHandler {
	return &UserHandler{BaseHandler: base, service: service}
}

// Login upserts a user on login.
// POST /api/v1/users/login
func (h *UserHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !h.BindJSON(c, &req) {
		return
	}

	u, created, err := h.service.Login(c.Request.Context(), req.Email, req.Username, req.ProfileURL)
	if err != nil {
		h.Error(c, err)
		return
	}

	resp := dto.LoginResponse{
		User:            dto.FromUser(u),
		Created:         created,
		ProfileComplete: u.ProfileComplete(),
	}
	if created {
		h.Created(c, resp)
		return
	}
	h.OK(c, resp)
}

// Check reports whether a profile exists for an email.
// GET /api/v1/users/check?email=...
func (h *UserHandler) Check(c *gin.Context) {
	u, err := h.service.CheckByEmail(c.Request.Context(), c.Query("email"))
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.LoginResponse{
		User:            dto.FromUser(u),
		ProfileComplete: u.ProfileComplete(),
	})
}

// Get returns one profile.
// GET /api/v1/users/:id
func (h *UserHandler) Get(c *gin.Context) {
	userID, ok := h.PathID(c)
	if !ok {
		return
	}

	u, err := h.service.GetByID(c.Request.Context(), userID)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, dto.FromUser(u))
}

// UpdateProfile applies profile fields, both for first-time completion
// and later edits.
// PUT /api/v1/users/:id/profile
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	userID, ok := h.PathID(c)
	if !ok {
		return
	}

	var req dto.UpdateProfileRequest
	if !h.BindJSON(c, &req) {
		return
	}

	u, err := h.service.UpdateProfile(c.Request.Context(), userID, req.ToInput())
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, dto.FromUser(u))
}
