package handlers

import (
	"github.com/gin-gonic/gin"

	"uniboks/internal/domain/wishlist"
	"uniboks/internal/infrastructure/http/v1/dto"
)

// WishlistHandler handles wishlist endpoints.
type WishlistHandler struct {
	*BaseHandler
	service *wishlist.Service
}

// NewWishlistHandler creates a wishlist handler.
func NewWishlistHandler(base *BaseHandler, service *wishlist.Service) *WishlistHandler {
	return &WishlistHandler{BaseHandler: base, service: service}
}

type addWishlistRequest struct {
	UserID string `json:"userId" binding:"required"`
	BookID string `json:"bookId" binding:"required"`
}

// Add puts a book on the wishlist. Duplicate adds return 409.
// POST /api/v1/wishlist
func (h *WishlistHandler) Add(c *gin.Context) {
	var req addWishlistRequest
	if !h.BindJSON(c, &req) {
		return
	}

	userID, err := dto.ParseID(req.UserID)
	if err != nil {
		h.Error(c, err)
		return
	}
	bookID, err := dto.ParseID(req.BookID)
	if err != nil {
		h.Error(c, err)
		return
	}

	if err := h.service.Add(c.Request.Context(), userID, bookID); err != nil {
		h.Error(c, err)
		return
	}
	h.Success(c, "book added to wishlist")
}

// Remove deletes a wishlist entry and returns the remaining books.
// DELETE /api/v1/wishlist?userId=...&bookId=...
func (h *WishlistHandler) Remove(c *gin.Context) {
	userID, ok := h.QueryID(c, "userId")
	if !ok {
		return
	}
	bookID, ok := h.QueryID(c, "bookId")
	if !ok {
		return
	}

	books, err := h.service.Remove(c.Request.Context(), userID, bookID)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, dto.FromBooks(books))
}

// List returns the user's wishlisted books.
// GET /api/v1/wishlist?userId=...
func (h *WishlistHandler) List(c *gin.Context) {
	userID, ok := h.QueryID(c, "userId")
	if !ok {
		return
	}

	books, err := h.service.List(c.Request.Context(), userID)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, dto.FromBooks(books))
}
