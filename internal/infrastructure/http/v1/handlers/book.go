package handlers

import (
	"github.com/gin-gonic/gin"

	"uniboks/internal/domain/book"
	"uniboks/internal/infrastructure/http/v1/dto"
)

// BookHandler handles catalog endpoints.
type BookHandler struct {
	*BaseHandler
	service *book.Service
}

// NewBookHandler creates a book handler.
func NewBookHandler(base *BaseHandler, service *book.Service) *BookHandler {
	return &BookHandler{BaseHandler: base, service: service}
}

// Get returns one book.
// GET /api/v1/books/:id
func (h *BookHandler) Get(c *gin.Context) {
	bookID, ok := h.PathID(c)
	if !ok {
		return
	}

	b, err := h.service.Get(c.Request.Context(), bookID)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, dto.FromBook(b))
}

// Home returns the department-scoped post-login listing.
// GET /api/v1/books?userId=...
func (h *BookHandler) Home(c *gin.Context) {
	userID, ok := h.QueryID(c, "userId")
	if !ok {
		return
	}

	listing, err := h.service.HomeListing(c.Request.Context(), userID)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.HomeListingResponse{
		AllBooks:      dto.FromBooks(listing.AllBooks),
		RecentChoices: dto.FromBooks(listing.RecentChoices),
	})
}

// Sections returns the storefront landing-page shelves.
// GET /api/v1/books/sections
func (h *BookHandler) Sections(c *gin.Context) {
	sections, err := h.service.Storefront(c.Request.Context())
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, dto.FromSections(sections))
}
