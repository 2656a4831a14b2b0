package dto

import (
	"uniboks/internal/domain/book"
)

// BookResponse is the public catalog entry shape. Price is serialized
// as a decimal string.
type BookResponse struct {
	ID         string  `json:"id"`
	Code       string  `json:"code"`
	Title      string  `json:"title"`
	Author     *string `json:"author,omitempty"`
	Department string  `json:"department"`
	Level      *string `json:"level,omitempty"`
	Category   *string `json:"category,omitempty"`
	Price      string  `json:"price"`
	Available  int     `json:"available"`
	Rating     float64 `json:"rating"`
	Views      int     `json:"views"`
	CoverURL   *string `json:"coverUrl,omitempty"`
}

// FromBook creates a BookResponse from the domain model.
func FromBook(b *book.Book) BookResponse {
	return BookResponse{
		ID:         b.ID.String(),
		Code:       b.Code,
		Title:      b.Title,
		Author:     b.Author,
		Department: b.Department,
		Level:      b.Level,
		Category:   b.Category,
		Price:      b.Price.StringFixed(2),
		Available:  b.Available,
		Rating:     b.Rating,
		Views:      b.Views,
		CoverURL:   b.CoverURL,
	}
}

// FromBooks maps a slice of books. Nil input becomes an empty slice so
// JSON clients always see an array.
func FromBooks(books []*book.Book) []BookResponse {
	out := make([]BookResponse, 0, len(books))
	for _, b := range books {
		out = append(out, FromBook(b))
	}
	return out
}

// HomeListingResponse is the post-login department view.
type HomeListingResponse struct {
	AllBooks      []BookResponse `json:"allBooks"`
	RecentChoices []BookResponse `json:"recentChoices"`
}

// SectionsResponse is the storefront landing page.
type SectionsResponse struct {
	AllBooks         []BookResponse `json:"allBooks"`
	RecentChoices    []BookResponse `json:"recentChoices"`
	NewArrivals      []BookResponse `json:"newArrivals"`
	TopRatedBooks    []BookResponse `json:"topRatedBooks"`
	OnSaleBooks      []BookResponse `json:"onSaleBooks"`
	ArtsBooks        []BookResponse `json:"artsBooks"`
	EngineeringBooks []BookResponse `json:"engineeringBooks"`
	ITBooks          []BookResponse `json:"itBooks"`
	FeaturedBooks    []BookResponse `json:"featuredBooks"`
	ScienceBooks     []BookResponse `json:"scienceBooks"`
	PopularBooks     []BookResponse `json:"popularBooks"`
}

// FromSections maps the domain sections to the response shape.
func FromSections(s *book.Sections) SectionsResponse {
	return SectionsResponse{
		AllBooks:         FromBooks(s.AllBooks),
		RecentChoices:    FromBooks(s.RecentChoices),
		NewArrivals:      FromBooks(s.NewArrivals),
		TopRatedBooks:    FromBooks(s.TopRatedBooks),
		OnSaleBooks:      FromBooks(s.OnSaleBooks),
		ArtsBooks:        FromBooks(s.ArtsBooks),
		EngineeringBooks: FromBooks(s.EngineeringBooks),
		ITBooks:          FromBooks(s.ITBooks),
		FeaturedBooks:    FromBooks(s.FeaturedBooks),
		ScienceBooks:     FromBooks(s.ScienceBooks),
		PopularBooks:     FromBooks(s.PopularBooks),
	}
}
