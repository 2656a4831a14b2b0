// Package book provides the catalog of books for sale.
package book

import (
	"time"

	"uniboks/internal/core/id"
	"uniboks/internal/core/types"
)

// Book is one catalog entry. Code is the human-facing catalog
// identifier (e.g. "STA211") printed on invoices.
type Book struct {
	ID         id.ID       `db:"id" json:"id"`
	Code       string      `db:"code" json:"code"`
	Title      string      `db:"title" json:"title"`
	Author     *string     `db:"author" json:"author,omitempty"`
	Department string      `db:"department" json:"department"`
	Level      *string     `db:"level" json:"level,omitempty"`
	Category   *string     `db:"category" json:"category,omitempty"`
	Price      types.Money `db:"price" json:"price"`
	Available  int         `db:"available" json:"available"`
	Rating     float64     `db:"rating" json:"rating"`
	Views      int         `db:"views" json:"views"`
	CoverURL   *string     `db:"cover_url" json:"coverUrl,omitempty"`
	CreatedAt  time.Time   `db:"created_at" json:"createdAt"`
}

// HomeListing is the department-scoped view shown after login.
type HomeListing struct {
	AllBooks      []*Book `json:"allBooks"`
	RecentChoices []*Book `json:"recentChoices"`
}

// Sections is the storefront landing page, a set of named shelves
// assembled from catalog queries.
type Sections struct {
	AllBooks         []*Book `json:"allBooks"`
	RecentChoices    []*Book `json:"recentChoices"`
	NewArrivals      []*Book `json:"newArrivals"`
	TopRatedBooks    []*Book `json:"topRatedBooks"`
	OnSaleBooks      []*Book `json:"onSaleBooks"`
	ArtsBooks        []*Book `json:"artsBooks"`
	EngineeringBooks []*Book `json:"engineeringBooks"`
	ITBooks          []*Book `json:"itBooks"`
	FeaturedBooks    []*Book `json:"featuredBooks"`
	ScienceBooks     []*Book `json:"scienceBooks"`
	PopularBooks     []*Book `json:"popularBooks"`
}
