package catalog

import (
	"strings"

	pkgerrors "libreria-backend/pkg/errors"
)

// StatusSearchable marks a product whose title has been normalized. It is
// a constant partition key for the search-status secondary index; the
// storefront only lists products carrying it.
const StatusSearchable = "ACTIVE"

// ImagePrefix is the storage key prefix under which a product's images
// live: ImagePrefix + productID + "/".
const ImagePrefix = "product-images/"

// Product is the authoritative catalog entity. Title, price, description
// and images are owned by the storefront mutations; NormalizedTitle,
// SearchableStatus and CategoryIDs are derived attributes maintained by
// the pipeline and must never be edited directly.
type Product struct {
	ID               string
	Title            string
	NormalizedTitle  string
	Description      string
	Images           []string
	Code             string
	Price            float64
	CategoryIDs      []string
	SearchableStatus string
	CreatedAt        string
	UpdatedAt        string
}

// Validate checks the minimal shape required of a product record
func (p *Product) Validate() error {
	if strings.TrimSpace(p.ID) == "" {
		return pkgerrors.NewValidationError("product id is required")
	}
	return nil
}

// ImageKeyPrefix returns the storage prefix holding this product's images
func (p *Product) ImageKeyPrefix() string {
	return ImagePrefix + p.ID + "/"
}

// Category is a simple reference entity; it has no denormalized
// dependents besides the join rows.
type Category struct {
	ID    string
	Name  string
	Label string
}

// CategoryLink is one product-category association. The Product* fields
// are denormalized copies of the referenced product's summary, written
// only by the join-row sync so category-scoped listings never join.
type CategoryLink struct {
	ID               string
	ProductID        string
	CategoryID       string
	ProductStatus    string
	ProductTitle     string
	ProductPrice     float64
	ProductCreatedAt string
}

// Validate checks the minimal shape required of a join row
func (l *CategoryLink) Validate() error {
	if strings.TrimSpace(l.ID) == "" {
		return pkgerrors.NewValidationError("category link id is required")
	}
	if strings.TrimSpace(l.ProductID) == "" {
		return pkgerrors.NewValidationError("category link product id is required")
	}
	return nil
}

// ApplySummary overwrites the denormalized product fields from the
// product's current state.
func (l *CategoryLink) ApplySummary(p *Product) {
	l.ProductStatus = p.SearchableStatus
	l.ProductTitle = p.NormalizedTitle
	l.ProductPrice = p.Price
	l.ProductCreatedAt = p.CreatedAt
}

// SearchToken is one row of the token-to-product search index, identified
// by the composite (Token, ProductID). Rows carry a denormalized copy of
// the product's display fields so a token lookup answers without a second
// read.
type SearchToken struct {
	Token           string
	ProductID       string
	Title           string
	Description     string
	Price           float64
	Images          []string
	CategoryIDs     []string
	NormalizedTitle string
	CreatedAt       string
}

// ProductFromSearch is the uniform shape mapped out of full-text engine
// responses when that mode is enabled.
type ProductFromSearch struct {
	ID          string              `json:"id"`
	Title       string              `json:"title"`
	Description string              `json:"description,omitempty"`
	Price       float64             `json:"price"`
	Images      []string            `json:"images,omitempty"`
	Highlight   map[string][]string `json:"highlight,omitempty"`
}
