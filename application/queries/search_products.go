package queries

import pkgerrors "libreria-backend/pkg/errors"

// SearchProductsQuery asks the full-text engine for products matching a
// term. Only meaningful when the search-engine mode is enabled.
type SearchProductsQuery struct {
	Term string
	From int
	Size int
}

// DefaultSearchSize is the page size used when the caller gives none
const DefaultSearchSize = 20

// Validate validates the query and applies paging defaults
func (q *SearchProductsQuery) Validate() error {
	if q.Term == "" {
		return pkgerrors.NewValidationError("search term is required")
	}
	if q.From < 0 {
		q.From = 0
	}
	if q.Size <= 0 {
		q.Size = DefaultSearchSize
	}
	return nil
}
