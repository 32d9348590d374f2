package handlers

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"libreria-backend/application/ports"
	"libreria-backend/application/queries"
	"libreria-backend/domain/catalog"
)

// SearchProductsHandler answers product searches through the full-text
// engine port.
type SearchProductsHandler struct {
	engine ports.SearchEngine
	logger *zap.Logger
}

// NewSearchProductsHandler creates a new search handler
func NewSearchProductsHandler(engine ports.SearchEngine, logger *zap.Logger) *SearchProductsHandler {
	return &SearchProductsHandler{
		engine: engine,
		logger: logger,
	}
}

// Handle executes the search query
func (h *SearchProductsHandler) Handle(ctx context.Context, query queries.SearchProductsQuery) ([]catalog.ProductFromSearch, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	results, err := h.engine.Search(ctx, query.Term, query.From, query.Size)
	if err != nil {
		h.logger.Error("Search failed",
			zap.String("term", query.Term),
			zap.Error(err),
		)
		return nil, fmt.Errorf("search products: %w", err)
	}

	h.logger.Debug("Search completed",
		zap.String("term", query.Term),
		zap.Int("hits", len(results)),
	)
	return results, nil
}
