package handlers

import (
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"libreria-backend/application/queries"
	queryhandlers "libreria-backend/application/queries/handlers"
	pkgerrors "libreria-backend/pkg/errors"
)

// SearchHandler exposes the full-text search endpoint (engine mode only)
type SearchHandler struct {
	searcher *queryhandlers.SearchProductsHandler
	logger   *zap.Logger
}

// NewSearchHandler creates a new search handler
func NewSearchHandler(searcher *queryhandlers.SearchProductsHandler, logger *zap.Logger) *SearchHandler {
	return &SearchHandler{
		searcher: searcher,
		logger:   logger,
	}
}

// Search handles GET /search?q=term&from=0&size=20
func (h *SearchHandler) Search(w http.ResponseWriter, r *http.Request) {
	query := queries.SearchProductsQuery{
		Term: r.URL.Query().Get("q"),
		From: intParam(r, "from"),
		Size: intParam(r, "size"),
	}

	results, err := h.searcher.Handle(r.Context(), query)
	if err != nil {
		respondJSON(w, pkgerrors.HTTPStatusFor(err), map[string]string{
			"error": err.Error(),
		})
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"results": results,
		"count":   len(results),
	})
}

func intParam(r *http.Request, name string) int {
	v, err := strconv.Atoi(r.URL.Query().Get(name))
	if err != nil {
		return 0
	}
	return v
}
