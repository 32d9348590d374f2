package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"libreria-backend/application/commands"
	pkgerrors "libreria-backend/pkg/errors"
)

// ProductDeleter executes the delete-product command
type ProductDeleter interface {
	Handle(ctx context.Context, cmd commands.DeleteProductCommand) error
}

// ProductHandler exposes the product deletion endpoint. Deletion is
// acknowledged with 202 as soon as the cleanup job is queued; the caller
// never observes the cascade's outcome.
type ProductHandler struct {
	deleter ProductDeleter
	logger  *zap.Logger
}

// NewProductHandler creates a new product handler
func NewProductHandler(deleter ProductDeleter, logger *zap.Logger) *ProductHandler {
	return &ProductHandler{
		deleter: deleter,
		logger:  logger,
	}
}

// DeleteProduct handles DELETE /products/{productID}
func (h *ProductHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "productID")
	if productID == "" {
		respondJSON(w, http.StatusBadRequest, map[string]string{
			"error": "missing productId",
		})
		return
	}

	cmd := commands.DeleteProductCommand{ProductID: productID}
	if err := h.deleter.Handle(r.Context(), cmd); err != nil {
		status := pkgerrors.HTTPStatusFor(err)
		if status < http.StatusInternalServerError && !pkgerrors.IsType(err, pkgerrors.ErrorTypeValidation) {
			status = http.StatusInternalServerError
		}
		h.logger.Error("Failed to schedule product deletion",
			zap.String("productID", productID),
			zap.Error(err),
		)
		respondJSON(w, status, map[string]string{
			"error": "could not schedule product deletion",
		})
		return
	}

	respondJSON(w, http.StatusAccepted, map[string]string{
		"message":   "product deletion scheduled",
		"productId": productID,
	})
}

func respondJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
