package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"libreria-backend/application/commands"
	pkgerrors "libreria-backend/pkg/errors"
)

type mockDeleter struct {
	mock.Mock
}

func (m *mockDeleter) Handle(ctx context.Context, cmd commands.DeleteProductCommand) error {
	args := m.Called(ctx, cmd)
	return args.Error(0)
}

func newProductRouter(deleter ProductDeleter) *chi.Mux {
	handler := NewProductHandler(deleter, zap.NewNop())
	r := chi.NewRouter()
	r.Delete("/products/{productID}", handler.DeleteProduct)
	return r
}

func TestProductHandler_DeleteProduct_Accepted(t *testing.T) {
	// Arrange
	deleter := new(mockDeleter)
	deleter.On("Handle", mock.Anything, commands.DeleteProductCommand{ProductID: "prod-1"}).Return(nil)
	router := newProductRouter(deleter)

	req := httptest.NewRequest(http.MethodDelete, "/products/prod-1", nil)
	rec := httptest.NewRecorder()

	// Act
	router.ServeHTTP(rec, req)

	// Assert
	assert.Equal(t, http.StatusAccepted, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "prod-1", body["productId"])
	assert.Equal(t, "product deletion scheduled", body["message"])
	deleter.AssertExpectations(t)
}

func TestProductHandler_DeleteProduct_HandlerFailure(t *testing.T) {
	// Arrange
	deleter := new(mockDeleter)
	deleter.On("Handle", mock.Anything, mock.Anything).Return(errors.New("queue unavailable"))
	router := newProductRouter(deleter)

	req := httptest.NewRequest(http.MethodDelete, "/products/prod-1", nil)
	rec := httptest.NewRecorder()

	// Act
	router.ServeHTTP(rec, req)

	// Assert
	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "could not schedule product deletion", body["error"])
}

func TestProductHandler_DeleteProduct_ValidationFailure(t *testing.T) {
	// Arrange
	deleter := new(mockDeleter)
	deleter.On("Handle", mock.Anything, mock.Anything).
		Return(pkgerrors.NewValidationError("product id is required"))
	router := newProductRouter(deleter)

	req := httptest.NewRequest(http.MethodDelete, "/products/%20", nil)
	rec := httptest.NewRecorder()

	// Act
	router.ServeHTTP(rec, req)

	// Assert
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestProductHandler_DeleteProduct_MissingID(t *testing.T) {
	// Arrange: call the handler without route parameters at all.
	handler := NewProductHandler(new(mockDeleter), zap.NewNop())

	req := httptest.NewRequest(http.MethodDelete, "/products/", nil)
	req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, chi.NewRouteContext()))
	rec := httptest.NewRecorder()

	// Act
	handler.DeleteProduct(rec, req)

	// Assert
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "missing productId", body["error"])
}
