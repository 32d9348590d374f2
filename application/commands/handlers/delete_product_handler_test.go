package handlers

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"libreria-backend/application/commands"
	"libreria-backend/domain/catalog"
	pkgerrors "libreria-backend/pkg/errors"
	"libreria-backend/tests/fixtures"
	"libreria-backend/tests/mocks"
)

func TestNewDeleteProductHandler(t *testing.T) {
	// Arrange
	mockProducts := new(mocks.MockProductRepository)
	mockQueue := new(mocks.MockCleanupQueue)

	// Act
	handler := NewDeleteProductHandler(mockProducts, mockQueue, 2*time.Second, zap.NewNop())

	// Assert
	assert.NotNil(t, handler)
}

func TestDeleteProductHandler_Handle_EnqueuesJobWithImagePaths(t *testing.T) {
	// Arrange
	ctx := context.Background()
	mockProducts := new(mocks.MockProductRepository)
	mockQueue := new(mocks.MockCleanupQueue)
	handler := NewDeleteProductHandler(mockProducts, mockQueue, 2*time.Second, zap.NewNop())

	product := fixtures.NewProductBuilder().
		WithID("prod-1").
		WithImages("product-images/prod-1/a.jpg", "product-images/prod-1/b.jpg").
		Build()

	mockProducts.On("GetByID", ctx, "prod-1").Return(product, nil)
	mockQueue.On("Enqueue", ctx, mock.MatchedBy(func(job catalog.CleanupJob) bool {
		return job.JobID != "" &&
			job.ProductID == "prod-1" &&
			len(job.ProductImages) == 2 &&
			job.RetryCount == 0 &&
			!job.SkipCategories
	}), 2*time.Second).Return(nil)

	// Act
	err := handler.Handle(ctx, commands.DeleteProductCommand{ProductID: "prod-1"})

	// Assert
	assert.NoError(t, err)
	mockProducts.AssertExpectations(t)
	mockQueue.AssertExpectations(t)
}

func TestDeleteProductHandler_Handle_ToleratesFailedProductRead(t *testing.T) {
	// Arrange: the read fails, the job is still enqueued with no image
	// paths and the worker will fall back to a prefix listing.
	ctx := context.Background()
	mockProducts := new(mocks.MockProductRepository)
	mockQueue := new(mocks.MockCleanupQueue)
	handler := NewDeleteProductHandler(mockProducts, mockQueue, 2*time.Second, zap.NewNop())

	mockProducts.On("GetByID", ctx, "prod-1").Return(nil, errors.New("throttled"))
	mockQueue.On("Enqueue", ctx, mock.MatchedBy(func(job catalog.CleanupJob) bool {
		return job.ProductID == "prod-1" && len(job.ProductImages) == 0
	}), 2*time.Second).Return(nil)

	// Act
	err := handler.Handle(ctx, commands.DeleteProductCommand{ProductID: "prod-1"})

	// Assert
	assert.NoError(t, err)
	mockQueue.AssertExpectations(t)
}

func TestDeleteProductHandler_Handle_EnqueueFailurePropagates(t *testing.T) {
	// Arrange
	ctx := context.Background()
	mockProducts := new(mocks.MockProductRepository)
	mockQueue := new(mocks.MockCleanupQueue)
	handler := NewDeleteProductHandler(mockProducts, mockQueue, 2*time.Second, zap.NewNop())

	mockProducts.On("GetByID", ctx, "prod-1").Return(fixtures.NewProductBuilder().WithID("prod-1").Build(), nil)
	mockQueue.On("Enqueue", ctx, mock.Anything, 2*time.Second).Return(errors.New("queue unavailable"))

	// Act
	err := handler.Handle(ctx, commands.DeleteProductCommand{ProductID: "prod-1"})

	// Assert
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "prod-1")
}

func TestDeleteProductHandler_Handle_RejectsEmptyProductID(t *testing.T) {
	// Arrange
	mockProducts := new(mocks.MockProductRepository)
	mockQueue := new(mocks.MockCleanupQueue)
	handler := NewDeleteProductHandler(mockProducts, mockQueue, 2*time.Second, zap.NewNop())

	// Act
	err := handler.Handle(context.Background(), commands.DeleteProductCommand{})

	// Assert
	assert.Error(t, err)
	assert.True(t, pkgerrors.IsType(err, pkgerrors.ErrorTypeValidation))
	mockQueue.AssertNotCalled(t, "Enqueue", mock.Anything, mock.Anything, mock.Anything)
}
