package pipeline

import (
	"context"
	"errors"
	"testing"

	awsevents "github.com/aws/aws-lambda-go/events"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"libreria-backend/domain/catalog"
	"libreria-backend/tests/fixtures"
	"libreria-backend/tests/mocks"
)

func TestCategoryLinkDenormalizer_HandleStream_RebuildsFullList(t *testing.T) {
	// Arrange: two inserts for the same product collapse into one
	// recompute that reads the current join rows.
	ctx := context.Background()
	mockProducts := new(mocks.MockProductRepository)
	mockLinks := new(mocks.MockCategoryLinkRepository)
	denormalizer := NewCategoryLinkDenormalizer(mockProducts, mockLinks, zap.NewNop())

	linkA := fixtures.NewCategoryLinkBuilder().WithProductID("prod-1").WithCategoryID("cat-1").Build()
	linkB := fixtures.NewCategoryLinkBuilder().WithProductID("prod-1").WithCategoryID("cat-2").Build()
	event := awsevents.DynamoDBEvent{Records: []awsevents.DynamoDBEventRecord{
		fixtures.LinkStreamRecord("INSERT", &linkA, nil),
		fixtures.LinkStreamRecord("INSERT", &linkB, nil),
	}}

	mockLinks.On("ListByProduct", ctx, "prod-1").Return([]catalog.CategoryLink{linkA, linkB}, nil)
	mockProducts.On("SetCategoryIDs", ctx, "prod-1", []string{"cat-1", "cat-2"}).Return(nil)

	// Act
	err := denormalizer.HandleStream(ctx, event)

	// Assert
	assert.NoError(t, err)
	mockLinks.AssertNumberOfCalls(t, "ListByProduct", 1)
	mockProducts.AssertExpectations(t)
}

func TestCategoryLinkDenormalizer_HandleStream_RemovingLastAssociationClearsList(t *testing.T) {
	// Arrange
	ctx := context.Background()
	mockProducts := new(mocks.MockProductRepository)
	mockLinks := new(mocks.MockCategoryLinkRepository)
	denormalizer := NewCategoryLinkDenormalizer(mockProducts, mockLinks, zap.NewNop())

	removed := fixtures.NewCategoryLinkBuilder().WithProductID("prod-1").WithCategoryID("cat-1").Build()
	event := awsevents.DynamoDBEvent{Records: []awsevents.DynamoDBEventRecord{
		fixtures.LinkStreamRecord("REMOVE", nil, &removed),
	}}

	mockLinks.On("ListByProduct", ctx, "prod-1").Return([]catalog.CategoryLink{}, nil)
	mockProducts.On("SetCategoryIDs", ctx, "prod-1", []string{}).Return(nil)

	// Act
	err := denormalizer.HandleStream(ctx, event)

	// Assert
	assert.NoError(t, err)
	mockProducts.AssertExpectations(t)
}

func TestCategoryLinkDenormalizer_HandleStream_OneProductFailingDoesNotBlockOthers(t *testing.T) {
	// Arrange
	ctx := context.Background()
	mockProducts := new(mocks.MockProductRepository)
	mockLinks := new(mocks.MockCategoryLinkRepository)
	denormalizer := NewCategoryLinkDenormalizer(mockProducts, mockLinks, zap.NewNop())

	linkA := fixtures.NewCategoryLinkBuilder().WithProductID("prod-1").WithCategoryID("cat-1").Build()
	linkB := fixtures.NewCategoryLinkBuilder().WithProductID("prod-2").WithCategoryID("cat-2").Build()
	event := awsevents.DynamoDBEvent{Records: []awsevents.DynamoDBEventRecord{
		fixtures.LinkStreamRecord("INSERT", &linkA, nil),
		fixtures.LinkStreamRecord("INSERT", &linkB, nil),
	}}

	mockLinks.On("ListByProduct", ctx, "prod-1").Return(nil, errors.New("throttled"))
	mockLinks.On("ListByProduct", ctx, "prod-2").Return([]catalog.CategoryLink{linkB}, nil)
	mockProducts.On("SetCategoryIDs", ctx, "prod-2", []string{"cat-2"}).Return(nil)

	// Act
	err := denormalizer.HandleStream(ctx, event)

	// Assert: the batch reports success, prod-2 was still recomputed.
	assert.NoError(t, err)
	mockProducts.AssertExpectations(t)
	mockProducts.AssertNotCalled(t, "SetCategoryIDs", mock.Anything, "prod-1", mock.Anything)
}

func TestCategoryLinkDenormalizer_HandleStream_SkipsMalformedRecords(t *testing.T) {
	// Arrange
	ctx := context.Background()
	mockProducts := new(mocks.MockProductRepository)
	mockLinks := new(mocks.MockCategoryLinkRepository)
	denormalizer := NewCategoryLinkDenormalizer(mockProducts, mockLinks, zap.NewNop())

	malformed := fixtures.LinkStreamRecord("INSERT", nil, nil)
	event := awsevents.DynamoDBEvent{Records: []awsevents.DynamoDBEventRecord{malformed}}

	// Act
	err := denormalizer.HandleStream(ctx, event)

	// Assert
	assert.NoError(t, err)
	mockLinks.AssertNotCalled(t, "ListByProduct", mock.Anything, mock.Anything)
}
