package pipeline

import (
	"context"
	"errors"
	"testing"

	awsevents "github.com/aws/aws-lambda-go/events"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"libreria-backend/tests/fixtures"
	"libreria-backend/tests/mocks"
)

func TestTitleNormalizer_HandleStream_WritesNormalizedTitle(t *testing.T) {
	// Arrange
	ctx := context.Background()
	mockProducts := new(mocks.MockProductRepository)
	normalizer := NewTitleNormalizer(mockProducts, zap.NewNop())

	product := fixtures.NewProductBuilder().
		WithID("prod-1").
		WithTitle("Café Bíblico").
		Build()
	event := awsevents.DynamoDBEvent{Records: []awsevents.DynamoDBEventRecord{
		fixtures.ProductStreamRecord("INSERT", product, nil),
	}}

	mockProducts.On("SetNormalizedTitle", ctx, "prod-1", "cafe biblico").Return(true, nil)

	// Act
	err := normalizer.HandleStream(ctx, event)

	// Assert
	assert.NoError(t, err)
	mockProducts.AssertExpectations(t)
}

func TestTitleNormalizer_HandleStream_ConditionalNoOp(t *testing.T) {
	// Arrange: the stored value already matches, the write reports false.
	// That is our own previous write coming back through the stream and
	// must terminate quietly instead of looping.
	ctx := context.Background()
	mockProducts := new(mocks.MockProductRepository)
	normalizer := NewTitleNormalizer(mockProducts, zap.NewNop())

	product := fixtures.NewProductBuilder().
		WithID("prod-1").
		WithTitle("Café Bíblico").
		WithNormalizedTitle("cafe biblico").
		Searchable().
		Build()
	event := awsevents.DynamoDBEvent{Records: []awsevents.DynamoDBEventRecord{
		fixtures.ProductStreamRecord("MODIFY", product, product),
	}}

	mockProducts.On("SetNormalizedTitle", ctx, "prod-1", "cafe biblico").Return(false, nil)

	// Act
	err := normalizer.HandleStream(ctx, event)

	// Assert
	assert.NoError(t, err)
	mockProducts.AssertExpectations(t)
}

func TestTitleNormalizer_HandleStream_SkipsRemoves(t *testing.T) {
	// Arrange
	ctx := context.Background()
	mockProducts := new(mocks.MockProductRepository)
	normalizer := NewTitleNormalizer(mockProducts, zap.NewNop())

	old := fixtures.NewProductBuilder().WithID("prod-1").Build()
	event := awsevents.DynamoDBEvent{Records: []awsevents.DynamoDBEventRecord{
		fixtures.ProductStreamRecord("REMOVE", nil, old),
	}}

	// Act
	err := normalizer.HandleStream(ctx, event)

	// Assert
	assert.NoError(t, err)
	mockProducts.AssertNotCalled(t, "SetNormalizedTitle", mock.Anything, mock.Anything, mock.Anything)
}

func TestTitleNormalizer_HandleStream_SkipsMalformedRecords(t *testing.T) {
	// Arrange: a record without an id fails decoding and is skipped, the
	// valid record after it is still processed.
	ctx := context.Background()
	mockProducts := new(mocks.MockProductRepository)
	normalizer := NewTitleNormalizer(mockProducts, zap.NewNop())

	malformed := fixtures.ProductStreamRecord("INSERT", fixtures.NewProductBuilder().WithID("").Build(), nil)
	valid := fixtures.ProductStreamRecord("INSERT", fixtures.NewProductBuilder().WithID("prod-2").WithTitle("Himnario").Build(), nil)
	event := awsevents.DynamoDBEvent{Records: []awsevents.DynamoDBEventRecord{malformed, valid}}

	mockProducts.On("SetNormalizedTitle", ctx, "prod-2", "himnario").Return(true, nil)

	// Act
	err := normalizer.HandleStream(ctx, event)

	// Assert
	assert.NoError(t, err)
	mockProducts.AssertExpectations(t)
	mockProducts.AssertNumberOfCalls(t, "SetNormalizedTitle", 1)
}

func TestTitleNormalizer_HandleStream_WriteFailurePropagates(t *testing.T) {
	// Arrange
	ctx := context.Background()
	mockProducts := new(mocks.MockProductRepository)
	normalizer := NewTitleNormalizer(mockProducts, zap.NewNop())

	product := fixtures.NewProductBuilder().WithID("prod-1").Build()
	event := awsevents.DynamoDBEvent{Records: []awsevents.DynamoDBEventRecord{
		fixtures.ProductStreamRecord("INSERT", product, nil),
	}}

	mockProducts.On("SetNormalizedTitle", ctx, "prod-1", mock.Anything).
		Return(false, errors.New("throttled"))

	// Act
	err := normalizer.HandleStream(ctx, event)

	// Assert
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "prod-1")
}
