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

func TestSearchIndexer_HandleStream_WritesOneRowPerToken(t *testing.T) {
	// Arrange: title and description share a token, so the union is
	// {libro, vida} and exactly two rows are written.
	ctx := context.Background()
	mockTokens := new(mocks.MockSearchTokenRepository)
	indexer := NewSearchIndexer(mockTokens, testMetrics(), zap.NewNop())

	product := fixtures.NewProductBuilder().
		WithID("prod-1").
		WithTitle("El Libro de la Vida").
		WithDescription("una vida").
		WithPrice(19.90).
		WithImages("product-images/prod-1/a.jpg").
		Build()
	event := awsevents.DynamoDBEvent{Records: []awsevents.DynamoDBEventRecord{
		fixtures.ProductStreamRecord("INSERT", product, nil),
	}}

	mockTokens.On("PutTokens", ctx, mock.MatchedBy(func(rows []catalog.SearchToken) bool {
		if len(rows) != 2 {
			return false
		}
		if rows[0].Token != "libro" || rows[1].Token != "vida" {
			return false
		}
		for _, row := range rows {
			if row.ProductID != "prod-1" ||
				row.Title != "El Libro de la Vida" ||
				row.Price != 19.90 ||
				len(row.Images) != 1 {
				return false
			}
		}
		return true
	})).Return(nil)

	// Act
	err := indexer.HandleStream(ctx, event)

	// Assert
	assert.NoError(t, err)
	mockTokens.AssertExpectations(t)
}

func TestSearchIndexer_HandleStream_NothingIndexableNoWrites(t *testing.T) {
	// Arrange: all words are stopwords or too short.
	ctx := context.Background()
	mockTokens := new(mocks.MockSearchTokenRepository)
	indexer := NewSearchIndexer(mockTokens, testMetrics(), zap.NewNop())

	product := fixtures.NewProductBuilder().
		WithID("prod-1").
		WithTitle("el de la").
		WithDescription("").
		Build()
	event := awsevents.DynamoDBEvent{Records: []awsevents.DynamoDBEventRecord{
		fixtures.ProductStreamRecord("INSERT", product, nil),
	}}

	// Act
	err := indexer.HandleStream(ctx, event)

	// Assert
	assert.NoError(t, err)
	mockTokens.AssertNotCalled(t, "PutTokens", mock.Anything, mock.Anything)
}

func TestSearchIndexer_HandleStream_SkipsRemoves(t *testing.T) {
	// Arrange
	ctx := context.Background()
	mockTokens := new(mocks.MockSearchTokenRepository)
	indexer := NewSearchIndexer(mockTokens, testMetrics(), zap.NewNop())

	old := fixtures.NewProductBuilder().WithID("prod-1").Build()
	event := awsevents.DynamoDBEvent{Records: []awsevents.DynamoDBEventRecord{
		fixtures.ProductStreamRecord("REMOVE", nil, old),
	}}

	// Act
	err := indexer.HandleStream(ctx, event)

	// Assert
	assert.NoError(t, err)
	mockTokens.AssertNotCalled(t, "PutTokens", mock.Anything, mock.Anything)
}

func TestSearchIndexer_HandleStream_WriteFailurePropagates(t *testing.T) {
	// Arrange
	ctx := context.Background()
	mockTokens := new(mocks.MockSearchTokenRepository)
	indexer := NewSearchIndexer(mockTokens, testMetrics(), zap.NewNop())

	product := fixtures.NewProductBuilder().
		WithID("prod-1").
		WithTitle("Himnario Adventista").
		Build()
	event := awsevents.DynamoDBEvent{Records: []awsevents.DynamoDBEventRecord{
		fixtures.ProductStreamRecord("INSERT", product, nil),
	}}

	mockTokens.On("PutTokens", ctx, mock.Anything).Return(errors.New("throttled"))

	// Act
	err := indexer.HandleStream(ctx, event)

	// Assert
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "prod-1")
}
