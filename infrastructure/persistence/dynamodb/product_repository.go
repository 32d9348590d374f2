package dynamodb

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"go.uber.org/zap"

	"libreria-backend/application/ports"
	"libreria-backend/domain/catalog"
	pkgerrors "libreria-backend/pkg/errors"
)

// ProductRepository implements ports.ProductRepository on DynamoDB
type ProductRepository struct {
	client    *dynamodb.Client
	tableName string
	logger    *zap.Logger
}

// NewProductRepository creates a new product repository
func NewProductRepository(client *dynamodb.Client, tableName string, logger *zap.Logger) ports.ProductRepository {
	return &ProductRepository{
		client:    client,
		tableName: tableName,
		logger:    logger,
	}
}

// productItem represents the DynamoDB item structure for a product
type productItem struct {
	ID               string   `dynamodbav:"id"`
	Title            string   `dynamodbav:"title"`
	NormalizedTitle  string   `dynamodbav:"normalizedTitle,omitempty"`
	Description      string   `dynamodbav:"description,omitempty"`
	Images           []string `dynamodbav:"images,omitempty"`
	Code             string   `dynamodbav:"code,omitempty"`
	Price            float64  `dynamodbav:"price"`
	CategoryIDs      []string `dynamodbav:"categoryIds,omitempty"`
	SearchableStatus string   `dynamodbav:"searchableStatus,omitempty"`
	CreatedAt        string   `dynamodbav:"createdAt,omitempty"`
	UpdatedAt        string   `dynamodbav:"updatedAt,omitempty"`
}

func (i productItem) toDomain() *catalog.Product {
	return &catalog.Product{
		ID:               i.ID,
		Title:            i.Title,
		NormalizedTitle:  i.NormalizedTitle,
		Description:      i.Description,
		Images:           i.Images,
		Code:             i.Code,
		Price:            i.Price,
		CategoryIDs:      i.CategoryIDs,
		SearchableStatus: i.SearchableStatus,
		CreatedAt:        i.CreatedAt,
		UpdatedAt:        i.UpdatedAt,
	}
}

// GetByID returns the product or a not-found error
func (r *ProductRepository) GetByID(ctx context.Context, id string) (*catalog.Product, error) {
	out, err := r.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	if err != nil {
		return nil, pkgerrors.NewDatabaseError("get product", err)
	}
	if out.Item == nil {
		return nil, pkgerrors.NewNotFoundError(fmt.Sprintf("product %s", id))
	}

	var item productItem
	if err := attributevalue.UnmarshalMap(out.Item, &item); err != nil {
		return nil, fmt.Errorf("failed to unmarshal product %s: %w", id, err)
	}
	return item.toDomain(), nil
}

// SetNormalizedTitle writes normalizedTitle and the searchable marker,
// conditioned on the stored value being absent or different. The
// condition failure is the expected no-op case and reports (false, nil).
func (r *ProductRepository) SetNormalizedTitle(ctx context.Context, id, normalized string) (bool, error) {
	update := expression.
		Set(expression.Name("normalizedTitle"), expression.Value(normalized)).
		Set(expression.Name("searchableStatus"), expression.Value(catalog.StatusSearchable))
	condition := expression.Or(
		expression.AttributeNotExists(expression.Name("normalizedTitle")),
		expression.NotEqual(expression.Name("normalizedTitle"), expression.Value(normalized)),
	)

	expr, err := expression.NewBuilder().WithUpdate(update).WithCondition(condition).Build()
	if err != nil {
		return false, fmt.Errorf("failed to build normalized title expression: %w", err)
	}

	_, err = r.client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		UpdateExpression:          expr.Update(),
		ConditionExpression:       expr.Condition(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
	})
	if err != nil {
		var conditionalCheckFailed *types.ConditionalCheckFailedException
		if errors.As(err, &conditionalCheckFailed) {
			return false, nil
		}
		return false, pkgerrors.NewDatabaseError("set normalized title", err)
	}
	return true, nil
}

// SetCategoryIDs overwrites the product's denormalized category-id list
func (r *ProductRepository) SetCategoryIDs(ctx context.Context, id string, categoryIDs []string) error {
	if categoryIDs == nil {
		categoryIDs = []string{}
	}

	update := expression.Set(expression.Name("categoryIds"), expression.Value(categoryIDs))
	expr, err := expression.NewBuilder().WithUpdate(update).Build()
	if err != nil {
		return fmt.Errorf("failed to build category ids expression: %w", err)
	}

	_, err = r.client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		UpdateExpression:          expr.Update(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
	})
	if err != nil {
		return pkgerrors.NewDatabaseError("set category ids", err)
	}

	r.logger.Debug("Updated product category ids",
		zap.String("productID", id),
		zap.Int("categories", len(categoryIDs)),
	)
	return nil
}
