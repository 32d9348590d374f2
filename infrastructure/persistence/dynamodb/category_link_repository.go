package dynamodb

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"go.uber.org/zap"

	"libreria-backend/application/ports"
	"libreria-backend/domain/catalog"
	pkgerrors "libreria-backend/pkg/errors"
)

// maxBatchWriteItems is the DynamoDB BatchWriteItem limit
const maxBatchWriteItems = 25

// CategoryLinkRepository implements ports.CategoryLinkRepository on the
// product-category join table.
type CategoryLinkRepository struct {
	client         *dynamodb.Client
	tableName      string
	byProductIndex string
	logger         *zap.Logger
}

// NewCategoryLinkRepository creates a new category link repository
func NewCategoryLinkRepository(client *dynamodb.Client, tableName, byProductIndex string, logger *zap.Logger) ports.CategoryLinkRepository {
	return &CategoryLinkRepository{
		client:         client,
		tableName:      tableName,
		byProductIndex: byProductIndex,
		logger:         logger,
	}
}

// categoryLinkItem represents the DynamoDB item structure for a join row
type categoryLinkItem struct {
	ID               string  `dynamodbav:"id"`
	ProductID        string  `dynamodbav:"productId"`
	CategoryID       string  `dynamodbav:"categoryId"`
	ProductStatus    string  `dynamodbav:"productStatus,omitempty"`
	ProductTitle     string  `dynamodbav:"productTitle,omitempty"`
	ProductPrice     float64 `dynamodbav:"productPrice"`
	ProductCreatedAt string  `dynamodbav:"productCreatedAt,omitempty"`
}

func linkToItem(l catalog.CategoryLink) categoryLinkItem {
	return categoryLinkItem{
		ID:               l.ID,
		ProductID:        l.ProductID,
		CategoryID:       l.CategoryID,
		ProductStatus:    l.ProductStatus,
		ProductTitle:     l.ProductTitle,
		ProductPrice:     l.ProductPrice,
		ProductCreatedAt: l.ProductCreatedAt,
	}
}

func (i categoryLinkItem) toDomain() catalog.CategoryLink {
	return catalog.CategoryLink{
		ID:               i.ID,
		ProductID:        i.ProductID,
		CategoryID:       i.CategoryID,
		ProductStatus:    i.ProductStatus,
		ProductTitle:     i.ProductTitle,
		ProductPrice:     i.ProductPrice,
		ProductCreatedAt: i.ProductCreatedAt,
	}
}

// ListByProduct returns every join row for the product via the byProduct
// index, following pagination until exhausted.
func (r *CategoryLinkRepository) ListByProduct(ctx context.Context, productID string) ([]catalog.CategoryLink, error) {
	var links []catalog.CategoryLink
	var startKey map[string]types.AttributeValue

	for {
		out, err := r.client.Query(ctx, &dynamodb.QueryInput{
			TableName:              aws.String(r.tableName),
			IndexName:              aws.String(r.byProductIndex),
			KeyConditionExpression: aws.String("productId = :pid"),
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":pid": &types.AttributeValueMemberS{Value: productID},
			},
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, pkgerrors.NewDatabaseError("query category links", err)
		}

		var items []categoryLinkItem
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &items); err != nil {
			return nil, fmt.Errorf("failed to unmarshal category links for product %s: %w", productID, err)
		}
		for _, item := range items {
			links = append(links, item.toDomain())
		}

		if out.LastEvaluatedKey == nil {
			break
		}
		startKey = out.LastEvaluatedKey
	}

	return links, nil
}

// PutSummaries overwrites the given join rows in batches of 25
func (r *CategoryLinkRepository) PutSummaries(ctx context.Context, links []catalog.CategoryLink) error {
	if len(links) == 0 {
		return nil
	}

	requests := make([]types.WriteRequest, 0, len(links))
	for _, link := range links {
		av, err := attributevalue.MarshalMap(linkToItem(link))
		if err != nil {
			return fmt.Errorf("failed to marshal category link %s: %w", link.ID, err)
		}
		requests = append(requests, types.WriteRequest{
			PutRequest: &types.PutRequest{Item: av},
		})
	}

	if err := r.batchWrite(ctx, requests); err != nil {
		return pkgerrors.NewDatabaseError("put category link summaries", err)
	}

	r.logger.Debug("Wrote category link summaries",
		zap.Int("rows", len(links)),
	)
	return nil
}

// DeleteByProduct removes every join row referencing the product
func (r *CategoryLinkRepository) DeleteByProduct(ctx context.Context, productID string) (int, error) {
	links, err := r.ListByProduct(ctx, productID)
	if err != nil {
		return 0, err
	}
	if len(links) == 0 {
		return 0, nil
	}

	requests := make([]types.WriteRequest, 0, len(links))
	for _, link := range links {
		requests = append(requests, types.WriteRequest{
			DeleteRequest: &types.DeleteRequest{
				Key: map[string]types.AttributeValue{
					"id": &types.AttributeValueMemberS{Value: link.ID},
				},
			},
		})
	}

	if err := r.batchWrite(ctx, requests); err != nil {
		return 0, pkgerrors.NewDatabaseError("delete category links", err)
	}

	r.logger.Info("Deleted category links for product",
		zap.String("productID", productID),
		zap.Int("rows", len(links)),
	)
	return len(links), nil
}

// batchWrite executes write requests in chunks of 25 (DynamoDB limit)
func (r *CategoryLinkRepository) batchWrite(ctx context.Context, requests []types.WriteRequest) error {
	for i := 0; i < len(requests); i += maxBatchWriteItems {
		end := i + maxBatchWriteItems
		if end > len(requests) {
			end = len(requests)
		}

		out, err := r.client.BatchWriteItem(ctx, &dynamodb.BatchWriteItemInput{
			RequestItems: map[string][]types.WriteRequest{
				r.tableName: requests[i:end],
			},
		})
		if err != nil {
			return fmt.Errorf("batch write failed for items %d-%d: %w", i, end-1, err)
		}
		if unprocessed := out.UnprocessedItems[r.tableName]; len(unprocessed) > 0 {
			// Redelivery re-runs the whole recompute, so retrying just the
			// leftovers once is enough here.
			retry, err := r.client.BatchWriteItem(ctx, &dynamodb.BatchWriteItemInput{
				RequestItems: out.UnprocessedItems,
			})
			if err != nil {
				return fmt.Errorf("batch write retry failed: %w", err)
			}
			if len(retry.UnprocessedItems[r.tableName]) > 0 {
				return fmt.Errorf("batch write left %d unprocessed items", len(retry.UnprocessedItems[r.tableName]))
			}
		}
	}
	return nil
}
