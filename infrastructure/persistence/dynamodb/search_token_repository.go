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

// SearchTokenRepository implements ports.SearchTokenRepository on the
// token-to-product index table, keyed by (token, productId).
type SearchTokenRepository struct {
	client         *dynamodb.Client
	tableName      string
	byProductIndex string
	logger         *zap.Logger
}

// NewSearchTokenRepository creates a new search token repository
func NewSearchTokenRepository(client *dynamodb.Client, tableName, byProductIndex string, logger *zap.Logger) ports.SearchTokenRepository {
	return &SearchTokenRepository{
		client:         client,
		tableName:      tableName,
		byProductIndex: byProductIndex,
		logger:         logger,
	}
}

// searchTokenItem represents the DynamoDB item structure for a token row.
// Display attributes are omitted when empty so the index never stores
// null placeholders.
type searchTokenItem struct {
	Token           string   `dynamodbav:"token"`
	ProductID       string   `dynamodbav:"productId"`
	Title           string   `dynamodbav:"title,omitempty"`
	Description     string   `dynamodbav:"description,omitempty"`
	Price           float64  `dynamodbav:"price,omitempty"`
	Images          []string `dynamodbav:"images,omitempty"`
	CategoryIDs     []string `dynamodbav:"categoryIds,omitempty"`
	NormalizedTitle string   `dynamodbav:"normalizedTitle,omitempty"`
	CreatedAt       string   `dynamodbav:"createdAt,omitempty"`
}

// PutTokens writes the token rows in batches of 25
func (r *SearchTokenRepository) PutTokens(ctx context.Context, tokens []catalog.SearchToken) error {
	if len(tokens) == 0 {
		return nil
	}

	requests := make([]types.WriteRequest, 0, len(tokens))
	for _, t := range tokens {
		av, err := attributevalue.MarshalMap(searchTokenItem{
			Token:           t.Token,
			ProductID:       t.ProductID,
			Title:           t.Title,
			Description:     t.Description,
			Price:           t.Price,
			Images:          t.Images,
			CategoryIDs:     t.CategoryIDs,
			NormalizedTitle: t.NormalizedTitle,
			CreatedAt:       t.CreatedAt,
		})
		if err != nil {
			return fmt.Errorf("failed to marshal token %q for product %s: %w", t.Token, t.ProductID, err)
		}
		requests = append(requests, types.WriteRequest{
			PutRequest: &types.PutRequest{Item: av},
		})
	}

	if err := r.batchWrite(ctx, requests); err != nil {
		return pkgerrors.NewDatabaseError("put search tokens", err)
	}

	r.logger.Debug("Wrote search token rows",
		zap.Int("rows", len(tokens)),
	)
	return nil
}

// DeleteByProduct removes every token row for the product via the
// byProduct index. Reserved for stale-token retraction; no pipeline
// component calls it yet.
func (r *SearchTokenRepository) DeleteByProduct(ctx context.Context, productID string) (int, error) {
	var requests []types.WriteRequest
	var startKey map[string]types.AttributeValue

	for {
		out, err := r.client.Query(ctx, &dynamodb.QueryInput{
			TableName:              aws.String(r.tableName),
			IndexName:              aws.String(r.byProductIndex),
			KeyConditionExpression: aws.String("productId = :pid"),
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":pid": &types.AttributeValueMemberS{Value: productID},
			},
			ProjectionExpression: aws.String("#t, productId"),
			ExpressionAttributeNames: map[string]string{
				"#t": "token",
			},
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return 0, pkgerrors.NewDatabaseError("query search tokens", err)
		}

		for _, item := range out.Items {
			token, ok := item["token"].(*types.AttributeValueMemberS)
			if !ok {
				continue
			}
			requests = append(requests, types.WriteRequest{
				DeleteRequest: &types.DeleteRequest{
					Key: map[string]types.AttributeValue{
						"token":     &types.AttributeValueMemberS{Value: token.Value},
						"productId": &types.AttributeValueMemberS{Value: productID},
					},
				},
			})
		}

		if out.LastEvaluatedKey == nil {
			break
		}
		startKey = out.LastEvaluatedKey
	}

	if len(requests) == 0 {
		return 0, nil
	}
	if err := r.batchWrite(ctx, requests); err != nil {
		return 0, pkgerrors.NewDatabaseError("delete search tokens", err)
	}
	return len(requests), nil
}

// batchWrite executes write requests in chunks of 25 (DynamoDB limit)
func (r *SearchTokenRepository) batchWrite(ctx context.Context, requests []types.WriteRequest) error {
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
