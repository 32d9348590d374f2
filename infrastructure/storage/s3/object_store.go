package s3

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"go.uber.org/zap"

	"libreria-backend/application/ports"
	pkgerrors "libreria-backend/pkg/errors"
)

// maxDeleteObjects is the S3 DeleteObjects limit per call
const maxDeleteObjects = 1000

// ObjectStore implements ports.ObjectStore on an S3 bucket
type ObjectStore struct {
	client *s3.Client
	bucket string
	logger *zap.Logger
}

// NewObjectStore creates a new object store
func NewObjectStore(client *s3.Client, bucket string, logger *zap.Logger) ports.ObjectStore {
	return &ObjectStore{
		client: client,
		bucket: bucket,
		logger: logger,
	}
}

// DeleteKeys deletes the given storage keys in batched DeleteObjects
// calls and returns how many were removed.
func (s *ObjectStore) DeleteKeys(ctx context.Context, keys []string) (int, error) {
	if len(keys) == 0 {
		return 0, nil
	}

	deleted := 0
	for i := 0; i < len(keys); i += maxDeleteObjects {
		end := i + maxDeleteObjects
		if end > len(keys) {
			end = len(keys)
		}

		objects := make([]types.ObjectIdentifier, 0, end-i)
		for _, key := range keys[i:end] {
			objects = append(objects, types.ObjectIdentifier{Key: aws.String(key)})
		}

		out, err := s.client.DeleteObjects(ctx, &s3.DeleteObjectsInput{
			Bucket: aws.String(s.bucket),
			Delete: &types.Delete{
				Objects: objects,
				Quiet:   aws.Bool(true),
			},
		})
		if err != nil {
			return deleted, pkgerrors.NewStorageError("delete objects", err)
		}
		if len(out.Errors) > 0 {
			first := out.Errors[0]
			return deleted, pkgerrors.NewStorageError(
				"delete objects",
				fmt.Errorf("%d objects failed, first: %s (%s)", len(out.Errors), aws.ToString(first.Key), aws.ToString(first.Message)),
			)
		}
		deleted += end - i
	}

	s.logger.Info("Deleted storage objects",
		zap.String("bucket", s.bucket),
		zap.Int("objects", deleted),
	)
	return deleted, nil
}

// ListByPrefix returns every key under the prefix
func (s *ObjectStore) ListByPrefix(ctx context.Context, prefix string) ([]string, error) {
	var keys []string

	paginator := s3.NewListObjectsV2Paginator(s.client, &s3.ListObjectsV2Input{
		Bucket: aws.String(s.bucket),
		Prefix: aws.String(prefix),
	})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, pkgerrors.NewStorageError("list objects", err)
		}
		for _, obj := range page.Contents {
			keys = append(keys, aws.ToString(obj.Key))
		}
	}

	return keys, nil
}
