package output

import (
	"bytes"
	"context"
	"fmt"
	"path"

	"modlist-builder/core/modlist"
	"modlist-builder/core/storage"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// Publisher uploads written artifacts to object storage.
type Publisher struct {
	client storage.Client
	bucket string
	prefix string
	region string
	logger *zap.Logger
}

// NewPublisher creates a publisher for the configured bucket.
func NewPublisher(client storage.Client, cfg storage.Config, logger *zap.Logger) *Publisher {
	return &Publisher{
		client: client,
		bucket: cfg.Bucket,
		prefix: cfg.Prefix,
		region: cfg.Region,
		logger: logger,
	}
}

// ObjectName returns the key an artifact is published under.
func (p *Publisher) ObjectName(family modlist.Family, name string) string {
	return path.Join(p.prefix, string(family), name)
}

// Publish uploads every artifact, creating the bucket when it is missing.
func (p *Publisher) Publish(ctx context.Context, family modlist.Family, artifacts []Artifact) error {
	exists, err := p.client.BucketExists(ctx, p.bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket %s: %w", p.bucket, err)
	}
	if !exists {
		if err := p.client.MakeBucket(ctx, p.bucket, minio.MakeBucketOptions{Region: p.region}); err != nil {
			return fmt.Errorf("failed to create bucket %s: %w", p.bucket, err)
		}
		p.logger.Info("Created bucket", zap.String("bucket", p.bucket))
	}

	for _, a := range artifacts {
		objectName := p.ObjectName(family, a.Name)
		_, err := p.client.PutObject(ctx, p.bucket, objectName, bytes.NewReader(a.Content), int64(len(a.Content)),
			minio.PutObjectOptions{ContentType: "text/plain; charset=utf-8"})
		if err != nil {
			return fmt.Errorf("failed to publish %s: %w", a.Name, err)
		}
		p.logger.Info("Published artifact",
			zap.String("bucket", p.bucket),
			zap.String("object", objectName),
			zap.Int("bytes", len(a.Content)),
		)
	}

	return nil
}
