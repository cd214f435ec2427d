package checks

import (
	"context"
	"fmt"

	"catalog-manager/core/storage"

	"go.uber.org/zap"
)

// Bucket statuses.
const (
	BucketOK      = "ok"
	BucketMissing = "missing"
	BucketCreated = "created"
	BucketSkipped = "skipped"
)

// BucketReport is the result of checking the export bucket.
type BucketReport struct {
	Bucket string `json:"bucket"`
	Status string `json:"status"`
}

// CheckBucket reports whether the bucket exists. With fix set, a missing bucket is created.
// A nil client means no location uses object storage.
func CheckBucket(ctx context.Context, client storage.Client, bucket, region string, fix bool, logger *zap.Logger) (*BucketReport, error) {
	report := &BucketReport{Bucket: bucket}
	if client == nil {
		report.Status = BucketSkipped
		return report, nil
	}

	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket existence: %w", err)
	}
	if exists {
		report.Status = BucketOK
		return report, nil
	}

	if !fix {
		report.Status = BucketMissing
		return report, nil
	}

	logger.Info("Creating missing bucket", zap.String("bucket", bucket))
	if err := storage.EnsureBucket(ctx, client, bucket, region); err != nil {
		return nil, err
	}
	report.Status = BucketCreated
	return report, nil
}
