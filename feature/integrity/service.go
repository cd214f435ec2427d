package integrity

import (
	"context"

	"catalog-manager/core/storage"
	"catalog-manager/core/tabular"
	"catalog-manager/feature/integrity/checks"

	"go.uber.org/zap"
)

// Service handles integrity checks.
type Service struct {
	reader  tabular.Reader
	client  storage.Client
	bucket  string
	region  string
	sources []checks.Source
	logger  *zap.Logger
}

// NewService creates a new integrity service. client may be nil when no location uses
// object storage.
func NewService(reader tabular.Reader, client storage.Client, bucket, region string, sources []checks.Source, logger *zap.Logger) *Service {
	return &Service{
		reader:  reader,
		client:  client,
		bucket:  bucket,
		region:  region,
		sources: sources,
		logger:  logger,
	}
}

// CheckSources reports the state of every configured source.
func (s *Service) CheckSources(ctx context.Context) []checks.SourceReport {
	return checks.CheckSources(ctx, s.reader, s.sources)
}

// CheckBucket reports the state of the bucket, creating it when fix is set.
func (s *Service) CheckBucket(ctx context.Context, fix bool) (*checks.BucketReport, error) {
	return checks.CheckBucket(ctx, s.client, s.bucket, s.region, fix, s.logger)
}
