package tradezone

import (
	"context"
	"fmt"
	"time"

	"catalog-manager/core/logger"
	"catalog-manager/core/metrics"
	"catalog-manager/core/reconcile"
	"catalog-manager/core/tabular"
	"catalog-manager/feature/tradezone/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Uploader delivers a written local export somewhere else.
type Uploader interface {
	Upload(ctx context.Context, localPath string) error
}

// ServiceOption configures a Service.
type ServiceOption func(*Service)

// WithUploader delivers every local export after it is written.
func WithUploader(u Uploader) ServiceOption {
	return func(s *Service) {
		s.uploader = u
	}
}

// WithMetrics records every run.
func WithMetrics(m *metrics.Recorder) ServiceOption {
	return func(s *Service) {
		s.metrics = m
	}
}

// Service runs Tradezone reconciliations end to end: load, index, reconcile, write.
type Service struct {
	cfg      Config
	reader   tabular.Reader
	writer   tabular.Writer
	logger   *zap.Logger
	uploader Uploader
	metrics  *metrics.Recorder
	runs     reconcile.Coalescer[*reconcile.Summary]
}

// NewService creates a new Tradezone service.
func NewService(cfg Config, reader tabular.Reader, writer tabular.Writer, logger *zap.Logger, opts ...ServiceOption) *Service {
	s := &Service{
		cfg:    cfg,
		reader: reader,
		writer: writer,
		logger: logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run performs one reconciliation and writes the three lanes. Unreadable sources count as
// empty. The only error is cancellation, in which case nothing is written.
func (s *Service) Run(ctx context.Context) (*reconcile.Summary, error) {
	runID := uuid.NewString()
	l := logger.WithRunID(s.logger, runID)
	start := time.Now()

	l.Info("Starting reconciliation", zap.String("products", s.cfg.ProductsInput))

	tables := reconcile.LoadAll(ctx, s.reader, s.cfg.Inputs()...)
	products := models.PrimaryRecords(tables[0])
	indexes := BuildIndexes(Sources{
		Attributes: models.AttributeRecords(tables[1]),
		Markups:    models.MarkupRecords(tables[2]),
		Images:     models.ImageRecords(tables[3]),
	})

	l.Info("Indexes built",
		zap.Int("products", len(products)),
		zap.Int("attributes", indexes.Attributes.Len()),
		zap.Int("markups", len(indexes.Markups)),
		zap.Int("images", len(indexes.Images)),
	)

	result, err := NewEngine(indexes, s.cfg, l).Run(ctx, products)
	if err != nil {
		s.metrics.RunFailed()
		l.Warn("Reconciliation aborted", zap.Error(err))
		return nil, fmt.Errorf("reconcile tradezone: %w", err)
	}

	outputs := s.cfg.Outputs()
	for _, lane := range reconcile.Lanes {
		dest := outputs[lane]
		s.writer.Write(ctx, dest, ExportTable(result.Rows(lane)), tabular.DefaultSheet)
		s.deliver(ctx, l, dest)
	}

	summary := result.Summary()
	summary.RunID = runID

	l.Info("Reconciliation report",
		zap.Int("records", summary.Records),
		zap.Int("skipped", summary.Skipped),
		zap.Int("no_markup", summary.NoMarkup),
		zap.Int("updated", summary.Updated),
		zap.Int("no_attribute_data", summary.NoAttributeData),
		zap.Int("updated_rows", summary.Lanes[reconcile.LaneUpdated]),
		zap.Int("skipped_rows", summary.Lanes[reconcile.LaneSkipped]),
		zap.Int("no_markup_rows", summary.Lanes[reconcile.LaneNoMarkup]),
		zap.Duration("elapsed", time.Since(start)),
	)
	s.metrics.ObserveRun(summary, time.Since(start))

	return &summary, nil
}

// Trigger runs a reconciliation, sharing the result with callers that arrive while a run
// is already in flight. The run is detached from the caller's cancellation.
func (s *Service) Trigger(ctx context.Context) (*reconcile.Summary, bool, error) {
	runCtx := context.WithoutCancel(ctx)
	return s.runs.Do("tradezone", func() (*reconcile.Summary, error) {
		return s.Run(runCtx)
	})
}

func (s *Service) deliver(ctx context.Context, l *zap.Logger, dest string) {
	if s.uploader == nil || dest == "" || !tabular.IsLocal(dest) {
		return
	}
	if err := s.uploader.Upload(ctx, dest); err != nil {
		l.Error("Failed to deliver export", zap.String("location", dest), zap.Error(err))
		return
	}
	l.Info("Export delivered", zap.String("location", dest))
}
