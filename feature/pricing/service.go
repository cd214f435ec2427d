package pricing

import (
	"context"
	"slices"

	"catalog-manager/core/tabular"
	"catalog-manager/core/utils"

	"go.uber.org/zap"
)

// Service applies a discount to every row of a catalog export.
type Service struct {
	cfg    Config
	reader tabular.Reader
	writer tabular.Writer
	logger *zap.Logger
}

// NewService creates a new pricing service.
func NewService(cfg Config, reader tabular.Reader, writer tabular.Writer, logger *zap.Logger) *Service {
	return &Service{cfg: cfg, reader: reader, writer: writer, logger: logger}
}

// Run reprices the input and writes the result. Every other column passes through in its
// original order. It returns the number of rows written.
func (s *Service) Run(ctx context.Context) (int, error) {
	in := s.reader.Read(ctx, s.cfg.Input)
	out := Apply(in, s.cfg.DiscountPercentage)

	s.writer.Write(ctx, s.cfg.Output, out, s.cfg.Sheet)
	s.logger.Info("Prices updated",
		zap.String("input", s.cfg.Input),
		zap.String("output", s.cfg.Output),
		zap.Int("rows", out.Len()),
		zap.Float64("discount_percentage", s.cfg.DiscountPercentage),
	)

	return out.Len(), ctx.Err()
}

// Apply returns a repriced copy of the table.
func Apply(in tabular.Table, pct float64) tabular.Table {
	header := append([]string(nil), in.Header...)
	for _, col := range []string{ColumnPrice, ColumnCompareAt} {
		if !slices.Contains(header, col) {
			header = append(header, col)
		}
	}

	out := tabular.Table{Header: header, Records: make([]tabular.Record, 0, in.Len())}
	for _, rec := range in.Records {
		price, compareAt := Discount(
			utils.ToFloat(rec.Get(ColumnPrice)),
			utils.ToFloat(rec.Get(ColumnCompareAt)),
			pct,
		)

		row := make(tabular.Record, len(rec)+2)
		for k, v := range rec {
			row[k] = v
		}
		row[ColumnPrice] = utils.FormatNumber(price)
		row[ColumnCompareAt] = utils.FormatNumber(compareAt)
		out.Records = append(out.Records, row)
	}

	return out
}
