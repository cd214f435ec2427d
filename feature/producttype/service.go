package producttype

import (
	"context"

	"catalog-manager/core/tabular"

	"go.uber.org/zap"
)

// Column names read by the type update.
const (
	ColumnID                = "ID"
	ColumnHandle            = "Handle"
	ColumnTitle             = "Title"
	ColumnType              = "Type"
	ColumnCustomCollections = "Custom Collections"
	ColumnCollections       = "Collections"
)

// OutputColumns is the header of the type update export.
var OutputColumns = []string{ColumnID, ColumnHandle, ColumnTitle, ColumnType, ColumnCollections}

// Service sets each product's type from the collections it belongs to.
type Service struct {
	cfg     Config
	mapping Mapping
	reader  tabular.Reader
	writer  tabular.Writer
	logger  *zap.Logger
}

// NewService creates a new product type service.
func NewService(cfg Config, mapping Mapping, reader tabular.Reader, writer tabular.Writer, logger *zap.Logger) *Service {
	return &Service{cfg: cfg, mapping: mapping, reader: reader, writer: writer, logger: logger}
}

// Run retypes the input and writes the result. It returns the number of rows written and
// how many of them took their type from the mapping.
func (s *Service) Run(ctx context.Context) (rows, mapped int, err error) {
	in := s.reader.Read(ctx, s.cfg.Input)
	out, mapped := Apply(in, s.mapping)

	s.writer.Write(ctx, s.cfg.Output, out, s.cfg.Sheet)
	s.logger.Info("Product types updated",
		zap.String("input", s.cfg.Input),
		zap.String("output", s.cfg.Output),
		zap.Int("rows", out.Len()),
		zap.Int("mapped", mapped),
	)

	return out.Len(), mapped, ctx.Err()
}

// Apply builds the type update table. Rows without a matching collection keep their type.
func Apply(in tabular.Table, mapping Mapping) (tabular.Table, int) {
	out := tabular.Table{
		Header:  append([]string(nil), OutputColumns...),
		Records: make([]tabular.Record, 0, in.Len()),
	}

	mapped := 0
	for _, rec := range in.Records {
		typ, ok := mapping.Resolve(SplitCollections(rec.Get(ColumnCustomCollections)))
		if ok {
			mapped++
		} else {
			typ = rec.Get(ColumnType)
		}

		out.Records = append(out.Records, tabular.Record{
			ColumnID:          rec.Get(ColumnID),
			ColumnHandle:      rec.Get(ColumnHandle),
			ColumnTitle:       rec.Get(ColumnTitle),
			ColumnType:        typ,
			ColumnCollections: rec.Get(ColumnCustomCollections),
		})
	}

	return out, mapped
}
