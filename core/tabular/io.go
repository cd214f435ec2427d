package tabular

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"catalog-manager/core/database"
	"catalog-manager/core/storage"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	schemeS3 = "s3://"
	schemeDB = "db://"
)

// Reader reads a location into a Table. Failures yield an empty Table.
type Reader interface {
	Read(ctx context.Context, location string) Table
}

// Writer writes a Table to a location. Failures are logged, never returned.
type Writer interface {
	Write(ctx context.Context, location string, t Table, sheet string)
}

// IO implements Reader and Writer over local files, bucket objects and SQL tables.
type IO struct {
	logger *zap.Logger
	client storage.Client
	bucket string
	region string
	db     *gorm.DB
}

// Option configures an IO.
type Option func(*IO)

// WithStorage enables s3:// locations in the given bucket.
func WithStorage(client storage.Client, bucket, region string) Option {
	return func(o *IO) {
		o.client = client
		o.bucket = bucket
		o.region = region
	}
}

// WithDatabase enables db:// locations.
func WithDatabase(db *gorm.DB) Option {
	return func(o *IO) {
		o.db = db
	}
}

// NewIO creates a tabular IO.
func NewIO(logger *zap.Logger, opts ...Option) *IO {
	o := &IO{logger: logger}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// NeedsStorage reports whether any of the locations refers to a bucket object.
func NeedsStorage(locations ...string) bool {
	for _, loc := range locations {
		if strings.HasPrefix(loc, schemeS3) {
			return true
		}
	}
	return false
}

// NeedsDatabase reports whether any of the locations refers to a SQL table.
func NeedsDatabase(locations ...string) bool {
	for _, loc := range locations {
		if strings.HasPrefix(loc, schemeDB) {
			return true
		}
	}
	return false
}

// Read loads a location. It never fails: errors are logged and an empty Table is returned.
func (o *IO) Read(ctx context.Context, location string) Table {
	l := o.logger.With(zap.String("source", location))
	l.Info("Reading source")

	t, err := o.read(ctx, location)
	if err != nil {
		l.Error("Failed to read source", zap.Error(err))
		return Table{}
	}

	l.Info("Source read successfully", zap.Int("records", t.Len()))
	return t
}

func (o *IO) read(ctx context.Context, location string) (Table, error) {
	if location == "" {
		return Table{}, fmt.Errorf("no location configured")
	}

	switch {
	case strings.HasPrefix(location, schemeDB):
		columns, rows, err := database.ReadTable(ctx, o.db, strings.TrimPrefix(location, schemeDB))
		if err != nil {
			return Table{}, err
		}
		t := Table{Header: columns}
		for _, row := range rows {
			t.Records = append(t.Records, Record(row))
		}
		return t, nil

	case strings.HasPrefix(location, schemeS3):
		key := strings.TrimPrefix(location, schemeS3)
		format, err := FormatOf(key)
		if err != nil {
			return Table{}, err
		}
		if o.client == nil {
			return Table{}, fmt.Errorf("object storage is not configured")
		}
		obj, err := o.client.GetObject(ctx, o.bucket, key, minio.GetObjectOptions{})
		if err != nil {
			return Table{}, fmt.Errorf("failed to get object %s: %w", key, err)
		}
		defer obj.Close()
		return Decode(obj, format)

	default:
		format, err := FormatOf(location)
		if err != nil {
			return Table{}, err
		}
		f, err := os.Open(location)
		if err != nil {
			return Table{}, fmt.Errorf("failed to open file: %w", err)
		}
		defer f.Close()
		return Decode(f, format)
	}
}

// Write stores a Table. It never fails: errors are logged and the write is dropped.
func (o *IO) Write(ctx context.Context, location string, t Table, sheet string) {
	l := o.logger.With(zap.String("destination", location))
	l.Info("Writing export", zap.Int("records", t.Len()))

	if err := o.write(ctx, location, t, sheet); err != nil {
		l.Error("Failed to write export", zap.Error(err))
		return
	}

	l.Info("Export written successfully")
}

func (o *IO) write(ctx context.Context, location string, t Table, sheet string) error {
	if location == "" {
		return fmt.Errorf("no location configured")
	}
	if strings.HasPrefix(location, schemeDB) {
		return fmt.Errorf("database destinations are read-only")
	}

	if strings.HasPrefix(location, schemeS3) {
		key := strings.TrimPrefix(location, schemeS3)
		format, err := FormatOf(key)
		if err != nil {
			return err
		}
		if o.client == nil {
			return fmt.Errorf("object storage is not configured")
		}

		var buf bytes.Buffer
		if err := Encode(&buf, t, format, sheet); err != nil {
			return err
		}
		if err := storage.EnsureBucket(ctx, o.client, o.bucket, o.region); err != nil {
			return err
		}
		_, err = o.client.PutObject(ctx, o.bucket, key, &buf, int64(buf.Len()), minio.PutObjectOptions{
			ContentType: contentType(format),
		})
		if err != nil {
			return fmt.Errorf("failed to put object %s: %w", key, err)
		}
		return nil
	}

	format, err := FormatOf(location)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(location); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}
	f, err := os.Create(location)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	if err := Encode(f, t, format, sheet); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// IsLocal reports whether a location is a file on the local filesystem.
func IsLocal(location string) bool {
	return location != "" && !strings.HasPrefix(location, schemeS3) && !strings.HasPrefix(location, schemeDB)
}

func contentType(format Format) string {
	if format == FormatXLSX {
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	}
	return "text/csv"
}
