package cmd

import (
	"fmt"

	"catalog-manager/core/config"
	"catalog-manager/core/database"
	"catalog-manager/core/logger"
	"catalog-manager/core/metrics"
	"catalog-manager/core/sftp"
	"catalog-manager/core/storage"
	"catalog-manager/core/tabular"
	"catalog-manager/feature/tradezone"

	"go.uber.org/zap"
)

// bootstrap loads the configuration and builds the logger.
func bootstrap() (*config.Config, *zap.Logger, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	return cfg, l, nil
}

// backends holds the collaborators built for a set of locations.
type backends struct {
	io *tabular.IO
	// storage is nil when no location is a bucket object.
	storage storage.Client
}

// newBackends connects to object storage or the database only when a location needs it.
func newBackends(cfg *config.Config, l *zap.Logger, locations ...string) (*backends, error) {
	b := &backends{}
	var opts []tabular.Option

	if tabular.NeedsStorage(locations...) {
		client, err := storage.NewClient(cfg.Storage)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to storage: %w", err)
		}
		b.storage = client
		opts = append(opts, tabular.WithStorage(client, cfg.Storage.Bucket, cfg.Storage.Region))
	}

	if tabular.NeedsDatabase(locations...) {
		db, err := database.Connect(cfg.Database)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		opts = append(opts, tabular.WithDatabase(db))
	}

	b.io = tabular.NewIO(l, opts...)
	return b, nil
}

// tradezoneLocations returns every input and output location of the reconciliation.
func tradezoneLocations(tz tradezone.Config) []string {
	return append(tz.Inputs(), tz.UpdatedOutput, tz.SkippedOutput, tz.NoMarkupOutput)
}

// newTradezoneService wires the reconciliation service with its optional collaborators.
func newTradezoneService(cfg *config.Config, l *zap.Logger, b *backends, rec *metrics.Recorder) *tradezone.Service {
	opts := []tradezone.ServiceOption{tradezone.WithMetrics(rec)}
	if cfg.SFTP.Enabled {
		opts = append(opts, tradezone.WithUploader(sftp.NewUploader(cfg.SFTP)))
	}
	return tradezone.NewService(cfg.Tradezone, b.io, b.io, l, opts...)
}
