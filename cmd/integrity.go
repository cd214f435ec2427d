package cmd

import (
	"context"
	"errors"

	"catalog-manager/feature/integrity"
	"catalog-manager/feature/integrity/checks"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var fixIntegrity bool

// errIntegrity is returned when a check fails so the command exits non-zero.
var errIntegrity = errors.New("integrity check failed")

// integrityCmd checks the configured Tradezone sources before a run.
var integrityCmd = &cobra.Command{
	Use:   "integrity",
	Short: "Check that the configured sources are readable and complete",
	Long: `Reads every configured Tradezone source and reports missing data or columns.
When a location uses object storage, the bucket is checked too (--fix creates it).`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		cfg, l, err := bootstrap()
		if err != nil {
			return err
		}
		defer l.Sync()

		b, err := newBackends(cfg, l, tradezoneLocations(cfg.Tradezone)...)
		if err != nil {
			return err
		}

		svc := integrity.NewService(b.io, b.storage, cfg.Storage.Bucket, cfg.Storage.Region,
			checks.TradezoneSources(cfg.Tradezone), l)

		reports := svc.CheckSources(ctx)
		for _, r := range reports {
			fields := []zap.Field{
				zap.String("source", r.Name),
				zap.String("location", r.Location),
				zap.String("status", r.Status),
				zap.Int("rows", r.Rows),
			}
			if r.Status == checks.StatusOK {
				l.Info("Source check", fields...)
			} else {
				l.Warn("Source check", append(fields, zap.Strings("missing_columns", r.MissingColumns))...)
			}
		}

		bucket, err := svc.CheckBucket(ctx, fixIntegrity)
		if err != nil {
			return err
		}
		l.Info("Bucket check", zap.String("bucket", bucket.Bucket), zap.String("status", bucket.Status))

		if !checks.Healthy(reports) || bucket.Status == checks.BucketMissing {
			return errIntegrity
		}
		return nil
	},
}

func init() {
	integrityCmd.Flags().BoolVar(&fixIntegrity, "fix", false, "Create the storage bucket if missing")
	RootCmd.AddCommand(integrityCmd)
}
