package cmd

import (
	"context"
	"os"
	"os/signal"

	"catalog-manager/core/config"
	"catalog-manager/core/reconcile"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
)

// reconcileCmd is the parent command for all reconcile operations.
var reconcileCmd = &cobra.Command{
	Use:   "reconcile",
	Short: "Reconcile supplier catalogs into catalog imports",
}

// tradezoneReconcileCmd reconciles the Tradezone catalog once.
var tradezoneReconcileCmd = &cobra.Command{
	Use:   "tradezone",
	Short: "Reconcile the Tradezone catalog (updated / skipped / no_markup exports)",
	Long: `Reconcile the Tradezone product export against the attribute, markup and image tables.

Every product lands in exactly one export:
  updated    priced with its category markup
  skipped    no cost or no weight
  no_markup  category without markup (priced with the default multiplier)

Locations may be local .csv/.xlsx files, s3://<key> objects or db://<table> tables.

Examples:
  # Use the configured locations
  reconcile tradezone

  # Override sources
  reconcile tradezone --products ./files/tz.csv --markups s3://markups.xlsx

  # Deliver local exports over SFTP
  reconcile tradezone --deliver`,
	RunE: runTradezoneReconcile,
}

func init() {
	reconcileCmd.AddCommand(tradezoneReconcileCmd)

	f := tradezoneReconcileCmd.Flags()
	f.String("products", "", "Primary catalog location")
	f.String("attributes", "", "Attribute table location")
	f.String("markups", "", "Markup table location")
	f.String("images", "", "Image table location")
	f.String("updated", "", "Updated export location")
	f.String("skipped", "", "Skipped export location")
	f.String("no-markup", "", "No-markup export location")
	f.String("vendor", "", "Vendor used when a product has no manufacturer")
	f.Float64("default-markup", 0, "Multiplier used when no category markup is found")
	f.Bool("deliver", false, "Upload local exports over SFTP")

	RootCmd.AddCommand(reconcileCmd)
}

// applyTradezoneFlags overrides configured values with the flags that were set.
func applyTradezoneFlags(cfg *config.Config, flags *pflag.FlagSet) {
	stringFlags := map[string]*string{
		"products":   &cfg.Tradezone.ProductsInput,
		"attributes": &cfg.Tradezone.AttributesInput,
		"markups":    &cfg.Tradezone.MarkupsInput,
		"images":     &cfg.Tradezone.ImagesInput,
		"updated":    &cfg.Tradezone.UpdatedOutput,
		"skipped":    &cfg.Tradezone.SkippedOutput,
		"no-markup":  &cfg.Tradezone.NoMarkupOutput,
		"vendor":     &cfg.Tradezone.DefaultVendor,
	}
	for name, dst := range stringFlags {
		if flags.Changed(name) {
			*dst, _ = flags.GetString(name)
		}
	}

	if flags.Changed("default-markup") {
		cfg.Tradezone.DefaultMarkup, _ = flags.GetFloat64("default-markup")
	}
	if flags.Changed("deliver") {
		cfg.SFTP.Enabled, _ = flags.GetBool("deliver")
	}
}

func runTradezoneReconcile(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cfg, l, err := bootstrap()
	if err != nil {
		return err
	}
	defer l.Sync()

	applyTradezoneFlags(cfg, cmd.Flags())

	b, err := newBackends(cfg, l, tradezoneLocations(cfg.Tradezone)...)
	if err != nil {
		return err
	}

	summary, err := newTradezoneService(cfg, l, b, nil).Run(ctx)
	if err != nil {
		return err
	}

	l.Info("Tradezone reconciliation complete",
		zap.String("run_id", summary.RunID),
		zap.Int("updated_rows", summary.Lanes[reconcile.LaneUpdated]),
		zap.Int("skipped_rows", summary.Lanes[reconcile.LaneSkipped]),
		zap.Int("no_markup_rows", summary.Lanes[reconcile.LaneNoMarkup]),
	)
	return nil
}
