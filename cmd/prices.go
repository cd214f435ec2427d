package cmd

import (
	"context"

	"catalog-manager/feature/pricing"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	pricesInput    string
	pricesOutput   string
	pricesSheet    string
	pricesDiscount float64
)

// pricesCmd applies the storewide discount to a catalog export.
var pricesCmd = &cobra.Command{
	Use:   "prices",
	Short: "Apply a discount to a catalog export",
	Long: `Sets each product's compare-at price to its undiscounted price and its variant price
to the discounted price, rounded up.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, l, err := bootstrap()
		if err != nil {
			return err
		}
		defer l.Sync()

		pc := cfg.Pricing
		flags := cmd.Flags()
		if flags.Changed("input") {
			pc.Input = pricesInput
		}
		if flags.Changed("output") {
			pc.Output = pricesOutput
		}
		if flags.Changed("sheet") {
			pc.Sheet = pricesSheet
		}
		if flags.Changed("discount") {
			pc.DiscountPercentage = pricesDiscount
		}

		b, err := newBackends(cfg, l, pc.Input, pc.Output)
		if err != nil {
			return err
		}

		rows, err := pricing.NewService(pc, b.io, b.io, l).Run(context.Background())
		if err != nil {
			return err
		}
		l.Info("Price update complete", zap.Int("rows", rows))
		return nil
	},
}

func init() {
	pricesCmd.Flags().StringVar(&pricesInput, "input", "", "Catalog export location")
	pricesCmd.Flags().StringVar(&pricesOutput, "output", "", "Output location")
	pricesCmd.Flags().StringVar(&pricesSheet, "sheet", "", "Output sheet name")
	pricesCmd.Flags().Float64Var(&pricesDiscount, "discount", 0, "Discount percentage")

	RootCmd.AddCommand(pricesCmd)
}
