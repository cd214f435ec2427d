package cmd

import (
	"context"

	"catalog-manager/feature/producttype"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	typesInput   string
	typesOutput  string
	typesSheet   string
	typesMapping string
)

// typesCmd sets product types from collection membership.
var typesCmd = &cobra.Command{
	Use:   "types",
	Short: "Set product types from their collections",
	Long: `Reads a catalog export and a YAML mapping of collection handles to product types,
and writes ID, Handle, Title, Type and Collections for every product.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, l, err := bootstrap()
		if err != nil {
			return err
		}
		defer l.Sync()

		pc := cfg.ProductType
		flags := cmd.Flags()
		if flags.Changed("input") {
			pc.Input = typesInput
		}
		if flags.Changed("output") {
			pc.Output = typesOutput
		}
		if flags.Changed("sheet") {
			pc.Sheet = typesSheet
		}
		if flags.Changed("mapping") {
			pc.MappingFile = typesMapping
		}

		mapping, err := producttype.LoadMapping(pc.MappingFile)
		if err != nil {
			return err
		}

		b, err := newBackends(cfg, l, pc.Input, pc.Output)
		if err != nil {
			return err
		}

		rows, mapped, err := producttype.NewService(pc, mapping, b.io, b.io, l).Run(context.Background())
		if err != nil {
			return err
		}
		l.Info("Type update complete", zap.Int("rows", rows), zap.Int("mapped", mapped))
		return nil
	},
}

func init() {
	typesCmd.Flags().StringVar(&typesInput, "input", "", "Catalog export location")
	typesCmd.Flags().StringVar(&typesOutput, "output", "", "Output location")
	typesCmd.Flags().StringVar(&typesSheet, "sheet", "", "Output sheet name")
	typesCmd.Flags().StringVar(&typesMapping, "mapping", "", "Product type mapping file (YAML)")

	RootCmd.AddCommand(typesCmd)
}
