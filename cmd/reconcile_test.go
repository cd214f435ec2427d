package cmd

import (
	"testing"

	"catalog-manager/core/config"
	"catalog-manager/feature/tradezone"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestApplyTradezoneFlags(t *testing.T) {
	cfg := &config.Config{Tradezone: tradezone.Config{
		ProductsInput: "products.csv",
		ImagesInput:   "images.csv",
		DefaultVendor: "All Led Direct",
		DefaultMarkup: 2,
	}}

	flags := tradezoneReconcileCmd.Flags()
	t.Cleanup(func() {
		flags.VisitAll(func(f *pflag.Flag) { f.Changed = false })
	})
	require.NoError(t, flags.Set("products", "s3://tz.csv"))
	require.NoError(t, flags.Set("default-markup", "1.8"))
	require.NoError(t, flags.Set("deliver", "true"))

	applyTradezoneFlags(cfg, flags)

	assert.Equal(t, "s3://tz.csv", cfg.Tradezone.ProductsInput)
	assert.Equal(t, "images.csv", cfg.Tradezone.ImagesInput)
	assert.Equal(t, "All Led Direct", cfg.Tradezone.DefaultVendor)
	assert.Equal(t, 1.8, cfg.Tradezone.DefaultMarkup)
	assert.True(t, cfg.SFTP.Enabled)
}

func TestNewBackends_LocalOnly(t *testing.T) {
	b, err := newBackends(&config.Config{}, zap.NewNop(), "a.csv", "b.xlsx")

	require.NoError(t, err)
	assert.NotNil(t, b.io)
	assert.Nil(t, b.storage)
}

func TestNewTradezoneService_LocalLocations(t *testing.T) {
	cfg := &config.Config{Tradezone: tradezone.Config{
		ProductsInput:  "products.csv",
		UpdatedOutput:  "updated.csv",
		SkippedOutput:  "skipped.csv",
		NoMarkupOutput: "no-markup.csv",
	}}

	locations := tradezoneLocations(cfg.Tradezone)
	assert.Len(t, locations, 7)

	b, err := newBackends(cfg, zap.NewNop(), locations...)
	require.NoError(t, err)
	assert.NotNil(t, newTradezoneService(cfg, zap.NewNop(), b, nil))
}

func TestCommandsRegistered(t *testing.T) {
	names := map[string]bool{}
	for _, c := range RootCmd.Commands() {
		names[c.Name()] = true
	}

	for _, want := range []string{"reconcile", "prices", "types", "integrity", "start"} {
		assert.True(t, names[want], want)
	}
}
