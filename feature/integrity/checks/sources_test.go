package checks

import (
	"context"
	"testing"

	"catalog-manager/core/tabular"
	"catalog-manager/feature/tradezone"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mapReader map[string]tabular.Table

func (m mapReader) Read(_ context.Context, location string) tabular.Table {
	return m[location]
}

func TestCheckSources(t *testing.T) {
	reader := mapReader{
		"ok.csv": {
			Header:  []string{"Title", "Image Src"},
			Records: []tabular.Record{{"Title": "Desk Lamp", "Image Src": "http://img/1.jpg"}},
		},
		"header-only.csv": {Header: []string{"Title", "Image Src"}},
		"wrong.csv": {
			Header:  []string{"Title", "Image URL"},
			Records: []tabular.Record{{"Title": "Desk Lamp"}},
		},
	}
	required := []string{"Title", "Image Src"}

	reports := CheckSources(context.Background(), reader, []Source{
		{Name: "a", Location: "ok.csv", Required: required},
		{Name: "b", Location: "header-only.csv", Required: required},
		{Name: "c", Location: "wrong.csv", Required: required},
		{Name: "d", Location: "missing.csv", Required: required},
	})

	require.Len(t, reports, 4)
	assert.Equal(t, SourceReport{Name: "a", Location: "ok.csv", Status: StatusOK, Rows: 1}, reports[0])
	assert.Equal(t, StatusEmpty, reports[1].Status)
	assert.Equal(t, StatusMissingColumns, reports[2].Status)
	assert.Equal(t, []string{"Image Src"}, reports[2].MissingColumns)
	assert.Equal(t, StatusEmpty, reports[3].Status)
	assert.Empty(t, reports[3].MissingColumns)

	assert.False(t, Healthy(reports))
	assert.True(t, Healthy(reports[:1]))
}

func TestTradezoneSources(t *testing.T) {
	sources := TradezoneSources(tradezone.Config{
		ProductsInput:   "p.csv",
		AttributesInput: "a.xlsx",
		MarkupsInput:    "db://markups",
		ImagesInput:     "s3://images.csv",
	})

	require.Len(t, sources, 4)
	assert.Equal(t, "products", sources[0].Name)
	assert.Contains(t, sources[0].Required, "Cost Price")
	assert.Equal(t, "db://markups", sources[2].Location)
	assert.Contains(t, sources[2].Required, "Website list price mark up %")
}
