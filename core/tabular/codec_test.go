package tabular

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestFormatOf(t *testing.T) {
	tests := []struct {
		name    string
		want    Format
		wantErr bool
	}{
		{"files/products.csv", FormatCSV, false},
		{"files/Products.XLSX", FormatXLSX, false},
		{"exports/macro.xlsm", FormatXLSX, false},
		{"files/products.json", "", true},
		{"files/products", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FormatOf(tt.name)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDecodeCSV(t *testing.T) {
	in := "\ufeffDescription,Cost Price,,Shipping Information\n" +
		"Desk Lamp,10,x,\"Weight (kg) 1.2\nBarcode\n123\"\n" +
		",,,\n" +
		"Short Row,5\n"

	table, err := Decode(strings.NewReader(in), FormatCSV)
	require.NoError(t, err)

	assert.Equal(t, []string{"Description", "Cost Price", "__EMPTY_2", "Shipping Information"}, table.Header)
	require.Equal(t, 2, table.Len())
	assert.Equal(t, "Desk Lamp", table.Records[0].Get("Description"))
	assert.Equal(t, "x", table.Records[0].Get("__EMPTY_2"))
	assert.Equal(t, "Weight (kg) 1.2\nBarcode\n123", table.Records[0].Get("Shipping Information"))
	assert.Equal(t, "", table.Records[1].Get("Shipping Information"))
	assert.Equal(t, "", table.Records[1].Get("Missing Column"))
}

func TestEncodeCSV_UsesHeaderOrder(t *testing.T) {
	table := Table{
		Header: []string{"Handle", "Title"},
		Records: []Record{
			{"Title": "Desk Lamp", "Handle": "desk-lamp"},
			{"Handle": "desk-lamp"},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, table, FormatCSV, ""))
	assert.Equal(t, "Handle,Title\ndesk-lamp,Desk Lamp\ndesk-lamp,\n", buf.String())
}

func TestXLSX_FirstSheetAndSheetName(t *testing.T) {
	table := Table{
		Header: []string{"ID", "Type"},
		Records: []Record{
			{"ID": "1", "Type": "Lamps"},
			{"ID": "2", "Type": ""},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, table, FormatXLSX, "Products"))

	f, err := excelize.OpenReader(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	assert.Equal(t, []string{"Products"}, f.GetSheetList())
	require.NoError(t, f.Close())

	decoded, err := Decode(bytes.NewReader(buf.Bytes()), FormatXLSX)
	require.NoError(t, err)
	assert.Equal(t, table.Header, decoded.Header)
	require.Equal(t, 2, decoded.Len())
	assert.Equal(t, "Lamps", decoded.Records[0].Get("Type"))
	assert.Equal(t, "2", decoded.Records[1].Get("ID"))
}

func TestDecode_Errors(t *testing.T) {
	_, err := Decode(strings.NewReader("not a zip"), FormatXLSX)
	assert.Error(t, err)

	_, err = Decode(strings.NewReader(""), Format("json"))
	assert.Error(t, err)
}

func formattedWorkbook(t *testing.T) []byte {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)

	require.NoError(t, f.SetSheetRow(sheet, "A1", &[]any{"Category", "Cost Price", "Website list price mark up %"}))
	require.NoError(t, f.SetSheetRow(sheet, "A2", &[]any{"Lamps", 1234.5, 0.5}))

	thousands, err := f.NewStyle(&excelize.Style{NumFmt: 4})
	require.NoError(t, err)
	percent, err := f.NewStyle(&excelize.Style{NumFmt: 9})
	require.NoError(t, err)
	require.NoError(t, f.SetCellStyle(sheet, "B2", "B2", thousands))
	require.NoError(t, f.SetCellStyle(sheet, "C2", "C2", percent))

	var buf bytes.Buffer
	_, err = f.WriteTo(&buf)
	require.NoError(t, err)
	return buf.Bytes()
}

func TestDecodeXLSX_FormattedNumbers(t *testing.T) {
	table, err := Decode(bytes.NewReader(formattedWorkbook(t)), FormatXLSX)
	require.NoError(t, err)

	require.Equal(t, 1, table.Len())
	assert.Equal(t, "Lamps", table.Records[0].Get("Category"))
	assert.Equal(t, "1234.5", table.Records[0].Get("Cost Price"))
	assert.Equal(t, "50%", table.Records[0].Get("Website list price mark up %"))
}

func TestDecode_RepeatedHeaders(t *testing.T) {
	in := "Title,Image Src,Image Src,Image Src,\n" +
		"Desk Lamp,http://img/1.jpg,,http://img/3.jpg,x\n"

	table, err := Decode(strings.NewReader(in), FormatCSV)
	require.NoError(t, err)

	assert.Equal(t, []string{"Title", "Image Src", "Image Src_1", "Image Src_2", "__EMPTY_4"}, table.Header)
	require.Equal(t, 1, table.Len())
	assert.Equal(t, "http://img/1.jpg", table.Records[0].Get("Image Src"))
	assert.Equal(t, "", table.Records[0].Get("Image Src_1"))
	assert.Equal(t, "http://img/3.jpg", table.Records[0].Get("Image Src_2"))
	assert.Equal(t, []string{"Desk Lamp", "http://img/1.jpg", "", "http://img/3.jpg", "x"}, table.Row(0))
}
