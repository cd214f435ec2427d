package tabular

import (
	"encoding/csv"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Format identifies a physical spreadsheet encoding.
type Format string

const (
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
)

// DefaultSheet is the sheet name used when a caller does not provide one.
const DefaultSheet = "sheet1"

// FormatOf picks the encoding from a file or object name.
func FormatOf(name string) (Format, error) {
	switch strings.ToLower(path.Ext(name)) {
	case ".csv":
		return FormatCSV, nil
	case ".xlsx", ".xlsm":
		return FormatXLSX, nil
	default:
		return "", fmt.Errorf("unsupported spreadsheet format for %q", name)
	}
}

// Decode parses a spreadsheet stream into a Table.
func Decode(r io.Reader, format Format) (Table, error) {
	switch format {
	case FormatCSV:
		return decodeCSV(r)
	case FormatXLSX:
		return decodeXLSX(r)
	default:
		return Table{}, fmt.Errorf("unsupported format %q", format)
	}
}

// Encode serializes a Table. The sheet name is only meaningful for xlsx.
func Encode(w io.Writer, t Table, format Format, sheet string) error {
	switch format {
	case FormatCSV:
		return encodeCSV(w, t)
	case FormatXLSX:
		return encodeXLSX(w, t, sheet)
	default:
		return fmt.Errorf("unsupported format %q", format)
	}
}

func decodeCSV(r io.Reader) (Table, error) {
	cr := csv.NewReader(r)
	// exports are not always rectangular
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	rows, err := cr.ReadAll()
	if err != nil {
		return Table{}, fmt.Errorf("failed to read CSV: %w", err)
	}
	return fromRows(rows), nil
}

func encodeCSV(w io.Writer, t Table) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(t.Header); err != nil {
		return err
	}
	for i := range t.Records {
		if err := cw.Write(t.Row(i)); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func decodeXLSX(r io.Reader) (Table, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return Table{}, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return Table{}, nil
	}

	rows, err := f.GetRows(sheets[0], excelize.Options{RawCellValue: true})
	if err != nil {
		return Table{}, fmt.Errorf("failed to read sheet %s: %w", sheets[0], err)
	}
	shown, err := f.GetRows(sheets[0])
	if err != nil {
		return Table{}, fmt.Errorf("failed to read sheet %s: %w", sheets[0], err)
	}
	return fromRows(keepPercentText(rows, shown)), nil
}

// keepPercentText swaps raw values for their display text on percent-formatted cells, so
// 0.5 shown as "50%" stays "50%" while other numbers keep their unformatted value.
func keepPercentText(raw, shown [][]string) [][]string {
	for i := range raw {
		if i >= len(shown) {
			break
		}
		for j := range raw[i] {
			if j < len(shown[i]) && strings.HasSuffix(strings.TrimSpace(shown[i][j]), "%") {
				raw[i][j] = shown[i][j]
			}
		}
	}
	return raw
}

func encodeXLSX(w io.Writer, t Table, sheet string) error {
	if sheet == "" {
		sheet = DefaultSheet
	}

	f := excelize.NewFile()
	defer f.Close()

	// A new workbook starts with "Sheet1"
	if err := f.SetSheetName(f.GetSheetName(0), sheet); err != nil {
		return fmt.Errorf("failed to name sheet: %w", err)
	}

	if err := writeSheetRow(f, sheet, 1, t.Header); err != nil {
		return err
	}
	for i := range t.Records {
		if err := writeSheetRow(f, sheet, i+2, t.Row(i)); err != nil {
			return err
		}
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("failed to encode workbook: %w", err)
	}
	return nil
}

func writeSheetRow(f *excelize.File, sheet string, row int, values []string) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	cells := make([]any, len(values))
	for i, v := range values {
		cells[i] = v
	}
	return f.SetSheetRow(sheet, cell, &cells)
}
