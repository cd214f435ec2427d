package tabular

import (
	"strconv"
	"strings"
)

// Record is one row of a tabular source keyed by column name.
type Record map[string]string

// Get returns the raw value of a field, or "" when the column is absent.
func (r Record) Get(field string) string {
	if r == nil {
		return ""
	}
	return r[field]
}

// Table is an ordered set of records sharing a header.
type Table struct {
	Header  []string
	Records []Record
}

// Len returns the number of records.
func (t Table) Len() int {
	return len(t.Records)
}

// Row returns the values of a record in header order.
func (t Table) Row(i int) []string {
	rec := t.Records[i]
	row := make([]string, len(t.Header))
	for j, col := range t.Header {
		row[j] = rec[col]
	}
	return row
}

// fromRows builds a Table from raw rows whose first row is the header. Blank header cells
// get the spreadsheet-style name "__EMPTY_<n>" and repeated names get "<name>_<n>", so no
// value is lost; fully blank rows are dropped, matching how spreadsheet exports pad their
// ranges.
func fromRows(rows [][]string) Table {
	if len(rows) == 0 {
		return Table{}
	}

	header := make([]string, len(rows[0]))
	seen := make(map[string]bool, len(rows[0]))
	for i, h := range rows[0] {
		h = strings.TrimPrefix(h, "\ufeff")
		if strings.TrimSpace(h) == "" {
			h = "__EMPTY_" + strconv.Itoa(i)
		}
		if seen[h] {
			base := h
			for n := 1; seen[h]; n++ {
				h = base + "_" + strconv.Itoa(n)
			}
		}
		seen[h] = true
		header[i] = h
	}

	table := Table{Header: header}
	for _, row := range rows[1:] {
		if isBlank(row) {
			continue
		}
		rec := make(Record, len(header))
		for i, col := range header {
			if i < len(row) {
				rec[col] = row[i]
			}
		}
		table.Records = append(table.Records, rec)
	}
	return table
}

func isBlank(row []string) bool {
	for _, v := range row {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}
