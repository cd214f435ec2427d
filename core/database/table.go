package database

import (
	"context"
	"fmt"
	"regexp"

	"catalog-manager/core/utils"

	"gorm.io/gorm"
)

var tableNamePattern = regexp.MustCompile(`^[A-Za-z0-9_]+$`)

// ReadTable loads every row of a table. Values are stringified so that SQL tables can be
// consumed exactly like spreadsheet rows; NULL becomes the empty string.
func ReadTable(ctx context.Context, db *gorm.DB, table string) ([]string, []map[string]string, error) {
	if db == nil {
		return nil, nil, fmt.Errorf("no database connection for table %s", table)
	}
	if !tableNamePattern.MatchString(table) {
		return nil, nil, fmt.Errorf("invalid table name %q", table)
	}

	// Raw SQL keeps the column order of the table
	dbRows, err := db.WithContext(ctx).Raw(fmt.Sprintf("SELECT * FROM `%s`", table)).Rows()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to query %s: %w", table, err)
	}
	defer dbRows.Close()

	columns, err := dbRows.Columns()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get columns: %w", err)
	}

	var rows []map[string]string
	for dbRows.Next() {
		values := make([]any, len(columns))
		valuePtrs := make([]any, len(columns))
		for i := range values {
			valuePtrs[i] = &values[i]
		}

		if err := dbRows.Scan(valuePtrs...); err != nil {
			return nil, nil, fmt.Errorf("failed to scan row: %w", err)
		}

		row := make(map[string]string, len(columns))
		for i, col := range columns {
			row[col] = utils.ToString(values[i])
		}
		rows = append(rows, row)
	}
	if err := dbRows.Err(); err != nil {
		return nil, nil, fmt.Errorf("failed to iterate %s: %w", table, err)
	}

	return columns, rows, nil
}
