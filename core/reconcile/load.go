package reconcile

import (
	"context"
	"sync"

	"catalog-manager/core/tabular"
)

// LoadAll reads every location concurrently and returns the tables in argument order.
// Read failures surface as empty tables (see tabular.Reader), so LoadAll cannot fail.
func LoadAll(ctx context.Context, reader tabular.Reader, locations ...string) []tabular.Table {
	tables := make([]tabular.Table, len(locations))

	var wg sync.WaitGroup
	wg.Add(len(locations))
	for i, loc := range locations {
		go func(i int, loc string) {
			defer wg.Done()
			tables[i] = reader.Read(ctx, loc)
		}(i, loc)
	}
	wg.Wait()

	return tables
}
