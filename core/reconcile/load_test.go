package reconcile

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"catalog-manager/core/tabular"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubReader struct {
	tables map[string]tabular.Table
	calls  atomic.Int32
}

func (s *stubReader) Read(ctx context.Context, location string) tabular.Table {
	s.calls.Add(1)
	return s.tables[location]
}

func TestLoadAll_PreservesArgumentOrder(t *testing.T) {
	reader := &stubReader{tables: map[string]tabular.Table{
		"a.csv": {Header: []string{"A"}},
		"b.csv": {Header: []string{"B"}},
	}}

	tables := LoadAll(context.Background(), reader, "b.csv", "missing.csv", "a.csv")

	require.Len(t, tables, 3)
	assert.Equal(t, []string{"B"}, tables[0].Header)
	assert.Equal(t, 0, tables[1].Len())
	assert.Equal(t, []string{"A"}, tables[2].Header)
	assert.Equal(t, int32(3), reader.calls.Load())
}

func TestCoalescer_SharesInFlightRun(t *testing.T) {
	var c Coalescer[int]
	var executions atomic.Int32
	release := make(chan struct{})
	started := make(chan struct{})

	var wg sync.WaitGroup
	results := make([]int, 2)

	wg.Add(1)
	go func() {
		defer wg.Done()
		v, _, err := c.Do("run", func() (int, error) {
			executions.Add(1)
			close(started)
			<-release
			return 42, nil
		})
		assert.NoError(t, err)
		results[0] = v
	}()

	<-started
	wg.Add(1)
	go func() {
		defer wg.Done()
		v, _, err := c.Do("run", func() (int, error) {
			executions.Add(1)
			return 7, nil
		})
		assert.NoError(t, err)
		results[1] = v
	}()

	// give the second caller time to join the in-flight call
	time.Sleep(100 * time.Millisecond)
	close(release)
	wg.Wait()

	assert.Equal(t, int32(1), executions.Load())
	assert.Equal(t, []int{42, 42}, results)
}
