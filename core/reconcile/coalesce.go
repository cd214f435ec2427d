package reconcile

import "golang.org/x/sync/singleflight"

// Coalescer collapses concurrent calls with the same key into a single execution.
// Callers that arrive while a run is in flight receive that run's result.
type Coalescer[T any] struct {
	sf singleflight.Group
}

// Do executes fn once per key at a time. shared reports whether the result was
// delivered to more than one caller.
func (c *Coalescer[T]) Do(key string, fn func() (T, error)) (result T, shared bool, err error) {
	v, err, shared := c.sf.Do(key, func() (interface{}, error) {
		return fn()
	})
	if v != nil {
		result = v.(T)
	}
	return result, shared, err
}
