package reconcile

// Partitioner routes emitted rows into the three lanes and keeps the run counters.
// Row order within a lane is insertion order. It is not safe for concurrent use.
type Partitioner[T any] struct {
	lanes    map[Lane][]T
	counters map[Counter]int
	records  int
}

// NewPartitioner creates an empty Partitioner.
func NewPartitioner[T any]() *Partitioner[T] {
	return &Partitioner[T]{
		lanes:    make(map[Lane][]T, len(Lanes)),
		counters: make(map[Counter]int),
	}
}

// Add appends a primary row followed by its secondary rows to a lane, so the secondary
// rows immediately follow their parent.
func (p *Partitioner[T]) Add(lane Lane, primary T, secondary ...T) {
	p.records++
	rows := append(p.lanes[lane], primary)
	p.lanes[lane] = append(rows, secondary...)
}

// Inc increments a counter.
func (p *Partitioner[T]) Inc(c Counter) {
	p.counters[c]++
}

// Count returns the value of a counter.
func (p *Partitioner[T]) Count(c Counter) int {
	return p.counters[c]
}

// Rows returns the rows of a lane in emission order.
func (p *Partitioner[T]) Rows(lane Lane) []T {
	return p.lanes[lane]
}

// Summary returns the end-of-run report.
func (p *Partitioner[T]) Summary() Summary {
	s := Summary{
		Records:         p.records,
		Skipped:         p.counters[CounterSkipped],
		NoMarkup:        p.counters[CounterNoMarkup],
		Updated:         p.counters[CounterUpdated],
		NoAttributeData: p.counters[CounterNoAttributeData],
		Lanes:           make(map[Lane]int, len(Lanes)),
	}
	for _, lane := range Lanes {
		s.Lanes[lane] = len(p.lanes[lane])
	}
	return s
}
